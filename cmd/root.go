package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "choralex",
	Short: "Four-part harmonization transcoder",
	Long:  `Transcodes SATB harmonizations into notation documents, event sequences and renderable scores.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
