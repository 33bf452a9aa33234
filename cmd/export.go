package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/choralex/constants"
	"github.com/jsphweid/choralex/delivery"
	"github.com/jsphweid/choralex/export"
	"github.com/jsphweid/choralex/model"
	"github.com/jsphweid/choralex/sequence"
	"github.com/jsphweid/choralex/util"
	"github.com/spf13/cobra"
)

var upload bool

func init() {
	exportCmd.Flags().BoolVar(&upload, "upload", false, "upload artifacts to the artifact bucket")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <bundle.json>",
	Short: "Exports a harmonization bundle",
	Long:  `Exports a harmonization bundle to notation, event and score files`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		runExport(args[0])
	},
}

func writeArtifact(dir, name, content string) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0777); err != nil {
		panic("Could not write " + path + " because: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", path)
}

func runExport(bundlePath string) {
	dat, err := os.ReadFile(bundlePath)
	if err != nil {
		panic("Could not read bundle file because: " + err.Error())
	}

	var body model.ExportRequestBody
	if err := json.Unmarshal(dat, &body); err != nil {
		panic("Could not unmarshal bundle because: " + err.Error())
	}

	h, r, meta := toBundle(body)
	arts := export.NewExporter().ExportAll(h, r, meta)

	dir := constants.GetOutDir()
	if err := os.MkdirAll(dir, 0777); err != nil {
		panic("Could not create out dir because: " + err.Error())
	}
	writeArtifact(dir, "score.musicxml", arts.MusicXML)
	writeArtifact(dir, "score.txt", arts.Text)
	if arts.SVG != "" {
		writeArtifact(dir, "score.svg", arts.SVG)
	}

	events, err := json.MarshalIndent(sequence.Wire(arts.Sequence), "", "  ")
	if err != nil {
		panic("Could not marshal event sequence because: " + err.Error())
	}
	writeArtifact(dir, "events.json", string(events))

	var weights []float64
	for _, d := range r {
		weights = append(weights, d.Quarters())
	}
	fmt.Printf("Exported %v chords spanning %v quarter notes\n", len(r), util.Sum(weights))

	if upload {
		keys := delivery.UploadArtifacts(arts)
		for _, key := range keys {
			fmt.Printf("Uploaded %v\n", key)
		}
	}
}
