package main

import "github.com/jsphweid/choralex/cmd"

func main() {
	cmd.Execute()
}
