package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abrantigan/KMD-Display/db"
	"github.com/abrantigan/KMD-Display/document"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file>",
	Short: "Inspects a measurement file or snapshot",
	Long:  `Inspects a measurement file or snapshot`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	doc, err := LoadDocument(path)
	if err != nil {
		logrus.Fatalf("Could not load %v: %v", path, err)
	}

	valid := document.ValidIndices(doc)
	fmt.Printf("piano name: %v\n", doc.PianoName)
	fmt.Printf("keys on instrument: %v\n", doc.NumKeys)
	fmt.Printf("starting note index: %v\n", doc.StartingNoteIndex)
	fmt.Printf("measured keys: %v\n", len(valid))

	if meta := db.GetPianoMetadata(doc.PianoName); meta != nil {
		fmt.Printf("registry: technician=%v location=%v last regulated=%v\n",
			meta.Technician, meta.Location, meta.LastRegulated)
	}

	warnings := document.CheckConsistency(doc)
	for _, w := range warnings {
		if w.Slot < 0 {
			fmt.Printf("warning: %v: %v\n", w.Field, w.Message)
		} else {
			fmt.Printf("warning: slot %v %v: %v (stored %v, derived %v)\n",
				w.Slot, w.Field, w.Message, w.Got, w.Want)
		}
	}
	if len(warnings) == 0 {
		fmt.Println("no consistency warnings")
	}
}
