package cmd

import (
	"os"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abrantigan/KMD-Display/snapshot"
)

var exportOut string

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default snapshot-<uuid>.html)")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Exports a self-contained snapshot",
	Long:  `Exports a self-contained snapshot`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		export(args[0])
	},
}

func export(path string) {
	doc, err := LoadDocument(path)
	if err != nil {
		logrus.Fatalf("Could not load %v: %v", path, err)
	}

	markup, err := snapshot.Encode(loadTemplate(), doc)
	if err != nil {
		logrus.Fatalf("Could not encode snapshot: %v", err)
	}

	out := exportOut
	if out == "" {
		out = "snapshot-" + uuid.New().String() + ".html"
	}
	if err := os.WriteFile(out, markup, 0666); err != nil {
		logrus.Fatalf("Write failed for snapshot file: %v", err)
	}
	logrus.Infof("Wrote snapshot to %v", out)
}
