package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abrantigan/KMD-Display/audition"
)

var auditionOut string

func init() {
	auditionCmd.Flags().StringVarP(&auditionOut, "out", "o", "audition.mid", "output midi path")
	rootCmd.AddCommand(auditionCmd)
}

var auditionCmd = &cobra.Command{
	Use:   "audition <file>",
	Short: "Writes a midi sweep of the measured keys",
	Long:  `Writes a midi sweep of the measured keys`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		runAudition(args[0])
	},
}

func runAudition(path string) {
	doc, err := LoadDocument(path)
	if err != nil {
		logrus.Fatalf("Could not load %v: %v", path, err)
	}

	s := audition.Create(doc)
	if err := s.WriteFile(auditionOut); err != nil {
		logrus.Fatalf("Write failed for midi file: %v", err)
	}
	logrus.Infof("Wrote audition sweep to %v", auditionOut)
}
