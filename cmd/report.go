package cmd

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/abrantigan/KMD-Display/document"
	"github.com/abrantigan/KMD-Display/format"
	"github.com/abrantigan/KMD-Display/keymath"
	"github.com/abrantigan/KMD-Display/model"
)

var (
	reportFormat   string
	reportDecimals int
)

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "table", "output format: table, json or yaml")
	reportCmd.Flags().IntVarP(&reportDecimals, "decimals", "d", 1, "fractional digits for metric values")
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Prints per-key metrics",
	Long:  `Prints per-key metrics`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		report(args[0])
	},
}

// metricAt tolerates parallel arrays shorter than keynumber_data: a
// missing entry reports the same as an unmeasured key.
func metricAt(vals []*float64, i int) *float64 {
	if i >= len(vals) {
		return nil
	}
	return vals[i]
}

func buildKeyRecords(doc *model.Document, decimals int) []model.KeyRecord {
	res := make([]model.KeyRecord, 0)
	for _, i := range document.ValidIndices(doc) {
		num := *doc.KeyNumber[i] + doc.StartingNoteIndex
		res = append(res, model.KeyRecord{
			KeyNumber:     *doc.KeyNumber[i],
			Note:          keymath.NoteName(num),
			Black:         keymath.IsBlackKey(num),
			DownWeight:    format.Value(metricAt(doc.DownWeight, i), decimals),
			UpWeight:      format.Value(metricAt(doc.UpWeight, i), decimals),
			BalanceWeight: format.Value(metricAt(doc.BalanceWeight, i), decimals),
			Friction:      format.Value(metricAt(doc.Friction, i), decimals),
			KeyDip:        format.Value(metricAt(doc.KeyDip, i), decimals),
		})
	}
	return res
}

func report(path string) {
	doc, err := LoadDocument(path)
	if err != nil {
		logrus.Fatalf("Could not load %v: %v", path, err)
	}
	records := buildKeyRecords(doc, reportDecimals)

	switch reportFormat {
	case "table":
		fmt.Printf("%4v  %-4v  %-5v  %8v  %8v  %8v  %8v  %8v\n",
			"key", "note", "color", "down", "up", "balance", "friction", "dip")
		for _, r := range records {
			color := "white"
			if r.Black {
				color = "black"
			}
			fmt.Printf("%4v  %-4v  %-5v  %8v  %8v  %8v  %8v  %8v\n",
				r.KeyNumber, r.Note, color,
				r.DownWeight, r.UpWeight, r.BalanceWeight, r.Friction, r.KeyDip)
		}
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			logrus.Fatalf("Could not encode report: %v", err)
		}
	case "yaml":
		if err := yaml.NewEncoder(os.Stdout).Encode(records); err != nil {
			logrus.Fatalf("Could not encode report: %v", err)
		}
	default:
		logrus.Fatalf("Unknown format: %v", reportFormat)
	}
}
