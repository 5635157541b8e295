package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kmd",
	Short: "Keyboard measurement data tools",
	Long:  `Validates keyboard measurement exports, derives per-key metrics and motion curves, and packages self-contained snapshots.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
