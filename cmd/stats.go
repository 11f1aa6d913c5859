package cmd

import (
	"dojo/catalog"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show technique counts by category and difficulty",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	techniques, err := loadTechniques()
	if err != nil {
		return err
	}
	writeStats(cmd.OutOrStdout(), catalog.ComputeStats(techniques))
	return nil
}

func writeStats(w io.Writer, stats catalog.Stats) {
	fmt.Fprintf(w, "total: %d\n\ncategory\n", stats.Total)
	for _, c := range catalog.Categories {
		if n, ok := stats.ByCategory[c]; ok {
			fmt.Fprintf(w, "  %-14s %d\n", c, n)
		}
	}
	fmt.Fprintln(w, "\ndifficulty")
	for _, d := range catalog.Difficulties {
		if n, ok := stats.ByDifficulty[d]; ok {
			fmt.Fprintf(w, "  %-14s %d\n", d, n)
		}
	}
}
