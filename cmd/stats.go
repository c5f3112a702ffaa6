package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdgph/stdreg/internal/presentation"
)

var statsCmd = &cobra.Command{
	Use:   "stats [id]",
	Short: "Show record statistics",
	Long: `Show record and field counts as JSON.

With an id, reports the counts for that standard. Without one,
reports a registry-wide overview: one entry per standard, each with
its counts or its load error. A standard that fails to load never
hides the statistics of the others.

Examples:
  # One standard
  stdreg stats genders

  # The whole registry
  stdreg stats

  # Total records across the registry
  stdreg stats | jq 'map(.record_count) | add'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cat, cleanup, err := openCatalog()
	if err != nil {
		return err
	}
	defer cleanup()

	formatter := presentation.NewFormatter(os.Stdout)

	if len(args) == 1 {
		desc, err := cat.Descriptor(args[0])
		if err != nil {
			return err
		}
		stats, err := cat.Statistics(context.Background(), args[0])
		if err != nil {
			return err
		}
		return formatter.FormatStatistics(presentation.FromStatistics(desc, stats))
	}

	entries := cat.Overview(context.Background())
	return formatter.FormatOverview(presentation.FromOverview(entries))
}
