package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/wdgph/stdreg/internal/presentation"
)

var searchCmd = &cobra.Command{
	Use:   "search <id> <query>",
	Short: "Search the records of a standard",
	Long: `Search a standard's records for a case-insensitive substring.

Every field of every record is matched; records where any field
contains the query are returned as JSON in their original order.
An empty query returns all records.

Examples:
  # Find records mentioning "female"
  stdreg search genders female

  # Count the matches
  stdreg search genders female | jq '.records | length'

  # Parse specific fields with jq
  stdreg search genders female | jq '.records[].code'`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cat, cleanup, err := openCatalog()
	if err != nil {
		return err
	}
	defer cleanup()

	res, err := cat.Search(context.Background(), args[0], args[1])
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatSearchResult(presentation.FromSearchResult(res))
}
