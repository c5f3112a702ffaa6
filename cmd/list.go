package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wdgph/stdreg/internal/presentation"
	"github.com/wdgph/stdreg/internal/registry"
)

var listTags []string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered standards",
	Long: `List all standards registered in the manifest as JSON.

Displays each standard's id, version, maintainer, format, and metadata.
Use --tag to filter by tag (repeatable, AND logic).

Examples:
  # List all standards
  stdreg list

  # Filter by single tag
  stdreg list --tag demographics
  stdreg list -t demographics

  # Filter by multiple tags (AND logic - must match ALL)
  stdreg list -t demographics -t codes

  # Parse specific fields with jq
  stdreg list | jq '.[].id'
  stdreg list | jq '.[] | {id, version}'`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringArrayVarP(&listTags, "tag", "t", nil, "Filter by tag (can be repeated, e.g., --tag demographics)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cat, cleanup, err := openCatalog()
	if err != nil {
		return err
	}
	defer cleanup()

	descs := cat.Descriptors()
	if len(listTags) > 0 {
		descs = filterByTags(descs, listTags)
	}

	formatter := presentation.NewFormatter(os.Stdout)
	return formatter.FormatStandards(presentation.FromDescriptors(descs))
}

// filterByTags filters descriptors by tags (AND logic)
func filterByTags(descs []registry.Descriptor, tags []string) []registry.Descriptor {
	result := make([]registry.Descriptor, 0)
	for _, desc := range descs {
		if hasAllTags(desc, tags) {
			result = append(result, desc)
		}
	}
	return result
}

// hasAllTags checks if the descriptor carries every target tag
func hasAllTags(desc registry.Descriptor, tags []string) bool {
	for _, tag := range tags {
		if !desc.HasTag(tag) {
			return false
		}
	}
	return true
}
