// ABOUTME: Taxonomy command listing and reconciling categories and tags.
// ABOUTME: Ensure is find-or-create with case-insensitive exact matching.

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/presskit/internal/ui"
	"github.com/harper/presskit/internal/wp"
)

var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Manage categories and tags",
}

var taxonomyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories and tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		search, _ := cmd.Flags().GetString("search")
		opts := wp.ListOptions{Search: search}

		categories, err := wpClient.GetCategories(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}
		tags, err := wpClient.GetTags(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("listing tags: %w", err)
		}

		bold := color.New(color.Bold).SprintFunc()
		fmt.Printf("%s\n%s", bold("Categories"), ui.FormatCategoryList(categories))
		fmt.Printf("\n%s\n%s", bold("Tags"), ui.FormatTagList(tags))
		return nil
	},
}

var taxonomyEnsureCmd = &cobra.Command{
	Use:   "ensure <name>",
	Short: "Find or create a category or tag by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asTag, _ := cmd.Flags().GetBool("tag")
		name := args[0]

		if asTag {
			tag, created, err := wpClient.EnsureTag(cmd.Context(), wp.TagData{Name: name})
			if err != nil {
				return fmt.Errorf("reconciling tag: %w", err)
			}
			fmt.Printf("%s tag #%d %q\n", ensureVerb(created), tag.ID, tag.Name)
			return nil
		}

		category, created, err := wpClient.EnsureCategory(cmd.Context(), wp.CategoryData{Name: name})
		if err != nil {
			return fmt.Errorf("reconciling category: %w", err)
		}
		fmt.Printf("%s category #%d %q\n", ensureVerb(created), category.ID, category.Name)
		return nil
	},
}

func ensureVerb(created bool) string {
	if created {
		return "Created"
	}
	return "Found"
}

func init() {
	taxonomyListCmd.Flags().StringP("search", "s", "", "filter by search text")
	taxonomyEnsureCmd.Flags().Bool("tag", false, "ensure a tag instead of a category")
	taxonomyCmd.AddCommand(taxonomyListCmd)
	taxonomyCmd.AddCommand(taxonomyEnsureCmd)
	rootCmd.AddCommand(taxonomyCmd)
}
