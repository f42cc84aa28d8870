// ABOUTME: Drafts command browsing the local draft store.
// ABOUTME: Content drafts render through glamour, the rest as JSON.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/presskit/internal/store"
	"github.com/harper/presskit/internal/ui"
)

var draftTypes = []string{store.TypeResearch, store.TypeOutline, store.TypeContent}

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "Browse locally stored drafts",
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored drafts by type",
	RunE: func(cmd *cobra.Command, args []string) error {
		found := false
		for _, recordType := range draftTypes {
			ids, err := draftsDir.List(recordType)
			if err != nil {
				return fmt.Errorf("listing %s drafts: %w", recordType, err)
			}
			for _, id := range ids {
				fmt.Print(ui.FormatDraftListItem(recordType, id))
				found = true
			}
		}
		if !found {
			fmt.Println("No drafts found.")
		}
		return nil
	},
}

var draftsShowCmd = &cobra.Command{
	Use:   "show <type> <id>",
	Short: "Show one stored draft",
	Long:  `Show a stored draft. Type is research, outline, or content.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		recordType, id := args[0], args[1]

		switch recordType {
		case store.TypeResearch, store.TypeOutline, store.TypeContent:
		default:
			return fmt.Errorf("unknown draft type %q (research, outline, content)", recordType)
		}

		if recordType == store.TypeContent {
			var record struct {
				Topic   string `json:"topic"`
				Content string `json:"content"`
			}
			if err := draftsDir.Load(recordType, id, &record); err != nil {
				return fmt.Errorf("loading draft: %w", err)
			}
			rendered, err := ui.FormatMarkdown(record.Content)
			if err != nil {
				return err
			}
			fmt.Print(rendered)
			return nil
		}

		raw, err := draftsDir.LoadRaw(recordType, id)
		if err != nil {
			return fmt.Errorf("loading draft: %w", err)
		}
		fmt.Println(string(raw))
		return nil
	},
}

func init() {
	draftsCmd.AddCommand(draftsListCmd)
	draftsCmd.AddCommand(draftsShowCmd)
	rootCmd.AddCommand(draftsCmd)
}
