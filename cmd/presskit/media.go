// ABOUTME: Media command uploading images to the WordPress library.
// ABOUTME: Sources are URLs or local paths; images are optimized first.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/presskit/internal/ui"
	"github.com/harper/presskit/internal/wp"
)

var mediaCmd = &cobra.Command{
	Use:   "media <source...>",
	Short: "Upload images to the media library",
	Long: `Upload one or more images to the WordPress media library. Each
source is a URL or a local file path. Images are optionally compressed
through TinyPNG and resized to at most 1600px before upload.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		altFlag, _ := cmd.Flags().GetString("alt")
		titleFlag, _ := cmd.Flags().GetString("title")

		for _, source := range args {
			asset, err := ingester.Ingest(cmd.Context(), source)
			if err != nil {
				return fmt.Errorf("processing %s: %w", source, err)
			}
			item, err := wpClient.UploadMedia(cmd.Context(), asset.Data, asset.Filename, asset.MimeType,
				&wp.MediaMeta{Title: titleFlag, AltText: altFlag})
			if err != nil {
				return fmt.Errorf("uploading %s: %w", source, err)
			}
			fmt.Print(ui.FormatMediaItem(item))
		}
		return nil
	},
}

func init() {
	mediaCmd.Flags().String("alt", "", "alt text for the uploaded image(s)")
	mediaCmd.Flags().String("title", "", "media title")
	rootCmd.AddCommand(mediaCmd)
}
