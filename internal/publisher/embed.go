// ABOUTME: Content image embedding: upload referenced images, rewrite links.
// ABOUTME: Each distinct source uploads once per call; failures skip the ref.

package publisher

import (
	"context"
	"fmt"
	"strings"

	"github.com/harper/presskit/internal/markdown"
	"github.com/harper/presskit/internal/mcperr"
	"github.com/harper/presskit/internal/wp"
)

// EmbeddedImage records one source that was uploaded during embedding.
type EmbeddedImage struct {
	Source  string `json:"source"`
	URL     string `json:"url"`
	MediaID int    `json:"mediaId"`
	AltText string `json:"altText,omitempty"`
}

// EmbedResult is the outcome of an embedding pass.
type EmbedResult struct {
	Content  string          `json:"content"`
	Images   []EmbeddedImage `json:"images"`
	Skipped  []string        `json:"skipped,omitempty"`
	RefCount int             `json:"refCount"`
}

// EmbedImages uploads every image referenced as ![alt](source) in content
// and rewrites the references to the hosted URLs. A source appearing in
// several references is uploaded once. A reference whose upload fails is
// left untouched and reported in Skipped; only a wholesale failure (no
// ingester configured) errors out.
func (p *Publisher) EmbedImages(ctx context.Context, content, altPrefix string) (*EmbedResult, error) {
	if p.ingest == nil {
		return nil, mcperr.New("embed_images_error", "no media ingester configured", nil)
	}

	refs := markdown.ExtractImageRefs(content)
	result := &EmbedResult{Content: content, Images: []EmbeddedImage{}, RefCount: len(refs)}
	if len(refs) == 0 {
		return result, nil
	}

	uploaded := map[string]*wp.Media{}
	failed := map[string]bool{}

	for _, ref := range refs {
		if failed[ref.Source] {
			continue
		}
		// The stored alt text carries the prefix too, so the media
		// library record matches what the content shows.
		alt := ref.Alt
		if altPrefix != "" {
			alt = strings.TrimSpace(altPrefix + " " + alt)
		}

		item, ok := uploaded[ref.Source]
		if !ok {
			var err error
			item, err = p.uploadSource(ctx, ref.Source, alt)
			if err != nil {
				p.log.Warn("embedding skipped image", "source", ref.Source, "err", err)
				failed[ref.Source] = true
				result.Skipped = append(result.Skipped, ref.Source)
				continue
			}
			uploaded[ref.Source] = item
			result.Images = append(result.Images, EmbeddedImage{
				Source:  ref.Source,
				URL:     item.SourceURL,
				MediaID: item.ID,
				AltText: item.AltText,
			})
		}

		if ref.Alt == "" && item.AltText != "" {
			alt = item.AltText
		}
		replacement := fmt.Sprintf("![%s](%s)", alt, item.SourceURL)
		result.Content = strings.Replace(result.Content, ref.Full, replacement, 1)
	}

	return result, nil
}

func (p *Publisher) uploadSource(ctx context.Context, source, alt string) (*wp.Media, error) {
	asset, err := p.ingest.Ingest(ctx, source)
	if err != nil {
		return nil, err
	}
	meta := &wp.MediaMeta{AltText: alt}
	return p.api.UploadMedia(ctx, asset.Data, asset.Filename, asset.MimeType, meta)
}
