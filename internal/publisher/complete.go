// ABOUTME: One-shot blog creation: taxonomies by name, images, excerpt, post.
// ABOUTME: Runs every stage through the same state machine as post-to-wordpress.

package publisher

import (
	"context"
	"regexp"
	"strings"

	"github.com/harper/presskit/internal/mcperr"
	"github.com/harper/presskit/internal/models"
	"github.com/harper/presskit/internal/wp"
)

const excerptLimit = 160

// CompleteBlogInput is the full-pipeline request. Taxonomies are names and
// get reconciled to ids; FeaturedImage is a URL or local path.
type CompleteBlogInput struct {
	Title         string          `json:"title"`
	Content       string          `json:"content"`
	Excerpt       string          `json:"excerpt,omitempty"`
	Status        string          `json:"status,omitempty"`
	Slug          string          `json:"slug,omitempty"`
	Categories    []string        `json:"categories,omitempty"`
	Tags          []string        `json:"tags,omitempty"`
	FeaturedImage string          `json:"featuredImage,omitempty"`
	SEO           *models.SEOData `json:"seo,omitempty"`
}

// CompleteBlogResult reports everything the pipeline produced.
type CompleteBlogResult struct {
	Post            *models.PostRef `json:"post"`
	CategoryIDs     []int           `json:"categoryIds,omitempty"`
	TagIDs          []int           `json:"tagIds,omitempty"`
	CreatedTerms    []string        `json:"createdTerms,omitempty"`
	FeaturedMediaID int             `json:"featuredMediaId,omitempty"`
	EmbeddedImages  []EmbeddedImage `json:"embeddedImages,omitempty"`
	Excerpt         string          `json:"excerpt,omitempty"`
}

// CompleteBlog runs the whole creation pipeline: reconcile taxonomy names,
// embed content images, upload the featured image, derive an excerpt, and
// publish. Embedding and featured-image stages follow the configured flags.
func (p *Publisher) CompleteBlog(ctx context.Context, in *CompleteBlogInput) (*CompleteBlogResult, error) {
	result := &CompleteBlogResult{}

	for _, name := range in.Categories {
		category, created, err := p.api.EnsureCategory(ctx, wp.CategoryData{Name: name})
		if err != nil {
			return nil, mcperr.Wrap("complete_blog_error", "reconciling category "+name, err)
		}
		result.CategoryIDs = append(result.CategoryIDs, category.ID)
		if created {
			result.CreatedTerms = append(result.CreatedTerms, "category:"+name)
		}
	}
	for _, name := range in.Tags {
		tag, created, err := p.api.EnsureTag(ctx, wp.TagData{Name: name})
		if err != nil {
			return nil, mcperr.Wrap("complete_blog_error", "reconciling tag "+name, err)
		}
		result.TagIDs = append(result.TagIDs, tag.ID)
		if created {
			result.CreatedTerms = append(result.CreatedTerms, "tag:"+name)
		}
	}

	content := in.Content
	if p.cfg.ProcessContentImages && p.ingest != nil {
		embedded, err := p.EmbedImages(ctx, content, "")
		if err != nil {
			return nil, mcperr.Wrap("complete_blog_error", "embedding content images", err)
		}
		content = embedded.Content
		result.EmbeddedImages = embedded.Images
	}

	var featured *models.FeaturedMedia
	switch {
	case in.FeaturedImage != "":
		if p.ingest == nil {
			return nil, mcperr.New("complete_blog_error", "featured image given but no media ingester configured", nil)
		}
		asset, err := p.ingest.Ingest(ctx, in.FeaturedImage)
		if err != nil {
			return nil, mcperr.Wrap("complete_blog_error", "ingesting featured image", err)
		}
		item, err := p.api.UploadMedia(ctx, asset.Data, asset.Filename, asset.MimeType,
			&wp.MediaMeta{Title: in.Title, AltText: "Featured image for " + in.Title})
		if err != nil {
			return nil, mcperr.Wrap("complete_blog_error", "uploading featured image", err)
		}
		featured = &models.FeaturedMedia{ID: item.ID}

	case p.cfg.AutoFeaturedImage && len(result.EmbeddedImages) > 0:
		// Promote the first embedded image rather than leaving the post bare.
		featured = &models.FeaturedMedia{ID: result.EmbeddedImages[0].MediaID}
	}
	if featured != nil {
		result.FeaturedMediaID = featured.ID
	}

	excerpt := in.Excerpt
	if excerpt == "" && p.cfg.AutoExcerpt {
		excerpt = autoExcerpt(in.Content)
	}
	result.Excerpt = excerpt

	ref, err := p.Publish(ctx, &models.PostData{
		Slug:          in.Slug,
		Title:         in.Title,
		Content:       content,
		Excerpt:       excerpt,
		Status:        in.Status,
		Categories:    result.CategoryIDs,
		Tags:          result.TagIDs,
		FeaturedMedia: featured,
		SEO:           in.SEO,
	})
	if err != nil {
		return nil, err
	}
	result.Post = ref
	return result, nil
}

var (
	imageLine     = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	linkText      = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	markupChars   = regexp.MustCompile("[#*_`>]+")
	excerptSpaces = regexp.MustCompile(`\s+`)
)

// autoExcerpt derives a plain-text excerpt from markdown content: markup
// stripped, whitespace collapsed, cut at a word boundary near the limit.
func autoExcerpt(content string) string {
	text := imageLine.ReplaceAllString(content, "")
	text = linkText.ReplaceAllString(text, "$1")
	text = markupChars.ReplaceAllString(text, "")
	text = strings.TrimSpace(excerptSpaces.ReplaceAllString(text, " "))

	if len(text) <= excerptLimit {
		return text
	}
	cut := strings.LastIndex(text[:excerptLimit], " ")
	if cut <= 0 {
		cut = excerptLimit
	}
	return text[:cut] + "..."
}
