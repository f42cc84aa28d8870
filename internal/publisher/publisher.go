// ABOUTME: Post publishing state machine: validate, render, resolve, write.
// ABOUTME: SEO metadata is applied after the post write, no rollback.

package publisher

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/harper/presskit/internal/config"
	"github.com/harper/presskit/internal/markdown"
	"github.com/harper/presskit/internal/mcperr"
	"github.com/harper/presskit/internal/media"
	"github.com/harper/presskit/internal/models"
	"github.com/harper/presskit/internal/seo"
	"github.com/harper/presskit/internal/wp"
)

// API is the slice of the WordPress client the publisher drives.
type API interface {
	CreatePost(ctx context.Context, payload wp.PostPayload) (*wp.PostRef, error)
	UpdatePost(ctx context.Context, id int, payload wp.PostPayload) (*wp.PostRef, error)
	FindPostBySlug(ctx context.Context, slug string) (*wp.Post, error)
	UpdatePostMeta(ctx context.Context, id int, meta map[string]any) error
	UploadMedia(ctx context.Context, data []byte, filename, mimeType string, meta *wp.MediaMeta) (*wp.Media, error)
	EnsureCategory(ctx context.Context, data wp.CategoryData) (*wp.Category, bool, error)
	EnsureTag(ctx context.Context, data wp.TagData) (*wp.Tag, bool, error)
}

// Publisher turns tool-facing post requests into WordPress writes.
type Publisher struct {
	api    API
	cfg    *config.Config
	ingest *media.Ingester
	log    *log.Logger
}

// New builds a publisher. The ingester may be nil when no embedding or
// featured-image work will be requested.
func New(api API, cfg *config.Config, ingester *media.Ingester, logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Publisher{
		api:    api,
		cfg:    cfg,
		ingest: ingester,
		log:    logger.With("component", "publisher"),
	}
}

// Publish creates or updates a post. The target is picked from the request:
// id wins over slug, neither means create. A slug whose lookup finds nothing
// degrades to a create carrying that slug.
func (p *Publisher) Publish(ctx context.Context, post *models.PostData) (*models.PostRef, error) {
	if errs := post.Validate(); len(errs) > 0 {
		return nil, mcperr.New("validation_error", "post data failed validation", errs)
	}

	content := post.Content
	if p.cfg.MarkdownContent() {
		html, err := markdown.ToHTML(content)
		if err != nil {
			return nil, mcperr.Wrap("post_creation_error", "converting markdown content", err)
		}
		content = html
	}

	status := post.Status
	if status == "" {
		status = p.cfg.DefaultStatus
	}
	if status == "publish" && p.cfg.RequirePreview() {
		p.log.Warn("preview approval required, holding post as draft", "title", post.Title)
		status = "draft"
	}

	payload := wp.PostPayload{
		Title:      post.Title,
		Content:    content,
		Excerpt:    post.Excerpt,
		Status:     status,
		Categories: post.Categories,
		Tags:       post.Tags,
	}
	if post.FeaturedMedia != nil {
		payload.FeaturedMedia = post.FeaturedMedia.ID
	}

	ref, err := p.write(ctx, models.ResolveTarget(post.ID, post.Slug), payload)
	if err != nil {
		return nil, err
	}

	if seoData := models.NormalizeSEO(post); seoData != nil {
		meta := seo.Translate(seoData)
		if len(meta) > 0 {
			if err := p.api.UpdatePostMeta(ctx, ref.ID, meta); err != nil {
				return nil, mcperr.New("post_creation_error",
					fmt.Sprintf("post %d written but seo metadata failed", ref.ID),
					map[string]any{"postId": ref.ID, "original": err.Error()})
			}
		}
	}

	p.log.Info("published", "id", ref.ID, "status", status, "update", ref.IsUpdate)
	return ref, nil
}

func (p *Publisher) write(ctx context.Context, target models.Target, payload wp.PostPayload) (*models.PostRef, error) {
	switch target.Kind {
	case models.TargetUpdateByID:
		ref, err := p.api.UpdatePost(ctx, target.ID, payload)
		if err != nil {
			return nil, mcperr.Wrap("post_creation_error", "updating post", err)
		}
		return &models.PostRef{ID: ref.ID, Link: ref.Link, IsUpdate: true}, nil

	case models.TargetUpdateBySlug:
		existing, err := p.api.FindPostBySlug(ctx, target.Slug)
		if err != nil {
			return nil, mcperr.Wrap("post_creation_error", "looking up post by slug", err)
		}
		if existing != nil {
			ref, err := p.api.UpdatePost(ctx, existing.ID, payload)
			if err != nil {
				return nil, mcperr.Wrap("post_creation_error", "updating post", err)
			}
			return &models.PostRef{ID: ref.ID, Link: ref.Link, IsUpdate: true}, nil
		}
		// No post carries the slug yet; create one that does.
		payload.Slug = target.Slug
		fallthrough

	default:
		ref, err := p.api.CreatePost(ctx, payload)
		if err != nil {
			return nil, mcperr.Wrap("post_creation_error", "creating post", err)
		}
		return &models.PostRef{ID: ref.ID, Link: ref.Link, IsUpdate: false}, nil
	}
}
