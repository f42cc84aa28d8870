// ABOUTME: State machine tests against a fake API: preview rail, targets, SEO.
// ABOUTME: The fake records payloads so assertions read what was sent.

package publisher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/harper/presskit/internal/config"
	"github.com/harper/presskit/internal/mcperr"
	"github.com/harper/presskit/internal/models"
	"github.com/harper/presskit/internal/wp"
)

type fakeAPI struct {
	nextID      int
	created     []wp.PostPayload
	updated     map[int]wp.PostPayload
	meta        map[int]map[string]any
	bySlug      map[string]*wp.Post
	uploads     int
	uploadMetas []*wp.MediaMeta
	uploadErr   error

	categories map[string]int
	tags       map[string]int
	createdTax []string
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		nextID:     100,
		updated:    map[int]wp.PostPayload{},
		meta:       map[int]map[string]any{},
		bySlug:     map[string]*wp.Post{},
		categories: map[string]int{},
		tags:       map[string]int{},
	}
}

func (f *fakeAPI) CreatePost(_ context.Context, payload wp.PostPayload) (*wp.PostRef, error) {
	f.nextID++
	f.created = append(f.created, payload)
	return &wp.PostRef{ID: f.nextID, Link: fmt.Sprintf("https://example.com/?p=%d", f.nextID)}, nil
}

func (f *fakeAPI) UpdatePost(_ context.Context, id int, payload wp.PostPayload) (*wp.PostRef, error) {
	f.updated[id] = payload
	return &wp.PostRef{ID: id, Link: fmt.Sprintf("https://example.com/?p=%d", id)}, nil
}

func (f *fakeAPI) FindPostBySlug(_ context.Context, slug string) (*wp.Post, error) {
	return f.bySlug[slug], nil
}

func (f *fakeAPI) UpdatePostMeta(_ context.Context, id int, meta map[string]any) error {
	f.meta[id] = meta
	return nil
}

func (f *fakeAPI) UploadMedia(_ context.Context, _ []byte, filename, _ string, meta *wp.MediaMeta) (*wp.Media, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	f.uploads++
	f.uploadMetas = append(f.uploadMetas, meta)
	media := &wp.Media{
		ID:        500 + f.uploads,
		SourceURL: "https://example.com/wp-content/uploads/" + filename,
	}
	if meta != nil {
		media.AltText = meta.AltText
	}
	return media, nil
}

func (f *fakeAPI) EnsureCategory(_ context.Context, data wp.CategoryData) (*wp.Category, bool, error) {
	if id, ok := f.categories[data.Name]; ok {
		return &wp.Category{ID: id, Name: data.Name}, false, nil
	}
	id := 10 + len(f.categories)
	f.categories[data.Name] = id
	f.createdTax = append(f.createdTax, "category:"+data.Name)
	return &wp.Category{ID: id, Name: data.Name}, true, nil
}

func (f *fakeAPI) EnsureTag(_ context.Context, data wp.TagData) (*wp.Tag, bool, error) {
	if id, ok := f.tags[data.Name]; ok {
		return &wp.Tag{ID: id, Name: data.Name}, false, nil
	}
	id := 50 + len(f.tags)
	f.tags[data.Name] = id
	f.createdTax = append(f.createdTax, "tag:"+data.Name)
	return &wp.Tag{ID: id, Name: data.Name}, true, nil
}

func testConfig() *config.Config {
	return &config.Config{
		WordPressURL:         "https://example.com",
		DefaultStatus:        "draft",
		ContentType:          config.ContentHTML,
		PreviewApproval:      "true",
		SEOPlugin:            config.PluginYoast,
		AutoFeaturedImage:    true,
		ProcessContentImages: true,
		AutoExcerpt:          true,
	}
}

func TestPublishPreviewRailForcesDraft(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	ref, err := pub.Publish(context.Background(), &models.PostData{
		Title: "t", Content: "c", Status: "publish",
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if ref.IsUpdate {
		t.Error("fresh post reported as update")
	}
	if got := api.created[0].Status; got != "draft" {
		t.Errorf("expected publish forced to draft, got %q", got)
	}
}

func TestPublishPreviewDisabled(t *testing.T) {
	api := newFakeAPI()
	cfg := testConfig()
	cfg.PreviewApproval = "false"
	pub := New(api, cfg, nil, nil)

	if _, err := pub.Publish(context.Background(), &models.PostData{
		Title: "t", Content: "c", Status: "publish",
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if got := api.created[0].Status; got != "publish" {
		t.Errorf("expected publish to pass through, got %q", got)
	}
}

func TestPublishDefaultStatus(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	if _, err := pub.Publish(context.Background(), &models.PostData{Title: "t", Content: "c"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if got := api.created[0].Status; got != "draft" {
		t.Errorf("expected configured default status, got %q", got)
	}
}

func TestPublishUpdateByID(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	ref, err := pub.Publish(context.Background(), &models.PostData{
		ID: 42, Title: "t", Content: "c",
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !ref.IsUpdate || ref.ID != 42 {
		t.Errorf("expected update of 42, got %+v", ref)
	}
	if _, ok := api.updated[42]; !ok {
		t.Error("update endpoint never called")
	}
	if len(api.created) != 0 {
		t.Error("create called during id update")
	}
}

func TestPublishUpdateBySlugFound(t *testing.T) {
	api := newFakeAPI()
	api.bySlug["my-post"] = &wp.Post{ID: 7, Slug: "my-post"}
	pub := New(api, testConfig(), nil, nil)

	ref, err := pub.Publish(context.Background(), &models.PostData{
		Slug: "my-post", Title: "t", Content: "c",
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if !ref.IsUpdate || ref.ID != 7 {
		t.Errorf("expected update of 7, got %+v", ref)
	}
}

func TestPublishSlugMissDegradesToCreate(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	ref, err := pub.Publish(context.Background(), &models.PostData{
		Slug: "brand-new", Title: "t", Content: "c",
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if ref.IsUpdate {
		t.Error("slug miss must report a create")
	}
	if got := api.created[0].Slug; got != "brand-new" {
		t.Errorf("requested slug must carry into the create, got %q", got)
	}
}

func TestPublishMarkdownConversion(t *testing.T) {
	api := newFakeAPI()
	cfg := testConfig()
	cfg.ContentType = config.ContentMarkdown
	pub := New(api, cfg, nil, nil)

	if _, err := pub.Publish(context.Background(), &models.PostData{
		Title: "t", Content: "# Heading\n\nBody text.",
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	sent := api.created[0].Content
	if !strings.Contains(sent, "<h1") || !strings.Contains(sent, "<p>") {
		t.Errorf("markdown not rendered, sent: %q", sent)
	}
}

func TestPublishHTMLPassthrough(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	raw := "<p>already html</p>"
	if _, err := pub.Publish(context.Background(), &models.PostData{
		Title: "t", Content: raw,
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if got := api.created[0].Content; got != raw {
		t.Errorf("html content must pass through unchanged, got %q", got)
	}
}

func TestPublishAppliesSEOMeta(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	ref, err := pub.Publish(context.Background(), &models.PostData{
		Title: "t", Content: "c",
		SEO: &models.SEOData{
			Plugin: "yoast",
			Yoast:  &models.YoastFields{Title: "SEO Title", FocusKeyword: "golang"},
		},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	meta := api.meta[ref.ID]
	if meta["_yoast_wpseo_title"] != "SEO Title" {
		t.Errorf("yoast title key missing: %v", meta)
	}
	if meta["_yoast_wpseo_focuskw"] != "golang" {
		t.Errorf("focus keyword key missing: %v", meta)
	}
}

func TestPublishLegacyYoastNormalized(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	ref, err := pub.Publish(context.Background(), &models.PostData{
		Title: "t", Content: "c",
		Yoast: &models.YoastFields{MetaDescription: "legacy description"},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if api.meta[ref.ID]["_yoast_wpseo_metadesc"] != "legacy description" {
		t.Errorf("legacy yoast block not applied: %v", api.meta[ref.ID])
	}
}

func TestPublishUnifiedSEOWinsOverLegacy(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	ref, err := pub.Publish(context.Background(), &models.PostData{
		Title: "t", Content: "c",
		Yoast: &models.YoastFields{Title: "legacy"},
		SEO: &models.SEOData{
			Plugin:   "rankmath",
			RankMath: &models.RankMathFields{Title: "unified"},
		},
	})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	meta := api.meta[ref.ID]
	if meta["rank_math_title"] != "unified" {
		t.Errorf("unified record must win: %v", meta)
	}
	if _, ok := meta["_yoast_wpseo_title"]; ok {
		t.Errorf("legacy keys leaked alongside unified record: %v", meta)
	}
}

func TestPublishNoSEONoMetaCall(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	ref, err := pub.Publish(context.Background(), &models.PostData{Title: "t", Content: "c"})
	if err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if _, ok := api.meta[ref.ID]; ok {
		t.Error("meta endpoint called without seo data")
	}
}

func TestPublishValidationError(t *testing.T) {
	pub := New(newFakeAPI(), testConfig(), nil, nil)

	_, err := pub.Publish(context.Background(), &models.PostData{Title: "", Content: ""})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var tagged *mcperr.Error
	if !errors.As(err, &tagged) || tagged.Code != "validation_error" {
		t.Errorf("expected validation_error, got %v", err)
	}
	fields, ok := tagged.Details.([]models.FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %#v", tagged.Details)
	}
}

func TestPublishFeaturedMediaCoercion(t *testing.T) {
	api := newFakeAPI()
	pub := New(api, testConfig(), nil, nil)

	if _, err := pub.Publish(context.Background(), &models.PostData{
		Title: "t", Content: "c",
		FeaturedMedia: &models.FeaturedMedia{ID: 321},
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if got := api.created[0].FeaturedMedia; got != 321 {
		t.Errorf("featured media id not forwarded, got %d", got)
	}
}
