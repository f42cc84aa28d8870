// ABOUTME: Post data model for publishing requests.
// ABOUTME: Includes flexible featured-media decoding and target resolution.

package models

import (
	"encoding/json"
	"fmt"
)

// FeaturedMedia accepts either a bare numeric id or an object carrying an
// "id" field, and always exposes the numeric id the API expects.
type FeaturedMedia struct {
	ID int
}

func (f *FeaturedMedia) UnmarshalJSON(data []byte) error {
	var id int
	if err := json.Unmarshal(data, &id); err == nil {
		f.ID = id
		return nil
	}

	var obj struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(data, &obj); err == nil {
		f.ID = obj.ID
		return nil
	}

	return fmt.Errorf("cannot unmarshal featured media from %s", string(data))
}

func (f FeaturedMedia) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.ID)
}

// PostData is the tool-facing publishing request. Content is Markdown or
// HTML depending on the configured content representation.
type PostData struct {
	ID            int            `json:"id,omitempty"`
	Slug          string         `json:"slug,omitempty"`
	Title         string         `json:"title"`
	Content       string         `json:"content"`
	Excerpt       string         `json:"excerpt,omitempty"`
	Status        string         `json:"status,omitempty"`
	Categories    []int          `json:"categories,omitempty"`
	Tags          []int          `json:"tags,omitempty"`
	FeaturedMedia *FeaturedMedia `json:"featuredMedia,omitempty"`

	// Yoast is the legacy single-plugin block; SEO wins when both are set.
	Yoast *YoastFields `json:"yoast,omitempty"`
	SEO   *SEOData     `json:"seo,omitempty"`
}

// TargetKind enumerates the create-vs-update decision.
type TargetKind int

const (
	TargetCreate TargetKind = iota
	TargetUpdateByID
	TargetUpdateBySlug
)

// Target is the resolved publishing destination. TargetUpdateBySlug still
// needs a remote lookup; a miss degrades to a create.
type Target struct {
	Kind TargetKind
	ID   int
	Slug string
}

// ResolveTarget makes the implicit create-vs-update decision explicit:
// numeric id wins, then slug, else create.
func ResolveTarget(id int, slug string) Target {
	if id > 0 {
		return Target{Kind: TargetUpdateByID, ID: id}
	}
	if slug != "" {
		return Target{Kind: TargetUpdateBySlug, Slug: slug}
	}
	return Target{Kind: TargetCreate}
}

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the request shape and returns field-level errors for all
// problems found, not just the first.
func (p *PostData) Validate() []FieldError {
	var errs []FieldError

	if p.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if p.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	}
	switch p.Status {
	case "", "draft", "publish", "pending":
	default:
		errs = append(errs, FieldError{Field: "status", Message: fmt.Sprintf("status %q is not one of draft, publish, pending", p.Status)})
	}
	if p.ID < 0 {
		errs = append(errs, FieldError{Field: "id", Message: "id must be a positive integer"})
	}
	if p.SEO != nil {
		if err := p.SEO.Validate(); err != nil {
			errs = append(errs, FieldError{Field: "seo", Message: err.Error()})
		}
	}

	return errs
}

// PostRef identifies a persisted post.
type PostRef struct {
	ID       int    `json:"id"`
	Link     string `json:"link"`
	IsUpdate bool   `json:"isUpdate"`
}
