// ABOUTME: Category and tag operations with find-or-create reconciliation.
// ABOUTME: Exact-match filtering happens client-side; server search is substring.

package wp

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Category is a WordPress category term.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Parent      int    `json:"parent"`
	Count       int    `json:"count"`
	Link        string `json:"link"`
}

// CategoryData is the create shape for a category.
type CategoryData struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Parent      int    `json:"parent,omitempty"`
}

// Tag is a WordPress tag term.
type Tag struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Count       int    `json:"count"`
	Link        string `json:"link"`
}

// TagData is the create shape for a tag.
type TagData struct {
	Name        string `json:"name"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// TaxonomyMinimal is the id/name pair returned in minimal listings.
type TaxonomyMinimal struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ListOptions narrows taxonomy listings.
type ListOptions struct {
	Search  string
	PerPage int
}

func (o ListOptions) query() url.Values {
	query := url.Values{}
	perPage := o.PerPage
	if perPage <= 0 {
		perPage = 100
	}
	query.Set("per_page", strconv.Itoa(perPage))
	if o.Search != "" {
		query.Set("search", o.Search)
	}
	return query
}

// GetCategories lists categories, optionally filtered by search text.
func (c *Client) GetCategories(ctx context.Context, opts ListOptions) ([]Category, error) {
	var categories []Category
	if err := c.do(ctx, http.MethodGet, "/wp/v2/categories", opts.query(), nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// CreateCategory creates a category without checking for duplicates; use
// EnsureCategory for find-or-create semantics.
func (c *Client) CreateCategory(ctx context.Context, data CategoryData) (*Category, error) {
	var category Category
	if err := c.do(ctx, http.MethodPost, "/wp/v2/categories", nil, data, &category); err != nil {
		return nil, err
	}
	c.log.Info("created category", "id", category.ID, "name", category.Name)
	return &category, nil
}

// FindCategoryByName looks up a category by case-insensitive exact name
// match. The server's search filter is substring-based ("Tech" matches
// "Technology"), so the results are filtered again here. Returns nil when
// no exact match exists.
func (c *Client) FindCategoryByName(ctx context.Context, name string) (*Category, error) {
	categories, err := c.GetCategories(ctx, ListOptions{Search: name})
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if strings.EqualFold(categories[i].Name, name) {
			return &categories[i], nil
		}
	}
	return nil, nil
}

// EnsureCategory returns the existing category with the same name, or
// creates one. The second result reports whether a create happened.
// Existing terms are returned as-is; attributes beyond the name are not
// reconciled. Two concurrent calls for the same name can both miss the
// lookup and create duplicates; callers are expected to be sequential.
func (c *Client) EnsureCategory(ctx context.Context, data CategoryData) (*Category, bool, error) {
	existing, err := c.FindCategoryByName(ctx, data.Name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := c.CreateCategory(ctx, data)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}

// GetTags lists tags, optionally filtered by search text.
func (c *Client) GetTags(ctx context.Context, opts ListOptions) ([]Tag, error) {
	var tags []Tag
	if err := c.do(ctx, http.MethodGet, "/wp/v2/tags", opts.query(), nil, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}

// CreateTag creates a tag without checking for duplicates.
func (c *Client) CreateTag(ctx context.Context, data TagData) (*Tag, error) {
	var tag Tag
	if err := c.do(ctx, http.MethodPost, "/wp/v2/tags", nil, data, &tag); err != nil {
		return nil, err
	}
	c.log.Info("created tag", "id", tag.ID, "name", tag.Name)
	return &tag, nil
}

// FindTagByName looks up a tag by case-insensitive exact name match,
// returning nil when no exact match exists.
func (c *Client) FindTagByName(ctx context.Context, name string) (*Tag, error) {
	tags, err := c.GetTags(ctx, ListOptions{Search: name})
	if err != nil {
		return nil, err
	}
	for i := range tags {
		if strings.EqualFold(tags[i].Name, name) {
			return &tags[i], nil
		}
	}
	return nil, nil
}

// EnsureTag returns the existing tag with the same name, or creates one.
func (c *Client) EnsureTag(ctx context.Context, data TagData) (*Tag, bool, error) {
	existing, err := c.FindTagByName(ctx, data.Name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	created, err := c.CreateTag(ctx, data)
	if err != nil {
		return nil, false, err
	}
	return created, true, nil
}
