// ABOUTME: Post operations: create, update, slug lookup, meta patching.
// ABOUTME: Thin wrappers over /wp/v2/posts.

package wp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Post is the subset of the WordPress post record this client reads.
type Post struct {
	ID     int           `json:"id"`
	Slug   string        `json:"slug"`
	Link   string        `json:"link"`
	Status string        `json:"status"`
	Title  RenderedField `json:"title"`
}

// PostPayload is the write shape for create and update calls.
type PostPayload struct {
	Title         string `json:"title,omitempty"`
	Content       string `json:"content,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	Status        string `json:"status,omitempty"`
	Categories    []int  `json:"categories,omitempty"`
	Tags          []int  `json:"tags,omitempty"`
	FeaturedMedia int    `json:"featured_media,omitempty"`
	Slug          string `json:"slug,omitempty"`
}

// PostRef is the create/update result: the persisted id and public link.
type PostRef struct {
	ID   int    `json:"id"`
	Link string `json:"link"`
}

// CreatePost creates a new post.
func (c *Client) CreatePost(ctx context.Context, payload PostPayload) (*PostRef, error) {
	var ref PostRef
	if err := c.do(ctx, http.MethodPost, "/wp/v2/posts", nil, payload, &ref); err != nil {
		return nil, err
	}
	c.log.Info("created post", "id", ref.ID)
	return &ref, nil
}

// UpdatePost updates an existing post by id.
func (c *Client) UpdatePost(ctx context.Context, id int, payload PostPayload) (*PostRef, error) {
	var ref PostRef
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/wp/v2/posts/%d", id), nil, payload, &ref); err != nil {
		return nil, err
	}
	c.log.Info("updated post", "id", ref.ID)
	return &ref, nil
}

// FindPostBySlug returns the post with the exact slug, or nil when no post
// matches. Drafts are included so an earlier unpublished run is found and
// updated instead of duplicated.
func (c *Client) FindPostBySlug(ctx context.Context, slug string) (*Post, error) {
	query := url.Values{}
	query.Set("slug", slug)
	query.Set("status", "any")
	query.Set("per_page", "1")

	var posts []Post
	if err := c.do(ctx, http.MethodGet, "/wp/v2/posts", query, nil, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return &posts[0], nil
}

// UpdatePostMeta patches post-meta fields via the posts endpoint, which is
// how the REST API carries arbitrary meta.
func (c *Client) UpdatePostMeta(ctx context.Context, id int, meta map[string]any) error {
	body := map[string]any{"meta": meta}
	return c.do(ctx, http.MethodPost, "/wp/v2/posts/"+strconv.Itoa(id), nil, body, nil)
}
