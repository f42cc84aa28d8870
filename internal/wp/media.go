// ABOUTME: Media operations: binary upload and metadata patching.
// ABOUTME: Media records are only ever produced by the API, never locally.

package wp

import (
	"context"
	"fmt"
	"net/http"
)

// MediaSize is one generated rendition of an uploaded image.
type MediaSize struct {
	File      string `json:"file"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	MimeType  string `json:"mime_type"`
	SourceURL string `json:"source_url"`
}

// Media is the server-assigned media record.
type Media struct {
	ID           int           `json:"id"`
	URL          string        `json:"url,omitempty"`
	SourceURL    string        `json:"source_url"`
	Title        RenderedField `json:"title"`
	AltText      string        `json:"alt_text"`
	Caption      RenderedField `json:"caption"`
	Description  RenderedField `json:"description"`
	MediaType    string        `json:"media_type"`
	MimeType     string        `json:"mime_type"`
	MediaDetails struct {
		Width  int                  `json:"width"`
		Height int                  `json:"height"`
		File   string               `json:"file"`
		Sizes  map[string]MediaSize `json:"sizes"`
	} `json:"media_details"`
}

// MediaMeta is the caller-supplied metadata patched onto an upload.
type MediaMeta struct {
	Title       string `json:"title,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
	Caption     string `json:"caption,omitempty"`
	Description string `json:"description,omitempty"`
}

func (m *MediaMeta) empty() bool {
	return m == nil || (m.Title == "" && m.AltText == "" && m.Caption == "" && m.Description == "")
}

// UploadMedia uploads raw bytes as a new media item and, when metadata is
// supplied, patches it onto the created record in a second call.
func (c *Client) UploadMedia(ctx context.Context, data []byte, filename, mimeType string, meta *MediaMeta) (*Media, error) {
	var media Media
	if err := c.upload(ctx, "/wp/v2/media", data, filename, mimeType, &media); err != nil {
		return nil, err
	}
	c.log.Info("uploaded media", "id", media.ID, "filename", filename)

	if meta.empty() {
		return &media, nil
	}
	return c.UpdateMedia(ctx, media.ID, meta)
}

// UpdateMedia patches title/alt/caption/description on a media item.
func (c *Client) UpdateMedia(ctx context.Context, id int, meta *MediaMeta) (*Media, error) {
	var media Media
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/wp/v2/media/%d", id), nil, meta, &media); err != nil {
		return nil, err
	}
	return &media, nil
}
