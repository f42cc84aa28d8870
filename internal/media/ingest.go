// ABOUTME: Image ingestion: fetch, optional TinyPNG pass, JPEG normalization.
// ABOUTME: Output is always JPEG q80 at most 1600px wide, never upscaled.

package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"
)

const (
	maxWidth    = 1600
	jpegQuality = 80

	// DefaultFilename is used when no basename can be derived.
	DefaultFilename = "image.jpg"
)

var urlPattern = regexp.MustCompile(`^https?://`)

// Asset is an ingested image ready for upload.
type Asset struct {
	Data     []byte
	Filename string
	MimeType string
}

// Ingester turns a source (HTTP URL or local path) into an upload-ready
// JPEG asset.
type Ingester struct {
	http      *http.Client
	tinifyKey string
	log       *log.Logger
}

// NewIngester creates an ingester. A non-empty tinifyKey enables the
// TinyPNG compression pass.
func NewIngester(tinifyKey string, logger *log.Logger) *Ingester {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Ingester{
		http:      &http.Client{},
		tinifyKey: tinifyKey,
		log:       logger.With("component", "media"),
	}
}

// Ingest fetches the source bytes, optionally shrinks them through TinyPNG,
// and normalizes to the single consistent output encoding so downstream
// consumers never branch on source format.
func (in *Ingester) Ingest(ctx context.Context, source string) (*Asset, error) {
	data, err := in.fetch(ctx, source)
	if err != nil {
		return nil, err
	}

	if in.tinifyKey != "" {
		shrunk, err := in.shrink(ctx, data)
		if err != nil {
			// Optimization is best-effort; the original bytes still
			// go through normalization.
			in.log.Warn("tinypng optimization failed, using original", "source", source, "err", err)
		} else {
			data = shrunk
		}
	}

	normalized, err := Normalize(data)
	if err != nil {
		return nil, fmt.Errorf("normalizing image from %s: %w", source, err)
	}

	return &Asset{
		Data:     normalized,
		Filename: DeriveFilename(source),
		MimeType: "image/jpeg",
	}, nil
}

func (in *Ingester) fetch(ctx context.Context, source string) ([]byte, error) {
	if !urlPattern.MatchString(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("reading image file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("creating download request: %w", err)
	}
	resp, err := in.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downloading %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("downloading %s: status %d", source, resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Normalize re-encodes any decodable image as JPEG quality 80, capping the
// width at 1600px with aspect ratio preserved. Narrower images are never
// upscaled.
func Normalize(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// DeriveFilename extracts the basename of the source with any query string
// stripped, defaulting to image.jpg.
func DeriveFilename(source string) string {
	trimmed, _, _ := strings.Cut(source, "?")
	name := path.Base(strings.ReplaceAll(trimmed, "\\", "/"))
	if name == "" || name == "." || name == "/" || strings.HasSuffix(trimmed, "/") {
		return DefaultFilename
	}
	// URL sources like https://host leave the host as basename; a name
	// without an extension still uploads fine, but bare scheme leftovers
	// do not.
	if strings.HasPrefix(name, "http:") || strings.HasPrefix(name, "https:") {
		return DefaultFilename
	}
	return name
}
