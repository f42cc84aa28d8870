// ABOUTME: Handler tests against a fake WordPress endpoint.
// ABOUTME: Covers the bare-source upload shorthand and taxonomy listing shape.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/presskit/internal/config"
	"github.com/harper/presskit/internal/media"
	"github.com/harper/presskit/internal/publisher"
	"github.com/harper/presskit/internal/store"
	"github.com/harper/presskit/internal/wp"
)

func newTestServer(t *testing.T, handler http.Handler) *Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		WordPressURL:    srv.URL,
		Username:        "admin",
		AppPassword:     "secret",
		ServerName:      "presskit",
		SEOPlugin:       config.PluginYoast,
		DefaultStatus:   "draft",
		ContentType:     config.ContentHTML,
		PreviewApproval: "true",
		StorageDir:      t.TempDir(),
	}
	client := wp.New(cfg, nil)
	ingester := media.NewIngester("", nil)
	pub := publisher.New(client, cfg, ingester, nil)
	return NewServer(cfg, client, pub, ingester, store.New(cfg.StorageDir), nil)
}

func callTool(t *testing.T, handler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error), args string) *mcp.CallToolResult {
	t.Helper()
	res, err := handler(context.Background(), &mcp.CallToolRequest{
		Params: &mcp.CallToolParamsRaw{Arguments: json.RawMessage(args)},
	})
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) == 0 {
		t.Fatal("result carries no content")
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", res.Content[0])
	}
	return text.Text
}

func writeTestPNG(t *testing.T, dir string) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	for x := 0; x < 40; x += 4 {
		for y := 0; y < 30; y++ {
			img.Set(x, y, color.RGBA{R: 120, G: 60, B: 20, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encoding fixture: %v", err)
	}
	path := filepath.Join(dir, "pic.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestUploadMediaBareSource(t *testing.T) {
	source := writeTestPNG(t, t.TempDir())

	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/media", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id": 77, "source_url": "https://example.com/uploads/pic.jpg",
		})
	})
	s := newTestServer(t, mux)

	res := callTool(t, s.handleUploadMedia, `{"source": `+jsonString(source)+`}`)
	if res.IsError {
		t.Fatalf("bare source must upload as a one-item batch: %s", resultText(t, res))
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"id": 77`) {
		t.Errorf("expected single bare result object, got: %s", text)
	}
	if strings.Contains(text, `"count"`) {
		t.Errorf("single upload must not return the batch shape: %s", text)
	}
}

func TestUploadMediaRequiresSomeSource(t *testing.T) {
	s := newTestServer(t, http.NewServeMux())

	res := callTool(t, s.handleUploadMedia, `{}`)
	if !res.IsError {
		t.Fatal("expected error without items or source")
	}
	if !strings.Contains(resultText(t, res), "upload_media_error") {
		t.Errorf("expected tagged error, got: %s", resultText(t, res))
	}
}

func TestGetTaxonomiesMinimalByDefault(t *testing.T) {
	var perPage string
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/categories", func(w http.ResponseWriter, r *http.Request) {
		perPage = r.URL.Query().Get("per_page")
		json.NewEncoder(w).Encode([]wp.Category{
			{ID: 3, Name: "Tech", Slug: "tech", Count: 9},
		})
	})
	s := newTestServer(t, mux)

	res := callTool(t, s.handleGetTaxonomies, `{"type": "categories", "per_page": 5}`)
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	text := resultText(t, res)
	if !strings.Contains(text, `"name": "Tech"`) {
		t.Errorf("category name missing: %s", text)
	}
	if strings.Contains(text, `"slug"`) {
		t.Errorf("minimal listing must trim to id/name: %s", text)
	}
	if perPage != "5" {
		t.Errorf("per_page not forwarded, server saw %q", perPage)
	}
}

func TestGetTaxonomiesFullRecordsOptIn(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]wp.Category{
			{ID: 3, Name: "Tech", Slug: "tech", Count: 9},
		})
	})
	s := newTestServer(t, mux)

	res := callTool(t, s.handleGetTaxonomies, `{"type": "categories", "minimal": false}`)
	if res.IsError {
		t.Fatalf("unexpected error: %s", resultText(t, res))
	}
	if !strings.Contains(resultText(t, res), `"slug": "tech"`) {
		t.Errorf("full records must include slug: %s", resultText(t, res))
	}
}

// jsonString quotes a string for inline argument payloads.
func jsonString(s string) string {
	data, _ := json.Marshal(s)
	return string(data)
}
