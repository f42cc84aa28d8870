// ABOUTME: Minimal TinyPNG shrink client over its HTTP API.
// ABOUTME: POST /shrink, then download the compressed output it points at.

package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
)

const tinifyEndpoint = "https://api.tinify.com/shrink"

// shrink runs one lossy compression pass. The API responds 201 with a
// Location header pointing at the compressed result.
func (in *Ingester) shrink(ctx context.Context, data []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tinifyEndpoint, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth("api", in.tinifyKey)

	resp, err := in.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tinypng shrink: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tinypng shrink: status %d: %s", resp.StatusCode, raw)
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return nil, fmt.Errorf("tinypng shrink: no output location")
	}

	dl, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	dl.SetBasicAuth("api", in.tinifyKey)

	out, err := in.http.Do(dl)
	if err != nil {
		return nil, fmt.Errorf("tinypng download: %w", err)
	}
	defer out.Body.Close()

	if out.StatusCode >= 400 {
		return nil, fmt.Errorf("tinypng download: status %d", out.StatusCode)
	}
	return io.ReadAll(out.Body)
}
