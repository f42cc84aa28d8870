// ABOUTME: Post client tests: create, update, slug lookup, meta patch.
// ABOUTME: Uses httptest fakes that record request shape.

package wp

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestCreatePost(t *testing.T) {
	var gotAuth, gotPath string
	var gotPayload PostPayload

	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/posts", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotPayload)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"id": 77, "link": "https://example.com/?p=77"})
	})

	client := testClient(t, mux)
	ref, err := client.CreatePost(context.Background(), PostPayload{Title: "T", Content: "<p>c</p>", Status: "draft"})
	if err != nil {
		t.Fatalf("CreatePost: %v", err)
	}
	if ref.ID != 77 || ref.Link == "" {
		t.Errorf("unexpected ref: %+v", ref)
	}
	if gotPath != "/wp-json/wp/v2/posts" {
		t.Errorf("unexpected path %q", gotPath)
	}
	if gotAuth == "" || gotAuth[:6] != "Basic " {
		t.Errorf("expected basic auth header, got %q", gotAuth)
	}
	if gotPayload.Status != "draft" {
		t.Errorf("payload status not sent: %+v", gotPayload)
	}
}

func TestUpdatePostMeta(t *testing.T) {
	var gotBody map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/posts/42", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"id": 42})
	})

	client := testClient(t, mux)
	err := client.UpdatePostMeta(context.Background(), 42, map[string]any{"_yoast_wpseo_title": "T"})
	if err != nil {
		t.Fatalf("UpdatePostMeta: %v", err)
	}

	meta, ok := gotBody["meta"].(map[string]any)
	if !ok {
		t.Fatalf("expected meta envelope, got %v", gotBody)
	}
	if meta["_yoast_wpseo_title"] != "T" {
		t.Errorf("expected meta key, got %v", meta)
	}
}

func TestFindPostBySlug(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/posts", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "any" {
			t.Errorf("expected status=any in query, got %q", r.URL.RawQuery)
		}
		switch r.URL.Query().Get("slug") {
		case "existing-post":
			json.NewEncoder(w).Encode([]map[string]any{{
				"id": 5, "slug": "existing-post", "link": "https://example.com/existing-post",
				"status": "draft", "title": map[string]string{"rendered": "Existing"},
			}})
		default:
			w.Write([]byte("[]"))
		}
	})

	client := testClient(t, mux)
	ctx := context.Background()

	post, err := client.FindPostBySlug(ctx, "existing-post")
	if err != nil {
		t.Fatalf("FindPostBySlug: %v", err)
	}
	if post == nil || post.ID != 5 {
		t.Fatalf("expected post 5, got %+v", post)
	}
	if post.Title.String() != "Existing" {
		t.Errorf("rendered title not decoded: %+v", post.Title)
	}

	missing, err := client.FindPostBySlug(ctx, "no-such-slug")
	if err != nil {
		t.Fatalf("FindPostBySlug: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing slug, got %+v", missing)
	}
}
