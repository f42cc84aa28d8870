// ABOUTME: Tests for the SEO meta-key translation tables.
// ABOUTME: Verifies absent fields write no keys and the RankMath asymmetry.

package seo

import (
	"testing"

	"github.com/harper/presskit/internal/models"
)

func TestTranslateYoastSingleField(t *testing.T) {
	meta := Translate(&models.SEOData{
		Plugin: "yoast",
		Yoast:  &models.YoastFields{Title: "T"},
	})

	if len(meta) != 1 {
		t.Fatalf("expected exactly one key, got %d: %v", len(meta), meta)
	}
	if meta["_yoast_wpseo_title"] != "T" {
		t.Errorf("expected _yoast_wpseo_title=T, got %v", meta)
	}
}

func TestTranslateYoastFull(t *testing.T) {
	meta := Translate(&models.SEOData{
		Plugin: "yoast",
		Yoast: &models.YoastFields{
			Title:              "T",
			MetaDescription:    "D",
			FocusKeyword:       "K",
			MetaRobotsNoindex:  "1",
			MetaRobotsNofollow: "0",
			CanonicalURL:       "https://example.com/p",
			OpenGraphTitle:     "OGT",
			OpenGraphDesc:      "OGD",
			OpenGraphImage:     "OGI",
			TwitterTitle:       "TT",
			TwitterDescription: "TD",
			TwitterImage:       "TI",
		},
	})

	want := map[string]string{
		"_yoast_wpseo_title":                "T",
		"_yoast_wpseo_metadesc":             "D",
		"_yoast_wpseo_focuskw":              "K",
		"_yoast_wpseo_meta_robots_noindex":  "1",
		"_yoast_wpseo_meta_robots_nofollow": "0",
		"_yoast_wpseo_canonical":            "https://example.com/p",
		"_yoast_wpseo_opengraph_title":      "OGT",
		"_yoast_wpseo_opengraph_description": "OGD",
		"_yoast_wpseo_opengraph_image":      "OGI",
		"_yoast_wpseo_twitter_title":        "TT",
		"_yoast_wpseo_twitter_description":  "TD",
		"_yoast_wpseo_twitter_image":        "TI",
	}
	if len(meta) != len(want) {
		t.Fatalf("expected %d keys, got %d: %v", len(want), len(meta), meta)
	}
	for k, v := range want {
		if meta[k] != v {
			t.Errorf("key %s: expected %q, got %v", k, v, meta[k])
		}
	}
}

func TestTranslateRankMathHasNoTwitterKeys(t *testing.T) {
	meta := Translate(&models.SEOData{
		Plugin: "rankmath",
		RankMath: &models.RankMathFields{
			Title:        "T",
			Description:  "D",
			FocusKeyword: "K",
			RobotsIndex:  "noindex",
			CanonicalURL: "https://example.com/p",
			OGTitle:      "OGT",
			OGDesc:       "OGD",
			OGImage:      "OGI",
		},
	})

	if len(meta) != 8 {
		t.Fatalf("expected 8 keys, got %d: %v", len(meta), meta)
	}
	if meta["rank_math_robots"] != "noindex" {
		t.Errorf("expected robots token, got %v", meta["rank_math_robots"])
	}
	for k := range meta {
		if k == "rank_math_twitter_title" || k == "rank_math_twitter_description" {
			t.Errorf("rankmath mapping must not emit twitter keys, got %s", k)
		}
	}
}

func TestTranslateNil(t *testing.T) {
	if meta := Translate(nil); len(meta) != 0 {
		t.Errorf("expected empty meta for nil record, got %v", meta)
	}
}
