// ABOUTME: Unified SEO record shared by the publisher and the translator.
// ABOUTME: Tagged union of Yoast and RankMath field sets.

package models

import (
	"encoding/json"
	"fmt"
)

// YoastFields is the semantic field set for the Yoast plugin. Absent fields
// are omitted, never defaulted.
type YoastFields struct {
	Title              string `json:"title,omitempty"`
	MetaDescription    string `json:"metaDescription,omitempty"`
	FocusKeyword       string `json:"focusKeyword,omitempty"`
	MetaRobotsNoindex  string `json:"metaRobotsNoindex,omitempty"`
	MetaRobotsNofollow string `json:"metaRobotsNofollow,omitempty"`
	CanonicalURL       string `json:"canonicalUrl,omitempty"`
	OpenGraphTitle     string `json:"opengraphTitle,omitempty"`
	OpenGraphDesc      string `json:"opengraphDescription,omitempty"`
	OpenGraphImage     string `json:"opengraphImage,omitempty"`
	TwitterTitle       string `json:"twitterTitle,omitempty"`
	TwitterDescription string `json:"twitterDescription,omitempty"`
	TwitterImage       string `json:"twitterImage,omitempty"`
}

// RankMathFields is the semantic field set for the RankMath plugin. It has
// no separate Twitter-card fields in this mapping.
type RankMathFields struct {
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	FocusKeyword string `json:"focusKeyword,omitempty"`
	RobotsIndex  string `json:"robotsIndex,omitempty"`
	CanonicalURL string `json:"canonicalUrl,omitempty"`
	OGTitle      string `json:"ogTitle,omitempty"`
	OGDesc       string `json:"ogDescription,omitempty"`
	OGImage      string `json:"ogImage,omitempty"`
}

// SEOData is the plugin-tagged union. Exactly one of Yoast/RankMath is
// populated, matching the Plugin tag.
type SEOData struct {
	Plugin   string
	Yoast    *YoastFields
	RankMath *RankMathFields
}

// Validate checks the tag and that the matching variant is populated.
func (s *SEOData) Validate() error {
	switch s.Plugin {
	case "yoast":
		if s.Yoast == nil {
			return fmt.Errorf("seo plugin is yoast but no yoast data given")
		}
	case "rankmath":
		if s.RankMath == nil {
			return fmt.Errorf("seo plugin is rankmath but no rankmath data given")
		}
	default:
		return fmt.Errorf("unknown seo plugin %q", s.Plugin)
	}
	return nil
}

// seoWire is the on-the-wire shape: {"plugin": "...", "data": {...}}.
type seoWire struct {
	Plugin string          `json:"plugin"`
	Data   json.RawMessage `json:"data"`
}

func (s *SEOData) UnmarshalJSON(data []byte) error {
	var wire seoWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	s.Plugin = wire.Plugin
	switch wire.Plugin {
	case "yoast":
		s.Yoast = &YoastFields{}
		return json.Unmarshal(wire.Data, s.Yoast)
	case "rankmath":
		s.RankMath = &RankMathFields{}
		return json.Unmarshal(wire.Data, s.RankMath)
	default:
		return fmt.Errorf("unknown seo plugin %q", wire.Plugin)
	}
}

func (s SEOData) MarshalJSON() ([]byte, error) {
	var inner any
	switch s.Plugin {
	case "yoast":
		inner = s.Yoast
	case "rankmath":
		inner = s.RankMath
	default:
		return nil, fmt.Errorf("unknown seo plugin %q", s.Plugin)
	}
	payload, err := json.Marshal(inner)
	if err != nil {
		return nil, err
	}
	return json.Marshal(seoWire{Plugin: s.Plugin, Data: payload})
}

// NormalizeSEO folds the legacy yoast block into the unified form. The
// unified record takes precedence when both are present; nil means no SEO
// metadata should be written at all.
func NormalizeSEO(post *PostData) *SEOData {
	if post.SEO != nil {
		return post.SEO
	}
	if post.Yoast != nil {
		return &SEOData{Plugin: "yoast", Yoast: post.Yoast}
	}
	return nil
}
