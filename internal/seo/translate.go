// ABOUTME: Pure translation from the unified SEO record to post-meta keys.
// ABOUTME: The only place plugin-specific meta keys are spelled.

package seo

import (
	"github.com/harper/presskit/internal/models"
)

// Translate maps the present semantic fields of a unified SEO record onto
// plugin-specific post-meta keys. Absent fields produce no key. The RankMath
// table carries no Twitter-card keys; that asymmetry is part of the mapping.
func Translate(data *models.SEOData) map[string]any {
	meta := map[string]any{}
	if data == nil {
		return meta
	}

	switch data.Plugin {
	case "yoast":
		d := data.Yoast
		if d == nil {
			return meta
		}
		put(meta, "_yoast_wpseo_title", d.Title)
		put(meta, "_yoast_wpseo_metadesc", d.MetaDescription)
		put(meta, "_yoast_wpseo_focuskw", d.FocusKeyword)
		put(meta, "_yoast_wpseo_meta_robots_noindex", d.MetaRobotsNoindex)
		put(meta, "_yoast_wpseo_meta_robots_nofollow", d.MetaRobotsNofollow)
		put(meta, "_yoast_wpseo_canonical", d.CanonicalURL)
		put(meta, "_yoast_wpseo_opengraph_title", d.OpenGraphTitle)
		put(meta, "_yoast_wpseo_opengraph_description", d.OpenGraphDesc)
		put(meta, "_yoast_wpseo_opengraph_image", d.OpenGraphImage)
		put(meta, "_yoast_wpseo_twitter_title", d.TwitterTitle)
		put(meta, "_yoast_wpseo_twitter_description", d.TwitterDescription)
		put(meta, "_yoast_wpseo_twitter_image", d.TwitterImage)

	case "rankmath":
		d := data.RankMath
		if d == nil {
			return meta
		}
		put(meta, "rank_math_title", d.Title)
		put(meta, "rank_math_description", d.Description)
		put(meta, "rank_math_focus_keyword", d.FocusKeyword)
		put(meta, "rank_math_robots", d.RobotsIndex)
		put(meta, "rank_math_canonical", d.CanonicalURL)
		put(meta, "rank_math_facebook_title", d.OGTitle)
		put(meta, "rank_math_facebook_description", d.OGDesc)
		put(meta, "rank_math_facebook_image", d.OGImage)
	}

	return meta
}

func put(meta map[string]any, key, value string) {
	if value != "" {
		meta[key] = value
	}
}
