// ABOUTME: Image prompt generation for featured and section images.
// ABOUTME: Pure formatting; the calling assistant does the actual generation.

package blog

import (
	"fmt"
	"strings"
)

// DefaultStyle is used when the caller supplies no style.
const DefaultStyle = "professional"

var styleDescriptions = map[string]string{
	"professional": "Clean, corporate, trust-building, high-quality photography or realistic 3D render",
	"modern":       "Sleek, trendy, using gradients and contemporary design elements",
	"minimalist":   "Simple, spacious, focused on a single concept, neutral colors",
	"vibrant":      "High energy, bold colors, dynamic composition",
	"technical":    "Schematic-inspired, detailed, showing internal workings or code",
}

// KnownStyle reports whether style is one of the supported presets.
func KnownStyle(style string) bool {
	_, ok := styleDescriptions[style]
	return ok
}

// Section describes one part of the post needing an illustration.
type Section struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ImagePrompt is a ready-to-use generation prompt with placement advice.
type ImagePrompt struct {
	SectionTitle       string `json:"sectionTitle,omitempty"`
	Prompt             string `json:"prompt"`
	AltText            string `json:"altText"`
	SuggestedPlacement string `json:"suggestedPlacement"`
}

// PromptSet is the full set of prompts for one post.
type PromptSet struct {
	Style         string        `json:"style"`
	FeaturedImage ImagePrompt   `json:"featuredImage"`
	SectionImages []ImagePrompt `json:"sectionImages"`
}

// GeneratePrompts builds a featured-image prompt and one prompt per
// section in the chosen style.
func GeneratePrompts(blogTitle string, sections []Section, style string) *PromptSet {
	if style == "" {
		style = DefaultStyle
	}
	desc := styleDescriptions[style]

	set := &PromptSet{
		Style: style,
		FeaturedImage: ImagePrompt{
			Prompt: fmt.Sprintf("%s featured image for a blog post titled %q. Concept: evocative of the main theme, visually striking, 16:9 aspect ratio.",
				desc, blogTitle),
			AltText:            "Featured image for " + blogTitle,
			SuggestedPlacement: "featured",
		},
		SectionImages: []ImagePrompt{},
	}

	for _, section := range sections {
		placement := "after_" + strings.ReplaceAll(strings.ToLower(section.Title), " ", "_")
		set.SectionImages = append(set.SectionImages, ImagePrompt{
			SectionTitle: section.Title,
			Prompt: fmt.Sprintf("%s illustrative image for section %q. Focus on: %s. 3:2 aspect ratio.",
				desc, section.Title, section.Description),
			AltText:            "Illustration for " + section.Title,
			SuggestedPlacement: placement,
		})
	}
	return set
}
