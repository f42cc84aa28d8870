// ABOUTME: Stateless blog structure scorer.
// ABOUTME: Fixed penalties for hard gaps, advisory suggestions otherwise.

package blog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/harper/presskit/internal/models"
)

// Penalty values subtracted from the starting score of 100.
const (
	penaltyMissingTitle    = 50
	penaltyMissingContent  = 50
	penaltyMissingMetaDesc = 5
	penaltyKeywordAbsent   = 5
	penaltyNoCategories    = 5
	penaltyNoFeatured      = 10
)

var h2Pattern = regexp.MustCompile(`(?m)^## `)

// Report is the verification result. Warnings carry the penalties listed
// above; suggestions never affect the score. Validity depends only on the
// hard errors (missing title or content).
type Report struct {
	IsValid     bool     `json:"isValid"`
	Score       int      `json:"score"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
	Details     Details  `json:"details"`
}

// Details summarizes what was measured.
type Details struct {
	WordCount     int  `json:"wordCount"`
	HasSEO        bool `json:"hasSEO"`
	CategoryCount int  `json:"categoryCount"`
	TagCount      int  `json:"tagCount"`
}

// Verify scores a draft for structure, quality, and SEO readiness.
func Verify(data *models.BlogData) *Report {
	report := &Report{
		Score:       100,
		Errors:      []string{},
		Warnings:    []string{},
		Suggestions: []string{},
	}

	if data.Title == "" {
		report.Errors = append(report.Errors, "Title is missing")
		report.Score -= penaltyMissingTitle
	} else {
		if len(data.Title) < 30 {
			report.Warnings = append(report.Warnings, "Title is quite short (less than 30 chars)")
		}
		if len(data.Title) > 60 {
			report.Warnings = append(report.Warnings, "Title is quite long (over 60 chars)")
		}
	}

	wordCount := 0
	if data.Content == "" {
		report.Errors = append(report.Errors, "Content is missing")
		report.Score -= penaltyMissingContent
	} else {
		wordCount = len(strings.Fields(data.Content))
		if wordCount < 300 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Content is thin (%d words). Recommended > 600.", wordCount))
		}
		if len(h2Pattern.FindAllString(data.Content, -1)) < 2 {
			report.Suggestions = append(report.Suggestions,
				"Consider adding more H2 subheadings for better structure")
		}
		if strings.Contains(data.Content, "<") && strings.Contains(data.Content, ">") &&
			!strings.Contains(data.Content, "</") {
			report.Warnings = append(report.Warnings,
				"Content contains HTML tags that might not be closed correctly")
		}
	}

	if data.SEO != nil {
		if data.SEO.MetaDescription == "" {
			report.Warnings = append(report.Warnings, "Meta description is missing")
			report.Score -= penaltyMissingMetaDesc
		} else if len(data.SEO.MetaDescription) < 120 {
			report.Suggestions = append(report.Suggestions,
				"Meta description is short, try to use 150-160 characters")
		}

		keyword := data.SEO.FocusKeyword
		if keyword != "" && data.Content != "" &&
			!strings.Contains(strings.ToLower(data.Content), strings.ToLower(keyword)) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("Focus keyword %q not found in content", keyword))
			report.Score -= penaltyKeywordAbsent
		}
	}

	if len(data.Categories) == 0 {
		report.Warnings = append(report.Warnings, "No categories assigned")
		report.Score -= penaltyNoCategories
	}
	if len(data.Tags) < 3 {
		report.Suggestions = append(report.Suggestions,
			"Add at least 3-5 tags for better discoverability")
	}

	if data.FeaturedMedia == nil {
		report.Warnings = append(report.Warnings, "Featured image is missing")
		report.Score -= penaltyNoFeatured
	}

	if report.Score < 0 {
		report.Score = 0
	}
	report.IsValid = len(report.Errors) == 0
	report.Details = Details{
		WordCount:     wordCount,
		HasSEO:        data.SEO != nil,
		CategoryCount: len(data.Categories),
		TagCount:      len(data.Tags),
	}
	return report
}
