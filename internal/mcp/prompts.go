// ABOUTME: MCP prompts for common blog production workflows.
// ABOUTME: Pre-configured instructions walking agents through the tools.

package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerPrompts() {
	s.server.AddPrompt(&mcp.Prompt{
		Name:        "write-blog-post",
		Description: "Research, outline, draft, and publish a blog post on a topic",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topic",
				Description: "Topic of the blog post",
				Required:    true,
			},
			{
				Name:        "style",
				Description: "Visual style for generated images (professional, modern, minimalist, vibrant, technical)",
				Required:    false,
			},
		},
	}, s.getWriteBlogPostPrompt)

	s.server.AddPrompt(&mcp.Prompt{
		Name:        "seo-review",
		Description: "Review a drafted post for SEO readiness and apply metadata",
		Arguments: []*mcp.PromptArgument{
			{
				Name:        "topic",
				Description: "Topic of the draft to review",
				Required:    true,
			},
		},
	}, s.getSEOReviewPrompt)
}

func (s *Server) getWriteBlogPostPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic, ok := req.Params.Arguments["topic"]
	if !ok || topic == "" {
		return nil, fmt.Errorf("topic argument is required")
	}
	style := req.Params.Arguments["style"]
	if style == "" {
		style = "professional"
	}

	template := fmt.Sprintf(`Write and publish a blog post about: %s

Follow the full creation workflow:

1. Call get-blog-creation-workflow to see the recommended order
2. Research the topic and persist it with save-research-data
3. Build a structured outline with create-blog-outline:
   - An engaging title (30-60 characters)
   - H2 sections covering the topic thoroughly
   - A meta description and focus keyword
4. Write the post in Markdown and save it with save-blog-content:
   - At least 600 words
   - The focus keyword appearing naturally in the content
5. Call generate-image-prompts with style %q, generate the images,
   and reference them in the content as ![alt](source)
6. Check the draft with verify-blog-structure and fix every warning
7. Publish with create-complete-blog, passing category and tag names

The post is held as a draft for preview unless approval is disabled.`, topic, style)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}

func (s *Server) getSEOReviewPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic, ok := req.Params.Arguments["topic"]
	if !ok || topic == "" {
		return nil, fmt.Errorf("topic argument is required")
	}

	template := fmt.Sprintf(`Review the draft about %q for SEO readiness.

1. Read the stored draft resources for this topic (research, outline, content)
2. Run verify-blog-structure on the content and note the score
3. Check specifically:
   - Title length between 30 and 60 characters
   - Meta description between 150 and 160 characters
   - Focus keyword present in title, first paragraph, and at least one heading
   - At least two H2 sections and 600+ words
4. Propose improved SEO metadata and, once the post exists, apply it with
   set-seo-metadata using the configured plugin format

Report the before/after verification score.`, topic)

	return &mcp.GetPromptResult{
		Messages: []*mcp.PromptMessage{
			{
				Role: "user",
				Content: &mcp.TextContent{
					Text: template,
				},
			},
		},
	}, nil
}
