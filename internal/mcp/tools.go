// ABOUTME: MCP tools covering the whole blog pipeline, research to publish.
// ABOUTME: Every handler returns the uniform JSON error payload on failure.

package mcp

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harper/presskit/internal/blog"
	"github.com/harper/presskit/internal/markdown"
	"github.com/harper/presskit/internal/mcperr"
	"github.com/harper/presskit/internal/models"
	"github.com/harper/presskit/internal/publisher"
	"github.com/harper/presskit/internal/seo"
	"github.com/harper/presskit/internal/store"
	"github.com/harper/presskit/internal/wp"
)

func (s *Server) registerTools() {
	// read-markdown
	s.server.AddTool(&mcp.Tool{
		Name:        "read-markdown",
		Description: "Read a markdown file from disk, splitting YAML front matter from the body",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"filePath": {"type": "string", "description": "Path to the markdown file"}
			},
			"required": ["filePath"]
		}`),
	}, s.handleReadMarkdown)

	// upload-media
	s.server.AddTool(&mcp.Tool{
		Name:        "upload-media",
		Description: "Upload one or more images to the WordPress media library. Sources are URLs or local paths; images are optimized and resized before upload",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"source": {"type": "string", "description": "Single image URL or local file path; shorthand for a one-item batch"},
				"items": {
					"type": "array",
					"minItems": 1,
					"items": {
						"type": "object",
						"properties": {
							"source": {"type": "string", "description": "Image URL or local file path"},
							"title": {"type": "string", "description": "Media title"},
							"altText": {"type": "string", "description": "Alt text"},
							"caption": {"type": "string", "description": "Caption"},
							"description": {"type": "string", "description": "Description"}
						},
						"required": ["source"]
					}
				}
			}
		}`),
	}, s.handleUploadMedia)

	// post-to-wordpress
	s.server.AddTool(&mcp.Tool{
		Name:        "post-to-wordpress",
		Description: "Create or update a WordPress post. Provide id to update by id, slug to update by slug (creates when the slug is unused), neither to create. SEO metadata is applied after the post write",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer", "description": "Post id to update"},
				"slug": {"type": "string", "description": "Post slug to update or assign"},
				"title": {"type": "string", "description": "Post title"},
				"content": {"type": "string", "description": "Post content (markdown or HTML per configuration)"},
				"excerpt": {"type": "string", "description": "Post excerpt"},
				"status": {"type": "string", "enum": ["draft", "publish", "pending"], "description": "Post status"},
				"categories": {"type": "array", "items": {"type": "integer"}, "description": "Category ids"},
				"tags": {"type": "array", "items": {"type": "integer"}, "description": "Tag ids"},
				"featuredMedia": {"description": "Media id, either a number or {id}"},
				"seo": {"type": "object", "description": "SEO metadata: {plugin, data}"},
				"yoast": {"type": "object", "description": "Legacy Yoast fields; ignored when seo is given"}
			},
			"required": ["title", "content"]
		}`),
	}, s.handlePostToWordPress)

	// validate-post-data
	s.server.AddTool(&mcp.Tool{
		Name:        "validate-post-data",
		Description: "Dry-run validation of a post payload without touching WordPress",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"id": {"type": "integer"},
				"slug": {"type": "string"},
				"title": {"type": "string"},
				"content": {"type": "string"},
				"status": {"type": "string"},
				"seo": {"type": "object"}
			}
		}`),
	}, s.handleValidatePostData)

	// create-category
	s.server.AddTool(&mcp.Tool{
		Name:        "create-category",
		Description: "Find or create a category by name (case-insensitive exact match)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "Category name"},
				"slug": {"type": "string", "description": "Optional slug"},
				"description": {"type": "string", "description": "Optional description"},
				"parent": {"type": "integer", "description": "Parent category id"}
			},
			"required": ["name"]
		}`),
	}, s.handleCreateCategory)

	// create-tag
	s.server.AddTool(&mcp.Tool{
		Name:        "create-tag",
		Description: "Find or create a tag by name (case-insensitive exact match)",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"name": {"type": "string", "description": "Tag name"},
				"slug": {"type": "string", "description": "Optional slug"},
				"description": {"type": "string", "description": "Optional description"}
			},
			"required": ["name"]
		}`),
	}, s.handleCreateTag)

	// get-taxonomies
	s.server.AddTool(&mcp.Tool{
		Name:        "get-taxonomies",
		Description: "List categories and tags, optionally filtered by search text",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"type": {"type": "string", "enum": ["categories", "tags", "both"], "description": "Which taxonomy to list", "default": "both"},
				"search": {"type": "string", "description": "Substring filter"},
				"per_page": {"type": "integer", "description": "Max results per taxonomy", "default": 100},
				"minimal": {"type": "boolean", "description": "Return only id and name per term", "default": true}
			}
		}`),
	}, s.handleGetTaxonomies)

	// save-research-data
	s.server.AddTool(&mcp.Tool{
		Name:        "save-research-data",
		Description: "Persist research for a blog topic to local draft storage",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"topic": {"type": "string", "description": "Blog topic"},
				"overview": {"type": "string", "description": "Topic overview"},
				"keyConcepts": {"type": "array", "description": "Key terms with definitions"},
				"comparison": {"type": "object", "description": "Optional comparison of options"},
				"bestPractices": {"type": "array", "items": {"type": "string"}},
				"commonQuestions": {"type": "array", "items": {"type": "string"}},
				"sources": {"type": "array", "items": {"type": "string"}}
			},
			"required": ["topic"]
		}`),
	}, s.handleSaveResearch)

	// create-blog-outline
	s.server.AddTool(&mcp.Tool{
		Name:        "create-blog-outline",
		Description: "Persist a structured outline for a planned post",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string", "description": "Planned post title"},
				"sections": {"type": "array", "description": "Outline sections with headings and content points"},
				"seo": {"type": "object", "description": "Planned meta description, focus keyword, keywords"},
				"categories": {"type": "array", "items": {"type": "string"}},
				"tags": {"type": "array", "items": {"type": "string"}}
			},
			"required": ["title", "sections"]
		}`),
	}, s.handleCreateOutline)

	// save-blog-content
	s.server.AddTool(&mcp.Tool{
		Name:        "save-blog-content",
		Description: "Persist drafted markdown content for a topic",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"topic": {"type": "string", "description": "Blog topic the content belongs to"},
				"content": {"type": "string", "description": "Markdown content"}
			},
			"required": ["topic", "content"]
		}`),
	}, s.handleSaveContent)

	// generate-image-prompts
	s.server.AddTool(&mcp.Tool{
		Name:        "generate-image-prompts",
		Description: "Generate image generation prompts for the featured image and each section",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"blogTitle": {"type": "string", "description": "Post title"},
				"sections": {
					"type": "array",
					"items": {
						"type": "object",
						"properties": {
							"title": {"type": "string"},
							"description": {"type": "string"}
						},
						"required": ["title"]
					}
				},
				"style": {"type": "string", "enum": ["professional", "modern", "minimalist", "vibrant", "technical"], "description": "Visual style", "default": "professional"}
			},
			"required": ["blogTitle"]
		}`),
	}, s.handleGenerateImagePrompts)

	// set-seo-metadata
	s.server.AddTool(&mcp.Tool{
		Name:        "set-seo-metadata",
		Description: "Apply SEO plugin metadata to an existing post",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"postId": {"type": "integer", "description": "Post id"},
				"seo": {"type": "object", "description": "SEO metadata: {plugin: yoast|rankmath, data: {...}}"}
			},
			"required": ["postId", "seo"]
		}`),
	}, s.handleSetSEOMetadata)

	// embed-images-in-content
	s.server.AddTool(&mcp.Tool{
		Name:        "embed-images-in-content",
		Description: "Upload every image referenced as ![alt](source) in markdown content and rewrite the references to the hosted URLs. Failed items are skipped and reported",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"content": {"type": "string", "description": "Markdown content"},
				"altPrefix": {"type": "string", "description": "Optional prefix prepended to every alt text"}
			},
			"required": ["content"]
		}`),
	}, s.handleEmbedImages)

	// verify-blog-structure
	s.server.AddTool(&mcp.Tool{
		Name:        "verify-blog-structure",
		Description: "Score a draft for structure, length, and SEO readiness before publishing",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string"},
				"content": {"type": "string"},
				"seo": {"type": "object", "description": "{metaDescription, focusKeyword}"},
				"categories": {"type": "array", "items": {"type": "string"}},
				"tags": {"type": "array", "items": {"type": "string"}},
				"featuredMedia": {"description": "Any non-null value counts as present"}
			},
			"required": ["title", "content"]
		}`),
	}, s.handleVerifyBlogStructure)

	// create-complete-blog
	s.server.AddTool(&mcp.Tool{
		Name:        "create-complete-blog",
		Description: "Run the whole pipeline in one call: reconcile category/tag names, embed content images, upload the featured image, derive an excerpt, publish, and apply SEO",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"title": {"type": "string"},
				"content": {"type": "string", "description": "Markdown content"},
				"excerpt": {"type": "string", "description": "Optional; derived from content when absent and auto-excerpt is enabled"},
				"status": {"type": "string", "enum": ["draft", "publish", "pending"]},
				"slug": {"type": "string"},
				"categories": {"type": "array", "items": {"type": "string"}, "description": "Category names"},
				"tags": {"type": "array", "items": {"type": "string"}, "description": "Tag names"},
				"featuredImage": {"type": "string", "description": "URL or local path for the featured image"},
				"seo": {"type": "object", "description": "SEO metadata: {plugin, data}"}
			},
			"required": ["title", "content"]
		}`),
	}, s.handleCreateCompleteBlog)

	// get-blog-creation-workflow
	s.server.AddTool(&mcp.Tool{
		Name:        "get-blog-creation-workflow",
		Description: "Get the recommended step-by-step tool order for creating a blog post",
		InputSchema: json.RawMessage(`{"type": "object", "properties": {}}`),
	}, s.handleGetWorkflow)

	// convert-markdown-to-html
	s.server.AddTool(&mcp.Tool{
		Name:        "convert-markdown-to-html",
		Description: "Convert markdown to HTML without publishing anything",
		InputSchema: json.RawMessage(`{
			"type": "object",
			"properties": {
				"markdown": {"type": "string", "description": "Markdown source"}
			},
			"required": ["markdown"]
		}`),
	}, s.handleConvertMarkdown)
}

// Tool handlers.
func (s *Server) handleReadMarkdown(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		FilePath string `json:"filePath"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(params.FilePath)
	if err != nil {
		return errorResult(mcperr.Wrap("read_markdown_error", "reading "+params.FilePath, err)), nil
	}

	frontMatter, body := markdown.SplitFrontMatter(string(data))
	return jsonResult(map[string]any{
		"path":        params.FilePath,
		"frontMatter": frontMatter,
		"content":     body,
	}), nil
}

type mediaUploadItem struct {
	Source      string `json:"source"`
	Title       string `json:"title"`
	AltText     string `json:"altText"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

func (s *Server) handleUploadMedia(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Source string            `json:"source"`
		Items  []mediaUploadItem `json:"items"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	// A bare source is shorthand for a one-item batch.
	if len(params.Items) == 0 && params.Source != "" {
		params.Items = []mediaUploadItem{{Source: params.Source}}
	}
	if len(params.Items) == 0 {
		return errorResult(mcperr.New("upload_media_error", "either items or source is required", nil)), nil
	}

	type uploaded struct {
		ID       int    `json:"id"`
		URL      string `json:"url"`
		Filename string `json:"filename"`
		AltText  string `json:"altText,omitempty"`
	}
	results := make([]uploaded, 0, len(params.Items))

	// The batch aborts on the first failure; earlier uploads stay in the
	// media library.
	for _, item := range params.Items {
		asset, err := s.ingest.Ingest(ctx, item.Source)
		if err != nil {
			return errorResult(mcperr.Wrap("upload_media_error", "processing "+item.Source, err)), nil
		}
		media, err := s.wp.UploadMedia(ctx, asset.Data, asset.Filename, asset.MimeType, &wp.MediaMeta{
			Title:       item.Title,
			AltText:     item.AltText,
			Caption:     item.Caption,
			Description: item.Description,
		})
		if err != nil {
			return errorResult(mcperr.Wrap("upload_media_error", "uploading "+item.Source, err)), nil
		}
		results = append(results, uploaded{
			ID:       media.ID,
			URL:      media.SourceURL,
			Filename: asset.Filename,
			AltText:  media.AltText,
		})
	}

	if len(results) == 1 {
		return jsonResult(results[0]), nil
	}
	return jsonResult(map[string]any{"count": len(results), "items": results}), nil
}

func (s *Server) handlePostToWordPress(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var post models.PostData
	if err := json.Unmarshal(req.Params.Arguments, &post); err != nil {
		return errorResult(mcperr.Wrap("validation_error", "decoding post data", err)), nil
	}

	ref, err := s.pub.Publish(ctx, &post)
	if err != nil {
		return errorResult(mcperr.Wrap("post_creation_error", "publishing post", err)), nil
	}
	return jsonResult(ref), nil
}

func (s *Server) handleValidatePostData(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var post models.PostData
	if err := json.Unmarshal(req.Params.Arguments, &post); err != nil {
		return errorResult(mcperr.Wrap("validation_error", "decoding post data", err)), nil
	}

	errs := post.Validate()
	if errs == nil {
		errs = []models.FieldError{}
	}
	return jsonResult(map[string]any{
		"valid":  len(errs) == 0,
		"errors": errs,
	}), nil
}

func (s *Server) handleCreateCategory(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data wp.CategoryData
	if err := json.Unmarshal(req.Params.Arguments, &data); err != nil {
		return nil, err
	}
	if strings.TrimSpace(data.Name) == "" {
		return errorResult(mcperr.New("create_category_error", "name is required", nil)), nil
	}

	category, created, err := s.wp.EnsureCategory(ctx, data)
	if err != nil {
		return errorResult(mcperr.Wrap("create_category_error", "reconciling category "+data.Name, err)), nil
	}
	return jsonResult(map[string]any{"category": category, "created": created}), nil
}

func (s *Server) handleCreateTag(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data wp.TagData
	if err := json.Unmarshal(req.Params.Arguments, &data); err != nil {
		return nil, err
	}
	if strings.TrimSpace(data.Name) == "" {
		return errorResult(mcperr.New("create_tag_error", "name is required", nil)), nil
	}

	tag, created, err := s.wp.EnsureTag(ctx, data)
	if err != nil {
		return errorResult(mcperr.Wrap("create_tag_error", "reconciling tag "+data.Name, err)), nil
	}
	return jsonResult(map[string]any{"tag": tag, "created": created}), nil
}

func (s *Server) handleGetTaxonomies(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Type    string `json:"type"`
		Search  string `json:"search"`
		PerPage int    `json:"per_page"`
		Minimal *bool  `json:"minimal"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if params.Type == "" {
		params.Type = "both"
	}
	// Minimal listings are the default; full records are opt-in.
	minimal := params.Minimal == nil || *params.Minimal
	opts := wp.ListOptions{Search: params.Search, PerPage: params.PerPage}
	result := map[string]any{}

	if params.Type == "categories" || params.Type == "both" {
		categories, err := s.wp.GetCategories(ctx, opts)
		if err != nil {
			return errorResult(mcperr.Wrap("get_taxonomies_error", "listing categories", err)), nil
		}
		if minimal {
			minimal := make([]wp.TaxonomyMinimal, len(categories))
			for i, c := range categories {
				minimal[i] = wp.TaxonomyMinimal{ID: c.ID, Name: c.Name}
			}
			result["categories"] = minimal
		} else {
			result["categories"] = categories
		}
	}

	if params.Type == "tags" || params.Type == "both" {
		tags, err := s.wp.GetTags(ctx, opts)
		if err != nil {
			return errorResult(mcperr.Wrap("get_taxonomies_error", "listing tags", err)), nil
		}
		if minimal {
			minimal := make([]wp.TaxonomyMinimal, len(tags))
			for i, t := range tags {
				minimal[i] = wp.TaxonomyMinimal{ID: t.ID, Name: t.Name}
			}
			result["tags"] = minimal
		} else {
			result["tags"] = tags
		}
	}

	return jsonResult(result), nil
}

func (s *Server) handleSaveResearch(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var research models.ResearchData
	if err := json.Unmarshal(req.Params.Arguments, &research); err != nil {
		return errorResult(mcperr.Wrap("save_research_error", "decoding research data", err)), nil
	}
	if strings.TrimSpace(research.Topic) == "" {
		return errorResult(mcperr.New("save_research_error", "topic is required", nil)), nil
	}

	id := store.TopicID(research.Topic)
	if err := s.store.Save(store.TypeResearch, id, research); err != nil {
		return errorResult(mcperr.Wrap("save_research_error", "saving research", err)), nil
	}
	return jsonResult(map[string]any{"saved": true, "type": store.TypeResearch, "id": id}), nil
}

func (s *Server) handleCreateOutline(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var outline models.OutlineData
	if err := json.Unmarshal(req.Params.Arguments, &outline); err != nil {
		return errorResult(mcperr.Wrap("create_outline_error", "decoding outline", err)), nil
	}
	if strings.TrimSpace(outline.Title) == "" {
		return errorResult(mcperr.New("create_outline_error", "title is required", nil)), nil
	}
	if len(outline.Sections) == 0 {
		return errorResult(mcperr.New("create_outline_error", "sections must not be empty", nil)), nil
	}

	id := store.TopicID(outline.Title)
	if err := s.store.Save(store.TypeOutline, id, outline); err != nil {
		return errorResult(mcperr.Wrap("create_outline_error", "saving outline", err)), nil
	}
	return jsonResult(map[string]any{"saved": true, "type": store.TypeOutline, "id": id}), nil
}

func (s *Server) handleSaveContent(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Topic   string `json:"topic"`
		Content string `json:"content"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Topic) == "" || params.Content == "" {
		return errorResult(mcperr.New("save_content_error", "topic and content are required", nil)), nil
	}

	id := store.TopicID(params.Topic)
	record := map[string]any{
		"topic":     params.Topic,
		"content":   params.Content,
		"wordCount": len(strings.Fields(params.Content)),
	}
	if err := s.store.Save(store.TypeContent, id, record); err != nil {
		return errorResult(mcperr.Wrap("save_content_error", "saving content", err)), nil
	}
	return jsonResult(map[string]any{"saved": true, "type": store.TypeContent, "id": id, "wordCount": record["wordCount"]}), nil
}

func (s *Server) handleGenerateImagePrompts(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		BlogTitle string         `json:"blogTitle"`
		Sections  []blog.Section `json:"sections"`
		Style     string         `json:"style"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.BlogTitle) == "" {
		return errorResult(mcperr.New("generate_image_prompts_error", "blogTitle is required", nil)), nil
	}
	if params.Style != "" && !blog.KnownStyle(params.Style) {
		return errorResult(mcperr.New("generate_image_prompts_error",
			"unknown style "+params.Style,
			map[string]any{"known": []string{"professional", "modern", "minimalist", "vibrant", "technical"}})), nil
	}

	return jsonResult(blog.GeneratePrompts(params.BlogTitle, params.Sections, params.Style)), nil
}

func (s *Server) handleSetSEOMetadata(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		PostID int             `json:"postId"`
		SEO    *models.SEOData `json:"seo"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return errorResult(mcperr.Wrap("set_seo_metadata_error", "decoding seo metadata", err)), nil
	}
	if params.PostID <= 0 || params.SEO == nil {
		return errorResult(mcperr.New("set_seo_metadata_error", "postId and seo are required", nil)), nil
	}
	if err := params.SEO.Validate(); err != nil {
		return errorResult(mcperr.Wrap("set_seo_metadata_error", "invalid seo metadata", err)), nil
	}

	meta := seo.Translate(params.SEO)
	if err := s.wp.UpdatePostMeta(ctx, params.PostID, meta); err != nil {
		return errorResult(mcperr.Wrap("set_seo_metadata_error", "updating post meta", err)), nil
	}
	return jsonResult(map[string]any{"postId": params.PostID, "applied": len(meta)}), nil
}

func (s *Server) handleEmbedImages(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Content   string `json:"content"`
		AltPrefix string `json:"altPrefix"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	result, err := s.pub.EmbedImages(ctx, params.Content, params.AltPrefix)
	if err != nil {
		return errorResult(mcperr.Wrap("embed_images_error", "embedding images", err)), nil
	}
	return jsonResult(result), nil
}

func (s *Server) handleVerifyBlogStructure(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var data models.BlogData
	if err := json.Unmarshal(req.Params.Arguments, &data); err != nil {
		return errorResult(mcperr.Wrap("verify_blog_error", "decoding blog data", err)), nil
	}

	return jsonResult(blog.Verify(&data)), nil
}

func (s *Server) handleCreateCompleteBlog(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input publisher.CompleteBlogInput
	if err := json.Unmarshal(req.Params.Arguments, &input); err != nil {
		return errorResult(mcperr.Wrap("complete_blog_error", "decoding blog input", err)), nil
	}

	result, err := s.pub.CompleteBlog(ctx, &input)
	if err != nil {
		return errorResult(mcperr.Wrap("complete_blog_error", "running blog pipeline", err)), nil
	}
	return jsonResult(result), nil
}

func (s *Server) handleGetWorkflow(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{"steps": blog.Workflow()}), nil
}

func (s *Server) handleConvertMarkdown(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params struct {
		Markdown string `json:"markdown"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
		return nil, err
	}

	html, err := markdown.ToHTML(params.Markdown)
	if err != nil {
		return errorResult(mcperr.Wrap("unknown_error", "converting markdown", err)), nil
	}
	return jsonResult(map[string]any{"html": html}), nil
}
