// ABOUTME: The ordered blog creation workflow advertised to assistants.
// ABOUTME: Static itinerary naming which tool serves each step.

package blog

// WorkflowStep is one stage of the creation flow.
type WorkflowStep struct {
	Step        int      `json:"step"`
	Name        string   `json:"name"`
	Tools       []string `json:"tools"`
	Description string   `json:"description"`
}

// Workflow returns the recommended tool order for producing a post from
// scratch.
func Workflow() []WorkflowStep {
	return []WorkflowStep{
		{1, "Research", []string{"save-research-data"},
			"Gather information and key points for the blog topic."},
		{2, "Outline", []string{"create-blog-outline"},
			"Create a structured outline based on the research."},
		{3, "Content Draft", []string{"save-blog-content"},
			"Write the blog content in Markdown format."},
		{4, "Images", []string{"generate-image-prompts", "upload-media"},
			"Generate prompts for images, create them externally, and upload them; uploads are optimized automatically."},
		{5, "Verification", []string{"verify-blog-structure"},
			"Check structure, length, and SEO readiness before publishing."},
		{6, "Publish", []string{"post-to-wordpress"},
			"Create a new post or update an existing one by id or slug; SEO metadata is applied automatically."},
	}
}
