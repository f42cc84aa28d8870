// ABOUTME: YAML front matter splitting for markdown files.
// ABOUTME: A leading --- block is parsed; everything after is the body.

package markdown

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// SplitFrontMatter separates a leading YAML front matter block from the
// markdown body. Files without front matter return a nil map and the input
// unchanged. A malformed block is left in place rather than dropped.
func SplitFrontMatter(content string) (map[string]any, string) {
	if !strings.HasPrefix(content, "---\n") && !strings.HasPrefix(content, "---\r\n") {
		return nil, content
	}

	parts := strings.SplitN(content, "---", 3)
	if len(parts) < 3 {
		return nil, content
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(parts[1]), &meta); err != nil || meta == nil {
		return nil, content
	}

	body := strings.TrimPrefix(parts[2], "\n")
	return meta, body
}
