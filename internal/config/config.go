// ABOUTME: Environment-sourced configuration for the presskit server.
// ABOUTME: Loaded once at startup, validated, and passed into constructors.

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// SEO plugin identifiers accepted by SEO_PLUGIN.
const (
	PluginYoast    = "yoast"
	PluginRankMath = "rankmath"
)

// Content representations accepted by WORDPRESS_CONTENT_TYPE.
const (
	ContentMarkdown = "markdown"
	ContentHTML     = "html"
)

// Config holds the full application configuration. It is immutable after
// Load and carries no behavior beyond typed accessors.
type Config struct {
	WordPressURL string `env:"WORDPRESS_URL,required"`
	Username     string `env:"WORDPRESS_USERNAME,required"`
	AppPassword  string `env:"WORDPRESS_APP_PASSWORD,required"`

	ServerName string `env:"MCP_SERVER_NAME" envDefault:"presskit"`
	SEOPlugin  string `env:"SEO_PLUGIN" envDefault:"yoast"`

	AutoFeaturedImage    bool `env:"AUTO_GENERATE_FEATURED_IMAGE" envDefault:"true"`
	ProcessContentImages bool `env:"PROCESS_CONTENT_IMAGES" envDefault:"true"`
	AutoExcerpt          bool `env:"AUTO_GENERATE_EXCERPT" envDefault:"true"`

	DefaultStatus string `env:"DEFAULT_POST_STATUS" envDefault:"draft"`
	ContentType   string `env:"WORDPRESS_CONTENT_TYPE" envDefault:"markdown"`

	// Preview approval is a safety rail: anything other than the literal
	// string "false" leaves it enabled.
	PreviewApproval string `env:"REQUIRE_PREVIEW_APPROVAL" envDefault:"true"`

	TinyPNGKey string `env:"TINYPNG_API_KEY"`
	StorageDir string `env:"STORAGE_DIR" envDefault:".mcp_storage"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

// RequirePreview reports whether publish requests must be forced to draft.
func (c Config) RequirePreview() bool {
	return c.PreviewApproval != "false"
}

// MarkdownContent reports whether post content arrives as Markdown and
// must be rendered to HTML before sending.
func (c Config) MarkdownContent() bool {
	return c.ContentType == ContentMarkdown
}

// Load reads a .env file if present, parses the environment, and validates
// enum fields. The returned Config has its WordPress URL normalized with no
// trailing slash.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.WordPressURL = strings.TrimRight(cfg.WordPressURL, "/")
	parsed, err := url.Parse(cfg.WordPressURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("WORDPRESS_URL %q is not a valid URL", cfg.WordPressURL)
	}

	switch cfg.SEOPlugin {
	case PluginYoast, PluginRankMath:
	default:
		return nil, fmt.Errorf("SEO_PLUGIN must be %q or %q, got %q", PluginYoast, PluginRankMath, cfg.SEOPlugin)
	}

	switch cfg.DefaultStatus {
	case "draft", "publish", "pending":
	default:
		return nil, fmt.Errorf("DEFAULT_POST_STATUS must be draft, publish, or pending, got %q", cfg.DefaultStatus)
	}

	switch cfg.ContentType {
	case ContentMarkdown, ContentHTML:
	default:
		return nil, fmt.Errorf("WORDPRESS_CONTENT_TYPE must be %q or %q, got %q", ContentMarkdown, ContentHTML, cfg.ContentType)
	}

	return cfg, nil
}
