package config

import (
	"embed"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

//go:embed default_config.yaml
var defaultConfigFS embed.FS

// Bounds for the per-request article count.
const (
	MinArticles     = 5
	MaxArticles     = 50
	DefaultArticles = 25
)

// DefaultQuery is used when neither config nor flags provide one.
const DefaultQuery = "AI, Technology, Economy, & Others"

type AIConfig struct {
	Provider string `yaml:"provider"` // "claude" or "openai"
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

type Config struct {
	Query    string    `yaml:"query"`
	Articles int       `yaml:"articles"`
	Endpoint string    `yaml:"endpoint,omitempty"`
	Feed     string    `yaml:"feed,omitempty"`
	APIKey   string    `yaml:"api_key,omitempty"`
	AI       *AIConfig `yaml:"ai,omitempty"`
}

// NewsAPIKey returns the provider credential (config or env var). An empty
// key is not an error here; the fetch simply fails and the run degrades.
func (c *Config) NewsAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv("NEWS_API_KEY")
}

// SearchQuery returns the configured query, falling back to the default.
func (c *Config) SearchQuery() string {
	if c.Query == "" {
		return DefaultQuery
	}
	return c.Query
}

// ArticleCount returns the article count clamped to the supported range.
func (c *Config) ArticleCount() int {
	switch {
	case c.Articles == 0:
		return DefaultArticles
	case c.Articles < MinArticles:
		return MinArticles
	case c.Articles > MaxArticles:
		return MaxArticles
	}
	return c.Articles
}

// AIEnabled reports whether remote scoring is configured with a usable key.
func (c *Config) AIEnabled() bool {
	return c.AI != nil && c.AIKey() != ""
}

// AIKey returns the resolved remote-scoring key (config or env var).
func (c *Config) AIKey() string {
	if c.AI != nil && c.AI.APIKey != "" {
		return c.AI.APIKey
	}
	return os.Getenv("NEWSMOOD_AI_KEY")
}

func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, "newsmood", "config.yaml")
}

func loadDefaults() (*Config, error) {
	data, err := defaultConfigFS.ReadFile("default_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &cfg, nil
}

func Load(path string) (*Config, error) {
	defaults, err := loadDefaults()
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = DefaultConfigPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Write defaults to config path on first run
			if err := writeDefaults(path); err != nil {
				// Non-fatal: just use embedded defaults
				return defaults, nil
			}
			return defaults, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func writeDefaults(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, _ := defaultConfigFS.ReadFile("default_config.yaml")
	return os.WriteFile(path, data, 0o644)
}

func validate(cfg *Config) error {
	for name, raw := range map[string]string{"endpoint": cfg.Endpoint, "feed": cfg.Feed} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: invalid url: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s: url scheme must be http or https, got %q", name, u.Scheme)
		}
	}

	if cfg.AI != nil {
		switch cfg.AI.Provider {
		case "claude", "openai":
		default:
			return fmt.Errorf("ai: unknown provider %q (valid: claude, openai)", cfg.AI.Provider)
		}
	}

	return nil
}
