package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.Query == "" {
		t.Error("expected a default query")
	}
	if cfg.ArticleCount() != DefaultArticles {
		t.Errorf("default article count = %d, want %d", cfg.ArticleCount(), DefaultArticles)
	}
}

func TestArticleCountClamp(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 25}, // unset falls back to default
		{1, 5},
		{5, 5},
		{25, 25},
		{50, 50},
		{100, 50},
		{-10, 5},
	}
	for _, tt := range tests {
		cfg := &Config{Articles: tt.input}
		if got := cfg.ArticleCount(); got != tt.want {
			t.Errorf("ArticleCount(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSearchQueryFallback(t *testing.T) {
	cfg := &Config{}
	if cfg.SearchQuery() != DefaultQuery {
		t.Errorf("empty query should fall back to default, got %q", cfg.SearchQuery())
	}

	cfg.Query = "climate policy"
	if cfg.SearchQuery() != "climate policy" {
		t.Errorf("configured query should win, got %q", cfg.SearchQuery())
	}
}

func TestNewsAPIKeyResolution(t *testing.T) {
	t.Setenv("NEWS_API_KEY", "env-key")

	cfg := &Config{}
	if cfg.NewsAPIKey() != "env-key" {
		t.Errorf("expected env key, got %q", cfg.NewsAPIKey())
	}

	cfg.APIKey = "file-key"
	if cfg.NewsAPIKey() != "file-key" {
		t.Errorf("config key should override env, got %q", cfg.NewsAPIKey())
	}
}

func TestAIEnabled(t *testing.T) {
	t.Setenv("NEWSMOOD_AI_KEY", "")

	cfg := &Config{}
	if cfg.AIEnabled() {
		t.Error("AI should be disabled without config")
	}

	cfg.AI = &AIConfig{Provider: "claude"}
	if cfg.AIEnabled() {
		t.Error("AI should be disabled without a key")
	}

	cfg.AI.APIKey = "sk-test"
	if !cfg.AIEnabled() {
		t.Error("AI should be enabled with provider and key")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("query: \"rates\"\narticles: 10\nfeed: \"https://example.com/rss\"\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Query != "rates" {
		t.Errorf("query = %q", cfg.Query)
	}
	if cfg.ArticleCount() != 10 {
		t.Errorf("articles = %d", cfg.ArticleCount())
	}
	if cfg.Feed != "https://example.com/rss" {
		t.Errorf("feed = %q", cfg.Feed)
	}
}

func TestLoadMissingFileWritesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SearchQuery() == "" {
		t.Error("expected default config")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults should be written on first run: %v", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("query: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty", Config{}, false},
		{"good feed", Config{Feed: "https://example.com/rss"}, false},
		{"bad feed scheme", Config{Feed: "ftp://example.com/rss"}, true},
		{"bad endpoint scheme", Config{Endpoint: "file:///etc/passwd"}, true},
		{"good ai", Config{AI: &AIConfig{Provider: "openai"}}, false},
		{"bad ai provider", Config{AI: &AIConfig{Provider: "bard"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(&tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
