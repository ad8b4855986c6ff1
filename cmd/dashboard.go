package cmd

import (
	"context"
	"fmt"

	"github.com/sofiya-medyamin/newsmood/internal/ai"
	"github.com/sofiya-medyamin/newsmood/internal/config"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
	"github.com/sofiya-medyamin/newsmood/internal/source"
	"github.com/sofiya-medyamin/newsmood/internal/tui"
	"github.com/spf13/cobra"
)

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, src, analyzer, err := loadSetup()
	if err != nil {
		return err
	}

	return tui.Run(tui.RunOpts{
		Cfg:           cfg,
		Source:        src,
		Analyzer:      analyzer,
		Query:         resolveQuery(cfg),
		Count:         resolveCount(cfg),
		UpdateVersion: checkUpdate(context.Background()),
	})
}

// buildSource picks the article provider: an explicit --feed flag wins, then
// a configured feed, then the news API.
func buildSource(cfg *config.Config) (source.Source, error) {
	if flagFeed != "" {
		return source.NewRSSAdapter(flagFeed), nil
	}
	if cfg.Feed != "" {
		return source.NewRSSAdapter(cfg.Feed), nil
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = source.DefaultEndpoint
	}
	return source.NewNewsAPIClient(endpoint, cfg.NewsAPIKey()), nil
}

// buildAnalyzer returns the remote scorer when configured, otherwise the
// built-in lexicon.
func buildAnalyzer(cfg *config.Config) (sentiment.Analyzer, error) {
	if !cfg.AIEnabled() {
		return sentiment.NewLexicon(), nil
	}
	remote, err := ai.New(cfg.AI, cfg.AIKey())
	if err != nil {
		return nil, fmt.Errorf("configuring remote scorer: %w", err)
	}
	return remote, nil
}
