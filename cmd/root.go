package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sofiya-medyamin/newsmood/internal/config"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
	"github.com/sofiya-medyamin/newsmood/internal/source"
	"github.com/sofiya-medyamin/newsmood/internal/update"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagQuery  string
	flagCount  int
	flagConfig string
	flagFeed   string
)

var rootCmd = &cobra.Command{
	Use:   "newsmood",
	Short: "TUI news sentiment dashboard",
	Long:  "newsmood fetches news articles for a topic, scores the sentiment of each headline, and presents the mood of the coverage in a terminal dashboard.",
	RunE:  runDashboard,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagQuery, "query", "q", "", "search topic (overrides config)")
	rootCmd.PersistentFlags().IntVarP(&flagCount, "count", "n", 0, "number of articles to fetch (5-50)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagFeed, "feed", "", "RSS feed URL to use instead of the news API")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(scoreCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("newsmood %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

// loadSetup resolves config, the article source, and the analyzer shared by
// the dashboard and the headless subcommands.
func loadSetup() (*config.Config, source.Source, sentiment.Analyzer, error) {
	// A missing .env is fine; keys can come from config or the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("loading config: %w", err)
	}

	src, err := buildSource(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	analyzer, err := buildAnalyzer(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	return cfg, src, analyzer, nil
}

func resolveQuery(cfg *config.Config) string {
	if flagQuery != "" {
		return flagQuery
	}
	return cfg.SearchQuery()
}

func resolveCount(cfg *config.Config) int {
	if flagCount != 0 {
		return source.ClampLimit(flagCount)
	}
	return cfg.ArticleCount()
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// checkUpdate returns the newer version string, or "" when current.
func checkUpdate(ctx context.Context) string {
	if r := update.Check(ctx, version); r != nil {
		return r.LatestVersion
	}
	return ""
}
