package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/sofiya-medyamin/newsmood/internal/pipeline"
	"github.com/sofiya-medyamin/newsmood/internal/report"
	"github.com/spf13/cobra"
)

var flagOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Fetch and score articles, then write them to a CSV file",
	Long: `Run the fetch and scoring pipeline without the dashboard and write the
results to a CSV file (Title, Sentiment, Polarity, Source).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, src, analyzer, err := loadSetup()
		if err != nil {
			return err
		}

		query := resolveQuery(cfg)
		fmt.Printf("Fetching %q from %s...\n", query, src.Name())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		outcome := pipeline.Run(ctx, src, analyzer, query, resolveCount(cfg), time.Now())

		if outcome.FetchErr != nil {
			fmt.Printf("  [warn] %v\n", outcome.FetchErr)
		}
		for _, s := range outcome.Skipped {
			fmt.Printf("  [warn] skipped: %s\n", s)
		}

		if len(outcome.Articles) == 0 {
			fmt.Println("No articles to export.")
			return nil
		}

		if err := report.ExportCSV(flagOut, outcome.Articles); err != nil {
			return fmt.Errorf("writing csv: %w", err)
		}
		fmt.Printf("Wrote %d article(s) to %s (avg polarity %+.2f).\n",
			len(outcome.Articles), flagOut, report.Average(outcome.Articles))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&flagOut, "out", "o", report.DefaultExportName, "output CSV path")
}
