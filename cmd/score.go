package cmd

import (
	"fmt"
	"strings"

	"github.com/sofiya-medyamin/newsmood/internal/config"
	"github.com/sofiya-medyamin/newsmood/internal/sentiment"
	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score <text>",
	Short: "Score the sentiment of a piece of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		analyzer, err := buildAnalyzer(cfg)
		if err != nil {
			return err
		}

		text := strings.Join(args, " ")
		polarity := analyzer.Score(text)
		fmt.Printf("%+.4f %s\n", polarity, sentiment.LabelFor(polarity))
		return nil
	},
}
