package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Regenerates the markdown and spreadsheet summaries from the clean dataset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		reviews, err := app.Store.ReadClean()
		if err != nil {
			return fmt.Errorf("read clean dataset: %w", err)
		}
		if err := requireCorpus(reviews); err != nil {
			return err
		}
		quality, err := app.Store.ReadQuality()
		if err != nil {
			return fmt.Errorf("read quality report: %w", err)
		}

		ctx := cmd.Context()
		scored := app.Scorer.Score(ctx, reviews)
		topics, err := app.Topics.Extract(ctx, reviews)
		if err != nil {
			return fmt.Errorf("extract topics: %w", err)
		}
		report := app.Builder.Build(scored, topics, quality)

		if err := app.Markdown.Write(ctx, report); err != nil {
			return fmt.Errorf("write markdown report: %w", err)
		}
		if err := app.Excel.Write(ctx, report); err != nil {
			return fmt.Errorf("write spreadsheet report: %w", err)
		}
		app.Log.Info("reports written", "reviews", len(reviews), "banks", len(report.Banks))
		return nil
	},
}
