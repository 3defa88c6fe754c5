package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Scores the clean dataset, extracts topics and writes every report artifact.",
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

		report, err := app.Pipeline.Analyze(cmd.Context(), reviews, quality)
		if err != nil {
			return err
		}
		app.Log.Info("analysis complete", "reviews", len(reviews), "banks", len(report.Banks))
		return nil
	},
}
