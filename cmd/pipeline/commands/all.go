package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abenezerm/fintech-review-analytics/internal/config"
)

func init() {
	rootCmd.AddCommand(allCmd)
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Runs scrape, clean, analyze and report as one batch.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		targets, err := config.LoadApps(app.Config.AppsFile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		raw := fetchTargets(ctx, app.Source, app.Log, targets, app.Config.TargetReviewsPerApp)
		if err := app.Store.WriteRaw(raw); err != nil {
			return fmt.Errorf("write raw dataset: %w", err)
		}

		report, err := app.Pipeline.Run(ctx, raw)
		if err != nil {
			return err
		}
		app.Log.Info("batch complete",
			"raw", len(raw),
			"clean", report.Quality.Final,
			"banks", len(report.Banks),
			"retention", fmt.Sprintf("%.2f%%", report.Quality.RetentionRate()))
		return nil
	},
}
