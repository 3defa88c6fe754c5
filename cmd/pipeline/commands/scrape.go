package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abenezerm/fintech-review-analytics/internal/config"
	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
	"github.com/abenezerm/fintech-review-analytics/internal/core/ports"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/resilience"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetches reviews for every app in the manifest and writes the raw dataset.",
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

		all := fetchTargets(cmd.Context(), app.Source, app.Log, targets, app.Config.TargetReviewsPerApp)
		if err := app.Store.WriteRaw(all); err != nil {
			return fmt.Errorf("write raw dataset: %w", err)
		}
		app.Log.Info("raw dataset written", "reviews", len(all), "apps", len(targets))
		return nil
	},
}

// fetchTargets scrapes each manifest target in turn. A failing target is
// logged and skipped, keeping whatever it returned before failing, so one
// broken listing cannot cost the rest of the corpus.
func fetchTargets(ctx context.Context, src ports.ReviewSource, log *slog.Logger, targets []domain.AppTarget, count int) []domain.RawReview {
	var all []domain.RawReview
	for _, target := range targets {
		if ctx.Err() != nil {
			break
		}
		reviews, err := src.FetchReviews(ctx, target, count)
		switch {
		case err == nil:
			log.Info("app scraped", "app", target.AppID, "bank", target.BankName, "reviews", len(reviews))
		case resilience.IsCircuitOpen(err):
			log.Warn("scrape circuit open, skipping app", "app", target.AppID, "bank", target.BankName)
		default:
			log.Error("app scrape failed", "app", target.AppID, "bank", target.BankName,
				"reviews_kept", len(reviews), "error", err)
		}
		all = append(all, reviews...)
	}
	return all
}
