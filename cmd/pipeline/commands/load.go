package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abenezerm/fintech-review-analytics/internal/config"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Scores the clean dataset and loads banks and reviews into postgres.",
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
		reviews, err := app.Store.ReadClean()
		if err != nil {
			return fmt.Errorf("read clean dataset: %w", err)
		}
		if err := requireCorpus(reviews); err != nil {
			return err
		}

		ctx := cmd.Context()
		scored := app.Scorer.Score(ctx, reviews)

		repo, closeRepo, err := app.OpenRepository(ctx)
		if err != nil {
			return err
		}
		defer closeRepo()

		bankIDs, err := repo.UpsertBanks(ctx, targets)
		if err != nil {
			return fmt.Errorf("upsert banks: %w", err)
		}
		inserted, err := repo.InsertReviews(ctx, scored, bankIDs)
		if err != nil {
			return fmt.Errorf("insert reviews: %w", err)
		}

		counts, err := repo.CountByBank(ctx)
		if err != nil {
			return fmt.Errorf("count reviews: %w", err)
		}
		for bank, n := range counts {
			app.Log.Info("bank loaded", "bank", bank, "stored", n)
		}
		app.Log.Info("load complete", "scored", len(scored), "inserted", inserted)
		return nil
	},
}
