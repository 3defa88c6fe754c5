package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(cleanCmd)
}

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Normalizes the raw dataset and writes the clean dataset.",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		raw, err := app.Store.ReadRaw()
		if err != nil {
			return fmt.Errorf("read raw dataset: %w", err)
		}

		reviews, quality := app.Cleaner.Clean(raw)
		app.Metrics.RecordQuality(quality)

		if err := app.Store.WriteClean(reviews); err != nil {
			return fmt.Errorf("write clean dataset: %w", err)
		}
		if err := app.Store.WriteQuality(quality); err != nil {
			return fmt.Errorf("write quality report: %w", err)
		}
		app.Log.Info("clean dataset written",
			"initial", quality.Initial,
			"final", quality.Final,
			"dropped_empty_text", quality.DroppedEmptyText,
			"dropped_bad_date", quality.DroppedBadDate,
			"dropped_bad_rating", quality.DroppedBadRating,
			"dropped_duplicates", quality.DroppedDuplicates,
			"imputed_ratings", quality.ImputedRatings,
			"retention", fmt.Sprintf("%.2f%%", quality.RetentionRate()))
		return nil
	},
}
