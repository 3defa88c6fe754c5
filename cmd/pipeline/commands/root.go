package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abenezerm/fintech-review-analytics/internal/bootstrap"
	"github.com/abenezerm/fintech-review-analytics/internal/config"
	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

var (
	flagDataDir  string
	flagAppsFile string
)

var rootCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Scrapes, scores and reports on mobile banking app reviews.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "directory for datasets and reports (overrides DATA_DIR)")
	rootCmd.PersistentFlags().StringVar(&flagAppsFile, "apps-file", "", "path to the app manifest (overrides APPS_FILE)")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// requireCorpus rejects an empty clean dataset so commands that consume it
// fail with a clear error instead of producing blank artifacts.
func requireCorpus(reviews []domain.Review) error {
	if len(reviews) == 0 {
		return fmt.Errorf("clean dataset: %w", domain.ErrEmptyCorpus)
	}
	return nil
}

// newApp builds the dependency graph for one subcommand invocation.
func newApp(cmd *cobra.Command) (*bootstrap.App, error) {
	cfg := config.Load()
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
	}
	if flagAppsFile != "" {
		cfg.AppsFile = flagAppsFile
	}
	return bootstrap.New(cmd.Name(), cfg)
}
