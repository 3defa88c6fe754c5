package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/abenezerm/fintech-review-analytics/internal/config"
	"github.com/abenezerm/fintech-review-analytics/internal/core/ports"
	"github.com/abenezerm/fintech-review-analytics/internal/core/usecase"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/dataset"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/report"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/repository/postgres"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/resilience"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/scraper/googleplay"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/sentiment"
	"github.com/abenezerm/fintech-review-analytics/internal/infrastructure/topics"
	"github.com/abenezerm/fintech-review-analytics/internal/observability/logging"
	"github.com/abenezerm/fintech-review-analytics/internal/observability/metrics"
)

type App struct {
	Config  config.Config
	Log     *slog.Logger
	Metrics *metrics.Pipeline

	Store   ports.ReviewStore
	Source  ports.ReviewSource
	Cleaner ports.ReviewCleaner
	Scorer  ports.ReviewScorer
	Topics  *usecase.TopicsUseCase
	Builder ports.ReportBuilder

	// Writers holds every artifact writer; Markdown and Excel are also
	// exposed on their own for the report subcommand.
	Writers  []ports.ReportWriter
	Markdown ports.ReportWriter
	Excel    ports.ReportWriter

	Pipeline *usecase.Pipeline

	metricsServer *http.Server
}

func New(stage string, cfg config.Config) (*App, error) {
	log := logging.New(stage, cfg.LogLevel)
	m := metrics.NewPipeline()
	analysis := cfg.Analysis()

	store, err := dataset.NewStore(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("init dataset store: %w", err)
	}

	reportDir := filepath.Join(cfg.DataDir, "reports")
	csvWriter, err := report.NewCSVWriter(reportDir)
	if err != nil {
		return nil, fmt.Errorf("init csv writer: %w", err)
	}
	mdWriter, err := report.NewMarkdownWriter(reportDir)
	if err != nil {
		return nil, fmt.Errorf("init markdown writer: %w", err)
	}
	xlsxWriter, err := report.NewExcelWriter(reportDir)
	if err != nil {
		return nil, fmt.Errorf("init excel writer: %w", err)
	}
	writers := []ports.ReportWriter{csvWriter, mdWriter, xlsxWriter}

	tokenizer := topics.NewTokenizer()
	extractor := topics.NewExtractor(tokenizer, log)
	analyzer := sentiment.NewAnalyzer()

	cleaner := usecase.NewCleanUseCase(log)
	scorer := usecase.NewScoreUseCase(analyzer, analysis, log, m)
	topicsUC := usecase.NewTopicsUseCase(extractor, analysis, log)
	builder := usecase.NewAggregateUseCase(tokenizer, analysis)

	exec := resilience.NewExecutor(resilience.DefaultConfig(), log)
	source := googleplay.New(cfg.ScrapeRPS, cfg.ScrapeBatchSize, exec, log, m)

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Cleaner: cleaner,
		Scorer:  scorer,
		Topics:  topicsUC,
		Builder: builder,
		Writers: writers,
		Store:   store,
		Metrics: m,
		Log:     log,
	})

	app := &App{
		Config:   cfg,
		Log:      log,
		Metrics:  m,
		Store:    store,
		Source:   source,
		Cleaner:  cleaner,
		Scorer:   scorer,
		Topics:   topicsUC,
		Builder:  builder,
		Writers:  writers,
		Markdown: mdWriter,
		Excel:    xlsxWriter,
		Pipeline: pipeline,
	}
	app.serveMetrics(cfg.MetricsPort)
	return app, nil
}

// OpenRepository connects to postgres on demand; only the load stage needs
// the database.
func (a *App) OpenRepository(ctx context.Context) (ports.ReviewRepository, func(), error) {
	db, err := postgres.OpenDB(a.Config.PostgresDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	repo := postgres.NewReviewRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ensure schema: %w", err)
	}
	return repo, func() { _ = db.Close() }, nil
}

func (a *App) serveMetrics(port string) {
	if port == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", a.Metrics.Handler())
	a.metricsServer = &http.Server{Addr: ":" + port, Handler: mux}
	go func() {
		if err := a.metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.Log.Error("metrics server stopped", "error", err)
		}
	}()
}

func (a *App) Close() {
	if a.metricsServer != nil {
		_ = a.metricsServer.Close()
	}
}
