package bootstrap

import (
	"context"
	"net/http"
	"time"

	"fxanalysis-service/internal/analysis"
	"fxanalysis-service/internal/config"
	"fxanalysis-service/internal/ingest"
	"fxanalysis-service/internal/infrastructure/httpx"
	"fxanalysis-service/internal/infrastructure/worker"

	"go.uber.org/zap"
)

// BuildAnalyzer wires the engine with the configured thresholds.
func BuildAnalyzer(cfg config.Config) *analysis.Analyzer {
	return analysis.NewAnalyzer(
		analysis.WithMovementThreshold(cfg.MovementThreshold),
		analysis.WithClassifier(analysis.NewMovementClassifier(cfg.VolatilityThreshold, cfg.ReversalThreshold)),
		analysis.WithSearcher(analysis.NewArbitrageSearcher(cfg.ArbitrageMinProfit, cfg.ArbitrageMaxTriples)),
	)
}

// BuildSource picks the snapshot source: a URL when configured,
// otherwise the local file path.
func BuildSource(cfg config.Config) ingest.Source {
	if cfg.SnapshotURL != "" {
		return &ingest.HTTPSource{
			URL:    cfg.SnapshotURL,
			Client: &httpx.Client{HTTP: &http.Client{Timeout: cfg.RequestTimeout}},
		}
	}
	return &ingest.FileSource{Path: cfg.SnapshotPath}
}

// LoadSnapshot fetches one snapshot and loads it into the analyzer.
func LoadSnapshot(ctx context.Context, src ingest.Source, an *analysis.Analyzer, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	records, err := src.Fetch(ctx)
	if err != nil {
		return err
	}
	return an.Load(records)
}

// BuildReloader returns the periodic reload worker, or nil when
// disabled by config.
func BuildReloader(cfg config.Config, src ingest.Source, an *analysis.Analyzer, log *zap.Logger) *worker.Reloader {
	if cfg.ReloadEvery <= 0 {
		return nil
	}
	return &worker.Reloader{
		Source:   src,
		Analyzer: an,
		Every:    cfg.ReloadEvery,
		Timeout:  cfg.RequestTimeout,
		Log:      log,
	}
}
