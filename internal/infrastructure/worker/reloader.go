package worker

import (
	"context"
	"time"

	"fxanalysis-service/internal/analysis"
	"fxanalysis-service/internal/ingest"

	"go.uber.org/zap"
)

// Reloader periodically re-reads the snapshot source and swaps the
// analyzer's dataset. A failed fetch or an empty snapshot leaves the
// previous snapshot serving.
type Reloader struct {
	Source   ingest.Source
	Analyzer *analysis.Analyzer

	Every   time.Duration
	Timeout time.Duration
	Log     *zap.Logger
}

func (w *Reloader) Start(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	if w.Every <= 0 {
		log.Info("reloader_disabled")
		return
	}
	if w.Timeout <= 0 {
		w.Timeout = 10 * time.Second
	}

	t := time.NewTicker(w.Every)
	defer t.Stop()

	log.Info("reloader_started", zap.Duration("every", w.Every))
	for {
		select {
		case <-ctx.Done():
			log.Info("reloader_stopped")
			return
		case <-t.C:
			w.tick(ctx, log)
		}
	}
}

func (w *Reloader) tick(ctx context.Context, log *zap.Logger) {
	c, cancel := context.WithTimeout(ctx, w.Timeout)
	defer cancel()

	records, err := w.Source.Fetch(c)
	if err != nil {
		log.Warn("reload_fetch_failed", zap.Error(err))
		return
	}
	if err := w.Analyzer.Load(records); err != nil {
		log.Warn("reload_rejected", zap.Error(err))
		return
	}
	log.Info("reload_done", zap.Int("records", len(records)))
}
