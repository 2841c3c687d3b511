// Command analyze runs one analysis pass over a snapshot file and
// prints the text report, optionally writing it to disk.
package main

import (
	"context"
	"flag"
	"fmt"

	"fxanalysis-service/internal/bootstrap"
	"fxanalysis-service/internal/config"
	"fxanalysis-service/internal/ingest"
	"fxanalysis-service/internal/infrastructure/logx"
	"fxanalysis-service/internal/infrastructure/report"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func init() { _ = godotenv.Load() }

func main() {
	cfg := config.Load()

	file := flag.String("file", cfg.SnapshotPath, "snapshot file (.json or .csv)")
	url := flag.String("url", cfg.SnapshotURL, "snapshot URL (overrides -file)")
	out := flag.String("out", "", "also write the report to this path")
	flag.Parse()

	logger := logx.L()

	cfg.SnapshotPath = *file
	cfg.SnapshotURL = *url
	an := bootstrap.BuildAnalyzer(cfg)

	var source ingest.Source = bootstrap.BuildSource(cfg)
	if err := bootstrap.LoadSnapshot(context.Background(), source, an, cfg.RequestTimeout); err != nil {
		logger.Fatal("load snapshot", zap.Error(err))
	}

	text, err := report.Render(an)
	if err != nil {
		logger.Fatal("render report", zap.Error(err))
	}
	fmt.Print(text)

	if *out != "" {
		if err := report.WriteFile(*out, an); err != nil {
			logger.Fatal("write report", zap.Error(err))
		}
		logger.Info("report written", zap.String("path", *out))
	}
}
