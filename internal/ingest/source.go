package ingest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"fxanalysis-service/internal/domain"
	"fxanalysis-service/internal/infrastructure/httpx"
)

// Source produces one snapshot of quote records.
type Source interface {
	Fetch(ctx context.Context) ([]domain.QuoteRecord, error)
}

// FileSource reads a local snapshot file; the format follows the
// extension (.json or .csv).
type FileSource struct {
	Path string
}

var _ Source = (*FileSource)(nil)

func (s *FileSource) Fetch(_ context.Context) ([]domain.QuoteRecord, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".json":
		return ParseJSON(f)
	case ".csv":
		return ParseCSV(f)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q", filepath.Ext(s.Path))
	}
}

// HTTPSource fetches a published JSON snapshot once per call. This is
// a point-in-time download, not a streaming feed.
type HTTPSource struct {
	URL    string
	Client *httpx.Client
}

var _ Source = (*HTTPSource)(nil)

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.QuoteRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = &httpx.Client{}
	}
	var raw []rawRecord
	if err := client.DoJSON(ctx, req, &raw); err != nil {
		return nil, fmt.Errorf("fetch snapshot: %w", err)
	}
	out := make([]domain.QuoteRecord, 0, len(raw))
	for _, rr := range raw {
		out = append(out, rr.toDomain())
	}
	return out, nil
}
