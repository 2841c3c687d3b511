package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func Test_FileSource_JSON(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "snapshot.json", `[{"Currency Pair": "USD/INR", "Price": 83.0}]`)

	src := &FileSource{Path: path}
	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "USD/INR", got[0].PairCode)
}

func Test_FileSource_CSV(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "snapshot.csv", "Currency Pair,Price\nEUR/USD,1.10\n")

	src := &FileSource{Path: path}
	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "EUR/USD", got[0].PairCode)
}

func Test_FileSource_UnsupportedExtension(t *testing.T) {
	t.Parallel()
	path := writeTemp(t, "snapshot.xml", "<quotes/>")

	src := &FileSource{Path: path}
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}

func Test_FileSource_Missing(t *testing.T) {
	t.Parallel()
	src := &FileSource{Path: filepath.Join(t.TempDir(), "absent.json")}
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}

func Test_HTTPSource_FetchesSnapshot(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"Currency Pair": "USD/JPY", "Price": 150.0, "Percent Change": 0.8}]`))
	}))
	defer ts.Close()

	src := &HTTPSource{URL: ts.URL}
	got, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "USD/JPY", got[0].PairCode)
	require.InDelta(t, 0.8, got[0].PercentChange, 1e-9)
}

func Test_HTTPSource_ErrorStatus(t *testing.T) {
	t.Parallel()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	src := &HTTPSource{URL: ts.URL}
	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}
