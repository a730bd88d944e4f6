package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arvheim/fkit/pkg/config"
)

func newTestScraper() *Scraper {
	return New(config.ScraperConfig{
		TimeoutSeconds: 5,
		UserAgent:      "fkit-test",
	})
}

func TestFetchAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body>
			<a href="/docs/one.pdf">One</a>
			<a href="docs/two.pdf">Two</a>
			<a href="/docs/one.pdf">One again</a>
			<a href="/other.html">Not a pdf</a>
		</body></html>`)
	})
	mux.HandleFunc("/docs/one.pdf", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "pdf-one")
	})
	mux.HandleFunc("/docs/two.pdf", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "pdf-two")
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	outDir := filepath.Join(t.TempDir(), "out")

	downloaded, err := newTestScraper().FetchAll(context.Background(), server.URL, outDir)
	require.NoError(t, err)
	assert.Equal(t, 2, downloaded)

	one, err := os.ReadFile(filepath.Join(outDir, "one.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf-one", string(one))

	two, err := os.ReadFile(filepath.Join(outDir, "two.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "pdf-two", string(two))
}

func TestFetchAll_NoLinks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><p>nothing here</p></body></html>`)
	}))
	defer server.Close()

	outDir := filepath.Join(t.TempDir(), "out")

	downloaded, err := newTestScraper().FetchAll(context.Background(), server.URL, outDir)
	require.NoError(t, err)
	assert.Zero(t, downloaded)

	// output dir is only created when there is something to download
	_, err = os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))
}

func TestFetchAll_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestScraper().FetchAll(context.Background(), server.URL, t.TempDir())
	assert.Error(t, err)
}

func TestFetchAll_BadScheme(t *testing.T) {
	_, err := newTestScraper().FetchAll(context.Background(), "ftp://example.com/page", t.TempDir())
	assert.Error(t, err)
}

func TestFetchAll_SendsUserAgent(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, `<html></html>`)
	}))
	defer server.Close()

	_, err := newTestScraper().FetchAll(context.Background(), server.URL, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "fkit-test", gotAgent)
}
