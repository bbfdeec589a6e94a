package discovery

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/apiwiki/internal/transport"
	"github.com/agentstation/apiwiki/pkg/errors"
)

func boolPtr(b bool) *bool { return &b }

// newServer serves a directory and one detail document.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/apis", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"kind": "discovery#directoryList",
			"items": [
				{"name": "books", "version": "v1", "title": "Books API", "preferred": true, "discoveryLink": "./apis/books/v1/rest"},
				{"name": "books", "version": "v2", "title": "Books API", "preferred": false, "discoveryLink": "./apis/books/v2/rest"},
				{"name": "urlshortener", "version": "v1", "discoveryLink": "./apis/urlshortener/v1/rest"}
			]
		}`))
	})
	mux.HandleFunc("/apis/books/v1/rest", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"name": "books", "version": "v1", "title": "Books API",
			"description": "Searches books",
			"icons": {"x16": "https://example.com/x16.png", "x32": "https://example.com/x32.png"}
		}`))
	})
	mux.HandleFunc("/apis/broken/v1/rest", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadDirectory(t *testing.T) {
	srv := newServer(t)
	client := NewClient(transport.New(), srv.URL+"/")

	dir, err := client.LoadDirectory(context.Background())
	require.NoError(t, err)
	require.Len(t, dir.Items, 3)

	assert.Equal(t, "books", dir.Items[0].Name)
	assert.True(t, dir.Items[0].IsPreferred())
	assert.False(t, dir.Items[1].IsPreferred())
	assert.True(t, dir.Items[2].IsPreferred(), "missing flag means preferred")
	assert.Equal(t, []string{"v1", "v2"}, dir.Versions("books"))
}

func TestLoadDirectoryFailsFast(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(transport.New(), srv.URL).LoadDirectory(context.Background())

	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))
	assert.Equal(t, 1, calls)
}

func TestFetchDetail(t *testing.T) {
	srv := newServer(t)
	client := NewClient(transport.New(), srv.URL)

	t.Run("found", func(t *testing.T) {
		detail := client.FetchDetail(context.Background(), Descriptor{Name: "books", Version: "v1", DiscoveryLink: "./apis/books/v1/rest"})
		require.NotNil(t, detail)
		assert.Equal(t, "Books API", detail.DisplayTitle())
		assert.Equal(t, "Searches books", detail.Description)
		assert.Equal(t, "https://example.com/x32.png", detail.Icon())
		assert.Empty(t, detail.DocumentationLink)
		assert.True(t, detail.IsPreferred())
	})

	t.Run("any failure is swallowed", func(t *testing.T) {
		for _, link := range []string{"./apis/missing/v1/rest", "./apis/broken/v1/rest", "http://127.0.0.1:0/x"} {
			assert.Nil(t, client.FetchDetail(context.Background(), Descriptor{Name: "x", Version: "v1", DiscoveryLink: link}), link)
		}
	})
}

func TestDetailURL(t *testing.T) {
	client := NewClient(nil, "https://www.googleapis.com/discovery/v1")

	assert.Equal(t, "https://www.googleapis.com/discovery/v1/apis", client.DirectoryURL())
	assert.Equal(t, "https://www.googleapis.com/discovery/v1/apis/books/v1/rest",
		client.DetailURL(Descriptor{DiscoveryLink: "./apis/books/v1/rest"}))
	assert.Equal(t, "https://other.example.com/rest",
		client.DetailURL(Descriptor{DiscoveryLink: "https://other.example.com/rest"}))
}

func TestDetailDefaults(t *testing.T) {
	detail := &Detail{Name: "books", Preferred: boolPtr(false)}
	assert.Equal(t, "books", detail.DisplayTitle())
	assert.Empty(t, detail.Icon())
	assert.False(t, detail.IsPreferred())
}

func TestSorted(t *testing.T) {
	dir := &Directory{Items: []Descriptor{
		{Name: "zebra", Version: "v1", Title: "Zebra API"},
		{Name: "adexchange", Version: "v1", Title: "Ad Exchange API"},
		{Name: "apps", Version: "v1"},
		{Name: "books", Version: "v2", Title: "Books API"},
		{Name: "books", Version: "v1", Title: "Books API"},
	}}

	var got []string
	for _, d := range dir.Sorted() {
		got = append(got, d.Key())
	}

	want := []string{"adexchange:v1", "apps:v1", "books:v2", "books:v1", "zebra:v1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Sorted() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "zebra", dir.Items[0].Name, "Sorted must not reorder the directory")
}

func TestMerge(t *testing.T) {
	dir := &Directory{Items: []Descriptor{
		{Name: "books", Version: "v1", Title: "Books API"},
	}}

	dir.Merge([]Descriptor{
		{Name: "books", Version: "v1", Title: "Books API (patched)"},
		{Name: "newapi", Version: "v1", Title: "New API"},
	})

	require.Len(t, dir.Items, 2)
	assert.Equal(t, "Books API (patched)", dir.Items[0].Title)
	assert.Equal(t, "newapi", dir.Items[1].Name)
}

func TestLoadExtras(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "extras.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`services:
  - name: newapi
    version: v1
    title: New API
    preferred: true
    discoveryLink: ./apis/newapi/v1/rest
`), 0o644))

		extras, err := LoadExtras(path)
		require.NoError(t, err)
		require.Len(t, extras, 1)
		assert.Equal(t, "newapi:v1", extras[0].Key())
		assert.Equal(t, "./apis/newapi/v1/rest", extras[0].DiscoveryLink)
		assert.True(t, extras[0].IsPreferred())
	})

	t.Run("missing version", func(t *testing.T) {
		_, err := ParseExtras([]byte("services:\n  - name: newapi\n"), "extras.yaml")
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseExtras([]byte("services: [\n"), "extras.yaml")
		var parseErr *errors.ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadExtras(filepath.Join(t.TempDir(), "nope.yaml"))
		var ioErr *errors.IOError
		assert.ErrorAs(t, err, &ioErr)
	})
}
