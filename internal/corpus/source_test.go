package corpus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
)

func TestHTTPSourceFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"easy": [{"word": "big", "definition": "large"}]}`))
	}))
	defer srv.Close()

	corpus, err := NewHTTPSource(srv.URL + "/vocabulary.json").Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if corpus.Len() != 1 {
		t.Fatalf("expected 1 word, got %d", corpus.Len())
	}
}

func TestHTTPSourceFetchHTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<div data-tier="medium"><dl><dt>candid</dt><dd>frank</dd></dl></div>`))
	}))
	defer srv.Close()

	corpus, err := NewHTTPSource(srv.URL + "/glossary").Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	words, ok := corpus.Tier("medium")
	if !ok || len(words) != 1 || words[0].Word != "candid" {
		t.Fatalf("unexpected corpus %+v", corpus)
	}
}

func TestHTTPSourceNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	if _, err := NewHTTPSource(srv.URL + "/vocabulary.json").Fetch(context.Background()); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestFSSource(t *testing.T) {
	fsys := fstest.MapFS{
		"vocabulary.json": {Data: []byte(`{"hard": [{"word": "paradigm", "definition": "a model"}]}`)},
	}

	corpus, err := NewFSSource(fsys, "vocabulary.json").Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := corpus.Names(); len(got) != 1 || got[0] != "hard" {
		t.Fatalf("unexpected tiers %v", got)
	}

	if _, err := NewFSSource(fsys, "missing.json").Fetch(context.Background()); err == nil {
		t.Fatal("expected error for missing file")
	}
}
