package corpus

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"brainhub/internal/domain"
)

// maxDocumentSize caps how much of a corpus document is read
const maxDocumentSize = 4 << 20

// HTTPSource fetches a corpus document over HTTP
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource creates a source for url using http.DefaultClient
func NewHTTPSource(url string) *HTTPSource {
	return &HTTPSource{URL: url, Client: http.DefaultClient}
}

// Name returns the source URL
func (s *HTTPSource) Name() string {
	return s.URL
}

// Fetch downloads and parses the document
func (s *HTTPSource) Fetch(ctx context.Context) (domain.Corpus, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, text/html;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("get %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Corpus{}, fmt.Errorf("get %s: unexpected status %d", s.URL, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("read %s: %w", s.URL, err)
	}
	return Parse(data, FormatFor(resp.Header.Get("Content-Type"), req.URL.Path))
}

// FSSource reads a corpus document from a file system
type FSSource struct {
	FS   fs.FS
	Path string
}

// NewFSSource creates a source reading path from fsys
func NewFSSource(fsys fs.FS, path string) *FSSource {
	return &FSSource{FS: fsys, Path: path}
}

// Name returns the document path
func (s *FSSource) Name() string {
	return s.Path
}

// Fetch reads and parses the document
func (s *FSSource) Fetch(ctx context.Context) (domain.Corpus, error) {
	if err := ctx.Err(); err != nil {
		return domain.Corpus{}, err
	}
	data, err := fs.ReadFile(s.FS, s.Path)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return Parse(data, FormatFor("", s.Path))
}
