package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/recipepipe/core/website"
)

// FileFetcher serves cached pages from a directory. The page of a website is
// read from <Dir>/<hostname>.html regardless of the URL path.
type FileFetcher struct {
	Dir string
}

// NewFileFetcher creates a FileFetcher rooted at dir.
func NewFileFetcher(dir string) *FileFetcher {
	return &FileFetcher{Dir: dir}
}

// Path returns the fixture path for a website.
func (f *FileFetcher) Path(site website.Website) string {
	return filepath.Join(f.Dir, site.String()+".html")
}

// FetchBlocking reads the fixture for site.
func (f *FileFetcher) FetchBlocking(site website.Website, _ string) (string, error) {
	if site == "" {
		return "", fmt.Errorf("reading fixture: empty website")
	}
	data, err := os.ReadFile(f.Path(site))
	if err != nil {
		return "", fmt.Errorf("reading fixture: %w", err)
	}
	return string(data), nil
}

// Fetch reads the fixture for site. It only observes ctx before reading.
func (f *FileFetcher) Fetch(ctx context.Context, site website.Website, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return f.FetchBlocking(site, url)
}
