package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gaurav-prasanna/recipepipe/core/website"
)

// ErrNotFound is returned by MemoryFetcher for URLs it holds no page for.
var ErrNotFound = errors.New("page not found")

// MemoryFetcher serves pages from memory, keyed by URL. It is safe for
// concurrent use.
type MemoryFetcher struct {
	mu    sync.RWMutex
	pages map[string]string
	calls int
}

// NewMemoryFetcher creates a MemoryFetcher holding pages.
func NewMemoryFetcher(pages map[string]string) *MemoryFetcher {
	m := &MemoryFetcher{pages: make(map[string]string, len(pages))}
	for url, body := range pages {
		m.pages[url] = body
	}
	return m
}

// Set stores the body served for url.
func (m *MemoryFetcher) Set(url, body string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages[url] = body
}

// Calls returns how many fetches were made.
func (m *MemoryFetcher) Calls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls
}

// FetchBlocking returns the stored body for url.
func (m *MemoryFetcher) FetchBlocking(_ website.Website, url string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	body, ok := m.pages[url]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	return body, nil
}

// Fetch returns the stored body for url unless ctx is already done.
func (m *MemoryFetcher) Fetch(ctx context.Context, site website.Website, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return m.FetchBlocking(site, url)
}
