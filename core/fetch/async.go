package fetch

import (
	"context"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/website"
)

// blocking adapts a core.BlockingFetcher to core.Fetcher.
type blocking struct {
	f core.BlockingFetcher
}

// Blocking adapts a synchronous fetcher to the context-aware interface. The
// context is checked before the call; the call itself is not interrupted.
func Blocking(f core.BlockingFetcher) core.Fetcher {
	return blocking{f: f}
}

func (b blocking) Fetch(ctx context.Context, site website.Website, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return b.f.FetchBlocking(site, url)
}

// Result is the outcome of an asynchronous fetch.
type Result struct {
	Body string
	Err  error
}

// Async starts f.Fetch in a goroutine and delivers exactly one result on the
// returned buffered channel. When ctx is done first, the result carries
// ctx.Err().
func Async(ctx context.Context, f core.Fetcher, site website.Website, url string) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		done := make(chan Result, 1)
		go func() {
			body, err := f.Fetch(ctx, site, url)
			done <- Result{Body: body, Err: err}
		}()
		select {
		case r := <-done:
			out <- r
		case <-ctx.Done():
			out <- Result{Err: ctx.Err()}
		}
	}()
	return out
}
