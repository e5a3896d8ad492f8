package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/gaurav-prasanna/recipepipe/config"
	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/fetch"
	"github.com/gaurav-prasanna/recipepipe/core/render"
	"github.com/gaurav-prasanna/recipepipe/core/scrape"
	"github.com/gaurav-prasanna/recipepipe/core/website"
	"github.com/gaurav-prasanna/recipepipe/crawl"
)

var fixedNow = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }

func recipePage(name string) string {
	return `<html><head><script type="application/ld+json">
{"@context":"https://schema.org","@type":"Recipe","name":"` + name + `","recipeIngredient":["1 onion"]}
</script></head><body></body></html>`
}

func newTestPipeline(t *testing.T, f core.Fetcher, r core.Renderer) (*pipeline, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &pipeline{
		scraper:  scrape.New(f),
		renderer: r,
		log:      zaptest.NewLogger(t),
		out:      &out,
		now:      fixedNow,
	}, &out
}

func TestPipeline_ScrapeOne_Stdout(t *testing.T) {
	t.Parallel()

	fixture, err := os.ReadFile(filepath.Join("..", "core", "scrape", "testdata", "abuelascounter.com.html"))
	require.NoError(t, err)
	pages := fetch.NewMemoryFetcher(map[string]string{
		"https://abuelascounter.com/roasted-carrot-soup/": string(fixture),
	})

	p, out := newTestPipeline(t, pages, render.NewJSONEnvelopeRenderer())
	require.NoError(t, p.scrapeOne(context.Background(), "https://abuelascounter.com/roasted-carrot-soup/", ""))

	var doc struct {
		Source struct {
			URL       string `json:"url"`
			Website   string `json:"website"`
			FetchedAt string `json:"fetched_at"`
		} `json:"source"`
		Recipe struct {
			Name string `json:"name"`
		} `json:"recipe"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "Roasted Carrot Soup", doc.Recipe.Name)
	assert.Equal(t, "abuelascounter.com", doc.Source.Website)
	assert.Equal(t, "2024-03-01T12:00:00Z", doc.Source.FetchedAt)
}

func TestPipeline_ScrapeOne_OutputDir(t *testing.T) {
	t.Parallel()

	pages := fetch.NewMemoryFetcher(map[string]string{
		"https://www.acouplecooks.com/lentil-soup/": recipePage("Crème Lentil Soup"),
	})
	dir := t.TempDir()

	p, out := newTestPipeline(t, pages, render.NewMarkdownRenderer())
	require.NoError(t, p.scrapeOne(context.Background(), "https://www.acouplecooks.com/lentil-soup/", dir))

	want := filepath.Join(dir, "www.acouplecooks.com", "creme-lentil-soup.md")
	assert.Equal(t, "✓ Written: "+want+"\n", out.String())

	data, err := os.ReadFile(want)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "# Crème Lentil Soup\n"))
}

func TestPipeline_ScrapeOne_Errors(t *testing.T) {
	t.Parallel()

	pages := fetch.NewMemoryFetcher(map[string]string{
		"https://www.acouplecooks.com/about/": "<html><body>About us</body></html>",
	})
	p, out := newTestPipeline(t, pages, render.NewJSONRenderer())

	err := p.scrapeOne(context.Background(), "https://example.com/soup", "")
	require.ErrorIs(t, err, website.ErrUnknownWebsite)

	err = p.scrapeOne(context.Background(), "https://www.acouplecooks.com/about/", "")
	require.ErrorIs(t, err, scrape.ErrLdJSONNotFound)

	err = p.scrapeOne(context.Background(), "https://www.acouplecooks.com/missing/", "")
	assert.Equal(t, scrape.KindTransport, scrape.Kind(err))

	assert.Zero(t, out.Len())
}

func TestPipeline_ScrapeAll(t *testing.T) {
	t.Parallel()

	pages := fetch.NewMemoryFetcher(map[string]string{
		"https://www.acouplecooks.com/sitemap.xml": `<urlset>
  <url><loc>https://www.acouplecooks.com/lentil-soup/</loc></url>
  <url><loc>https://www.acouplecooks.com/roasted-carrots/</loc></url>
  <url><loc>https://www.acouplecooks.com/about-us/</loc></url>
  <url><loc>https://www.acouplecooks.com/gone/</loc></url>
</urlset>`,
		"https://www.acouplecooks.com/lentil-soup":     recipePage("Lentil Soup"),
		"https://www.acouplecooks.com/roasted-carrots": recipePage("Roasted Carrots"),
		"https://www.acouplecooks.com/about-us":        "<html><body>About us</body></html>",
	})
	dir := t.TempDir()

	p, out := newTestPipeline(t, pages, render.NewJSONRenderer())
	d := crawl.New(pages, p.log, 10)
	sum, err := p.scrapeAll(context.Background(), "https://www.acouplecooks.com/", d, dir, 2)
	require.NoError(t, err)

	assert.Equal(t, 4, sum.Pages)
	assert.Equal(t, 2, sum.Written)
	assert.Equal(t, map[string]int{
		scrape.KindLdJSONNotFound: 1,
		scrape.KindTransport:      1,
	}, sum.Failed)
	assert.Equal(t, 2, strings.Count(out.String(), "✓ Written: "))

	for _, name := range []string{"lentil-soup.json", "roasted-carrots.json"} {
		assert.FileExists(t, filepath.Join(dir, "www.acouplecooks.com", name))
	}
}

func TestPipeline_ScrapeAll_SameRecipeName(t *testing.T) {
	t.Parallel()

	pages := fetch.NewMemoryFetcher(map[string]string{
		"https://www.acouplecooks.com/sitemap.xml": `<urlset>
  <url><loc>https://www.acouplecooks.com/lentil-soup/</loc></url>
  <url><loc>https://www.acouplecooks.com/lentil-soup-instant-pot/</loc></url>
</urlset>`,
		"https://www.acouplecooks.com/lentil-soup":             recipePage("Lentil Soup"),
		"https://www.acouplecooks.com/lentil-soup-instant-pot": recipePage("Lentil Soup"),
	})
	dir := t.TempDir()

	p, _ := newTestPipeline(t, pages, render.NewJSONRenderer())
	sum, err := p.scrapeAll(context.Background(), "https://www.acouplecooks.com/", crawl.New(pages, p.log, 10), dir, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, sum.Written)

	entries, err := os.ReadDir(filepath.Join(dir, "www.acouplecooks.com"))
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"lentil-soup.json", "lentil-soup-2.json"}, names)
}

func TestPipeline_ScrapeAll_UnknownWebsite(t *testing.T) {
	t.Parallel()

	pages := fetch.NewMemoryFetcher(nil)
	p, _ := newTestPipeline(t, pages, render.NewJSONRenderer())

	_, err := p.scrapeAll(context.Background(), "https://example.com/", crawl.New(pages, nil, 10), t.TempDir(), 2)
	require.ErrorIs(t, err, website.ErrUnknownWebsite)
	assert.Zero(t, pages.Calls())
}

func TestPipeline_ScrapeAll_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pages := fetch.NewMemoryFetcher(nil)
	p, _ := newTestPipeline(t, pages, render.NewJSONRenderer())

	_, err := p.scrapeAll(ctx, "https://www.acouplecooks.com/", crawl.New(pages, nil, 10), t.TempDir(), 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestNewFetcher(t *testing.T) {
	t.Parallel()

	_, isHTTP := newFetcher(config.FetchConfig{Timeout: time.Second, UserAgent: "ua"}).(*fetch.HTTPFetcher)
	assert.True(t, isHTTP)

	f := newFetcher(config.FetchConfig{FixturesDir: filepath.Join("..", "core", "scrape", "testdata")})
	body, err := f.Fetch(context.Background(), website.ClaudiaAbrilComBr, "https://claudia.abril.com.br/anything")
	require.NoError(t, err)
	assert.Contains(t, body, "application/ld+json")
}

func TestWebsitesCommand(t *testing.T) {
	var out bytes.Buffer
	websitesCmd.SetOut(&out)
	t.Cleanup(func() { websitesCmd.SetOut(nil) })

	require.NoError(t, websitesCmd.RunE(websitesCmd, nil))

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, []string{"HOST", "WEBSITE"}, strings.Fields(lines[0]))
	assert.Contains(t, out.String(), "www.acouplecooks.com")
	assert.Contains(t, out.String(), "hostnames")
}

func TestBuildVersion(t *testing.T) {
	assert.NotEmpty(t, buildVersion())
}

func TestSetup_DebugFlag(t *testing.T) {
	prevDebug, prevCfg, prevLog := flagDebug, cfg, log
	t.Cleanup(func() { flagDebug, cfg, log = prevDebug, prevCfg, prevLog })

	tests := []struct {
		name      string
		debug     bool
		wantLevel string
	}{
		{name: "default", debug: false, wantLevel: "info"},
		{name: "debug", debug: true, wantLevel: "debug"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", "")
			flagDebug = tt.debug

			require.NoError(t, setup(versionCmd, nil))
			assert.Equal(t, tt.wantLevel, cfg.Logger.Level)
			assert.Equal(t, tt.debug, cfg.Logger.Development)
			assert.Equal(t, tt.debug, log.Core().Enabled(zap.DebugLevel))
		})
	}
	assert.NotEmpty(t, buildVersion())
}
