// Package cmd — scrape command.
// This is the main command that orchestrates the pipeline:
// classify → fetch → locate → decode → render → write.
//
// It handles renderer selection and the single-URL and --all modes.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/recipepipe/config"
	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/fetch"
	"github.com/gaurav-prasanna/recipepipe/core/output"
	"github.com/gaurav-prasanna/recipepipe/core/render"
	"github.com/gaurav-prasanna/recipepipe/core/schema"
	"github.com/gaurav-prasanna/recipepipe/core/scrape"
	"github.com/gaurav-prasanna/recipepipe/crawl"
	"github.com/gaurav-prasanna/recipepipe/logger"
)

// Flag variables.
var (
	flagAll      bool
	flagPDF      bool
	flagMarkdown bool
	flagJSON     bool
	flagEnvelope bool
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Extract the recipe from a page on a supported website",
	Long: `Scrape classifies the URL against the supported websites, fetches the page,
locates its JSON-LD data and decodes the first schema.org Recipe it finds.

Without --output_dir the rendered recipe is printed to stdout. With --all the
recipe pages of the same website are discovered (sitemap first, then links)
and each one is written under --output_dir/<website>/.

Examples:
  recipepipe scrape https://www.acouplecooks.com/shaved-brussels-sprouts/
  recipepipe scrape https://claudia.abril.com.br/receitas/estrogonofe-de-carne/ --markdown
  recipepipe scrape https://abuelascounter.com/ --all --pdf --output_dir ./out
  recipepipe scrape https://abuelascounter.com/ --fixtures core/scrape/testdata`,
	Args: cobra.ExactArgs(1),
	RunE: runScrape,
}

func init() {
	scrapeCmd.Flags().BoolVar(&flagAll, "all", false, "Scrape every recipe page discovered on the website")

	// Output format flags (mutually exclusive).
	scrapeCmd.Flags().BoolVar(&flagJSON, "json", false, "Output schema.org JSON (default)")
	scrapeCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output a Markdown recipe card")
	scrapeCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output a PDF recipe card")
	scrapeCmd.MarkFlagsMutuallyExclusive("json", "markdown", "pdf")
	scrapeCmd.Flags().BoolVar(&flagEnvelope, "with_source", false,
		"Wrap JSON output in an object carrying the source URL and fetch time")

	scrapeCmd.Flags().String("output_dir", "", "Output directory (default: stdout, or the current directory with --all)")
	scrapeCmd.Flags().String("fixtures", "", "Read pages from <dir>/<host>.html instead of the network")
	scrapeCmd.Flags().Duration("timeout", fetch.DefaultTimeout, "Per-request timeout")
	scrapeCmd.Flags().Int("max_pages", crawl.DefaultMaxPages, "Maximum pages discovered with --all")
	scrapeCmd.Flags().Int("concurrency", config.DefaultConcurrency, "Pages scraped in parallel with --all")
}

func runScrape(cmd *cobra.Command, args []string) error {
	fetcher := newFetcher(cfg.Fetch)
	p := &pipeline{
		scraper:  scrape.New(fetcher),
		renderer: selectRenderer(),
		log:      log,
		out:      cmd.OutOrStdout(),
		now:      time.Now,
	}

	if flagAll {
		d := crawl.New(fetcher, log, cfg.Crawl.MaxPages)
		_, err := p.scrapeAll(cmd.Context(), args[0], d, cfg.Output.Dir, cfg.Crawl.Concurrency)
		return err
	}
	return p.scrapeOne(cmd.Context(), args[0], cfg.Output.Dir)
}

// newFetcher reads fixtures when a directory is configured and the network
// otherwise.
func newFetcher(c config.FetchConfig) core.Fetcher {
	if c.FixturesDir != "" {
		return fetch.Blocking(fetch.NewFileFetcher(c.FixturesDir))
	}
	return fetch.New(fetch.WithTimeout(c.Timeout), fetch.WithUserAgent(c.UserAgent))
}

// selectRenderer creates the Renderer chosen by flags. JSON is the default.
func selectRenderer() core.Renderer {
	switch {
	case flagMarkdown:
		return render.NewMarkdownRenderer()
	case flagPDF:
		return render.NewPDFRenderer()
	case flagEnvelope:
		return render.NewJSONEnvelopeRenderer()
	default:
		return render.NewJSONRenderer()
	}
}

// pipeline ties a scraper to a renderer and reports what it produced.
type pipeline struct {
	scraper  *scrape.Scraper
	renderer core.Renderer
	log      *zap.Logger
	out      io.Writer
	now      func() time.Time

	mu sync.Mutex // guards out
}

// summary counts the outcome of a batch run.
type summary struct {
	Pages   int
	Written int
	// Failed counts failures by scrape.Kind.
	Failed map[string]int
}

// processURL runs a single URL through the pipeline.
func (p *pipeline) processURL(ctx context.Context, rawURL string) (*schema.Recipe, core.SourceMetadata, []byte, error) {
	start := p.now()
	recipe, err := p.scraper.Scrape(ctx, rawURL)
	if err != nil {
		return nil, core.SourceMetadata{}, nil, err
	}
	// Scrape already classified the URL successfully.
	site, _ := p.scraper.Classify(rawURL)
	meta := core.SourceMetadata{
		URL:       rawURL,
		Website:   site,
		FetchedAt: start.UTC().Format(time.RFC3339),
	}

	data, err := p.renderer.Render(recipe, meta)
	if err != nil {
		return nil, core.SourceMetadata{}, nil, fmt.Errorf("render: %w", err)
	}

	p.log.Debug("recipe extracted",
		zap.String(logger.FieldURL, rawURL),
		zap.String(logger.FieldWebsite, site.String()),
		zap.Duration(logger.FieldDuration, p.now().Sub(start)))
	return recipe, meta, data, nil
}

// scrapeOne extracts one recipe. With an empty outputDir the rendered bytes
// go to the pipeline's output stream.
func (p *pipeline) scrapeOne(ctx context.Context, rawURL, outputDir string) error {
	recipe, meta, data, err := p.processURL(ctx, rawURL)
	if err != nil {
		p.log.Error("scrape failed",
			zap.String(logger.FieldURL, rawURL),
			zap.String(logger.FieldKind, scrape.Kind(err)),
			zap.Error(err))
		return fmt.Errorf("scraping %s: %w", rawURL, err)
	}

	if outputDir == "" {
		_, err = p.out.Write(data)
		return err
	}

	writer, err := output.New(outputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	path, err := writer.Write(recipe, meta, data, p.renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(p.out, "✓ Written: %s\n", path)
	return nil
}

// scrapeAll discovers the recipe pages of rawURL's website and scrapes up to
// concurrency of them at a time. A page that fails is logged and counted; only
// cancellation and setup failures abort the run.
func (p *pipeline) scrapeAll(ctx context.Context, rawURL string, d *crawl.Discoverer, outputDir string, concurrency int) (summary, error) {
	sum := summary{Failed: map[string]int{}}

	site, err := p.scraper.Classify(rawURL)
	if err != nil {
		return sum, fmt.Errorf("scraping %s: %w", rawURL, err)
	}
	writer, err := output.New(outputDir)
	if err != nil {
		return sum, fmt.Errorf("initializing output writer: %w", err)
	}

	urls, err := d.Discover(ctx, rawURL, site)
	if err != nil {
		return sum, fmt.Errorf("discovering pages: %w", err)
	}
	sum.Pages = len(urls)
	p.log.Info("scraping discovered pages",
		zap.String(logger.FieldWebsite, site.String()),
		zap.Int("pages", len(urls)),
		zap.Int("concurrency", concurrency))

	var (
		g     errgroup.Group
		tally sync.Mutex
	)
	g.SetLimit(concurrency)
	for _, pageURL := range urls {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			path, err := p.writeURL(ctx, writer, pageURL)

			tally.Lock()
			defer tally.Unlock()
			if err != nil {
				sum.Failed[scrape.Kind(err)]++
				return nil
			}
			sum.Written++
			p.mu.Lock()
			fmt.Fprintf(p.out, "✓ Written: %s\n", path)
			p.mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return sum, err
	}

	if failed := sum.Pages - sum.Written; failed > 0 {
		fields := []zap.Field{
			zap.Int("failed", failed),
			zap.Int("pages", sum.Pages),
		}
		for _, kind := range slices.Sorted(maps.Keys(sum.Failed)) {
			fields = append(fields, zap.Int(kind, sum.Failed[kind]))
		}
		p.log.Warn("some pages failed", fields...)
	}
	return sum, nil
}

// writeURL scrapes one discovered page and writes it. Pages without a recipe
// are expected while crawling and only logged at debug level.
func (p *pipeline) writeURL(ctx context.Context, writer *output.Writer, pageURL string) (string, error) {
	recipe, meta, data, err := p.processURL(ctx, pageURL)
	if err == nil {
		var path string
		path, err = writer.Write(recipe, meta, data, p.renderer.Extension())
		if err == nil {
			return path, nil
		}
	}

	kind := scrape.Kind(err)
	fields := []zap.Field{
		zap.String(logger.FieldURL, pageURL),
		zap.String(logger.FieldKind, kind),
		zap.Error(err),
	}
	switch {
	case errors.Is(err, scrape.ErrLdJSONNotFound), errors.Is(err, scrape.ErrDomainNotImplemented):
		p.log.Debug("no recipe on page", fields...)
	default:
		p.log.Warn("scrape failed", fields...)
	}
	return "", err
}
