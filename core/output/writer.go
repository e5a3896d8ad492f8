// Package output handles file naming and writing for rendered recipes.
// Files land in one directory per website, named after the recipe:
// <dir>/<website>/<slug><ext>, e.g. out/claudia.abril.com.br/estrogonofe-de-carne.json.
package output

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/schema"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	// maxSlugLen keeps file names well below common filesystem limits.
	maxSlugLen = 80
)

// Writer writes rendered output to disk. It is safe for concurrent use.
// Within one Writer every source URL gets its own file: a recipe whose name
// is already taken by another URL is written as <slug>-2, <slug>-3 and so on.
type Writer struct {
	OutputDir string

	mu      sync.Mutex
	claimed map[string]string // path -> source URL
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Path returns where the rendered recipe would be written, before Write
// numbers it to avoid another URL's file.
func (w *Writer) Path(recipe *schema.Recipe, meta core.SourceMetadata, ext string) string {
	dir := sanitizeHost(string(meta.Website))
	if dir == "" {
		dir = "unknown"
	}
	return filepath.Join(w.OutputDir, dir, FileName(recipe, meta.URL)+ext)
}

// Write stores data for the recipe and returns the file path.
func (w *Writer) Write(recipe *schema.Recipe, meta core.SourceMetadata, data []byte, ext string) (string, error) {
	p := w.claim(w.Path(recipe, meta, ext), ext, meta.URL)

	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(p, data, filePerm); err != nil {
		return "", fmt.Errorf("writing file %s: %w", p, err)
	}
	return p, nil
}

// claim reserves p for sourceURL, numbering it when another URL holds it.
func (w *Writer) claim(p, ext, sourceURL string) string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.claimed == nil {
		w.claimed = make(map[string]string)
	}

	base := strings.TrimSuffix(p, ext)
	candidate := p
	for n := 2; ; n++ {
		owner, taken := w.claimed[candidate]
		if !taken || owner == sourceURL {
			w.claimed[candidate] = sourceURL
			return candidate
		}
		candidate = base + "-" + strconv.Itoa(n) + ext
	}
}

// FileName picks the base name for a recipe: the slug of its name, else the
// last segment of the page URL, else "recipe".
func FileName(recipe *schema.Recipe, rawURL string) string {
	if recipe != nil {
		if s := Slug(recipe.Name); s != "" {
			return s
		}
	}
	if s := Slug(lastPathSegment(rawURL)); s != "" {
		return s
	}
	return "recipe"
}

// Slug folds s to lower-case ASCII words joined by dashes. Accents are
// removed ("Estrogonofe à Brasileira" becomes "estrogonofe-a-brasileira") and
// other characters act as separators.
func Slug(s string) string {
	fold := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(fold, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			if b.Len() >= maxSlugLen {
				break
			}
			continue
		}
		pendingDash = true
	}
	return b.String()
}

func lastPathSegment(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	p := strings.TrimSuffix(parsed.Path, "/")
	if p == "" {
		return ""
	}
	return strings.TrimSuffix(path.Base(p), path.Ext(p))
}

// sanitizeHost keeps hostnames readable while refusing path separators.
func sanitizeHost(s string) string {
	var b strings.Builder
	for _, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '.', ch == '-':
			b.WriteRune(ch)
		default:
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), ".")
}
