// Package website classifies URLs into known recipe websites.
// The hostname table is data: websites.yaml is embedded at build time and
// parsed once, on first use. Every entry must map to a tag declared in tags.go.
package website

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

// ErrUnknownWebsite is returned when a URL's host is not in the hostname table.
var ErrUnknownWebsite = errors.New("unknown website")

// Website is a tag identifying a known recipe website.
// Its value is the canonical hostname of the site.
type Website string

// String returns the canonical hostname of the website.
func (w Website) String() string {
	return string(w)
}

// Known reports whether w belongs to the closed set of website tags.
func (w Website) Known() bool {
	_, ok := known()[w]
	return ok
}

// All returns every website tag, sorted by hostname.
func All() []Website {
	out := make([]Website, len(all))
	copy(out, all)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var known = sync.OnceValue(func() map[Website]struct{} {
	m := make(map[Website]struct{}, len(all))
	for _, w := range all {
		m[w] = struct{}{}
	}
	return m
})

//go:embed websites.yaml
var websitesYAML []byte

// tableFile is the on-disk shape of websites.yaml.
type tableFile struct {
	Websites []struct {
		Website string   `yaml:"website"`
		Aliases []string `yaml:"aliases"`
	} `yaml:"websites"`
}

// Table maps hostnames to website tags. A Table is immutable once loaded and
// safe for concurrent use.
type Table struct {
	hosts map[string]Website
}

// LoadTable parses a hostname table in the websites.yaml format.
func LoadTable(r io.Reader) (*Table, error) {
	var file tableFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("decoding hostname table: %w", err)
	}

	t := &Table{hosts: make(map[string]Website)}
	for i, entry := range file.Websites {
		w := Website(entry.Website)
		if !w.Known() {
			return nil, fmt.Errorf("hostname table entry %d: undeclared website %q", i, entry.Website)
		}
		for _, host := range append([]string{entry.Website}, entry.Aliases...) {
			if prev, dup := t.hosts[host]; dup && prev != w {
				return nil, fmt.Errorf("hostname %q mapped to both %s and %s", host, prev, w)
			}
			t.hosts[host] = w
		}
	}
	return t, nil
}

// Len returns the number of hostnames in the table.
func (t *Table) Len() int {
	return len(t.hosts)
}

// Hosts returns every hostname in the table, sorted.
func (t *Table) Hosts() []string {
	hosts := make([]string, 0, len(t.hosts))
	for h := range t.hosts {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

// Lookup returns the website a hostname belongs to.
func (t *Table) Lookup(host string) (Website, bool) {
	w, ok := t.hosts[host]
	return w, ok
}

// Classify identifies the website a URL belongs to. Matching is exact and
// case-sensitive on the URL's host (without port). Unparseable URLs and URLs
// without a host yield ErrUnknownWebsite.
func (t *Table) Classify(rawURL string) (Website, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrUnknownWebsite
	}
	host := u.Hostname()
	if host == "" {
		return "", ErrUnknownWebsite
	}
	w, ok := t.hosts[host]
	if !ok {
		return "", ErrUnknownWebsite
	}
	return w, nil
}

var defaultTable = sync.OnceValues(func() (*Table, error) {
	return LoadTable(bytes.NewReader(websitesYAML))
})

// Default returns the embedded hostname table. It is parsed on first use and
// shared afterwards.
func Default() (*Table, error) {
	return defaultTable()
}

// Classify identifies the website a URL belongs to using the embedded table.
func Classify(rawURL string) (Website, error) {
	t, err := Default()
	if err != nil {
		return "", err
	}
	return t.Classify(rawURL)
}
