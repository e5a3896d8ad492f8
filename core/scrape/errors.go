// Package scrape — error taxonomy.
// Every failure of the extractor is distinguishable with errors.Is or
// errors.As, and Kind maps any of them to a stable telemetry label.
package scrape

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/recipepipe/core/schema"
	"github.com/gaurav-prasanna/recipepipe/core/website"
)

var (
	// ErrUnknownWebsite is returned when the URL's host is not a known website.
	ErrUnknownWebsite = website.ErrUnknownWebsite

	// ErrLdJSONNotFound is returned when the page has no JSON-LD script blocks.
	ErrLdJSONNotFound = errors.New("no JSON-LD found in page")

	// ErrDomainNotImplemented is returned when the page has JSON-LD but none of
	// it yields a recipe. The last candidate's error is wrapped alongside.
	ErrDomainNotImplemented = errors.New("no recipe in the page's structured data")
)

// TransportError wraps a fetcher failure.
type TransportError struct {
	Website website.Website
	URL     string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching %s from %s: %v", e.URL, e.Website, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SelectorError reports that the HTML could not be parsed at all.
type SelectorError struct {
	Err error
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("selecting JSON-LD: %v", e.Err)
}

func (e *SelectorError) Unwrap() error { return e.Err }

// Telemetry labels returned by Kind.
const (
	KindUnknownWebsite       = "unknown_website"
	KindTransport            = "transport"
	KindLdJSONNotFound       = "ld_json_not_found"
	KindDomainNotImplemented = "domain_not_implemented"
	KindSelector             = "selector"
	KindDeserializeFailed    = "deserialize_failed"
	KindCanceled             = "canceled"
	KindInternal             = "internal"
)

// Kind returns a stable label for err, or "" when err is nil.
func Kind(err error) string {
	var (
		transport *TransportError
		selector  *SelectorError
		decode    *schema.DecodeError
	)
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnknownWebsite):
		return KindUnknownWebsite
	case errors.As(err, &transport):
		return KindTransport
	case errors.Is(err, ErrLdJSONNotFound):
		return KindLdJSONNotFound
	case errors.Is(err, ErrDomainNotImplemented):
		return KindDomainNotImplemented
	case errors.As(err, &selector):
		return KindSelector
	case errors.As(err, &decode):
		return KindDeserializeFailed
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindInternal
	}
}
