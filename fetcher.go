package marc

import "context"

// Fetcher retrieves raw HTML pages from the documentation authority.
// Used only by the offline scraper; the runtime lookup path performs
// no network I/O.
type Fetcher interface {
	// Fetch retrieves the page at url. Returns ENOTFOUND for HTTP 404
	// so callers can distinguish "no page for this field" from
	// transient failures. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-host rate limiting for scrape requests.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
