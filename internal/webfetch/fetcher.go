// Package webfetch retrieves a storefront's visible text for analysis. A
// small fixed set of likely paths is probed rather than crawling the whole
// site; most dropshipping stores keep their pitch on a handful of pages.
package webfetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/gocolly/colly/v2"
)

// candidatePaths are probed in order until enough pages respond.
var candidatePaths = []string{
	"/",
	"/about",
	"/collections",
	"/products",
	"/shop",
	"/pages/about",
	"/pages/about-us",
	"/faq",
	"/contact",
}

const (
	userAgent = "DropshipAI/1.0 (+analysis)"

	// maxTextLen caps the extracted text passed to the model.
	maxTextLen = 15000
)

var (
	// ErrInvalidURL indicates the input could not be parsed as a URL.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrNoContent indicates no candidate page responded with usable HTML.
	ErrNoContent = errors.New("failed to fetch website content")
)

// Fetcher probes candidate pages and extracts their combined visible text.
type Fetcher struct {
	timeout  time.Duration
	maxPages int
	logger   *slog.Logger
}

// NewFetcher creates a Fetcher. maxPages caps how many successful pages are
// collected before probing stops.
func NewFetcher(timeout time.Duration, maxPages int, logger *slog.Logger) *Fetcher {
	if timeout <= 0 {
		timeout = 12 * time.Second
	}
	if maxPages <= 0 {
		maxPages = 5
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fetcher{timeout: timeout, maxPages: maxPages, logger: logger}
}

// NormalizeURL applies an https scheme to bare hostnames and validates the
// result.
func NormalizeURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrInvalidURL
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "https://" + trimmed
	}
	parsed, err := url.Parse(trimmed)
	if err != nil || parsed.Host == "" {
		return nil, ErrInvalidURL
	}
	return parsed, nil
}

// SiteText fetches up to maxPages candidate pages from the site and returns
// their combined, stripped, truncated text. Individual page failures are
// skipped; only a site with zero reachable pages is an error.
func (f *Fetcher) SiteText(ctx context.Context, rawURL string) (string, error) {
	origin, err := NormalizeURL(rawURL)
	if err != nil {
		return "", err
	}

	c := colly.NewCollector(
		colly.UserAgent(userAgent),
		colly.IgnoreRobotsTxt(),
	)
	c.SetRequestTimeout(f.timeout)

	var snippets []string
	c.OnResponse(func(r *colly.Response) {
		if len(r.Body) > 0 {
			snippets = append(snippets, string(r.Body))
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		f.logger.Debug("candidate page fetch failed",
			"url", r.Request.URL.String(), "status", r.StatusCode, "error", err)
	})

	base := origin.Scheme + "://" + origin.Host
	for _, path := range candidatePaths {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if len(snippets) >= f.maxPages {
			break
		}
		// Visit errors (timeouts, non-2xx) already surface via OnError
		_ = c.Visit(base + path)
	}

	if len(snippets) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoContent, origin.Host)
	}

	f.logger.Info("website content fetched",
		"host", origin.Host, "pages", len(snippets))

	text := StripHTML(strings.Join(snippets, "\n\n"))
	return Truncate(text, maxTextLen), nil
}
