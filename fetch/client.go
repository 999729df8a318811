// Package fetch retrieves pages as parsed documents and drives
// multi-page traversals.
package fetch

import (
	"compress/flate"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"
)

// ErrDomainNotAllowed is returned when a URL falls outside the
// configured allowed domains for a source.
var ErrDomainNotAllowed = errors.New("domain not allowed")

const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64; rv:134.0) Gecko/20100101 Firefox/134.0"

// Fetcher retrieves one URL as a parsed document. Satisfied by *Client
// and by test stubs.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// Renderer retrieves one URL after client-side script execution,
// optionally waiting for a selector to appear. Satisfied by the
// browser pool.
type Renderer interface {
	FetchRendered(ctx context.Context, pageURL, waitSelector string) (string, error)
}

// Client fetches pages over plain HTTP with browser-like headers and
// decodes gzip, deflate, brotli and zstd response bodies.
type Client struct {
	httpClient     *http.Client
	userAgent      string
	allowedDomains []string
	log            zerolog.Logger
}

// NewClient creates a fetch client restricted to the given domains
// (and their subdomains). An empty allow-list permits any domain.
func NewClient(allowedDomains []string, logger zerolog.Logger) *Client {
	return &Client{
		httpClient:     &http.Client{Timeout: 30 * time.Second},
		userAgent:      defaultUserAgent,
		allowedDomains: allowedDomains,
		log:            logger,
	}
}

// Fetch retrieves pageURL and parses the body into a document.
func (c *Client) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if !c.Allowed(pageURL) {
		return nil, fmt.Errorf("%s: %w", pageURL, ErrDomainNotAllowed)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Accept-Encoding", "gzip, deflate, br, zstd")
	req.Header.Set("Connection", "keep-alive")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	reader, err := decodeBody(resp)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	doc, err := goquery.NewDocumentFromReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	c.log.Debug().Str("url", pageURL).Msg("fetched page")
	return doc, nil
}

func decodeBody(resp *http.Response) (io.ReadCloser, error) {
	switch resp.Header.Get("Content-Encoding") {
	case "gzip":
		reader, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		return reader, nil
	case "deflate":
		return flate.NewReader(resp.Body), nil
	case "br":
		return io.NopCloser(brotli.NewReader(resp.Body)), nil
	case "zstd":
		reader, err := zstd.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to create zstd reader: %w", err)
		}
		return reader.IOReadCloser(), nil
	default:
		return resp.Body, nil
	}
}

// Allowed reports whether pageURL's host is within the allow-list. A
// host matches when it equals an allowed domain or is a subdomain of
// one.
func (c *Client) Allowed(pageURL string) bool {
	if len(c.allowedDomains) == 0 {
		return true
	}
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	for _, domain := range c.allowedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// ResolveRef resolves href (possibly relative) against the page it was
// found on.
func ResolveRef(base, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	refURL, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(refURL).String()
}
