package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/net/html/charset"
)

const defaultUserAgent = "Mozilla/5.0 (compatible; ShopAuditBot/1.0; +https://example.com/bot)"

// ErrTooManyRedirects is returned when the target keeps redirecting past the
// configured cap.
var ErrTooManyRedirects = errors.New("too many redirects")

// Options tune the fetch clients. Zero values fall back to defaults suitable
// for interactive audits.
type Options struct {
	Timeout      time.Duration // main document fetch
	AuxTimeout   time.Duration // robots.txt / sitemap.xml fetch
	MaxRedirects int
	MaxBodySize  int64
	UserAgent    string
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.AuxTimeout <= 0 {
		o.AuxTimeout = 5 * time.Second
	}
	if o.MaxRedirects <= 0 {
		o.MaxRedirects = 5
	}
	if o.MaxBodySize <= 0 {
		o.MaxBodySize = 10 * 1024 * 1024 // 10 MB
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUserAgent
	}
	return o
}

// Client fetches the audited page and its auxiliary resources. Safe for
// concurrent use.
type Client struct {
	main *http.Client
	aux  *http.Client
	opts Options
}

func New(opts Options) *Client {
	opts = opts.withDefaults()

	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: opts.Timeout,
		MaxIdleConns:          10,
		IdleConnTimeout:       30 * time.Second,
	}

	redirectCap := func(req *http.Request, via []*http.Request) error {
		if len(via) >= opts.MaxRedirects {
			return ErrTooManyRedirects
		}
		return nil
	}

	return &Client{
		main: &http.Client{
			Transport:     transport,
			Timeout:       opts.Timeout,
			CheckRedirect: redirectCap,
		},
		aux: &http.Client{
			Transport:     transport,
			Timeout:       opts.AuxTimeout,
			CheckRedirect: redirectCap,
		},
		opts: opts,
	}
}

// Result is the outcome of a successful main-document fetch. Body is decoded
// to UTF-8 using the response charset; RawSize is the payload size on the
// wire before decoding.
type Result struct {
	FinalURL   *url.URL
	StatusCode int
	Body       []byte
	RawSize    int64
	Elapsed    time.Duration
}

// Page retrieves the target document. Any failure (DNS, connect, timeout,
// redirect cap, non-2xx status, unreadable body) is returned as an error; a
// single attempt is made, no retries.
func (c *Client) Page(ctx context.Context, rawURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	start := time.Now()
	resp, err := c.main.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	elapsed := time.Since(start)

	body := raw
	if decoder, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type")); err == nil {
		if decoded, err := io.ReadAll(decoder); err == nil {
			body = decoded
		}
	}

	return &Result{
		FinalURL:   resp.Request.URL,
		StatusCode: resp.StatusCode,
		Body:       body,
		RawSize:    int64(len(raw)),
		Elapsed:    elapsed,
	}, nil
}

// AuxResult is the explicit outcome of a best-effort auxiliary fetch.
// Reachable is false when the resource could not be retrieved at all
// (timeout, DNS, connection error); callers map that to an informational
// finding, never to a failure.
type AuxResult struct {
	Reachable  bool
	StatusCode int
	Body       string
}

// Auxiliary retrieves a small origin resource such as /robots.txt with the
// short timeout. It never returns an error: unreachability is a state, not a
// failure.
func (c *Client) Auxiliary(ctx context.Context, rawURL string) AuxResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return AuxResult{}
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.aux.Do(req)
	if err != nil {
		return AuxResult{}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		// A body cut off mid-read cannot be classified; report the
		// resource as unretrieved rather than invalid.
		return AuxResult{}
	}
	return AuxResult{Reachable: true, StatusCode: resp.StatusCode, Body: string(body)}
}
