// Package audit is the engine entry point: one URL in, one AuditReport out.
// Nothing escapes Run as an error; every failure mode is folded into the
// report as a finding.
package audit

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/mathilda-val/shopaudit-lite/internal/checks"
	"github.com/mathilda-val/shopaudit-lite/internal/fetch"
	"github.com/mathilda-val/shopaudit-lite/internal/htmldoc"
	"github.com/mathilda-val/shopaudit-lite/internal/model"
	"github.com/mathilda-val/shopaudit-lite/internal/score"
	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

// Options configure one audit. The zero value uses production defaults; tests
// inject a fetch client bound to a fake server and a fixed clock.
type Options struct {
	Client       *fetch.Client
	Timeout      time.Duration
	AuxTimeout   time.Duration
	MaxRedirects int
	UserAgent    string
	Now          func() time.Time
}

// NormalizeURL applies the input normalization contract: bare hosts get an
// https scheme prefixed.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	if !strings.Contains(raw, "://") {
		return "https://" + raw
	}
	return raw
}

// Run audits a single page and always returns a well-formed report.
func Run(ctx context.Context, rawURL string, opts Options) model.AuditReport {
	if opts.Now == nil {
		opts.Now = func() time.Time { return time.Now().UTC() }
	}
	client := opts.Client
	if client == nil {
		client = fetch.New(fetch.Options{
			Timeout:      opts.Timeout,
			AuxTimeout:   opts.AuxTimeout,
			MaxRedirects: opts.MaxRedirects,
			UserAgent:    opts.UserAgent,
		})
	}

	target := NormalizeURL(rawURL)

	parsed, err := url.Parse(target)
	if err != nil || parsed.Host == "" {
		return failureReport(target, opts.Now(), fmt.Errorf("invalid url %q", rawURL))
	}

	res, err := client.Page(ctx, target)
	if err != nil {
		return failureReport(target, opts.Now(), err)
	}

	doc, err := htmldoc.Parse(res.Body)
	if err != nil {
		return failureReport(target, opts.Now(), err)
	}

	meta := pageMetadata(doc, res)

	// Both auxiliary resources are prefetched concurrently; each degrades to
	// an unreachable result on its own, never failing the audit.
	origin := &url.URL{Scheme: res.FinalURL.Scheme, Host: res.FinalURL.Host}
	var robots, sitemap fetch.AuxResult
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		robots = client.Auxiliary(ctx, origin.String()+"/robots.txt")
	}()
	go func() {
		defer wg.Done()
		sitemap = client.Auxiliary(ctx, origin.String()+"/sitemap.xml")
	}()
	wg.Wait()

	in := &checks.Input{
		URL:     res.FinalURL,
		Doc:     doc,
		Meta:    meta,
		Robots:  robots,
		Sitemap: sitemap,
	}

	var findings []model.Finding
	for _, c := range checks.Catalog() {
		if f := c.Evaluate(in); f != nil {
			findings = append(findings, *f)
		}
	}

	return assemble(target, opts.Now(), findings, meta)
}

func assemble(target string, createdAt time.Time, findings []model.Finding, meta model.PageMetadata) model.AuditReport {
	sum := score.Summarize(findings)
	s := score.Compute(sum)
	return model.AuditReport{
		URL:       target,
		CreatedAt: createdAt,
		Score:     s,
		Grade:     score.Grade(s),
		Checks:    findings,
		Summary:   sum,
		Meta:      meta,
	}
}

func failureReport(target string, createdAt time.Time, err error) model.AuditReport {
	findings := []model.Finding{{
		ID:       "fetch-failure",
		Name:     "Page Fetch",
		Category: severity.Technical,
		Severity: severity.Critical,
		Message:  fmt.Sprintf("Could not retrieve the page: %v", err),
		Fix:      "Check that the URL is correct and the site is reachable",
	}}
	return assemble(target, createdAt, findings, model.PageMetadata{})
}

func pageMetadata(doc *htmldoc.Document, res *fetch.Result) model.PageMetadata {
	meta := model.PageMetadata{
		ResponseTimeMs:   res.Elapsed.Milliseconds(),
		HTMLSizeKB:       int(math.Round(float64(res.RawSize) / 1024)),
		PlatformDetected: detectPlatform(doc, res.Body),
	}
	if node, ok := doc.First("title"); ok {
		if t := node.Text(); t != "" {
			meta.Title = &t
		}
	}
	if node, ok := doc.First(`meta[name="description"]`); ok {
		if d := strings.TrimSpace(node.AttrOr("content", "")); d != "" {
			meta.Description = &d
		}
	}
	if node, ok := doc.First(`meta[property="og:image"]`); ok {
		if img := strings.TrimSpace(node.AttrOr("content", "")); img != "" {
			resolved := resolve(res.FinalURL, img)
			meta.SocialImage = &resolved
		}
	}
	iconSel := `link[rel="icon"], link[rel="shortcut icon"], link[rel="apple-touch-icon"]`
	if node, ok := doc.First(iconSel); ok {
		if href := strings.TrimSpace(node.AttrOr("href", "")); href != "" {
			resolved := resolve(res.FinalURL, href)
			meta.Favicon = &resolved
		}
	}
	return meta
}

// resolve makes a possibly relative reference absolute against the page URL.
func resolve(base *url.URL, ref string) string {
	parsed, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return base.ResolveReference(parsed).String()
}

// detectPlatform looks for Shopify storefront signatures: the asset CDN
// hostname or the checkout API meta tag.
func detectPlatform(doc *htmldoc.Document, body []byte) bool {
	if bytes.Contains(body, []byte("cdn.shopify.com")) {
		return true
	}
	if _, ok := doc.First(`meta[name="shopify-checkout-api-token"]`); ok {
		return true
	}
	return false
}
