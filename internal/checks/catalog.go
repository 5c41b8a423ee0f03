// Package checks holds the audit battery: independent page checks evaluated
// once per audit, each emitting at most one finding. The catalog order is
// the report order and must stay stable across runs.
package checks

import (
	"net/url"

	"github.com/mathilda-val/shopaudit-lite/internal/fetch"
	"github.com/mathilda-val/shopaudit-lite/internal/htmldoc"
	"github.com/mathilda-val/shopaudit-lite/internal/model"
)

// Input is the immutable view of one audited page shared by every check.
// Auxiliary results are prefetched by the orchestrator so no check performs
// its own network call.
type Input struct {
	URL     *url.URL
	Doc     *htmldoc.Document
	Meta    model.PageMetadata
	Robots  fetch.AuxResult
	Sitemap fetch.AuxResult
}

type result struct {
	severity string
	message  string
	details  []string
	fix      string
}

// Check is one battery entry. run returns nil when the check does not apply
// to the page (only the image checks use this).
type Check struct {
	ID       string
	Name     string
	Category string
	run      func(in *Input) *result
}

// Evaluate runs the check and stamps its identity onto the finding.
func (c Check) Evaluate(in *Input) *model.Finding {
	r := c.run(in)
	if r == nil {
		return nil
	}
	return &model.Finding{
		ID:       c.ID,
		Name:     c.Name,
		Category: c.Category,
		Severity: r.severity,
		Message:  r.message,
		Details:  r.details,
		Fix:      r.fix,
	}
}

// Catalog returns the full battery in emission order:
// meta, content, images, technical, social, performance.
func Catalog() []Check {
	return []Check{
		metaTitle,
		metaDescription,
		canonical,
		robotsMeta,
		h1Heading,
		headingHierarchy,
		wordCount,
		imageAlt,
		lazyLoading,
		httpsCheck,
		mobileViewport,
		favicon,
		htmlLang,
		structuredData,
		robotsTxt,
		sitemap,
		ogTitle,
		ogDescription,
		ogImage,
		twitterCard,
		responseTime,
		htmlSize,
	}
}

// truncate cuts s to at most max runes, appending an ellipsis when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
