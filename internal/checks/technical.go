package checks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mathilda-val/shopaudit-lite/internal/htmldoc"
	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

var httpsCheck = Check{
	ID:       "https",
	Name:     "HTTPS",
	Category: severity.Technical,
	run: func(in *Input) *result {
		if in.URL == nil || in.URL.Scheme != "https" {
			return &result{
				severity: severity.Critical,
				message:  "Page is not served over HTTPS",
				fix:      "Serve the site over TLS and redirect HTTP traffic",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  "Page is served over HTTPS",
		}
	},
}

var mobileViewport = Check{
	ID:       "mobile-viewport",
	Name:     "Mobile Viewport",
	Category: severity.Technical,
	run: func(in *Input) *result {
		if _, ok := in.Doc.First(`meta[name="viewport"]`); !ok {
			return &result{
				severity: severity.Critical,
				message:  "Page has no viewport meta tag",
				fix:      "Add <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  "Viewport meta tag is present",
		}
	},
}

var favicon = Check{
	ID:       "favicon",
	Name:     "Favicon",
	Category: severity.Technical,
	run: func(in *Input) *result {
		sel := `link[rel="icon"], link[rel="shortcut icon"], link[rel="apple-touch-icon"]`
		if _, ok := in.Doc.First(sel); !ok {
			return &result{
				severity: severity.Warning,
				message:  "Page declares no favicon",
				fix:      "Link a favicon so the page is recognizable in tabs and results",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  "Favicon is declared",
		}
	},
}

var htmlLang = Check{
	ID:       "html-lang",
	Name:     "Language Attribute",
	Category: severity.Technical,
	run: func(in *Input) *result {
		if node, ok := in.Doc.First("html"); ok {
			if lang := strings.TrimSpace(node.AttrOr("lang", "")); lang != "" {
				return &result{
					severity: severity.Passed,
					message:  fmt.Sprintf("Document language is %q", lang),
				}
			}
		}
		return &result{
			severity: severity.Warning,
			message:  "The <html> element has no lang attribute",
			fix:      "Declare the content language, e.g. <html lang=\"en\">",
		}
	},
}

var structuredData = Check{
	ID:       "structured-data",
	Name:     "Structured Data",
	Category: severity.Technical,
	run: func(in *Input) *result {
		var types []string
		blocks := 0
		in.Doc.Each(`script[type="application/ld+json"]`, func(i int, n htmldoc.Node) {
			blocks++
			// Individual blocks with broken JSON are reported without a
			// type; they never change the check's severity.
			for _, t := range jsonLDTypes(n.Text()) {
				types = append(types, fmt.Sprintf("Block %d: %s", blocks, t))
			}
		})
		if blocks == 0 {
			return &result{
				severity: severity.Warning,
				message:  "Page has no JSON-LD structured data",
				fix:      "Add schema.org markup for rich search results",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  fmt.Sprintf("Found %d JSON-LD block(s)", blocks),
			details:  types,
		}
	},
}

// jsonLDTypes extracts @type declarations from one JSON-LD block,
// best-effort. Both single objects and top-level arrays occur in the wild.
func jsonLDTypes(raw string) []string {
	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil
	}
	var types []string
	var visit func(v interface{})
	visit = func(v interface{}) {
		switch t := v.(type) {
		case map[string]interface{}:
			switch declared := t["@type"].(type) {
			case string:
				types = append(types, declared)
			case []interface{}:
				for _, d := range declared {
					if s, ok := d.(string); ok {
						types = append(types, s)
					}
				}
			}
		case []interface{}:
			for _, item := range t {
				visit(item)
			}
		}
	}
	visit(decoded)
	return types
}

var robotsTxt = Check{
	ID:       "robots-txt",
	Name:     "robots.txt",
	Category: severity.Technical,
	run: func(in *Input) *result {
		if !in.Robots.Reachable {
			return &result{
				severity: severity.Info,
				message:  "robots.txt could not be retrieved",
			}
		}
		if in.Robots.StatusCode == 200 && strings.Contains(strings.ToLower(in.Robots.Body), "user-agent") {
			return &result{
				severity: severity.Passed,
				message:  "robots.txt is present and well formed",
			}
		}
		return &result{
			severity: severity.Warning,
			message:  "robots.txt is missing or has no user-agent directive",
			fix:      "Serve a valid robots.txt at the site root",
		}
	},
}

var sitemap = Check{
	ID:       "sitemap",
	Name:     "XML Sitemap",
	Category: severity.Technical,
	run: func(in *Input) *result {
		if !in.Sitemap.Reachable {
			return &result{
				severity: severity.Info,
				message:  "sitemap.xml could not be retrieved",
			}
		}
		body := in.Sitemap.Body
		if in.Sitemap.StatusCode == 200 &&
			(strings.Contains(body, "<urlset") || strings.Contains(body, "<sitemapindex")) {
			return &result{
				severity: severity.Passed,
				message:  "sitemap.xml is present",
			}
		}
		return &result{
			severity: severity.Warning,
			message:  "No XML sitemap found at /sitemap.xml",
			fix:      "Publish a sitemap and reference it from robots.txt",
		}
	},
}
