package checks

import (
	"fmt"
	"strings"

	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

var metaTitle = Check{
	ID:       "meta-title",
	Name:     "Title Tag",
	Category: severity.Meta,
	run: func(in *Input) *result {
		node, ok := in.Doc.First("title")
		title := ""
		if ok {
			title = node.Text()
		}
		if title == "" {
			return &result{
				severity: severity.Critical,
				message:  "Page has no <title> tag",
				fix:      "Add a descriptive title between 30 and 60 characters",
			}
		}
		length := len([]rune(title))
		switch {
		case length < 30:
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("Title is too short (%d characters, recommended 30-60)", length),
				details:  []string{truncate(title, 80)},
				fix:      "Expand the title to describe the page more fully",
			}
		case length > 60:
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("Title is %d characters and may be truncated in search results", length),
				details:  []string{truncate(title, 80)},
				fix:      "Shorten the title to 60 characters or fewer",
			}
		default:
			return &result{
				severity: severity.Passed,
				message:  fmt.Sprintf("Title length is %d characters", length),
				details:  []string{truncate(title, 80)},
			}
		}
	},
}

var metaDescription = Check{
	ID:       "meta-description",
	Name:     "Meta Description",
	Category: severity.Meta,
	run: func(in *Input) *result {
		desc := ""
		if node, ok := in.Doc.First(`meta[name="description"]`); ok {
			desc = strings.TrimSpace(node.AttrOr("content", ""))
		}
		if desc == "" {
			return &result{
				severity: severity.Critical,
				message:  "Page has no meta description",
				fix:      "Add a meta description between 120 and 160 characters",
			}
		}
		length := len([]rune(desc))
		switch {
		case length < 120:
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("Meta description is too short (%d characters, recommended 120-160)", length),
				details:  []string{truncate(desc, 160)},
				fix:      "Expand the description to use the available snippet space",
			}
		case length > 160:
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("Meta description is %d characters and may be truncated", length),
				details:  []string{truncate(desc, 160)},
				fix:      "Shorten the description to 160 characters or fewer",
			}
		default:
			return &result{
				severity: severity.Passed,
				message:  fmt.Sprintf("Meta description length is %d characters", length),
			}
		}
	},
}

var canonical = Check{
	ID:       "canonical",
	Name:     "Canonical Link",
	Category: severity.Meta,
	run: func(in *Input) *result {
		if node, ok := in.Doc.First(`link[rel="canonical"]`); ok {
			if href := strings.TrimSpace(node.AttrOr("href", "")); href != "" {
				return &result{
					severity: severity.Passed,
					message:  "Canonical link is declared",
					details:  []string{truncate(href, 100)},
				}
			}
		}
		return &result{
			severity: severity.Warning,
			message:  "Page has no canonical link",
			fix:      "Add <link rel=\"canonical\"> to avoid duplicate-content dilution",
		}
	},
}

var robotsMeta = Check{
	ID:       "robots-meta",
	Name:     "Robots Meta Tag",
	Category: severity.Meta,
	run: func(in *Input) *result {
		content := ""
		if node, ok := in.Doc.First(`meta[name="robots"]`); ok {
			content = node.AttrOr("content", "")
		}
		lower := strings.ToLower(content)
		if strings.Contains(lower, "noindex") || strings.Contains(lower, "nofollow") {
			return &result{
				severity: severity.Warning,
				message:  "Robots meta tag blocks indexing or link following",
				details:  []string{content},
				fix:      "Remove noindex/nofollow unless the page should stay out of search results",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  "No blocking robots directives",
		}
	},
}
