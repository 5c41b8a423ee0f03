package checks

import (
	"strings"

	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

func metaProperty(in *Input, property string) string {
	if node, ok := in.Doc.First(`meta[property="` + property + `"]`); ok {
		return strings.TrimSpace(node.AttrOr("content", ""))
	}
	return ""
}

var ogTitle = Check{
	ID:       "og-title",
	Name:     "Open Graph Title",
	Category: severity.Social,
	run: func(in *Input) *result {
		if metaProperty(in, "og:title") == "" {
			return &result{
				severity: severity.Warning,
				message:  "Page has no og:title tag",
				fix:      "Add Open Graph tags so shared links render a proper preview",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  "og:title is present",
		}
	},
}

var ogDescription = Check{
	ID:       "og-description",
	Name:     "Open Graph Description",
	Category: severity.Social,
	run: func(in *Input) *result {
		if metaProperty(in, "og:description") == "" {
			return &result{
				severity: severity.Warning,
				message:  "Page has no og:description tag",
				fix:      "Add an og:description for link previews",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  "og:description is present",
		}
	},
}

var ogImage = Check{
	ID:       "og-image",
	Name:     "Open Graph Image",
	Category: severity.Social,
	run: func(in *Input) *result {
		if metaProperty(in, "og:image") == "" {
			return &result{
				severity: severity.Warning,
				message:  "Page has no og:image tag",
				fix:      "Add an og:image so shared links show a preview image",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  "og:image is present",
		}
	},
}

var twitterCard = Check{
	ID:       "twitter-card",
	Name:     "Twitter Card",
	Category: severity.Social,
	run: func(in *Input) *result {
		if node, ok := in.Doc.First(`meta[name="twitter:card"]`); ok {
			if strings.TrimSpace(node.AttrOr("content", "")) != "" {
				return &result{
					severity: severity.Passed,
					message:  "Twitter card is declared",
				}
			}
		}
		// Lower priority than Open Graph, so absence is informational only.
		return &result{
			severity: severity.Info,
			message:  "Page has no Twitter card tag",
		}
	},
}
