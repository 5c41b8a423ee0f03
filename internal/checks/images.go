package checks

import (
	"fmt"
	"strings"

	"github.com/mathilda-val/shopaudit-lite/internal/htmldoc"
	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

const maxListedImages = 5

var imageAlt = Check{
	ID:       "image-alt",
	Name:     "Image Alt Text",
	Category: severity.Images,
	run: func(in *Input) *result {
		total := 0
		var missing []string
		in.Doc.Each("img", func(i int, n htmldoc.Node) {
			total++
			if alt, ok := n.Attr("alt"); !ok || strings.TrimSpace(alt) == "" {
				src := strings.TrimSpace(n.AttrOr("src", ""))
				if src == "" {
					src = "(no src)"
				}
				missing = append(missing, truncate(src, 60))
			}
		})
		if total == 0 {
			return &result{
				severity: severity.Info,
				message:  "Page has no images",
			}
		}
		if len(missing) == 0 {
			return &result{
				severity: severity.Passed,
				message:  fmt.Sprintf("All %d images have alt text", total),
			}
		}
		sev := severity.Warning
		if len(missing) > maxListedImages {
			sev = severity.Critical
		}
		listed := missing
		if len(listed) > maxListedImages {
			listed = listed[:maxListedImages]
		}
		return &result{
			severity: sev,
			message:  fmt.Sprintf("%d of %d images are missing alt text", len(missing), total),
			details:  listed,
			fix:      "Describe each image in its alt attribute",
		}
	},
}

var lazyLoading = Check{
	ID:       "lazy-loading",
	Name:     "Lazy Loading",
	Category: severity.Images,
	run: func(in *Input) *result {
		total := 0
		lazy := 0
		in.Doc.Each("img", func(i int, n htmldoc.Node) {
			total++
			if strings.EqualFold(strings.TrimSpace(n.AttrOr("loading", "")), "lazy") {
				lazy++
			}
		})
		// Not applicable without images; the check emits nothing at all.
		if total == 0 {
			return nil
		}
		if total > maxListedImages && lazy == 0 {
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("None of the %d images use lazy loading", total),
				fix:      "Add loading=\"lazy\" to below-the-fold images",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  fmt.Sprintf("%d of %d images use lazy loading", lazy, total),
		}
	},
}
