package checks

import (
	"fmt"
	"strings"

	"github.com/mathilda-val/shopaudit-lite/internal/htmldoc"
	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

var h1Heading = Check{
	ID:       "h1-heading",
	Name:     "H1 Heading",
	Category: severity.Content,
	run: func(in *Input) *result {
		var texts []string
		in.Doc.Each("h1", func(i int, n htmldoc.Node) {
			texts = append(texts, truncate(n.Text(), 80))
		})
		switch len(texts) {
		case 0:
			return &result{
				severity: severity.Critical,
				message:  "Page has no H1 heading",
				fix:      "Add exactly one H1 describing the page topic",
			}
		case 1:
			return &result{
				severity: severity.Passed,
				message:  "Page has exactly one H1 heading",
				details:  texts,
			}
		default:
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("Page has %d H1 headings, expected exactly one", len(texts)),
				details:  texts,
				fix:      "Demote extra H1s to H2 or below",
			}
		}
	},
}

var headingHierarchy = Check{
	ID:       "heading-hierarchy",
	Name:     "Heading Hierarchy",
	Category: severity.Content,
	run: func(in *Input) *result {
		var levels []int
		in.Doc.Each("h1, h2, h3, h4, h5, h6", func(i int, n htmldoc.Node) {
			tag := n.Tag()
			if len(tag) == 2 && tag[0] == 'h' {
				levels = append(levels, int(tag[1]-'0'))
			}
		})
		if len(levels) == 0 {
			return &result{
				severity: severity.Warning,
				message:  "Page has no headings at all",
				fix:      "Structure the content with H1-H6 headings",
			}
		}
		for i := 1; i < len(levels); i++ {
			if levels[i]-levels[i-1] > 1 {
				return &result{
					severity: severity.Warning,
					message:  fmt.Sprintf("Heading level jumps from H%d to H%d", levels[i-1], levels[i]),
					details:  []string{formatLevels(levels)},
					fix:      "Keep heading levels contiguous, e.g. H2 before H3",
				}
			}
		}
		return &result{
			severity: severity.Passed,
			message:  fmt.Sprintf("Heading hierarchy is contiguous across %d headings", len(levels)),
		}
	},
}

// formatLevels renders the first 10 heading levels as a readable sequence.
func formatLevels(levels []int) string {
	if len(levels) > 10 {
		levels = levels[:10]
	}
	parts := make([]string, len(levels))
	for i, l := range levels {
		parts[i] = fmt.Sprintf("H%d", l)
	}
	return strings.Join(parts, " > ")
}

var wordCount = Check{
	ID:       "word-count",
	Name:     "Word Count",
	Category: severity.Content,
	run: func(in *Input) *result {
		words := strings.Fields(in.Doc.VisibleText())
		if len(words) < 300 {
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("Page body has only %d words, recommended at least 300", len(words)),
				fix:      "Add substantive content; thin pages rank poorly",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  fmt.Sprintf("Page body has %d words", len(words)),
		}
	},
}
