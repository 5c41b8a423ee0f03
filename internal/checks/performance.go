package checks

import (
	"fmt"

	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

var responseTime = Check{
	ID:       "response-time",
	Name:     "Response Time",
	Category: severity.Performance,
	run: func(in *Input) *result {
		ms := in.Meta.ResponseTimeMs
		switch {
		case ms > 3000:
			return &result{
				severity: severity.Critical,
				message:  fmt.Sprintf("Page responded in %d ms, above the 3000 ms limit", ms),
				fix:      "Investigate server response time; slow pages hurt ranking and conversion",
			}
		case ms > 1500:
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("Page responded in %d ms, above the 1500 ms target", ms),
				fix:      "Reduce server response time with caching or a CDN",
			}
		default:
			return &result{
				severity: severity.Passed,
				message:  fmt.Sprintf("Page responded in %d ms", ms),
			}
		}
	},
}

var htmlSize = Check{
	ID:       "html-size",
	Name:     "HTML Size",
	Category: severity.Performance,
	run: func(in *Input) *result {
		kb := in.Meta.HTMLSizeKB
		if kb > 500 {
			return &result{
				severity: severity.Warning,
				message:  fmt.Sprintf("HTML payload is %d KB, above the 500 KB threshold", kb),
				fix:      "Trim inline scripts, styles and markup bloat",
			}
		}
		return &result{
			severity: severity.Passed,
			message:  fmt.Sprintf("HTML payload is %d KB", kb),
		}
	},
}
