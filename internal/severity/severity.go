package severity

// The four severity buckets a check can emit. Info findings are diagnostic
// and excluded from scoring.
const (
	Critical = "critical"
	Warning  = "warning"
	Passed   = "passed"
	Info     = "info"
)

var levels = map[string]struct{}{
	Critical: {}, Warning: {}, Passed: {}, Info: {},
}

// The six finding categories, in battery emission order.
const (
	Meta        = "meta"
	Content     = "content"
	Images      = "images"
	Technical   = "technical"
	Social      = "social"
	Performance = "performance"
)

var categories = map[string]struct{}{
	Meta: {}, Content: {}, Images: {}, Technical: {}, Social: {}, Performance: {},
}

// Valid reports whether level is one of the fixed severities.
func Valid(level string) bool {
	_, ok := levels[level]
	return ok
}

// ValidCategory reports whether category is one of the fixed categories.
func ValidCategory(category string) bool {
	_, ok := categories[category]
	return ok
}
