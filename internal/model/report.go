package model

import "time"

// Finding is the result of a single check. Once emitted it is owned by the
// aggregator and never mutated.
type Finding struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Details  []string `json:"details,omitempty"`
	Fix      string   `json:"fix,omitempty"`
}

// PageMetadata describes the fetched page. Nullable fields stay nil when the
// main fetch fails or the page does not declare them.
type PageMetadata struct {
	Title            *string `json:"title"`
	Description      *string `json:"description"`
	SocialImage      *string `json:"socialImage"`
	Favicon          *string `json:"favicon"`
	ResponseTimeMs   int64   `json:"responseTimeMs"`
	HTMLSizeKB       int     `json:"htmlSizeKB"`
	PlatformDetected bool    `json:"platformDetected"`
}

// Summary tallies findings per severity. Derived from the check list, never
// set independently.
type Summary struct {
	Critical int `json:"critical"`
	Warnings int `json:"warnings"`
	Passed   int `json:"passed"`
	Info     int `json:"info"`
}

// AuditReport is the terminal artifact of one audit. The field names and
// nesting are a compatibility surface for UI and export collaborators.
type AuditReport struct {
	URL       string       `json:"url"`
	CreatedAt time.Time    `json:"createdAt"`
	Score     int          `json:"score"`
	Grade     string       `json:"grade"`
	Checks    []Finding    `json:"checks"`
	Summary   Summary      `json:"summary"`
	Meta      PageMetadata `json:"meta"`
}
