package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mathilda-val/shopaudit-lite/internal/model"
)

func sampleReport() model.AuditReport {
	title := "A Store"
	return model.AuditReport{
		URL:       "https://example.com",
		CreatedAt: time.Unix(1700000000, 0).UTC(),
		Score:     82,
		Grade:     "A",
		Checks: []model.Finding{
			{ID: "meta-title", Name: "Title Tag", Category: "meta", Severity: "passed", Message: "Title length is 40 characters"},
			{ID: "favicon", Name: "Favicon", Category: "technical", Severity: "warning", Message: "Page declares no favicon", Fix: "Link a favicon"},
		},
		Summary: model.Summary{Warnings: 1, Passed: 1},
		Meta:    model.PageMetadata{Title: &title, ResponseTimeMs: 120, HTMLSizeKB: 40},
	}
}

func TestWriteJSONCompatibilitySurface(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(sampleReport(), "json", &buf); err != nil {
		t.Fatal(err)
	}

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"url", "createdAt", "score", "grade", "checks", "summary", "meta"} {
		if _, ok := payload[key]; !ok {
			t.Fatalf("report JSON is missing %q", key)
		}
	}

	summary, ok := payload["summary"].(map[string]any)
	if !ok {
		t.Fatal("summary is not an object")
	}
	for _, key := range []string{"critical", "warnings", "passed", "info"} {
		if _, ok := summary[key]; !ok {
			t.Fatalf("summary JSON is missing %q", key)
		}
	}

	checks, ok := payload["checks"].([]any)
	if !ok || len(checks) != 2 {
		t.Fatalf("unexpected checks payload: %v", payload["checks"])
	}
	first := checks[0].(map[string]any)
	if first["id"] != "meta-title" || first["severity"] != "passed" {
		t.Fatalf("unexpected finding shape: %v", first)
	}
}

func TestWriteHumanIncludesScoreAndBadges(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(sampleReport(), "human", &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Score: 82/100 (A)") {
		t.Fatalf("score line missing:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] Favicon") || !strings.Contains(out, "[PASS] Title Tag") {
		t.Fatalf("severity badges missing:\n%s", out)
	}
	if !strings.Contains(out, "Fix: Link a favicon") {
		t.Fatalf("fix hint missing:\n%s", out)
	}
	if !strings.Contains(out, "critical=0 warnings=1 passed=1 info=0") {
		t.Fatalf("summary line missing:\n%s", out)
	}
}

func TestWriteRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(sampleReport(), "yaml", &buf); err == nil {
		t.Fatal("expected unsupported-format error")
	}
}
