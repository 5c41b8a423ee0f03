// Package score folds a finding list into the report summary, the weighted
// score and the letter grade. It is a pure function of its input and does
// no I/O.
package score

import (
	"math"

	"github.com/mathilda-val/shopaudit-lite/internal/model"
	"github.com/mathilda-val/shopaudit-lite/internal/severity"
)

// Summarize tallies findings per severity bucket.
func Summarize(findings []model.Finding) model.Summary {
	var sum model.Summary
	for _, f := range findings {
		switch f.Severity {
		case severity.Critical:
			sum.Critical++
		case severity.Warning:
			sum.Warnings++
		case severity.Passed:
			sum.Passed++
		case severity.Info:
			sum.Info++
		}
	}
	return sum
}

// Compute maps the tally to a 0-100 score. Info findings are diagnostic and
// excluded; passed findings weigh 1.0, warnings 0.4, criticals 0. The
// denominator deliberately varies with the page, since image checks may be
// skipped entirely.
func Compute(sum model.Summary) int {
	scorable := sum.Critical + sum.Warnings + sum.Passed
	if scorable < 1 {
		scorable = 1
	}
	raw := (float64(sum.Passed) + 0.4*float64(sum.Warnings)) / float64(scorable) * 100
	s := int(math.Round(raw))
	if s > 100 {
		s = 100
	}
	return s
}

// Grade maps a score to its letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B"
	case score >= 60:
		return "C"
	case score >= 50:
		return "D"
	default:
		return "F"
	}
}
