package validation

import (
	"fmt"
	"strings"
)

// ConstraintResult is the outcome of checking a single constraint.
// Hard constraints are pass/fail (Score is 1.0 or 0.0); soft constraints
// carry a continuous Score in [0, 1].
type ConstraintResult struct {
	Kind      string
	Severity  string // "hard" or "soft"
	Satisfied bool
	Score     float64
	Details   string
}

// Report collects every constraint result checked against one decoded
// puzzle.
type Report struct {
	Passed                bool
	HardConstraintResults []ConstraintResult
	SoftConstraintResults []ConstraintResult
	Errors                []string
	Warnings              []string
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Passed: true}
}

// NewHardResult creates a result for a hard (pass/fail) constraint.
func NewHardResult(kind string, satisfied bool, details string) ConstraintResult {
	score := 0.0
	if satisfied {
		score = 1.0
	}
	return ConstraintResult{
		Kind:      kind,
		Severity:  "hard",
		Satisfied: satisfied,
		Score:     score,
		Details:   details,
	}
}

// NewSoftResult creates a result for a soft (scored) constraint. A
// result is considered satisfied when score > 0.5.
func NewSoftResult(kind string, score float64, details string) ConstraintResult {
	return ConstraintResult{
		Kind:      kind,
		Severity:  "soft",
		Satisfied: score > 0.5,
		Score:     score,
		Details:   details,
	}
}

// Summary returns a human-readable summary of the validation report.
func Summary(report *Report) string {
	var b strings.Builder

	b.WriteString("=== Validation Report ===\n\n")
	if report.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}

	b.WriteString("\n=== Hard Constraints ===\n")
	passed := 0
	for _, r := range report.HardConstraintResults {
		if r.Satisfied {
			passed++
		}
	}
	b.WriteString(fmt.Sprintf("Passed: %d/%d\n", passed, len(report.HardConstraintResults)))
	for i, r := range report.HardConstraintResults {
		status := "PASS"
		if !r.Satisfied {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, status, r.Kind, r.Details))
	}

	b.WriteString("\n=== Soft Constraints ===\n")
	if len(report.SoftConstraintResults) == 0 {
		b.WriteString("None evaluated\n")
	} else {
		for i, r := range report.SoftConstraintResults {
			b.WriteString(fmt.Sprintf("  %d. %s (score: %.2f): %s\n", i+1, r.Kind, r.Score, r.Details))
		}
	}

	if len(report.Errors) > 0 {
		b.WriteString("\n=== Errors ===\n")
		for i, err := range report.Errors {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err))
		}
	}
	if len(report.Warnings) > 0 {
		b.WriteString("\n=== Warnings ===\n")
		for i, w := range report.Warnings {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, w))
		}
	}

	return b.String()
}

// HasErrors reports whether the report contains any hard constraint failures.
func HasErrors(report *Report) bool {
	return len(report.Errors) > 0
}

// HasWarnings reports whether the report contains any soft constraint warnings.
func HasWarnings(report *Report) bool {
	return len(report.Warnings) > 0
}

// FailedConstraints returns every failed hard constraint result.
func FailedConstraints(report *Report) []ConstraintResult {
	var failed []ConstraintResult
	for _, r := range report.HardConstraintResults {
		if !r.Satisfied {
			failed = append(failed, r)
		}
	}
	return failed
}
