package validation

import (
	"context"
	"fmt"

	"github.com/kronologic/kronogen/pkg/decoder"
	"github.com/kronologic/kronogen/pkg/encoder"
)

// Validator checks a decoded puzzle's hard and soft properties.
type Validator interface {
	// Validate runs every hard and soft constraint against r (decoded
	// from enc) and returns a Report. Returns an error only if the
	// validation process itself fails, never for a constraint violation.
	Validate(ctx context.Context, enc *encoder.Encoded, r *decoder.Result) (*Report, error)
}

// DefaultValidator implements Validator with the structural and
// scenario-consistency checks in constraints.go.
type DefaultValidator struct{}

// NewValidator creates a validator with default checks.
func NewValidator() Validator {
	return &DefaultValidator{}
}

// Validate performs comprehensive validation of a decoded puzzle.
func (v *DefaultValidator) Validate(ctx context.Context, enc *encoder.Encoded, r *decoder.Result) (*Report, error) {
	if enc == nil {
		return nil, fmt.Errorf("encoded instance cannot be nil")
	}
	if r == nil {
		return nil, fmt.Errorf("decoded result cannot be nil")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	report := NewReport()

	for _, result := range []ConstraintResult{
		CheckUniqueLocation(enc, r),
		CheckMovementLegality(enc, r),
		CheckScenarioConsistency(enc, r),
	} {
		report.HardConstraintResults = append(report.HardConstraintResults, result)
		if !result.Satisfied {
			report.Errors = append(report.Errors, result.Details)
		}
	}

	report.Passed = len(report.Errors) == 0
	return report, nil
}
