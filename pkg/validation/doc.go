// Package validation checks a decoded puzzle against the structural and
// scenario-specific properties spec.md §8 requires.
//
// # Hard Constraints
//
// Hard constraints must be satisfied for a decoded puzzle to be
// considered valid:
//
//   - Unique Location: every character occupies exactly one room at
//     every timestep.
//   - Movement Legality: every consecutive room pair a character visits
//     is either identical or adjacent in the room graph; whether a stay
//     was permitted for that character is not checked.
//   - Scenario Consistency: each active scenario's decoded Priv facts
//     are consistent with the schedule that produced them (e.g. S4: every
//     occupancy-2 room is occupied by exactly the bomb duo).
//
// # Soft Properties
//
// DefaultValidator evaluates no soft property: SoftConstraintResults and
// Warnings stay empty. NewSoftResult and the soft section of Summary
// exist, but no built-in check uses them. Determinism (re-solving the same
// Config reproduces the same schedule) is covered by this package's tests,
// not by the validator.
//
// # Usage Example
//
//	validator := validation.NewValidator()
//	report, err := validator.Validate(ctx, enc, result)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if !report.Passed {
//	    log.Printf("Validation failed: %v", report.Errors)
//	}
package validation
