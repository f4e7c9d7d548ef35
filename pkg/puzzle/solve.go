package puzzle

import (
	"context"
	"fmt"
	"time"

	"github.com/kronologic/kronogen/pkg/decoder"
	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/rng"
	"github.com/kronologic/kronogen/pkg/satsolver"
)

// Outcome is what Solver.Solve returns. On UNSAT or timeout, Result is
// nil and Status reports which.
type Outcome struct {
	Status  satsolver.Status
	Result  *decoder.Result
	Encoded *encoder.Encoded // the compiled instance, for downstream validation/export
}

// Solver is the main entry point for puzzle generation. Implementations
// must be deterministic: the same Config always produces the same
// Outcome.
type Solver interface {
	// Solve encodes cfg, runs the SAT solver, and decodes a satisfying
	// assignment into a Result. Returns an error only for a precondition
	// failure (spec.md §7 taxon 1) — an unsatisfiable or timed-out
	// instance is reported via Outcome.Status, not an error.
	Solve(ctx context.Context, cfg *Config) (*Outcome, error)
}

// DefaultSolver implements Solver using pkg/encoder, pkg/satsolver, and
// pkg/decoder directly.
type DefaultSolver struct{}

// NewSolver creates a solver with the default pipeline.
func NewSolver() Solver {
	return &DefaultSolver{}
}

// Solve runs the full encode/solve/decode pipeline.
func (s *DefaultSolver) Solve(ctx context.Context, cfg *Config) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	enc, err := encoder.Encode(cfg.toEncoderConfig())
	if err != nil {
		return nil, fmt.Errorf("encoding failed: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	timeout := cfg.SolveTimeout
	if timeout == 0 {
		timeout = satsolver.DefaultTimeout
	}
	solver := satsolver.NewSolver(enc.Pool.Count(), enc.CL.Clauses(), enc.Seed^rng.SolverStreamSalt, timeout)

	start := time.Now()
	res := solver.Solve()
	elapsed := time.Since(start)

	if res.Status != satsolver.StatusSAT {
		return &Outcome{Status: res.Status, Encoded: enc}, nil
	}

	result, err := decoder.Decode(enc, res, elapsed)
	if err != nil {
		return nil, fmt.Errorf("decoding failed: %w", err)
	}

	return &Outcome{Status: res.Status, Result: result, Encoded: enc}, nil
}
