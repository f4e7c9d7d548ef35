package validation

import (
	"context"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/kronologic/kronogen/pkg/decoder"
	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/rng"
	"github.com/kronologic/kronogen/pkg/satsolver"
)

func fourRoomConfig(seed uint64, scenarios encoder.ScenarioFlags) encoder.Config {
	return encoder.Config{
		Rooms:     []string{"A", "B", "C", "D"},
		Edges:     [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
		Chars:     []string{"W", "X", "Y", "Z"},
		T:         6,
		AllowStay: true,
		Seed:      &seed,
		Scenarios: scenarios,
	}
}

func solveAndDecode(t *testing.T, cfg encoder.Config) (*encoder.Encoded, *decoder.Result) {
	t.Helper()
	enc, err := encoder.Encode(cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := satsolver.NewSolver(enc.Pool.Count(), enc.CL.Clauses(), enc.Seed^rng.SolverStreamSalt, 0)
	res := s.Solve()
	if res.Status != satsolver.StatusSAT {
		t.Fatalf("status = %v, want SAT", res.Status)
	}
	result, err := decoder.Decode(enc, res, time.Millisecond)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return enc, result
}

func TestValidate_PlainMovementSatisfiesHardConstraints(t *testing.T) {
	enc, result := solveAndDecode(t, fourRoomConfig(1, encoder.ScenarioFlags{}))
	report, err := NewValidator().Validate(context.Background(), enc, result)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !report.Passed {
		t.Fatalf("expected report to pass, errors: %v", report.Errors)
	}
}

func TestValidate_ScenarioCombinationsSatisfyHardConstraints(t *testing.T) {
	combos := []encoder.ScenarioFlags{
		{S1: true},
		{S2: true},
		{S4: true},
		{S7: true},
		{S10: true},
		{S2: true, S5: true}, // S6
	}
	for i, flags := range combos {
		enc, result := solveAndDecode(t, fourRoomConfig(uint64(i+1), flags))
		report, err := NewValidator().Validate(context.Background(), enc, result)
		if err != nil {
			t.Fatalf("combo %d: Validate: %v", i, err)
		}
		if !report.Passed {
			t.Fatalf("combo %d: expected pass, errors: %v", i, report.Errors)
		}
	}
}

// TestProperty_MovementIsAlwaysLegal generates random seeds and checks
// that CheckMovementLegality always passes for a satisfiable plain
// movement instance, regardless of which seed drove the encode/solve.
func TestProperty_MovementIsAlwaysLegal(t *testing.T) {
	rapid.Check(t, func(tt *rapid.T) {
		seed := rapid.Uint64().Draw(tt, "seed")
		enc, result := solveAndDecode(t, fourRoomConfig(seed, encoder.ScenarioFlags{}))
		if res := CheckMovementLegality(enc, result); !res.Satisfied {
			tt.Fatalf("movement illegal for seed %d: %s", seed, res.Details)
		}
		if res := CheckUniqueLocation(enc, result); !res.Satisfied {
			tt.Fatalf("unique-location violated for seed %d: %s", seed, res.Details)
		}
	})
}

func TestSolverDeterminism_SameSeedProducesSameSchedule(t *testing.T) {
	cfg := fourRoomConfig(99, encoder.ScenarioFlags{S2: true})
	_, r1 := solveAndDecode(t, cfg)
	_, r2 := solveAndDecode(t, cfg)

	for c, sched1 := range r1.Schedule {
		sched2 := r2.Schedule[c]
		for i := range sched1 {
			if sched1[i] != sched2[i] {
				t.Fatalf("%s: schedule diverged at t=%d: %s vs %s", c, i, sched1[i], sched2[i])
			}
		}
	}
}
