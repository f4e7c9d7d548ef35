package puzzle

import (
	"context"
	"testing"

	"github.com/kronologic/kronogen/pkg/satsolver"
)

func TestSolve_PhantomScenarioEndToEnd(t *testing.T) {
	cfg, err := LoadConfigFromBytes(validYAML())
	if err != nil {
		t.Fatalf("LoadConfigFromBytes: %v", err)
	}

	outcome, err := NewSolver().Solve(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if outcome.Status != satsolver.StatusSAT {
		t.Fatalf("status = %v, want SAT", outcome.Status)
	}
	if outcome.Result == nil {
		t.Fatal("expected a non-nil decoded result")
	}
	if outcome.Result.Priv.Phantom == nil {
		t.Fatal("expected a decoded phantom")
	}

	text := RenderText(outcome.Result)
	if text == "" {
		t.Fatal("RenderText returned empty string")
	}
}

func TestSolve_RejectsInvalidConfig(t *testing.T) {
	cfg := &Config{}
	if _, err := NewSolver().Solve(context.Background(), cfg); err == nil {
		t.Fatal("expected error for empty config")
	}
}
