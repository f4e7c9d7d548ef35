package encoder

import (
	"testing"

	"github.com/kronologic/kronogen/pkg/rng"
	"github.com/kronologic/kronogen/pkg/satsolver"
)

func fourRoomConfig() Config {
	seed := uint64(1)
	return Config{
		Rooms:     []string{"A", "B", "C", "D"},
		Edges:     [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
		Chars:     []string{"W", "X", "Y", "Z"},
		T:         6,
		AllowStay: true,
		Seed:      &seed,
	}
}

func TestEncode_RejectsUnknownRoomInEdges(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Edges = append(cfg.Edges, [2]string{"A", "Nowhere"})
	if _, err := Encode(cfg); err == nil {
		t.Fatal("expected error for edge referencing unknown room")
	}
}

func TestEncode_S14RequiresSixTimesteps(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.T = 4
	cfg.Scenarios.S14 = true
	if _, err := Encode(cfg); err == nil {
		t.Fatal("expected precondition error for s14 with t<6")
	}
}

func TestEncode_S15RequiresFourRooms(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Rooms = []string{"A", "B", "C"}
	cfg.Edges = [][2]string{{"A", "B"}, {"B", "C"}}
	cfg.Scenarios.S15 = true
	if _, err := Encode(cfg); err == nil {
		t.Fatal("expected precondition error for s15 with fewer than 4 rooms")
	}
}

func TestEncode_S16RequiresTwoCharacters(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Chars = []string{"Solo"}
	cfg.Scenarios.S16 = true
	if _, err := Encode(cfg); err == nil {
		t.Fatal("expected precondition error for s16 with fewer than 2 characters")
	}
}

func TestEncode_MovementProducesExactlyOneClausesPerCharTime(t *testing.T) {
	cfg := fourRoomConfig()
	enc, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if enc.CL.Len() == 0 {
		t.Fatal("expected movement clauses even with no scenario selected")
	}
}

func TestEncode_PlainMovementIsSatisfiable(t *testing.T) {
	cfg := fourRoomConfig()
	enc, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := satsolver.NewSolver(enc.Pool.Count(), enc.CL.Clauses(), enc.Seed^rng.SolverStreamSalt, 0)
	res := s.Solve()
	if res.Status != satsolver.StatusSAT {
		t.Fatalf("status = %v, want SAT for an unconstrained movement instance", res.Status)
	}
}

func TestEncode_PhantomScenarioIsSatisfiable(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S2 = true
	enc, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := satsolver.NewSolver(enc.Pool.Count(), enc.CL.Clauses(), enc.Seed^rng.SolverStreamSalt, 0)
	res := s.Solve()
	if res.Status != satsolver.StatusSAT {
		t.Fatalf("status = %v, want SAT for s2 on a 4-cycle with 4 chars over 6 steps", res.Status)
	}

	phantomCount := 0
	for _, c := range cfg.Chars {
		id, ok := enc.Pool.Lookup(S2PhantomVar(c))
		if !ok {
			t.Fatalf("phantom var for %s was never allocated", c)
		}
		if res.Value(id) {
			phantomCount++
		}
	}
	if phantomCount != 1 {
		t.Fatalf("expected exactly one phantom, got %d", phantomCount)
	}
}
