package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cnf"
	"github.com/kronologic/kronogen/pkg/rng"
	"github.com/kronologic/kronogen/pkg/roomgraph"
	"github.com/kronologic/kronogen/pkg/varpool"
)

// Encoded is the CNF instance produced by Encode: a variable pool, a
// clause list, and enough of the original Config for the decoder to walk
// the satisfying assignment back into a schedule.
type Encoded struct {
	Pool      *varpool.Pool
	CL        *cnf.ClauseList
	Graph     *roomgraph.Graph
	Chars     []string
	T         int
	Scenarios ScenarioFlags
	Seed      uint64
}

// Encode compiles cfg into a CNF instance. It validates structural and
// scenario-specific preconditions, builds the room graph, resolves
// cfg.Seed (the seed actually used is reported in Encoded.Seed), then
// emits movement and scenario clauses.
//
// A non-nil error here is always an encoder precondition failure
// (spec.md §7 taxon 1) — it is never returned for an unsatisfiable
// instance, which the solver reports by returning StatusUNSAT instead.
func Encode(cfg Config) (*Encoded, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := checkPreconditions(cfg); err != nil {
		return nil, err
	}

	graph, err := roomgraph.NewGraph(cfg.Rooms, cfg.Edges)
	if err != nil {
		return nil, fmt.Errorf("encoder: %w", err)
	}

	seed := rng.ResolveSeed(cfg.Seed)
	effectiveAllowStay := (cfg.AllowStay && !cfg.MustMove) || stickyScenarioActive(cfg.Scenarios)

	pool := varpool.New()
	cl := cnf.NewClauseList()
	ctx := NewContext(pool, cl, graph, cfg.Chars, cfg.T, effectiveAllowStay, seed)

	ctx.EncodeMovement()

	f := cfg.Scenarios
	if f.S1 {
		ctx.EncodeS1(cfg)
	}
	if f.S2 {
		ctx.EncodeS2(cfg)
	}
	if f.S3 {
		ctx.EncodeS3(cfg)
	}
	if f.S4 {
		ctx.EncodeS4(cfg)
	}
	if f.S5 {
		// S6 = S2 ∧ S5: EncodeS5 itself asserts PH_c => ¬L1_c ∧ ¬L2_c for
		// every c when f.S2 is set, excluding the phantom from both lover
		// roles without needing to know the phantom's identity up front.
		ctx.EncodeS5(cfg, f.S2)
	}
	if f.S7 {
		ctx.EncodeS7(cfg)
	}
	if f.S8 {
		ctx.EncodeS8(cfg)
	}
	if f.S9 {
		ctx.EncodeS9(cfg)
	}
	if f.S10 {
		ctx.EncodeS10(cfg)
	}
	if f.S11 {
		ctx.EncodeS11(cfg)
	}
	if f.S12 {
		ctx.EncodeS12(cfg)
	}
	if f.S13 {
		ctx.EncodeS13(cfg)
	}
	if f.S14 {
		// S14 has no hard CNF-level curse constraint beyond ordinary
		// placement and the T>=6/N>=2 precondition already checked above;
		// the handoff itself is a decoder-side simulation (spec.md §4.6).
	}
	if f.S15 {
		ctx.EncodeS15(cfg)
	}
	if f.S16 {
		ctx.EncodeS16(cfg)
	}

	return &Encoded{
		Pool:      pool,
		CL:        cl,
		Graph:     graph,
		Chars:     cfg.Chars,
		T:         cfg.T,
		Scenarios: cfg.Scenarios,
		Seed:      seed,
	}, nil
}
