package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cnf"
	"github.com/kronologic/kronogen/pkg/rng"
	"github.com/kronologic/kronogen/pkg/roomgraph"
	"github.com/kronologic/kronogen/pkg/varpool"
)

// Context is the shared state every scenario encoder writes into: the
// variable pool and clause list under construction, the room graph and
// cast, and a memo table so repeatedly-requested derived predicates
// (Meet, Alone, room occupancy) are defined once rather than once per
// caller.
type Context struct {
	Pool  *varpool.Pool
	CL    *cnf.ClauseList
	Graph *roomgraph.Graph
	Chars []string
	T     int

	// EffectiveAllowStay is whether the movement encoding's adjacency
	// includes the self-loop, resolved once from Config and the active
	// scenario set (spec.md §4.4).
	EffectiveAllowStay bool

	RNG *rng.RNG

	defined map[string]int
	occ     map[string][]int
}

// NewContext builds an encoding context. seed feeds the encoder-side RNG
// stream (role assignment, tie-breaks among candidate rooms/times) —
// distinct from the solver's own stream, per spec.md's Design Notes.
func NewContext(pool *varpool.Pool, cl *cnf.ClauseList, graph *roomgraph.Graph, chars []string, t int, effectiveAllowStay bool, seed uint64) *Context {
	return &Context{
		Pool:               pool,
		CL:                 cl,
		Graph:              graph,
		Chars:              chars,
		T:                  t,
		EffectiveAllowStay: effectiveAllowStay,
		RNG:                rng.New(seed),
		defined:            make(map[string]int),
		occ:                make(map[string][]int),
	}
}

// X returns the placement variable for (c, t, r), allocating it on first
// reference via the pool.
func (ctx *Context) X(c string, t int, r string) int {
	return ctx.Pool.Get(fmt.Sprintf("X:%s:%d:%s", c, t, r))
}

// Role returns a scenario-scoped role or Tseitin variable, allocating it
// on first reference. name should already be fully qualified (e.g.
// "s1:PT" or "s7:agg:Alice").
func (ctx *Context) Role(name string) int {
	return ctx.Pool.Get(name)
}

// once allocates the variable for key and, the first time it's asked
// for, runs def to emit its defining clauses. Later callers get the same
// variable without re-emitting the definition.
func (ctx *Context) once(key string, def func(id int)) int {
	if id, ok := ctx.defined[key]; ok {
		return id
	}
	id := ctx.Pool.Get(key)
	ctx.defined[key] = id
	def(id)
	return id
}

func canonPair(a, b string) (string, string) {
	if a <= b {
		return a, b
	}
	return b, a
}
