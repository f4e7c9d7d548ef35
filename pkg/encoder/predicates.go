package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// pairInRoom defines and returns p <=> X(c1,t,r) ∧ X(c2,t,r) via a
// standard Tseitin AND-gate.
func (ctx *Context) pairInRoom(c1, c2 string, t int, r string) int {
	c1, c2 = canonPair(c1, c2)
	key := fmt.Sprintf("pair:%s:%s:%d:%s", c1, c2, t, r)
	return ctx.once(key, func(p int) {
		a := ctx.X(c1, t, r)
		b := ctx.X(c2, t, r)
		ctx.CL.Add(cnf.Clause{-p, a})
		ctx.CL.Add(cnf.Clause{-p, b})
		ctx.CL.Add(cnf.Clause{p, -a, -b})
	})
}

// Meet defines and returns m <=> ∃r: X(c1,t,r) ∧ X(c2,t,r) — "c1 and c2
// share a room at time t". Used throughout the phantom/lovers/bomb-duo/
// aggrosassin/vault family of scenarios.
func (ctx *Context) Meet(c1, c2 string, t int) int {
	c1, c2 = canonPair(c1, c2)
	key := fmt.Sprintf("meet:%s:%s:%d", c1, c2, t)
	return ctx.once(key, func(m int) {
		pairs := make([]int, 0, len(ctx.Graph.Rooms))
		for _, r := range ctx.Graph.Rooms {
			p := ctx.pairInRoom(c1, c2, t, r)
			pairs = append(pairs, p)
			ctx.CL.Add(cnf.Clause{-p, m})
		}
		big := append([]int{-m}, pairs...)
		ctx.CL.Add(cnf.Clause(big))
	})
}

// Alone defines and returns a <=> no other character shares c's room at
// time t.
func (ctx *Context) Alone(c string, t int) int {
	key := fmt.Sprintf("alone:%s:%d", c, t)
	return ctx.once(key, func(a int) {
		var meets []int
		for _, c2 := range ctx.Chars {
			if c2 == c {
				continue
			}
			meets = append(meets, ctx.Meet(c, c2, t))
		}
		for _, m := range meets {
			ctx.CL.Add(cnf.Clause{-a, -m})
		}
		big := append([]int{a}, meets...)
		ctx.CL.Add(cnf.Clause(big))
	})
}

// occupancyOutputs returns the totalizer output literals for "at least k
// characters occupy room r at time t", memoized per (t, r).
func (ctx *Context) occupancyOutputs(t int, r string) []int {
	key := fmt.Sprintf("occ:%d:%s", t, r)
	if out, ok := ctx.occ[key]; ok {
		return out
	}
	inputs := make([]int, 0, len(ctx.Chars))
	for _, c := range ctx.Chars {
		inputs = append(inputs, ctx.X(c, t, r))
	}
	out := cardinality.Totalizer(ctx.Pool, ctx.CL, inputs, key)
	ctx.occ[key] = out
	return out
}

// ExactlyTwo defines and returns e <=> exactly two characters occupy
// room r at time t, used by S1, S4, and S7.
func (ctx *Context) ExactlyTwo(t int, r string) int {
	key := fmt.Sprintf("exactly2:%d:%s", t, r)
	return ctx.once(key, func(e int) {
		outs := ctx.occupancyOutputs(t, r)
		if len(outs) < 2 {
			ctx.CL.AddUnit(-e)
			return
		}
		atLeast2 := outs[1]
		if len(outs) >= 3 {
			atLeast3 := outs[2]
			ctx.CL.Add(cnf.Clause{-e, atLeast2})
			ctx.CL.Add(cnf.Clause{-e, -atLeast3})
			ctx.CL.Add(cnf.Clause{e, -atLeast2, atLeast3})
			return
		}
		ctx.CL.Add(cnf.Clause{-e, atLeast2})
		ctx.CL.Add(cnf.Clause{e, -atLeast2})
	})
}

// RoomEntryAt returns the placement variable X(c,t,r) itself; it
// allocates no separate indicator and emits no clauses.
func (ctx *Context) RoomEntryAt(c string, t int, r string) int {
	return ctx.X(c, t, r)
}

// Visited defines and returns v <=> ⋁_t X(c,t,r) — "c visits room r at
// least once" — used by S15's totalizer-bounded visit counts.
func (ctx *Context) Visited(c string, r string) int {
	key := fmt.Sprintf("visited:%s:%s", c, r)
	return ctx.once(key, func(v int) {
		lits := make([]int, 0, ctx.T)
		for t := 0; t < ctx.T; t++ {
			x := ctx.X(c, t, r)
			lits = append(lits, x)
			ctx.CL.Add(cnf.Clause{-x, v})
		}
		big := append([]int{-v}, lits...)
		ctx.CL.Add(cnf.Clause(big))
	})
}
