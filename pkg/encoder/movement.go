package encoder

import (
	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// EncodeMovement emits, per spec.md §4.4: exactly-one room per (c, t),
// and X(c,t,r) => OR_{r' in adj(r)} X(c,t+1,r') for every t < T-1.
// Adjacency already reflects ctx.EffectiveAllowStay (resolved once by
// the caller from Config.AllowStay/MustMove and the active scenario
// set).
func (ctx *Context) EncodeMovement() {
	for _, c := range ctx.Chars {
		for t := 0; t < ctx.T; t++ {
			lits := make([]int, 0, len(ctx.Graph.Rooms))
			for _, r := range ctx.Graph.Rooms {
				lits = append(lits, ctx.X(c, t, r))
			}
			cardinality.ExactlyOne(ctx.CL, lits)

			if t >= ctx.T-1 {
				continue
			}
			for _, r := range ctx.Graph.Rooms {
				neighbors := ctx.Graph.Neighbors(r, ctx.EffectiveAllowStay)
				body := make([]int, 0, len(neighbors)+1)
				body = append(body, -ctx.X(c, t, r))
				for _, r2 := range neighbors {
					body = append(body, ctx.X(c, t+1, r2))
				}
				ctx.CL.Add(cnf.Clause(body))
			}
		}
	}
}

// ForceMove emits ¬X(c,t,r) ∨ ¬X(c,t+1,r) for every room r and every
// t < T-1, forbidding character c from staying in place regardless of
// the graph's self-loop policy. Used by S13's glue-shoe carrier and
// S16's non-homebody characters.
func (ctx *Context) ForceMove(c string) {
	for t := 0; t < ctx.T-1; t++ {
		for _, r := range ctx.Graph.Rooms {
			ctx.CL.Add(cnf.Clause{-ctx.X(c, t, r), -ctx.X(c, t+1, r)})
		}
	}
}

// ForceMoveUnless emits the same "no stay" clause for a single timestep
// t, with support as an extra disjunct, used by scenarios that only condition the stay prohibition on a
// support literal (S8 freeze, S13 glue shoes: a character may only stay
// when a "stuck"/"met" support literal justifies it).
func (ctx *Context) ForceMoveUnless(c string, t int, support int) {
	for _, r := range ctx.Graph.Rooms {
		// ¬X(c,t,r) ∨ ¬X(c,t+1,r) ∨ support
		ctx.CL.Add(cnf.Clause{-ctx.X(c, t, r), -ctx.X(c, t+1, r), support})
	}
}
