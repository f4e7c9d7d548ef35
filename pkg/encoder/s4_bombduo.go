package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// S4BomberVar names the role variable "c is one of the two bombers".
func S4BomberVar(c string) string { return fmt.Sprintf("s4:bomber:%s", c) }

// EncodeS4 compiles the Bomb Duo scenario: exactly two bombers; for
// every (t, r) with exactly two people present, they are the bomb pair
// (in either order); the bombers must be alone together at least once.
func (ctx *Context) EncodeS4(cfg Config) {
	lits := make([]int, 0, len(cfg.Chars))
	for _, c := range cfg.Chars {
		lits = append(lits, ctx.Role(S4BomberVar(c)))
	}
	cardinality.AssertExactly(ctx.CL, cardinality.Totalizer(ctx.Pool, ctx.CL, lits, "s4:bombercount"), 2)

	for t := 0; t < ctx.T; t++ {
		for _, r := range ctx.Graph.Rooms {
			exactlyTwo := ctx.ExactlyTwo(t, r)
			for i, c1 := range cfg.Chars {
				for j, c2 := range cfg.Chars {
					if j <= i {
						continue
					}
					// exactlyTwo ∧ X(c1,t,r) ∧ X(c2,t,r) ⇒ bomber(c1) ∧ bomber(c2)
					b1 := ctx.Role(S4BomberVar(c1))
					b2 := ctx.Role(S4BomberVar(c2))
					ctx.CL.Add(cnf.Clause{-exactlyTwo, -ctx.X(c1, t, r), -ctx.X(c2, t, r), b1})
					ctx.CL.Add(cnf.Clause{-exactlyTwo, -ctx.X(c1, t, r), -ctx.X(c2, t, r), b2})
				}
			}
		}
	}

	// Bombers alone together at least once: for every disjoint pair
	// (c1, c2), bomber(c1) ∧ bomber(c2) ⇒ ⋁_t (Meet(c1,c2,t) ∧ no third
	// character meets c1 at t).
	for i, c1 := range cfg.Chars {
		for j, c2 := range cfg.Chars {
			if j <= i {
				continue
			}
			b1 := ctx.Role(S4BomberVar(c1))
			b2 := ctx.Role(S4BomberVar(c2))
			clause := []int{-b1, -b2}
			for t := 0; t < ctx.T; t++ {
				together := ctx.Role(fmt.Sprintf("s4:aloneTogether:%s:%s:%d", c1, c2, t))
				m := ctx.Meet(c1, c2, t)
				ctx.CL.Add(cnf.Clause{-together, m})
				back := cnf.Clause{together, -m}
				for _, c3 := range cfg.Chars {
					if c3 == c1 || c3 == c2 {
						continue
					}
					o := ctx.Meet(c1, c3, t)
					ctx.CL.Add(cnf.Clause{-together, -o})
					back = append(back, o)
				}
				ctx.CL.Add(back)
				clause = append(clause, together)
			}
			ctx.CL.Add(cnf.Clause(clause))
		}
	}
}
