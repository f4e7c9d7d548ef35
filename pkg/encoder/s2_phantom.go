package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// S2PhantomVar names the role variable "c is the phantom".
func S2PhantomVar(c string) string { return fmt.Sprintf("s2:phantom:%s", c) }

// EncodeS2 compiles the Phantom scenario: exactly one phantom; the
// phantom never co-locates with anyone at any time; every non-phantom
// co-locates with someone at least once.
func (ctx *Context) EncodeS2(cfg Config) {
	lits := make([]int, 0, len(cfg.Chars))
	for _, c := range cfg.Chars {
		lits = append(lits, ctx.Role(S2PhantomVar(c)))
	}
	cardinality.ExactlyOne(ctx.CL, lits)

	for _, c := range cfg.Chars {
		ph := ctx.Role(S2PhantomVar(c))
		for t := 0; t < ctx.T; t++ {
			for _, c2 := range cfg.Chars {
				if c2 == c {
					continue
				}
				m := ctx.Meet(c, c2, t)
				ctx.CL.Add(cnf.Clause{-ph, -m})
			}
		}
	}

	// Every non-phantom co-locates with someone at least once: for each
	// c, PH_c ∨ (⋁_{t,c'≠c} Meet(c,c',t)).
	for _, c := range cfg.Chars {
		ph := ctx.Role(S2PhantomVar(c))
		clause := []int{ph}
		for t := 0; t < ctx.T; t++ {
			for _, c2 := range cfg.Chars {
				if c2 == c {
					continue
				}
				clause = append(clause, ctx.Meet(c, c2, t))
			}
		}
		ctx.CL.Add(cnf.Clause(clause))
	}
}
