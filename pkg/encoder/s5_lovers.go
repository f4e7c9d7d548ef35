package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// S5LoverVar names the role variable "c holds lover slot which (1 or
// 2)".
func S5LoverVar(which int, c string) string { return fmt.Sprintf("s5:lover%d:%s", which, c) }

// EncodeS5 compiles the Lovers scenario: two distinct lovers who never
// co-locate; every pair of non-lovers co-locates at least once. When
// excludePhantom is true (S6 = S2 ∧ S5), the phantom role variable from
// EncodeS2 is additionally forced out of both lover slots.
func (ctx *Context) EncodeS5(cfg Config, excludePhantom bool) {
	l1 := make([]int, 0, len(cfg.Chars))
	l2 := make([]int, 0, len(cfg.Chars))
	for _, c := range cfg.Chars {
		l1 = append(l1, ctx.Role(S5LoverVar(1, c)))
		l2 = append(l2, ctx.Role(S5LoverVar(2, c)))
	}
	cardinality.ExactlyOne(ctx.CL, l1)
	cardinality.ExactlyOne(ctx.CL, l2)

	for _, c := range cfg.Chars {
		// A character can't hold both lover slots.
		ctx.CL.Add(cnf.Clause{-ctx.Role(S5LoverVar(1, c)), -ctx.Role(S5LoverVar(2, c))})
		if excludePhantom {
			ph := ctx.Role(S2PhantomVar(c))
			ctx.CL.Add(cnf.Clause{-ph, -ctx.Role(S5LoverVar(1, c))})
			ctx.CL.Add(cnf.Clause{-ph, -ctx.Role(S5LoverVar(2, c))})
		}
	}

	isLover := func(c string) int {
		return ctx.Role(fmt.Sprintf("s5:isLover:%s", c))
	}
	for _, c := range cfg.Chars {
		v := isLover(c)
		a := ctx.Role(S5LoverVar(1, c))
		b := ctx.Role(S5LoverVar(2, c))
		ctx.CL.Add(cnf.Clause{-a, v})
		ctx.CL.Add(cnf.Clause{-b, v})
		ctx.CL.Add(cnf.Clause{a, b, -v})
	}

	for i, c1 := range cfg.Chars {
		for j, c2 := range cfg.Chars {
			if j <= i {
				continue
			}
			l1a := ctx.Role(S5LoverVar(1, c1))
			l2b := ctx.Role(S5LoverVar(2, c2))
			l1b := ctx.Role(S5LoverVar(1, c2))
			l2a := ctx.Role(S5LoverVar(2, c1))
			bothLovers := ctx.Role(fmt.Sprintf("s5:pairIsLovers:%s:%s", c1, c2))
			orderA := ctx.Role(fmt.Sprintf("s5:orderA:%s:%s", c1, c2))
			orderB := ctx.Role(fmt.Sprintf("s5:orderB:%s:%s", c1, c2))
			ctx.CL.Add(cnf.Clause{-orderA, l1a})
			ctx.CL.Add(cnf.Clause{-orderA, l2b})
			ctx.CL.Add(cnf.Clause{orderA, -l1a, -l2b})
			ctx.CL.Add(cnf.Clause{-orderB, l1b})
			ctx.CL.Add(cnf.Clause{-orderB, l2a})
			ctx.CL.Add(cnf.Clause{orderB, -l1b, -l2a})
			ctx.CL.Add(cnf.Clause{-bothLovers, orderA, orderB})
			ctx.CL.Add(cnf.Clause{bothLovers, -orderA})
			ctx.CL.Add(cnf.Clause{bothLovers, -orderB})

			for t := 0; t < ctx.T; t++ {
				m := ctx.Meet(c1, c2, t)
				// bothLovers => never meet
				ctx.CL.Add(cnf.Clause{-bothLovers, -m})
			}

			// Every pair that is not the lover pair (¬bothLovers) must meet
			// at least once. With excludePhantom (S6), a pair containing the
			// phantom is exempt, so both phantom literals join the clause.
			clause := []int{bothLovers}
			for t := 0; t < ctx.T; t++ {
				clause = append(clause, ctx.Meet(c1, c2, t))
			}
			if excludePhantom {
				ph1 := ctx.Role(S2PhantomVar(c1))
				ph2 := ctx.Role(S2PhantomVar(c2))
				clause = append(clause, ph1, ph2)
			}
			ctx.CL.Add(cnf.Clause(clause))
		}
	}
}
