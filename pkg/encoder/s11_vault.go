package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// S11KeyHolderVar names the role variable "c is the vault's key holder".
func S11KeyHolderVar(c string) string { return fmt.Sprintf("s11:keyholder:%s", c) }

// EncodeS11 compiles the Vault scenario: a seeded random key holder
// (fixed by a hard unit clause, mirroring S8's carrier selection); no
// one enters the vault without the holder present at that timestep; the
// holder must enter with company on at least two distinct timesteps,
// and at least two distinct companions must each join them at least
// once.
func (ctx *Context) EncodeS11(cfg Config) {
	vault := ctx.Graph.AlphabeticallyFirst()
	holder := cfg.Chars[ctx.RNG.Intn(len(cfg.Chars))]
	for _, c := range cfg.Chars {
		if c == holder {
			ctx.CL.AddUnit(ctx.Role(S11KeyHolderVar(c)))
		} else {
			ctx.CL.AddUnit(-ctx.Role(S11KeyHolderVar(c)))
		}
	}

	var companyAt []int
	var companionPresent []int
	for _, c := range cfg.Chars {
		if c == holder {
			continue
		}
		var togetherLits []int
		for t := 0; t < ctx.T; t++ {
			together := ctx.pairInRoom(holder, c, t, vault)
			togetherLits = append(togetherLits, together)
		}
		present := ctx.Role(fmt.Sprintf("s11:companionPresent:%s", c))
		for _, tog := range togetherLits {
			ctx.CL.Add(cnf.Clause{-tog, present})
		}
		big := append([]int{-present}, togetherLits...)
		ctx.CL.Add(cnf.Clause(big))
		companionPresent = append(companionPresent, present)
	}

	for t := 0; t < ctx.T; t++ {
		var anyCompany []int
		for _, c := range cfg.Chars {
			if c == holder {
				continue
			}
			anyCompany = append(anyCompany, ctx.pairInRoom(holder, c, t, vault))
		}
		company := ctx.Role(fmt.Sprintf("s11:companyAt:%d", t))
		for _, ac := range anyCompany {
			ctx.CL.Add(cnf.Clause{-ac, company})
		}
		big := append([]int{-company}, anyCompany...)
		ctx.CL.Add(cnf.Clause(big))
		companyAt = append(companyAt, company)

		// No one enters the vault without the holder present.
		for _, c := range cfg.Chars {
			if c == holder {
				continue
			}
			ctx.CL.Add(cnf.Clause{-ctx.X(c, t, vault), ctx.X(holder, t, vault)})
		}
	}

	companyOutputs := cardinality.Totalizer(ctx.Pool, ctx.CL, companyAt, "s11:companyCount")
	cardinality.AssertAtLeast(ctx.CL, companyOutputs, 2)

	companionOutputs := cardinality.Totalizer(ctx.Pool, ctx.CL, companionPresent, "s11:companionCount")
	cardinality.AssertAtLeast(ctx.CL, companionOutputs, 2)
}
