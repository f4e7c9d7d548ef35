package encoder

import (
	"fmt"
	"math"

	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// S9DoctorVar names the role variable "c is the doctor".
func S9DoctorVar(c string) string { return fmt.Sprintf("s9:doctor:%s", c) }

// S9FrozenVar names the role variable "c starts the scenario frozen".
func S9FrozenVar(c string) string { return fmt.Sprintf("s9:frozen:%s", c) }

// EncodeS9 compiles the Doctor's Cure scenario: exactly one doctor, a
// frozen-at-start set disjoint from the doctor and sized around
// round(N*ratio) +/- slack; each frozen character stays in their
// starting room until the doctor shares a room with them; at least one
// heal happens strictly between the first and last timestep; every
// healed character must have left their starting room by the end.
func (ctx *Context) EncodeS9(cfg Config) {
	n := len(cfg.Chars)
	ratio := cfg.Scenarios.S9FrozenRatio
	if ratio == 0 {
		ratio = 0.3
	}
	target := roundInt(float64(n) * ratio)
	slack := maxInt(1, roundInt(0.15*float64(n)))
	lo := maxInt(1, target-slack)
	hi := minInt(n-1, target+slack)
	if lo > hi {
		lo, hi = hi, lo
	}

	docLits := make([]int, 0, n)
	for _, c := range cfg.Chars {
		docLits = append(docLits, ctx.Role(S9DoctorVar(c)))
	}
	cardinality.ExactlyOne(ctx.CL, docLits)

	frozLits := make([]int, 0, n)
	for _, c := range cfg.Chars {
		frozLits = append(frozLits, ctx.Role(S9FrozenVar(c)))
	}
	outputs := cardinality.Totalizer(ctx.Pool, ctx.CL, frozLits, "s9:frozencount")
	cardinality.AssertAtLeast(ctx.CL, outputs, lo)
	cardinality.AssertAtMost(ctx.CL, outputs, hi)

	for _, c := range cfg.Chars {
		ctx.CL.Add(cnf.Clause{-ctx.Role(S9DoctorVar(c)), -ctx.Role(S9FrozenVar(c))})
	}

	// heal(c,t) <=> exists doctor d meeting c at t.
	healAt := make([][]int, ctx.T)
	for t := 0; t < ctx.T; t++ {
		var healLits []int
		for _, c := range cfg.Chars {
			var perDoctor []int
			for _, d := range cfg.Chars {
				if d == c {
					continue
				}
				docMeet := ctx.Role(fmt.Sprintf("s9:docMeet:%s:%s:%d", d, c, t))
				doc := ctx.Role(S9DoctorVar(d))
				m := ctx.Meet(d, c, t)
				ctx.CL.Add(cnf.Clause{-docMeet, doc})
				ctx.CL.Add(cnf.Clause{-docMeet, m})
				ctx.CL.Add(cnf.Clause{docMeet, -doc, -m})
				perDoctor = append(perDoctor, docMeet)
			}
			heal := ctx.Role(fmt.Sprintf("s9:heal:%s:%d", c, t))
			for _, dm := range perDoctor {
				ctx.CL.Add(cnf.Clause{-dm, heal})
			}
			big := append([]int{-heal}, perDoctor...)
			ctx.CL.Add(cnf.Clause(big))
			healLits = append(healLits, heal)
		}
		healAt[t] = healLits
	}

	// healedSince(c,t): OR-chain over heal(c,0..t).
	healedSince := make([]map[string]int, ctx.T)
	for t := range healedSince {
		healedSince[t] = map[string]int{}
	}
	for ci, c := range cfg.Chars {
		var prev int
		for t := 0; t < ctx.T; t++ {
			heal := healAt[t][ci]
			since := ctx.Role(fmt.Sprintf("s9:healedSince:%s:%d", c, t))
			if t == 0 {
				ctx.CL.Add(cnf.Clause{-since, heal})
				ctx.CL.Add(cnf.Clause{since, -heal})
			} else {
				ctx.CL.Add(cnf.Clause{-since, heal, prev})
				ctx.CL.Add(cnf.Clause{since, -heal})
				ctx.CL.Add(cnf.Clause{since, -prev})
			}
			healedSince[t][c] = since
			prev = since
		}
	}

	// Each frozen character stays in their starting room until healed.
	for _, c := range cfg.Chars {
		froz := ctx.Role(S9FrozenVar(c))
		for _, r := range ctx.Graph.Rooms {
			start := ctx.X(c, 0, r)
			for t := 1; t < ctx.T; t++ {
				since := healedSince[t-1][c]
				ctx.CL.Add(cnf.Clause{-froz, -start, since, ctx.X(c, t, r)})
			}
			// Must have left the starting room by the final timestep if ever
			// healed.
			final := healedSince[ctx.T-1][c]
			ctx.CL.Add(cnf.Clause{-froz, -start, -final, -ctx.X(c, ctx.T-1, r)})
		}
	}

	// At least one heal strictly between the first and last timestep.
	var midHeals []int
	for t := 1; t < ctx.T-1; t++ {
		midHeals = append(midHeals, healAt[t]...)
	}
	if len(midHeals) > 0 {
		ctx.CL.Add(cnf.Clause(midHeals))
	}
}

func roundInt(x float64) int { return int(math.Round(x)) }

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
