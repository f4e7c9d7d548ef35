package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// S7AggVar names the role variable "c is the aggrosassin".
func S7AggVar(c string) string { return fmt.Sprintf("s7:agg:%s", c) }

// EncodeS7 compiles the Aggrosassin scenario: exactly one agg; every
// room with exactly two occupants at any time must include the agg;
// the agg has at least ceil(T/2) distinct timesteps with a 1-on-1
// meeting, each naming a distinct victim (a given (agg, victim) pair may
// only be recorded as a 1-on-1 meeting once across the whole schedule).
func (ctx *Context) EncodeS7(cfg Config) {
	aggLits := make([]int, 0, len(cfg.Chars))
	for _, c := range cfg.Chars {
		aggLits = append(aggLits, ctx.Role(S7AggVar(c)))
	}
	cardinality.ExactlyOne(ctx.CL, aggLits)

	for t := 0; t < ctx.T; t++ {
		for _, r := range ctx.Graph.Rooms {
			exactlyTwo := ctx.ExactlyTwo(t, r)
			for i, c1 := range cfg.Chars {
				for j, c2 := range cfg.Chars {
					if j <= i {
						continue
					}
					agg1 := ctx.Role(S7AggVar(c1))
					agg2 := ctx.Role(S7AggVar(c2))
					ctx.CL.Add(cnf.Clause{-exactlyTwo, -ctx.X(c1, t, r), -ctx.X(c2, t, r), agg1, agg2})
				}
			}
		}
	}

	minKills := ceilDiv(cfg.T, 2)
	for _, cA := range cfg.Chars {
		agg := ctx.Role(S7AggVar(cA))

		// km(cA, c2, t): a 1-on-1 meeting between the candidate agg and c2
		// at time t.
		kmByVictim := make(map[string][]int, len(cfg.Chars))
		var killAtT []int
		for t := 0; t < ctx.T; t++ {
			var thisT []int
			for _, c2 := range cfg.Chars {
				if c2 == cA {
					continue
				}
				km := ctx.Role(fmt.Sprintf("s7:km:%s:%s:%d", cA, c2, t))
				m := ctx.Meet(cA, c2, t)
				ctx.CL.Add(cnf.Clause{-km, m})
				back := cnf.Clause{km, -m}
				for _, c3 := range cfg.Chars {
					if c3 == cA || c3 == c2 {
						continue
					}
					o := ctx.Meet(cA, c3, t)
					ctx.CL.Add(cnf.Clause{-km, -o})
					back = append(back, o)
				}
				ctx.CL.Add(back)
				kmByVictim[c2] = append(kmByVictim[c2], km)
				thisT = append(thisT, km)
			}
			kill := ctx.Role(fmt.Sprintf("s7:killAt:%s:%d", cA, t))
			for _, km := range thisT {
				ctx.CL.Add(cnf.Clause{-km, kill})
			}
			big := append([]int{-kill}, thisT...)
			ctx.CL.Add(cnf.Clause(big))
			killAtT = append(killAtT, kill)
		}

		outputs := cardinality.Totalizer(ctx.Pool, ctx.CL, killAtT, fmt.Sprintf("s7:kills:%s", cA))
		if minKills > 0 && minKills <= len(outputs) {
			ctx.CL.Add(cnf.Clause{-agg, outputs[minKills-1]})
		} else if minKills > len(outputs) {
			// Impossible for this candidate to reach the threshold at all;
			// forbid them from being the agg.
			ctx.CL.AddUnit(-agg)
		}

		// At most one 1-on-1 meeting per (cA, victim) pair, only binding
		// when cA really is the agg.
		for _, kms := range kmByVictim {
			for i := 0; i < len(kms); i++ {
				for j := i + 1; j < len(kms); j++ {
					ctx.CL.Add(cnf.Clause{-agg, -kms[i], -kms[j]})
				}
			}
		}
	}
}
