package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cnf"
)

// S13CarrierVar names the role variable "c is the glue shoes carrier".
func S13CarrierVar(c string) string { return fmt.Sprintf("s13:carrier:%s", c) }

// EncodeS13 compiles the Glue Shoes scenario: a seeded random carrier
// who must always move; whenever the carrier meets a victim, the victim
// is glued in place for the following turn (present at t+1, absent at
// t+2). Victims may only stay in place when a meeting with the carrier
// justifies it.
func (ctx *Context) EncodeS13(cfg Config) {
	carrier := cfg.Chars[ctx.RNG.Intn(len(cfg.Chars))]
	for _, c := range cfg.Chars {
		if c == carrier {
			ctx.CL.AddUnit(ctx.Role(S13CarrierVar(c)))
		} else {
			ctx.CL.AddUnit(-ctx.Role(S13CarrierVar(c)))
		}
	}
	ctx.ForceMove(carrier)

	supportStay := make([]map[int]int, len(cfg.Chars))
	for i := range supportStay {
		supportStay[i] = map[int]int{}
	}

	for ci, c := range cfg.Chars {
		if c == carrier {
			continue
		}
		for t := 0; t < ctx.T; t++ {
			var meetHere []int
			for _, r := range ctx.Graph.Rooms {
				meetAt := ctx.pairInRoom(carrier, c, t, r)
				meetHere = append(meetHere, meetAt)
				if t+1 <= ctx.T-1 {
					ctx.CL.Add(cnf.Clause{-meetAt, ctx.X(c, t+1, r)})
				}
				if t+2 <= ctx.T-1 {
					ctx.CL.Add(cnf.Clause{-meetAt, -ctx.X(c, t+2, r)})
				}
			}
			support := ctx.Role(fmt.Sprintf("s13:support:%s:%d", c, t))
			for _, m := range meetHere {
				ctx.CL.Add(cnf.Clause{-m, support})
			}
			big := append([]int{-support}, meetHere...)
			ctx.CL.Add(cnf.Clause(big))
			supportStay[ci][t] = support
		}
	}

	for ci, c := range cfg.Chars {
		if c == carrier {
			continue
		}
		for t := 0; t < ctx.T-1; t++ {
			ctx.ForceMoveUnless(c, t, supportStay[ci][t])
		}
	}
}
