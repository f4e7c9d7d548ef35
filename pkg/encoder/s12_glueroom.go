package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cnf"
)

// S12GlueRoomVar names the role variable "r is the seeded glue room".
func S12GlueRoomVar(r string) string { return fmt.Sprintf("s12:glueRoom:%s", r) }

// S12EntryVar names the derived "c entered the glue room at t" indicator.
func S12EntryVar(c string, t int) string { return fmt.Sprintf("s12:entry:%s:%d", c, t) }

// EncodeS12 compiles the Glue Room scenario: a seeded random room is
// sticky. An "entry" at (c,t) means c is in the glue room at t but
// wasn't there at t-1 (or t==0, trivially an entry). Every non-final
// entry forces presence at t+1 and absence at t+2, a fixed two-turn
// stay. At least one non-final entry must occur.
func (ctx *Context) EncodeS12(cfg Config) {
	room := ctx.Graph.Rooms[ctx.RNG.Intn(len(ctx.Graph.Rooms))]
	ctx.CL.AddUnit(ctx.Role(S12GlueRoomVar(room)))

	var nonFinalEntries cnf.Clause
	for _, c := range cfg.Chars {
		for t := 0; t < ctx.T; t++ {
			entry := ctx.Role(S12EntryVar(c, t))
			here := ctx.X(c, t, room)
			if t == 0 {
				ctx.CL.Add(cnf.Clause{-entry, here})
				ctx.CL.Add(cnf.Clause{entry, -here})
			} else {
				prevHere := ctx.X(c, t-1, room)
				ctx.CL.Add(cnf.Clause{-entry, here})
				ctx.CL.Add(cnf.Clause{-entry, -prevHere})
				ctx.CL.Add(cnf.Clause{entry, -here, prevHere})
			}

			if t+1 <= ctx.T-1 {
				ctx.CL.Add(cnf.Clause{-entry, ctx.X(c, t+1, room)})
				nonFinalEntries = append(nonFinalEntries, entry)
			}
			if t+2 <= ctx.T-1 {
				ctx.CL.Add(cnf.Clause{-entry, -ctx.X(c, t+2, room)})
			}
		}
	}
	if len(nonFinalEntries) > 0 {
		ctx.CL.Add(nonFinalEntries)
	}
}
