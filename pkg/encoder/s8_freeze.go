package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cnf"
)

// S8FreezeVar names the role variable "c is the freeze carrier".
func S8FreezeVar(c string) string { return fmt.Sprintf("s8:freeze:%s", c) }

// S8StuckSinceVar names the derived indicator "c has been frozen at or
// before time t".
func S8StuckSinceVar(c string, t int) string { return fmt.Sprintf("s8:stuckSince:%s:%d", c, t) }

// EncodeS8 compiles the Freeze scenario. The carrier is chosen
// deterministically from the encoder's seeded RNG stream and fixed with
// a hard unit clause (spec.md §4.5: "fixed by seed to a specific
// character"). Whenever the carrier is alone with someone, that person
// is frozen in place from that moment on; a random subset of non-final
// timesteps is required to contain a freeze event; every other
// character may only stay in place while frozen.
func (ctx *Context) EncodeS8(cfg Config) {
	carrier := cfg.Chars[ctx.RNG.Intn(len(cfg.Chars))]
	for _, c := range cfg.Chars {
		if c == carrier {
			ctx.CL.AddUnit(ctx.Role(S8FreezeVar(c)))
		} else {
			ctx.CL.AddUnit(-ctx.Role(S8FreezeVar(c)))
		}
	}

	// frozenEvent(c,t,r): the carrier is alone with c in r at time t.
	frozenEventAny := make([][]int, ctx.T) // indexed by t, one var per victim OR'd
	for t := 0; t < ctx.T; t++ {
		var anyThisT []int
		for _, c := range cfg.Chars {
			if c == carrier {
				continue
			}
			for _, r := range ctx.Graph.Rooms {
				ev := ctx.Role(fmt.Sprintf("s8:frozenEvent:%s:%d:%s", c, t, r))
				m := ctx.pairInRoom(carrier, c, t, r)
				a := ctx.ExactlyTwo(t, r)
				inRoom := ctx.X(c, t, r)
				ctx.CL.Add(cnf.Clause{-ev, m})
				ctx.CL.Add(cnf.Clause{-ev, a})
				ctx.CL.Add(cnf.Clause{-ev, inRoom})
				ctx.CL.Add(cnf.Clause{ev, -m, -a, -inRoom})

				// ev => c remains in r for all subsequent timesteps.
				for t2 := t + 1; t2 < ctx.T; t2++ {
					ctx.CL.Add(cnf.Clause{-ev, ctx.X(c, t2, r)})
				}
				anyThisT = append(anyThisT, ev)
			}
		}
		frozenEventAny[t] = anyThisT
	}

	stuckSince := make([]map[string]int, ctx.T)
	for t := range stuckSince {
		stuckSince[t] = map[string]int{}
	}
	for _, c := range cfg.Chars {
		if c == carrier {
			continue
		}
		var prev int
		for t := 0; t < ctx.T; t++ {
			eventThisT := ctx.Role(fmt.Sprintf("s8:frozenNowAny:%s:%d", c, t))
			var evForC []int
			for _, r := range ctx.Graph.Rooms {
				evForC = append(evForC, ctx.Role(fmt.Sprintf("s8:frozenEvent:%s:%d:%s", c, t, r)))
			}
			for _, ev := range evForC {
				ctx.CL.Add(cnf.Clause{-ev, eventThisT})
			}
			big := append([]int{-eventThisT}, evForC...)
			ctx.CL.Add(cnf.Clause(big))

			since := ctx.Role(S8StuckSinceVar(c, t))
			if t > 0 {
				// since(t) <=> eventThisT ∨ since(t-1)
				ctx.CL.Add(cnf.Clause{-since, eventThisT, prev})
				ctx.CL.Add(cnf.Clause{since, -eventThisT})
				ctx.CL.Add(cnf.Clause{since, -prev})
			} else {
				ctx.CL.Add(cnf.Clause{-since, eventThisT})
				ctx.CL.Add(cnf.Clause{since, -eventThisT})
			}
			stuckSince[t][c] = since
			prev = since
		}
	}

	// Required-kill times: a seeded random subset of non-final timesteps
	// must each contain at least one freeze event.
	for t := 0; t < ctx.T-1; t++ {
		if ctx.RNG.Bool() {
			ctx.CL.Add(cnf.Clause(frozenEventAny[t]))
		}
	}

	// Non-freeze characters may only stay in place while frozen.
	for _, c := range cfg.Chars {
		if c == carrier {
			continue
		}
		for t := 0; t < ctx.T-1; t++ {
			ctx.ForceMoveUnless(c, t, stuckSince[t][c])
		}
	}
}
