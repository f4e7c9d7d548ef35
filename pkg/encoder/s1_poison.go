package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
	"github.com/kronologic/kronogen/pkg/cnf"
)

// S1VictimVar names the role variable "c is the poison victim".
func S1VictimVar(c string) string { return fmt.Sprintf("s1:victim:%s", c) }

// S1PoisonTimeVar names the role variable "t is the poison moment" (t is
// 0-based internally).
func S1PoisonTimeVar(t int) string { return fmt.Sprintf("s1:pt:%d", t) }

// S1PoisonRoomVar names the role variable "r is the poison room".
func S1PoisonRoomVar(r string) string { return fmt.Sprintf("s1:pr:%s", r) }

// EncodeS1 compiles the Poison scenario: chars[0] is the assassin, fixed
// by construction (no role variable needed — the decoder reads
// Chars[0]). Exactly one victim, one poison time, one poison room;
// at the poison moment both are present and alone together; at every
// other (t, r) where the assassin is present, the room is never exactly
// two people (since the only sanctioned "exactly two" is the poisoning
// itself).
func (ctx *Context) EncodeS1(cfg Config) {
	assassin := cfg.Chars[0]
	suspects := cfg.Chars[1:]

	victimLits := make([]int, 0, len(suspects))
	for _, c := range suspects {
		victimLits = append(victimLits, ctx.Role(S1VictimVar(c)))
	}
	cardinality.ExactlyOne(ctx.CL, victimLits)

	timeLits := make([]int, 0, ctx.T)
	for t := 0; t < ctx.T; t++ {
		timeLits = append(timeLits, ctx.Role(S1PoisonTimeVar(t)))
	}
	cardinality.ExactlyOne(ctx.CL, timeLits)

	roomLits := make([]int, 0, len(ctx.Graph.Rooms))
	for _, r := range ctx.Graph.Rooms {
		roomLits = append(roomLits, ctx.Role(S1PoisonRoomVar(r)))
	}
	cardinality.ExactlyOne(ctx.CL, roomLits)

	if cfg.Scenarios.S1Room != "" && ctx.Graph.HasRoom(cfg.Scenarios.S1Room) {
		ctx.CL.AddUnit(ctx.Role(S1PoisonRoomVar(cfg.Scenarios.S1Room)))
	}
	if cfg.Scenarios.S1Time >= 1 && cfg.Scenarios.S1Time <= ctx.T {
		ctx.CL.AddUnit(ctx.Role(S1PoisonTimeVar(cfg.Scenarios.S1Time - 1)))
	}

	// isPoisonMoment(c,t,r) <=> victim==c ∧ PT==t ∧ PR==r, used to gate
	// the "assassin+victim alone together" requirement.
	for _, c := range suspects {
		victimVar := ctx.Role(S1VictimVar(c))
		for t := 0; t < ctx.T; t++ {
			ptVar := ctx.Role(S1PoisonTimeVar(t))
			for _, r := range ctx.Graph.Rooms {
				prVar := ctx.Role(S1PoisonRoomVar(r))
				moment := ctx.Role(fmt.Sprintf("s1:moment:%s:%d:%s", c, t, r))
				ctx.CL.Add(cnf.Clause{-moment, victimVar})
				ctx.CL.Add(cnf.Clause{-moment, ptVar})
				ctx.CL.Add(cnf.Clause{-moment, prVar})
				ctx.CL.Add(cnf.Clause{moment, -victimVar, -ptVar, -prVar})

				// moment => assassin and victim both in r at t, and no one
				// else is.
				ctx.CL.Add(cnf.Clause{-moment, ctx.X(assassin, t, r)})
				ctx.CL.Add(cnf.Clause{-moment, ctx.X(c, t, r)})
				for _, other := range cfg.Chars {
					if other == assassin || other == c {
						continue
					}
					ctx.CL.Add(cnf.Clause{-moment, -ctx.X(other, t, r)})
				}
			}
		}
	}

	// At every (t, r) where the assassin is present and it is not the
	// poison moment: never exactly two people present.
	for t := 0; t < ctx.T; t++ {
		for _, r := range ctx.Graph.Rooms {
			isMoment := ctx.Role(fmt.Sprintf("s1:anymoment:%d:%s", t, r))
			var momentLits []int
			for _, c := range suspects {
				momentLits = append(momentLits, ctx.Role(fmt.Sprintf("s1:moment:%s:%d:%s", c, t, r)))
			}
			for _, m := range momentLits {
				ctx.CL.Add(cnf.Clause{-m, isMoment})
			}
			big := append([]int{-isMoment}, momentLits...)
			ctx.CL.Add(cnf.Clause(big))

			exactlyTwo := ctx.ExactlyTwo(t, r)
			// assassin present ∧ ¬isMoment ⇒ ¬exactlyTwo
			ctx.CL.Add(cnf.Clause{-ctx.X(assassin, t, r), isMoment, -exactlyTwo})
		}
	}
}
