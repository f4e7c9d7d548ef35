package decoder

import "github.com/kronologic/kronogen/pkg/encoder"

// decodeS3 finds the first thief (the earliest timestep with exactly
// one character in the jewel room) and simulates the pass chain: the
// jewels move on whenever the current holder shares a room with exactly
// one other character. If no alone moment exists, FirstThief is left
// nil — the open question spec.md §9 leaves for the implementer; this
// decoder mirrors the source's permissive behavior rather than treating
// it as an encoding bug (see DESIGN.md).
func decodeS3(enc *encoder.Encoded, r *Result, priv *PrivFacts) {
	room := enc.Graph.AlphabeticallyFirst()
	facts := &JewelsFacts{Room: room}

	firstT := -1
	var firstThief string
	for t := 0; t < enc.T; t++ {
		occupant := soleOccupant(enc, r, t, room)
		if occupant != "" {
			firstT = t
			firstThief = occupant
			break
		}
	}

	if firstT < 0 {
		priv.SingersJewels = facts
		return
	}
	facts.FirstThief = &firstThief
	facts.FinalHolder = firstThief

	holder := firstThief
	for t := firstT + 1; t < enc.T; t++ {
		holderRoom := r.Schedule[holder][t]
		if r.ByTime[t][holderRoom] != 2 {
			continue
		}
		for _, c := range enc.Chars {
			if c == holder {
				continue
			}
			if r.Schedule[c][t] == holderRoom {
				facts.Passes = append(facts.Passes, JewelPass{
					From: holder,
					To:   c,
					Time: t + 1,
					Room: holderRoom,
				})
				holder = c
				facts.FinalHolder = holder
				break
			}
		}
	}
	priv.SingersJewels = facts
}

func soleOccupant(enc *encoder.Encoded, r *Result, t int, room string) string {
	if r.ByTime[t][room] != 1 {
		return ""
	}
	for _, c := range enc.Chars {
		if r.Schedule[c][t] == room {
			return c
		}
	}
	return ""
}
