package decoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/satsolver"
)

// decodeS12 finds the seeded glue room's role variable, then reports each
// character's first entry timestep per spec.md §4.6.
func decodeS12(enc *encoder.Encoded, res *satsolver.Result, r *Result, priv *PrivFacts) error {
	room, err := lookupTrue(enc, res, encoder.S12GlueRoomVar, enc.Graph.Rooms)
	if err != nil {
		return fmt.Errorf("s12 glue room: %w", err)
	}

	firstEntry := map[string]int{}
	for _, c := range enc.Chars {
		for t := 0; t < enc.T; t++ {
			if r.Schedule[c][t] == room {
				firstEntry[c] = t + 1
				break
			}
		}
	}

	priv.GlueRoom = &GlueRoomFacts{Room: room, FirstEntryAt: firstEntry}
	return nil
}

// decodeS13 finds the glue shoes carrier's role variable, then replays
// the schedule for every 1-on-1 meeting between the carrier and another
// character, each one a glue event.
func decodeS13(enc *encoder.Encoded, res *satsolver.Result, r *Result, priv *PrivFacts) error {
	carrier, err := lookupTrue(enc, res, encoder.S13CarrierVar, enc.Chars)
	if err != nil {
		return fmt.Errorf("s13 glue shoes carrier: %w", err)
	}

	var glued []GlueShoeEvent
	for t := 0; t < enc.T; t++ {
		room := r.Schedule[carrier][t]
		if r.ByTime[t][room] != 2 {
			continue
		}
		for _, c := range enc.Chars {
			if c == carrier {
				continue
			}
			if r.Schedule[c][t] == room {
				glued = append(glued, GlueShoeEvent{Victim: c, Time: t + 1, Room: room})
			}
		}
	}

	priv.GlueShoes = &GlueShoesFacts{Carrier: carrier, Glued: glued}
	return nil
}
