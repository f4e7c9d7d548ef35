package decoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/satsolver"
)

// decodeS7 finds the aggrosassin's role variable, then re-derives the
// victim list by replaying the schedule: a 1-on-1 meeting is any
// timestep where the agg shares a room with exactly one other character.
// Each victim is recorded once, at their first such meeting.
func decodeS7(enc *encoder.Encoded, res *satsolver.Result, r *Result, priv *PrivFacts) error {
	agg, err := lookupTrue(enc, res, encoder.S7AggVar, enc.Chars)
	if err != nil {
		return fmt.Errorf("s7 aggrosassin: %w", err)
	}
	priv.Aggrosassin = &agg

	seen := map[string]bool{}
	var victims []string
	for t := 0; t < enc.T; t++ {
		room := r.Schedule[agg][t]
		if r.ByTime[t][room] != 2 {
			continue
		}
		for _, c := range enc.Chars {
			if c == agg {
				continue
			}
			if r.Schedule[c][t] == room && !seen[c] {
				seen[c] = true
				victims = append(victims, c)
			}
		}
	}
	priv.Victims = victims
	return nil
}

// decodeS8 finds the freeze carrier's role variable, then re-derives
// freeze events by replaying the schedule: whenever the carrier is alone
// with someone, that person is frozen from that timestep on. A victim's
// kill time is recorded at their first such meeting.
func decodeS8(enc *encoder.Encoded, res *satsolver.Result, r *Result, priv *PrivFacts) error {
	carrier, err := lookupTrue(enc, res, encoder.S8FreezeVar, enc.Chars)
	if err != nil {
		return fmt.Errorf("s8 freeze carrier: %w", err)
	}

	killTime := map[string]int{}
	var victims []string
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
				if _, already := killTime[c]; !already {
					killTime[c] = t + 1
					victims = append(victims, c)
				}
			}
		}
	}

	priv.Freeze = &FreezeFacts{
		Carrier:  carrier,
		Victims:  victims,
		KillTime: killTime,
	}
	return nil
}

// decodeS9 finds the doctor and the frozen-at-start set directly from
// their role variables, then re-derives heal events by replaying the
// schedule: a frozen character's heal is the first timestep the doctor
// shares their room.
func decodeS9(enc *encoder.Encoded, res *satsolver.Result, r *Result, priv *PrivFacts) error {
	doctor, err := lookupTrue(enc, res, encoder.S9DoctorVar, enc.Chars)
	if err != nil {
		return fmt.Errorf("s9 doctor: %w", err)
	}

	var frozen []string
	for _, c := range enc.Chars {
		id, ok := enc.Pool.Lookup(encoder.S9FrozenVar(c))
		if ok && res.Value(id) {
			frozen = append(frozen, c)
		}
	}

	var heals []HealEvent
	healed := map[string]bool{}
	for t := 0; t < enc.T; t++ {
		docRoom := r.Schedule[doctor][t]
		for _, c := range frozen {
			if healed[c] {
				continue
			}
			if r.Schedule[c][t] == docRoom {
				healed[c] = true
				heals = append(heals, HealEvent{Character: c, Time: t + 1})
			}
		}
	}

	priv.Doctor = &DoctorFacts{
		Doctor: doctor,
		Frozen: frozen,
		Heals:  heals,
	}
	return nil
}
