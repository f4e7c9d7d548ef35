package validation

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/decoder"
	"github.com/kronologic/kronogen/pkg/encoder"
)

// CheckUniqueLocation verifies every character occupies exactly one room
// at every timestep — ByTime's per-room counts for a given t must sum to
// len(enc.Chars).
func CheckUniqueLocation(enc *encoder.Encoded, r *decoder.Result) ConstraintResult {
	for t := 0; t < enc.T; t++ {
		total := 0
		for _, n := range r.ByTime[t] {
			total += n
		}
		if total != len(enc.Chars) {
			return NewHardResult("unique-location", false,
				fmt.Sprintf("t=%d: occupancy sums to %d, want %d", t, total, len(enc.Chars)))
		}
	}
	for _, c := range enc.Chars {
		if len(r.Schedule[c]) != enc.T {
			return NewHardResult("unique-location", false,
				fmt.Sprintf("%s has %d schedule entries, want %d", c, len(r.Schedule[c]), enc.T))
		}
	}
	return NewHardResult("unique-location", true, "every character occupies exactly one room per timestep")
}

// CheckMovementLegality verifies every consecutive room pair a character
// visits is either the same known room or adjacent in the room graph. A
// repeated room always passes: whether that character was permitted to
// stay at that timestep is not checked.
func CheckMovementLegality(enc *encoder.Encoded, r *decoder.Result) ConstraintResult {
	for _, c := range enc.Chars {
		sched := r.Schedule[c]
		for t := 0; t < len(sched)-1; t++ {
			from, to := sched[t], sched[t+1]
			if from == to {
				if !enc.Graph.HasRoom(from) {
					return NewHardResult("movement-legality", false,
						fmt.Sprintf("%s occupies unknown room %q at t=%d", c, from, t))
				}
				continue
			}
			adjacent := false
			for _, n := range enc.Graph.Adjacency[from] {
				if n == to {
					adjacent = true
					break
				}
			}
			if !adjacent {
				return NewHardResult("movement-legality", false,
					fmt.Sprintf("%s moves from %s to %s at t=%d, not adjacent", c, from, to, t))
			}
		}
	}
	return NewHardResult("movement-legality", true, "every transition is a self-loop or a graph edge")
}

// CheckScenarioConsistency re-checks each active scenario's decoded Priv
// facts against the schedule that produced them, per the predicates
// spec.md §8 names (e.g. S4: every occupancy-2 room is occupied by
// exactly the bomb duo; S7: the agg's 1-on-1 count meets the quota and
// every occupancy-2 room contains the agg; S10: infection_order is
// monotone non-decreasing in first-infection time).
func CheckScenarioConsistency(enc *encoder.Encoded, r *decoder.Result) ConstraintResult {
	f := enc.Scenarios

	if f.S2 && r.Priv.Phantom != nil {
		phantom := *r.Priv.Phantom
		for t := 0; t < enc.T; t++ {
			if r.ByTime[t][r.Schedule[phantom][t]] != 1 {
				return NewHardResult("scenario-consistency", false,
					fmt.Sprintf("s2: phantom %s co-located at t=%d", phantom, t))
			}
		}
	}

	if f.S4 && len(r.Priv.BombDuo) == 2 {
		duo := map[string]bool{r.Priv.BombDuo[0]: true, r.Priv.BombDuo[1]: true}
		for t := 0; t < enc.T; t++ {
			for room, n := range r.ByTime[t] {
				if n != 2 {
					continue
				}
				for _, c := range enc.Chars {
					if r.Schedule[c][t] == room && !duo[c] {
						return NewHardResult("scenario-consistency", false,
							fmt.Sprintf("s4: non-bomber %s in occupancy-2 room %s at t=%d", c, room, t))
					}
				}
			}
		}
	}

	if f.S7 && r.Priv.Aggrosassin != nil {
		agg := *r.Priv.Aggrosassin
		minKills := (enc.T + 1) / 2
		if len(r.Priv.Victims) < minKills {
			return NewHardResult("scenario-consistency", false,
				fmt.Sprintf("s7: agg %s has %d victims, want at least %d", agg, len(r.Priv.Victims), minKills))
		}
		for t := 0; t < enc.T; t++ {
			for room, n := range r.ByTime[t] {
				if n == 2 && r.Schedule[agg][t] != room {
					return NewHardResult("scenario-consistency", false,
						fmt.Sprintf("s7: occupancy-2 room %s at t=%d does not contain agg %s", room, t, agg))
				}
			}
		}
	}

	if f.S10 && r.Priv.Contagion != nil {
		c := r.Priv.Contagion
		for i := 1; i < len(c.InfectionOrder); i++ {
			prev := c.InfectionTimes[c.InfectionOrder[i-1]]
			cur := c.InfectionTimes[c.InfectionOrder[i]]
			if cur < prev {
				return NewHardResult("scenario-consistency", false,
					fmt.Sprintf("s10: infection_order not monotone at index %d", i))
			}
		}
	}

	return NewHardResult("scenario-consistency", true, "active scenario facts are consistent with the schedule")
}
