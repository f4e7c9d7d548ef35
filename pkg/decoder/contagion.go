package decoder

import (
	"sort"

	"github.com/kronologic/kronogen/pkg/encoder"
)

// decodeS10 simulates the contagion timeline described in spec.md §4.6:
// at each timestep, anyone in the contagious room is marked infected,
// then every room holding at least one already-infected occupant has
// its whole occupancy marked infected. The room pass sees both earlier
// infections and this timestep's contagious-room marks; characters don't
// move mid-timestep and rooms are disjoint, so a single per-room pass per
// timestep is all transitivity requires.
func decodeS10(enc *encoder.Encoded, r *Result, priv *PrivFacts) {
	room := enc.Graph.AlphabeticallyFirst()

	infected := map[string]bool{}
	infectionTime := map[string]int{}
	newlyInfected := make([][]string, enc.T)

	for t := 0; t < enc.T; t++ {
		roomOccupants := map[string][]string{}
		for _, c := range enc.Chars {
			roomOccupants[r.Schedule[c][t]] = append(roomOccupants[r.Schedule[c][t]], c)
		}

		toInfect := map[string]bool{}
		for _, c := range roomOccupants[room] {
			toInfect[c] = true
		}
		for _, members := range roomOccupants {
			any := false
			for _, c := range members {
				if infected[c] || toInfect[c] {
					any = true
					break
				}
			}
			if any {
				for _, c := range members {
					toInfect[c] = true
				}
			}
		}

		var newThisT []string
		for _, c := range enc.Chars {
			if toInfect[c] && !infected[c] {
				infected[c] = true
				infectionTime[c] = t + 1
				newThisT = append(newThisT, c)
			}
		}
		sort.Strings(newThisT)
		newlyInfected[t] = newThisT
	}

	var order []string
	var never []string
	for _, c := range enc.Chars {
		if infected[c] {
			order = append(order, c)
		} else {
			never = append(never, c)
		}
	}
	sort.Slice(order, func(i, j int) bool {
		ti, tj := infectionTime[order[i]], infectionTime[order[j]]
		if ti != tj {
			return ti < tj
		}
		return order[i] < order[j]
	})

	priv.Contagion = &ContagionFacts{
		ContagiousRoom: room,
		InfectionTimes: infectionTime,
		InfectionOrder: order,
		NewlyInfected:  newlyInfected,
		NeverInfected:  never,
	}
}
