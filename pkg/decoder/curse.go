package decoder

import (
	"sort"

	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/rng"
)

// curseStreamSalt separates the decoder's origin-disambiguation draw from
// both the encoder's and the solver's RNG streams, all derived from the
// same resolved seed.
const curseStreamSalt uint64 = 0xC2B2AE3D27D4EB4F

// decodeS14 simulates the Curse of Amarinta handoff for every candidate
// origin, picks the reported origin per spec.md §4.6's disambiguation
// rule, and records every origin whose time-6 cursed set matches it.
func decodeS14(enc *encoder.Encoded, r *Result, priv *PrivFacts) {
	sixth := 6
	if enc.T < sixth {
		sixth = enc.T
	}
	sixth--

	setKey := func(set map[string]bool) string {
		var names []string
		for c := range set {
			if set[c] {
				names = append(names, c)
			}
		}
		sort.Strings(names)
		key := ""
		for _, n := range names {
			key += n + ","
		}
		return key
	}

	timeSixSet := make(map[string]map[string]bool, len(enc.Chars))
	timeSixKey := make(map[string]string, len(enc.Chars))
	for _, origin := range enc.Chars {
		cursed := simulateCurse(enc, r, origin, sixth)
		timeSixSet[origin] = cursed
		timeSixKey[origin] = setKey(cursed)
	}

	keyCount := map[string]int{}
	for _, k := range timeSixKey {
		keyCount[k]++
	}

	var uniqueOrigins []string
	for _, origin := range enc.Chars {
		if keyCount[timeSixKey[origin]] == 1 {
			uniqueOrigins = append(uniqueOrigins, origin)
		}
	}

	pool := uniqueOrigins
	if len(pool) == 0 {
		pool = append([]string(nil), enc.Chars...)
	}

	rand := rng.New(enc.Seed ^ curseStreamSalt)
	chosen := pool[rand.Intn(len(pool))]
	chosenKey := timeSixKey[chosen]

	var possible []string
	for _, origin := range enc.Chars {
		if timeSixKey[origin] == chosenKey {
			possible = append(possible, origin)
		}
	}
	sort.Strings(possible)

	var cursedAtSix []string
	for c, on := range timeSixSet[chosen] {
		if on {
			cursedAtSix = append(cursedAtSix, c)
		}
	}
	sort.Strings(cursedAtSix)

	byOrigin := map[string][]string{}
	for _, origin := range enc.Chars {
		var names []string
		for c, on := range timeSixSet[origin] {
			if on {
				names = append(names, c)
			}
		}
		sort.Strings(names)
		byOrigin[origin] = names
	}

	priv.CurseOfAmarinta = &CurseFacts{
		Origin:                chosen,
		PossibleOrigins:       possible,
		CursedAtTime6:         cursedAtSix,
		CursedAtTime6ByOrigin: byOrigin,
	}
}

// simulateCurse runs the handoff from t=1 (index 0, seeded to origin)
// through timestep upTo (0-based index), returning the cursed set at
// upTo.
func simulateCurse(enc *encoder.Encoded, r *Result, origin string, upTo int) map[string]bool {
	cursed := map[string]bool{origin: true}
	for t := 1; t <= upTo; t++ {
		roomOccupants := map[string][]string{}
		for _, c := range enc.Chars {
			roomOccupants[r.Schedule[c][t]] = append(roomOccupants[r.Schedule[c][t]], c)
		}
		next := map[string]bool{}
		for c, on := range cursed {
			next[c] = on
		}
		for _, members := range roomOccupants {
			hasCursed, hasUncursed := false, false
			for _, c := range members {
				if cursed[c] {
					hasCursed = true
				} else {
					hasUncursed = true
				}
			}
			if hasCursed && hasUncursed {
				for _, c := range members {
					next[c] = !cursed[c]
				}
			}
		}
		cursed = next
	}
	return cursed
}
