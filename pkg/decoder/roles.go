package decoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/satsolver"
)

func decodeS1(enc *encoder.Encoded, res *satsolver.Result, priv *PrivFacts) error {
	assassin := enc.Chars[0]
	priv.Assassin = &assassin

	victim, err := lookupTrue(enc, res, encoder.S1VictimVar, enc.Chars[1:])
	if err != nil {
		return fmt.Errorf("s1 victim: %w", err)
	}
	priv.Victim = &victim

	ptID := -1
	for t := 0; t < enc.T; t++ {
		id, ok := enc.Pool.Lookup(encoder.S1PoisonTimeVar(t))
		if ok && res.Value(id) {
			ptID = t
		}
	}
	if ptID < 0 {
		return fmt.Errorf("s1: no poison time was asserted true")
	}
	poisonTime := ptID + 1
	priv.PoisonTime = &poisonTime

	room, err := lookupTrue(enc, res, encoder.S1PoisonRoomVar, enc.Graph.Rooms)
	if err != nil {
		return fmt.Errorf("s1 poison room: %w", err)
	}
	priv.PoisonRoom = &room
	return nil
}

func decodeS2(enc *encoder.Encoded, res *satsolver.Result, priv *PrivFacts) error {
	phantom, err := lookupTrue(enc, res, encoder.S2PhantomVar, enc.Chars)
	if err != nil {
		return fmt.Errorf("s2 phantom: %w", err)
	}
	priv.Phantom = &phantom
	return nil
}

func decodeS4(enc *encoder.Encoded, res *satsolver.Result, priv *PrivFacts) error {
	var duo []string
	for _, c := range enc.Chars {
		id, ok := enc.Pool.Lookup(encoder.S4BomberVar(c))
		if ok && res.Value(id) {
			duo = append(duo, c)
		}
	}
	if len(duo) != 2 {
		return fmt.Errorf("s4: expected exactly two bombers, got %v", duo)
	}
	priv.BombDuo = duo
	return nil
}

func decodeS5(enc *encoder.Encoded, res *satsolver.Result, priv *PrivFacts) error {
	var lovers [2]string
	for which := 1; which <= 2; which++ {
		found := ""
		for _, c := range enc.Chars {
			id, ok := enc.Pool.Lookup(encoder.S5LoverVar(which, c))
			if ok && res.Value(id) {
				found = c
				break
			}
		}
		if found == "" {
			return fmt.Errorf("s5: lover slot %d has no holder", which)
		}
		lovers[which-1] = found
	}
	priv.Lovers = lovers[:]
	return nil
}

func decodeS11(enc *encoder.Encoded, res *satsolver.Result, r *Result, priv *PrivFacts) error {
	holder, err := lookupTrue(enc, res, encoder.S11KeyHolderVar, enc.Chars)
	if err != nil {
		return fmt.Errorf("s11 key holder: %w", err)
	}
	vault := enc.Graph.AlphabeticallyFirst()

	companionVisits := map[string][]int{}
	for _, c := range enc.Chars {
		if c == holder {
			continue
		}
		for t := 0; t < enc.T; t++ {
			if r.Schedule[c][t] == vault && r.Schedule[holder][t] == vault {
				companionVisits[c] = append(companionVisits[c], t+1)
			}
		}
	}
	var distinct []string
	for _, c := range enc.Chars {
		if len(companionVisits[c]) > 0 {
			distinct = append(distinct, c)
		}
	}

	priv.Vault = &VaultFacts{
		KeyHolder:          holder,
		CompanionVisits:    companionVisits,
		DistinctCompanions: distinct,
	}
	return nil
}

func decodeS15(enc *encoder.Encoded, res *satsolver.Result, r *Result, priv *PrivFacts) error {
	podium := make([]string, 0, 3)
	for which := 1; which <= 3; which++ {
		found := ""
		for _, c := range enc.Chars {
			id, ok := enc.Pool.Lookup(encoder.S15PodiumVar(which, c))
			if ok && res.Value(id) {
				found = c
				break
			}
		}
		if found == "" {
			break
		}
		podium = append(podium, found)
	}

	counts := map[string]int{}
	for _, c := range enc.Chars {
		counts[c] = len(r.Visits[c])
	}

	facts := &TravelersFacts{VisitCounts: counts}
	if len(podium) > 0 {
		facts.First = podium[0]
	}
	if len(podium) > 1 {
		facts.Second = podium[1]
	}
	if len(podium) > 2 {
		facts.Third = podium[2]
	}
	priv.WorldTravelers = facts
	return nil
}

func decodeS16(enc *encoder.Encoded, res *satsolver.Result, r *Result, priv *PrivFacts) error {
	homebody, err := lookupTrue(enc, res, encoder.S16HomebodyVar, enc.Chars)
	if err != nil {
		return fmt.Errorf("s16 homebody: %w", err)
	}
	counts := map[string]int{}
	for _, c := range enc.Chars {
		n := 0
		for range r.Visits[c] {
			n++
		}
		counts[c] = n
	}
	priv.Homebodies = &HomebodiesFacts{Homebody: homebody, VisitCounts: counts}
	return nil
}
