package decoder

import (
	"testing"
	"time"

	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/rng"
	"github.com/kronologic/kronogen/pkg/satsolver"
)

func fourRoomConfig() encoder.Config {
	seed := uint64(7)
	return encoder.Config{
		Rooms:     []string{"A", "B", "C", "D"},
		Edges:     [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
		Chars:     []string{"W", "X", "Y", "Z"},
		T:         6,
		AllowStay: true,
		Seed:      &seed,
	}
}

func solve(t *testing.T, cfg encoder.Config) *Result {
	t.Helper()
	enc, err := encoder.Encode(cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	s := satsolver.NewSolver(enc.Pool.Count(), enc.CL.Clauses(), enc.Seed^rng.SolverStreamSalt, 0)
	res := s.Solve()
	if res.Status != satsolver.StatusSAT {
		t.Fatalf("status = %v, want SAT", res.Status)
	}
	result, err := Decode(enc, res, time.Millisecond)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	return result
}

func TestDecode_ScheduleCoversEveryCharacterAndTimestep(t *testing.T) {
	cfg := fourRoomConfig()
	r := solve(t, cfg)
	for _, c := range cfg.Chars {
		if len(r.Schedule[c]) != cfg.T {
			t.Fatalf("schedule for %s has %d entries, want %d", c, len(r.Schedule[c]), cfg.T)
		}
	}
	if len(r.ByTime) != cfg.T {
		t.Fatalf("ByTime has %d entries, want %d", len(r.ByTime), cfg.T)
	}
}

func TestDecode_S1ProducesConsistentPoisonMoment(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S1 = true
	r := solve(t, cfg)

	if r.Priv.Assassin == nil || *r.Priv.Assassin != cfg.Chars[0] {
		t.Fatalf("assassin = %v, want %s", r.Priv.Assassin, cfg.Chars[0])
	}
	if r.Priv.Victim == nil || r.Priv.PoisonTime == nil || r.Priv.PoisonRoom == nil {
		t.Fatal("s1 priv facts incomplete")
	}

	t0 := *r.Priv.PoisonTime - 1
	assassinRoom := r.Schedule[*r.Priv.Assassin][t0]
	victimRoom := r.Schedule[*r.Priv.Victim][t0]
	if assassinRoom != *r.Priv.PoisonRoom || victimRoom != *r.Priv.PoisonRoom {
		t.Fatalf("assassin/victim not both in poison room at poison time: %s vs %s vs %s", assassinRoom, victimRoom, *r.Priv.PoisonRoom)
	}
	if r.ByTime[t0][*r.Priv.PoisonRoom] != 2 {
		t.Fatalf("poison room occupancy at poison time = %d, want 2", r.ByTime[t0][*r.Priv.PoisonRoom])
	}
}

func TestDecode_S2PhantomNeverMeetsAnyone(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S2 = true
	r := solve(t, cfg)

	if r.Priv.Phantom == nil {
		t.Fatal("no phantom decoded")
	}
	phantom := *r.Priv.Phantom
	for t0 := 0; t0 < cfg.T; t0++ {
		room := r.Schedule[phantom][t0]
		if r.ByTime[t0][room] != 1 {
			t.Fatalf("phantom %s co-located at t=%d in %s (occupancy %d)", phantom, t0, room, r.ByTime[t0][room])
		}
	}
}

func TestDecode_S10ContagionOrderIsMonotoneInTime(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S10 = true
	r := solve(t, cfg)

	c := r.Priv.Contagion
	if c == nil {
		t.Fatal("no contagion facts decoded")
	}
	for i := 1; i < len(c.InfectionOrder); i++ {
		prev := c.InfectionTimes[c.InfectionOrder[i-1]]
		cur := c.InfectionTimes[c.InfectionOrder[i]]
		if cur < prev {
			t.Fatalf("infection_order not monotone: %s@%d before %s@%d", c.InfectionOrder[i-1], prev, c.InfectionOrder[i], cur)
		}
	}
}

func TestDecode_S14CurseOriginIsAmongCandidates(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S14 = true
	r := solve(t, cfg)

	curse := r.Priv.CurseOfAmarinta
	if curse == nil {
		t.Fatal("no curse facts decoded")
	}
	found := false
	for _, c := range cfg.Chars {
		if c == curse.Origin {
			found = true
		}
	}
	if !found {
		t.Fatalf("origin %s not among characters %v", curse.Origin, cfg.Chars)
	}
	originInPossible := false
	for _, o := range curse.PossibleOrigins {
		if o == curse.Origin {
			originInPossible = true
		}
	}
	if !originInPossible {
		t.Fatalf("chosen origin %s missing from its own possible_origins %v", curse.Origin, curse.PossibleOrigins)
	}
}

// TestDecode_S16HomebodyMatchesWorkedExample reproduces spec.md §8's
// worked example #6 literally: 6 rooms, 4 chars, T=6, seed=5. The
// visit-count multiset must be {1,2,3,4}, the homebody (deterministically
// cfg.Chars[len-1]) must occupy one room for all 6 timesteps, and every
// other character must move every turn.
func TestDecode_S16HomebodyMatchesWorkedExample(t *testing.T) {
	seed := uint64(5)
	cfg := encoder.Config{
		Rooms: []string{"A", "B", "C", "D", "E", "F"},
		Edges: [][2]string{
			{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "E"}, {"E", "F"}, {"F", "A"},
		},
		Chars:     []string{"W", "X", "Y", "Z"},
		T:         6,
		AllowStay: true,
		Seed:      &seed,
	}
	cfg.Scenarios.S16 = true
	r := solve(t, cfg)

	h := r.Priv.Homebodies
	if h == nil {
		t.Fatal("no homebody facts decoded")
	}
	wantHomebody := cfg.Chars[len(cfg.Chars)-1]
	if h.Homebody != wantHomebody {
		t.Fatalf("homebody = %s, want %s", h.Homebody, wantHomebody)
	}

	counts := map[int]int{}
	for _, c := range cfg.Chars {
		counts[h.VisitCounts[c]]++
	}
	for _, want := range []int{1, 2, 3, 4} {
		if counts[want] != 1 {
			t.Fatalf("visit-count multiset = %v, want exactly one character with each of 1,2,3,4", h.VisitCounts)
		}
	}
	if h.VisitCounts[wantHomebody] != 1 {
		t.Fatalf("homebody %s visit count = %d, want 1", wantHomebody, h.VisitCounts[wantHomebody])
	}

	for t0 := 1; t0 < cfg.T; t0++ {
		if r.Schedule[wantHomebody][t0] != r.Schedule[wantHomebody][0] {
			t.Fatalf("homebody %s moved: %s at t=0 vs %s at t=%d", wantHomebody, r.Schedule[wantHomebody][0], r.Schedule[wantHomebody][t0], t0)
		}
	}
	for _, c := range cfg.Chars {
		if c == wantHomebody {
			continue
		}
		for t0 := 0; t0 < cfg.T-1; t0++ {
			if r.Schedule[c][t0] == r.Schedule[c][t0+1] {
				t.Fatalf("non-homebody %s stayed in %s between t=%d and t=%d", c, r.Schedule[c][t0], t0, t0+1)
			}
		}
	}
}

// TestDecode_S15TravelersMatchesWorkedExampleCounts reproduces the
// numeric claims of spec.md §8 worked example #5 (4-room map, 3 chars,
// T=6, seed=3): the podium's visit counts are 4, 3, 2 and every
// non-podium character visits at most 1 distinct room. Which named
// character lands on which podium slot depends on the seeded shuffle,
// so only the counts are asserted here.
func TestDecode_S15TravelersMatchesWorkedExampleCounts(t *testing.T) {
	seed := uint64(3)
	cfg := encoder.Config{
		Rooms:     []string{"A", "B", "C", "D"},
		Edges:     [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}},
		Chars:     []string{"W", "X", "Y"},
		T:         6,
		AllowStay: true,
		Seed:      &seed,
	}
	cfg.Scenarios.S15 = true
	r := solve(t, cfg)

	travelers := r.Priv.WorldTravelers
	if travelers == nil {
		t.Fatal("no world travelers facts decoded")
	}
	if travelers.VisitCounts[travelers.First] != 4 {
		t.Fatalf("first = %s, visit count %d, want 4", travelers.First, travelers.VisitCounts[travelers.First])
	}
	if travelers.VisitCounts[travelers.Second] != 3 {
		t.Fatalf("second = %s, visit count %d, want 3", travelers.Second, travelers.VisitCounts[travelers.Second])
	}
	if travelers.VisitCounts[travelers.Third] != 2 {
		t.Fatalf("third = %s, visit count %d, want 2", travelers.Third, travelers.VisitCounts[travelers.Third])
	}
	podium := map[string]bool{travelers.First: true, travelers.Second: true, travelers.Third: true}
	for _, c := range cfg.Chars {
		if podium[c] {
			continue
		}
		if travelers.VisitCounts[c] > 1 {
			t.Fatalf("non-podium %s visited %d distinct rooms, want <= 1", c, travelers.VisitCounts[c])
		}
	}
}

// TestDecode_S12GlueRoomForcesPresenceAtSecondToLastEntry targets the
// boundary the joint-condition bug used to drop: an entry into the glue
// room at t = T-2 is still non-final (T-2 < T-1) and must still force
// presence at t+1.
func TestDecode_S12GlueRoomForcesPresenceAtSecondToLastEntry(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S12 = true
	r := solve(t, cfg)

	g := r.Priv.GlueRoom
	if g == nil {
		t.Fatal("no glue room facts decoded")
	}
	for _, c := range cfg.Chars {
		entryAt, ok := g.FirstEntryAt[c]
		if !ok {
			continue
		}
		t0 := entryAt - 1
		if t0 != cfg.T-2 {
			continue
		}
		if r.Schedule[c][t0+1] != g.Room {
			t.Fatalf("%s entered glue room %s at t=%d (second-to-last) but left at t=%d", c, g.Room, t0, t0+1)
		}
	}
}

func TestDecode_S13GlueShoesCarrierIsNotAVictim(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S13 = true
	r := solve(t, cfg)

	g := r.Priv.GlueShoes
	if g == nil {
		t.Fatal("no glue shoes facts decoded")
	}
	for _, ev := range g.Glued {
		if ev.Victim == g.Carrier {
			t.Fatalf("carrier %s recorded as its own victim at t=%d", g.Carrier, ev.Time)
		}
		room := r.Schedule[g.Carrier][ev.Time-1]
		if room != ev.Room || r.Schedule[ev.Victim][ev.Time-1] != ev.Room {
			t.Fatalf("glue event %+v not reflected in schedule (carrier in %s, victim in %s)", ev, room, r.Schedule[ev.Victim][ev.Time-1])
		}
	}
}

func TestDecode_S5LoversNeverShareARoom(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S5 = true
	r := solve(t, cfg)

	if len(r.Priv.Lovers) != 2 {
		t.Fatalf("lovers = %v, want exactly 2", r.Priv.Lovers)
	}
	a, b := r.Priv.Lovers[0], r.Priv.Lovers[1]
	for t0 := 0; t0 < cfg.T; t0++ {
		if r.Schedule[a][t0] == r.Schedule[b][t0] {
			t.Fatalf("lovers %s and %s shared room %s at t=%d", a, b, r.Schedule[a][t0], t0)
		}
	}
}

// TestDecode_S6LoversAreNotThePhantom exercises S6 (lovers who are also
// not the phantom), represented as the conjunction S2 && S5.
func TestDecode_S6LoversAreNotThePhantom(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S2 = true
	cfg.Scenarios.S5 = true
	r := solve(t, cfg)

	if r.Priv.Phantom == nil || len(r.Priv.Lovers) != 2 {
		t.Fatal("s6 priv facts incomplete")
	}
	phantom := *r.Priv.Phantom
	for _, lover := range r.Priv.Lovers {
		if lover == phantom {
			t.Fatalf("lover %s is also the phantom", lover)
		}
	}
}

func TestDecode_S7AggrosassinVictimsMetExactlyOnce(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S7 = true
	r := solve(t, cfg)

	if r.Priv.Aggrosassin == nil {
		t.Fatal("no aggrosassin decoded")
	}
	agg := *r.Priv.Aggrosassin
	for _, victim := range r.Priv.Victims {
		if victim == agg {
			t.Fatalf("aggrosassin %s recorded as its own victim", agg)
		}
	}
}

func TestDecode_S8FreezeVictimsRemainWithCarrierUntilFrozen(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S8 = true
	r := solve(t, cfg)

	f := r.Priv.Freeze
	if f == nil {
		t.Fatal("no freeze facts decoded")
	}
	for _, victim := range f.Victims {
		killT, ok := f.KillTime[victim]
		if !ok {
			t.Fatalf("victim %s missing from kill-time map", victim)
		}
		t0 := killT - 1
		if r.Schedule[f.Carrier][t0] != r.Schedule[victim][t0] {
			t.Fatalf("carrier %s and victim %s not co-located at recorded kill time t=%d", f.Carrier, victim, t0)
		}
	}
}

func TestDecode_S9DoctorHealsFrozenCharactersOnMeeting(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S9 = true
	r := solve(t, cfg)

	d := r.Priv.Doctor
	if d == nil {
		t.Fatal("no doctor facts decoded")
	}
	for _, heal := range d.Heals {
		t0 := heal.Time - 1
		if r.Schedule[d.Doctor][t0] != r.Schedule[heal.Character][t0] {
			t.Fatalf("heal event %+v not reflected in schedule", heal)
		}
	}
}

func TestDecode_S11VaultCompanionsVisitAlongsideKeyHolder(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Rooms = []string{"A", "B"}
	cfg.Edges = [][2]string{{"A", "B"}}
	cfg.Scenarios.S11 = true
	r := solve(t, cfg)

	v := r.Priv.Vault
	if v == nil {
		t.Fatal("no vault facts decoded")
	}
	vaultRoom := "A"
	for _, companion := range v.DistinctCompanions {
		visits := v.CompanionVisits[companion]
		if len(visits) == 0 {
			t.Fatalf("companion %s listed as distinct but has no recorded visits", companion)
		}
		for _, visitT := range visits {
			t0 := visitT - 1
			if r.Schedule[v.KeyHolder][t0] != vaultRoom || r.Schedule[companion][t0] != vaultRoom {
				t.Fatalf("companion visit %d for %s not reflected in schedule", visitT, companion)
			}
		}
	}
}

func TestDecode_S3JewelChainPassesStayConsistentWithSchedule(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S3 = true
	r := solve(t, cfg)

	j := r.Priv.SingersJewels
	if j == nil {
		t.Fatal("no jewels facts decoded")
	}
	for _, pass := range j.Passes {
		t0 := pass.Time - 1
		if r.Schedule[pass.From][t0] != pass.Room || r.Schedule[pass.To][t0] != pass.Room {
			t.Fatalf("jewel pass %+v not reflected in schedule", pass)
		}
	}
	if j.FirstThief != nil && j.FinalHolder == "" {
		t.Fatal("first thief recorded but no final holder")
	}
}

func TestDecode_S4BombDuoAreTheOnlyExactlyTwoOccupants(t *testing.T) {
	cfg := fourRoomConfig()
	cfg.Scenarios.S4 = true
	r := solve(t, cfg)

	if len(r.Priv.BombDuo) != 2 {
		t.Fatalf("bomb duo = %v, want 2 members", r.Priv.BombDuo)
	}
	duo := map[string]bool{r.Priv.BombDuo[0]: true, r.Priv.BombDuo[1]: true}
	for t0 := 0; t0 < cfg.T; t0++ {
		for room, n := range r.ByTime[t0] {
			if n != 2 {
				continue
			}
			for _, c := range cfg.Chars {
				if r.Schedule[c][t0] == room && !duo[c] {
					t.Fatalf("non-bomber %s present in occupancy-2 room %s at t=%d", c, room, t0)
				}
			}
		}
	}
}
