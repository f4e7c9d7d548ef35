package decoder

// Result is the fully decoded output of one solve: the schedule every
// character follows, derived occupancy tables, and scenario-specific
// private facts.
type Result struct {
	// Schedule maps a character to its room at each of the T timesteps,
	// index 0 being the first timestep.
	Schedule map[string][]string

	// ByTime[t] maps room name to occupant count at timestep t (0-based).
	ByTime []map[string]int

	// Visits[c][r] is how many timesteps character c spent in room r.
	Visits map[string]map[string]int

	Priv  PrivFacts
	Meta  Meta
	Stats Stats
}

// Meta carries bookkeeping useful to callers that want to re-derive
// facts directly from the variable pool (e.g. a debug SVG renderer).
type Meta struct {
	Vars int
}

// Stats reports solve-time statistics, surfaced verbatim in the CLI's
// JSON export.
type Stats struct {
	TotalVars       int
	TotalClauses    int
	AvgClauseLength float64
	SolveTimeMs     int64
}

// HealEvent records one Doctor's Cure heal.
type HealEvent struct {
	Character string
	Time      int // 1-based
}

// JewelPass records one jewel handoff in the Singer's Jewels chain.
type JewelPass struct {
	From string
	To   string
	Time int // 1-based
	Room string
}

// ContagionFacts is the decoded Contagion timeline.
type ContagionFacts struct {
	ContagiousRoom string
	InfectionTimes map[string]int // character -> first infected timestep (1-based); absent if never infected
	InfectionOrder []string       // by time, ties broken alphabetically
	NewlyInfected  [][]string     // index t (0-based) -> characters newly infected at timestep t+1
	NeverInfected  []string
}

// CurseFacts is the decoded Curse of Amarinta handoff.
type CurseFacts struct {
	Origin            string
	PossibleOrigins    []string
	CursedAtTime6      []string
	CursedAtTime6ByOrigin map[string][]string
}

// VaultFacts is the decoded Vault scenario.
type VaultFacts struct {
	KeyHolder          string
	CompanionVisits    map[string][]int // companion -> 1-based timesteps they joined the holder in the vault
	DistinctCompanions []string
}

// GlueRoomFacts is the decoded Glue Room scenario.
type GlueRoomFacts struct {
	Room          string
	FirstEntryAt  map[string]int // character -> first 1-based entry timestep; absent if never entered
}

// GlueShoesFacts is the decoded Glue Shoes scenario.
type GlueShoesFacts struct {
	Carrier string
	Glued   []GlueShoeEvent
}

// GlueShoeEvent records one carrier/victim meeting that glued the victim
// in place.
type GlueShoeEvent struct {
	Victim string
	Time   int // 1-based, the meeting timestep
	Room   string
}

// TravelersFacts is the decoded World Travelers scenario.
type TravelersFacts struct {
	First, Second, Third string
	VisitCounts          map[string]int
}

// HomebodiesFacts is the decoded Homebodies scenario.
type HomebodiesFacts struct {
	Homebody     string
	VisitCounts  map[string]int
}

// FreezeFacts is the decoded Freeze scenario.
type FreezeFacts struct {
	Carrier  string
	Victims  []string // characters frozen at least once, first-frozen order
	KillTime map[string]int // victim -> 1-based timestep they were frozen
}

// DoctorFacts is the decoded Doctor's Cure scenario.
type DoctorFacts struct {
	Doctor  string
	Frozen  []string
	Heals   []HealEvent
}

// PrivFacts carries every scenario-specific field; a field is nil/empty
// unless its scenario was selected.
type PrivFacts struct {
	Phantom      *string
	Lovers       []string
	Assassin     *string
	Victim       *string
	PoisonTime   *int
	PoisonRoom   *string
	BombDuo      []string
	Aggrosassin  *string
	Victims      []string
	Freeze       *FreezeFacts
	Doctor       *DoctorFacts
	Contagion    *ContagionFacts
	Vault        *VaultFacts
	GlueRoom     *GlueRoomFacts
	GlueShoes    *GlueShoesFacts
	CurseOfAmarinta *CurseFacts
	WorldTravelers  *TravelersFacts
	Homebodies      *HomebodiesFacts
	SingersJewels   *JewelsFacts
}

// JewelsFacts is the decoded Singer's Jewels scenario.
type JewelsFacts struct {
	Room        string
	FirstThief  *string // nil when no alone moment exists (open question, see DESIGN.md)
	FinalHolder string
	Passes      []JewelPass
}
