package puzzle

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kronologic/kronogen/pkg/decoder"
)

// RenderText creates a basic text representation of a decoded puzzle for
// debugging: a per-character schedule grid followed by scenario-specific
// private facts.
func RenderText(r *decoder.Result) string {
	if r == nil {
		return "No puzzle data available"
	}

	var sb strings.Builder

	sb.WriteString("╔════════════════════════════════════════════════════════════╗\n")
	sb.WriteString("║              KRONOGEN PUZZLE - TEXT VIEW                    ║\n")
	sb.WriteString("╚════════════════════════════════════════════════════════════╝\n\n")

	chars := sortedKeys(r.Schedule)
	t := 0
	if len(chars) > 0 {
		t = len(r.Schedule[chars[0]])
	}

	sb.WriteString("📊 STATISTICS:\n")
	sb.WriteString(fmt.Sprintf("   Characters: %d\n", len(chars)))
	sb.WriteString(fmt.Sprintf("   Timesteps: %d\n", t))
	sb.WriteString(fmt.Sprintf("   Variables: %d\n", r.Stats.TotalVars))
	sb.WriteString(fmt.Sprintf("   Clauses: %d (avg length %.2f)\n", r.Stats.TotalClauses, r.Stats.AvgClauseLength))
	sb.WriteString(fmt.Sprintf("   Solve time: %dms\n\n", r.Stats.SolveTimeMs))

	sb.WriteString("🗓️  SCHEDULE:\n")
	for _, c := range chars {
		sb.WriteString(fmt.Sprintf("   %-12s", c))
		for ti, room := range r.Schedule[c] {
			if ti > 0 {
				sb.WriteString(" → ")
			}
			sb.WriteString(room)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(renderPrivFacts(r))

	return sb.String()
}

func renderPrivFacts(r *decoder.Result) string {
	var sb strings.Builder
	p := r.Priv
	sb.WriteString("🔍 PRIVATE FACTS:\n")

	if p.Assassin != nil {
		sb.WriteString(fmt.Sprintf("   Assassin: %s\n", *p.Assassin))
	}
	if p.Victim != nil {
		sb.WriteString(fmt.Sprintf("   Poison victim: %s\n", *p.Victim))
	}
	if p.PoisonTime != nil && p.PoisonRoom != nil {
		sb.WriteString(fmt.Sprintf("   Poisoned at t=%d in %s\n", *p.PoisonTime, *p.PoisonRoom))
	}
	if p.Phantom != nil {
		sb.WriteString(fmt.Sprintf("   Phantom: %s\n", *p.Phantom))
	}
	if len(p.BombDuo) > 0 {
		sb.WriteString(fmt.Sprintf("   Bomb duo: %s\n", strings.Join(p.BombDuo, " & ")))
	}
	if len(p.Lovers) > 0 {
		sb.WriteString(fmt.Sprintf("   Lovers: %s\n", strings.Join(p.Lovers, " & ")))
	}
	if p.Aggrosassin != nil {
		sb.WriteString(fmt.Sprintf("   Aggrosassin: %s (victims: %s)\n", *p.Aggrosassin, strings.Join(p.Victims, ", ")))
	}
	if p.Freeze != nil {
		sb.WriteString(fmt.Sprintf("   Freeze carrier: %s (froze: %s)\n", p.Freeze.Carrier, strings.Join(p.Freeze.Victims, ", ")))
	}
	if p.Doctor != nil {
		sb.WriteString(fmt.Sprintf("   Doctor: %s (healed %d)\n", p.Doctor.Doctor, len(p.Doctor.Heals)))
	}
	if p.Contagion != nil {
		sb.WriteString(fmt.Sprintf("   Contagious room: %s (infected: %d, never: %d)\n",
			p.Contagion.ContagiousRoom, len(p.Contagion.InfectionOrder), len(p.Contagion.NeverInfected)))
	}
	if p.Vault != nil {
		sb.WriteString(fmt.Sprintf("   Vault key holder: %s (companions: %d)\n", p.Vault.KeyHolder, len(p.Vault.DistinctCompanions)))
	}
	if p.GlueRoom != nil {
		sb.WriteString(fmt.Sprintf("   Glue room: %s\n", p.GlueRoom.Room))
	}
	if p.GlueShoes != nil {
		sb.WriteString(fmt.Sprintf("   Glue shoes carrier: %s (events: %d)\n", p.GlueShoes.Carrier, len(p.GlueShoes.Glued)))
	}
	if p.CurseOfAmarinta != nil {
		sb.WriteString(fmt.Sprintf("   Curse origin: %s (possible: %s)\n", p.CurseOfAmarinta.Origin, strings.Join(p.CurseOfAmarinta.PossibleOrigins, ", ")))
	}
	if p.WorldTravelers != nil {
		sb.WriteString(fmt.Sprintf("   Podium: %s, %s, %s\n", p.WorldTravelers.First, p.WorldTravelers.Second, p.WorldTravelers.Third))
	}
	if p.Homebodies != nil {
		sb.WriteString(fmt.Sprintf("   Homebody: %s\n", p.Homebodies.Homebody))
	}
	if p.SingersJewels != nil {
		if p.SingersJewels.FirstThief != nil {
			sb.WriteString(fmt.Sprintf("   Jewels: first thief %s, final holder %s (passes: %d)\n",
				*p.SingersJewels.FirstThief, p.SingersJewels.FinalHolder, len(p.SingersJewels.Passes)))
		} else {
			sb.WriteString("   Jewels: no alone moment occurred\n")
		}
	}

	return sb.String()
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
