package encoder

import "fmt"

// checkPreconditions validates the scenario-specific requirements of
// spec.md §6/§4.5 against a structurally-valid Config. These are
// "encoder precondition failure" errors (spec.md §7, taxon 1): raised
// before any clause is emitted, never surfaced as UNSAT.
func checkPreconditions(cfg Config) error {
	f := cfg.Scenarios
	n := len(cfg.Chars)
	r := len(cfg.Rooms)

	if f.S11 && r < 2 {
		return fmt.Errorf("encoder: s11 (the vault) requires at least 2 rooms, got %d", r)
	}
	if f.S14 {
		if cfg.T < 6 {
			return fmt.Errorf("encoder: s14 (curse of amarinta) requires t >= 6, got %d", cfg.T)
		}
		if n < 2 {
			return fmt.Errorf("encoder: s14 (curse of amarinta) requires at least 2 characters, got %d", n)
		}
	}
	if f.S15 && r < 4 {
		return fmt.Errorf("encoder: s15 (world travelers) requires at least 4 rooms, got %d", r)
	}
	if f.S16 && n < 2 {
		return fmt.Errorf("encoder: s16 (homebodies) requires at least 2 characters, got %d", n)
	}
	if (f.S4 || f.S5 || f.S2 && f.S5) && n < 2 {
		return fmt.Errorf("encoder: this scenario requires at least 2 characters, got %d", n)
	}
	if f.S7 && n < 2 {
		return fmt.Errorf("encoder: s7 (aggrosassin) requires at least 2 characters, got %d", n)
	}
	if f.S9 {
		if n < 2 {
			return fmt.Errorf("encoder: s9 (doctor's cure) requires at least 2 characters, got %d", n)
		}
		ratio := f.S9FrozenRatio
		if ratio == 0 {
			ratio = 0.3
		}
		if ratio < 0.2 || ratio > 0.8 {
			return fmt.Errorf("encoder: s9FrozenRatio must be in [0.2, 0.8], got %v", ratio)
		}
	}
	if f.S1 && n < 2 {
		return fmt.Errorf("encoder: s1 (poison) requires at least 2 characters, got %d", n)
	}
	return nil
}

// stickyScenarioActive reports whether any scenario that requires the
// self-loop in adjacency (regardless of AllowStay) is selected.
func stickyScenarioActive(f ScenarioFlags) bool {
	return f.S8 || f.S9 || f.S12 || f.S13
}
