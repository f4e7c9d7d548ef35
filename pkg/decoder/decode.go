// Package decoder turns a satsolver.Result and the encoder.Encoded
// instance that produced it into a Result: a plain schedule, occupancy
// tables, and a scenario-specific Priv block. Role selections (who the
// phantom is, who the assassin's victim is, ...) are read directly off
// the satisfying assignment via the deterministic variable names each
// pkg/encoder scenario file exports. Everything else — contagion spread,
// curse handoff, jewel passing, glue entries — is a simulation run over
// the plain schedule, per spec.md §4.6.
package decoder

import (
	"fmt"
	"time"

	"github.com/kronologic/kronogen/pkg/encoder"
	"github.com/kronologic/kronogen/pkg/satsolver"
)

// Decode builds a Result from a satisfying assignment. It returns an
// error only if res is not SAT — callers should check res.Status first,
// but Decode re-checks defensively since a caller mistake here would
// otherwise silently fabricate a schedule from an empty assignment.
func Decode(enc *encoder.Encoded, res *satsolver.Result, solveTime time.Duration) (*Result, error) {
	if res.Status != satsolver.StatusSAT {
		return nil, fmt.Errorf("decoder: cannot decode a %v result", res.Status)
	}

	schedule := make(map[string][]string, len(enc.Chars))
	byTime := make([]map[string]int, enc.T)
	visits := make(map[string]map[string]int, len(enc.Chars))

	for t := 0; t < enc.T; t++ {
		byTime[t] = make(map[string]int, len(enc.Graph.Rooms))
	}
	for _, c := range enc.Chars {
		schedule[c] = make([]string, enc.T)
		visits[c] = make(map[string]int, len(enc.Graph.Rooms))
	}

	for _, c := range enc.Chars {
		for t := 0; t < enc.T; t++ {
			room, err := roomOf(enc, res, c, t)
			if err != nil {
				return nil, err
			}
			schedule[c][t] = room
			byTime[t][room]++
			visits[c][room]++
		}
	}

	r := &Result{
		Schedule: schedule,
		ByTime:   byTime,
		Visits:   visits,
		Meta:     Meta{Vars: enc.Pool.Count()},
		Stats: Stats{
			TotalVars:       enc.Pool.Count(),
			TotalClauses:    enc.CL.Len(),
			AvgClauseLength: enc.CL.AvgClauseLength(),
			SolveTimeMs:     solveTime.Milliseconds(),
		},
	}

	priv, err := decodePriv(enc, res, r)
	if err != nil {
		return nil, err
	}
	r.Priv = priv

	return r, nil
}

// roomOf finds the single room character c occupies at timestep t by
// scanning the graph's rooms and testing the placement variable's truth
// value. Exactly one must be true — the movement encoding's ExactlyOne
// constraint guarantees it for any genuinely satisfying assignment.
func roomOf(enc *encoder.Encoded, res *satsolver.Result, c string, t int) (string, error) {
	found := ""
	for _, r := range enc.Graph.Rooms {
		id, ok := enc.Pool.Lookup(fmt.Sprintf("X:%s:%d:%s", c, t, r))
		if !ok {
			continue
		}
		if res.Value(id) {
			if found != "" {
				return "", fmt.Errorf("decoder: %s occupies both %q and %q at t=%d", c, found, r, t)
			}
			found = r
		}
	}
	if found == "" {
		return "", fmt.Errorf("decoder: %s occupies no room at t=%d", c, t)
	}
	return found, nil
}

func decodePriv(enc *encoder.Encoded, res *satsolver.Result, r *Result) (PrivFacts, error) {
	var priv PrivFacts
	f := enc.Scenarios

	if f.S1 {
		if err := decodeS1(enc, res, &priv); err != nil {
			return priv, err
		}
	}
	if f.S2 {
		if err := decodeS2(enc, res, &priv); err != nil {
			return priv, err
		}
	}
	if f.S3 {
		decodeS3(enc, r, &priv)
	}
	if f.S4 {
		if err := decodeS4(enc, res, &priv); err != nil {
			return priv, err
		}
	}
	if f.S5 {
		if err := decodeS5(enc, res, &priv); err != nil {
			return priv, err
		}
	}
	if f.S7 {
		if err := decodeS7(enc, res, r, &priv); err != nil {
			return priv, err
		}
	}
	if f.S8 {
		if err := decodeS8(enc, res, r, &priv); err != nil {
			return priv, err
		}
	}
	if f.S9 {
		if err := decodeS9(enc, res, r, &priv); err != nil {
			return priv, err
		}
	}
	if f.S10 {
		decodeS10(enc, r, &priv)
	}
	if f.S11 {
		if err := decodeS11(enc, res, r, &priv); err != nil {
			return priv, err
		}
	}
	if f.S12 {
		if err := decodeS12(enc, res, r, &priv); err != nil {
			return priv, err
		}
	}
	if f.S13 {
		if err := decodeS13(enc, res, r, &priv); err != nil {
			return priv, err
		}
	}
	if f.S14 {
		decodeS14(enc, r, &priv)
	}
	if f.S15 {
		if err := decodeS15(enc, res, r, &priv); err != nil {
			return priv, err
		}
	}
	if f.S16 {
		if err := decodeS16(enc, res, r, &priv); err != nil {
			return priv, err
		}
	}

	return priv, nil
}

// lookupTrue returns the single name from candidates whose pool variable
// is true in res, or an error if zero or more than one is.
func lookupTrue(enc *encoder.Encoded, res *satsolver.Result, nameOf func(string) string, candidates []string) (string, error) {
	found := ""
	for _, c := range candidates {
		id, ok := enc.Pool.Lookup(nameOf(c))
		if !ok {
			continue
		}
		if res.Value(id) {
			if found != "" {
				return "", fmt.Errorf("decoder: expected exactly one true among %v, got at least %q and %q", candidates, found, c)
			}
			found = c
		}
	}
	if found == "" {
		return "", fmt.Errorf("decoder: expected exactly one true among %v, got none", candidates)
	}
	return found, nil
}
