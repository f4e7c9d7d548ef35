// Package rng provides the deterministic pseudo-random source used by the
// puzzle encoder and the SAT solver.
//
// # Overview
//
// RNG wraps a 32-bit integer-hash generator (mulberry32): a single uint32
// state, advanced and mixed on every call, producing floats in [0, 1). Unlike
// math/rand, the output sequence depends only on the arithmetic in Next and
// is therefore stable across Go versions and platforms — required by
// spec.md's determinism property (identical cfg + seed => bit-identical
// schedule on any platform).
//
// # Two independent streams
//
// A single solve uses two RNG instances derived from the same resolved seed
// but salted differently, so that adding a branch to the encoder never
// perturbs the solver's tie-break sequence (and vice versa):
//
//	encRNG := rng.New(seed)
//	solRNG := rng.New(seed ^ rng.SolverStreamSalt)
//
// # Usage
//
//	r := rng.New(seed)
//	victim := cfg.Chars[r.Intn(len(cfg.Chars))]
//	if r.Bool() { ... }
//
// # Thread Safety
//
// RNG instances are NOT thread-safe and are never shared between goroutines;
// a solve allocates its own encoder/solver pair and discards them when done.
package rng
