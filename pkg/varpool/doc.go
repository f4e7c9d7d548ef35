// Package varpool provides the bijection between opaque CNF variable names
// and the dense positive integer variable IDs a SAT solver requires.
//
// Names are allocated IDs in first-reference order, starting at 1. The
// encoder is deterministic, so for a fixed Config and seed the allocation
// order — and therefore every ID — is reproducible across runs.
package varpool
