// Package decoder turns a satsolver.Result and the encoder.Encoded
// instance that produced it into a Result: a plain schedule, occupancy
// tables, and a scenario-specific Priv block. Role selections (who the
// phantom is, who the assassin's victim is, ...) are read directly off
// the satisfying assignment via the deterministic variable names each
// pkg/encoder scenario file exports. Everything else — contagion spread,
// curse handoff, jewel passing, glue entries — is a simulation run over
// the plain schedule, per spec.md §4.6.
package decoder
