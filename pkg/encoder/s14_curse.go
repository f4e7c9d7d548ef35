package encoder

// S14 (Curse of Amarinta) has no scenario-specific CNF beyond the
// ordinary movement encoding and the T>=6/N>=2 precondition already
// enforced in checkPreconditions. The handoff chain — who is cursed at
// each timestep, and the disambiguation among candidate origins — is
// entirely a decoder-side simulation over the plain schedule (spec.md
// §4.6), so there is deliberately no EncodeS14 here.
