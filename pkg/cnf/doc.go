// Package cnf defines the conjunctive-normal-form clause representation
// shared by the encoder and the solver: a clause is an ordered slice of
// non-zero signed literals (positive = variable asserted, negative =
// negated). Clauses are stored as a flat []int per clause, the layout the
// corpus's only SAT-solver reference (irifrance/gini, vendored in
// operator-lifecycle-manager) also uses internally, rather than a richer
// Literal struct — int arithmetic on signed variable IDs is all the
// encoder, solver, and decoder ever need.
package cnf
