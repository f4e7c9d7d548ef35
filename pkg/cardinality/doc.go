// Package cardinality provides CNF cardinality constraints: exactly-one,
// at-least-one, at-most-one (pairwise), at-least-K (complement encoding),
// and a totalizer that builds a unary-counter circuit over an arbitrary
// number of input literals.
//
// Every helper appends its clauses to a *cnf.ClauseList; Totalizer also
// takes a *varpool.Pool to mint its output variables. The other helpers
// introduce no auxiliary variables.
package cardinality
