// Package satsolver implements a chronological DPLL SAT solver over the
// CNF clauses produced by pkg/cnf/pkg/cardinality/pkg/encoder.
//
// It borrows its watched-literal propagation and activity-based branching
// machinery from the corpus's only real SAT solver reference,
// github.com/irifrance/gini's internal solver design (literals as signed
// integers, clauses as flat int slices, two watches per clause, activity
// bumps on conflict). gini itself is a CDCL solver that learns clauses on
// conflict; this solver does not learn — it backtracks chronologically to
// the most recent decision and flips its polarity, per spec.md's design.
//
// Variables are 1-based dense integers (see pkg/varpool). A literal is a
// signed int: positive asserts the variable, negative negates it.
package satsolver
