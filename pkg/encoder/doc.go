// Package encoder compiles a Config into a CNF instance: a variable pool,
// a clause list, and the room graph, cast and resolved seed the decoder
// needs to read the assignment back. Role variables are named by the
// exported S<N>...Var functions, which the decoder uses to look them up.
// The fundamental variable is X(c,t,r) ("character c is in
// room r at time t"); scenario encoders layer role variables and Tseitin
// indicators on top, per spec.md §4.4-§4.5.
//
// Each scenario lives in its own s<N>_name.go file as a Context method
// (EncodeS1, EncodeS2, ...). Encode validates structural and
// scenario-specific preconditions before any clause is emitted, so a bad
// Config fails fast rather than burning solver time.
package encoder
