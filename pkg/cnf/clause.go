package cnf

// Clause is a disjunction of literals: non-zero signed variable IDs,
// positive meaning the variable is asserted true, negative meaning negated.
type Clause []int

// ClauseList accumulates the clauses produced by the encoder and reports
// the aggregate statistics the puzzle package surfaces in its Stats.
type ClauseList struct {
	clauses []Clause
}

// NewClauseList creates an empty clause list.
func NewClauseList() *ClauseList {
	return &ClauseList{}
}

// Add appends clause as-is. An empty clause is permitted only as an
// explicit UNSAT signal raised deliberately by an encoder (spec.md §3).
func (cl *ClauseList) Add(clause Clause) {
	cl.clauses = append(cl.clauses, clause)
}

// AddUnit appends a single-literal clause asserting lit.
func (cl *ClauseList) AddUnit(lit int) {
	cl.Add(Clause{lit})
}

// Clauses returns the accumulated clauses in insertion order. The caller
// must not mutate the returned slice.
func (cl *ClauseList) Clauses() []Clause {
	return cl.clauses
}

// Len returns the number of clauses accumulated so far.
func (cl *ClauseList) Len() int {
	return len(cl.clauses)
}

// AvgClauseLength returns the mean literal count per clause, or 0 if empty.
func (cl *ClauseList) AvgClauseLength() float64 {
	if len(cl.clauses) == 0 {
		return 0
	}
	total := 0
	for _, c := range cl.clauses {
		total += len(c)
	}
	return float64(total) / float64(len(cl.clauses))
}

// Not negates a literal.
func Not(lit int) int {
	return -lit
}
