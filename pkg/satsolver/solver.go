package satsolver

import (
	"time"

	"github.com/kronologic/kronogen/pkg/cnf"
	"github.com/kronologic/kronogen/pkg/rng"
)

// Status is the outcome of a Solve call.
type Status int

const (
	// StatusSAT means Assignment is a verified satisfying assignment.
	StatusSAT Status = iota
	// StatusUNSAT means no satisfying assignment exists (or the solver
	// could not find one consistent with every clause before exhausting
	// its search).
	StatusUNSAT
	// StatusTimeout means the wall-clock budget ran out before a verdict
	// was reached. Reported to callers the same way as StatusUNSAT: "no
	// solution".
	StatusTimeout
)

// DefaultTimeout matches spec.md §4.7's default solver budget.
const DefaultTimeout = 12000 * time.Millisecond

// activityRescaleThreshold and activityDecay implement the VSIDS-style
// bump/rescale schedule: activityInc grows by 1/0.95 on every bump, and
// once it exceeds the threshold every activity (and activityInc itself)
// is scaled down together so relative ordering is preserved.
const (
	activityBumpGrowth       = 1.0 / 0.95
	activityRescaleThreshold = 1e50
	activityRescaleFactor    = 1e-50
	tieEpsilon               = 1e-12
)

// Result is the outcome of Solve.
type Result struct {
	Status Status
	// Assignment holds the value of every variable touched by the search.
	// A variable with no entry is unassigned at termination and, per
	// spec.md §4.7, is treated as false.
	Assignment map[int]bool
}

// Value reports the truth value of variable v under the result, treating
// any variable absent from Assignment as false.
func (r *Result) Value(v int) bool {
	return r.Assignment[v]
}

type clauseRec struct {
	lits      []int
	w0, w1    int // the two currently-watched literal values (not indices)
	satisfied bool
}

type trailEntry struct {
	lit   int
	edits []int // indices into clauses whose satisfied flag flipped false->true here
}

type decisionFrame struct {
	trailIndex int // position in trail of this decision's own literal
	lit        int // the literal asserted at this decision
	secondTried bool
}

// Solver is a chronological DPLL solver: two watched literals per clause
// drive unit propagation, a VSIDS-like activity score drives branching,
// and backtracking is purely chronological (no learned clauses).
type Solver struct {
	numVars int
	clauses []*clauseRec
	watches [][]int // indexed by litIndex(lit); clause indices currently watching lit

	value []int8 // 0 unassigned, 1 true, -1 false, indexed by variable

	trail []trailEntry
	qHead int

	decisions []decisionFrame

	activity    []float64
	activityInc float64

	unresolved int

	rng      *rng.RNG
	deadline time.Time
}

func litIndex(lit int) int {
	if lit > 0 {
		return 2 * (lit - 1)
	}
	return 2*(-lit-1) + 1
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NewSolver builds a solver over clauses for numVars variables. seed feeds
// the solver's own RNG stream (distinct from the encoder's, per spec.md's
// Design Notes), used only for tie-break and polarity decisions.
func NewSolver(numVars int, clauses []cnf.Clause, seed uint64, timeout time.Duration) *Solver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	s := &Solver{
		numVars:     numVars,
		clauses:     make([]*clauseRec, 0, len(clauses)),
		watches:     make([][]int, 2*numVars),
		value:       make([]int8, numVars+1),
		activity:    make([]float64, numVars+1),
		activityInc: 1.0,
		rng:         rng.New(seed),
		deadline:    time.Now().Add(timeout),
	}
	for _, c := range clauses {
		s.addClause(c)
	}
	return s
}

func (s *Solver) addClause(lits cnf.Clause) {
	cr := &clauseRec{lits: append([]int(nil), lits...)}
	s.clauses = append(s.clauses, cr)
	idx := len(s.clauses) - 1
	if len(cr.lits) == 0 {
		// An empty clause is unsatisfiable on its own. It gets no watches
		// and is never counted as satisfied, so the search ends in finish's
		// verification pass (or exhausts its decisions) and reports UNSAT.
		// AtLeastK and AssertAtLeast emit one for an infeasible bound.
		return
	}
	cr.w0 = cr.lits[0]
	if len(cr.lits) > 1 {
		cr.w1 = cr.lits[1]
	} else {
		cr.w1 = cr.lits[0]
	}
	s.watches[litIndex(cr.w0)] = append(s.watches[litIndex(cr.w0)], idx)
	if cr.w1 != cr.w0 {
		s.watches[litIndex(cr.w1)] = append(s.watches[litIndex(cr.w1)], idx)
	}
}

func (s *Solver) litValue(lit int) int8 {
	v := s.value[abs(lit)]
	if v == 0 {
		return 0
	}
	if lit > 0 {
		return v
	}
	return -v
}

// enqueueAssign assigns lit's variable so that lit becomes true. Returns
// false if the variable was already assigned to the opposite value
// (immediate conflict); a no-op true if already consistent.
func (s *Solver) enqueueAssign(lit int) bool {
	v := abs(lit)
	want := int8(1)
	if lit < 0 {
		want = -1
	}
	if s.value[v] != 0 {
		return s.value[v] == want
	}
	s.value[v] = want
	s.trail = append(s.trail, trailEntry{lit: lit})
	return true
}

func (s *Solver) markSatisfied(trailIdx, clauseIdx int) {
	c := s.clauses[clauseIdx]
	if c.satisfied {
		return
	}
	c.satisfied = true
	s.unresolved--
	s.trail[trailIdx].edits = append(s.trail[trailIdx].edits, clauseIdx)
}

func (s *Solver) bumpClause(c *clauseRec) {
	for _, l := range c.lits {
		s.activity[abs(l)] += s.activityInc
	}
	s.activityInc *= activityBumpGrowth
	if s.activityInc > activityRescaleThreshold {
		for v := 1; v <= s.numVars; v++ {
			s.activity[v] *= activityRescaleFactor
		}
		s.activityInc *= activityRescaleFactor
	}
}

// propagate drains the trail, walking watch lists for every newly
// falsified literal. Returns false on the first conflict encountered.
func (s *Solver) propagate() bool {
	for s.qHead < len(s.trail) {
		trailIdx := s.qHead
		lit := s.trail[trailIdx].lit
		s.qHead++
		if !s.propagateLiteral(trailIdx, lit) {
			return false
		}
	}
	return true
}

func (s *Solver) propagateLiteral(trailIdx, lit int) bool {
	falseLit := -lit
	watchList := s.watches[litIndex(falseLit)]
	ok := true
	write := 0
	for read := 0; read < len(watchList); read++ {
		cIdx := watchList[read]
		c := s.clauses[cIdx]
		if c.satisfied {
			watchList[write] = cIdx
			write++
			continue
		}
		other := c.w0
		if other == falseLit {
			other = c.w1
		}
		if s.litValue(other) == 1 {
			s.markSatisfied(trailIdx, cIdx)
			watchList[write] = cIdx
			write++
			continue
		}
		replaced := false
		for _, l := range c.lits {
			if l == c.w0 || l == c.w1 {
				continue
			}
			if s.litValue(l) != -1 {
				if c.w0 == falseLit {
					c.w0 = l
				} else {
					c.w1 = l
				}
				s.watches[litIndex(l)] = append(s.watches[litIndex(l)], cIdx)
				replaced = true
				break
			}
		}
		if replaced {
			continue
		}
		watchList[write] = cIdx
		write++
		switch s.litValue(other) {
		case 0:
			s.bumpClause(c)
			if !s.enqueueAssign(other) {
				ok = false
			}
		default: // other is false too: conflict
			s.bumpClause(c)
			ok = false
		}
		if !ok {
			for read2 := read + 1; read2 < len(watchList); read2++ {
				watchList[write] = watchList[read2]
				write++
			}
			break
		}
	}
	s.watches[litIndex(falseLit)] = watchList[:write]
	return ok
}

// backtrackTo undoes every trail entry at or after idx, restoring clause
// satisfied flags and variable assignments.
func (s *Solver) backtrackTo(idx int) {
	for i := len(s.trail) - 1; i >= idx; i-- {
		te := s.trail[i]
		for _, cIdx := range te.edits {
			s.clauses[cIdx].satisfied = false
			s.unresolved++
		}
		s.value[abs(te.lit)] = 0
	}
	s.trail = s.trail[:idx]
	s.qHead = idx
}

// decide picks the unassigned variable with highest activity, breaking
// ties within tieEpsilon with the solver's RNG stream, and a random
// polarity.
func (s *Solver) decide() int {
	best := -1.0
	var candidates []int
	for v := 1; v <= s.numVars; v++ {
		if s.value[v] != 0 {
			continue
		}
		a := s.activity[v]
		switch {
		case a > best+tieEpsilon:
			best = a
			candidates = candidates[:0]
			candidates = append(candidates, v)
		case a > best-tieEpsilon:
			candidates = append(candidates, v)
			if a > best {
				best = a
			}
		}
	}
	if len(candidates) == 0 {
		return 0
	}
	v := candidates[s.rng.Intn(len(candidates))]
	if s.rng.Bool() {
		return v
	}
	return -v
}

// Solve runs the search to completion, UNSAT, or timeout.
func (s *Solver) Solve() *Result {
	s.unresolved = len(s.clauses)
	for _, c := range s.clauses {
		if c.satisfied {
			s.unresolved--
		}
	}

	for _, c := range s.clauses {
		if len(c.lits) == 1 {
			if !s.enqueueAssign(c.lits[0]) {
				return &Result{Status: StatusUNSAT}
			}
			c.satisfied = true
			s.unresolved--
		}
	}

	for {
		if time.Now().After(s.deadline) {
			return &Result{Status: StatusTimeout}
		}
		if !s.propagate() {
			if !s.backjump() {
				return &Result{Status: StatusUNSAT}
			}
			continue
		}
		if s.allSatisfied() {
			return s.finish()
		}
		lit := s.decide()
		if lit == 0 {
			// Every variable is assigned without a conflict, but not every
			// satisfied clause was counted by propagation; finish checks
			// each clause and reports UNSAT if one is violated.
			return s.finish()
		}
		s.pushDecision(lit)
	}
}

func (s *Solver) allSatisfied() bool {
	return s.unresolved <= 0
}

func (s *Solver) pushDecision(lit int) {
	idx := len(s.trail)
	s.enqueueAssign(lit)
	s.decisions = append(s.decisions, decisionFrame{trailIndex: idx, lit: lit})
}

// backjump pops decision frames, trying the untried polarity at each
// before giving up on it, until one succeeds or the stack empties.
func (s *Solver) backjump() bool {
	for len(s.decisions) > 0 {
		top := &s.decisions[len(s.decisions)-1]
		s.backtrackTo(top.trailIndex)
		if !top.secondTried {
			top.secondTried = true
			flipped := -top.lit
			if s.enqueueAssign(flipped) {
				top.lit = flipped
				return true
			}
			// Flipping also conflicts immediately; this decision level is
			// exhausted, keep unwinding.
		}
		s.decisions = s.decisions[:len(s.decisions)-1]
	}
	return false
}

// finish verifies every original clause is satisfied by the current
// assignment before reporting success, guarding against encoder bugs per
// spec.md §4.7.
func (s *Solver) finish() *Result {
	assignment := make(map[int]bool, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		if s.value[v] == 1 {
			assignment[v] = true
		} else if s.value[v] == -1 {
			assignment[v] = false
		}
	}
	valueOf := func(lit int) bool {
		v := abs(lit)
		val := assignment[v] // unassigned defaults to false
		if lit < 0 {
			return !val
		}
		return val
	}
	for _, c := range s.clauses {
		ok := false
		for _, l := range c.lits {
			if valueOf(l) {
				ok = true
				break
			}
		}
		if !ok {
			return &Result{Status: StatusUNSAT}
		}
	}
	return &Result{Status: StatusSAT, Assignment: assignment}
}
