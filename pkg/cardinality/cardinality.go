package cardinality

import (
	"github.com/kronologic/kronogen/pkg/cnf"
)

// ExactlyOne emits one clause asserting at least one of vars is true, plus
// all pairwise clauses forbidding two of them from being true together.
func ExactlyOne(cl *cnf.ClauseList, vars []int) {
	AtLeastOne(cl, vars)
	AtMostOnePairwise(cl, vars)
}

// AtLeastOne emits the single disjunction (v1 or v2 or ... or vn).
func AtLeastOne(cl *cnf.ClauseList, vars []int) {
	if len(vars) == 0 {
		return
	}
	clause := make(cnf.Clause, len(vars))
	copy(clause, vars)
	cl.Add(clause)
}

// AtMostOnePairwise emits (not vi or not vj) for every i < j.
func AtMostOnePairwise(cl *cnf.ClauseList, vars []int) {
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			cl.Add(cnf.Clause{-vars[i], -vars[j]})
		}
	}
}

// AtLeastK emits the complement encoding of "at least K of vars are true":
// every subset of size n-K+1 must contain at least one true literal, so
// each such subset is asserted as a disjunction. K must satisfy
// 0 < K <= len(vars); K == 0 is a no-op (always true).
func AtLeastK(cl *cnf.ClauseList, vars []int, k int) {
	n := len(vars)
	if k <= 0 {
		return
	}
	if k > n {
		// Unsatisfiable: emit the empty clause as an explicit UNSAT signal.
		cl.Add(cnf.Clause{})
		return
	}
	subsetSize := n - k + 1
	subsets(vars, subsetSize, func(subset []int) {
		clause := make(cnf.Clause, len(subset))
		copy(clause, subset)
		cl.Add(clause)
	})
}

// subsets calls fn with every subset of vars of the given size, in
// lexicographic order of index.
func subsets(vars []int, size int, fn func([]int)) {
	n := len(vars)
	if size <= 0 || size > n {
		return
	}
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	buf := make([]int, size)
	for {
		for i, id := range idx {
			buf[i] = vars[id]
		}
		fn(buf)

		// advance to next combination
		i := size - 1
		for i >= 0 && idx[i] == i+n-size {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < size; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
