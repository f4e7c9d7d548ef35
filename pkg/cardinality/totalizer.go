package cardinality

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cnf"
	"github.com/kronologic/kronogen/pkg/varpool"
)

// Totalizer builds a unary-counter circuit over inputs and returns its
// output literals Outputs[0..n), where Outputs[k-1] ("at least k") is true
// in every satisfying assignment iff at least k of inputs are true. The
// tree is built bottom-up in balanced-binary fashion; a single input
// degenerates to the identity (no fresh variable).
//
// label and path namespace the fresh Tseitin output variables minted along
// the way (e.g. "tot:s15:visits:W:L:o2") so they show up legibly in a
// dumped variable pool.
func Totalizer(pool *varpool.Pool, cl *cnf.ClauseList, inputs []int, label string) []int {
	return build(pool, cl, inputs, label, "")
}

func build(pool *varpool.Pool, cl *cnf.ClauseList, lits []int, label, path string) []int {
	if len(lits) == 0 {
		return nil
	}
	if len(lits) == 1 {
		return []int{lits[0]}
	}
	mid := len(lits) / 2
	left := build(pool, cl, lits[:mid], label, path+"L")
	right := build(pool, cl, lits[mid:], label, path+"R")
	return mergeNode(pool, cl, left, right, label, path)
}

// mergeNode combines a left output array (meaning "at least i of the left
// inputs") and a right output array into a single output array over their
// union, per the Bailleux-Boufkhad totalizer encoding referenced in
// spec.md §4.3.
func mergeNode(pool *varpool.Pool, cl *cnf.ClauseList, l, r []int, label, path string) []int {
	p, q := len(l), len(r)
	total := p + q
	out := make([]int, total)
	for k := 1; k <= total; k++ {
		out[k-1] = pool.Get(fmt.Sprintf("tot:%s:%s:o%d", label, path, k))
	}

	// Monotone chain: O_k => O_{k-1}.
	for k := 2; k <= total; k++ {
		cl.Add(cnf.Clause{-out[k-1], out[k-2]})
	}

	// Lift + sum (soundness): enough true inputs forces the output on.
	for i := 0; i <= p; i++ {
		for j := 0; j <= q; j++ {
			if i == 0 && j == 0 {
				continue
			}
			k := i + j
			clause := cnf.Clause{}
			if i > 0 {
				clause = append(clause, -l[i-1])
			}
			if j > 0 {
				clause = append(clause, -r[j-1])
			}
			clause = append(clause, out[k-1])
			cl.Add(clause)
		}
	}

	// Reverse (completeness): the output can't be "free" — O_{i+j+1} forces
	// support from an (i+1)-th left true or a (j+1)-th right true.
	for i := 0; i <= p; i++ {
		for j := 0; j <= q; j++ {
			k := i + j
			if k >= total {
				continue
			}
			clause := cnf.Clause{-out[k]}
			if i < p {
				clause = append(clause, l[i])
			}
			if j < q {
				clause = append(clause, r[j])
			}
			cl.Add(clause)
		}
	}

	return out
}

// AssertAtLeast asserts that at least k of the totalizer's inputs are true
// by forcing Outputs[k-1]. k == 0 is trivially satisfied (no clause). k
// greater than len(outputs) is unsatisfiable and emits the empty clause.
func AssertAtLeast(cl *cnf.ClauseList, outputs []int, k int) {
	if k <= 0 {
		return
	}
	if k > len(outputs) {
		cl.Add(cnf.Clause{})
		return
	}
	cl.AddUnit(outputs[k-1])
}

// AssertAtMost asserts that at most k of the totalizer's inputs are true by
// forcing ¬Outputs[k]. k >= len(outputs) is trivially satisfied.
func AssertAtMost(cl *cnf.ClauseList, outputs []int, k int) {
	if k >= len(outputs) {
		return
	}
	if k < 0 {
		cl.Add(cnf.Clause{})
		return
	}
	cl.AddUnit(-outputs[k])
}

// AssertExactly pins the totalizer's count to exactly k.
func AssertExactly(cl *cnf.ClauseList, outputs []int, k int) {
	AssertAtLeast(cl, outputs, k)
	AssertAtMost(cl, outputs, k)
}
