package cardinality

import (
	"testing"

	"github.com/kronologic/kronogen/pkg/cnf"
	"github.com/kronologic/kronogen/pkg/varpool"
)

// TestTotalizer_Correctness brute-forces every input assignment for small n
// and checks that the unique satisfying extension to the totalizer's fresh
// variables (inner nodes and outputs) matches the popcount encoding:
// Outputs[k-1] == true iff at least k inputs are true. This is spec.md §8's
// totalizer-correctness property.
func TestTotalizer_Correctness(t *testing.T) {
	for n := 1; n <= 5; n++ {
		pool := varpool.New()
		inputs := make([]int, n)
		for i := range inputs {
			inputs[i] = pool.Get(stringIndex("in", i))
		}
		cl := cnf.NewClauseList()
		outputs := Totalizer(pool, cl, inputs, "t")
		if len(outputs) != n {
			t.Fatalf("n=%d: len(outputs)=%d, want %d", n, len(outputs), n)
		}

		// Inputs were allocated first, so ids n+1..Count() are every
		// variable the totalizer minted.
		var fresh []int
		for id := n + 1; id <= pool.Count(); id++ {
			fresh = append(fresh, id)
		}

		allAssignments(inputs, func(inputAssign map[int]bool) {
			trues := 0
			for _, v := range inputs {
				if inputAssign[v] {
					trues++
				}
			}

			satisfyingOutputs := 0
			allAssignments(fresh, func(freshAssign map[int]bool) {
				full := map[int]bool{}
				for k, v := range inputAssign {
					full[k] = v
				}
				for k, v := range freshAssign {
					full[k] = v
				}
				if !eval(cl.Clauses(), full) {
					return
				}
				satisfyingOutputs++
				for k := 1; k <= n; k++ {
					want := trues >= k
					if full[outputs[k-1]] != want {
						t.Errorf("n=%d trues=%d: Outputs[%d] = %v, want %v",
							n, trues, k-1, full[outputs[k-1]], want)
					}
				}
			})
			if satisfyingOutputs != 1 {
				t.Errorf("n=%d trues=%d: %d satisfying output assignments, want exactly 1",
					n, trues, satisfyingOutputs)
			}
		})
	}
}

func TestAssertAtLeast_ForcesCount(t *testing.T) {
	pool := varpool.New()
	inputs := []int{pool.Get("a"), pool.Get("b"), pool.Get("c"), pool.Get("d")}
	cl := cnf.NewClauseList()
	outputs := Totalizer(pool, cl, inputs, "t")
	AssertAtLeast(cl, outputs, 3)

	var fresh []int
	for id := len(inputs) + 1; id <= pool.Count(); id++ {
		fresh = append(fresh, id)
	}
	satisfiable := 0
	allAssignments(inputs, func(inAssign map[int]bool) {
		allAssignments(fresh, func(freshAssign map[int]bool) {
			full := map[int]bool{}
			for k, v := range inAssign {
				full[k] = v
			}
			for k, v := range freshAssign {
				full[k] = v
			}
			if !eval(cl.Clauses(), full) {
				return
			}
			satisfiable++
			trues := 0
			for _, v := range inputs {
				if inAssign[v] {
					trues++
				}
			}
			if trues < 3 {
				t.Errorf("AssertAtLeast(3) satisfied with only %d true inputs", trues)
			}
		})
	})
	if satisfiable == 0 {
		t.Fatal("AssertAtLeast(3) left the encoding unsatisfiable")
	}
}

func stringIndex(prefix string, i int) string {
	return prefix + string(rune('a'+i))
}
