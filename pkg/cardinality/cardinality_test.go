package cardinality

import (
	"testing"

	"github.com/kronologic/kronogen/pkg/cnf"
)

func eval(clauses []cnf.Clause, assign map[int]bool) bool {
	for _, c := range clauses {
		ok := false
		for _, lit := range c {
			v := assign[abs(lit)]
			if lit < 0 {
				v = !v
			}
			if v {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func allAssignments(vars []int, fn func(map[int]bool)) {
	n := len(vars)
	for mask := 0; mask < (1 << uint(n)); mask++ {
		assign := make(map[int]bool, n)
		for i, v := range vars {
			assign[v] = mask&(1<<uint(i)) != 0
		}
		fn(assign)
	}
}

func TestExactlyOne(t *testing.T) {
	cl := cnf.NewClauseList()
	vars := []int{1, 2, 3}
	ExactlyOne(cl, vars)

	count := 0
	allAssignments(vars, func(a map[int]bool) {
		if eval(cl.Clauses(), a) {
			count++
			trues := 0
			for _, v := range vars {
				if a[v] {
					trues++
				}
			}
			if trues != 1 {
				t.Errorf("satisfying assignment %v has %d true vars, want exactly 1", a, trues)
			}
		}
	})
	if count != len(vars) {
		t.Errorf("ExactlyOne(%d vars) has %d satisfying assignments, want %d", len(vars), count, len(vars))
	}
}

func TestAtLeastK(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for k := 1; k <= n; k++ {
			vars := make([]int, n)
			for i := range vars {
				vars[i] = i + 1
			}
			cl := cnf.NewClauseList()
			AtLeastK(cl, vars, k)

			allAssignments(vars, func(a map[int]bool) {
				trues := 0
				for _, v := range vars {
					if a[v] {
						trues++
					}
				}
				want := trues >= k
				got := eval(cl.Clauses(), a)
				if got != want {
					t.Errorf("n=%d k=%d assign=%v: eval=%v, want %v", n, k, a, got, want)
				}
			})
		}
	}
}

func TestAtLeastK_Infeasible(t *testing.T) {
	cl := cnf.NewClauseList()
	AtLeastK(cl, []int{1, 2}, 3)
	for _, c := range cl.Clauses() {
		if len(c) == 0 {
			return
		}
	}
	t.Fatal("AtLeastK with k > n should emit an empty (UNSAT) clause")
}
