package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
)

// S15PodiumVar names the role variable "c holds podium position which
// (1, 2, or 3)".
func S15PodiumVar(which int, c string) string { return fmt.Sprintf("s15:podium%d:%s", which, c) }

// EncodeS15 compiles the World Travelers scenario: a seeded random
// podium of three distinct characters gets an exact, descending visited-
// room-count target (1st = min(|R|,T), 2nd = max(1,1st-1),
// 3rd = max(1,1st-2)); everyone else's visited count is capped at
// max(1, 3rd-1).
func (ctx *Context) EncodeS15(cfg Config) {
	order := ctx.RNG.Shuffle
	idx := make([]int, len(cfg.Chars))
	for i := range idx {
		idx[i] = i
	}
	order(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

	podiumCount := 3
	if podiumCount > len(cfg.Chars) {
		podiumCount = len(cfg.Chars)
	}
	podium := make([]string, podiumCount)
	for i := 0; i < podiumCount; i++ {
		podium[i] = cfg.Chars[idx[i]]
	}
	for i, c := range podium {
		ctx.CL.AddUnit(ctx.Role(S15PodiumVar(i+1, c)))
	}

	first := minInt(len(ctx.Graph.Rooms), ctx.T)
	second := maxInt(1, first-1)
	third := maxInt(1, first-2)
	otherCap := maxInt(1, third-1)

	targets := map[string]int{}
	if podiumCount >= 1 {
		targets[podium[0]] = first
	}
	if podiumCount >= 2 {
		targets[podium[1]] = second
	}
	if podiumCount >= 3 {
		targets[podium[2]] = third
	}

	for _, c := range cfg.Chars {
		lits := make([]int, 0, len(ctx.Graph.Rooms))
		for _, r := range ctx.Graph.Rooms {
			lits = append(lits, ctx.Visited(c, r))
		}
		outputs := cardinality.Totalizer(ctx.Pool, ctx.CL, lits, fmt.Sprintf("s15:visits:%s", c))
		if target, ok := targets[c]; ok {
			cardinality.AssertExactly(ctx.CL, outputs, target)
		} else {
			cardinality.AssertAtMost(ctx.CL, outputs, otherCap)
		}
	}
}
