package encoder

import (
	"fmt"

	"github.com/kronologic/kronogen/pkg/cardinality"
)

// S16HomebodyVar names the role variable "c is the homebody".
func S16HomebodyVar(c string) string { return fmt.Sprintf("s16:homebody:%s", c) }

// EncodeS16 compiles the Homebodies scenario: every character is
// assigned a visited-room-count target, descending by one from
// min(|R|,T,N) in Chars order and never below 1; the last character is
// the homebody and may stay in place, everyone else must move every
// turn.
//
// spec.md leaves the mapping from characters to ranks unspecified beyond
// "unique visit counts assigned per character, descending"; this
// implementation uses Config.Chars order as the ranking (Chars[0] gets
// the highest target), which keeps the assignment deterministic without
// introducing another seeded shuffle.
func (ctx *Context) EncodeS16(cfg Config) {
	maxCount := minInt(len(ctx.Graph.Rooms), ctx.T)
	n := len(cfg.Chars)
	start := minInt(maxCount, n)

	targets := make([]int, n)
	for i := range cfg.Chars {
		targets[i] = maxInt(1, start-i)
	}
	homebodyIdx := n - 1
	homebody := cfg.Chars[homebodyIdx]
	ctx.CL.AddUnit(ctx.Role(S16HomebodyVar(homebody)))
	for i, c := range cfg.Chars {
		if i != homebodyIdx {
			ctx.CL.AddUnit(-ctx.Role(S16HomebodyVar(c)))
		}
	}

	for i, c := range cfg.Chars {
		lits := make([]int, 0, len(ctx.Graph.Rooms))
		for _, r := range ctx.Graph.Rooms {
			lits = append(lits, ctx.Visited(c, r))
		}
		outputs := cardinality.Totalizer(ctx.Pool, ctx.CL, lits, fmt.Sprintf("s16:visits:%s", c))
		cardinality.AssertExactly(ctx.CL, outputs, targets[i])

		if i != homebodyIdx {
			ctx.ForceMove(c)
		}
	}
}
