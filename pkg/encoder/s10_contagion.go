package encoder

import "github.com/kronologic/kronogen/pkg/cnf"

// EncodeS10 compiles the Contagion scenario's only CNF-level requirement:
// at least one visit to the alphabetically first (contagious) room. The
// transitive infection spread is a decoder-side simulation (spec.md
// §4.6).
func (ctx *Context) EncodeS10(cfg Config) {
	room := ctx.Graph.AlphabeticallyFirst()
	var clause cnf.Clause
	for _, c := range cfg.Chars {
		for t := 0; t < ctx.T; t++ {
			clause = append(clause, ctx.X(c, t, room))
		}
	}
	ctx.CL.Add(clause)
}
