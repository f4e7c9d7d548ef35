package encoder

import "github.com/kronologic/kronogen/pkg/cnf"

// EncodeS3 compiles the Singer's Jewels scenario: at least one character
// visits the alphabetically first room, and at least one such visit is
// alone. The passing chain itself is a decoder-side simulation (spec.md
// §4.6); the CNF only needs to guarantee a "first alone moment" exists
// for the decoder to anchor on.
func (ctx *Context) EncodeS3(cfg Config) {
	jewelRoom := ctx.Graph.AlphabeticallyFirst()

	var visitClause cnf.Clause
	var aloneClause cnf.Clause
	for _, c := range cfg.Chars {
		for t := 0; t < ctx.T; t++ {
			x := ctx.X(c, t, jewelRoom)
			visitClause = append(visitClause, x)

			aloneHere := ctx.Role(aloneAtRoomVar(c, t, jewelRoom))
			ctx.CL.Add(cnf.Clause{-aloneHere, x})
			ctx.CL.Add(cnf.Clause{-aloneHere, ctx.Alone(c, t)})
			ctx.CL.Add(cnf.Clause{aloneHere, -x, -ctx.Alone(c, t)})
			aloneClause = append(aloneClause, aloneHere)
		}
	}
	ctx.CL.Add(visitClause)
	ctx.CL.Add(aloneClause)
}

func aloneAtRoomVar(c string, t int, r string) string {
	return "jewel:aloneAt:" + c + ":" + itoa(t) + ":" + r
}
