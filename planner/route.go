package planner

import (
	"github.com/katalvlaran/valveflow/matrix"
	"github.com/katalvlaran/valveflow/subsetdp"
)

// route walks the finished table from state (t, opened, v): it records v,
// then follows the lowest-position successor whose cell accounts for the
// rest of the value, until nothing more is gained.
func (p *Problem) route(tb *subsetdp.Table, t int, opened subsetdp.Mask, v int) Route {
	var r Route
	for v >= 0 {
		r.Stops = append(r.Stops, Stop{Valve: p.names[v], Flow: p.values[v], Remaining: t - 1})
		want := tb.Value(t, opened, v) - (t-1)*p.values[v]
		opened |= subsetdp.Bit(v)

		next, nextT := -1, 0
		for u := 0; want > 0 && u < len(p.values); u++ {
			if opened.Has(u) {
				continue
			}
			d := p.compact.Dist(v, u)
			if d == matrix.Unreachable {
				continue
			}
			if rem := t - d - 1; rem >= 1 && tb.Value(rem, opened, u) == want {
				next, nextT = u, rem
				break
			}
		}
		v, t = next, nextT
	}

	return r
}
