// Package subsetdp fills the layered subset table behind the valve planner.
//
// The table is indexed [t][mask][v]:
//
//   - t    — minutes remaining on arrival at v, 0..T.
//   - mask — valves already opened (bit i = active position i), excluding v.
//   - v    — the valve just reached, about to be opened.
//
// T[t][mask][v] is the best pressure an actor can still release from that
// state: open v (one minute, then v flows for t-1 minutes), then walk to the
// most profitable unopened valve u it can still open in time:
//
//	next := mask | bit(v)
//	best := max{ T[t-d(v,u)-1][next][u] : u ∉ next, t-d(v,u)-1 ≥ 1 } ∪ {0}
//	T[t][mask][v] = (t-1)*value[v] + best
//
// Layer t only reads layers below t, so layers are filled in increasing t and
// every mask inside one layer is independent. Build splits each layer into
// contiguous mask chunks run on an errgroup pool; Wait is the layer barrier.
//
// Complexity:
//
//   - Time:   O(T · 2ⁿ · n²), divided across workers.
//   - Memory: O(T · 2ⁿ · n) int32 cells.
//
// Capacity: masks are uint16, so n ≤ MaskBits (16). Larger universes fail
// with ErrCapacityExceeded before anything is allocated.
package subsetdp
