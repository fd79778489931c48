// Package planner answers the two valve questions over a prepared network:
// the most pressure one actor can release within a budget, and the most two
// actors can release together when they open disjoint sets of valves.
//
// Prepare turns a core.Graph into a Problem: the full shortest-path table,
// the active (non-zero flow) valves in a dense index, their compact
// distance table and the distance from the start valve to each of them.
// Each solver builds a subsetdp.Table for its budget and reads the answer
// off it:
//
//   - SingleActor: max over reachable v of T[T-d(start,v)][∅][v].
//   - TwoActor: for every mask m and its complement c, actor one starts on
//     a valve outside m and actor two on a valve inside m; the best pair is
//     the best split. Either actor may stay idle, so the answer is never
//     below the single-actor answer for the same budget.
//
// Both results carry routes rebuilt from the finished table, so every
// answer can be explained stop by stop.
package planner
