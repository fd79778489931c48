// Package matrix builds the all-pairs shortest-path table of a valve network.
//
// The matrix package provides:
//
//   - Distances, a dense row-major n×n table of tunnel-hop counts with an
//     Unreachable sentinel for pairs that have no path.
//   - FromGraph, which seeds the table from core.Graph tunnels (unit weight)
//     and closes it with an in-place Floyd–Warshall pass.
//   - Restrict, which copies out the sub-table over a chosen vertex subset
//     (the active valves) so hot loops index a small contiguous buffer.
//   - Validators: CheckSource (isolated start vertex) and ValidateTriangle.
//
// The table is always built over the full vertex set, before pruning, so
// zero-flow valves still count as waypoints. Once built it is read-only and
// safe to share across goroutines.
//
// Distances are directional: d(i,j) is the length of the shortest walk from i
// to j following tunnels as listed. For symmetric networks d(i,j) == d(j,i).
package matrix
