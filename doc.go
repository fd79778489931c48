// Package valveflow plans which valves to open, and in what order, to
// release the most pressure from a tunnel network within a time budget.
//
// Two questions are answered for every network:
//
//   - one actor, 30 minutes by default;
//   - two actors working in parallel on disjoint valves, 26 minutes by default.
//
// The work is organized in small packages, in dependency order:
//
//	core/      — valve records, name registry, the Graph and its pruning stage
//	matrix/    — all-pairs shortest paths (in-place Floyd–Warshall)
//	subsetdp/  — the layered [time][mask][valve] table, filled in parallel
//	planner/   — single- and two-actor solvers with route reconstruction
//	scan/      — text and YAML network descriptions
//	builder/   — deterministic network generators for tests and benchmarks
//	config/    — run settings from YAML, .env files and the environment
//
// The valveflow command (cmd/valveflow) wires them together:
//
//	valveflow solve input.txt
//	valveflow generate -n 14 --seed 7 > net.txt
package valveflow
