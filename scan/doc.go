// Package scan reads and writes valve network descriptions.
//
// Two formats are supported:
//
//   - Text, one valve per line:
//     Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//     The singular "tunnel leads to valve" form is accepted too, and a valve
//     without tunnels may omit the clause. Blank lines are skipped.
//   - YAML, a document with a top-level "valves" list of
//     {name, flow, tunnels} entries.
//
// Parsing checks syntax only. Unknown tunnel targets, duplicate names and
// negative flows are reported by core.NewGraph.
package scan
