// Package builder provides “functional‐options”‐style generators of valve
// networks. It produces []core.Record fixtures for tests, benchmarks and the
// `valveflow generate` command, keeping topology, naming and flow-rate
// policies separate and deterministic.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildRecords:      resolve options, run constructors, emit records.
//     – BuildGraph:        same, then hand the records to core.NewGraph.
//     – Network:           the mutable accumulator constructors write into.
//   - Topologies (Constructor implementations):
//     – Cycle, Path, Star, Complete, Grid, RandomSparse (always connected).
//   - Valve-name schemes (IDFn implementations):
//     – ValveIDFn:         two uppercase letters ("AA","AB",…), the default.
//     – DefaultIDFn:       decimal strings ("0","1",…).
//     – ExcelColumnIDFn:   Excel‐style columns ("A","Z","AA",…).
//   - Flow-rate distributions (FlowFn implementations):
//     – DefaultFlowFn, ConstantFlowFn, UniformFlowFn, SparseFlowFn.
//
// Guarantees:
//
//   - Every tunnel is emitted in both directions.
//   - Idempotent composition: re-adding a valve or tunnel is a no-op.
//   - Vertex 0 is the start valve and has zero flow unless WithZeroStart(false).
//   - Fast‐fail on invalid option parameters via panics in option‐constructors;
//     constructors themselves only return sentinel errors.
package builder
