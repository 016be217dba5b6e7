// Package hillclimb finds the fewest steps across an elevation map, from a
// single start or from the best of many.
//
// 🚀 What is hillclimb?
//
//	A small search toolkit for rectangular height maps:
//		• Grid model: parse letter grids (a..z, S, E) into ranked cells
//		• Traversal policy: a step may climb at most one rank and drop any amount
//		• A*: indexed open set, Manhattan heuristic, deterministic tie-break
//		• Multi-source: concurrent per-candidate searches or one goal-rooted sweep
//		• Oracles: Dijkstra distance fields and breadth-first search
//
// ✨ Why choose hillclimb?
//
//   - Deterministic – equal-cost paths resolve the same way on every run
//   - Bounded – context cancellation and expansion budgets on every search
//   - Pluggable – any gridgraph.Policy or astar.Heuristic drops in
//
// Everything is organized under these packages:
//
//	gridgraph/       — HeightMap, Position, parsing, Policy and legal Edges
//	astar/           — FindPath and FindShortestPath
//	dijkstra/        — uniform-cost distance trees, used by the reverse strategy
//	bfs/             — breadth-first reference search, used by --verify
//	dfs/             — reachability walks, used to prune multi-source candidates
//	builder/         — deterministic map generators (flat, slope, random)
//	internal/report/ — table, JSON and YAML rendering
//	internal/server/ — HTTP service (gin)
//	internal/cli/    — cobra commands, viper config, slog logging
//	cmd/hillclimb/   — the binary
//
// Quick example:
//
//	Sabqponm
//	abcryxxl
//	accszExk
//	acctuvwj
//	abdefghi
//
// takes 31 steps from S to E, and 29 from the nearest 'a'.
//
//	go install github.com/katalvlaran/hillclimb/cmd/hillclimb@latest
//	hillclimb solve input.txt
//	hillclimb generate --kind slope --rows 5 --cols 30 | hillclimb path
package hillclimb
