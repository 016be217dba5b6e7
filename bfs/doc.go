// Package bfs provides breadth-first search over a gridgraph.HeightMap,
// returning step-count distances, parent links, and visit order.
//
// What
//
//   - Explore cells in non-decreasing step count from a start cell.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from cell → distance (steps) from start
//   - Parent: map from cell → its predecessor in the BFS tree
//   - OnVisit hook may abort the walk with an error.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//   - Steps come from a gridgraph.Policy; costs are ignored.
//
// Why
//
//   - Unit-cost shortest paths in O(V + E) with no heuristic to get wrong,
//     which makes BFS the reference answer that A* results are checked against.
//   - Reachability: the Depth map is exactly the set of cells reachable from start.
//
// Determinism
//
//	Neighbors are enqueued up, left, down, right, so the visit sequence is
//	fully reproducible for a given grid and policy.
//
// Complexity
//
//   - Time:   O(V + E), E ≤ 4V.
//   - Memory: O(V) for the queue, visited flags, and result maps.
package bfs
