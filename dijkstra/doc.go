// Package dijkstra provides uniform-cost search over gridgraph height maps,
// producing a shortest-path tree rooted at a single source cell.
//
// Overview:
//
//   - Dijkstra settles cells in increasing distance from Source using a min-heap.
//   - The traversal Policy decides which orthogonal steps exist and what they cost;
//     rejected steps are walls.
//   - Pass gridgraph.Reversed(policy) to root the tree at a goal and follow edges
//     backwards: the distance of every cell is then its cost to reach the goal.
//
// When to use:
//
//   - Many sources, one goal: one goal-rooted run replaces one search per source.
//   - Distance fields over a whole map (no Targets).
//
// Key features:
//
//   - WithTargets: stop at the distance of the first settled listed cell; Tree.Target
//     names it and Tree.Reached lists every listed cell tied with it.
//   - WithMaxDistance: abort exploration beyond a distance cap.
//   - WithContext: cancellation polled once per settled cell.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V), E ≤ 4V on a 4-connected grid.
//   - Space: O(V + E) under the lazy decrease-key heap.
//
// Tie-break:
//
//   - Equal distances are settled in row-major order, so Tree.Target is
//     deterministic for a given input.
//
// Thread safety:
//
//   - A HeightMap is read-only; any number of Dijkstra runs may share it.
//   - A Tree is owned by the caller and must not be mutated concurrently.
package dijkstra
