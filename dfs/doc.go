// Package dfs implements depth-first traversal of a gridgraph.HeightMap.
//
// What:
//
//   - DFS (Depth-First Search): explores as far as possible along each
//     legal step before backtracking. Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every cell (WithFullTraversal)
//
// Why:
//   - Reachability: run from the goal under gridgraph.Reversed(policy) and
//     Visited(p) tells whether p can reach the goal at all. The astar
//     multi-source search uses this to drop hopeless candidates up front.
//   - Region labelling: with WithFullTraversal each Roots entry starts a
//     new region in discovery order.
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, Policy, hooks, MaxDepth, FilterNeighbor
//   - DFSResult: collects post-order, Depth, Parent, Roots and visited flags
//
// Complexity:
//
//   - DFS: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGridNil             grid pointer is nil
//   - ErrStartOutOfBounds    start cell not in grid
//   - context.Canceled       DFS canceled via context
//   - hook errors            propagated from OnVisit or OnExit
package dfs
