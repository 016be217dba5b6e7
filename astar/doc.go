// Package astar finds minimum-step routes across a gridgraph.HeightMap.
//
// What:
//
//   - FindPath runs a single A* search from one start to one goal.
//   - FindShortestPath picks the best of several start candidates, either by
//     running one A* search per candidate concurrently (StrategyIndependent)
//     or by a single uniform-cost search rooted at the goal over reversed
//     edges (StrategyReverse).
//
// Why:
//
//   - Elevation maps constrain movement by a climb rule; any gridgraph.Policy
//     can be plugged in, with Manhattan distance as the admissible estimate.
//
// Tie-break:
//
//   - Among open cells with equal f = g + h, the one with the smaller h is
//     expanded first, then the one with the smaller (row, col). Paths are
//     therefore reproducible for a given grid, start, goal and policy.
//   - FindShortestPath under StrategyIndependent prefers lower cost, then
//     fewer steps, then the earlier candidate in the input slice.
//   - Under StrategyReverse the goal-rooted search stops at the lowest cost
//     any candidate reaches; of the candidates at that cost, the earliest in
//     the input slice wins. With unit step costs both strategies agree.
//
// Complexity:
//
//   - FindPath: O(V log V) time and O(V) memory for V cells.
//   - StrategyIndependent: one O(V) reverse reachability pass, then one
//     search per reachable candidate; memory is O(V) per running worker.
//   - StrategyReverse: one O(V log V) search regardless of k.
//
// Errors:
//
//   - ErrNoPath is an ordinary outcome and never carries a partial path.
//   - ErrBudgetExceeded and context errors abort a search early.
//   - MaxExpansions bounds each A* run; StrategyReverse is bounded only by Ctx.
//
// Concurrency:
//
//   - All state is per call. A HeightMap may be shared by any number of
//     concurrent searches.
package astar
