// Package gridgraph treats a 2D elevation map as a directed graph whose edges
// are decided by a traversal Policy.
//
// What:
//
//   - HeightMap wraps a rectangular grid of ranks 0..25 ('a'..'z').
//   - One start cell ('S', rank of 'a') and one end cell ('E', rank of 'z').
//   - Neighbors yields the 4-connected in-bounds cells; Edges filters them by Policy.
//   - ClimbPolicy: descend freely, ascend at most MaxClimb ranks per step, cost 1.
//
// Why:
//
//   - Terrain routing where slope, not topology, prunes the lattice.
//   - Shared read-only input for any number of concurrent searches.
//
// Complexity:
//
//   - Parse / NewHeightMap: O(W×H), Memory: O(W×H).
//   - HeightAt, InBounds, Neighbors, Edges: O(1).
//   - FindAll, Lowest, Candidates: O(W×H).
//
// Errors:
//
//   - ErrMalformedGrid: wrapped by all construction errors below.
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadElevation: a character outside 'a'..'z', 'S', 'E'.
//   - ErrMissingStart / ErrDuplicateStart: zero or several 'S'.
//   - ErrMissingEnd / ErrDuplicateEnd: zero or several 'E'.
//   - ErrInvalidPosition: panic value of HeightAt on an out-of-bounds position.
package gridgraph
