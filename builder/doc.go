// Package builder generates deterministic gridgraph height maps for tests,
// benchmarks and the "hillclimb generate" command.
//
// Model:
//
//   - Build(rows, cols, con, opts...) allocates a rows×cols rank matrix, lets the
//     Constructor fill it, places the start and end markers, and validates the
//     result through gridgraph.NewHeightMap.
//   - A Constructor only writes ranks; markers and marker ranks are owned by Build,
//     which always puts the start at MinRank and the end at MaxRank.
//   - Options resolve into an immutable config; later options override earlier ones.
//
// Constructors:
//
//   - Flat(rank)  – every cell at the same rank; every step is legal.
//   - Slope()     – ranks rise toward the bottom-right corner by at most one per
//     step, so the corner is reachable from the top-left once rows+cols-2 ≥ MaxRank.
//   - Random()    – uniform ranks in [0, spread), drawn in row-major order.
//
// Determinism:
//
//   - Same rows, cols, constructor, options and seed ⇒ identical maps.
//   - Random requires WithSeed or WithRand; there is no hidden global source.
//
// Errors:
//
//   - ErrTooFewCells      – rows < 1 or cols < 1.
//   - ErrBadRank          – a rank outside [gridgraph.MinRank, gridgraph.MaxRank].
//   - ErrNeedRandSource   – Random without a seeded source.
//   - ErrMarkerOutOfBounds – WithStart/WithEnd outside the grid.
//
// Option constructors (WithX) panic on meaningless arguments; Build never panics.
package builder
