package astar

import (
	"fmt"

	"github.com/katalvlaran/hillclimb/gridgraph"
	"github.com/katalvlaran/hillclimb/internal/pathutil"
)

// reconstructPath walks cameFrom back from goal to the root and returns the
// route in start→goal order. It panics if goal was never reached from start:
// the engine only calls it for a popped goal, so anything else is a bug.
func reconstructPath(hm *gridgraph.HeightMap, cameFrom []int, start, goal gridgraph.Position) []gridgraph.Position {
	cells := pathutil.Reconstruct(cameFrom, hm.Index(goal))
	if cells[0] != hm.Index(start) {
		panic(fmt.Sprintf("astar: goal %v not reached from %v", goal, start))
	}
	path := make([]gridgraph.Position, len(cells))
	for i, c := range cells {
		path[i] = hm.Coordinate(c)
	}

	return path
}
