package astar

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hillclimb/dfs"
	"github.com/katalvlaran/hillclimb/dijkstra"
	"github.com/katalvlaran/hillclimb/gridgraph"
)

// FindShortestPath returns the cheapest path to goal from any of candidates.
//
// Under StrategyIndependent one reverse depth-first traversal from goal first
// drops every candidate that cannot reach it. Each remaining candidate gets its
// own A* run with no shared state; up to Options.Workers runs execute
// concurrently. A candidate whose run ends in ErrNoPath is excluded; any other
// error cancels the remaining runs and is returned. The winner has the lowest
// cost, then the fewest steps, then the earliest position in candidates, so
// the result is deterministic even though the runs race.
//
// Under StrategyReverse a single uniform-cost search is rooted at goal over
// reversed edges and stops at the distance of the first candidate it settles;
// among the candidates tied at that distance the earliest in candidates wins.
// With unit step costs, as under ClimbPolicy, both strategies select the
// same source.
//
// Duplicate candidates are ignored. ErrNoPath is returned only when no
// candidate reaches goal.
func FindShortestPath(hm *gridgraph.HeightMap, candidates []gridgraph.Position, goal gridgraph.Position, opts ...Option) (Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if hm == nil {
		return Result{}, ErrNilGrid
	}
	if len(candidates) == 0 {
		return Result{}, ErrNoCandidates
	}
	if !hm.InBounds(goal) {
		return Result{}, fmt.Errorf("%w: goal %v", ErrOutOfBounds, goal)
	}
	uniq := make([]gridgraph.Position, 0, len(candidates))
	seen := make(map[gridgraph.Position]struct{}, len(candidates))
	for _, c := range candidates {
		if !hm.InBounds(c) {
			return Result{}, fmt.Errorf("%w: candidate %v", ErrOutOfBounds, c)
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		uniq = append(uniq, c)
	}

	if o.Strategy == StrategyReverse {
		return reverseSearch(hm, uniq, goal, o)
	}

	return independentSearch(hm, uniq, goal, o)
}

func independentSearch(hm *gridgraph.HeightMap, cands []gridgraph.Position, goal gridgraph.Position, o Options) (Result, error) {
	// Visited(c) holds iff c can reach goal under o.Policy.
	reach, err := dfs.DFS(hm, goal,
		dfs.WithPolicy(gridgraph.Reversed(o.Policy)),
		dfs.WithContext(o.Ctx),
	)
	if err != nil {
		return Result{}, err
	}

	results := make([]Result, len(cands))
	found := make([]bool, len(cands))

	group, ctx := errgroup.WithContext(o.Ctx)
	group.SetLimit(o.Workers)
	run := o
	run.Ctx = ctx
	for i, c := range cands {
		if !reach.Visited(c) {
			continue
		}
		i, c := i, c
		group.Go(func() error {
			res, err := findPath(hm, c, goal, run)
			switch {
			case errors.Is(err, ErrNoPath):
				results[i].Expanded = res.Expanded
				return nil
			case err != nil:
				return fmt.Errorf("candidate %v: %w", c, err)
			}
			results[i], found[i] = res, true
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	best, total := -1, 0
	for i := range cands {
		total += results[i].Expanded
		if found[i] && (best < 0 || better(results[i], results[best])) {
			best = i
		}
	}
	if best < 0 {
		return Result{Expanded: total}, fmt.Errorf("%w: none of %d candidates reaches %v", ErrNoPath, len(cands), goal)
	}
	res := results[best]
	res.Expanded = total

	return res, nil
}

// better reports whether a beats b: lower cost, then fewer steps.
func better(a, b Result) bool {
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}

	return len(a.Path) < len(b.Path)
}

func reverseSearch(hm *gridgraph.HeightMap, cands []gridgraph.Position, goal gridgraph.Position, o Options) (Result, error) {
	tree, err := dijkstra.Dijkstra(hm, gridgraph.Reversed(o.Policy),
		dijkstra.Source(goal),
		dijkstra.WithTargets(cands...),
		dijkstra.WithContext(o.Ctx),
	)
	if err != nil {
		return Result{}, err
	}
	if !tree.Found {
		return Result{Expanded: tree.Settled}, fmt.Errorf("%w: none of %d candidates reaches %v", ErrNoPath, len(cands), goal)
	}
	source := earliest(cands, tree.Reached)
	back, err := tree.PathTo(source)
	if err != nil {
		return Result{}, err
	}
	// back runs goal→candidate over reversed edges; flip it.
	path := make([]gridgraph.Position, len(back))
	for i, p := range back {
		path[len(back)-1-i] = p
	}
	dist, _ := tree.DistanceTo(source)

	return Result{Path: path, Cost: dist, Expanded: tree.Settled, Source: source}, nil
}

// earliest returns the member of tied that comes first in cands.
// tied must be a non-empty subset of cands.
func earliest(cands, tied []gridgraph.Position) gridgraph.Position {
	in := make(map[gridgraph.Position]struct{}, len(tied))
	for _, p := range tied {
		in[p] = struct{}{}
	}
	for _, c := range cands {
		if _, ok := in[c]; ok {
			return c
		}
	}

	return tied[0]
}
