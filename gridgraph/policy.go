package gridgraph

// Policy decides whether a single orthogonal step is legal and what it costs.
// Implementations must be safe for concurrent use and must return a
// positive cost for every legal step.
type Policy interface {
	Step(hm *HeightMap, from, to Position) (cost int, ok bool)
}

// ClimbPolicy allows descending any number of ranks and ascending at most
// MaxClimb ranks per step, at uniform cost 1.
type ClimbPolicy struct {
	MaxClimb int
}

// DefaultPolicy returns the one-rank climb rule.
func DefaultPolicy() ClimbPolicy {
	return ClimbPolicy{MaxClimb: 1}
}

// Step implements Policy.
func (p ClimbPolicy) Step(hm *HeightMap, from, to Position) (int, bool) {
	if hm.HeightAt(to) > hm.HeightAt(from)+p.MaxClimb {
		return 0, false
	}

	return 1, true
}

// Reversed returns a Policy that accepts from→to iff p accepts to→from.
// Searches rooted at the goal walk edges backwards through it.
func Reversed(p Policy) Policy {
	if r, ok := p.(reversed); ok {
		return r.inner
	}

	return reversed{inner: p}
}

type reversed struct {
	inner Policy
}

func (r reversed) Step(hm *HeightMap, from, to Position) (int, bool) {
	return r.inner.Step(hm, to, from)
}

// Edge is a legal step out of a cell.
type Edge struct {
	To   Position
	Cost int
}

// Edges returns the legal steps out of p under policy, in Neighbors order.
func (hm *HeightMap) Edges(p Position, policy Policy) []Edge {
	out := make([]Edge, 0, len(neighborOffsets))
	for _, n := range hm.Neighbors(p) {
		if c, ok := policy.Step(hm, p, n); ok {
			out = append(out, Edge{To: n, Cost: c})
		}
	}

	return out
}
