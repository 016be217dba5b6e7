// Package pathutil rebuilds routes from dense predecessor arrays shared by
// the search packages.
package pathutil

import "fmt"

// None marks a cell without predecessor in a prev array.
const None = -1

// Reconstruct rebuilds the path ending at goal by following prev until a
// cell with no predecessor, then reverses it so the root comes first.
// It panics if prev contains a cycle reachable from goal.
func Reconstruct(prev []int, goal int) []int {
	path := []int{goal}
	for cur := prev[goal]; cur != None; cur = prev[cur] {
		if len(path) > len(prev) {
			panic(fmt.Sprintf("pathutil: predecessor cycle through %d", cur))
		}
		path = append(path, cur)
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Fill returns a slice of n elements all set to v.
func Fill(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}

	return s
}
