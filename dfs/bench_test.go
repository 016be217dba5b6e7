package dfs_test

import (
	"testing"

	"github.com/katalvlaran/hillclimb/builder"
	"github.com/katalvlaran/hillclimb/dfs"
)

// BenchmarkDFS_Flat300 measures a full traversal of a flat 300×300 map,
// the worst case for reachability: every cell is visited.
func BenchmarkDFS_Flat300(b *testing.B) {
	hm, err := builder.Build(300, 300, builder.Flat(0))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := dfs.DFS(hm, hm.End()); err != nil {
			b.Fatal(err)
		}
	}
}
