package maze_test

import (
	"testing"

	"github.com/katalvlaran/lvmaze/maze"
)

// benchmarkKind drains a 101×101 generator of the given kind per iteration.
func benchmarkKind(b *testing.B, kind maze.Kind) {
	const n = 101
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		gen, err := maze.New(kind, n, n, maze.WithSeed(int64(i+1)), maze.WithStepFactor(1))
		if err != nil {
			b.Fatalf("New: %v", err)
		}
		for {
			_, ok, err := gen.Next()
			if err != nil {
				b.Fatalf("Next: %v", err)
			}
			if !ok {
				break
			}
		}
	}
}

func BenchmarkDFS(b *testing.B)         { benchmarkKind(b, maze.KindDFS) }
func BenchmarkKruskal(b *testing.B)     { benchmarkKind(b, maze.KindKruskal) }
func BenchmarkOriginShift(b *testing.B) { benchmarkKind(b, maze.KindOriginShift) }
