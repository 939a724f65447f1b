package walk_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/netwalk/core"
	"github.com/katalvlaran/netwalk/walk"
)

// benchNetwork builds a ring of n nodes N00…: every node's both exits
// lead to the next node, so any tape takes exactly n-1 steps from the
// first node to the last.
func benchNetwork(b *testing.B, n int) (*core.Network, core.NodeID, core.NodeID) {
	b.Helper()
	id := func(i int) core.NodeID {
		return core.NodeID(fmt.Sprintf("%c%c%c",
			'A'+(i/676)%26, 'A'+(i/26)%26, 'A'+i%26))
	}
	nw := core.NewNetwork()
	for i := 0; i < n; i++ {
		next := id((i + 1) % n)
		if err := nw.AddNode(id(i), next, next); err != nil {
			b.Fatal(err)
		}
	}

	return nw, id(0), id(n - 1)
}

// BenchmarkWalk_Ring measures the raw per-step cost of the walk loop.
func BenchmarkWalk_Ring(b *testing.B) {
	const n = 10000
	nw, start, last := benchNetwork(b, n)
	targets := core.NewTargetSet(last)
	tape := core.Instructions{core.Left, core.Right, core.Left}

	b.ReportAllocs()
	b.SetBytes(int64(n))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = walk.Walk(nw, start, targets, tape)
	}
}

// BenchmarkSynchronizedSteps_Ring measures the parallel fan-out with
// several tokens over the same ring.
func BenchmarkSynchronizedSteps_Ring(b *testing.B) {
	const n = 10000
	nw, start, last := benchNetwork(b, n)
	targets := core.NewTargetSet(last)
	tape := core.Instructions{core.Left, core.Right, core.Left}
	starts := []core.NodeID{start, start, start, start}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = walk.SynchronizedSteps(nw, starts, targets, tape)
	}
}
