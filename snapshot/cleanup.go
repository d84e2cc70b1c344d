package snapshot

import (
	"context"
	"log/slog"
)

// Cleanup removes every node unreachable from root, repeating until a
// fixed point (removing a node can orphan its former children in turn).
// It reports the number of nodes removed. Root itself, if set, is never
// removed.
func (g *Graph) Cleanup(ctx context.Context) int {
	op := g.debugTrace(ctx, "wsgraph.snapshot.cleanup")
	removed := 0
	defer func() { op.End(nil, slog.Int("removed", removed)) }()

	root, hasRoot := g.root, g.hasRoot
	for {
		var orphans []NodeIndex
		for _, idx := range g.Nodes() {
			if hasRoot && idx == root {
				continue
			}
			if len(g.incoming[idx]) == 0 {
				orphans = append(orphans, idx)
			}
		}
		if len(orphans) == 0 {
			return removed
		}
		for _, idx := range orphans {
			if err := g.RemoveNode(ctx, idx); err == nil {
				removed++
			}
		}
	}
}

// CleanupAndRehash removes unreachable nodes and then recomputes Merkle
// hashes for whatever remains touched as a result. Call this after any
// batch of writes or applied updates that may have orphaned nodes.
func (g *Graph) CleanupAndRehash(ctx context.Context) error {
	g.Cleanup(ctx)
	return g.RehashTouched()
}
