package snapshot

import (
	"context"
	"fmt"
	"log/slog"
)

// PerformUpdates applies a batch of Updates (as produced by
// DetectUpdates) to g. Application is idempotent and best-effort per
// update: a NewNode for an id that already exists is skipped, a
// ReplaceNode/NewEdge/RemoveEdge referencing an id that no longer exists
// is skipped rather than erroring, since a concurrent rebase may have
// already removed the node the update was computed against. No cycle
// checking is performed; callers that need it should pre-validate before
// calling PerformUpdates. Callers are responsible for one
// CleanupAndRehash call after the whole batch, not after each update.
func (g *Graph) PerformUpdates(ctx context.Context, updates []Update) (err error) {
	op := g.debugTrace(ctx, "wsgraph.snapshot.perform_updates", slog.Int("count", len(updates)))
	defer func() { op.End(err) }()

	for _, u := range updates {
		switch u.Kind {
		case UpdateNewNode:
			if _, lookupErr := g.NodeIndexByID(u.NodeID); lookupErr == nil {
				continue
			}
			g.AddOrReplaceNode(ctx, u.Weight)

		case UpdateReplaceNode:
			if _, lookupErr := g.NodeIndexByID(u.NodeID); lookupErr != nil {
				continue
			}
			g.AddOrReplaceNode(ctx, u.Weight)

		case UpdateNewEdge:
			sourceIdx, lookupErr := g.NodeIndexByID(u.Source)
			if lookupErr != nil {
				continue
			}
			targetIdx, lookupErr := g.NodeIndexByID(u.Target)
			if lookupErr != nil {
				continue
			}
			g.AddEdge(ctx, sourceIdx, targetIdx, u.EdgeKind)

		case UpdateRemoveEdge:
			sourceIdx, lookupErr := g.NodeIndexByID(u.Source)
			if lookupErr != nil {
				continue
			}
			targetIdx, lookupErr := g.NodeIndexByID(u.Target)
			if lookupErr != nil {
				continue
			}
			_ = g.RemoveEdgeBetween(ctx, sourceIdx, targetIdx, u.EdgeKind)

		default:
			err = fmt.Errorf("%w: unknown update kind %d", ErrInternal, u.Kind)
			return err
		}
	}
	return nil
}
