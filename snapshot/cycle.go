package snapshot

import (
	"context"

	"github.com/arlojs/wsgraph/weight"
)

// CheckWouldCreateCycle reports whether adding an edge from source to
// target would introduce a cycle, i.e. whether target can already reach
// source via existing outgoing edges.
func (g *Graph) CheckWouldCreateCycle(source, target NodeIndex) bool {
	if source == target {
		return true
	}
	visited := make(map[NodeIndex]struct{})
	stack := []NodeIndex{target}
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		if cur == source {
			return true
		}
		if _, ok := visited[cur]; ok {
			continue
		}
		visited[cur] = struct{}{}
		stack = append(stack, g.Targets(cur)...)
	}
	return false
}

// AddEdgeWithCycleCheck behaves like AddEdge but first verifies the new
// edge would not create a cycle, returning ErrCreateGraphCycle without
// mutating the graph if it would.
func (g *Graph) AddEdgeWithCycleCheck(ctx context.Context, source, target NodeIndex, kind weight.EdgeKind) (EdgeIndex, error) {
	if g.CheckWouldCreateCycle(source, target) {
		return invalidIndex, ErrCreateGraphCycle
	}
	return g.AddEdge(ctx, source, target, kind), nil
}
