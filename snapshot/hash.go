package snapshot

import (
	"fmt"

	"github.com/arlojs/wsgraph/content"
)

// edgesBetween returns every edge from source to target, sorted by kind,
// for use when a container has more than one edge kind connecting it to
// the same child (for example a Contain edge and its matching Ordinal
// edge).
func (g *Graph) edgesBetween(source, target NodeIndex) []EdgeIndex {
	var out []EdgeIndex
	for _, idx := range g.outgoing[source] {
		if g.edges[idx].target == target {
			out = append(out, idx)
		}
	}
	if len(out) <= 1 {
		return out
	}
	for i := 1; i < len(out); i++ {
		j := i
		for j > 0 && g.edges[out[j-1]].kind.Compare(g.edges[out[j]].kind) > 0 {
			out[j-1], out[j] = out[j], out[j-1]
			j--
		}
	}
	return out
}

// rehashNode recomputes idx's Merkle tree hash from its own NodeHash and
// the already-current Merkle hashes of its children, per the per-node
// rule: explicit-order children first (as reached via the node's
// Ordering-kind edge, if any), then remaining neighbors sorted ascending
// by child id, mixing in each connecting edge's kind and auxiliary data.
//
// rehashNode assumes every child's Merkle hash is already up to date;
// callers traverse in post-order to guarantee this.
func (g *Graph) rehashNode(idx NodeIndex) error {
	w, err := g.NodeWeight(idx)
	if err != nil {
		return err
	}

	h := content.NewHasher()
	nodeHash := w.NodeHash()
	h.WriteBytes(nodeHash[:])

	orderedChildren, orderErr := g.OrderedChildrenForNode(idx)
	ordered := make(map[NodeIndex]struct{}, len(orderedChildren))
	if orderErr == nil {
		for _, c := range orderedChildren {
			ordered[c] = struct{}{}
		}
	}

	var finalEdges []EdgeIndex
	for _, child := range orderedChildren {
		finalEdges = append(finalEdges, g.edgesBetween(idx, child)...)
	}
	for _, e := range g.OutgoingEdges(idx) {
		if _, skip := ordered[g.edges[e].target]; skip {
			continue
		}
		finalEdges = append(finalEdges, e)
	}

	for _, e := range finalEdges {
		edge := g.edges[e]
		edge.kind.HashInto(h)
		childW, err := g.NodeWeight(edge.target)
		if err != nil {
			return err
		}
		childMerkle := childW.MerkleHash()
		h.WriteBytes(childMerkle[:])
	}

	w.SetMerkleHash(h.SumMerkle())
	return nil
}

// RehashTouched recomputes Merkle hashes for every node touched since the
// last rehash, plus every ancestor of a touched node, then clears the
// touched set. Nodes whose subtree did not change keep their cached hash.
func (g *Graph) RehashTouched() error {
	root, err := g.Root()
	if err != nil {
		return err
	}

	dirty := make(map[NodeIndex]bool, len(g.touched))
	for idx := range g.touched {
		dirty[idx] = true
	}
	visited := make(map[NodeIndex]bool)

	var rehashErr error
	var visit func(NodeIndex) bool
	visit = func(idx NodeIndex) bool {
		if visited[idx] {
			return dirty[idx]
		}
		visited[idx] = true

		childDirty := false
		for _, child := range g.Targets(idx) {
			if visit(child) {
				childDirty = true
			}
		}

		if dirty[idx] || childDirty {
			if rehashErr == nil {
				if err := g.rehashNode(idx); err != nil {
					rehashErr = err
				}
			}
			dirty[idx] = true
			return true
		}
		return false
	}
	visit(root)
	if rehashErr != nil {
		return rehashErr
	}

	g.touched = make(map[NodeIndex]struct{})
	return nil
}

// RehashAll unconditionally recomputes every reachable node's Merkle
// hash, bottom-up from root. This is the fallback used for migrations
// that alter node-variant contents in ways RehashTouched cannot detect
// (see Migrate), since RehashTouched only knows about nodes explicitly
// marked touched by write operations.
func (g *Graph) RehashAll() error {
	root, err := g.Root()
	if err != nil {
		return err
	}

	visited := make(map[NodeIndex]bool)
	var visit func(NodeIndex) error
	visit = func(idx NodeIndex) error {
		if visited[idx] {
			return nil
		}
		visited[idx] = true
		for _, child := range g.Targets(idx) {
			if err := visit(child); err != nil {
				return err
			}
		}
		return g.rehashNode(idx)
	}
	if err := visit(root); err != nil {
		return err
	}
	g.touched = make(map[NodeIndex]struct{})
	return nil
}

// RootMerkleHash returns the Merkle tree hash of the root node, which
// summarizes the entire graph's content.
func (g *Graph) RootMerkleHash() (content.MerkleTreeHash, error) {
	root, err := g.Root()
	if err != nil {
		return content.MerkleTreeHash{}, err
	}
	w, err := g.NodeWeight(root)
	if err != nil {
		return content.MerkleTreeHash{}, fmt.Errorf("%w: root node missing its own weight", ErrInternal)
	}
	return w.MerkleHash(), nil
}

// Migrate runs fn against g and then unconditionally rehashes the whole
// graph via RehashAll, returning the new root Merkle hash. Use this for
// any migration that changes node-variant contents in a way the touched
// set cannot track (for example, rewriting every node of a given kind).
func Migrate(g *Graph, fn func(*Graph) error) (content.MerkleTreeHash, error) {
	if err := fn(g); err != nil {
		return content.MerkleTreeHash{}, err
	}
	if err := g.RehashAll(); err != nil {
		return content.MerkleTreeHash{}, err
	}
	return g.RootMerkleHash()
}
