package parse

import (
	"strings"

	"github.com/velkans/hopgraph/core"
)

// EdgeText renders g as canonical edge-list text: one edge per line,
// two space-separated node IDs, each undirected edge written once in
// the order its first endpoint was inserted. Self-loops render as
// "A A". Isolated nodes have no edge to carry them and are omitted.
//
// Build(EdgeText(g)) reproduces g's edge set, which is what makes
// parsing idempotent.
// Complexity: O(V + E).
func EdgeText(g *core.Graph) string {
	if g == nil {
		return ""
	}

	var b strings.Builder
	seen := make(map[[2]string]struct{}, g.EdgeCount())
	for _, u := range g.Nodes() {
		nbrs, err := g.Neighbors(u)
		if err != nil {
			continue // unreachable: Nodes() only yields existing keys
		}
		for _, v := range nbrs {
			key := [2]string{u, v}
			if v < u {
				key = [2]string{v, u}
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			b.WriteString(u)
			b.WriteByte(' ')
			b.WriteString(v)
			b.WriteByte('\n')
		}
	}

	return b.String()
}
