package dot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/velkans/hopgraph/core"
)

// Sentinel errors for DOT marshaling.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("dot: graph is nil")

	// ErrBadPath is returned when a highlight path references unknown
	// nodes or non-adjacent consecutive nodes.
	ErrBadPath = errors.New("dot: highlight path is not a path in the graph")
)

// Route and background colors: tomato for the route, light blue nodes
// and light gray edges elsewhere.
const (
	routeColor = "#FF6347"
	nodeColor  = "#ADD8E6"
	edgeColor  = "#CCCCCC"
)

// Option configures Marshal via functional arguments.
type Option func(*config)

type config struct {
	name string
	path []string
}

// WithName sets the DOT graph name. The default is "G".
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithHighlightPath colors the given node sequence as the route. The
// sequence must be a real path in the marshaled graph: every node a
// key, every consecutive pair adjacent. Marshal reports ErrBadPath
// otherwise.
func WithHighlightPath(path []string) Option {
	return func(c *config) { c.path = path }
}

// Marshal renders g as Graphviz DOT text.
// Output is deterministic: nodes and edges follow first-insertion
// order, each undirected edge appearing once.
// Complexity: O(V + E).
func Marshal(g *core.Graph, opts ...Option) ([]byte, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := config{name: "G"}
	for _, opt := range opts {
		opt(&cfg)
	}

	onPath, onRoute, err := pathSets(g, cfg.path)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "graph %q {\n", cfg.name)
	b.WriteString("\tnode [style=filled];\n")

	for _, id := range g.Nodes() {
		color := nodeColor
		if onPath[id] {
			color = routeColor
		}
		fmt.Fprintf(&b, "\t%q [fillcolor=%q];\n", id, color)
	}

	seen := make(map[[2]string]struct{}, g.EdgeCount())
	for _, u := range g.Nodes() {
		nbrs, nerr := g.Neighbors(u)
		if nerr != nil {
			continue // unreachable: Nodes() only yields existing keys
		}
		for _, v := range nbrs {
			key := edgeKey(u, v)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			if _, route := onRoute[key]; route {
				fmt.Fprintf(&b, "\t%q -- %q [color=%q, penwidth=3];\n", u, v, routeColor)
			} else {
				fmt.Fprintf(&b, "\t%q -- %q [color=%q];\n", u, v, edgeColor)
			}
		}
	}
	b.WriteString("}\n")

	return []byte(b.String()), nil
}

// pathSets validates the highlight path against g and returns the node
// set and edge set to color.
func pathSets(g *core.Graph, path []string) (map[string]bool, map[[2]string]struct{}, error) {
	onPath := make(map[string]bool, len(path))
	onRoute := make(map[[2]string]struct{}, len(path))
	for i, id := range path {
		if !g.HasNode(id) {
			return nil, nil, fmt.Errorf("%w: unknown node %q", ErrBadPath, id)
		}
		onPath[id] = true
		if i == 0 {
			continue
		}
		prev := path[i-1]
		if !g.HasEdge(prev, id) {
			return nil, nil, fmt.Errorf("%w: %q and %q are not adjacent", ErrBadPath, prev, id)
		}
		onRoute[edgeKey(prev, id)] = struct{}{}
	}

	return onPath, onRoute, nil
}

// edgeKey normalizes an undirected pair for set membership.
func edgeKey(u, v string) [2]string {
	if v < u {
		return [2]string{v, u}
	}

	return [2]string{u, v}
}
