package core

// AddNode ensures id exists as a key with a (possibly empty) neighbor
// list. Re-adding an existing node is a no-op.
// Returns ErrEmptyNodeID if id is empty.
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = nil
		g.order = append(g.order, id)
	}

	return nil
}

// AddEdge records the undirected edge u–v: each endpoint is created if
// new, then appended to the other's neighbor list unless already present.
// A self-loop (u == v) is stored once, as a singleton entry in u's own
// list. Re-adding an existing edge is a no-op.
// Returns ErrEmptyNodeID if either endpoint is empty.
// Complexity: O(deg(u) + deg(v)) for the duplicate scan.
func (g *Graph) AddEdge(u, v string) error {
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}
	g.link(u, v)
	if u != v {
		g.link(v, u)
	}

	return nil
}

// link appends to into from's neighbor list if absent.
func (g *Graph) link(from, to string) {
	for _, nbr := range g.adjacency[from] {
		if nbr == to {
			return
		}
	}
	g.adjacency[from] = append(g.adjacency[from], to)
}

// HasNode reports whether id is a key of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adjacency[id]
	return ok
}

// HasEdge reports whether u and v are directly adjacent.
// By the symmetry invariant checking one direction suffices.
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v string) bool {
	for _, nbr := range g.adjacency[u] {
		if nbr == v {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of id's neighbor list in first-insertion
// order. Returns ErrEmptyNodeID for an empty id and ErrNodeNotFound if
// id is not a key.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Nodes returns a copy of all node IDs in first-insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	return len(g.adjacency)
}

// EdgeCount returns the number of undirected edges; a self-loop counts
// as one edge.
// Complexity: O(V + E).
func (g *Graph) EdgeCount() int {
	var ends int  // endpoints of non-loop edges, each counted twice
	var loops int // self-loops, each appearing once in its own list
	for id, nbrs := range g.adjacency {
		for _, nbr := range nbrs {
			if nbr == id {
				loops++
			} else {
				ends++
			}
		}
	}

	return ends/2 + loops
}

// AdjacencyMap returns a deep copy of the adjacency mapping, suitable
// for direct serialization (e.g. to JSON for display). Mutating the
// result does not affect the graph.
// Complexity: O(V + E).
func (g *Graph) AdjacencyMap() map[string][]string {
	out := make(map[string][]string, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		cp := make([]string, len(nbrs))
		copy(cp, nbrs)
		out[id] = cp
	}

	return out
}
