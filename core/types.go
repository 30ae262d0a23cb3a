// Package core declares the Graph type, its sentinel errors, and the
// NewGraph constructor. Query and mutation methods live in graph.go.
package core

import "errors"

// Sentinel errors for core graph operations.
// Branch on them with errors.Is; messages are stable.
var (
	// ErrEmptyNodeID indicates an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a node that is
	// not a key of the graph.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Graph is an unweighted, undirected adjacency mapping.
//
// adjacency[u] holds u's neighbors in first-insertion order with no
// duplicates; order additionally records every node ID in the order it
// first appeared, so full-graph iteration is deterministic without
// sorting. The two structures always agree on the key set.
//
// Graphs are built once and then treated as read-only; there is no
// internal synchronization.
type Graph struct {
	adjacency map[string][]string
	order     []string
}

// NewGraph returns an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{adjacency: make(map[string][]string)}
}
