// Package core defines the Graph type shared by every hopgraph algorithm:
// an unweighted, undirected adjacency mapping from node ID to an ordered
// list of neighbor IDs.
//
// What
//
//   - Node: an opaque, case-sensitive identifier (any non-empty string;
//     the parse package restricts IDs to word characters).
//   - Graph: node → neighbor list. Neighbor lists are duplicate-free and
//     keep first-insertion order, so iteration is fully reproducible.
//   - Symmetry invariant: AddEdge(u, v) links both directions, so
//     v ∈ Neighbors(u) ⇔ u ∈ Neighbors(v). Self-loops are stored once.
//   - Every node ever referenced as an endpoint exists as a key, possibly
//     with an empty neighbor list.
//
// Why
//
//   - Deterministic neighbor order is what makes BFS tie-breaking
//     reproducible: among equal-length shortest paths, the one whose edges
//     appeared first in the input wins.
//
// Lifecycle
//
//	A Graph is built once (by parse.Build or by hand) and then only read.
//	There is no internal locking: concurrent readers are safe, and callers
//	that want concurrent queries simply build one Graph per input.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - AddEdge: O(deg) per call (duplicate check scans the neighbor list)
//   - Neighbors, Nodes, AdjacencyMap: O(result) copies
//   - Memory: O(V + E)
package core
