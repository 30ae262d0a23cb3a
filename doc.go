// Package hopgraph computes degrees of separation: the fewest-hop path
// between two nodes of an unweighted, undirected graph described by
// plain edge-list text.
//
// The pipeline is deliberately small:
//
//	raw text ──parse──▶ *core.Graph ──bfs──▶ path + hop count ──dot──▶ rendering
//
// Subpackages:
//
//	core/  — the Graph value: a symmetric, insertion-ordered adjacency mapping
//	parse/ — lenient edge-list text parsing ("A B" per line) and rendering
//	bfs/   — breadth-first shortest path, traversal orders, error taxonomy
//	dot/   — Graphviz DOT export with optional route highlighting
//
// A command-line front end lives under cmd/hopgraph:
//
//	echo "A B
//	B C" | hopgraph --from A --to C
//
// Everything in the library is a pure function of its inputs: graphs are
// rebuilt from text on every parse, paths are computed per query, and no
// state survives a call. Identical input always produces identical output,
// down to neighbor ordering (first-seen order in the text).
package hopgraph
