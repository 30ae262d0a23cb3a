// Package dot renders a core.Graph as Graphviz DOT text, optionally
// highlighting one path the way a route is drawn on a map.
//
// The output is an undirected `graph { ... }` document with nodes and
// edges emitted in first-insertion order, so identical graphs always
// marshal to identical bytes. Node IDs are always quoted, which keeps
// DOT keywords ("graph", "node", "edge") valid as node names.
//
// With WithHighlightPath, path nodes and edges take the route color and
// everything else is muted: the textual counterpart of a route drawn on
// a network map. Rendering an image stays the caller's concern (pipe
// the bytes to `dot -Tsvg`).
package dot
