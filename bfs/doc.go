// Package bfs provides breadth-first search over a core.Graph: the
// shortest path in hop count between two nodes, and full level-order
// traversal with distances and parent links.
//
// What
//
//   - ShortestPath(g, source, target): the fewest-hop node sequence from
//     source to target, or a sentinel error. The search stops as soon as
//     the target is dequeued, which by BFS level-order properties makes
//     the returned path provably shortest (uniform edge cost 1).
//   - Traverse(g, start): the complete reachable component, as a Result
//     holding Order (visit sequence), Depth (hops from start), and Parent
//     (BFS-tree predecessor). (*Result).PathTo reconstructs paths.
//   - Degrees(path): the hop count of a path, the "degrees of
//     separation" between its endpoints.
//
// Determinism
//
//	core.Graph returns neighbors in first-insertion order and BFS expands
//	them in that order, so among equal-length shortest paths the one whose
//	edges appeared first in the input always wins. Identical graph and
//	endpoints give an identical result, every time.
//
// Edge cases
//
//   - source == target returns the single-element path [source], zero
//     hops: target equality is checked on dequeue, including the very
//     first one.
//   - Both endpoints existing but disconnected yields ErrNoPath after the
//     frontier empties.
//   - A missing endpoint yields ErrSourceNotFound or ErrTargetNotFound
//     without attempting the search.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue, visited set, and result maps
//
// Usage
//
//	g := parse.Build("A B\nB C")
//	path, err := bfs.ShortestPath(g, "A", "C")
//	if err != nil {
//	    // errors.Is against ErrNilGraph, ErrSourceNotFound,
//	    // ErrTargetNotFound, ErrNoPath, or ErrOptionViolation
//	}
//	fmt.Println(path, bfs.Degrees(path)) // [A B C] 2
package bfs
