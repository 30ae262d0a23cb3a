// Package parse turns free-form edge-list text into a core.Graph.
//
// Format
//
//	One candidate edge per line. A line contributes an edge exactly when
//	it yields two word tokens (letters, digits, underscore); surrounding
//	punctuation and extra whitespace are ignored:
//
//	    A B
//	    carla - dana
//	    "eva", "fred"
//
//	Lines with zero, one, or three-plus tokens are dropped silently.
//	Leniency is deliberate: badly formatted input produces a smaller (or
//	empty) graph, never an error. Callers that want to warn about ignored
//	input can register WithOnSkippedLine.
//
// Determinism
//
//	Identical text always yields an identical graph: nodes and neighbor
//	lists follow first-seen order in the text, and duplicate edges are
//	suppressed.
//
// Self-loops
//
//	A line naming the same token twice ("A A") is accepted and stored
//	once, as a singleton adjacency pointing at the node itself.
//	WithoutSelfLoops switches to ignoring the loop while still creating
//	the node.
//
// EdgeText renders a graph back to canonical one-edge-per-line text;
// feeding that text to Build reproduces the same edge set.
package parse
