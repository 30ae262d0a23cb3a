// Package bfs option plumbing, sentinel errors, and the Result type.
package bfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution. Branch with errors.Is; wrapped
// variants carry the offending node ID.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source node is not a key of
	// the graph. The search is not attempted.
	ErrSourceNotFound = errors.New("bfs: source node not found")

	// ErrTargetNotFound is returned when the target node is not a key of
	// the graph. The search is not attempted.
	ErrTargetNotFound = errors.New("bfs: target node not found")

	// ErrNoPath is returned when source and target both exist but lie in
	// disconnected components (or the target is beyond MaxDepth).
	ErrNoPath = errors.New("bfs: no path between the given nodes")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a search via functional arguments. An invalid
// Option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search.
type Options struct {
	// OnVisit is called when a node is dequeued and visited. Returning
	// an error aborts the search and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many hops from the
	// start. A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: no depth limit and
// a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		OnVisit:  func(string, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithOnVisit registers a callback to run on each visit; returning an
// error from the callback stops the search.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given hop distance.
//
//	d > 0: explore at most d hops from the start
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a Traverse:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its distance (in hops) from the start.
//   - Parent: map from node ID to its predecessor in the BFS tree; the
//     start node has no entry.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the shortest path from the traversal's start node
// to dest by walking Parent links. Returns ErrNoPath (wrapped with the
// destination ID) if dest was never reached.
// Complexity: O(len(path)).
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: %q is unreachable", ErrNoPath, dest)
	}
	// Walk back to the root, then reverse.
	path := []string{dest}
	for cur := dest; ; {
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Degrees returns the hop count of path, the degrees of separation
// between its first and last node. An empty path yields -1; a
// single-node path yields 0.
func Degrees(path []string) int {
	return len(path) - 1
}
