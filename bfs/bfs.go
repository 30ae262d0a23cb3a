package bfs

import (
	"fmt"

	"github.com/velkans/hopgraph/core"
)

// queueItem pairs a node ID with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state for a single search.
type walker struct {
	graph     *core.Graph
	opts      Options
	target    string
	hasTarget bool // false for exhaustive traversal
	queue     []queueItem
	visited   map[string]bool
	res       *Result
}

// ShortestPath runs BFS on g from source and returns the fewest-hop
// path to target, first and last elements included. Among equal-length
// shortest paths the first-discovered one wins, following neighbor
// insertion order.
//
// Returns ErrNilGraph, ErrSourceNotFound, or ErrTargetNotFound for
// invalid input (checked before any search work), ErrOptionViolation
// for bad options, ErrNoPath when the frontier empties without reaching
// target, or any user-supplied hook error.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) ([]string, error) {
	w, err := newWalker(g, source, opts)
	if err != nil {
		return nil, err
	}
	// Checked unconditionally: the empty string is never a graph key, so
	// it fails here like any other unknown target, before any search work.
	if !g.HasNode(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	w.target = target
	w.hasTarget = true
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res.PathTo(target)
}

// Traverse runs an exhaustive BFS on g from start, visiting the whole
// reachable component in level order. See Result for what it reports.
//
// Returns ErrNilGraph, ErrSourceNotFound, ErrOptionViolation, or any
// user-supplied hook error.
func Traverse(g *core.Graph, start string, opts ...Option) (*Result, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	if err = w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// newWalker validates the graph, options, and start node, then prepares
// a walker with the start node seeded into the frontier. Callers that
// search for a target set it afterwards, before loop.
func newWalker(g *core.Graph, start string, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w, nil
}

// enqueue marks id visited at depth d, records its parent, and adds it
// to the back of the frontier.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the frontier in FIFO order until it empties, a hook
// errors, or the target is dequeued. The target check happens on
// dequeue, including the very first one, so a search for the start
// node itself terminates immediately with a zero-hop path.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		if err := w.visit(item); err != nil {
			return err
		}
		if w.hasTarget && item.id == w.target {
			return nil
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the node in Order and calls the OnVisit hook.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
	}

	return nil
}

// expand enqueues every unseen neighbor of item, in insertion order,
// honoring MaxDepth.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		// Only enqueued IDs reach here, and those are always graph keys.
		return fmt.Errorf("bfs: neighbors of %q: %w", item.id, err)
	}
	for _, nbr := range neighbors {
		if !w.visited[nbr] {
			w.enqueue(nbr, next, item.id)
		}
	}

	return nil
}
