package parse

import (
	"regexp"
	"strings"

	"github.com/velkans/hopgraph/core"
)

// tokenRe extracts maximal word-character runs: the node alphabet.
var tokenRe = regexp.MustCompile(`\w+`)

// Build parses text into a fresh core.Graph.
//
// Each line is tokenized into word runs; exactly two tokens make an
// undirected edge, anything else is skipped (see package doc for the
// leniency policy). Build is a pure function of its input: no shared
// state, and a new Graph on every call.
// Complexity: O(len(text) + V + E).
func Build(text string, opts ...Option) *core.Graph {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := core.NewGraph()
	for i, line := range strings.Split(text, "\n") {
		tokens := tokenRe.FindAllString(line, -1)
		if len(tokens) != 2 {
			if strings.TrimSpace(line) != "" {
				cfg.onSkipped(i+1, line)
			}
			continue
		}
		u, v := tokens[0], tokens[1]
		if u == v && cfg.dropSelfLoops {
			// Keep the node, drop the loop, and report the line since
			// it contributed no edge.
			_ = g.AddNode(u)
			cfg.onSkipped(i+1, line)
			continue
		}
		// Tokens are non-empty by construction, so AddEdge cannot fail.
		_ = g.AddEdge(u, v)
	}

	return g
}
