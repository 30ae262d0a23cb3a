package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/velkans/hopgraph/bfs"
	"github.com/velkans/hopgraph/core"
	"github.com/velkans/hopgraph/dot"
	"github.com/velkans/hopgraph/parse"
)

// options collects the root command's flag values.
type options struct {
	input   string
	from    string
	to      string
	dotOut  string
	jsonOut bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "hopgraph",
		Short: "Fewest-hop paths over edge-list text",
		Long: `hopgraph reads an undirected graph as edge-list text (one "A B" line
per edge; punctuation tolerated, malformed lines ignored) and reports
the shortest path between two nodes together with its hop count, the
degrees of separation.`,
		Example: `  hopgraph --from A --to F --input network.txt
  cat network.txt | hopgraph --from A --to F --dot route.dot
  hopgraph --json --input network.txt`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "-", `edge-list file ("-" for stdin)`)
	cmd.Flags().StringVar(&opts.from, "from", "", "source node")
	cmd.Flags().StringVar(&opts.to, "to", "", "target node")
	cmd.Flags().StringVar(&opts.dotOut, "dot", "", `write Graphviz DOT with the route highlighted ("-" for stdout)`)
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the adjacency mapping as JSON")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress warnings about ignored input lines")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if (opts.from == "") != (opts.to == "") {
		return errors.New("--from and --to must be used together")
	}
	if !opts.jsonOut && opts.from == "" {
		return errors.New("--from and --to are required (or use --json to inspect the graph)")
	}

	text, err := readInput(cmd, opts.input)
	if err != nil {
		return err
	}

	buildOpts := []parse.Option{}
	if !opts.quiet {
		buildOpts = append(buildOpts, parse.WithOnSkippedLine(func(n int, line string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: line %d ignored: %s\n", n, strings.TrimSpace(line))
		}))
	}
	g := parse.Build(text, buildOpts...)
	if g.NodeCount() == 0 {
		return errors.New("no nodes defined: the input contained no well-formed edge lines")
	}

	if opts.jsonOut {
		if err = writeJSON(cmd.OutOrStdout(), g); err != nil {
			return err
		}
		// Both endpoints present or both absent at this point.
		if opts.from == "" {
			return nil
		}
	}

	path, err := bfs.ShortestPath(g, opts.from, opts.to)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, strings.Join(path, " → "))
	fmt.Fprintf(out, "degrees of separation: %d\n", bfs.Degrees(path))

	if opts.dotOut != "" {
		return writeDOT(cmd, opts.dotOut, g, path)
	}

	return nil
}

// readInput loads the edge text from a file, or from the command's
// stdin when name is "-".
func readInput(cmd *cobra.Command, name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	return string(data), nil
}

// writeJSON prints the adjacency mapping; key order is sorted by
// encoding/json, which suits display.
func writeJSON(w io.Writer, g *core.Graph) error {
	data, err := json.MarshalIndent(g.AdjacencyMap(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode adjacency: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))

	return err
}

// writeDOT renders the graph with the found route highlighted.
func writeDOT(cmd *cobra.Command, name string, g *core.Graph, path []string) error {
	data, err := dot.Marshal(g, dot.WithHighlightPath(path))
	if err != nil {
		return err
	}
	if name == "-" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err = os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}

	return nil
}
