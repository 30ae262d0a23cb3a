package dot_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velkans/hopgraph/dot"
	"github.com/velkans/hopgraph/parse"
)

func TestMarshal_Plain(t *testing.T) {
	g := parse.Build("A B\nB C")
	out, err := dot.Marshal(g)
	require.NoError(t, err)

	expected := "graph \"G\" {\n" +
		"\tnode [style=filled];\n" +
		"\t\"A\" [fillcolor=\"#ADD8E6\"];\n" +
		"\t\"B\" [fillcolor=\"#ADD8E6\"];\n" +
		"\t\"C\" [fillcolor=\"#ADD8E6\"];\n" +
		"\t\"A\" -- \"B\" [color=\"#CCCCCC\"];\n" +
		"\t\"B\" -- \"C\" [color=\"#CCCCCC\"];\n" +
		"}\n"
	require.Equal(t, expected, string(out))
}

func TestMarshal_HighlightPath(t *testing.T) {
	g := parse.Build("A B\nB C\nA C")
	out, err := dot.Marshal(g, dot.WithHighlightPath([]string{"A", "C"}))
	require.NoError(t, err)

	s := string(out)
	require.Contains(t, s, "\t\"A\" [fillcolor=\"#FF6347\"];")
	require.Contains(t, s, "\t\"C\" [fillcolor=\"#FF6347\"];")
	require.Contains(t, s, "\t\"B\" [fillcolor=\"#ADD8E6\"];")
	require.Contains(t, s, "\t\"A\" -- \"C\" [color=\"#FF6347\", penwidth=3];")
	require.Contains(t, s, "\t\"A\" -- \"B\" [color=\"#CCCCCC\"];")
}

func TestMarshal_Deterministic(t *testing.T) {
	const text = "C G\nA B\nB C\nA G"
	first, err := dot.Marshal(parse.Build(text))
	require.NoError(t, err)
	second, err := dot.Marshal(parse.Build(text))
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestMarshal_Errors(t *testing.T) {
	_, err := dot.Marshal(nil)
	require.True(t, errors.Is(err, dot.ErrNilGraph))

	g := parse.Build("A B\nC D")
	// unknown node in the path
	_, err = dot.Marshal(g, dot.WithHighlightPath([]string{"A", "Z"}))
	require.True(t, errors.Is(err, dot.ErrBadPath))
	// nodes exist but are not adjacent
	_, err = dot.Marshal(g, dot.WithHighlightPath([]string{"A", "C"}))
	require.True(t, errors.Is(err, dot.ErrBadPath))
}

func TestMarshal_QuotesKeywords(t *testing.T) {
	// "graph" and "node" are DOT keywords; quoting keeps them legal IDs.
	g := parse.Build("graph node")
	out, err := dot.Marshal(g, dot.WithName("net"))
	require.NoError(t, err)
	require.Contains(t, string(out), "graph \"net\" {")
	require.Contains(t, string(out), "\t\"graph\" -- \"node\" [color=\"#CCCCCC\"];")
}
