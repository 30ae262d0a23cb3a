package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const network = `A B
B C
C D
D E
E F
A G
G H
H I
I J
J F
C G
`

// execute runs the root command with args and the given stdin, capturing
// stdout and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if args == nil {
		args = []string{} // nil would make cobra fall back to os.Args
	}
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestRun_PathQuery(t *testing.T) {
	out, _, err := execute(t, network, "--from", "A", "--to", "F")
	require.NoError(t, err)
	require.Contains(t, out, "A → B → C → D → E → F\n")
	require.Contains(t, out, "degrees of separation: 5\n")
}

func TestRun_TwoHops(t *testing.T) {
	out, _, err := execute(t, network, "--from", "A", "--to", "H")
	require.NoError(t, err)
	require.Contains(t, out, "A → G → H\n")
	require.Contains(t, out, "degrees of separation: 2\n")
}

func TestRun_InputFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "net.txt")
	require.NoError(t, os.WriteFile(name, []byte("A B\nB C\n"), 0o644))

	out, _, err := execute(t, "", "--from", "A", "--to", "C", "--input", name)
	require.NoError(t, err)
	require.Contains(t, out, "A → B → C\n")
}

func TestRun_UnknownNode(t *testing.T) {
	_, _, err := execute(t, network, "--from", "Z", "--to", "A")
	require.Error(t, err)
	require.Contains(t, err.Error(), "source node not found")
}

func TestRun_NoPath(t *testing.T) {
	_, _, err := execute(t, "A B\nX Y\n", "--from", "A", "--to", "Y")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no path")
}

func TestRun_EmptyGraph(t *testing.T) {
	_, _, err := execute(t, "nothing useful here at all\n", "--from", "A", "--to", "B", "--quiet")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no nodes defined")
}

func TestRun_MissingFlags(t *testing.T) {
	_, _, err := execute(t, network)
	require.Error(t, err)
	require.Contains(t, err.Error(), "--from and --to are required")
}

func TestRun_LoneEndpointFlag(t *testing.T) {
	// One endpoint without the other is a flag error, --json or not.
	_, _, err := execute(t, network, "--from", "A")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--from and --to must be used together")

	_, _, err = execute(t, network, "--json", "--from", "A")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--from and --to must be used together")

	_, _, err = execute(t, network, "--json", "--to", "F")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--from and --to must be used together")
}

func TestRun_SkippedLineWarning(t *testing.T) {
	_, errOut, err := execute(t, "A B\nbroken line here\n", "--from", "A", "--to", "B")
	require.NoError(t, err)
	require.Contains(t, errOut, "warning: line 2 ignored: broken line here")

	_, errOut, err = execute(t, "A B\nbroken line here\n", "--from", "A", "--to", "B", "--quiet")
	require.NoError(t, err)
	require.NotContains(t, errOut, "warning:")
}

func TestRun_JSON(t *testing.T) {
	out, _, err := execute(t, "A B\n", "--json")
	require.NoError(t, err)
	require.Contains(t, out, "\"A\": [\n    \"B\"\n  ]")
	require.Contains(t, out, "\"B\": [\n    \"A\"\n  ]")
}

func TestRun_DOTFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "route.dot")
	_, _, err := execute(t, "A B\nB C\n", "--from", "A", "--to", "C", "--dot", name)
	require.NoError(t, err)

	data, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Contains(t, string(data), "graph \"G\" {")
	require.Contains(t, string(data), "\"A\" -- \"B\" [color=\"#FF6347\", penwidth=3];")
}
