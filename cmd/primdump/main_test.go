package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"honnef.co/go/prim"
	"honnef.co/go/prim/techxml"
)

const testJob = `technology: schematic
instances:
  - node: And
    at: [10, 0]
    connections:
      - {port: a, at: [6, 2], arc: wire}
    select:
      - {port: a, target: [6, -2]}
  - node: Transistor
    function: TRAPMOSD
    orient: R90
  - node: Wire_Pin
    outline: [[0, 0], [], [1, 1]]
arcs:
  - {arc: wire, tail: [0, 0], head: [6, 2]}
  - {arc: bus, tail: [0, 0], head: [0, 4], headArrow: true}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunJob(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runJob(&buf, prim.NewBuiltinRegistry(), writeFile(t, "job.yaml", testJob)))
	out := buf.String()

	require.Contains(t, out, "node schematic:And 8×6 R0 at (10, 0) function GATEAND bounds (6,-3)-(14,3)")
	require.Contains(t, out, "select a near (6, -2): [(6, -2)] ok=true")
	require.Contains(t, out, "function TRAPMOSD")
	require.Contains(t, out, "arc schematic:wire")
	require.Equal(t, 2, strings.Count(out, "\narc "))
}

func TestJobErrors(t *testing.T) {
	reg := prim.NewBuiltinRegistry()
	tests := []struct {
		job  string
		want string
	}{
		{"instances: []", "technology is required"},
		{"technology: mocmos", "unknown technology"},
		{"technology: schematic\ninstances: [{node: Flip-Flop}]", `no node "Flip-Flop"`},
		{"technology: schematic\ninstances: [{node: And, orient: R45}]", "unknown orientation"},
		{"technology: schematic\ninstances: [{node: And, function: TRANMOS}]", "has no alternatives"},
		{"technology: schematic\ninstances: [{node: And, at: [1, 2, 3]}]", "3 coordinates"},
		{"technology: schematic\ninstances: [{node: And, angles: [90]}]", "start and sweep"},
		{"technology: schematic\ninstances: [{node: And, connections: [{port: q}]}]", `no port "q"`},
		{"technology: schematic\ninstances: [{node: Transistor, connections: [{port: g, arc: bus}]}]", "arc bus cannot connect to Transistor.g"},
		{"technology: schematic\narcs: [{arc: rope}]", `no arc "rope"`},
		{"technology: [", "parse"},
	}
	for _, tt := range tests {
		err := runJob(&bytes.Buffer{}, reg, writeFile(t, "job.yaml", tt.job))
		require.ErrorContains(t, err, tt.want, tt.job)
	}
}

func TestDescribeAndCheck(t *testing.T) {
	reg := prim.NewBuiltinRegistry()
	var buf bytes.Buffer
	require.NoError(t, runDescribe(&buf, reg, prim.ArtworkName))

	path := writeFile(t, "artwork.xml", buf.String())
	require.NoError(t, runCheck(reg, path))

	drifted := strings.Replace(buf.String(), `strategy="spline"`, `strategy="outline"`, 1)
	err := runCheck(reg, writeFile(t, "drifted.xml", drifted))
	var mm *techxml.MismatchError
	require.True(t, errors.As(err, &mm), "got %v", err)
	require.Equal(t, prim.SplineName, mm.Node)
	require.Equal(t, "strategy", mm.Field)

	for _, name := range []string{"schematic.xml", "artwork.xml"} {
		require.NoError(t, runCheck(reg, filepath.Join("..", "..", "techxml", "testdata", name)))
	}
}
