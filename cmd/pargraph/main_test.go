package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pargraph/core"
	"github.com/katalvlaran/pargraph/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"PARGRAPH_THREADS", "PARGRAPH_SEED", "PARGRAPH_LOG_LEVEL", "PARGRAPH_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
	var out, errOut bytes.Buffer
	a := &app{}
	root := newRootCmd(a)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	a.stopProfile()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pargraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const explicitConfig = `
report:
  detail_limit: 10
graph:
  vertices: 5
  index_offset: 1
  edges:
    - [1, 2, 2]
    - [1, 3, 4]
    - [2, 3, 1]
    - [3, 4, 3]
`

func TestGenerate_Matrix(t *testing.T) {
	out, err := execute(t, "generate", "--vertices", "4", "--edges", "6", "--seed", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.NotContains(t, out, "∞", "complete graph has no missing edges")
}

func TestGenerate_ListAndRejects(t *testing.T) {
	out, err := execute(t, "generate", "--vertices", "3", "--edges", "2", "--format", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Vertex 0:")
	assert.Equal(t, 4, strings.Count(out, "->"), "two undirected edges appear twice")

	_, err = execute(t, "generate", "--vertices", "3", "--edges", "4")
	assert.Error(t, err)
	_, err = execute(t, "generate", "--format", "dot")
	assert.Error(t, err)
}

func TestAPSP_ExplicitGraph(t *testing.T) {
	path := writeConfig(t, explicitConfig)
	for _, args := range [][]string{{"apsp"}, {"apsp", "--parallel", "--threads", "2"}} {
		out, err := execute(t, append(args, "--config", path)...)
		require.NoError(t, err)
		assert.Contains(t, out, "Final shortest paths matrix:\n0 2 3 6 ∞ \n")
	}
}

func TestComponentsAndMST(t *testing.T) {
	path := writeConfig(t, explicitConfig)

	out, err := execute(t, "components", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Component 1: 0 1 2 3 (size: 4)")

	out, err = execute(t, "components", "--parallel", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Number of connected components: 2")

	out, err = execute(t, "mst", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Total weight: 6")

	out, err = execute(t, "mst", "--method", "prim", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Minimum Spanning Tree (Prim)")
	assert.Contains(t, out, "Total weight: 6")

	_, err = execute(t, "mst", "--method", "boruvka", "--config", path)
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	out, err := execute(t, "compare", "--threads", "2", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, out, "FLOYD-WARSHALL")
	assert.Contains(t, out, "CONNECTED COMPONENTS")
	assert.Equal(t, 4, strings.Count(out, "PERFORMANCE BENCHMARK:"))
}

func TestBadFlags(t *testing.T) {
	_, err := execute(t, "apsp", "--threads", "-2")
	assert.Error(t, err)
	_, err = execute(t, "apsp", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.Error(t, err)
}

func TestCPUProfile(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "apsp", "--cpuprofile", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "cpu.pprof"))
}

// TestCPUProfile_FlushedOnFailure starts profiling, then fails inside RunE.
func TestCPUProfile_FlushedOnFailure(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "generate", "--vertices", "3", "--edges", "10", "--cpuprofile", dir)
	require.Error(t, err)
	info, err := os.Stat(filepath.Join(dir, "cpu.pprof"))
	require.NoError(t, err)
	assert.Positive(t, info.Size(), "profile must be flushed")
}

func TestSymmetric_KeepsLighterArc(t *testing.T) {
	cfg := config.Default()
	cfg.Graph = config.Graph{
		Vertices: 3,
		Directed: true,
		Edges:    config.Edges{List: [][3]int{{0, 1, 5}, {1, 0, 2}, {1, 2, 4}}},
	}
	a, err := inputAdjacency(cfg)
	require.NoError(t, err)
	assert.Equal(t, []core.Neighbor{{To: 1, Weight: 2}}, a.Neighbors(0))
	assert.Equal(t, []core.Neighbor{{To: 0, Weight: 2}, {To: 2, Weight: 4}}, a.Neighbors(1))
}
