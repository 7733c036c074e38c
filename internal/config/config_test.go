package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/pargraph/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pargraph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PARGRAPH_THREADS", "PARGRAPH_SEED", "PARGRAPH_LOG_LEVEL", "PARGRAPH_LOG_FORMAT"} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Zero(t, cfg.Threads)
	assert.Equal(t, builder.DefaultSeed, cfg.Seed)
	assert.Equal(t, DefaultDetailLimit, cfg.Report.DetailLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, DefaultVertices, cfg.Graph.Vertices)
	assert.Equal(t, DefaultEdgeCount, cfg.Graph.Edges.Count)
	assert.False(t, cfg.Graph.Explicit())
}

func TestLoad_RandomGraph(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
threads: 4
seed: 42
report:
  detail_limit: 8
logging:
  level: DEBUG
  format: json
graph:
  vertices: 100
  edges: 250
  max_weight: 30
  directed: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Threads)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 8, cfg.Report.DetailLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, Graph{Vertices: 100, Directed: true, MaxWeight: 30, Edges: Edges{Count: 250}}, cfg.Graph)
}

func TestLoad_ExplicitGraph(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
graph:
  vertices: 3
  index_offset: 1
  edges:
    - [1, 2, 5]
    - [2, 3, 7]
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Graph.Explicit())
	assert.Equal(t, [][3]int{{1, 2, 5}, {2, 3, 7}}, cfg.Graph.Edges.List)
	assert.Equal(t, 1, cfg.Graph.IndexOffset)
}

func TestLoad_EnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("PARGRAPH_THREADS", "3")
	t.Setenv("PARGRAPH_SEED", "99")
	t.Setenv("PARGRAPH_LOG_LEVEL", "warn")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Threads)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "warn", cfg.Logging.Level)

	// YAML wins over the environment
	cfg, err = Load(writeConfig(t, "threads: 5\n"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Threads)

	// unparsable values are ignored
	t.Setenv("PARGRAPH_THREADS", "many")
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Zero(t, cfg.Threads)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	cases := map[string]string{
		"negative threads":  "threads: -1\n",
		"bad level":         "logging:\n  level: loud\n",
		"bad format":        "logging:\n  format: xml\n",
		"too many edges":    "graph:\n  vertices: 3\n  edges: 4\n",
		"short triple":      "graph:\n  vertices: 3\n  edges:\n    - [0, 1]\n",
		"edge out of range": "graph:\n  vertices: 2\n  edges:\n    - [0, 2, 1]\n",
		"edges mapping":     "graph:\n  edges:\n    a: 1\n",
		"not yaml":          "threads: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config file")
}
