// Package config loads the pargraph YAML configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pargraph/builder"
)

// Defaults applied by validate to unset fields.
const (
	DefaultDetailLimit = 20
	DefaultVertices    = 10
	DefaultEdgeCount   = 15
	DefaultMaxWeight   = 10
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
)

// Config represents the top-level YAML configuration.
type Config struct {
	Threads int     `yaml:"threads"`
	Seed    int64   `yaml:"seed"`
	Report  Report  `yaml:"report"`
	Logging Logging `yaml:"logging"`
	Graph   Graph   `yaml:"graph"`
}

// Report controls report verbosity.
type Report struct {
	// DetailLimit is the largest vertex count for which results are printed.
	DetailLimit int `yaml:"detail_limit"`
}

// Logging selects the slog handler.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Graph describes the input graph: random when Edges is a count, explicit
// when Edges is a list of [from, to, weight] triples.
type Graph struct {
	Vertices    int   `yaml:"vertices"`
	Directed    bool  `yaml:"directed"`
	MaxWeight   int   `yaml:"max_weight"`
	IndexOffset int   `yaml:"index_offset"`
	Edges       Edges `yaml:"edges"`
}

// Edges holds either a random edge count or an explicit edge list.
type Edges struct {
	Count int
	List  [][3]int
}

// UnmarshalYAML accepts a scalar count or a sequence of triples.
func (e *Edges) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		return node.Decode(&e.Count)
	case yaml.SequenceNode:
		var raw [][]int
		if err := node.Decode(&raw); err != nil {
			return err
		}
		e.List = make([][3]int, len(raw))
		for i, t := range raw {
			if len(t) != 3 {
				return fmt.Errorf("line %d: edges[%d] has %d values, want [from, to, weight]", node.Line, i, len(t))
			}
			e.List[i] = [3]int{t[0], t[1], t[2]}
		}
		return nil
	default:
		return fmt.Errorf("line %d: edges must be a count or a list of [from, to, weight]", node.Line)
	}
}

// Explicit reports whether the graph is given edge by edge.
func (g Graph) Explicit() bool { return len(g.Edges.List) > 0 }

// Default returns the configuration used when no file is given and no
// environment variable is set.
func Default() *Config {
	var cfg Config
	// the zero config always validates
	_ = cfg.validate()
	return &cfg
}

// Load reads and parses a YAML config file. An empty path starts from an
// empty configuration, so that environment fallbacks and defaults still apply.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyEnv fills in unset fields from environment variables.
// YAML values take precedence; env vars are used only as fallback.
func (c *Config) applyEnv() {
	if c.Threads == 0 {
		if s := os.Getenv("PARGRAPH_THREADS"); s != "" {
			if n, err := strconv.Atoi(s); err == nil {
				c.Threads = n
			}
		}
	}
	if c.Seed == 0 {
		if s := os.Getenv("PARGRAPH_SEED"); s != "" {
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				c.Seed = n
			}
		}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = os.Getenv("PARGRAPH_LOG_LEVEL")
	}
	if c.Logging.Format == "" {
		c.Logging.Format = os.Getenv("PARGRAPH_LOG_FORMAT")
	}
}

// validate checks ranges and fills defaults.
func (c *Config) validate() error {
	if c.Threads < 0 {
		return fmt.Errorf("threads must be >= 0 (0 means all CPUs), got %d", c.Threads)
	}
	if c.Seed == 0 {
		c.Seed = builder.DefaultSeed
	}
	if c.Report.DetailLimit == 0 {
		c.Report.DetailLimit = DefaultDetailLimit
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = DefaultLogLevel
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "":
		c.Logging.Format = DefaultLogFormat
	case "text", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of text, json", c.Logging.Format)
	}

	return c.Graph.validate()
}

func (g *Graph) validate() error {
	if g.Vertices < 0 {
		return fmt.Errorf("graph.vertices must be >= 0, got %d", g.Vertices)
	}
	if g.Explicit() {
		for i, e := range g.Edges.List {
			from, to := e[0]-g.IndexOffset, e[1]-g.IndexOffset
			if from < 0 || from >= g.Vertices || to < 0 || to >= g.Vertices {
				return fmt.Errorf("graph.edges[%d]: (%d,%d) outside %d vertices with index_offset %d",
					i, e[0], e[1], g.Vertices, g.IndexOffset)
			}
		}
		return nil
	}

	if g.Vertices == 0 {
		g.Vertices = DefaultVertices
		if g.Edges.Count == 0 {
			g.Edges.Count = DefaultEdgeCount
		}
	}
	if g.MaxWeight == 0 {
		g.MaxWeight = DefaultMaxWeight
	}
	if err := builder.Validate(g.Vertices, g.MaxWeight, g.Edges.Count, g.Directed); err != nil {
		return fmt.Errorf("graph: %w", err)
	}
	return nil
}
