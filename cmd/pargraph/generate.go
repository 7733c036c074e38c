package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/benchmark"
	"github.com/katalvlaran/pargraph/builder"
	"github.com/katalvlaran/pargraph/core"
)

func newGenerateCmd(a *app) *cobra.Command {
	var (
		vertices, edges, maxWeight int
		directed                   bool
		format                     string
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random weighted graph",
		Long: `Generates a graph with exactly --edges distinct edges and uniform weights in
[1, --max-weight], using the configured seed. Requests with more edges than the
vertex count allows are rejected.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := builder.Validate(vertices, maxWeight, edges, directed); err != nil {
				return err
			}
			seed := builder.WithSeed(a.cfg.Seed)
			out := cmd.OutOrStdout()
			switch format {
			case "matrix":
				return benchmark.WriteMatrix(out, builder.RandomMatrix(vertices, maxWeight, edges, directed, seed))
			case "list":
				return writeAdjacency(out, builder.RandomAdjacency(vertices, maxWeight, edges, directed, seed))
			default:
				return fmt.Errorf("unknown format: %s (supported: matrix, list)", format)
			}
		},
	}

	f := cmd.Flags()
	f.IntVar(&vertices, "vertices", 10, "number of vertices")
	f.IntVar(&edges, "edges", 15, "number of distinct edges")
	f.IntVar(&maxWeight, "max-weight", 10, "largest edge weight")
	f.BoolVar(&directed, "directed", false, "generate arcs instead of undirected edges")
	f.StringVar(&format, "format", "matrix", "output format: matrix or list")
	return cmd
}

// writeAdjacency prints one "Vertex i: -> to(weight) ..." line per vertex.
func writeAdjacency(w io.Writer, g *core.Adjacency) error {
	for v := 0; v < g.Order(); v++ {
		if _, err := fmt.Fprintf(w, "Vertex %d:", v); err != nil {
			return err
		}
		for _, nb := range g.Neighbors(v) {
			if _, err := fmt.Fprintf(w, " -> %d(%d)", nb.To, nb.Weight); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
