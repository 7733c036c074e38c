package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pargraph/prim_kruskal"
)

func newAPSPCmd(a *app) *cobra.Command {
	var parallel bool
	cmd := &cobra.Command{
		Use:   "apsp",
		Short: "All-pairs shortest paths (Floyd-Warshall)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := inputMatrix(a.cfg)
			if err != nil {
				return err
			}
			var report string
			if parallel {
				_, report, err = a.engine.ShortestPathsParallel(m, a.cfg.Threads)
			} else {
				_, report, err = a.engine.ShortestPaths(m)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), report)
			return err
		},
	}
	cmd.Flags().BoolVar(&parallel, "parallel", false, "use the parallel variant")
	return cmd
}

func newComponentsCmd(a *app) *cobra.Command {
	var parallel bool
	cmd := &cobra.Command{
		Use:   "components",
		Short: "Connected components (DFS or parallel union-find)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := inputAdjacency(a.cfg)
			if err != nil {
				return err
			}
			var report string
			if parallel {
				_, report, err = a.engine.ConnectedComponentsParallel(g, a.cfg.Threads)
			} else {
				_, report, err = a.engine.ConnectedComponents(g)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), report)
			return err
		},
	}
	cmd.Flags().BoolVar(&parallel, "parallel", false, "use the parallel variant")
	return cmd
}

func newMSTCmd(a *app) *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Minimum spanning tree (Kruskal or Prim)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := inputAdjacency(a.cfg)
			if err != nil {
				return err
			}
			_, report, err := a.engine.MinimumSpanningTree(g, prim_kruskal.WithMethod(method))
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), report)
			return err
		},
	}
	cmd.Flags().StringVar(&method, "method", prim_kruskal.MethodKruskal, "MST algorithm: kruskal or prim")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run sequential and parallel variants and report speedup",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := inputMatrix(a.cfg)
			if err != nil {
				return err
			}
			g, err := inputAdjacency(a.cfg)
			if err != nil {
				return err
			}
			summary, detailed, cmpErr := a.engine.Compare(m, g, a.cfg.Threads)
			if summary == "" {
				return cmpErr
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintln(out, summary); err != nil {
				return err
			}
			if _, err := fmt.Fprint(out, detailed); err != nil {
				return err
			}
			return cmpErr
		},
	}
}
