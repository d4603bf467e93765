// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/isograph/fastgraph"
	"github.com/katalvlaran/isograph/generator"
	"github.com/katalvlaran/isograph/graphio"
	"github.com/katalvlaran/isograph/isomorphism"
	"github.com/katalvlaran/isograph/motif"
	"github.com/katalvlaran/isograph/subgraph"
)

func (a *app) load(path string) (*fastgraph.Graph, error) {
	g, err := graphio.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("graph loaded", "path", path, "nodes", g.NodeCount(), "edges", g.EdgeCount())
	return g, nil
}

func labelsOf(g *fastgraph.Graph, nodes []int) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = g.NodeLabel(n)
	}
	return strings.Join(parts, " ")
}

func newIsoCmd(a *app) *cobra.Command {
	var showMapping bool
	cmd := &cobra.Command{
		Use:   "iso GRAPH1 GRAPH2",
		Short: "Test two connected graphs for isomorphism",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g1, err := a.load(args[0])
			if err != nil {
				return err
			}
			g2, err := a.load(args[1])
			if err != nil {
				return err
			}
			e, err := isomorphism.New(g1, isomorphism.WithStats(a.stats))
			if err != nil {
				return errors.Wrap(err, args[0])
			}
			ok, err := e.IsomorphicContext(cmd.Context(), g2)
			if err != nil {
				return errors.Wrap(err, args[1])
			}

			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "not isomorphic")
				return nil
			}
			fmt.Fprintln(out, "isomorphic")
			if showMapping {
				for n1, n2 := range e.LastMatch() {
					fmt.Fprintf(out, "%s\t%s\n", g1.NodeLabel(n1), g2.NodeLabel(n2))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showMapping, "mapping", false, "print the node mapping")
	return cmd
}

func newFindCmd(a *app) *cobra.Command {
	var (
		limit  int
		labels bool
	)
	cmd := &cobra.Command{
		Use:   "find TARGET PATTERN",
		Short: "List embeddings of a pattern graph in a target graph",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("limit") {
				limit = a.cfg.Search.Limit
			}
			if !cmd.Flags().Changed("labels") {
				labels = a.cfg.Search.Labels
			}
			if limit < 0 {
				return errors.Errorf("negative limit %d", limit)
			}

			target, err := a.load(args[0])
			if err != nil {
				return err
			}
			pattern, err := a.load(args[1])
			if err != nil {
				return err
			}

			opts := []subgraph.Option{subgraph.WithLimit(limit), subgraph.WithStats(a.stats)}
			if labels {
				opts = append(opts, subgraph.WithNodeEquivalence(subgraph.NodeLabels(target, pattern)))
			}
			f := subgraph.New(target, pattern, opts...)
			found := f.Search()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "found %d mappings\n", len(f.FoundMappings()))
			for _, m := range f.FoundMappings() {
				fmt.Fprintln(out, labelsOf(target, m.Nodes))
			}
			a.logger.Info("subgraph search finished", "found", found, "mappings", len(f.FoundMappings()))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many mappings (0 = all)")
	cmd.Flags().BoolVar(&labels, "labels", false, "match node labels")
	return cmd
}

func newMotifCmd(a *app) *cobra.Command {
	var (
		size, samples, attempts, workers int
		seed                             int64
	)
	cmd := &cobra.Command{
		Use:   "motif GRAPH",
		Short: "Sample connected k-node subgraphs and group them into isomorphism classes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc := a.cfg.Motif
			flags := cmd.Flags()
			if flags.Changed("size") {
				mc.Size = size
			}
			if flags.Changed("samples") {
				mc.Samples = samples
			}
			if flags.Changed("attempts") {
				mc.Attempts = attempts
			}
			if flags.Changed("workers") {
				mc.Workers = workers
			}
			if flags.Changed("seed") {
				mc.Seed = seed
			}
			if mc.Samples < 1 {
				return errors.Errorf("samples must be positive, got %d", mc.Samples)
			}

			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			opts := []motif.Option{
				motif.WithSeed(mc.Seed),
				motif.WithSamples(mc.Samples),
				motif.WithStats(a.stats),
				motif.WithLogger(a.logger),
			}
			if mc.Attempts > 0 {
				opts = append(opts, motif.WithAttempts(mc.Attempts))
			}
			if mc.Workers > 0 {
				opts = append(opts, motif.WithWorkers(mc.Workers))
			}

			res, err := motif.Find(cmd.Context(), g, mc.Size, opts...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d subgraphs of size %d in %d classes\n", res.Sampled, res.K, len(res.Classes))
			for i, c := range res.Classes {
				fmt.Fprintf(out, "%d\t%d\t%s\n", i, len(c.Members), c.Fingerprint)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVarP(&size, "size", "k", 3, "motif size in nodes")
	f.IntVar(&samples, "samples", motif.DefaultSamples, "distinct subgraphs to sample")
	f.IntVar(&attempts, "attempts", 0, "growth attempts (0 = 10 per sample)")
	f.IntVar(&workers, "workers", 0, "engine workers (0 = GOMAXPROCS)")
	f.Int64Var(&seed, "seed", 1, "random seed")
	return cmd
}

func newGenCmd(a *app) *cobra.Command {
	var (
		nodes, edges, rewire int
		seed                 int64
		simple, connected    bool
		name, output         string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random graph as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []generator.Option{generator.WithSeed(seed)}
			if simple {
				opts = append(opts, generator.WithSimple())
			}
			if connected {
				opts = append(opts, generator.WithConnected())
			}
			if name != "" {
				opts = append(opts, generator.WithName(name))
			}

			g, err := generator.Random(nodes, edges, opts...)
			if err != nil {
				return err
			}
			if rewire > 0 {
				if g, err = generator.RandomRewired(g, rewire, opts...); err != nil {
					return err
				}
			}
			a.logger.Info("graph generated", "name", g.Name(), "nodes", g.NodeCount(), "edges", g.EdgeCount())

			if output == "" {
				return graphio.WriteJSON(cmd.OutOrStdout(), g)
			}
			return graphio.SaveJSON(output, g)
		},
	}
	f := cmd.Flags()
	f.IntVar(&nodes, "nodes", 10, "node count")
	f.IntVar(&edges, "edges", 15, "edge count")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.BoolVar(&simple, "simple", false, "no self-loops or parallel edges")
	f.BoolVar(&connected, "connected", false, "lay a spanning tree first")
	f.IntVar(&rewire, "rewire", 0, "degree-preserving edge swaps to apply afterwards")
	f.StringVar(&name, "name", "", "graph name")
	f.StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check GRAPH",
		Short: "Verify a graph file and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.load(args[0])
			if err != nil {
				return err
			}
			if err := g.CheckConsistency(); err != nil {
				return errors.Wrap(err, args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "name\t%s\n", g.Name())
			fmt.Fprintf(out, "nodes\t%d\n", g.NodeCount())
			fmt.Fprintf(out, "edges\t%d\n", g.EdgeCount())
			fmt.Fprintf(out, "connected\t%t\n", g.Connected())
			fmt.Fprintf(out, "components\t%d\n", len(g.Components()))
			fmt.Fprintf(out, "max degree\t%d\n", g.MaximumDegree())
			return nil
		},
	}
}
