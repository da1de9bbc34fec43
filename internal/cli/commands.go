package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/routegrid/routegrid/core"
	"github.com/routegrid/routegrid/dataset"
	"github.com/routegrid/routegrid/matrixcsv"
	"github.com/routegrid/routegrid/render"
	"github.com/routegrid/routegrid/shortestpath"
	"github.com/routegrid/routegrid/spanning"
	"github.com/routegrid/routegrid/traversal"
)

// maxListed caps how many traversal entries are printed, mirroring the
// "first 50 shown" behavior of the interactive menu.
const maxListed = 50

// buildGraphFromCSV loads and validates the matrix, then builds the graph.
func buildGraphFromCSV(path string) (*core.Graph, error) {
	m, err := matrixcsv.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return m.Graph()
}

// newInfoCmd reports basic graph statistics.
func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show basic graph info",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}

			fmt.Println(styleTitle.Render("City Graph"))
			printKeyValue("nodes", fmt.Sprintf("%d", g.NodeCount()))
			printKeyValue("edges", fmt.Sprintf("%d", g.EdgeCount()))
			sample := g.Nodes()
			if len(sample) > 10 {
				sample = sample[:10]
			}
			printKeyValue("sample", strings.Join(sample, ", "))

			return nil
		},
	}
}

// newTraverseCmd builds the bfs or dfs command; both share everything but
// the algorithm.
func (c *CLI) newTraverseCmd(algo string) *cobra.Command {
	run := traversal.BFS
	short := "Breadth-first traversal from a city"
	if algo == "dfs" {
		run = traversal.DFS
		short = "Depth-first traversal from a city"
	}

	return &cobra.Command{
		Use:   algo + " START",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}

			res, err := run(g, args[0])
			if err != nil {
				return err
			}
			printOrder(strings.ToUpper(algo), res.Order)

			return nil
		},
	}
}

// printOrder lists a visitation order, truncated to maxListed entries.
func printOrder(title string, order []string) {
	fmt.Println(styleTitle.Render(title+" order") + styleDim.Render(fmt.Sprintf(" (%d nodes)", len(order))))
	shown := order
	if len(shown) > maxListed {
		shown = shown[:maxListed]
	}
	for i, label := range shown {
		fmt.Printf("%s %s\n", styleDim.Render(fmt.Sprintf("%3d", i+1)), styleValue.Render(label))
	}
	if len(order) > maxListed {
		fmt.Println(styleDim.Render(fmt.Sprintf("… %d more", len(order)-maxListed)))
	}
}

// newRouteCmd finds the cheapest path between two cities.
func (c *CLI) newRouteCmd() *cobra.Command {
	var (
		algo string
		draw bool
	)

	cmd := &cobra.Command{
		Use:   "route SOURCE TARGET",
		Short: "Cheapest path between two cities",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}

			var p shortestpath.Path
			switch algo {
			case "dijkstra":
				p, err = shortestpath.Dijkstra(g, args[0], args[1])
			case "bellman-ford":
				p, err = shortestpath.BellmanFord(g, args[0], args[1])
			default:
				return fmt.Errorf("invalid algorithm: %s (must be 'dijkstra' or 'bellman-ford')", algo)
			}
			if err != nil {
				return err
			}

			if !p.Reachable() {
				printError("no path from %s to %s", args[0], args[1])
				return nil
			}

			printSuccess("%s: %d km", algo, p.Distance)
			printKeyValue("path", strings.Join(p.Nodes, " → "))

			if !draw {
				return nil
			}
			title := fmt.Sprintf("%s: %s → %s (%d km)", algo, args[0], args[1], p.Distance)
			dot := render.ToDOT(g, render.Options{Title: title, ShowWeights: true, Highlight: p.Nodes})

			return c.writeImage(cmd, "path.svg", dot)
		},
	}

	cmd.Flags().StringVar(&algo, "algo", "dijkstra", "algorithm: dijkstra (default), bellman-ford")
	cmd.Flags().BoolVar(&draw, "draw", false, "render the highlighted path to the output directory")

	return cmd
}

// newTourCmd builds the minimum spanning forest ("tour planner").
func (c *CLI) newTourCmd() *cobra.Command {
	var draw bool

	cmd := &cobra.Command{
		Use:   "tour",
		Short: "Minimum-distance tour skeleton connecting all cities (Kruskal MST)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}

			f, err := spanning.Kruskal(g)
			if err != nil {
				return err
			}

			printSuccess("spanning forest: %d edges, %d km total, %d tree(s)",
				len(f.Edges), f.TotalWeight, f.Trees)

			if !draw {
				return nil
			}
			// Render only the selected edges: rebuild a graph from the forest.
			tg, err := core.Build(g.Nodes(), f.Edges)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("MST (total %d km)", f.TotalWeight)
			dot := render.ToDOT(tg, render.Options{Title: title, ShowWeights: true})

			return c.writeImage(cmd, "mst.svg", dot)
		},
	}

	cmd.Flags().BoolVar(&draw, "draw", false, "render the forest to the output directory")

	return cmd
}

// newDrawCmd renders the full graph.
func (c *CLI) newDrawCmd() *cobra.Command {
	var (
		format  string
		weights bool
	)

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render the full city graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "svg" && format != "png" {
				return fmt.Errorf("invalid format: %s (must be 'svg' or 'png')", format)
			}
			g, err := c.loadGraph(cmd)
			if err != nil {
				return err
			}

			dot := render.ToDOT(g, render.Options{Title: "Full City Graph", ShowWeights: weights})

			return c.writeImage(cmd, "graph."+format, dot)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png")
	cmd.Flags().BoolVar(&weights, "weights", true, "label edges with distances")

	return cmd
}

// newGenerateCmd writes the reproducible sample dataset.
func (c *CLI) newGenerateCmd() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the sample city distance matrix CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			f, err := os.Create(c.cfg.Data)
			if err != nil {
				return fmt.Errorf("create %s: %w", c.cfg.Data, err)
			}
			defer f.Close()

			cities := dataset.Cities()
			if err := dataset.WriteCSV(f, cities, dataset.DistanceMatrix(seed)); err != nil {
				return err
			}
			logger.Debug("dataset written", "seed", seed, "cities", len(cities))
			printSuccess("wrote %s with %d cities", c.cfg.Data, len(cities))

			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 42, "random seed for the distance matrix")

	return cmd
}

// writeImage renders DOT to the requested file under the output directory.
func (c *CLI) writeImage(cmd *cobra.Command, name, dot string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	var (
		data []byte
		err  error
	)
	if strings.HasSuffix(name, ".png") {
		data, err = render.PNG(ctx, dot)
	} else {
		data, err = render.SVG(ctx, dot)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(c.cfg.Output, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", c.cfg.Output, err)
	}
	path := filepath.Join(c.cfg.Output, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Debug("image written", "path", path, "bytes", len(data))
	printFile(path)

	return nil
}
