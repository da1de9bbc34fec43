package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/routegrid/routegrid/core"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version, typically
// injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds the resolved configuration shared by all commands.
type CLI struct {
	cfg Config
}

// Execute runs the routegrid CLI and returns an error if any command fails.
//
// The root command wires persistent flags (--verbose, --config, --data,
// --output), resolves the effective configuration (flags over TOML file over
// defaults), attaches a logger to the context, and dispatches to the
// subcommands. ctx cancellation aborts long-running work such as rendering.
func Execute(ctx context.Context) error {
	var (
		verbose bool
		cfgPath string
		data    string
		output  string
	)
	c := &CLI{}

	root := &cobra.Command{
		Use:          "routegrid",
		Short:        "routegrid answers routing questions over a city distance matrix",
		Long:         `routegrid loads a symmetric city distance matrix and answers connectivity and routing questions over it: traversal orders, cheapest paths, and a minimum-cost tour skeleton, with optional Graphviz rendering.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))

			cfg, err := loadConfig(cfgPath)
			if err != nil {
				return err
			}
			c.cfg = cfg.merge(data, output)

			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("routegrid %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "TOML config file (default routegrid.toml if present)")
	root.PersistentFlags().StringVar(&data, "data", "", "distance-matrix CSV path")
	root.PersistentFlags().StringVarP(&output, "output", "o", "", "output directory for rendered images")

	root.AddCommand(c.newInfoCmd())
	root.AddCommand(c.newTraverseCmd("bfs"))
	root.AddCommand(c.newTraverseCmd("dfs"))
	root.AddCommand(c.newRouteCmd())
	root.AddCommand(c.newTourCmd())
	root.AddCommand(c.newDrawCmd())
	root.AddCommand(c.newGenerateCmd())
	root.AddCommand(c.newMenuCmd())

	return root.ExecuteContext(ctx)
}

// loadGraph reads the configured distance matrix and builds the graph.
func (c *CLI) loadGraph(cmd *cobra.Command) (*core.Graph, error) {
	logger := loggerFromContext(cmd.Context())
	logger.Debug("loading distance matrix", "path", c.cfg.Data)

	g, err := buildGraphFromCSV(c.cfg.Data)
	if err != nil {
		return nil, err
	}
	logger.Debug("graph ready", "nodes", g.NodeCount(), "edges", g.EdgeCount())

	return g, nil
}
