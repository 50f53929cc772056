package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/bfs"
	"github.com/katalvlaran/gridpath/dirsearch"
	"github.com/katalvlaran/gridpath/garden"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/lanparty"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/racetrack"
	"github.com/katalvlaran/gridpath/ramrun"
)

var (
	version   = "dev"
	cfgFile   string
	logFormat string
	logLevel  string
	cfg       *config.Config
	logger    *logrus.Logger
)

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Grid pathfinding puzzles",
		Long:          "Solve turn-penalized mazes, falling-byte memory runs and LAN party cliques.",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(cfgFile)
			if err != nil {
				return err
			}
			// flags win over config
			if !cmd.Flags().Changed("log-level") {
				logLevel = cfg.Log.Level
			}
			if !cmd.Flags().Changed("log-format") {
				logFormat = cfg.Log.Format
			}
			logger, err = logging.New(os.Stderr, logLevel, logFormat)
			return err
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./gridpath.yaml)")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log output format (text, json)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		mazeCmd(),
		ramCmd(),
		lanCmd(),
		raceCmd(),
		gardenCmd(),
	)
	return root
}

// --- maze ---

func mazeCmd() *cobra.Command {
	var render bool

	cmd := &cobra.Command{
		Use:   "maze <file>",
		Short: "Lowest reindeer score and best seat count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			m, err := maze.Parse(input)
			if err != nil {
				return err
			}
			opts, err := cfg.SearchOptions()
			if err != nil {
				return err
			}
			opts = append(opts, dirsearch.WithLogger(logger))

			res, err := m.Solve(opts...)
			if err != nil {
				return err
			}
			logger.WithField("file", args[0]).Info("maze solved")
			fmt.Fprintf(cmd.OutOrStdout(), "lowest score: %d\nbest seats:   %d\n", res.Cost, res.CellCount())
			if render {
				fmt.Fprintln(cmd.OutOrStdout(), m.Render(res))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&render, "render", false, "print the maze with best seats marked 'O'")
	return cmd
}

// --- ram ---

func ramCmd() *cobra.Command {
	var size, count int

	cmd := &cobra.Command{
		Use:   "ram <file>",
		Short: "Shortest memory exit and first blocking byte",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			bytes, err := ramrun.Parse(input)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("size") {
				size = cfg.RAM.Size
			}
			if !cmd.Flags().Changed("bytes") {
				count = cfg.RAM.Bytes
			}
			if count > len(bytes) {
				count = len(bytes)
			}
			opts := []bfs.Option{bfs.WithLogger(logger)}

			steps, err := ramrun.MinSteps(bytes, size, count, opts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "min steps after %d bytes: %d\n", count, steps)

			blocker, err := ramrun.FirstBlocker(bytes, size, count, opts...)
			if err != nil {
				logger.WithError(err).Warn("no blocking byte")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "first blocking byte:     %s\n", ramrun.Format(blocker))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 70, "largest coordinate of the memory space")
	cmd.Flags().IntVar(&count, "bytes", 1024, "bytes fallen before measuring")
	return cmd
}

// --- lan ---

func lanCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "lan <file>",
		Short: "Prefixed triangle count and LAN party password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			g, err := lanparty.Parse(input)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("prefix") {
				prefix = cfg.LAN.Prefix
			}
			logger.WithFields(logrus.Fields{"computers": g.Len(), "prefix": prefix}).Debug("network parsed")

			fmt.Fprintf(cmd.OutOrStdout(), "triangles with %q: %d\npassword: %s\n",
				prefix, lanparty.CountTriangles(g, prefix), lanparty.Password(g))
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "t", "name prefix a triangle member must carry")
	return cmd
}

// --- race ---

func raceCmd() *cobra.Command {
	var threshold int

	cmd := &cobra.Command{
		Use:   "race <file>",
		Short: "Count racetrack cheats saving at least a threshold",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			tr, err := racetrack.Parse(input, bfs.WithLogger(logger))
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("threshold") {
				threshold = cfg.Race.Threshold
			}
			logger.WithFields(logrus.Fields{"length": tr.Length(), "threshold": threshold}).Debug("track parsed")

			for _, jump := range []int{cfg.Race.ShortJump, cfg.Race.LongJump} {
				n, err := tr.Cheats(jump, threshold)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "cheats up to %d steps: %d\n", jump, n)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&threshold, "threshold", 100, "minimum steps a cheat must save")
	return cmd
}

// --- garden ---

func gardenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "garden <file>",
		Short: "Fence price by perimeter and by sides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(args[0])
			if err != nil {
				return err
			}
			gd, err := garden.Parse(input)
			if err != nil {
				return err
			}
			logger.WithField("regions", len(gd.Regions)).Debug("garden parsed")
			fmt.Fprintf(cmd.OutOrStdout(), "price:      %d\nbulk price: %d\n", gd.Price(), gd.BulkPrice())
			return nil
		},
	}
}

// readInput reads a puzzle file; "-" means stdin.
func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}
