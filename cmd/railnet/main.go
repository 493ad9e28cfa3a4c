package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/railnet/config"
	"github.com/katalvlaran/railnet/loader"
	"github.com/katalvlaran/railnet/logging"
	"github.com/katalvlaran/railnet/rail"
)

var version = "0.1.0-dev"

// sampleRoutes is used when no input file is configured.
const sampleRoutes = "Graph: AB5, BC4, CD8, DC8, DE6, AD5, CE2, EB3, AE7"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "railnet",
		Short: "Rail network route queries",
		Long: `railnet answers questions about a one-way rail network: the distance
of a given route, the shortest route between two stations, and the trips
between two stations under a stop count or distance bound.

Routes are read from --input (tokens such as AB5, BC4); without one the
built-in sample network is used.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("input", "", "Route file (overrides configuration)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Bool("self-path-zero", false, "shortest X X answers [X] with distance 0")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDistanceCmd(),
		newShortestCmd(),
		newPathsCmd(),
		newReportCmd(),
		newReachCmd(),
		newExploreCmd(),
		newStatsCmd(),
	)

	return rootCmd
}

// openNetwork merges configuration with flags and loads the routes.
func openNetwork(cmd *cobra.Command) (*rail.Network, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if v, _ := cmd.Flags().GetString("input"); v != "" {
		cfg.Input.File = v
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Logging.Level = v
	}
	if cmd.Flags().Changed("self-path-zero") {
		cfg.Query.AllowZeroLengthSelfPath, _ = cmd.Flags().GetBool("self-path-zero")
	}

	logger := logging.NewWriter(cmd.ErrOrStderr(), cfg.Logging).
		With(slog.String("run_id", uuid.NewString()))
	n := rail.New(
		rail.WithLogger(logger),
		rail.WithZeroLengthSelfPath(cfg.Query.AllowZeroLengthSelfPath),
		rail.WithMaxResults(cfg.Query.MaxResults),
		rail.WithClosedRouteThreshold(cfg.Query.ClosedRouteThreshold),
		rail.WithContext(cmd.Context()),
	)

	if cfg.Input.File == "" {
		_, err = loader.Load(strings.NewReader(sampleRoutes), n)
	} else {
		_, err = loader.LoadFile(cfg.Input.File, n)
	}
	if err != nil {
		return nil, err
	}

	return n, nil
}
