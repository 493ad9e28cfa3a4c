package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/railnet/rail"
)

// noSuchRoute is printed in place of a distance that does not exist.
const noSuchRoute = "NO SUCH ROUTE"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				_ = json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "railnet version %s\n", version)
			}
		},
	}
}

func newDistanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "distance A-B-C",
		Short:   "Distance of following the given stations in order",
		Example: "  railnet distance A-E-B-C-D",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNetwork(cmd)
			if err != nil {
				return err
			}
			path := strings.Split(args[0], "-")
			d, err := n.DistanceOfRoute(path...)
			if err != nil && !errors.Is(err, rail.ErrNoRoute) {
				return err
			}

			return writeDistance(cmd, path, d)
		},
	}
}

func newShortestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shortest SOURCE DESTINATION",
		Short: "Shortest route between two stations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNetwork(cmd)
			if err != nil {
				return err
			}
			path, err := n.ShortestPath(args[0], args[1])
			if err != nil && !errors.Is(err, rail.ErrNoRoute) {
				return err
			}
			d := rail.NoRoute
			if err == nil {
				if d, err = n.DistanceOfRoute(path...); err != nil {
					return err
				}
			}

			return writeDistance(cmd, path, d)
		},
	}
}

func newPathsCmd() *cobra.Command {
	pathsCmd := &cobra.Command{
		Use:   "paths",
		Short: "Enumerate trips between two stations under a bound",
	}
	pathsCmd.AddCommand(
		newBoundedPathsCmd("max-stops", "Trips with at most N stops",
			func(n *rail.Network, src, dst string, bound int64) ([][]string, error) {
				return n.AllPathsWithMaxStops(src, dst, int(bound))
			}),
		newBoundedPathsCmd("exact-stops", "Trips with exactly N stops",
			func(n *rail.Network, src, dst string, bound int64) ([][]string, error) {
				return n.AllPathsWithNumStops(src, dst, int(bound))
			}),
		newBoundedPathsCmd("within", "Trips shorter than N",
			func(n *rail.Network, src, dst string, bound int64) ([][]string, error) {
				return n.AllPathsLessThanDistance(src, dst, bound)
			}),
	)

	return pathsCmd
}

type enumerateFunc func(n *rail.Network, source, destination string, bound int64) ([][]string, error)

func newBoundedPathsCmd(use, short string, run enumerateFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " SOURCE DESTINATION N",
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			bound, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid bound %q: %w", args[2], err)
			}
			n, err := openNetwork(cmd)
			if err != nil {
				return err
			}
			paths, err := run(n, args[0], args[1], bound)
			if err != nil && !errors.Is(err, rail.ErrResultLimit) {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(map[string]any{"count": len(paths), "paths": paths})
			}
			for _, p := range paths {
				fmt.Fprintln(out, strings.Join(p, "-"))
			}
			fmt.Fprintf(out, "%d trips\n", len(paths))

			return err
		},
	}
}

func newReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Answer the ten reference questions for the loaded network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNetwork(cmd)
			if err != nil {
				return err
			}

			return writeReport(cmd.OutOrStdout(), n)
		},
	}
}

// writeReport prints the classic ten outputs. The queries run concurrently;
// output order is fixed. A missing station or route prints NO SUCH ROUTE
// (or a zero count); any other failure aborts the report.
func writeReport(w io.Writer, n *rail.Network) error {
	distance := func(route ...string) func() (string, error) {
		return func() (string, error) {
			d, err := n.DistanceOfRoute(route...)
			if err != nil && !absent(err) {
				return "", err
			}
			return formatDistance(d), nil
		}
	}
	count := func(query func() ([][]string, error)) func() (string, error) {
		return func() (string, error) {
			paths, err := query()
			if err != nil && !absent(err) {
				return "", err
			}
			return strconv.Itoa(len(paths)), nil
		}
	}
	shortest := func(source, destination string) func() (string, error) {
		return func() (string, error) {
			d, err := n.ShortestDistance(source, destination)
			if err != nil && !absent(err) {
				return "", err
			}
			return formatDistance(d), nil
		}
	}

	queries := []func() (string, error){
		distance("A", "B", "C"),
		distance("A", "D"),
		distance("A", "D", "C"),
		distance("A", "E", "B", "C", "D"),
		distance("A", "E", "D"),
		count(func() ([][]string, error) { return n.AllPathsWithMaxStops("C", "C", 3) }),
		count(func() ([][]string, error) { return n.AllPathsWithNumStops("A", "C", 4) }),
		shortest("A", "C"),
		shortest("B", "B"),
		count(func() ([][]string, error) { return n.AllPathsLessThanDistance("C", "C", 30) }),
	}

	results := make([]string, len(queries))
	var g errgroup.Group
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			line, err := q()
			if err != nil {
				return fmt.Errorf("output #%d: %w", i+1, err)
			}
			results[i] = line
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, l := range results {
		if _, err := fmt.Fprintf(w, "Output #%d: %s\n", i+1, l); err != nil {
			return err
		}
	}

	return nil
}

// absent reports whether err only says a station or route does not exist.
func absent(err error) bool {
	return errors.Is(err, rail.ErrNoRoute) || errors.Is(err, rail.ErrUnknownStation)
}

func newReachCmd() *cobra.Command {
	var (
		maxStops    int
		byDistance  bool
		maxDistance int64
	)
	reachCmd := &cobra.Command{
		Use:   "reach SOURCE [DESTINATION]",
		Short: "Stations reachable from SOURCE, or the fewest-stops route to DESTINATION",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNetwork(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if len(args) == 2 {
				path, err := n.FewestStops(args[0], args[1])
				if err != nil && !errors.Is(err, rail.ErrNoRoute) {
					return err
				}
				if len(path) == 0 {
					fmt.Fprintln(out, noSuchRoute)
					return nil
				}
				fmt.Fprintf(out, "%s: %d stops\n", strings.Join(path, "-"), len(path)-1)
				return nil
			}

			if byDistance {
				dist, err := n.DistancesFrom(args[0], maxDistance)
				if err != nil {
					return err
				}
				if jsonOut {
					return json.NewEncoder(out).Encode(dist)
				}
				for _, id := range sortedByValue(dist) {
					fmt.Fprintf(out, "%s %d\n", id, dist[id])
				}
				return nil
			}

			stops, err := n.Reachable(args[0], maxStops)
			if err != nil {
				return err
			}
			if jsonOut {
				return json.NewEncoder(out).Encode(stops)
			}
			for _, id := range sortedByValue(stops) {
				fmt.Fprintf(out, "%s %d\n", id, stops[id])
			}

			return nil
		},
	}
	reachCmd.Flags().IntVar(&maxStops, "max-stops", rail.Unlimited, "Limit the search radius in stops (-1 = unlimited)")
	reachCmd.Flags().BoolVar(&byDistance, "by-distance", false, "Report shortest distances instead of stop counts")
	reachCmd.Flags().Int64Var(&maxDistance, "max-distance", rail.Unlimited, "With --by-distance, omit stations farther than this (-1 = unlimited)")

	return reachCmd
}

func newExploreCmd() *cobra.Command {
	var (
		maxStops int
		avoid    []string
	)
	exploreCmd := &cobra.Command{
		Use:     "explore SOURCE",
		Short:   "Stations reachable from SOURCE in depth-first order",
		Example: "  railnet explore A --avoid B --max-stops 2",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNetwork(cmd)
			if err != nil {
				return err
			}
			order, err := n.Explore(args[0], maxStops, avoid...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(order)
			}
			fmt.Fprintln(out, strings.Join(order, " "))

			return nil
		},
	}
	exploreCmd.Flags().IntVar(&maxStops, "max-stops", rail.Unlimited, "Limit the depth in stops (-1 = unlimited)")
	exploreCmd.Flags().StringSliceVar(&avoid, "avoid", nil, "Stations the exploration must not pass through")

	return exploreCmd
}

// sortedByValue orders stations by their value (stops or distance), then ID.
func sortedByValue[V int | int64](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if m[ids[i]] != m[ids[j]] {
			return m[ids[i]] < m[ids[j]]
		}
		return ids[i] < ids[j]
	})

	return ids
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize the loaded network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNetwork(cmd)
			if err != nil {
				return err
			}
			st := n.Graph().Stats()
			out := cmd.OutOrStdout()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(out).Encode(st)
			}
			fmt.Fprintf(out, "stations:       %d\n", st.StationCount)
			fmt.Fprintf(out, "routes:         %d\n", st.RouteCount)
			fmt.Fprintf(out, "self routes:    %d\n", st.SelfRouteCount)
			fmt.Fprintf(out, "dead ends:      %d\n", st.DeadEndCount)
			fmt.Fprintf(out, "total distance: %d\n", st.TotalDistance)

			return nil
		},
	}
}

func writeDistance(cmd *cobra.Command, path []string, d int64) error {
	out := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return json.NewEncoder(out).Encode(map[string]any{"path": path, "distance": d})
	}
	if len(path) > 0 && d != rail.NoRoute {
		fmt.Fprintf(out, "%s: %s\n", strings.Join(path, "-"), formatDistance(d))
		return nil
	}
	fmt.Fprintln(out, formatDistance(d))

	return nil
}

func formatDistance(d int64) string {
	if d == rail.NoRoute {
		return noSuchRoute
	}

	return strconv.FormatInt(d, 10)
}
