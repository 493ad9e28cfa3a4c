// Package dijkstra_test provides examples demonstrating how to use the Dijkstra algorithm.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/railnet/core"
	"github.com/katalvlaran/railnet/dijkstra"
)

// ExampleShortestPath finds the cheapest trip A → C on a small one-way network.
func ExampleShortestPath() {
	// 1) Build the network. Routes are one-way.
	g := core.NewGraph()
	_ = g.AddRoute("A", "B", 5)
	_ = g.AddRoute("B", "C", 4)
	_ = g.AddRoute("A", "D", 5)
	_ = g.AddRoute("D", "C", 8)

	// 2) Ask for the cheapest path.
	res, err := dijkstra.ShortestPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Distance)
	// Output: [A B C] 9
}

// ExampleShortestPath_cycle shows both answers to a self query.
func ExampleShortestPath_cycle() {
	g := core.NewGraph()
	_ = g.AddRoute("B", "C", 4)
	_ = g.AddRoute("C", "E", 2)
	_ = g.AddRoute("E", "B", 3)

	// Default: cheapest round trip leaving and re-entering B.
	res, _ := dijkstra.ShortestPath(g, "B", "B")
	fmt.Println(res.Path, res.Distance)

	// Trivial answer when zero-length self paths are allowed.
	res, _ = dijkstra.ShortestPath(g, "B", "B", dijkstra.WithZeroLengthSelfPath(true))
	fmt.Println(res.Path, res.Distance)
	// Output:
	// [B C E B] 9
	// [B] 0
}

// ExampleDijkstra computes all distances from one station.
func ExampleDijkstra() {
	g := core.NewGraph()
	_ = g.AddRoute("A", "B", 2)
	_ = g.AddRoute("A", "C", 1)
	_ = g.AddRoute("C", "B", 0)

	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source("A"), dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[B]=%d via %s\n", dist["B"], prev["B"])
	// Output: dist[B]=1 via C
}
