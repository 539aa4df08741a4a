package graph_test

import (
	"testing"

	"github.com/katalvlaran/hookwire/graph"
)

// BenchmarkAddConnection measures the two-phase connect on a fresh
// pair each iteration.
func BenchmarkAddConnection(b *testing.B) {
	g := graph.New()
	hub := g.AddNode("hub", nil, func(n *graph.Node) {
		n.AddInput("in", scalar)
	})
	hubNode, _ := g.Node(hub)
	hubPort := hubNode.Inputs()[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := g.AddNode("src", nil, func(n *graph.Node) {
			n.AddOutput("out", scalar)
		})
		srcNode, _ := g.Node(src)
		out, _ := g.Endpoint(src, srcNode.Outputs()[0])
		in, _ := g.Endpoint(hub, hubPort)
		if err := g.AddConnection(out, in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRemoveNode measures deletion of a node with one live
// connection, including repair of the neighbor.
func BenchmarkRemoveNode(b *testing.B) {
	g := graph.New()
	hub := g.AddNode("hub", nil, func(n *graph.Node) {
		n.AddInput("in", scalar)
	})
	hubNode, _ := g.Node(hub)
	hubPort := hubNode.Inputs()[0]

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		src := g.AddNode("src", nil, func(n *graph.Node) {
			n.AddOutput("out", scalar)
		})
		srcNode, _ := g.Node(src)
		out, _ := g.Endpoint(src, srcNode.Outputs()[0])
		in, _ := g.Endpoint(hub, hubPort)
		if err := g.AddConnection(out, in); err != nil {
			b.Fatal(err)
		}
		g.RemoveNode(src)
	}
}
