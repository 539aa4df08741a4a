package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hookwire/catalog"
	"github.com/katalvlaran/hookwire/graph"
)

// TestNamedTypeCompatibility pins name-equality and allow-list
// semantics.
func TestNamedTypeCompatibility(t *testing.T) {
	scalar := catalog.NewDataType("Scalar")
	other := catalog.NewDataType("Scalar")
	vec := catalog.NewDataType("Vec2")

	require.True(t, scalar.CompatibleWith(other), "equal names are compatible")
	require.False(t, scalar.CompatibleWith(vec))
	require.False(t, scalar.CompatibleWith(nil))

	// wide accepts Scalar outputs in addition to its own name.
	wide := catalog.NewDataType("Any", "Scalar")
	require.True(t, scalar.CompatibleWith(wide))
	require.False(t, vec.CompatibleWith(wide))
}

// TestRegistryOrderAndCategories verifies enumeration order and
// category grouping.
func TestRegistryOrderAndCategories(t *testing.T) {
	num := catalog.NewDataType("Number")
	add := catalog.NewTemplate("add", []string{"math"}, func(n *graph.Node) {
		n.AddInput("a", num, graph.WithCapacity(1))
		n.AddInput("b", num, graph.WithCapacity(1))
		n.AddOutput("out", num)
	})
	neg := catalog.NewTemplate("negate", []string{"math"}, func(n *graph.Node) {
		n.AddInput("in", num, graph.WithCapacity(1))
		n.AddOutput("out", num)
	})
	note := catalog.NewTemplate("note", nil, nil)

	r := catalog.NewRegistry()
	r.Register(add)
	r.Register(neg)
	r.Register(note)

	all := r.All()
	require.Len(t, all, 3)
	require.Equal(t, "add", all[0].Label())
	require.Equal(t, []string{"math"}, r.Categories())
	require.Len(t, r.ByCategory("math"), 2)
	require.Empty(t, r.ByCategory("audio"))
}

// TestSpawnBuildsPorts verifies Spawn inserts a fully built node.
func TestSpawnBuildsPorts(t *testing.T) {
	num := catalog.NewDataType("Number")
	add := catalog.NewTemplate("add", []string{"math"}, func(n *graph.Node) {
		n.AddInput("a", num, graph.WithCapacity(1))
		n.AddInput("b", num, graph.WithCapacity(1))
		n.AddOutput("out", num)
	})

	g := graph.New()
	r := catalog.NewRegistry()
	r.Register(add)
	id := r.Spawn(g, add)

	n, ok := g.Node(id)
	require.True(t, ok)
	require.Equal(t, "add", n.Label())
	require.Len(t, n.Inputs(), 2)
	require.Len(t, n.Outputs(), 1)
	_, ok = n.InputByName("b")
	require.True(t, ok)
}
