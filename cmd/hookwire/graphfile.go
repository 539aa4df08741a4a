package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/hookwire/catalog"
	"github.com/katalvlaran/hookwire/graph"
)

// graphFile is the TOML description of a graph: declared data types,
// node tables with port lists, and connections addressed by
// "node.port" labels.
type graphFile struct {
	Types       []typeDecl `toml:"types"`
	Nodes       []nodeDecl `toml:"nodes"`
	Connections []connDecl `toml:"connections"`
}

// typeDecl declares a data type. Compatible widens the declared type's
// input side: ports of this type additionally accept outputs of the
// listed names.
type typeDecl struct {
	Name       string   `toml:"name"`
	Compatible []string `toml:"compatible"`
}

type nodeDecl struct {
	Label   string     `toml:"label"`
	Inputs  []portDecl `toml:"inputs"`
	Outputs []portDecl `toml:"outputs"`
}

// portDecl declares one port. Capacity defaults to 1 for inputs and to
// unbounded for outputs when omitted.
type portDecl struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Capacity *int   `toml:"capacity"`
	Kind     string `toml:"kind"`
	Value    any    `toml:"value"`
}

// connDecl joins two ports addressed as "node.port" labels. Labels
// must be unique within the file for addressing to be unambiguous.
type connDecl struct {
	From string `toml:"from"`
	To   string `toml:"to"`
}

// loadGraphFile reads and decodes a TOML graph description.
func loadGraphFile(path string) (*graphFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f graphFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &f, nil
}

// compile builds a live graph from a description. Types referenced by
// ports but not declared are created with name-equality compatibility.
func compile(f *graphFile) (*graph.Graph, error) {
	types := make(map[string]graph.DataType, len(f.Types))
	for _, td := range f.Types {
		if td.Name == "" {
			return nil, fmt.Errorf("type declaration without a name")
		}
		types[td.Name] = catalog.NewDataType(td.Name, td.Compatible...)
	}
	resolve := func(name string) graph.DataType {
		if dt, ok := types[name]; ok {
			return dt
		}
		dt := catalog.NewDataType(name)
		types[name] = dt
		return dt
	}

	g := graph.New()
	byLabel := make(map[string]graph.NodeID, len(f.Nodes))
	for _, nd := range f.Nodes {
		if nd.Label == "" {
			return nil, fmt.Errorf("node declaration without a label")
		}
		if _, dup := byLabel[nd.Label]; dup {
			return nil, fmt.Errorf("duplicate node label %q", nd.Label)
		}
		var buildErr error
		byLabel[nd.Label] = g.AddNode(nd.Label, nil, func(n *graph.Node) {
			for _, pd := range nd.Inputs {
				if pd.Type == "" {
					buildErr = fmt.Errorf("node %q input %q has no type", nd.Label, pd.Name)
					return
				}
				opts := []graph.PortOption{
					graph.WithCapacity(capacityOf(pd, 1)),
					graph.WithKind(parseKind(pd.Kind)),
				}
				if pd.Value != nil {
					opts = append(opts, graph.WithValue(pd.Value))
				}
				n.AddInput(pd.Name, resolve(pd.Type), opts...)
			}
			for _, pd := range nd.Outputs {
				if pd.Type == "" {
					buildErr = fmt.Errorf("node %q output %q has no type", nd.Label, pd.Name)
					return
				}
				n.AddOutput(pd.Name, resolve(pd.Type),
					graph.WithCapacity(capacityOf(pd, graph.Unbounded)))
			}
		})
		if buildErr != nil {
			return nil, buildErr
		}
	}

	for _, cd := range f.Connections {
		output, err := lookupEndpoint(g, byLabel, cd.From, graph.SideOutput)
		if err != nil {
			return nil, err
		}
		input, err := lookupEndpoint(g, byLabel, cd.To, graph.SideInput)
		if err != nil {
			return nil, err
		}
		if err := g.AddConnection(output, input); err != nil {
			return nil, fmt.Errorf("connect %s -> %s: %w", cd.From, cd.To, err)
		}
	}

	return g, nil
}

func capacityOf(pd portDecl, def int) int {
	if pd.Capacity != nil {
		return *pd.Capacity
	}
	return def
}

func parseKind(s string) graph.InputKind {
	switch s {
	case "constant_only":
		return graph.ConstantOnly
	case "connection_or_constant":
		return graph.ConnectionOrConstant
	default:
		return graph.ConnectionOnly
	}
}

// lookupEndpoint resolves a "node.port" address to a connectable
// endpoint on the given side.
func lookupEndpoint(g *graph.Graph, byLabel map[string]graph.NodeID, addr string, side graph.PortSide) (graph.ConnectionID, error) {
	label, portName, ok := strings.Cut(addr, ".")
	if !ok {
		return graph.ConnectionID{}, fmt.Errorf("endpoint %q: want node.port", addr)
	}
	id, ok := byLabel[label]
	if !ok {
		return graph.ConnectionID{}, fmt.Errorf("endpoint %q: unknown node %q", addr, label)
	}
	n, _ := g.Node(id)

	var p graph.PortID
	if side == graph.SideOutput {
		p, ok = n.OutputByName(portName)
	} else {
		p, ok = n.InputByName(portName)
	}
	if !ok {
		return graph.ConnectionID{}, fmt.Errorf("endpoint %q: node %q has no such port", addr, label)
	}

	end, ok := g.Endpoint(id, p)
	if !ok {
		return graph.ConnectionID{}, fmt.Errorf("endpoint %q: port has no free hook", addr)
	}

	return end, nil
}
