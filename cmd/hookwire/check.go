package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hookwire/catalog"
	"github.com/katalvlaran/hookwire/graph"
	"github.com/katalvlaran/hookwire/traverse"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <snapshot.json | graph.toml>",
		Short: "Restore a graph and verify its wiring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			banner("wiring check")

			g, err := loadGraph(args[0])
			if err != nil {
				bad.Printf("  %v\n", err)
				return err
			}

			if err := verifyWiring(g); err != nil {
				bad.Printf("  wiring: %v\n", err)
				return err
			}
			good.Printf("  wiring: %d nodes, %d connections, all endpoints symmetric\n",
				g.NodeCount(), g.ConnectionCount())

			if _, err := traverse.TopologicalOrder(g); err != nil {
				if errors.Is(err, traverse.ErrCycleDetected) {
					warn.Println("  order:  graph contains a cycle")
					return nil
				}
				bad.Printf("  order: %v\n", err)
				return err
			}
			good.Println("  order:  acyclic")
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}

// loadGraph builds a graph from either a TOML description or a JSON
// snapshot, chosen by file extension.
func loadGraph(path string) (*graph.Graph, error) {
	if strings.HasSuffix(path, ".toml") {
		f, err := loadGraphFile(path)
		if err != nil {
			return nil, err
		}
		return compile(f)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap graph.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	// Snapshots store type names only; fabricate name-equality types
	// so every stored name resolves.
	types := make(map[string]graph.DataType)
	resolve := func(name string) (graph.DataType, bool) {
		dt, ok := types[name]
		if !ok {
			dt = catalog.NewDataType(name)
			types[name] = dt
		}
		return dt, true
	}

	return graph.Restore(&snap, resolve)
}

// verifyWiring walks every bound hook and checks that its remote
// endpoint exists and points straight back.
func verifyWiring(g *graph.Graph) error {
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		ports := append(n.Inputs(), n.Outputs()...)
		for _, p := range ports {
			hooks, _ := n.Hooks(p)
			for _, h := range hooks {
				if !h.Bound {
					continue
				}
				local := graph.ConnectionID{Node: id, Port: p, Hook: h.ID}
				if err := verifyRemote(g, local, h.Remote); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func verifyRemote(g *graph.Graph, local, remote graph.ConnectionID) error {
	rn, ok := g.Node(remote.Node)
	if !ok {
		return fmt.Errorf("%s points at a missing node", local)
	}
	rhooks, ok := rn.Hooks(remote.Port)
	if !ok {
		return fmt.Errorf("%s points at a missing port", local)
	}
	for _, rh := range rhooks {
		if rh.ID != remote.Hook {
			continue
		}
		if !rh.Bound || rh.Remote != local {
			return fmt.Errorf("%s and %s disagree", local, remote)
		}
		return nil
	}
	return fmt.Errorf("%s points at a missing hook", local)
}
