package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <snapshot.json | graph.toml>",
		Short: "Show node and connection statistics for a graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			banner("graph statistics")

			g, err := loadGraph(args[0])
			if err != nil {
				bad.Printf("  %v\n", err)
				return err
			}

			if g.NodeCount() == 0 {
				fmt.Println("  Graph is empty.")
				return nil
			}

			headers := []string{"Node", "Inputs", "Outputs", "Bound"}
			var rows [][]string
			typeNames := make(map[string]struct{})
			for _, id := range g.Nodes() {
				n, _ := g.Node(id)
				bound := 0
				for _, p := range append(n.Inputs(), n.Outputs()...) {
					port, _ := n.Port(p)
					bound += port.BoundCount()
					typeNames[port.DataType().Name()] = struct{}{}
				}
				rows = append(rows, []string{
					n.Label(),
					strconv.Itoa(len(n.Inputs())),
					strconv.Itoa(len(n.Outputs())),
					strconv.Itoa(bound),
				})
			}
			table(headers, rows)

			names := make([]string, 0, len(typeNames))
			for name := range typeNames {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Println()
			fmt.Printf("  Nodes:       %d\n", g.NodeCount())
			fmt.Printf("  Connections: %d\n", g.ConnectionCount())
			fmt.Printf("  Data types:  %d", len(names))
			for i, name := range names {
				if i == 0 {
					fmt.Print("  (")
				} else {
					fmt.Print(", ")
				}
				fmt.Print(name)
			}
			if len(names) > 0 {
				fmt.Print(")")
			}
			fmt.Println()
			return nil
		},
	}

	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}
