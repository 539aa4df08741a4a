package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build <graph.toml>",
		Short: "Compile a TOML graph description into a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadGraphFile(args[0])
			if err != nil {
				bad.Printf("  %v\n", err)
				return err
			}
			g, err := compile(f)
			if err != nil {
				bad.Printf("  %v\n", err)
				return err
			}

			data, err := json.MarshalIndent(g.Snapshot(), "", "  ")
			if err != nil {
				return err
			}
			data = append(data, '\n')

			if out == "" || out == "-" {
				os.Stdout.Write(data)
				return nil
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				bad.Printf("  %v\n", err)
				return err
			}

			good.Printf("  wrote %s", out)
			fmt.Printf(" (%d nodes, %d connections)\n", g.NodeCount(), g.ConnectionCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Snapshot file to write (default stdout)")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return cmd
}
