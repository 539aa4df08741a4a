package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "hookwire",
	Short: "hookwire — node-graph connection tooling",
	Long: brand.Sprint("hookwire") + " — build, check, and inspect node graphs\n" +
		subtle.Sprint("Compile TOML graph descriptions to snapshots and verify their wiring"),
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate("hookwire {{ .Version }}\n")

	rootCmd.AddCommand(
		buildCmd(),
		checkCmd(),
		statsCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
