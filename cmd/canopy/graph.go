package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy/internal/presentation/graph"
	"github.com/aretw0/canopy/pkg/widget"
)

var graphCmd = &cobra.Command{
	Use:   "graph <widget.json>",
	Short: "Render a widget file as a Mermaid flowchart",
	Long:  `Reads a widget JSON file and prints a Mermaid diagram of its structure and action bindings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGraph(args[0]); err != nil {
			fmt.Printf("Graph failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}

func runGraph(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// Visualization tolerates invalid trees; skip the validation gate.
	var node widget.Node
	if err := json.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("failed to parse widget: %w", err)
	}

	fmt.Print(graph.GenerateMermaid(&node))
	return nil
}
