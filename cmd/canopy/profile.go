package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy/internal/presentation/tui"
	"github.com/aretw0/canopy/pkg/profile"
	"github.com/aretw0/canopy/pkg/widget"
)

var profileCmd = &cobra.Command{
	Use:   "profile <widget.json>",
	Short: "Profile a widget file and print a full report",
	Long:  `Runs the verification battery and performance profiler over a widget JSON file and renders the combined report.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonOut, _ := cmd.Flags().GetBool("json")
		if err := runProfile(args[0], jsonOut); err != nil {
			fmt.Printf("Profile failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.Flags().Bool("json", false, "Emit the raw report as JSON")
}

func runProfile(path string, jsonOut bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	// The report covers invalid trees too, so decode without the validation
	// gate and let the structure check report the defects.
	var node widget.Node
	if err := json.Unmarshal(data, &node); err != nil {
		return fmt.Errorf("failed to parse widget: %w", err)
	}

	report := profile.RunReport(&node)
	perf, err := profile.Profile(&node)
	if err != nil {
		return err
	}

	if jsonOut {
		out, err := json.MarshalIndent(map[string]any{
			"report":  report,
			"profile": perf,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	render := tui.NewRenderer()
	md := report.Markdown()
	md += fmt.Sprintf("\n## Performance\n\n- Elements: %d\n- Max depth: %d\n- JSON size: %d bytes\n- Acceptable: %t\n",
		perf.Performance.ElementCount, perf.Performance.MaxDepth, perf.Performance.JSONSize, perf.Acceptable)
	for _, w := range perf.Warnings {
		md += fmt.Sprintf("- Warning: %s\n", w)
	}

	rendered, err := render(md)
	if err != nil {
		// Fall back to plain markdown on renderer failure.
		fmt.Println(md)
		return nil
	}
	fmt.Print(rendered)
	return nil
}
