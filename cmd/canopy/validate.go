package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/canopy/pkg/widget"
)

var validateCmd = &cobra.Command{
	Use:   "validate <widget.json>",
	Short: "Check a widget file against the schema",
	Long:  `Decodes a widget JSON file, validates its structure, and reports accessibility and size findings.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(args[0]); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	node, err := widget.Decode(data)
	if err != nil {
		return err
	}
	fmt.Println("Widget is valid! ✅")

	a11y := widget.AuditAccessibility(node)
	if a11y.Compliant {
		fmt.Println("Accessibility: no issues found")
	} else {
		fmt.Printf("Accessibility: %d issue(s)\n", len(a11y.Issues))
		for _, issue := range a11y.Issues {
			fmt.Printf("  - %s\n", issue)
		}
	}

	size := widget.AuditSize(node)
	fmt.Printf("Size: %d bytes\n", size.JSONSize)
	for _, warning := range size.Warnings {
		fmt.Printf("  - %s\n", warning)
	}
	return nil
}
