package main

import (
	"fmt"
	"strings"

	"github.com/mimictools/mimic"
	"github.com/spf13/cobra"
)

var testpageCmd = &cobra.Command{
	Use:   "testpage <type>",
	Short: "Generate a standalone HTML test page for a component",
	Long: `Build a self-contained HTML page with an in-page mock server so a
component can be exercised in a browser without a backend.
Available types: ` + strings.Join(mimic.TestPageTypes(), ", ") + `.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runTestpage,
}

func init() {
	testpageCmd.Flags().StringP("output", "o", "", "Output HTML file (default: test_<type>.html)")
}

func runTestpage(_ *cobra.Command, args []string) error {
	componentType := args[0]

	output := getStringWithFallback("output", "testpage.output", "")
	if output == "" {
		output = "test_" + strings.ReplaceAll(componentType, "-", "_") + ".html"
	}

	if err := mimic.WriteTestPage(componentType, output); err != nil {
		return err
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Printf("Test page saved to: %s\n", output)
		fmt.Println()
		fmt.Println("To test:")
		fmt.Printf("  1. Open %s in a browser\n", output)
		fmt.Println("  2. Interact with the component (the mock server answers its requests)")
		fmt.Println("  3. Use Show Network Log to inspect the simulated traffic")
	}

	return nil
}
