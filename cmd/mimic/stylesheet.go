package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/mimictools/mimic"
	"github.com/spf13/cobra"
)

var stylesheetCmd = &cobra.Command{
	Use:   "stylesheet [tokens.json]",
	Short: "Generate a CSS starter template from design tokens",
	Long: `Turn a design token file produced by the tokens command into a CSS
template: custom properties, reset, layout patterns, typography,
responsive breakpoints, and utility classes.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runStylesheet,
}

func init() {
	f := stylesheetCmd.Flags()
	f.StringP("output", "o", "style_template.css", "Output CSS file")
	f.Bool("no-reset", false, "Omit the CSS reset section")
	f.Bool("no-utilities", false, "Omit the utility class section")
}

func runStylesheet(_ *cobra.Command, args []string) error {
	input := "design_tokens.json"
	if v := k.String("stylesheet.tokens"); v != "" {
		input = v
	}
	if len(args) == 1 {
		input = args[0]
	}

	ts, err := mimic.LoadTokens(input)
	if err != nil {
		return fmt.Errorf("loading tokens from %s: %w", input, err)
	}

	opts := mimic.StylesheetOptions{
		NoReset:     getBoolWithFallback("no-reset", "stylesheet.no-reset", false),
		NoUtilities: getBoolWithFallback("no-utilities", "stylesheet.no-utilities", false),
	}

	css := mimic.GenerateStylesheet(ts, opts)

	output := getStringWithFallback("output", "stylesheet.output", "style_template.css")
	if err := os.WriteFile(output, []byte(css), 0644); err != nil {
		return fmt.Errorf("writing stylesheet %s: %w", output, err)
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		fmt.Printf("CSS template saved to: %s\n", output)
		fmt.Printf("  Sections: %s\n", strings.Join(opts.SectionList(), ", "))
	}

	return nil
}
