package main

import (
	"fmt"
	"os"
	"time"

	"github.com/mimictools/mimic"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <url>",
	Short: "Scrape design tokens from a live website",
	Long: `Fetch a page and its stylesheets, then collect colors, typography,
spacing, shadows, CSS variables, and layout patterns into a JSON
token file that the stylesheet command can consume.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runTokens,
}

func init() {
	f := tokensCmd.Flags()
	f.StringP("output", "o", "design_tokens.json", "Output JSON file")
	f.Int("timeout", 15, "HTTP timeout in seconds")
}

func runTokens(cmd *cobra.Command, args []string) error {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	quiet := getBoolWithFallback("quiet", "quiet", false)

	opts := mimic.ExtractTokensOptions{
		Timeout: time.Duration(getIntWithFallback("timeout", "tokens.timeout", 15)) * time.Second,
		Verbose: verbose,
		Logf: func(format string, a ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		},
	}

	if !quiet {
		fmt.Printf("Extracting design tokens from %s...\n", args[0])
	}

	ts, err := mimic.ExtractTokens(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("extracting tokens: %w", err)
	}

	output := getStringWithFallback("output", "tokens.output", "design_tokens.json")
	if err := ts.SaveTokens(output); err != nil {
		return err
	}

	if !quiet {
		fmt.Printf("Design tokens saved to: %s\n", output)
		fmt.Printf("  Colors: %d\n", len(ts.Tokens.Colors))
		fmt.Printf("  Fonts: %d\n", len(ts.Tokens.Typography.Fonts))
		fmt.Printf("  Spacing values: %d\n", len(ts.Tokens.Spacing))
		fmt.Printf("  Shadows: %d\n", len(ts.Tokens.Shadows))
		fmt.Printf("  CSS variables: %d\n", len(ts.Tokens.CSSVariables))
	}

	return nil
}
