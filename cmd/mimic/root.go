package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mimic",
	Short: "Mimic a website's visual style",
	Long: `Extract color palettes from screenshots, scrape design tokens from
live sites, and generate stylesheets, HTMX components, and test pages
that reproduce the look of an existing website.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".mimic.yaml", "Config file path")

	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(stylesheetCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(componentCmd)
	rootCmd.AddCommand(testpageCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
