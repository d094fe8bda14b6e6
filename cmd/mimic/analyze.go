package main

import (
	"os"

	"github.com/mimictools/mimic"
	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [path]",
	Short: "Scan HTML templates for AJAX conversion opportunities",
	Long: `Walk template files and flag elements that could become dynamic with
HTMX: forms doing full-page submits, internal navigation links,
pagination, content lists, delete actions, modals, and tabs.`,
	Args: cobra.MaximumNArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringSlice("patterns", nil, "Glob patterns for template files to scan")
	f.String("format", "", "Output format: pretty|json")
	f.Bool("priority", false, "Expand the per-type priority breakdown")
}

func runAnalyze(_ *cobra.Command, args []string) error {
	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	var patterns []string
	if p := k.Strings("patterns"); len(p) > 0 {
		patterns = p
	} else if p := k.Strings("analyze.patterns"); len(p) > 0 {
		patterns = p
	}

	verbose := getBoolWithFallback("verbose", "verbose", false)

	analysis, err := mimic.AnalyzeTemplates(mimic.AnalyzeConfig{
		Path:     path,
		Patterns: patterns,
		Verbose:  verbose,
	})
	if err != nil {
		return err
	}

	if getBoolWithFallback("quiet", "quiet", false) {
		return nil
	}

	format := mimic.DetermineOutputFormat(getStringWithFallback("format", "analyze.format", ""))
	mimic.WriteAnalysis(os.Stdout, analysis, format, mimic.ReportConfig{
		UseColors:    getBoolWithFallback("color", "color", false),
		ShowPriority: getBoolWithFallback("priority", "analyze.priority", false),
		Verbose:      verbose,
	})

	return nil
}
