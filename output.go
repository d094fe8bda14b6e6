package mimic

import (
	"io"
	"os"
)

// OutputFormat selects how analysis results are written.
type OutputFormat string

// Supported output formats.
const (
	OutputPretty OutputFormat = "pretty"
	OutputJSON   OutputFormat = "json"
)

// DetermineOutputFormat selects the output format from the flag value,
// falling back to the terminal report.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "pretty", "":
		return OutputPretty
	default:
		// Invalid format, fall back to the default
		return OutputPretty
	}
}

// WriteAnalysis writes the analysis in the specified format.
func WriteAnalysis(w io.Writer, a *Analysis, format OutputFormat, config ReportConfig) {
	switch format {
	case OutputJSON:
		if err := WriteAnalysisJSON(w, a); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}
	default:
		NewReporter(w, config).PrintAnalysis(a)
	}
}
