package mimic

import (
	"encoding/json"
	"io"
	"time"
)

// AnalysisJSON is the structured JSON export schema for template
// analysis.
type AnalysisJSON struct {
	Version       string              `json:"version"`
	Timestamp     string              `json:"timestamp"`
	Summary       AnalysisJSONSummary `json:"summary"`
	Opportunities []JSONOpportunity   `json:"opportunities"`
}

// AnalysisJSONSummary contains high-level counts.
type AnalysisJSONSummary struct {
	Total        int `json:"total"`
	High         int `json:"high"`
	Medium       int `json:"medium"`
	Low          int `json:"low"`
	FilesScanned int `json:"files_scanned"`
}

// JSONOpportunity represents a single finding.
type JSONOpportunity struct {
	File       string `json:"file"`
	Line       int    `json:"line"`
	Type       string `json:"type"`
	Priority   string `json:"priority"`
	Suggestion string `json:"suggestion"`
	Element    string `json:"element,omitempty"`
}

// WriteAnalysisJSON writes the analysis as indented JSON.
func WriteAnalysisJSON(w io.Writer, a *Analysis) error {
	output := buildAnalysisJSON(a)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildAnalysisJSON converts an Analysis to the export schema.
func buildAnalysisJSON(a *Analysis) AnalysisJSON {
	high, medium, low := a.PriorityCounts()

	opps := make([]JSONOpportunity, len(a.Opportunities))
	for i, opp := range a.Opportunities {
		opps[i] = JSONOpportunity{
			File:       opp.Pos.Filename,
			Line:       opp.Pos.Line,
			Type:       opp.Type,
			Priority:   string(opp.Priority),
			Suggestion: opp.Suggestion,
			Element:    opp.Element,
		}
	}

	return AnalysisJSON{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: AnalysisJSONSummary{
			Total:        len(a.Opportunities),
			High:         high,
			Medium:       medium,
			Low:          low,
			FilesScanned: a.Stats.FilesScanned,
		},
		Opportunities: opps,
	}
}
