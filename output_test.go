package mimic

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	assert.Equal(t, OutputJSON, DetermineOutputFormat("json"))
	assert.Equal(t, OutputPretty, DetermineOutputFormat("pretty"))
	assert.Equal(t, OutputPretty, DetermineOutputFormat(""))
	assert.Equal(t, OutputPretty, DetermineOutputFormat("yaml"))
}

func sampleAnalysis() *Analysis {
	return &Analysis{
		Opportunities: []Opportunity{
			{
				Type:       OppSearchForm,
				Pos:        OpportunityPos{Filename: "index.html", Line: 12},
				Element:    `<form action="/search" method="get">`,
				Suggestion: "Convert to live search",
				Priority:   PriorityHigh,
			},
			{
				Type:       OppNavLink,
				Pos:        OpportunityPos{Filename: "nav.html", Line: 3},
				Element:    `<a href="/about">`,
				Suggestion: "Consider hx-boost",
				Priority:   PriorityLow,
			},
		},
		Stats: ScanStats{FilesDiscovered: 3, FilesScanned: 2, FilesSkipped: 1},
	}
}

func TestWriteAnalysisJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAnalysisJSON(&buf, sampleAnalysis()))

	var out AnalysisJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, "1.0", out.Version)
	assert.NotEmpty(t, out.Timestamp)
	assert.Equal(t, 2, out.Summary.Total)
	assert.Equal(t, 1, out.Summary.High)
	assert.Equal(t, 0, out.Summary.Medium)
	assert.Equal(t, 1, out.Summary.Low)
	assert.Equal(t, 2, out.Summary.FilesScanned)

	require.Len(t, out.Opportunities, 2)
	assert.Equal(t, "index.html", out.Opportunities[0].File)
	assert.Equal(t, 12, out.Opportunities[0].Line)
	assert.Equal(t, OppSearchForm, out.Opportunities[0].Type)
	assert.Equal(t, "high", out.Opportunities[0].Priority)
}

func TestWriteAnalysis_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	WriteAnalysis(&buf, sampleAnalysis(), OutputJSON, ReportConfig{})

	assert.True(t, strings.HasPrefix(strings.TrimSpace(buf.String()), "{"))
}

func TestPrintAnalysis_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, ReportConfig{}).PrintAnalysis(&Analysis{})

	assert.Contains(t, buf.String(), "No conversion opportunities found.")
}

func TestPrintAnalysis_GroupsAndRecommendations(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, ReportConfig{}).PrintAnalysis(sampleAnalysis())
	out := buf.String()

	assert.Contains(t, out, "Conversion Opportunities Found: 2")
	assert.Contains(t, out, OppSearchForm+" (1 found)")
	assert.Contains(t, out, "index.html:12")
	assert.Contains(t, out, "Convert to live search")
	assert.Contains(t, out, "Priority Recommendations")
	assert.Contains(t, out, "Suggested Implementation Order:")
}

func TestPrintAnalysis_LeadLimit(t *testing.T) {
	a := &Analysis{}
	for i := 0; i < showLeadLimit+2; i++ {
		a.Opportunities = append(a.Opportunities, Opportunity{
			Type:       OppNavLink,
			Pos:        OpportunityPos{Filename: "nav.html", Line: i + 1},
			Suggestion: "Consider hx-boost",
			Priority:   PriorityLow,
		})
	}

	var buf bytes.Buffer
	NewReporter(&buf, ReportConfig{}).PrintAnalysis(a)
	assert.Contains(t, buf.String(), "... and 2 more")

	// Verbose lists everything
	buf.Reset()
	NewReporter(&buf, ReportConfig{Verbose: true}).PrintAnalysis(a)
	assert.NotContains(t, buf.String(), "... and")
	assert.Contains(t, buf.String(), "nav.html:5")
}

func TestPrintAnalysis_PriorityBreakdown(t *testing.T) {
	var buf bytes.Buffer
	NewReporter(&buf, ReportConfig{ShowPriority: true}).PrintAnalysis(sampleAnalysis())
	out := buf.String()

	assert.Contains(t, out, "High Priority")
	assert.Contains(t, out, "Low Priority")
	assert.Contains(t, out, "use --verbose to see all")
}

func TestPrintPalette(t *testing.T) {
	p := Categorize([]WeightedColor{
		wc(220, 40, 40, 500),
		wc(255, 255, 255, 400),
	})

	var buf bytes.Buffer
	NewReporter(&buf, ReportConfig{}).PrintPalette(p)
	out := buf.String()

	assert.Contains(t, out, "Color Palette:")
	assert.Contains(t, out, "PRIMARY")
	assert.Contains(t, out, "#dc2828 - RGB(220, 40, 40)")
	assert.Contains(t, out, "NEUTRAL")
	assert.Contains(t, out, "#ffffff - RGB(255, 255, 255)")
}
