package mimic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func detectTypes(t *testing.T, line string) []string {
	t.Helper()
	opps := detectOpportunities(line, 1, "test.html")
	types := make([]string, len(opps))
	for i, o := range opps {
		types[i] = o.Type
	}
	return types
}

func TestDetectOpportunities_SearchForm(t *testing.T) {
	types := detectTypes(t, `<form action="/search" method="get">`)
	assert.Contains(t, types, OppSearchForm)

	opps := detectOpportunities(`<form action="/search" method="get">`, 1, "test.html")
	require.NotEmpty(t, opps)
	assert.Equal(t, PriorityHigh, opps[0].Priority)
}

func TestDetectOpportunities_PostForm(t *testing.T) {
	types := detectTypes(t, `<form action="/comments" method="post">`)
	assert.Contains(t, types, OppFormSubmit)
	assert.NotContains(t, types, OppSearchForm)
}

func TestDetectOpportunities_FormWithoutAction(t *testing.T) {
	assert.Empty(t, detectTypes(t, `<form method="post">`))
}

func TestDetectOpportunities_NavLink(t *testing.T) {
	types := detectTypes(t, `<a href="/about">About</a>`)
	assert.Contains(t, types, OppNavLink)

	// External links are not boost candidates
	assert.NotContains(t, detectTypes(t, `<a href="https://example.com">Out</a>`), OppNavLink)

	// Fragment links are skipped
	assert.NotContains(t, detectTypes(t, `<a href="#top">Top</a>`), OppNavLink)

	// Already-converted links are skipped
	assert.NotContains(t, detectTypes(t, `<a href="/about" hx-get="/about">About</a>`), OppNavLink)
}

func TestDetectOpportunities_Pagination(t *testing.T) {
	types := detectTypes(t, `<a href="/list?page=2">Next</a>`)
	assert.Contains(t, types, OppPagination)

	// Pagination words without a clickable element do not match
	assert.NotContains(t, detectTypes(t, `<span>Next</span>`), OppPagination)
}

func TestDetectOpportunities_ContentList(t *testing.T) {
	assert.Contains(t, detectTypes(t, `{{range .Posts}}`), OppContentList)
	assert.Contains(t, detectTypes(t, `{% for post in posts %}`), OppContentList)
	assert.NotContains(t, detectTypes(t, `<div class="posts">`), OppContentList)
}

func TestDetectOpportunities_Delete(t *testing.T) {
	assert.Contains(t, detectTypes(t, `<button class="delete-btn">삭제</button>`), OppDelete)
	assert.Contains(t, detectTypes(t, `<button>Remove item</button>`), OppDelete)

	// Needs a button or anchor on the line
	assert.NotContains(t, detectTypes(t, `<span>delete</span>`), OppDelete)
}

func TestDetectOpportunities_Modal(t *testing.T) {
	assert.Contains(t, detectTypes(t, `<div class="modal-backdrop">`), OppModal)
	assert.Contains(t, detectTypes(t, `<div id="confirm-dialog">`), OppModal)
}

func TestDetectOpportunities_Tab(t *testing.T) {
	assert.Contains(t, detectTypes(t, `<button class="tab-button">탭 1</button>`), OppTab)
	assert.NotContains(t, detectTypes(t, `<div class="tab-panel">`), OppTab)
}

func TestDetectOpportunities_SkipsComments(t *testing.T) {
	assert.Empty(t, detectTypes(t, `<!-- <form action="/x" method="get"> -->`))
	assert.Empty(t, detectTypes(t, `{{/* range .Items */}}`))
}

func TestDetectOpportunities_MultiplePerLine(t *testing.T) {
	types := detectTypes(t, `<a href="/items?page=2">Next page</a>`)
	assert.Contains(t, types, OppNavLink)
	assert.Contains(t, types, OppPagination)
}

func TestPreviewElement_Truncates(t *testing.T) {
	long := "<div class=\"" + strings.Repeat("x", 100) + "\">"

	got := previewElement("   " + long)
	assert.Len(t, got, elementPreviewLen+3)
	assert.True(t, strings.HasSuffix(got, "..."))

	short := `<a href="/about">About</a>`
	assert.Equal(t, short, previewElement("  "+short+"  "))
}

func TestIsGeneratedTemplate(t *testing.T) {
	assert.True(t, isGeneratedTemplate("assets/app.min.html"))
	assert.True(t, isGeneratedTemplate(filepath.Join("node_modules", "pkg", "x.html")))
	assert.False(t, isGeneratedTemplate("templates/index.html"))
}

func TestAnalyzeTemplates_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pages")
	require.NoError(t, os.MkdirAll(sub, 0755))

	index := `<html>
<body>
<form action="/search" method="get">
<a href="/about">About</a>
{{range .Posts}}
<button class="delete-btn">삭제</button>
</body>
</html>`
	require.NoError(t, os.WriteFile(filepath.Join(sub, "index.html"), []byte(index), 0644))

	minified := `<form action="/x" method="get">`
	require.NoError(t, os.WriteFile(filepath.Join(sub, "bundle.min.html"), []byte(minified), 0644))

	analysis, err := AnalyzeTemplates(AnalyzeConfig{Path: dir})
	require.NoError(t, err)

	assert.Equal(t, 2, analysis.Stats.FilesDiscovered)
	assert.Equal(t, 1, analysis.Stats.FilesScanned)
	assert.Equal(t, 1, analysis.Stats.FilesSkipped)

	byType := analysis.ByType()
	assert.Contains(t, byType, OppSearchForm)
	assert.Contains(t, byType, OppNavLink)
	assert.Contains(t, byType, OppContentList)
	assert.Contains(t, byType, OppDelete)
}

func TestAnalyzeTemplates_CustomPatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "view.tmpl"),
		[]byte(`{{range .Items}}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.html"),
		[]byte(`<form action="/x" method="get">`), 0644))

	analysis, err := AnalyzeTemplates(AnalyzeConfig{
		Patterns: []string{filepath.Join(dir, "*.tmpl")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, analysis.Stats.FilesScanned)
	require.Len(t, analysis.Opportunities, 1)
	assert.Equal(t, OppContentList, analysis.Opportunities[0].Type)
}

func TestPriorityCounts(t *testing.T) {
	a := &Analysis{Opportunities: []Opportunity{
		{Priority: PriorityHigh},
		{Priority: PriorityHigh},
		{Priority: PriorityMedium},
		{Priority: PriorityLow},
	}}

	high, medium, low := a.PriorityCounts()
	assert.Equal(t, 2, high)
	assert.Equal(t, 1, medium)
	assert.Equal(t, 1, low)
}
