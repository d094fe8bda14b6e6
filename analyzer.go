package mimic

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// AnalyzeConfig controls template scanning.
type AnalyzeConfig struct {
	// Path is the template tree root. Default patterns expand to
	// **/*.html and **/*.tmpl beneath it.
	Path string
	// Patterns overrides the default glob patterns when non-empty.
	Patterns []string
	Verbose  bool
}

// elementPreviewLen bounds how much of the matched line is kept in
// reports.
const elementPreviewLen = 80

var (
	paginationRe = regexp.MustCompile(`(?i)(next|prev|previous|page\s*\d+)`)
	rangeLoopRe  = regexp.MustCompile(`\{\{\s*range\s+\.\w+`)
	forLoopRe    = regexp.MustCompile(`\{%\s*for\s+`)
	deleteRe     = regexp.MustCompile(`(?i)(delete|remove|삭제)`)
	modalRe      = regexp.MustCompile(`(?i)(modal|popup|dialog)`)
	tabRe        = regexp.MustCompile(`(?i)(tab|탭)`)

	// Line comments in Go templates and HTML never hold live markup.
	templateCommentRe = regexp.MustCompile(`^\s*(<!--|\{\{-?\s*/\*)`)

	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// AnalyzeTemplates scans the configured template files for
// opportunities to replace full page loads with partial updates.
func AnalyzeTemplates(cfg AnalyzeConfig) (*Analysis, error) {
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		root := cfg.Path
		if root == "" {
			root = "."
		}
		patterns = []string{
			filepath.Join(root, "**", "*.html"),
			filepath.Join(root, "**", "*.tmpl"),
		}
	}

	files, stats, err := expandGlobPatterns(patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding template patterns: %w", err)
	}

	if cfg.Verbose && stats.FilesSkipped > 0 {
		fmt.Printf("Scanned %d files (skipped %d generated/ignored files)\n",
			stats.FilesScanned, stats.FilesSkipped)
	}

	analysis := &Analysis{Stats: stats}
	for _, file := range files {
		opps, err := analyzeFile(file)
		if err != nil {
			// Unreadable files are skipped, not fatal.
			continue
		}
		analysis.Opportunities = append(analysis.Opportunities, opps...)
	}

	return analysis, nil
}

// isGeneratedTemplate checks for minified or build-output files that
// are not worth reporting on.
func isGeneratedTemplate(path string) bool {
	return strings.Contains(path, ".min.") ||
		strings.Contains(path, "node_modules"+string(filepath.Separator))
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile applies two-layer filtering: generated-file patterns
// first, then .gitignore for paths inside the project.
func shouldSkipFile(path string) bool {
	if isGeneratedTemplate(path) {
		return true
	}
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}
	return false
}

// expandGlobPatterns expands glob patterns to file paths, deduplicated
// and filtered, tracking statistics.
func expandGlobPatterns(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesScanned++
			}
		}
	}

	return allFiles, stats, nil
}

// analyzeFile scans a single template file line by line.
func analyzeFile(path string) ([]Opportunity, error) {
	// #nosec G304 - path comes from user-configured glob patterns
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var opps []Opportunity
	scanner := bufio.NewScanner(f)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		opps = append(opps, detectOpportunities(line, lineNum, path)...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return opps, nil
}

// detectOpportunities applies every detector to one line. A line can
// yield several opportunities.
func detectOpportunities(line string, lineNum int, file string) []Opportunity {
	if templateCommentRe.MatchString(line) {
		return nil
	}

	lower := strings.ToLower(line)
	var opps []Opportunity

	add := func(oppType, suggestion string, priority Priority) {
		opps = append(opps, Opportunity{
			Type:       oppType,
			Pos:        OpportunityPos{Filename: file, Line: lineNum},
			Element:    previewElement(line),
			Suggestion: suggestion,
			Priority:   priority,
		})
	}

	if strings.Contains(lower, "<form") && strings.Contains(lower, "action=") {
		switch {
		case strings.Contains(lower, `method="get"`):
			add(OppSearchForm,
				`Convert to live search with hx-get and hx-trigger="keyup changed delay:500ms"`,
				PriorityHigh)
		case strings.Contains(lower, `method="post"`):
			add(OppFormSubmit,
				"Add hx-post for inline form submission without page reload",
				PriorityMedium)
		}
	}

	if strings.Contains(lower, "<a href=") && !strings.Contains(lower, "hx-") {
		internal := !strings.Contains(lower, "http://") && !strings.Contains(lower, "https://")
		if internal && !strings.Contains(lower, `href="#`) {
			add(OppNavLink,
				`Consider hx-boost="true" for progressive enhancement`,
				PriorityLow)
		}
	}

	hasAnchor := strings.Contains(lower, "<a href=") || strings.Contains(lower, "<a ")
	hasButton := strings.Contains(lower, "<button")

	if paginationRe.MatchString(lower) && (strings.Contains(lower, "<a href=") || hasButton) {
		add(OppPagination,
			"Use hx-get to load next page without full reload",
			PriorityMedium)
	}

	if rangeLoopRe.MatchString(line) || forLoopRe.MatchString(line) {
		add(OppContentList,
			`Consider infinite scroll with hx-trigger="revealed"`,
			PriorityHigh)
	}

	if deleteRe.MatchString(lower) && (hasButton || hasAnchor) {
		add(OppDelete,
			"Add hx-delete with confirmation using hx-confirm attribute",
			PriorityMedium)
	}

	if modalRe.MatchString(lower) {
		add(OppModal,
			`Load modal content dynamically with hx-get and hx-target="#modal"`,
			PriorityMedium)
	}

	if tabRe.MatchString(lower) && (hasButton || hasAnchor) {
		add(OppTab,
			"Load tab content dynamically with hx-get",
			PriorityLow)
	}

	return opps
}

// previewElement trims and truncates a matched line for display.
func previewElement(line string) string {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) > elementPreviewLen {
		return trimmed[:elementPreviewLen] + "..."
	}
	return trimmed
}

// GetRelativePath returns a path relative to the current working
// directory, falling back to the input on error.
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}
	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}
	return rel
}
