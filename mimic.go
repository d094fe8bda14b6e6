// Package mimic provides tools for mimicking a website's visual style.
//
// mimic analyzes visual sources (screenshots, live pages, HTML templates)
// and produces CSS and component boilerplate that reproduces their look:
//
//   - Palette extraction: cluster the dominant colors of a screenshot,
//     categorize them into primary/neutral/accent roles, and emit CSS
//     custom properties ready to drop into a stylesheet.
//   - Token extraction: fetch a live page, parse its stylesheets, and
//     collect design tokens (colors, typography, spacing, shadows,
//     custom properties, layout patterns) as JSON.
//   - Stylesheet generation: turn a token file into a complete CSS
//     starting point with reset, custom properties, layout patterns,
//     typography, responsive breakpoints, and utilities.
//   - Template analysis: scan HTML templates for interactions that
//     would benefit from AJAX partial updates, grouped by priority.
//   - Component generation: emit HTML partials, matching Go handlers,
//     and standalone test pages for common dynamic components.
//
// # Library Usage
//
//	img, err := mimic.LoadImage("screenshot.png")
//	if err != nil { ... }
//	colors, err := mimic.ExtractPalette(img, mimic.ExtractOptions{NumColors: 8})
//	if err != nil { ... }
//	palette := mimic.Categorize(colors)
//	css := mimic.BuildPaletteCSS(palette)
//
// # CLI Usage
//
//	go install github.com/mimictools/mimic/cmd/mimic@latest
//
//	mimic palette screenshot.png --output style.css --json
//	mimic tokens https://example.com --output design_tokens.json
//	mimic stylesheet design_tokens.json --output style_template.css
//	mimic analyze ./templates
//	mimic component search topic-search
//	mimic testpage search --output test_search.html
package mimic
