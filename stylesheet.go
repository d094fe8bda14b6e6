package mimic

import (
	"fmt"
	"sort"
	"strings"
)

// StylesheetOptions toggles optional sections of the generated CSS.
type StylesheetOptions struct {
	NoReset     bool
	NoUtilities bool
}

// Section caps keep the generated stylesheet a usable starting point
// rather than a dump of every extracted value.
const (
	maxStylesheetColors  = 10
	maxStylesheetSpacing = 8
	maxStylesheetRadii   = 4
	maxStylesheetShadows = 3
	maxStylesheetVars    = 10
	maxFlexPatterns      = 3
	maxGridPatterns      = 2
)

// fontWeightNames maps numeric CSS weights to their conventional
// names. Unlisted weights fall back to a positional name.
var fontWeightNames = map[string]string{
	"300": "light",
	"400": "normal",
	"500": "medium",
	"600": "semibold",
	"700": "bold",
	"800": "extrabold",
}

// SectionList reports which sections GenerateStylesheet will emit, in
// order, for progress output.
func (o StylesheetOptions) SectionList() []string {
	sections := []string{}
	if !o.NoReset {
		sections = append(sections, "CSS Reset")
	}
	sections = append(sections,
		"Custom Properties (Design Tokens)",
		"Layout Patterns",
		"Typography",
		"Responsive Design",
	)
	if !o.NoUtilities {
		sections = append(sections, "Utility Classes")
	}
	return sections
}

// GenerateStylesheet builds a complete CSS file from extracted design
// tokens: reset, custom properties, layout patterns, typography,
// responsive breakpoints and utilities.
func GenerateStylesheet(ts *TokenSet, opts StylesheetOptions) string {
	var parts []string

	if !opts.NoReset {
		parts = append(parts, cssReset)
	}
	parts = append(parts, buildCustomProperties(ts))
	parts = append(parts, buildLayoutCSS(ts))
	parts = append(parts, cssTypography)
	parts = append(parts, cssResponsive)
	if !opts.NoUtilities {
		parts = append(parts, cssUtilities)
	}

	return strings.Join(parts, "\n")
}

// buildCustomProperties renders the :root token block.
func buildCustomProperties(ts *TokenSet) string {
	var b strings.Builder
	b.WriteString("\n/* ==========================================\n")
	b.WriteString("   Design Tokens - CSS Custom Properties\n")
	b.WriteString("   ========================================== */\n\n")
	b.WriteString(":root {\n")

	if colors := capStrings(ts.Tokens.Colors, maxStylesheetColors); len(colors) > 0 {
		b.WriteString("  /* Colors */\n")
		for i, c := range colors {
			fmt.Fprintf(&b, "  --color-%d: %s;\n", i+1, c)
		}
		b.WriteString("\n")
	}

	if fonts := ts.Tokens.Typography.Fonts; len(fonts) > 0 {
		b.WriteString("  /* Typography - Fonts */\n")
		fmt.Fprintf(&b, "  --font-primary: %s, sans-serif;\n", fonts[0])
		if len(fonts) > 1 {
			fmt.Fprintf(&b, "  --font-secondary: %s, serif;\n", fonts[1])
		}
		b.WriteString("\n")
	}

	if sizes := ts.Tokens.Typography.Sizes; len(sizes) >= 5 {
		b.WriteString("  /* Typography - Sizes */\n")
		names := []string{"xs", "sm", "base", "lg", "xl"}
		for i, name := range names {
			fmt.Fprintf(&b, "  --font-%s: %s;\n", name, sizes[i])
		}
		b.WriteString("\n")
	}

	if weights := ts.Tokens.Typography.Weights; len(weights) > 0 {
		b.WriteString("  /* Typography - Weights */\n")
		sorted := append([]string(nil), weights...)
		sort.Strings(sorted)
		for i, w := range sorted {
			name, ok := fontWeightNames[w]
			if !ok {
				name = fmt.Sprintf("weight-%d", i)
			}
			fmt.Fprintf(&b, "  --font-%s: %s;\n", name, w)
		}
		b.WriteString("\n")
	}

	if spacing := capStrings(ts.Tokens.Spacing, maxStylesheetSpacing); len(spacing) > 0 {
		b.WriteString("  /* Spacing Scale */\n")
		for i, s := range spacing {
			fmt.Fprintf(&b, "  --space-%d: %s;\n", i+1, s)
		}
		b.WriteString("\n")
	}

	if radii := capStrings(ts.Tokens.BorderRadius, maxStylesheetRadii); len(radii) > 0 {
		b.WriteString("  /* Border Radius */\n")
		for i, r := range radii {
			fmt.Fprintf(&b, "  --radius-%d: %s;\n", i+1, r)
		}
		b.WriteString("\n")
	}

	if shadows := capStrings(ts.Tokens.Shadows, maxStylesheetShadows); len(shadows) > 0 {
		b.WriteString("  /* Shadows */\n")
		for i, s := range shadows {
			fmt.Fprintf(&b, "  --shadow-%d: %s;\n", i+1, s)
		}
		b.WriteString("\n")
	}

	if len(ts.Tokens.CSSVariables) > 0 {
		b.WriteString("  /* Extracted CSS Variables */\n")
		names := make([]string, 0, len(ts.Tokens.CSSVariables))
		for name := range ts.Tokens.CSSVariables {
			names = append(names, name)
		}
		sort.Strings(names)
		if len(names) > maxStylesheetVars {
			names = names[:maxStylesheetVars]
		}
		for _, name := range names {
			fmt.Fprintf(&b, "  %s: %s;\n", name, ts.Tokens.CSSVariables[name])
		}
		b.WriteString("\n")
	}

	b.WriteString("}\n")
	return b.String()
}

// buildLayoutCSS renders the container plus flex/grid patterns taken
// from the analyzed site.
func buildLayoutCSS(ts *TokenSet) string {
	var b strings.Builder
	b.WriteString("\n/* ==========================================\n")
	b.WriteString("   Layout Patterns\n")
	b.WriteString("   ========================================== */\n\n")

	b.WriteString("/* Container */\n")
	b.WriteString(".container {\n")
	b.WriteString("  width: 100%;\n")
	b.WriteString("  max-width: 1200px;\n")
	b.WriteString("  margin-inline: auto;\n")
	b.WriteString("  padding-inline: var(--space-4, 1rem);\n")
	b.WriteString("}\n")

	if len(ts.Layout.Flex) > 0 {
		b.WriteString("\n/* Flex Layouts (extracted from target site) */\n")
		for i, flex := range ts.Layout.Flex {
			if i >= maxFlexPatterns {
				break
			}
			fmt.Fprintf(&b, ".flex-pattern-%d {\n", i+1)
			b.WriteString("  display: flex;\n")
			fmt.Fprintf(&b, "  flex-direction: %s;\n", orDefault(flex.Direction, "row"))
			fmt.Fprintf(&b, "  justify-content: %s;\n", orDefault(flex.Justify, "flex-start"))
			fmt.Fprintf(&b, "  align-items: %s;\n", orDefault(flex.Align, "flex-start"))
			if flex.Gap != "" && flex.Gap != "normal" {
				fmt.Fprintf(&b, "  gap: %s;\n", flex.Gap)
			}
			b.WriteString("}\n")
		}
	}

	if len(ts.Layout.Grid) > 0 {
		b.WriteString("\n/* Grid Layouts (extracted from target site) */\n")
		for i, grid := range ts.Layout.Grid {
			if i >= maxGridPatterns {
				break
			}
			fmt.Fprintf(&b, ".grid-pattern-%d {\n", i+1)
			b.WriteString("  display: grid;\n")
			if grid.Columns != "" {
				fmt.Fprintf(&b, "  grid-template-columns: %s;\n", grid.Columns)
			}
			if grid.Gap != "" && grid.Gap != "normal" {
				fmt.Fprintf(&b, "  gap: %s;\n", grid.Gap)
			}
			b.WriteString("}\n")
		}
	}

	return b.String()
}

func capStrings(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

const cssReset = `/* ==========================================
   CSS Reset - Modern Baseline
   ========================================== */

*, *::before, *::after {
  box-sizing: border-box;
}

* {
  margin: 0;
  padding: 0;
}

html {
  -webkit-font-smoothing: antialiased;
  -moz-osx-font-smoothing: grayscale;
}

body {
  min-height: 100vh;
  line-height: 1.5;
}

img, picture, video, canvas, svg {
  display: block;
  max-width: 100%;
}

input, button, textarea, select {
  font: inherit;
}

p, h1, h2, h3, h4, h5, h6 {
  overflow-wrap: break-word;
}
`

const cssTypography = `
/* ==========================================
   Typography
   ========================================== */

body {
  font-family: var(--font-primary, system-ui, sans-serif);
  font-size: var(--font-base, 1rem);
  font-weight: var(--font-normal, 400);
  line-height: 1.5;
  color: var(--color-1, #333);
}

h1, h2, h3, h4, h5, h6 {
  font-weight: var(--font-bold, 700);
  line-height: 1.2;
}

h1 { font-size: var(--font-xl, 2.5rem); }
h2 { font-size: var(--font-lg, 2rem); }
h3 { font-size: var(--font-base, 1.5rem); }

a {
  color: var(--color-2, #0066cc);
  text-decoration: none;
}

a:hover {
  text-decoration: underline;
}
`

const cssResponsive = `
/* ==========================================
   Responsive Design
   ========================================== */

/* Mobile first approach */
@media (min-width: 640px) {
  :root {
    --font-base: 1.125rem;
  }
}

@media (min-width: 768px) {
  .container {
    padding-inline: var(--space-6, 2rem);
  }
}

@media (min-width: 1024px) {
  :root {
    --font-base: 1.25rem;
  }
}
`

const cssUtilities = `
/* ==========================================
   Utility Classes
   ========================================== */

/* Spacing */
.mt-1 { margin-top: var(--space-1, 0.25rem); }
.mt-2 { margin-top: var(--space-2, 0.5rem); }
.mt-3 { margin-top: var(--space-3, 1rem); }
.mt-4 { margin-top: var(--space-4, 1.5rem); }

.mb-1 { margin-bottom: var(--space-1, 0.25rem); }
.mb-2 { margin-bottom: var(--space-2, 0.5rem); }
.mb-3 { margin-bottom: var(--space-3, 1rem); }
.mb-4 { margin-bottom: var(--space-4, 1.5rem); }

/* Display */
.flex { display: flex; }
.grid { display: grid; }
.block { display: block; }
.inline-block { display: inline-block; }
.hidden { display: none; }

/* Text alignment */
.text-center { text-align: center; }
.text-left { text-align: left; }
.text-right { text-align: right; }
`
