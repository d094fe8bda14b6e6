package mimic

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/mimictools/mimic/internal/term"
)

// ReportConfig controls terminal report rendering.
type ReportConfig struct {
	// UseColors forces color output on. When false, colors are
	// auto-detected from the environment.
	UseColors bool
	// ShowPriority expands the per-type priority breakdown.
	ShowPriority bool
	// Verbose lists every opportunity instead of the leading few.
	Verbose bool
}

// Reporter renders analyses and palettes for the terminal.
type Reporter struct {
	w         io.Writer
	useColors bool
	config    ReportConfig
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:         w,
		useColors: shouldUseColors(config),
		config:    config,
	}
}

// shouldUseColors determines if colors should be enabled.
func shouldUseColors(config ReportConfig) bool {
	// Explicit flag wins
	if config.UseColors {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, _ := os.Stdout.Stat(); (fileInfo.Mode() & os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// UseColors returns whether colors are enabled.
func (r *Reporter) UseColors() bool {
	return r.useColors
}

// Per-priority display limits when expanding the breakdown.
const (
	showHighLimit   = 5
	showMediumLimit = 3
	showLeadLimit   = 3
)

// PrintAnalysis renders the full opportunity report: findings grouped
// by type, then the priority rollup and the suggested implementation
// order.
func (r *Reporter) PrintAnalysis(a *Analysis) {
	if len(a.Opportunities) == 0 {
		fmt.Fprintln(r.w, term.RenderStyle(term.StyleGreen,
			"No conversion opportunities found.", r.useColors))
		fmt.Fprintln(r.w, "Your templates might already be using htmx, or are simple static pages.")
		return
	}

	header := fmt.Sprintf("Conversion Opportunities Found: %d", len(a.Opportunities))
	fmt.Fprintln(r.w, term.RenderStyle(term.StyleCyan, header, r.useColors))
	fmt.Fprintln(r.w, "")

	byType := a.ByType()
	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	// Most frequent types first; alphabetical tiebreak keeps output
	// stable.
	sort.Slice(types, func(i, j int) bool {
		if len(byType[types[i]]) != len(byType[types[j]]) {
			return len(byType[types[i]]) > len(byType[types[j]])
		}
		return types[i] < types[j]
	})

	for _, t := range types {
		opps := byType[t]
		fmt.Fprintf(r.w, "%s (%d found)\n",
			term.RenderStyle(term.StyleCyan, t, r.useColors), len(opps))

		if r.config.ShowPriority {
			r.printPriorityGroups(opps)
		} else {
			limit := showLeadLimit
			if r.config.Verbose {
				limit = len(opps)
			}
			for i, opp := range opps {
				if i >= limit {
					fmt.Fprintf(r.w, "  ... and %d more\n", len(opps)-limit)
					break
				}
				r.printOpportunity(opp)
			}
		}
		fmt.Fprintln(r.w, "")
	}

	r.printRecommendations(a)
}

// printPriorityGroups expands one type's findings by priority level.
func (r *Reporter) printPriorityGroups(opps []Opportunity) {
	groups := []struct {
		priority Priority
		style    func() string
		limit    int
	}{
		{PriorityHigh, func() string {
			return term.RenderStyle(term.StyleRed, "High Priority", r.useColors)
		}, showHighLimit},
		{PriorityMedium, func() string {
			return term.RenderStyle(term.StyleYellow, "Medium Priority", r.useColors)
		}, showMediumLimit},
	}

	for _, g := range groups {
		var matched []Opportunity
		for _, opp := range opps {
			if opp.Priority == g.priority {
				matched = append(matched, opp)
			}
		}
		if len(matched) == 0 {
			continue
		}
		fmt.Fprintf(r.w, "  %s (%d)\n", g.style(), len(matched))
		limit := g.limit
		if r.config.Verbose {
			limit = len(matched)
		}
		for i, opp := range matched {
			if i >= limit {
				break
			}
			r.printOpportunity(opp)
		}
	}

	var low int
	for _, opp := range opps {
		if opp.Priority == PriorityLow {
			low++
		}
	}
	if low > 0 {
		fmt.Fprintf(r.w, "  %s (%d) - use --verbose to see all\n",
			term.RenderStyle(term.StyleGreen, "Low Priority", r.useColors), low)
	}
}

// printOpportunity formats one finding as location plus suggestion.
func (r *Reporter) printOpportunity(opp Opportunity) {
	location := fmt.Sprintf("%s:%d", opp.Pos.Filename, opp.Pos.Line)
	fmt.Fprintf(r.w, "  %s\n", term.RenderStyle(term.StyleCyan, location, r.useColors))
	fmt.Fprintf(r.w, "    %s\n", opp.Suggestion)
}

// printRecommendations renders the priority rollup and suggested
// implementation order.
func (r *Reporter) printRecommendations(a *Analysis) {
	high, medium, low := a.PriorityCounts()

	fmt.Fprintln(r.w, term.RenderStyle(term.StyleCyan, "Priority Recommendations", r.useColors))
	fmt.Fprintf(r.w, "  %s %3d - Start here for maximum impact\n",
		term.RenderStyle(term.StyleRed, "High:", r.useColors), high)
	fmt.Fprintf(r.w, "  %s %3d - Good value-to-effort ratio\n",
		term.RenderStyle(term.StyleYellow, "Medium:", r.useColors), medium)
	fmt.Fprintf(r.w, "  %s %3d - Nice to have, low urgency\n",
		term.RenderStyle(term.StyleGreen, "Low:", r.useColors), low)
	fmt.Fprintln(r.w, "")

	fmt.Fprintln(r.w, "Suggested Implementation Order:")
	fmt.Fprintln(r.w, "1. Convert search forms to live search (high user value)")
	fmt.Fprintln(r.w, "2. Add infinite scroll to content lists (better UX)")
	fmt.Fprintln(r.w, "3. Make forms submit inline (reduce page reloads)")
	fmt.Fprintln(r.w, "4. Convert delete actions to partial updates (add confirmations)")
	fmt.Fprintln(r.w, "5. Progressive enhancement for navigation (hx-boost)")
}

// PrintPalette renders a color swatch preview of a categorized
// palette.
func (r *Reporter) PrintPalette(p *Palette) {
	groups := []struct {
		name   string
		colors []WeightedColor
	}{
		{"PRIMARY", p.Primary},
		{"NEUTRAL", p.Neutral},
		{"ACCENT", p.Accent},
	}

	fmt.Fprintln(r.w, "Color Palette:")
	for _, g := range groups {
		if len(g.colors) == 0 {
			continue
		}
		fmt.Fprintf(r.w, "\n%s:\n", term.RenderStyle(term.StyleCyan, g.name, r.useColors))
		for _, c := range g.colors {
			swatch := ""
			if r.useColors {
				swatch = term.Swatch(c.Hex()) + " "
			}
			fmt.Fprintf(r.w, "  %s%s - RGB(%d, %d, %d)\n", swatch, c.Hex(), c.R, c.G, c.B)
		}
	}
}
