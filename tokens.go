package mimic

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// TokenSet is the design-token export for a page: the tokens
// themselves plus the layout patterns observed in its stylesheets.
type TokenSet struct {
	Metadata Metadata `json:"metadata"`
	Tokens   Tokens   `json:"tokens"`
	Layout   Layout   `json:"layout"`
}

// Metadata records where the tokens came from.
type Metadata struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// Tokens holds the extracted design primitives.
type Tokens struct {
	Colors       []string          `json:"colors"`
	Typography   Typography        `json:"typography"`
	Spacing      []string          `json:"spacing"`
	BorderRadius []string          `json:"borderRadius"`
	Shadows      []string          `json:"shadows"`
	CSSVariables map[string]string `json:"cssVariables"`
}

// Typography groups font tokens.
type Typography struct {
	Fonts   []string `json:"fonts"`
	Sizes   []string `json:"sizes"`
	Weights []string `json:"weights"`
}

// Layout groups the flex/grid/container patterns found on the page.
type Layout struct {
	Flex       []FlexPattern      `json:"flex"`
	Grid       []GridPattern      `json:"grid"`
	Containers []ContainerPattern `json:"containers"`
}

// FlexPattern describes one flex rule.
type FlexPattern struct {
	Selector  string `json:"selector"`
	Direction string `json:"direction,omitempty"`
	Justify   string `json:"justify,omitempty"`
	Align     string `json:"align,omitempty"`
	Gap       string `json:"gap,omitempty"`
}

// GridPattern describes one grid rule.
type GridPattern struct {
	Selector string `json:"selector"`
	Columns  string `json:"columns,omitempty"`
	Rows     string `json:"rows,omitempty"`
	Gap      string `json:"gap,omitempty"`
}

// ContainerPattern describes a width-constrained wrapper rule.
type ContainerPattern struct {
	Selector string `json:"selector"`
	MaxWidth string `json:"maxWidth,omitempty"`
	Width    string `json:"width,omitempty"`
	Padding  string `json:"padding,omitempty"`
}

// Export caps keep the token file focused on the values that matter.
const (
	maxTokenColors  = 20
	maxTokenSpacing = 20
	maxTokenShadows = 10
)

// LoadTokens reads a token file written by WriteTokens.
func LoadTokens(path string) (*TokenSet, error) {
	// #nosec G304 - path comes from the user's command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token file %s: %w", path, err)
	}
	var ts TokenSet
	if err := json.Unmarshal(data, &ts); err != nil {
		return nil, fmt.Errorf("parsing token file %s: %w", path, err)
	}
	return &ts, nil
}

// WriteTokens serializes the token set as indented JSON.
func (ts *TokenSet) WriteTokens(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ts)
}

// SaveTokens writes the token set to a file.
func (ts *TokenSet) SaveTokens(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating token file %s: %w", path, err)
	}
	defer f.Close()

	if err := ts.WriteTokens(f); err != nil {
		return fmt.Errorf("writing token file %s: %w", path, err)
	}
	return nil
}

// cleanColors deduplicates, sorts and caps a color list, dropping
// fully transparent values.
func cleanColors(colors []string) []string {
	seen := make(map[string]bool)
	var unique []string
	for _, c := range colors {
		c = strings.TrimSpace(c)
		if c == "" || c == "rgba(0, 0, 0, 0)" || c == "transparent" {
			continue
		}
		if !seen[c] {
			seen[c] = true
			unique = append(unique, c)
		}
	}
	sort.Strings(unique)
	if len(unique) > maxTokenColors {
		unique = unique[:maxTokenColors]
	}
	return unique
}

// cleanFonts keeps the first font of each family stack.
func cleanFonts(families []string) []string {
	seen := make(map[string]bool)
	var fonts []string
	for _, family := range families {
		first := strings.TrimSpace(strings.Split(family, ",")[0])
		first = strings.Trim(first, `"'`)
		if first == "" || first == "inherit" || first == "initial" {
			continue
		}
		if !seen[first] {
			seen[first] = true
			fonts = append(fonts, first)
		}
	}
	sort.Strings(fonts)
	return fonts
}

// organizeSizes keeps px values and sorts them numerically.
func organizeSizes(sizes []string) []string {
	seen := make(map[string]bool)
	var px []string
	for _, s := range sizes {
		s = strings.TrimSpace(s)
		if !strings.HasSuffix(s, "px") {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64); err != nil {
			continue
		}
		if !seen[s] {
			seen[s] = true
			px = append(px, s)
		}
	}
	sort.Slice(px, func(i, j int) bool {
		vi, _ := strconv.ParseFloat(strings.TrimSuffix(px[i], "px"), 64)
		vj, _ := strconv.ParseFloat(strings.TrimSuffix(px[j], "px"), 64)
		return vi < vj
	})
	return px
}

// organizeSpacing splits multi-value shorthands ("10px 20px") into
// individual px values, dropping zeros.
func organizeSpacing(values []string) []string {
	var parts []string
	for _, v := range values {
		for _, part := range strings.Fields(v) {
			if part != "" && part != "0px" && part != "0" {
				parts = append(parts, part)
			}
		}
	}
	sizes := organizeSizes(parts)
	if len(sizes) > maxTokenSpacing {
		sizes = sizes[:maxTokenSpacing]
	}
	return sizes
}
