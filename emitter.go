package mimic

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// NeutralName returns the CSS variable suffix for the i-th neutral
// (1-based) in ascending-luminance order: light-N above 0.7, dark-N
// below 0.3, neutral-N in between.
func NeutralName(c RGB, i int) string {
	switch lum := c.Luminance(); {
	case lum > 0.7:
		return fmt.Sprintf("light-%d", i)
	case lum < 0.3:
		return fmt.Sprintf("dark-%d", i)
	default:
		return fmt.Sprintf("neutral-%d", i)
	}
}

// BuildPaletteCSS renders the palette as a :root block of custom
// properties followed by a usage example.
func BuildPaletteCSS(p *Palette) string {
	var b strings.Builder

	b.WriteString("/* Color Palette - Generated from screenshot */\n")
	b.WriteString(":root {\n")
	for i, c := range p.Primary {
		fmt.Fprintf(&b, "  --color-primary-%d: %s;\n", i+1, c.Hex())
	}
	for i, c := range p.Neutral {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", NeutralName(c.RGB, i+1), c.Hex())
	}
	for i, c := range p.Accent {
		fmt.Fprintf(&b, "  --color-accent-%d: %s;\n", i+1, c.Hex())
	}
	b.WriteString("}\n")

	b.WriteString("\n/* Usage Examples */\n")
	b.WriteString("body {\n")
	if light, ok := p.Lightest(); ok {
		fmt.Fprintf(&b, "  background-color: var(--color-light-1, %s);\n", light.Hex())
	}
	if dark, ok := p.Darkest(); ok {
		fmt.Fprintf(&b, "  color: var(--color-dark-1, %s);\n", dark.Hex())
	}
	b.WriteString("}\n")

	if len(p.Primary) > 0 {
		b.WriteString("\nbutton, a {\n")
		b.WriteString("  background-color: var(--color-primary-1);\n")
		b.WriteString("  color: white;\n")
		b.WriteString("}\n")
	}

	if len(p.Accent) > 0 {
		b.WriteString("\n.highlight {\n")
		b.WriteString("  border-left: 3px solid var(--color-accent-1);\n")
		b.WriteString("}\n")
	}

	return b.String()
}

// PaletteJSON is the sidecar export schema.
type PaletteJSON struct {
	Primary   []string `json:"primary"`
	Neutral   []string `json:"neutral"`
	Accent    []string `json:"accent"`
	AllColors []string `json:"all_colors"`
}

// WritePaletteJSON writes the palette's hex values grouped by role.
// AllColors keeps the pre-categorization order.
func WritePaletteJSON(w io.Writer, p *Palette) error {
	out := PaletteJSON{
		Primary:   hexList(p.Primary),
		Neutral:   hexList(p.Neutral),
		Accent:    hexList(p.Accent),
		AllColors: hexList(p.All),
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// SidecarPath derives the JSON sidecar path from a CSS output path.
func SidecarPath(cssPath string) string {
	if strings.HasSuffix(cssPath, ".css") {
		return strings.TrimSuffix(cssPath, ".css") + ".json"
	}
	return cssPath + ".json"
}

// WritePaletteFiles writes the CSS file and, when withJSON is set, the
// JSON sidecar next to it. It returns the sidecar path ("" when no
// sidecar was written).
func WritePaletteFiles(p *Palette, cssPath string, withJSON bool) (string, error) {
	if err := os.WriteFile(cssPath, []byte(BuildPaletteCSS(p)), 0644); err != nil {
		return "", fmt.Errorf("writing CSS file %s: %w", cssPath, err)
	}

	if !withJSON {
		return "", nil
	}

	jsonPath := SidecarPath(cssPath)
	f, err := os.Create(jsonPath)
	if err != nil {
		return "", fmt.Errorf("creating JSON sidecar %s: %w", jsonPath, err)
	}
	defer f.Close()

	if err := WritePaletteJSON(f, p); err != nil {
		return "", fmt.Errorf("writing JSON sidecar %s: %w", jsonPath, err)
	}
	return jsonPath, nil
}

func hexList(colors []WeightedColor) []string {
	out := make([]string, len(colors))
	for i, c := range colors {
		out[i] = c.Hex()
	}
	return out
}
