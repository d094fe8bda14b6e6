package mimic

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanColors(t *testing.T) {
	got := cleanColors([]string{
		"#ff0000",
		"rgba(0, 0, 0, 0)",
		"transparent",
		"#00ff00",
		"#ff0000", // duplicate
		"  #0000ff  ",
		"",
	})
	assert.Equal(t, []string{"#0000ff", "#00ff00", "#ff0000"}, got)
}

func TestCleanColors_Cap(t *testing.T) {
	var colors []string
	for i := 0; i < 30; i++ {
		colors = append(colors, RGB{uint8(i * 8), 0, 0}.Hex())
	}
	assert.Len(t, cleanColors(colors), maxTokenColors)
}

func TestCleanFonts(t *testing.T) {
	got := cleanFonts([]string{
		`"Noto Sans KR", sans-serif`,
		"Arial, Helvetica, sans-serif",
		"'Noto Sans KR', serif", // duplicate first family
		"inherit",
		"initial",
	})
	assert.Equal(t, []string{"Arial", "Noto Sans KR"}, got)
}

func TestOrganizeSizes(t *testing.T) {
	got := organizeSizes([]string{
		"16px", "1.5rem", "24px", "12px", "16px", "bogus-px",
	})
	assert.Equal(t, []string{"12px", "16px", "24px"}, got)
}

func TestOrganizeSizes_FractionalPx(t *testing.T) {
	got := organizeSizes([]string{"14.5px", "14px"})
	assert.Equal(t, []string{"14px", "14.5px"}, got)
}

func TestOrganizeSpacing_SplitsShorthand(t *testing.T) {
	got := organizeSpacing([]string{
		"10px 20px",
		"0px",
		"0",
		"5px",
	})
	assert.Equal(t, []string{"5px", "10px", "20px"}, got)
}

func TestTokenSetRoundTrip(t *testing.T) {
	ts := &TokenSet{
		Metadata: Metadata{URL: "https://example.com", Title: "Example"},
		Tokens: Tokens{
			Colors: []string{"#336699"},
			Typography: Typography{
				Fonts:   []string{"Noto Sans KR"},
				Sizes:   []string{"14px", "16px"},
				Weights: []string{"400", "700"},
			},
			Spacing:      []string{"8px", "16px"},
			BorderRadius: []string{"4px"},
			Shadows:      []string{"0 1px 2px rgba(0,0,0,0.1)"},
			CSSVariables: map[string]string{"--brand": "#336699"},
		},
		Layout: Layout{
			Flex: []FlexPattern{{Selector: ".nav", Direction: "row", Gap: "1rem"}},
			Grid: []GridPattern{{Selector: ".cards", Columns: "repeat(3, 1fr)"}},
			Containers: []ContainerPattern{
				{Selector: ".wrap", MaxWidth: "1200px"},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "design_tokens.json")
	require.NoError(t, ts.SaveTokens(path))

	loaded, err := LoadTokens(path)
	require.NoError(t, err)
	assert.Equal(t, ts, loaded)
}

func TestLoadTokens_Missing(t *testing.T) {
	_, err := LoadTokens(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
