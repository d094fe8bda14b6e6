package mimic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	tests := []struct {
		hex string
		rgb RGB
	}{
		{"#000000", RGB{0, 0, 0}},
		{"#ffffff", RGB{255, 255, 255}},
		{"#123456", RGB{0x12, 0x34, 0x56}},
		{"#ff8000", RGB{255, 128, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			assert.Equal(t, tt.hex, tt.rgb.Hex())

			parsed, err := ParseHex(tt.hex)
			require.NoError(t, err)
			assert.Equal(t, tt.rgb, parsed)
		})
	}
}

func TestParseHex_Shorthand(t *testing.T) {
	c, err := ParseHex("#abc")
	require.NoError(t, err)
	assert.Equal(t, RGB{0xaa, 0xbb, 0xcc}, c)
}

func TestParseHex_NoHash(t *testing.T) {
	c, err := ParseHex("336699")
	require.NoError(t, err)
	assert.Equal(t, RGB{0x33, 0x66, 0x99}, c)
}

func TestParseHex_Invalid(t *testing.T) {
	for _, s := range []string{"", "#12", "#12345", "not-a-color"} {
		_, err := ParseHex(s)
		assert.Error(t, err, "input %q", s)
	}
}

func TestIsGrayscale(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want bool
	}{
		{"pure black", RGB{0, 0, 0}, true},
		{"pure white", RGB{255, 255, 255}, true},
		{"mid gray", RGB{128, 128, 128}, true},
		{"near gray within threshold", RGB{100, 105, 109}, true},
		{"channel pair at threshold", RGB{100, 100, 110}, false},
		{"saturated red", RGB{200, 30, 30}, false},
		{"saturated blue", RGB{40, 40, 220}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsGrayscale())
		})
	}
}

func TestSaturation(t *testing.T) {
	// Pure black has max == 0 and must not divide by zero
	assert.Zero(t, RGB{0, 0, 0}.Saturation())

	// Grays have zero saturation
	assert.Zero(t, RGB{128, 128, 128}.Saturation())
	assert.Zero(t, RGB{255, 255, 255}.Saturation())

	// Fully saturated primaries
	assert.InDelta(t, 1.0, RGB{255, 0, 0}.Saturation(), 1e-9)
	assert.InDelta(t, 1.0, RGB{0, 128, 0}.Saturation(), 1e-9)

	// Half-saturated: max 200, min 100 -> 0.5
	assert.InDelta(t, 0.5, RGB{200, 100, 150}.Saturation(), 1e-9)
}

func TestLuminance_MonotonicOnGrayRamp(t *testing.T) {
	prev := -1.0
	for v := 0; v <= 255; v += 15 {
		l := RGB{uint8(v), uint8(v), uint8(v)}.Luminance()
		assert.Greater(t, l, prev, "luminance must increase with gray level %d", v)
		prev = l
	}

	assert.InDelta(t, 0.0, RGB{0, 0, 0}.Luminance(), 1e-9)
	assert.InDelta(t, 1.0, RGB{255, 255, 255}.Luminance(), 1e-9)
}

func TestLuminance_GreenDominates(t *testing.T) {
	// The green coefficient is the largest, so pure green is brighter
	// than pure red or pure blue.
	g := RGB{0, 255, 0}.Luminance()
	assert.Greater(t, g, RGB{255, 0, 0}.Luminance())
	assert.Greater(t, g, RGB{0, 0, 255}.Luminance())
}

func TestContrastRatio(t *testing.T) {
	// Black on white is the maximum, 21:1
	assert.InDelta(t, 21.0, ContrastRatio(RGB{0, 0, 0}, RGB{255, 255, 255}), 0.01)

	// Symmetric
	a, b := RGB{30, 60, 90}, RGB{200, 220, 240}
	assert.InDelta(t, ContrastRatio(a, b), ContrastRatio(b, a), 1e-9)

	// Identical colors have ratio 1
	assert.InDelta(t, 1.0, ContrastRatio(a, a), 1e-9)
}
