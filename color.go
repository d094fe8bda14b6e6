package mimic

import (
	"fmt"
	"math"
)

// RGB is a color in 8-bit-per-channel sRGB space.
type RGB struct {
	R, G, B uint8
}

// Hex returns the lowercase #rrggbb representation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses a #rrggbb or rrggbb hex string into an RGB.
func ParseHex(s string) (RGB, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) == 3 {
		// Shorthand #abc expands to #aabbcc
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	var c RGB
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return c, nil
}

// grayscaleThreshold is the maximum pairwise channel difference below
// which a color reads as gray regardless of its saturation.
const grayscaleThreshold = 10

// IsGrayscale reports whether every pairwise channel difference is
// below the grayscale threshold.
func (c RGB) IsGrayscale() bool {
	r, g, b := int(c.R), int(c.G), int(c.B)
	return absInt(r-g) < grayscaleThreshold &&
		absInt(g-b) < grayscaleThreshold &&
		absInt(r-b) < grayscaleThreshold
}

// Saturation returns (max-min)/max over the channels, the HSV
// saturation. Pure black has no dominant channel and returns 0.
func (c RGB) Saturation() float64 {
	maxC := maxChannel(c)
	if maxC == 0 {
		return 0
	}
	minC := minChannel(c)
	return float64(maxC-minC) / float64(maxC)
}

// Luminance returns the WCAG 2.x relative luminance in [0, 1].
func (c RGB) Luminance() float64 {
	r := gammaExpand(float64(c.R) / 255.0)
	g := gammaExpand(float64(c.G) / 255.0)
	b := gammaExpand(float64(c.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// gammaExpand linearizes a single sRGB channel per the WCAG formula.
func gammaExpand(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors,
// in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// WeightedColor is a color together with the number of sampled pixels
// it represents.
type WeightedColor struct {
	RGB
	Count int
}

func maxChannel(c RGB) uint8 {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}

func minChannel(c RGB) uint8 {
	m := c.R
	if c.G < m {
		m = c.G
	}
	if c.B < m {
		m = c.B
	}
	return m
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
