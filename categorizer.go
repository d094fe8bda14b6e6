package mimic

import "sort"

// saturationThreshold splits chromatic colors from near-grays.
const saturationThreshold = 0.3

// maxPrimary caps how many colors claim the primary role; everything
// saturated beyond the cap becomes an accent.
const maxPrimary = 2

// Palette is a set of extracted colors categorized by role.
type Palette struct {
	// Primary holds up to two brand colors, in extraction order.
	Primary []WeightedColor
	// Neutral holds low-saturation colors, ordered by ascending
	// luminance (darkest first).
	Neutral []WeightedColor
	// Accent holds the remaining saturated colors, in extraction order.
	Accent []WeightedColor
	// All preserves the pre-categorization order (descending
	// population) for sidecar export.
	All []WeightedColor
}

// Categorize assigns each color a role. The first two sufficiently
// saturated colors become primary, later saturated colors accents,
// and grays or washed-out colors neutrals. Input order matters: colors
// arrive sorted by population, so the most prominent saturated colors
// win the primary slots.
func Categorize(colors []WeightedColor) *Palette {
	p := &Palette{All: colors}

	for _, c := range colors {
		switch {
		case c.IsGrayscale():
			p.Neutral = append(p.Neutral, c)
		case c.Saturation() > saturationThreshold:
			if len(p.Primary) < maxPrimary {
				p.Primary = append(p.Primary, c)
			} else {
				p.Accent = append(p.Accent, c)
			}
		default:
			p.Neutral = append(p.Neutral, c)
		}
	}

	sort.SliceStable(p.Neutral, func(i, j int) bool {
		return p.Neutral[i].Luminance() < p.Neutral[j].Luminance()
	})

	return p
}

// Lightest returns the highest-luminance neutral, or false when there
// are no neutrals.
func (p *Palette) Lightest() (WeightedColor, bool) {
	if len(p.Neutral) == 0 {
		return WeightedColor{}, false
	}
	return p.Neutral[len(p.Neutral)-1], true
}

// Darkest returns the lowest-luminance neutral, or false when there
// are no neutrals.
func (p *Palette) Darkest() (WeightedColor, bool) {
	if len(p.Neutral) == 0 {
		return WeightedColor{}, false
	}
	return p.Neutral[0], true
}
