package mimic

import (
	"fmt"
	"image"
	"math"
	"sort"

	"github.com/cenkalti/dominantcolor"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"
)

// Algorithm selects the color extraction strategy.
type Algorithm string

const (
	// AlgorithmKMeans clusters sampled pixels with k-means. Slower but
	// produces centroids that average out anti-aliasing noise.
	AlgorithmKMeans Algorithm = "kmeans"
	// AlgorithmDominant uses dominant-color histogram weighting.
	// Faster, biased toward saturated colors.
	AlgorithmDominant Algorithm = "dominant"
)

// ParseAlgorithm validates an algorithm name from flags or config.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case AlgorithmKMeans, AlgorithmDominant:
		return Algorithm(s), nil
	case "":
		return AlgorithmKMeans, nil
	}
	return "", fmt.Errorf("unknown algorithm %q (want kmeans or dominant)", s)
}

// DefaultNumColors is the cluster count used when none is requested.
const DefaultNumColors = 8

// kmeansRestarts is how many independent clustering runs are tried;
// the run with the lowest inertia wins.
const kmeansRestarts = 10

// ExtractOptions configures palette extraction.
type ExtractOptions struct {
	NumColors int
	Algorithm Algorithm
}

// Validate checks option ranges and fills defaults.
func (o *ExtractOptions) Validate() error {
	if o.NumColors == 0 {
		o.NumColors = DefaultNumColors
	}
	if o.NumColors < 1 {
		return fmt.Errorf("num-colors must be at least 1, got %d", o.NumColors)
	}
	if o.Algorithm == "" {
		o.Algorithm = AlgorithmKMeans
	}
	if o.Algorithm != AlgorithmKMeans && o.Algorithm != AlgorithmDominant {
		return fmt.Errorf("unknown algorithm %q", o.Algorithm)
	}
	return nil
}

// ExtractPalette downsamples img, samples its pixels and returns the
// representative colors ordered by descending pixel population.
func ExtractPalette(img image.Image, opts ExtractOptions) ([]WeightedColor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	small := Downsample(img, maxSampleSide)
	pixels := SamplePixels(small)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("image contains only pure black and pure white pixels")
	}

	switch opts.Algorithm {
	case AlgorithmDominant:
		return dominantPalette(small, opts.NumColors, len(pixels))
	default:
		return kmeansPalette(pixels, opts.NumColors)
	}
}

// kmeansPalette clusters pixels into k groups and returns the rounded
// centroids weighted by cluster population.
func kmeansPalette(pixels []RGB, k int) ([]WeightedColor, error) {
	// When the image has no more distinct colors than k, clustering is
	// pointless (and the library rejects it); the distinct colors are
	// the exact answer.
	distinct := distinctColors(pixels)
	if k >= len(distinct) {
		sortByPopulation(distinct)
		return distinct, nil
	}

	dataset := make(clusters.Observations, len(pixels))
	for i, p := range pixels {
		dataset[i] = clusters.Coordinates{
			float64(p.R),
			float64(p.G),
			float64(p.B),
		}
	}

	var best clusters.Clusters
	bestInertia := math.Inf(1)
	for run := 0; run < kmeansRestarts; run++ {
		km := kmeans.New()
		cc, err := km.Partition(dataset, k)
		if err != nil {
			return nil, fmt.Errorf("clustering pixels: %w", err)
		}
		if in := inertia(cc); in < bestInertia {
			bestInertia = in
			best = cc
		}
	}

	result := make([]WeightedColor, 0, len(best))
	for _, c := range best {
		if len(c.Center) < 3 {
			continue
		}
		result = append(result, WeightedColor{
			RGB: RGB{
				R: roundChannel(c.Center[0]),
				G: roundChannel(c.Center[1]),
				B: roundChannel(c.Center[2]),
			},
			Count: len(c.Observations),
		})
	}
	sortByPopulation(result)
	return result, nil
}

// inertia is the total squared distance of observations to their
// cluster centers. Lower is a tighter clustering.
func inertia(cc clusters.Clusters) float64 {
	var total float64
	for _, c := range cc {
		for _, o := range c.Observations {
			total += c.Center.Distance(o.Coordinates())
		}
	}
	return total
}

// dominantPalette extracts k colors by histogram weight. Weights are
// scaled to pixel counts so both algorithms report comparable numbers.
func dominantPalette(img image.Image, k, totalPixels int) ([]WeightedColor, error) {
	found := dominantcolor.FindWeight(img, k)
	if len(found) == 0 {
		return nil, fmt.Errorf("no dominant colors found")
	}

	result := make([]WeightedColor, 0, len(found))
	for _, c := range found {
		count := int(c.Weight * float64(totalPixels))
		if count < 1 {
			count = 1
		}
		result = append(result, WeightedColor{
			RGB:   RGB{R: c.RGBA.R, G: c.RGBA.G, B: c.RGBA.B},
			Count: count,
		})
	}
	sortByPopulation(result)
	return result, nil
}

// distinctColors counts the unique colors in pixels.
func distinctColors(pixels []RGB) []WeightedColor {
	counts := make(map[RGB]int)
	for _, p := range pixels {
		counts[p]++
	}
	result := make([]WeightedColor, 0, len(counts))
	for c, n := range counts {
		result = append(result, WeightedColor{RGB: c, Count: n})
	}
	return result
}

// sortByPopulation orders colors by descending count; ties break by
// ascending hex so output is reproducible.
func sortByPopulation(colors []WeightedColor) {
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].Count != colors[j].Count {
			return colors[i].Count > colors[j].Count
		}
		return colors[i].Hex() < colors[j].Hex()
	})
}

func roundChannel(v float64) uint8 {
	r := math.Round(v)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}
