package mimic

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm(t *testing.T) {
	a, err := ParseAlgorithm("kmeans")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmKMeans, a)

	a, err = ParseAlgorithm("dominant")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmDominant, a)

	// Empty defaults to kmeans
	a, err = ParseAlgorithm("")
	require.NoError(t, err)
	assert.Equal(t, AlgorithmKMeans, a)

	_, err = ParseAlgorithm("octree")
	assert.Error(t, err)
}

func TestExtractOptionsValidate(t *testing.T) {
	opts := ExtractOptions{}
	require.NoError(t, opts.Validate())
	assert.Equal(t, DefaultNumColors, opts.NumColors)
	assert.Equal(t, AlgorithmKMeans, opts.Algorithm)

	opts = ExtractOptions{NumColors: -1}
	assert.Error(t, opts.Validate())

	opts = ExtractOptions{NumColors: 4, Algorithm: "bogus"}
	assert.Error(t, opts.Validate())
}

func TestKMeansPalette_DistinctShortcut(t *testing.T) {
	// Two distinct colors with k well above them: the distinct colors
	// come back exactly, no clustering involved.
	pixels := make([]RGB, 0, 30)
	for i := 0; i < 20; i++ {
		pixels = append(pixels, RGB{200, 30, 30})
	}
	for i := 0; i < 10; i++ {
		pixels = append(pixels, RGB{30, 30, 200})
	}

	colors, err := kmeansPalette(pixels, 8)
	require.NoError(t, err)
	require.Len(t, colors, 2)

	assert.Equal(t, WeightedColor{RGB: RGB{200, 30, 30}, Count: 20}, colors[0])
	assert.Equal(t, WeightedColor{RGB: RGB{30, 30, 200}, Count: 10}, colors[1])
}

func TestSortByPopulation(t *testing.T) {
	colors := []WeightedColor{
		{RGB: RGB{0xcc, 0, 0}, Count: 5},
		{RGB: RGB{0, 0, 0xcc}, Count: 10},
		{RGB: RGB{0, 0xcc, 0}, Count: 5},
	}

	sortByPopulation(colors)

	assert.Equal(t, 10, colors[0].Count)
	// Ties break by ascending hex: #00cc00 before #cc0000
	assert.Equal(t, "#00cc00", colors[1].Hex())
	assert.Equal(t, "#cc0000", colors[2].Hex())
}

func TestRoundChannel(t *testing.T) {
	assert.Equal(t, uint8(0), roundChannel(-3.2))
	assert.Equal(t, uint8(128), roundChannel(127.6))
	assert.Equal(t, uint8(255), roundChannel(300.0))
}

// twoRegionImage returns an image whose left half is one color and
// right half another.
func twoRegionImage(w, h int, left, right color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < w/2 {
				img.Set(x, y, left)
			} else {
				img.Set(x, y, right)
			}
		}
	}
	return img
}

func TestExtractPalette_TwoRegions(t *testing.T) {
	img := twoRegionImage(40, 40,
		color.RGBA{200, 30, 30, 255},
		color.RGBA{30, 30, 200, 255},
	)

	colors, err := ExtractPalette(img, ExtractOptions{NumColors: 2})
	require.NoError(t, err)
	require.Len(t, colors, 2)

	hexes := []string{colors[0].Hex(), colors[1].Hex()}
	assert.ElementsMatch(t, []string{"#c81e1e", "#1e1ec8"}, hexes)

	// Both regions have equal area
	assert.Equal(t, 800, colors[0].Count)
	assert.Equal(t, 800, colors[1].Count)
}

func TestExtractPalette_OnlyBlackAndWhite(t *testing.T) {
	img := twoRegionImage(10, 10,
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 255, 255, 255},
	)

	_, err := ExtractPalette(img, ExtractOptions{NumColors: 2})
	assert.Error(t, err)
}
