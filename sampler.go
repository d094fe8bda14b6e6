package mimic

import (
	"fmt"
	"image"
	"os"

	// Register decoders for the formats screenshots come in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// maxSampleSide is the longest image side used for sampling. Larger
// images are downsampled before clustering; palette quality does not
// improve past this resolution.
const maxSampleSide = 400

// LoadImage opens and decodes an image file (PNG, JPEG, GIF or WebP).
func LoadImage(path string) (image.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("image file %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("image file %s: is a directory", path)
	}

	// #nosec G304 - path comes from the user's command line
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return img, nil
}

// Downsample scales img so its longer side is at most maxSide pixels,
// preserving aspect ratio. Images already within the bound are
// returned unchanged.
func Downsample(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return img
	}

	var nw, nh int
	if w >= h {
		nw = maxSide
		nh = h * maxSide / w
	} else {
		nh = maxSide
		nw = w * maxSide / h
	}
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, nw, nh))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

// SamplePixels flattens img into a pixel list, dropping pure white and
// pure black. Screenshots are dominated by background fills in those
// two colors, and keeping them would claim clusters that carry no
// styling information.
func SamplePixels(img image.Image) []RGB {
	b := img.Bounds()
	pixels := make([]RGB, 0, b.Dx()*b.Dy())

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			c := RGB{
				R: uint8(r16 >> 8),
				G: uint8(g16 >> 8),
				B: uint8(b16 >> 8),
			}
			if (c == RGB{255, 255, 255}) || (c == RGB{0, 0, 0}) {
				continue
			}
			pixels = append(pixels, c)
		}
	}
	return pixels
}
