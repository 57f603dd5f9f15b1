package matern

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
)

const (
	colorbarWidth = 12
	colorbarGap   = 4
)

// writeHeatmap renders the field north-up as a jet-ramp PNG, one pixel
// per grid cell, with a vertical colorbar strip spanning the value range.
func writeHeatmap(path string, grid *Grid) error {
	n := grid.Size
	min, max := grid.MinMax()
	span := max - min
	if span == 0 {
		span = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, n+colorbarGap+colorbarWidth, n))

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			t := (grid.Value(n-1-row, col) - min) / span
			img.Set(col, row, jet(t))
		}
	}

	denom := float64(n - 1)
	if n == 1 {
		denom = 1
	}
	for row := 0; row < n; row++ {
		c := jet(1 - float64(row)/denom)
		for col := n + colorbarGap; col < n+colorbarGap+colorbarWidth; col++ {
			img.Set(col, row, c)
		}
	}

	return writePNG(path, img)
}

// jet maps t in [0,1] onto the familiar blue-to-red ramp.
func jet(t float64) color.RGBA {
	r := clamp01(1.5 - math.Abs(4*t-3))
	g := clamp01(1.5 - math.Abs(4*t-2))
	b := clamp01(1.5 - math.Abs(4*t-1))
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func writePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
