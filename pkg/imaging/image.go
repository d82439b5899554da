// Package imaging holds the rendered pixel buffer and the post-processing
// pipeline (bloom, gamma correction) applied to it before it is written out
// as a PNG.
package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Image is a dense grid of linear HDR colors, row-major, top to bottom.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewImage allocates a black image of the given dimensions.
func NewImage(width, height int) Image {
	return Image{Width: width, Height: height, Pixels: make([]core.Vec3, width*height)}
}

func (img Image) index(x, y int) int {
	return y*img.Width + x
}

// At returns the color at (x, y).
func (img Image) At(x, y int) core.Vec3 {
	return img.Pixels[img.index(x, y)]
}

// Set assigns the color at (x, y).
func (img Image) Set(x, y int, c core.Vec3) {
	img.Pixels[img.index(x, y)] = c
}

// Add returns the pixel-wise sum of two same-sized images, the reduction
// used to combine independently rendered stacks before averaging.
func (img Image) Add(other Image) Image {
	result := NewImage(img.Width, img.Height)
	for i := range img.Pixels {
		result.Pixels[i] = img.Pixels[i].Add(other.Pixels[i])
	}
	return result
}

// Scale returns every pixel multiplied by factor (used to average a summed
// stack by 1/stackSize).
func (img Image) Scale(factor float64) Image {
	result := NewImage(img.Width, img.Height)
	for i, p := range img.Pixels {
		result.Pixels[i] = p.Multiply(factor)
	}
	return result
}

// Map returns a new image with f applied to every pixel.
func (img Image) Map(f func(core.Vec3) core.Vec3) Image {
	result := NewImage(img.Width, img.Height)
	for i, p := range img.Pixels {
		result.Pixels[i] = f(p)
	}
	return result
}

// Save gamma-corrects are assumed already applied; Save just encodes the
// image as an 8-bit PNG, clamping each channel to [0, 1] first.
func (img Image) Save(path string) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y).Clamp(0, 1)
			out.Set(x, y, color.RGBA{
				R: uint8(c.X*255 + 0.5),
				G: uint8(c.Y*255 + 0.5),
				B: uint8(c.Z*255 + 0.5),
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
