package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/blur"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// bloomScale maps the unbounded "excess brightness above 1.0" value bloom
// operates on into the 8-bit range bild's Gaussian blur expects. Bloom
// highlights are rarely more than a few multiples of the sensor's clip
// point, so this loses little visible precision while letting the pipeline
// reuse an off-the-shelf blur instead of a hand-rolled convolution.
const bloomScale = 32.0

// Pipeline is the post-processing chain a rendered stack goes through
// before it is saved: bloom, then gamma correction.
type Pipeline struct{}

// Bloom adds a soft glow around overbright pixels: anything above
// luminance 1.0 is extracted, blurred depth times with a Gaussian kernel of
// the given half-width, and added back on top of the rest of the image
// (itself attenuated so it never exceeds 1.0 before the bloom is added).
func (Pipeline) Bloom(img Image, halfSize, depth int) Image {
	if depth == 0 {
		return img
	}

	dimmed := img.Map(dimAboveWhite)
	blurred8 := vec3ImageToNRGBA(dimmed, bloomScale)
	for i := 0; i < depth; i++ {
		blurred8 = blur.Gaussian(blurred8, float64(halfSize))
	}
	blurredGlow := nrgbaToVec3Image(blurred8, bloomScale)

	result := NewImage(img.Width, img.Height)
	for i, p := range img.Pixels {
		result.Pixels[i] = attenuateToWhite(p).Add(blurredGlow.Pixels[i])
	}
	return result
}

// GammaCorrect applies a power-law gamma curve via bild's 8-bit adjust
// pipeline, matching the precision already accepted by Bloom's blur pass.
func (Pipeline) GammaCorrect(img Image, gamma float64) Image {
	srgb8 := vec3ImageToNRGBA(img.Map(func(c core.Vec3) core.Vec3 { return c.Clamp(0, 1) }), 255.0)
	corrected := adjust.Gamma(srgb8, gamma)
	return nrgbaToVec3Image(corrected, 255.0)
}

func dimAboveWhite(c core.Vec3) core.Vec3 {
	l := c.Luminance()
	if l > 1.0 {
		return c.Multiply((l - 1.0) / l)
	}
	return core.Black
}

func attenuateToWhite(c core.Vec3) core.Vec3 {
	l := c.Luminance()
	if l > 1.0 {
		return c.Multiply(1.0 / l)
	}
	return c
}

func vec3ImageToNRGBA(img Image, scale float64) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			out.SetNRGBA(x, y, color.NRGBA{
				R: toByte(c.X * scale),
				G: toByte(c.Y * scale),
				B: toByte(c.Z * scale),
				A: 255,
			})
		}
	}
	return out
}

func nrgbaToVec3Image(img *image.NRGBA, scale float64) Image {
	bounds := img.Bounds()
	result := NewImage(bounds.Dx(), bounds.Dy())
	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			c := img.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			result.Set(x, y, core.NewVec3(
				float64(c.R)/scale,
				float64(c.G)/scale,
				float64(c.B)/scale,
			))
		}
	}
	return result
}

// toByte clamps and rounds a value already expressed in the 0-255 byte
// range (the caller is responsible for scaling into that range first).
func toByte(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, v+0.5)))
}
