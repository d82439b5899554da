package renderer

import (
	"math/rand"

	"github.com/df07/go-progressive-raytracer/pkg/core"
)

// Sensor maps discrete pixel coordinates into the camera's normalized image
// plane (y in [-1, 1], x scaled by aspect ratio) and jitters a sample
// within each pixel's footprint.
type Sensor struct {
	Width, Height int
	Gain          float64

	aspect    float64
	pixelSize float64
}

// NewSensor builds a sensor of the given resolution and exposure gain.
func NewSensor(width, height int, gain float64) Sensor {
	return Sensor{
		Width:     width,
		Height:    height,
		Gain:      gain,
		aspect:    float64(width) / float64(height),
		pixelSize: 2.0 / float64(height),
	}
}

// pixelOrigin returns the image-plane point Sample jitters pixel (x, y) from:
// x*pixelSize - aspect, 1 - y*pixelSize. Sample adds a jitter in
// [0, pixelSize) to both coordinates, so this is the footprint's corner with
// the smallest x and y.
func (s Sensor) pixelOrigin(x, y int) (float64, float64) {
	px := float64(x)*s.pixelSize - s.aspect
	py := 1.0 - float64(y)*s.pixelSize
	return px, py
}

// Sample draws a jittered point within pixel (x, y)'s footprint on the
// image plane, z = 0.
func (s Sensor) Sample(x, y int, rng *rand.Rand) core.Vec3 {
	ox, oy := s.pixelOrigin(x, y)
	jitter := core.UniformSolidUnitSquare{}.Sample(rng)
	return jitter.Multiply(s.pixelSize).Add(core.NewVec3(ox, oy, 0))
}
