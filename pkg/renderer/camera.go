package renderer

import (
	"math/rand"
	"runtime"
	"sync"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/df07/go-progressive-raytracer/pkg/imaging"
	"github.com/df07/go-progressive-raytracer/pkg/logx"
)

// Scene is anything the camera can trace a sample ray through. A single
// *rand.Rand is threaded through every sample so rendering can run without
// any locking: each worker goroutine owns its own generator.
type Scene interface {
	Trace(ray core.Ray, rng *rand.Rand) core.Vec3
}

// Camera combines a Lens, Sensor, and Exposure into something that can
// render a Scene into an Image.
type Camera struct {
	Lens            Lens
	Sensor          Sensor
	Exposure        Exposure
	SamplesPerPixel int
}

// NewCamera builds a camera from its three components and a sample count.
func NewCamera(lens Lens, sensor Sensor, exposure Exposure, samplesPerPixel int) Camera {
	return Camera{Lens: lens, Sensor: sensor, Exposure: exposure, SamplesPerPixel: samplesPerPixel}
}

// Shoot renders stackCount independent linear images in parallel, averages
// them, and runs the result through the bloom and gamma-correction stages
// of the post-processing pipeline. Rendering is stack-level parallel across
// goroutines and row-level parallel within each stack; no locks are held
// anywhere in the hot path because every goroutine works on its own row of
// its own stack with its own RNG.
func (c Camera) Shoot(scene Scene, stackCount, bloomDepth int) imaging.Image {
	stacks := make([]imaging.Image, stackCount)

	stackPool := pond.NewPool(stackCount)
	defer stackPool.StopAndWait()
	var wg sync.WaitGroup
	for i := 0; i < stackCount; i++ {
		i := i
		wg.Add(1)
		stackPool.Submit(func() {
			defer wg.Done()
			stacks[i] = c.shootLinear(scene, int64(i))
			logx.Log.Info("stack rendered", zap.Int("stack", i))
		})
	}
	wg.Wait()

	sum := imaging.NewImage(c.Sensor.Width, c.Sensor.Height)
	for _, stack := range stacks {
		sum = sum.Add(stack)
	}
	averaged := sum.Scale(1.0 / float64(stackCount))

	pipeline := imaging.Pipeline{}
	bloomed := pipeline.Bloom(averaged, 3, bloomDepth)
	return pipeline.GammaCorrect(bloomed, 2.2)
}

// shootLinear renders one full, unfiltered image: samplesPerPixel jittered
// rays per pixel, averaged with the sensor's gain.
func (c Camera) shootLinear(scene Scene, stackSeed int64) imaging.Image {
	img := imaging.NewImage(c.Sensor.Width, c.Sensor.Height)
	gain := c.Sensor.Gain / float64(c.SamplesPerPixel)

	rowPool := pond.NewPool(runtime.NumCPU())
	defer rowPool.StopAndWait()
	var wg sync.WaitGroup
	for y := 0; y < c.Sensor.Height; y++ {
		y := y
		wg.Add(1)
		rowPool.Submit(func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(stackSeed*int64(c.Sensor.Height) + int64(y)))
			for x := 0; x < c.Sensor.Width; x++ {
				img.Set(x, y, c.estimatePixel(scene, x, y, gain, rng))
			}
		})
	}
	wg.Wait()
	return img
}

func (c Camera) estimatePixel(scene Scene, x, y int, gain float64, rng *rand.Rand) core.Vec3 {
	color := core.Black
	for i := 0; i < c.SamplesPerPixel; i++ {
		ray := c.sampleRay(x, y, rng)
		color = color.Add(scene.Trace(ray, rng))
	}
	return color.Multiply(gain)
}

// sampleRay draws a ray for pixel (x, y): a point on the lens, a jittered
// point within the pixel projected onto the focal plane, and the
// line between them.
func (c Camera) sampleRay(x, y int, rng *rand.Rand) core.Ray {
	lensSample := c.Lens.Sample(rng)
	pixelSample := c.Sensor.Sample(x, y, rng)
	time := c.Exposure.Sample(rng)

	teleportedPixelSample := core.NewVec3(pixelSample.X, pixelSample.Y, -c.Lens.FocalLength)
	focalPlaneSample := teleportedPixelSample.Multiply(c.Lens.FocalPlaneRatio)
	direction := focalPlaneSample.Subtract(lensSample)
	return core.NewRay(lensSample, direction, time)
}
