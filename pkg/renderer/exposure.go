package renderer

import "math/rand"

// Exposure is the shutter duration in whatever time units the scene's
// motion (never realized by any shipped material) would be expressed in. A
// zero exposure means every sample is taken at time 0 (no motion blur).
type Exposure float64

// Sample draws a time within [-Exposure, 0] uniformly, or always 0 for a
// zero exposure.
func (e Exposure) Sample(rng *rand.Rand) float64 {
	if e == 0 {
		return 0
	}
	return -float64(e) * rng.Float64()
}
