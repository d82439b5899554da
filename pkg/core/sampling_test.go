package core

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniformSolidUnitDisc_MeanRadiusAndContainment(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	disc := UniformSolidUnitDisc{}
	const n = 100000
	var sumRadius float64
	for i := 0; i < n; i++ {
		v := disc.Sample(rng)
		assert.True(t, disc.Contains(v))
		sumRadius += math.Sqrt(v.X*v.X + v.Y*v.Y)
	}
	meanRadius := sumRadius / n
	assert.InDelta(t, 2.0/3.0, meanRadius, 0.01)
}

func TestLambertian_SamplesAboveHemisphereWithMatchingPDF(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	normal := NewVec3(0.3, 0.8, -0.2).Unit()
	l := NewLambertian(normal)

	for i := 0; i < 1000; i++ {
		d, pdf := l.SampleAndPDF(rng)
		assert.InDelta(t, 1.0, d.Length(), 1e-9)
		cosTheta := d.Dot(normal)
		assert.GreaterOrEqual(t, cosTheta, -1e-9)
		assert.InDelta(t, math.Max(0, cosTheta)/math.Pi, pdf, 1e-9)
		assert.InDelta(t, pdf, l.PDF(d), 1e-9)
	}
}

func TestLambertian_Narrowness(t *testing.T) {
	l := NewLambertian(NewVec3(0, 0, 1))
	assert.Equal(t, 0.5, l.Narrowness())
}

func TestUniformUnitSphere_PDFIsConstant(t *testing.T) {
	s := UniformUnitSphere{}
	assert.InDelta(t, 1.0/(4.0*math.Pi), s.PDF(NewVec3(1, 0, 0)), 1e-12)
}
