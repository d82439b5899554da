package imaging

import (
	"os"
	"testing"

	"github.com/df07/go-progressive-raytracer/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestImage_AddSumsPixelwise(t *testing.T) {
	a := NewImage(2, 1)
	a.Set(0, 0, core.NewVec3(0.1, 0.2, 0.3))
	b := NewImage(2, 1)
	b.Set(0, 0, core.NewVec3(0.4, 0.1, 0.0))

	sum := a.Add(b)
	assert.InDelta(t, 0.5, sum.At(0, 0).X, 1e-9)
	assert.InDelta(t, 0.3, sum.At(0, 0).Y, 1e-9)
}

func TestImage_ScaleAverages(t *testing.T) {
	img := NewImage(1, 1)
	img.Set(0, 0, core.NewVec3(4, 2, 0))
	scaled := img.Scale(0.5)
	assert.Equal(t, core.NewVec3(2, 1, 0), scaled.At(0, 0))
}

func TestPipeline_BloomLeavesDarkImageUnchanged(t *testing.T) {
	img := NewImage(4, 4)
	for i := range img.Pixels {
		img.Pixels[i] = core.NewVec3(0.2, 0.2, 0.2)
	}
	p := Pipeline{}
	bloomed := p.Bloom(img, 2, 2)
	for _, c := range bloomed.Pixels {
		assert.InDelta(t, 0.2, c.X, 0.02)
	}
}

func TestPipeline_BloomDepthZeroIsIdentity(t *testing.T) {
	img := NewImage(2, 2)
	img.Pixels[0] = core.NewVec3(3, 3, 3)
	p := Pipeline{}
	result := p.Bloom(img, 2, 0)
	assert.Equal(t, img.Pixels[0], result.Pixels[0])
}

func TestPipeline_GammaCorrectBrightensMidtones(t *testing.T) {
	img := NewImage(1, 1)
	img.Set(0, 0, core.NewVec3(0.5, 0.5, 0.5))
	p := Pipeline{}
	corrected := p.GammaCorrect(img, 2.0)
	assert.Greater(t, corrected.At(0, 0).X, 0.5)
}

func TestImage_SaveWritesPNGFile(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, core.White)
	path := t.TempDir() + "/out.png"
	err := img.Save(path)
	assert.NoError(t, err)
	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
