package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescriptorValidate(t *testing.T) {
	d := NewDescriptor(20, 20)
	assert.NoError(t, d.Validate())
	assert.Equal(t, 2, d.Dims())

	bad := NewDescriptor(20, 0)
	assert.Error(t, bad.Validate())

	neg := NewDescriptor(10, 10)
	neg.Spacing[1] = -0.5
	assert.Error(t, neg.Validate())

	mismatch := Descriptor{Size: []int{4, 4}, Spacing: []float64{1}, Origin: []float64{0, 0}}
	assert.Error(t, mismatch.Validate())
}

func TestDescriptorPhysicalPoint(t *testing.T) {
	d := NewDescriptor(20, 20)
	d.Spacing = []float64{0.5, 2.0}
	d.Origin = []float64{10.0, -1.0}

	pt := d.PhysicalPoint([]int{4, 3})
	assert.InDelta(t, 12.0, pt[0], 1e-12)
	assert.InDelta(t, 5.0, pt[1], 1e-12)
}

func TestFromImage(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 22, 20))
	d := FromImage(img)
	assert.Equal(t, []int{22, 20}, d.Size)
	assert.NoError(t, d.Validate())
}
