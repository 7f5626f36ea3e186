package raster

import (
	"fmt"
	"image"
)

// Descriptor carries the geometric metadata of a raster image: per-axis
// pixel extent plus the spacing and origin that map pixel indices into
// physical space. It is a read-only input to mesh generation; pixel data
// and decoding stay with the image reader that produced it.
type Descriptor struct {
	Size    []int     // Pixel extent along each axis, length D
	Spacing []float64 // Physical size of one pixel along each axis
	Origin  []float64 // Physical coordinate of pixel index (0,...,0)
}

// NewDescriptor builds a descriptor with unit spacing and zero origin
func NewDescriptor(size ...int) Descriptor {
	d := Descriptor{
		Size:    size,
		Spacing: make([]float64, len(size)),
		Origin:  make([]float64, len(size)),
	}
	for i := range d.Spacing {
		d.Spacing[i] = 1.0
	}
	return d
}

// FromImage derives a 2D descriptor from an already-decoded image.
// Spacing defaults to 1 and origin to 0; callers with calibrated data
// overwrite both.
func FromImage(img image.Image) Descriptor {
	b := img.Bounds()
	return NewDescriptor(b.Dx(), b.Dy())
}

// Dims returns the number of spatial axes
func (d Descriptor) Dims() int {
	return len(d.Size)
}

// Validate checks the descriptor is internally consistent: matching
// slice lengths, every extent at least one pixel, every spacing positive
func (d Descriptor) Validate() error {
	if len(d.Size) == 0 {
		return fmt.Errorf("descriptor has no axes")
	}
	if len(d.Spacing) != len(d.Size) || len(d.Origin) != len(d.Size) {
		return fmt.Errorf("descriptor axis mismatch: size has %d, spacing %d, origin %d",
			len(d.Size), len(d.Spacing), len(d.Origin))
	}
	for i, n := range d.Size {
		if n < 1 {
			return fmt.Errorf("axis %d: size %d, must be >= 1", i, n)
		}
		if d.Spacing[i] <= 0 {
			return fmt.Errorf("axis %d: spacing %g, must be > 0", i, d.Spacing[i])
		}
	}
	return nil
}

// PhysicalPoint maps a pixel index to physical space:
// origin[i] + spacing[i]*index[i]
func (d Descriptor) PhysicalPoint(index []int) []float64 {
	pt := make([]float64, len(d.Size))
	for i := range pt {
		pt[i] = d.Origin[i] + d.Spacing[i]*float64(index[i])
	}
	return pt
}
