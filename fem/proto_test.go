package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestQuad4ShapePartitionOfUnity(t *testing.T) {
	var q Quad4Membrane

	points := [][]float64{
		{0, 0}, {-1, -1}, {1, 1}, {0.3, -0.7}, {-0.5, 0.25},
	}
	for _, ref := range points {
		n := q.Shape(ref)
		sum := 0.0
		for i := 0; i < n.Len(); i++ {
			sum += n.AtVec(i)
		}
		assert.InDelta(t, 1.0, sum, 1e-12, "shape functions must sum to 1 at (%g,%g)", ref[0], ref[1])
	}
}

func TestQuad4ShapeAtCorners(t *testing.T) {
	var q Quad4Membrane

	// N_i is 1 at corner i and 0 at the others
	for i, c := range quadCorners {
		n := q.Shape(c[:])
		for j := 0; j < 4; j++ {
			expected := 0.0
			if i == j {
				expected = 1.0
			}
			assert.InDelta(t, expected, n.AtVec(j), 1e-12)
		}
	}
}

func TestQuad4DerivSumZero(t *testing.T) {
	var q Quad4Membrane

	d := q.ShapeDeriv([]float64{0.4, -0.6})
	for axis := 0; axis < 2; axis++ {
		sum := 0.0
		for i := 0; i < 4; i++ {
			sum += d.At(i, axis)
		}
		assert.InDelta(t, 0.0, sum, 1e-12)
	}
}

func TestHex8ShapePartitionOfUnity(t *testing.T) {
	var h Hex8Membrane

	n := h.Shape([]float64{0.1, -0.2, 0.8})
	sum := 0.0
	for i := 0; i < n.Len(); i++ {
		sum += n.AtVec(i)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
}

func TestJacobianAxisAlignedQuad(t *testing.T) {
	var q Quad4Membrane

	// A 5x10 axis-aligned rectangle: J must be diag(2.5, 5)
	corners := mat.NewDense(4, 2, []float64{
		0, 0,
		5, 0,
		5, 10,
		0, 10,
	})
	j := Jacobian(q, corners, []float64{0, 0})

	require.Equal(t, 2, j.RawMatrix().Rows)
	assert.InDelta(t, 2.5, j.At(0, 0), 1e-12)
	assert.InDelta(t, 0.0, j.At(0, 1), 1e-12)
	assert.InDelta(t, 0.0, j.At(1, 0), 1e-12)
	assert.InDelta(t, 5.0, j.At(1, 1), 1e-12)
}
