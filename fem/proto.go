package fem

import (
	"gonum.org/v1/gonum/mat"
)

// GeometryType identifies the shape of an element
type GeometryType uint8

const (
	Quad GeometryType = iota // 4-node quadrilateral
	Hex                      // 8-node hexahedron
)

func (g GeometryType) String() string {
	switch g {
	case Quad:
		return "Quad"
	case Hex:
		return "Hex"
	default:
		return "Unknown"
	}
}

// Proto is an element-type prototype: it defines the connectivity arity,
// the per-node degrees of freedom, and the shape-function behavior of a
// family of elements. One prototype instance is shared by reference
// across every element generated from it.
type Proto interface {
	Name() string
	ShortName() string
	GeometryType() GeometryType
	Dims() int
	NumNodes() int   // Corner nodes per element: 2^Dims for linear bricks
	DOFPerNode() int // Degrees of freedom at each node

	// Shape evaluates the corner shape functions at a point in the
	// reference element [-1,1]^Dims. Returned vector has length NumNodes.
	Shape(ref []float64) *mat.VecDense

	// ShapeDeriv evaluates the shape-function derivatives at a reference
	// point as a [NumNodes x Dims] matrix: row n holds dN_n/dxi_j.
	ShapeDeriv(ref []float64) *mat.Dense
}

// Reference corner coordinates. Ordering matches the element winding:
// counter-clockwise from the lower-left corner, then (in 3D) the same
// circuit on the top face.
var (
	quadCorners = [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	hexCorners  = [8][3]float64{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
)

// Quad4Membrane is a 2D C0 linear quadrilateral membrane element type:
// bilinear shape functions, two displacement degrees of freedom per node.
type Quad4Membrane struct{}

func (Quad4Membrane) Name() string               { return "C0 Linear Quadrilateral Membrane" }
func (Quad4Membrane) ShortName() string          { return "Quad4" }
func (Quad4Membrane) GeometryType() GeometryType { return Quad }
func (Quad4Membrane) Dims() int                  { return 2 }
func (Quad4Membrane) NumNodes() int              { return 4 }
func (Quad4Membrane) DOFPerNode() int            { return 2 }

func (Quad4Membrane) Shape(ref []float64) *mat.VecDense {
	n := mat.NewVecDense(4, nil)
	for i, c := range quadCorners {
		n.SetVec(i, 0.25*(1+c[0]*ref[0])*(1+c[1]*ref[1]))
	}
	return n
}

func (Quad4Membrane) ShapeDeriv(ref []float64) *mat.Dense {
	d := mat.NewDense(4, 2, nil)
	for i, c := range quadCorners {
		d.Set(i, 0, 0.25*c[0]*(1+c[1]*ref[1]))
		d.Set(i, 1, 0.25*c[1]*(1+c[0]*ref[0]))
	}
	return d
}

// Hex8Membrane is the 3D counterpart: a C0 linear hexahedron with
// trilinear shape functions and three degrees of freedom per node.
type Hex8Membrane struct{}

func (Hex8Membrane) Name() string               { return "C0 Linear Hexahedron Membrane" }
func (Hex8Membrane) ShortName() string          { return "Hex8" }
func (Hex8Membrane) GeometryType() GeometryType { return Hex }
func (Hex8Membrane) Dims() int                  { return 3 }
func (Hex8Membrane) NumNodes() int              { return 8 }
func (Hex8Membrane) DOFPerNode() int            { return 3 }

func (Hex8Membrane) Shape(ref []float64) *mat.VecDense {
	n := mat.NewVecDense(8, nil)
	for i, c := range hexCorners {
		n.SetVec(i, 0.125*(1+c[0]*ref[0])*(1+c[1]*ref[1])*(1+c[2]*ref[2]))
	}
	return n
}

func (Hex8Membrane) ShapeDeriv(ref []float64) *mat.Dense {
	d := mat.NewDense(8, 3, nil)
	for i, c := range hexCorners {
		d.Set(i, 0, 0.125*c[0]*(1+c[1]*ref[1])*(1+c[2]*ref[2]))
		d.Set(i, 1, 0.125*c[1]*(1+c[0]*ref[0])*(1+c[2]*ref[2]))
		d.Set(i, 2, 0.125*c[2]*(1+c[0]*ref[0])*(1+c[1]*ref[1]))
	}
	return d
}

// Jacobian computes the coordinate-transformation Jacobian dx/dxi of an
// element at a reference point. corners is [NumNodes x Dims] with row n
// holding the physical coordinate of corner n; the result is the
// [Dims x Dims] matrix J[a][b] = sum_n dN_n/dxi_a * x_n[b].
func Jacobian(p Proto, corners *mat.Dense, ref []float64) *mat.Dense {
	d := p.ShapeDeriv(ref)
	var j mat.Dense
	j.Mul(d.T(), corners)
	return &j
}
