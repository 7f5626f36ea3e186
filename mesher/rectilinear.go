// Package mesher generates rectilinear finite-element meshes from raster
// image geometry: the pixel grid is partitioned into a regular grid of
// quadrilateral (2D) or hexahedral (3D) elements with container-assigned
// global numbering.
//
// Numbering convention: nodes and elements are both traversed in
// row-major order with the FIRST axis varying fastest. For a mesh with
// nx elements along x, node (i,j) has global number i + (nx+1)*j and the
// element covering cell (i,j) has global number i + nx*j. The convention
// is load-bearing: element windings are expressed in these numbers.
package mesher

import (
	"errors"
	"fmt"

	"github.com/allywarner/imagefem/fem"
	"github.com/allywarner/imagefem/raster"
)

// ErrInvalidConfiguration is returned when the image geometry and the
// pixels-per-element spacing cannot produce a mesh with at least one
// element along every axis.
var ErrInvalidConfiguration = errors.New("invalid mesh configuration")

// Rectilinear generates rectilinear meshes. It holds only its
// configuration and the derived element counts of the last generation;
// every Generate call builds a fresh container, so one generator may be
// reused across images.
type Rectilinear struct {
	pixelsPerElement []int
	numberOfElements []int
}

// NewRectilinear creates a generator mapping pixelsPerElement[i] source
// pixels to one element edge along axis i.
func NewRectilinear(pixelsPerElement ...int) *Rectilinear {
	ppe := make([]int, len(pixelsPerElement))
	copy(ppe, pixelsPerElement)
	return &Rectilinear{pixelsPerElement: ppe}
}

// PixelsPerElement returns the configured per-axis spacing
func (r *Rectilinear) PixelsPerElement() []int {
	out := make([]int, len(r.pixelsPerElement))
	copy(out, r.pixelsPerElement)
	return out
}

// NumberOfElements returns the per-axis element counts derived by the
// most recent Generate call, or nil before the first one.
func (r *Rectilinear) NumberOfElements() []int {
	if r.numberOfElements == nil {
		return nil
	}
	out := make([]int, len(r.numberOfElements))
	copy(out, r.numberOfElements)
	return out
}

// Generate builds a mesh covering the image described by desc. The
// supplied material and element prototype are registered once in the
// output container and shared by every generated element. Trailing
// pixels that do not fill a whole element are excluded from the mesh.
func (r *Rectilinear) Generate(desc raster.Descriptor, m fem.Material, p fem.Proto) (*fem.Object, error) {
	if err := desc.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	dims := desc.Dims()
	if dims != 2 && dims != 3 {
		return nil, fmt.Errorf("%w: %dD images are not supported, want 2D or 3D", ErrInvalidConfiguration, dims)
	}
	if len(r.pixelsPerElement) != dims {
		return nil, fmt.Errorf("%w: pixels per element has %d axes, image has %d",
			ErrInvalidConfiguration, len(r.pixelsPerElement), dims)
	}
	if p.Dims() != dims {
		return nil, fmt.Errorf("%w: prototype %s is %dD, image is %dD",
			ErrInvalidConfiguration, p.ShortName(), p.Dims(), dims)
	}
	if want := 1 << dims; p.NumNodes() != want {
		return nil, fmt.Errorf("%w: prototype %s has %d nodes, rectilinear cells need %d",
			ErrInvalidConfiguration, p.ShortName(), p.NumNodes(), want)
	}

	nelem := make([]int, dims)
	for i := range nelem {
		if r.pixelsPerElement[i] < 1 {
			return nil, fmt.Errorf("%w: axis %d: pixels per element must be positive, got %d",
				ErrInvalidConfiguration, i, r.pixelsPerElement[i])
		}
		nelem[i] = desc.Size[i] / r.pixelsPerElement[i]
		if nelem[i] < 1 {
			return nil, fmt.Errorf("%w: axis %d: %d pixels cannot hold an element of %d pixels",
				ErrInvalidConfiguration, i, desc.Size[i], r.pixelsPerElement[i])
		}
	}
	r.numberOfElements = nelem

	obj := fem.NewObject(dims)
	matID := obj.AddMaterial(m)
	protoID := obj.AddProto(p)

	if dims == 2 {
		r.generate2D(obj, desc, nelem, matID, protoID)
	} else {
		r.generate3D(obj, desc, nelem, matID, protoID)
	}
	return obj, nil
}

func (r *Rectilinear) generate2D(obj *fem.Object, desc raster.Descriptor, nelem []int, matID, protoID int) {
	nx, ny := nelem[0], nelem[1]

	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			obj.AddNode(desc.PhysicalPoint([]int{
				i * r.pixelsPerElement[0],
				j * r.pixelsPerElement[1],
			}))
		}
	}

	// Counter-clockwise winding from the lower-left corner of each cell
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			n0 := i + (nx+1)*j
			obj.AddElement(fem.Element{
				Nodes:    []int{n0, n0 + 1, n0 + nx + 2, n0 + nx + 1},
				Material: matID,
				Proto:    protoID,
			})
		}
	}
}

func (r *Rectilinear) generate3D(obj *fem.Object, desc raster.Descriptor, nelem []int, matID, protoID int) {
	nx, ny, nz := nelem[0], nelem[1], nelem[2]

	for k := 0; k <= nz; k++ {
		for j := 0; j <= ny; j++ {
			for i := 0; i <= nx; i++ {
				obj.AddNode(desc.PhysicalPoint([]int{
					i * r.pixelsPerElement[0],
					j * r.pixelsPerElement[1],
					k * r.pixelsPerElement[2],
				}))
			}
		}
	}

	// Bottom face counter-clockwise, then the same circuit on the top face
	layer := (nx + 1) * (ny + 1)
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				n0 := i + (nx+1)*j + layer*k
				bottom := []int{n0, n0 + 1, n0 + nx + 2, n0 + nx + 1}
				nodes := make([]int, 0, 8)
				nodes = append(nodes, bottom...)
				for _, b := range bottom {
					nodes = append(nodes, b+layer)
				}
				obj.AddElement(fem.Element{
					Nodes:    nodes,
					Material: matID,
					Proto:    protoID,
				})
			}
		}
	}
}
