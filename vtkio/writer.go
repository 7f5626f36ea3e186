// Package vtkio serializes generated meshes as legacy-format VTK
// unstructured grid files so they can be inspected in ParaView or VisIt.
// Output only: nothing in the mesh contract depends on this format.
package vtkio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/allywarner/imagefem/fem"
)

// VTK legacy cell type codes
const (
	vtkQuad       = 9
	vtkHexahedron = 12
)

func cellType(g fem.GeometryType) (int, error) {
	switch g {
	case fem.Quad:
		return vtkQuad, nil
	case fem.Hex:
		return vtkHexahedron, nil
	default:
		return 0, fmt.Errorf("no VTK cell type for geometry %s", g)
	}
}

// Write emits obj as an ASCII legacy VTK unstructured grid. 2D node
// coordinates are padded with z=0; the element material index is
// attached as cell data.
func Write(w io.Writer, obj *fem.Object) error {
	if err := obj.Validate(); err != nil {
		return fmt.Errorf("refusing to write inconsistent mesh: %w", err)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# vtk DataFile Version 3.0")
	fmt.Fprintln(bw, "rectilinear FEM mesh")
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET UNSTRUCTURED_GRID")

	fmt.Fprintf(bw, "POINTS %d double\n", obj.NumNodes())
	for n := 0; n < obj.NumNodes(); n++ {
		nd, err := obj.Node(n)
		if err != nil {
			return err
		}
		xyz := [3]float64{}
		copy(xyz[:], nd.Coords)
		fmt.Fprintf(bw, "%g %g %g\n", xyz[0], xyz[1], xyz[2])
	}

	// CELLS lists each cell as its arity followed by its node numbers
	listSize := 0
	for k := 0; k < obj.NumElements(); k++ {
		e, err := obj.Element(k)
		if err != nil {
			return err
		}
		listSize += 1 + len(e.Nodes)
	}
	fmt.Fprintf(bw, "CELLS %d %d\n", obj.NumElements(), listSize)
	for k := 0; k < obj.NumElements(); k++ {
		e, _ := obj.Element(k)
		fmt.Fprintf(bw, "%d", len(e.Nodes))
		for _, gn := range e.Nodes {
			fmt.Fprintf(bw, " %d", gn)
		}
		fmt.Fprintln(bw)
	}

	fmt.Fprintf(bw, "CELL_TYPES %d\n", obj.NumElements())
	for k := 0; k < obj.NumElements(); k++ {
		e, _ := obj.Element(k)
		p, err := obj.Proto(e.Proto)
		if err != nil {
			return err
		}
		ct, err := cellType(p.GeometryType())
		if err != nil {
			return err
		}
		fmt.Fprintf(bw, "%d\n", ct)
	}

	if obj.NumElements() > 0 {
		fmt.Fprintf(bw, "CELL_DATA %d\n", obj.NumElements())
		fmt.Fprintln(bw, "SCALARS material int 1")
		fmt.Fprintln(bw, "LOOKUP_TABLE default")
		for k := 0; k < obj.NumElements(); k++ {
			e, _ := obj.Element(k)
			fmt.Fprintf(bw, "%d\n", e.Material)
		}
	}

	return bw.Flush()
}

// WriteFile writes obj to the named file
func WriteFile(path string, obj *fem.Object) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating VTK file: %w", err)
	}
	defer f.Close()

	if err := Write(f, obj); err != nil {
		return fmt.Errorf("error writing VTK file %s: %w", path, err)
	}
	return nil
}
