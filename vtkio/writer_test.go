package vtkio

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allywarner/imagefem/fem"
	"github.com/allywarner/imagefem/mesher"
	"github.com/allywarner/imagefem/raster"
)

func generateTestMesh(t *testing.T) *fem.Object {
	t.Helper()
	gen := mesher.NewRectilinear(5, 5)
	obj, err := gen.Generate(raster.NewDescriptor(20, 20),
		&fem.LinearElasticity{YoungsModulus: 3000}, fem.Quad4Membrane{})
	require.NoError(t, err)
	return obj
}

func TestWriteQuadMesh(t *testing.T) {
	obj := generateTestMesh(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, obj))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# vtk DataFile Version 3.0\n"))
	assert.Contains(t, out, "DATASET UNSTRUCTURED_GRID")
	assert.Contains(t, out, fmt.Sprintf("POINTS %d double", obj.NumNodes()))
	// 16 quads, 5 ints per cell line
	assert.Contains(t, out, "CELLS 16 80")
	assert.Contains(t, out, "CELL_TYPES 16")
	// First cell: arity then the winding of cell (0,0)
	assert.Contains(t, out, "\n4 0 1 6 5\n")
	assert.Contains(t, out, "SCALARS material int 1")

	// One cell type line per quad
	assert.Equal(t, 16, countLines(out, "9"))
}

// countLines counts lines consisting exactly of s
func countLines(out, s string) int {
	n := 0
	for _, line := range strings.Split(out, "\n") {
		if line == s {
			n++
		}
	}
	return n
}

func TestWritePadsTo3D(t *testing.T) {
	obj := generateTestMesh(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, obj))

	// 2D meshes get a zero z coordinate
	assert.Contains(t, buf.String(), "\n0 0 0\n")
	assert.Contains(t, buf.String(), "\n5 0 0\n")
}

func TestWriteHexMesh(t *testing.T) {
	gen := mesher.NewRectilinear(4, 4, 4)
	obj, err := gen.Generate(raster.NewDescriptor(12, 12, 12),
		&fem.LinearElasticity{}, fem.Hex8Membrane{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, obj))
	out := buf.String()

	assert.Contains(t, out, "POINTS 64 double")
	assert.Contains(t, out, "CELLS 27 243") // 27 hexes, 9 ints each
	assert.Equal(t, 27, countLines(out, "12"))
}

func TestWriteRejectsInconsistentMesh(t *testing.T) {
	obj := fem.NewObject(2)
	obj.AddNode([]float64{0, 0})
	obj.AddProto(fem.Quad4Membrane{})
	obj.AddElement(fem.Element{Nodes: []int{0, 1, 2, 3}, Material: 0, Proto: 0})

	var buf bytes.Buffer
	assert.Error(t, Write(&buf, obj))
}
