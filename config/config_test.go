package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 3000.0, cfg.Material.YoungsModulus)
	assert.Equal(t, 0.02, cfg.Material.CrossSectionalArea)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, 0, cfg.Partitions.TargetSize)
}

func TestLoadConfigFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := `
image:
  size: [20, 20]
  spacing: [0.5, 0.5]
mesh:
  pixelsPerElement: [5, 5]
material:
  youngsModulus: 210e9
partitions:
  targetSize: 4
output:
  vtkFile: mesh.vtk
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []int{20, 20}, cfg.Image.Size)
	assert.Equal(t, []int{5, 5}, cfg.Mesh.PixelsPerElement)
	assert.Equal(t, 210e9, cfg.Material.YoungsModulus)
	// Unset fields keep their defaults
	assert.Equal(t, 0.02, cfg.Material.CrossSectionalArea)
	assert.Equal(t, 4, cfg.Partitions.TargetSize)
	assert.Equal(t, "mesh.vtk", cfg.Output.VTKFile)

	d, err := cfg.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, 0.5}, d.Spacing)
	assert.Equal(t, []float64{0, 0}, d.Origin)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")

	cfg := DefaultConfig()
	cfg.Image.Size = []int{12, 12, 12}
	cfg.Mesh.PixelsPerElement = []int{4, 4, 4}
	require.NoError(t, SaveConfig(cfg, path))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Image.Size, got.Image.Size)
	assert.Equal(t, cfg.Mesh.PixelsPerElement, got.Mesh.PixelsPerElement)
}

func TestDescriptorRejectsBadGeometry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Image.Size = []int{20, 0}
	_, err := cfg.Descriptor()
	assert.Error(t, err)
}
