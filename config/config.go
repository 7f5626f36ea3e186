// Package config provides configuration loading for the imagefem CLI.
// Runs are described in YAML: image geometry, mesh spacing, material
// constants, and optional partitioning and output settings.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/allywarner/imagefem/fem"
	"github.com/allywarner/imagefem/raster"
)

// Config describes one mesh generation run
type Config struct {
	Image struct {
		// Size is the per-axis pixel extent; its length fixes the mesh dimension
		Size []int `yaml:"size"`

		// Spacing is the physical pixel size per axis; defaults to 1
		Spacing []float64 `yaml:"spacing"`

		// Origin is the physical coordinate of pixel (0,...,0); defaults to 0
		Origin []float64 `yaml:"origin"`
	} `yaml:"image"`

	Mesh struct {
		// PixelsPerElement maps that many pixels to one element edge per axis
		PixelsPerElement []int `yaml:"pixelsPerElement"`
	} `yaml:"mesh"`

	Material struct {
		YoungsModulus      float64 `yaml:"youngsModulus"`
		PoissonsRatio      float64 `yaml:"poissonsRatio"`
		CrossSectionalArea float64 `yaml:"crossSectionalArea"`
		MomentOfInertia    float64 `yaml:"momentOfInertia"`
		Thickness          float64 `yaml:"thickness"`
	} `yaml:"material"`

	Partitions struct {
		// TargetSize is the desired elements per partition; 0 disables partitioning
		TargetSize int `yaml:"targetSize"`
	} `yaml:"partitions"`

	Output struct {
		// VTKFile is where the generated mesh is written; empty skips the write
		VTKFile string `yaml:"vtkFile"`

		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Material.YoungsModulus = 3000.0
	cfg.Material.CrossSectionalArea = 0.02
	cfg.Material.MomentOfInertia = 0.004
	cfg.Output.Verbose = true
	return cfg
}

// LoadConfig loads configuration from a YAML file, applying defaults for
// omitted fields. A missing file returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes the configuration to a YAML file
func SaveConfig(cfg *Config, configPath string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// Descriptor builds the raster descriptor the config describes,
// defaulting spacing to 1 and origin to 0 where unset
func (c *Config) Descriptor() (raster.Descriptor, error) {
	d := raster.NewDescriptor(c.Image.Size...)
	if len(c.Image.Spacing) > 0 {
		d.Spacing = c.Image.Spacing
	}
	if len(c.Image.Origin) > 0 {
		d.Origin = c.Image.Origin
	}
	if err := d.Validate(); err != nil {
		return raster.Descriptor{}, fmt.Errorf("image geometry: %w", err)
	}
	return d, nil
}

// LinearElasticity builds the material record the config describes
func (c *Config) LinearElasticity() *fem.LinearElasticity {
	return &fem.LinearElasticity{
		YoungsModulus:      c.Material.YoungsModulus,
		PoissonsRatio:      c.Material.PoissonsRatio,
		CrossSectionalArea: c.Material.CrossSectionalArea,
		MomentOfInertia:    c.Material.MomentOfInertia,
		Thickness:          c.Material.Thickness,
	}
}
