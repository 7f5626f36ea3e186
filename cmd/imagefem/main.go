package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/allywarner/imagefem/config"
	"github.com/allywarner/imagefem/fem"
	"github.com/allywarner/imagefem/mesher"
	"github.com/allywarner/imagefem/partitions"
	"github.com/allywarner/imagefem/vtkio"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "imagefem.yaml", "YAML run configuration")
	vtkFile := flag.String("output", "", "Output VTK filename (overrides config)")
	targetSize := flag.Int("partition-size", 0, "Elements per partition (overrides config, 0 disables)")
	writeDefault := flag.Bool("write-default-config", false, "Write a default config to -config and exit")
	flag.Parse()

	if *writeDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			log.Fatalf("Failed to write default config: %v", err)
		}
		fmt.Printf("Default configuration written to %s\n", *configPath)
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *vtkFile != "" {
		cfg.Output.VTKFile = *vtkFile
	}
	if *targetSize > 0 {
		cfg.Partitions.TargetSize = *targetSize
	}
	if len(cfg.Image.Size) == 0 || len(cfg.Mesh.PixelsPerElement) == 0 {
		fmt.Fprintln(os.Stderr, "config must set image.size and mesh.pixelsPerElement")
		flag.Usage()
		os.Exit(1)
	}

	desc, err := cfg.Descriptor()
	if err != nil {
		log.Fatalf("Bad image geometry: %v", err)
	}

	var proto fem.Proto
	switch desc.Dims() {
	case 2:
		proto = fem.Quad4Membrane{}
	case 3:
		proto = fem.Hex8Membrane{}
	default:
		log.Fatalf("Unsupported image dimension %d", desc.Dims())
	}

	gen := mesher.NewRectilinear(cfg.Mesh.PixelsPerElement...)
	obj, err := gen.Generate(desc, cfg.LinearElasticity(), proto)
	if err != nil {
		log.Fatalf("Mesh generation failed: %v", err)
	}

	if cfg.Output.Verbose {
		fmt.Printf("Image: size %v, spacing %v, origin %v\n", desc.Size, desc.Spacing, desc.Origin)
		fmt.Printf("Elements per axis: %v (pixels per element %v)\n",
			gen.NumberOfElements(), gen.PixelsPerElement())
	}
	fmt.Println(obj)

	if cfg.Partitions.TargetSize > 0 {
		builder := &partitions.Builder{
			TargetPartitionSize: cfg.Partitions.TargetSize,
			Strategy:            partitions.Block,
		}
		layout, err := builder.Build(obj.NumElements())
		if err != nil {
			log.Fatalf("Partitioning failed: %v", err)
		}
		stats := layout.Statistics()
		fmt.Printf("Partitions: %d (min %d, max %d elements, imbalance %.3f)\n",
			stats.NumPartitions, stats.MinElements, stats.MaxElements, stats.Imbalance)

		eToE, err := mesher.BuildEToE(gen.NumberOfElements())
		if err != nil {
			log.Fatalf("Connectivity failed: %v", err)
		}
		cut, err := layout.EdgeCut(eToE)
		if err != nil {
			log.Fatalf("Edge cut failed: %v", err)
		}
		fmt.Printf("Inter-partition faces: %d\n", cut)
	}

	if cfg.Output.VTKFile != "" {
		if err := vtkio.WriteFile(cfg.Output.VTKFile, obj); err != nil {
			log.Fatalf("VTK export failed: %v", err)
		}
		fmt.Printf("Mesh written to %s\n", cfg.Output.VTKFile)
	}
}
