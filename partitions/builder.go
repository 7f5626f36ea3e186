package partitions

import (
	"fmt"
	"math"
)

// Strategy defines how elements are assigned to partitions
type Strategy int

const (
	Block      Strategy = iota // Consecutive element numbers
	RoundRobin                 // Distribute cyclically
)

// Builder constructs a Layout from a mesh's element count. For
// rectilinear meshes numbered with the first axis fastest, Block keeps
// grid-adjacent elements together and gives the smaller edge cut.
type Builder struct {
	TargetPartitionSize int      // Desired elements per partition
	Strategy            Strategy // Element assignment policy
}

// Build partitions numElements elements into
// ceil(numElements/TargetPartitionSize) groups
func (b *Builder) Build(numElements int) (*Layout, error) {
	if numElements < 1 {
		return nil, fmt.Errorf("cannot partition %d elements", numElements)
	}
	if b.TargetPartitionSize < 1 {
		return nil, fmt.Errorf("target partition size %d, must be >= 1", b.TargetPartitionSize)
	}

	numPartitions := int(math.Ceil(float64(numElements) / float64(b.TargetPartitionSize)))
	eToP := b.assign(numElements, numPartitions)

	parts := make([]Partition, numPartitions)
	for i := range parts {
		parts[i] = Partition{ID: i}
	}
	for elem, p := range eToP {
		parts[p].Elements = append(parts[p].Elements, elem)
		parts[p].NumElements++
	}

	kpartMax := 0
	for _, p := range parts {
		if p.NumElements > kpartMax {
			kpartMax = p.NumElements
		}
	}

	layout := &Layout{
		Partitions:    parts,
		KpartMax:      kpartMax,
		TotalElements: numElements,
		NumPartitions: numPartitions,
		EToP:          eToP,
	}
	if err := layout.Validate(); err != nil {
		return nil, fmt.Errorf("invalid partition layout: %w", err)
	}
	return layout, nil
}

func (b *Builder) assign(numElements, numPartitions int) []int {
	eToP := make([]int, numElements)
	switch b.Strategy {
	case RoundRobin:
		for i := range eToP {
			eToP[i] = i % numPartitions
		}
	default: // Block
		perPartition := int(math.Ceil(float64(numElements) / float64(numPartitions)))
		for i := range eToP {
			eToP[i] = i / perPartition
			if eToP[i] >= numPartitions {
				eToP[i] = numPartitions - 1
			}
		}
	}
	return eToP
}
