// Package partitions decomposes a generated mesh into balanced groups
// of elements for downstream parallel work such as stiffness assembly.
// Partitions are described purely in element global numbers, so the
// package needs only element counts and optional element-to-element
// connectivity, not the mesh container itself.
package partitions

import (
	"fmt"
	"math"
)

// Partition is one group of elements that is processed together
type Partition struct {
	// Unique identifier for this partition
	ID int

	// Global element numbers assigned to this partition
	Elements []int

	// Number of elements, equal to len(Elements)
	NumElements int
}

// Layout is the complete decomposition of a mesh
type Layout struct {
	Partitions []Partition

	// Global sizing information
	KpartMax      int // max(NumElements) across all partitions
	TotalElements int // Sum of all elements across partitions
	NumPartitions int

	// Element to partition mapping
	EToP []int // Length TotalElements: element k belongs to partition EToP[k]
}

// GetPartition returns the partition containing element k, or -1
func (l *Layout) GetPartition(elementID int) int {
	if elementID < 0 || elementID >= len(l.EToP) {
		return -1
	}
	return l.EToP[elementID]
}

// Validate checks that the layout covers every element exactly once and
// that the cached sizing fields are consistent
func (l *Layout) Validate() error {
	if len(l.EToP) != l.TotalElements {
		return fmt.Errorf("EToP length %d != TotalElements %d", len(l.EToP), l.TotalElements)
	}
	seen := make([]int, l.TotalElements)
	actualMax := 0
	total := 0
	for _, p := range l.Partitions {
		if p.NumElements != len(p.Elements) {
			return fmt.Errorf("partition %d: NumElements %d != len(Elements) %d",
				p.ID, p.NumElements, len(p.Elements))
		}
		if p.NumElements > actualMax {
			actualMax = p.NumElements
		}
		total += p.NumElements
		for _, e := range p.Elements {
			if e < 0 || e >= l.TotalElements {
				return fmt.Errorf("partition %d: element %d out of range", p.ID, e)
			}
			seen[e]++
			if l.EToP[e] != p.ID {
				return fmt.Errorf("element %d: EToP says %d, found in partition %d",
					e, l.EToP[e], p.ID)
			}
		}
	}
	if total != l.TotalElements {
		return fmt.Errorf("partitions hold %d elements, mesh has %d", total, l.TotalElements)
	}
	for e, n := range seen {
		if n != 1 {
			return fmt.Errorf("element %d appears in %d partitions", e, n)
		}
	}
	if actualMax != l.KpartMax {
		return fmt.Errorf("computed KpartMax %d != stored KpartMax %d", actualMax, l.KpartMax)
	}
	return nil
}

// Stats holds load balance metrics for a layout
type Stats struct {
	NumPartitions int
	MinElements   int
	MaxElements   int
	AvgElements   float64
	Imbalance     float64 // MaxElements / AvgElements
}

// Statistics computes load balance metrics
func (l *Layout) Statistics() Stats {
	s := Stats{
		NumPartitions: l.NumPartitions,
		MinElements:   math.MaxInt32,
		AvgElements:   float64(l.TotalElements) / float64(l.NumPartitions),
	}
	for _, p := range l.Partitions {
		if p.NumElements < s.MinElements {
			s.MinElements = p.NumElements
		}
		if p.NumElements > s.MaxElements {
			s.MaxElements = p.NumElements
		}
	}
	s.Imbalance = float64(s.MaxElements) / s.AvgElements
	return s
}

// EdgeCut counts element faces whose two sides land in different
// partitions, given element-to-element connectivity where a boundary
// face connects an element to itself. Each cut face is counted once.
func (l *Layout) EdgeCut(eToE [][]int) (int, error) {
	if len(eToE) != l.TotalElements {
		return 0, fmt.Errorf("connectivity has %d elements, layout has %d",
			len(eToE), l.TotalElements)
	}
	cut := 0
	for k, faces := range eToE {
		for _, nbr := range faces {
			if nbr == k {
				continue // boundary
			}
			if nbr > k && l.EToP[k] != l.EToP[nbr] {
				cut++
			}
		}
	}
	return cut, nil
}
