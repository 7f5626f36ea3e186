package mesher

import "fmt"

// BuildEToE derives element-to-element connectivity for a rectilinear
// mesh directly from its per-axis element counts, with no geometric
// search. Faces are ordered (-x, +x, -y, +y[, -z, +z]); a boundary face
// connects an element to itself.
func BuildEToE(numberOfElements []int) ([][]int, error) {
	dims := len(numberOfElements)
	if dims != 2 && dims != 3 {
		return nil, fmt.Errorf("connectivity needs 2 or 3 axes, got %d", dims)
	}
	total := 1
	strides := make([]int, dims)
	for i, n := range numberOfElements {
		if n < 1 {
			return nil, fmt.Errorf("axis %d: element count %d, must be >= 1", i, n)
		}
		strides[i] = total
		total *= n
	}

	eToE := make([][]int, total)
	idx := make([]int, dims)
	for k := 0; k < total; k++ {
		// Decode k into grid indices, first axis fastest
		rem := k
		for i := 0; i < dims; i++ {
			idx[i] = rem % numberOfElements[i]
			rem /= numberOfElements[i]
		}

		faces := make([]int, 2*dims)
		for i := 0; i < dims; i++ {
			if idx[i] > 0 {
				faces[2*i] = k - strides[i]
			} else {
				faces[2*i] = k
			}
			if idx[i] < numberOfElements[i]-1 {
				faces[2*i+1] = k + strides[i]
			} else {
				faces[2*i+1] = k
			}
		}
		eToE[k] = faces
	}
	return eToE, nil
}
