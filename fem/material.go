package fem

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is returned when a typed material accessor is applied
// to a material of a different concrete kind.
var ErrTypeMismatch = errors.New("material type mismatch")

// Material is an opaque physical-property record attached to elements.
// The mesh generator stores and shares it without interpreting its
// fields; consumers that need concrete values go through a typed
// accessor such as AsLinearElasticity.
type Material interface {
	// Kind identifies the concrete material model, e.g. "LinearElasticity"
	Kind() string
}

// LinearElasticity holds the standard linear-elastic constants. Only the
// fields a given element formulation reads are meaningful; the rest ride
// along untouched.
type LinearElasticity struct {
	YoungsModulus      float64 // E
	PoissonsRatio      float64 // nu
	CrossSectionalArea float64 // A, used by 1D formulations
	MomentOfInertia    float64 // I, used by beam formulations
	Thickness          float64 // h, used by plane-stress formulations
}

func (*LinearElasticity) Kind() string { return "LinearElasticity" }

// AsLinearElasticity recovers the concrete elasticity record from an
// opaque material handle. It fails with ErrTypeMismatch rather than
// returning a nil pointer when the material is of another kind.
func AsLinearElasticity(m Material) (*LinearElasticity, error) {
	le, ok := m.(*LinearElasticity)
	if !ok {
		return nil, fmt.Errorf("%w: have %s, want LinearElasticity", ErrTypeMismatch, m.Kind())
	}
	return le, nil
}
