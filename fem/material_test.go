package fem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rigidBody struct{}

func (rigidBody) Kind() string { return "RigidBody" }

func TestAsLinearElasticity(t *testing.T) {
	m := &LinearElasticity{
		YoungsModulus:      3000.0,
		CrossSectionalArea: 0.02,
		MomentOfInertia:    0.004,
	}

	le, err := AsLinearElasticity(m)
	require.NoError(t, err)
	assert.Equal(t, 3000.0, le.YoungsModulus)
	assert.Equal(t, 0.02, le.CrossSectionalArea)
	assert.Equal(t, 0.004, le.MomentOfInertia)
}

func TestAsLinearElasticityMismatch(t *testing.T) {
	_, err := AsLinearElasticity(rigidBody{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
