package statespace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestConformRepeatsTimeInvariantOperand(t *testing.T) {
	invariant := mat.NewDense(2, 2, []float64{1, 2, 3, 4})
	steps := []*mat.Dense{
		mat.NewDense(2, 2, []float64{0, 1, 0, 0}),
		mat.NewDense(2, 2, []float64{0, 2, 0, 0}),
		mat.NewDense(2, 2, []float64{0, 3, 0, 0}),
	}

	a := NewTimeVaryingMatrix("T", invariant)
	b := NewTimeVaryingMatrix("T", steps...)

	gotA, gotB, err := Conform(a, b)
	require.NoError(t, err)

	assert.Equal(t, 3, gotA.TimeLen())
	assert.Equal(t, "T", gotA.Name)
	for i, step := range gotA.Steps {
		assert.True(t, mat.Equal(invariant, step), "step %d", i)
	}
	assert.Equal(t, b, gotB)

	// Steps are independent copies.
	gotA.Steps[0].Set(0, 0, 42)
	assert.Equal(t, 1.0, gotA.Steps[1].At(0, 0))
	assert.Equal(t, 1.0, invariant.At(0, 0))
}

func TestConformRepeatsSecondOperand(t *testing.T) {
	a := NewTimeVaryingMatrix("R", mat.NewDense(2, 1, nil), mat.NewDense(2, 1, nil))
	b := NewTimeVaryingMatrix("R", mat.NewDense(2, 1, []float64{1, 1}))

	gotA, gotB, err := Conform(a, b)
	require.NoError(t, err)

	assert.Equal(t, a, gotA)
	assert.Equal(t, 2, gotB.TimeLen())
}

func TestConformVectorValued(t *testing.T) {
	a := NewTimeVaryingMatrix("c", mat.NewDense(3, 1, []float64{1, 2, 3}))
	b := NewTimeVaryingMatrix("c", mat.NewDense(3, 1, nil), mat.NewDense(3, 1, nil), mat.NewDense(3, 1, nil), mat.NewDense(3, 1, nil))

	assert.Equal(t, 2, a.Ndim())

	gotA, _, err := Conform(a, b)
	require.NoError(t, err)
	assert.Equal(t, 4, gotA.TimeLen())
}

func TestConformUnnamedVectorOperand(t *testing.T) {
	a := NewTimeVaryingMatrix("", mat.NewDense(3, 1, []float64{1, 2, 3}))
	b := NewTimeVaryingMatrix("c", mat.NewDense(3, 1, nil), mat.NewDense(3, 1, nil), mat.NewDense(3, 1, nil))

	gotA, gotB, err := Conform(a, b)
	require.NoError(t, err)

	require.Equal(t, 3, gotA.TimeLen())
	for i, step := range gotA.Steps {
		assert.Equal(t, []float64{1, 2, 3}, step.RawMatrix().Data, "step %d", i)
	}
	assert.Equal(t, b, gotB)

	// Same pairing with the named operand first.
	gotB, gotA, err = Conform(b, a)
	require.NoError(t, err)
	assert.Equal(t, b, gotB)
	assert.Equal(t, 3, gotA.TimeLen())
}

func TestConformUnchanged(t *testing.T) {
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	tests := []struct {
		name string
		a, b Matrix
	}{
		{"both invariant", NewMatrix("T", eye), NewMatrix("T", eye)},
		{"only one has a time axis", NewMatrix("T", eye), NewTimeVaryingMatrix("T", eye, eye)},
		{"same time length", NewTimeVaryingMatrix("T", eye, eye), NewTimeVaryingMatrix("T", eye, eye)},
		{"lengths both above one", NewTimeVaryingMatrix("T", eye, eye), NewTimeVaryingMatrix("T", eye, eye, eye)},
		{"one unnamed operand", NewMatrix("", eye), NewTimeVaryingMatrix("Q", eye, eye)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotA, gotB, err := Conform(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.a, gotA)
			assert.Equal(t, tt.b, gotB)
		})
	}
}

func TestConformUnrecognizedMatrix(t *testing.T) {
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	_, _, err := Conform(NewMatrix("A", eye), NewMatrix("B", eye))
	require.ErrorIs(t, err, ErrUnrecognizedMatrix)
	assert.Contains(t, err.Error(), `"A"`)

	_, _, err = Conform(NewMatrix("", eye), NewMatrix("", eye))
	require.ErrorIs(t, err, ErrUnrecognizedMatrix)
}

func TestMatrixDims(t *testing.T) {
	eye := mat.NewDense(2, 2, []float64{1, 0, 0, 1})

	assert.Equal(t, 2, NewMatrix("T", eye).Ndim())
	assert.Equal(t, 0, NewMatrix("T", eye).TimeLen())
	assert.Equal(t, 3, NewTimeVaryingMatrix("transition", eye).Ndim())
	assert.Equal(t, 1, NewMatrix("x0", mat.NewDense(2, 1, nil)).Ndim())
}
