package statespace

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ErrUnrecognizedMatrix is returned by Conform when neither operand carries a state-space matrix name.
var ErrUnrecognizedMatrix = errors.New("statespace: neither operand is a recognized state-space matrix")

// Matrix is a named state-space matrix, optionally carrying a leading time axis.
//
// Steps holds one slice per time step: exactly one for a time-invariant matrix, one or more
// when TimeVarying is set. Vector-valued matrices store each step as a column vector.
type Matrix struct {
	Name        string
	Steps       []*mat.Dense
	TimeVarying bool
}

// NewMatrix returns a time-invariant named matrix.
func NewMatrix(name string, m *mat.Dense) Matrix {
	return Matrix{Name: name, Steps: []*mat.Dense{m}}
}

// NewTimeVaryingMatrix returns a named matrix with one slice per time step.
func NewTimeVaryingMatrix(name string, steps ...*mat.Dense) Matrix {
	return Matrix{Name: name, Steps: steps, TimeVarying: true}
}

// TimeLen returns the length of the time axis, or 0 for a time-invariant matrix.
func (m Matrix) TimeLen() int {
	if !m.TimeVarying {
		return 0
	}
	return len(m.Steps)
}

// Ndim returns the number of axes: one for a vector, two for a matrix, plus the time axis.
func (m Matrix) Ndim() int {
	return m.ndimAs(m.Name)
}

// ndimAs counts the axes of m as if it were the matrix called name.
func (m Matrix) ndimAs(name string) int {
	ndim := 2
	if IsVectorValued(name) {
		ndim = 1
	}
	if m.TimeVarying {
		ndim++
	}
	return ndim
}

// repeat returns m with its single time step copied n times.
func (m Matrix) repeat(n int) Matrix {
	steps := make([]*mat.Dense, n)
	for i := range steps {
		steps[i] = mat.DenseCopyOf(m.Steps[0])
	}
	return Matrix{Name: m.Name, Steps: steps, TimeVarying: true}
}

// Conform adjusts a or b to match the other along the time axis.
//
// When a model is assembled from components, one component may have time-varying matrices
// while another does not, and the pair cannot be concatenated until both share a time axis.
// If both operands carry a time axis and exactly one has length 1, that one is repeated to the
// length of the other. Every other combination is returned unchanged.
//
// At least one operand must carry a recognized matrix name, which fixes the expected number of
// axes for both operands; otherwise ErrUnrecognizedMatrix is returned. An unnamed operand is
// measured as if it carried that name.
func Conform(a, b Matrix) (Matrix, Matrix, error) {
	var name string
	switch {
	case IsMatrixName(a.Name):
		name = a.Name
	case IsMatrixName(b.Name):
		name = b.Name
	default:
		return a, b, fmt.Errorf("conform %q and %q: %w", a.Name, b.Name, ErrUnrecognizedMatrix)
	}

	timeVaryingNdim := 3
	if IsVectorValued(name) {
		timeVaryingNdim = 2
	}
	if a.ndimAs(name) != timeVaryingNdim || b.ndimAs(name) != timeVaryingNdim {
		return a, b, nil
	}

	ta, tb := a.TimeLen(), b.TimeLen()
	switch {
	case ta == tb:
		return a, b, nil
	case ta == 1:
		return a.repeat(tb), b, nil
	case tb == 1:
		return a, b.repeat(ta), nil
	}
	return a, b, nil
}
