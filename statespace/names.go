package statespace

import "slices"

// Dimension names used to label the axes of state-space quantities.
const (
	AllStateDim    = "state"
	AllStateAuxDim = "state_aux"
	ObsStateDim    = "observed_state"
	ObsStateAuxDim = "observed_state_aux"
	ShockDim       = "shock"
	ShockAuxDim    = "shock_aux"
)

// MatrixNames are the short names of the state-space matrices.
var MatrixNames = []string{"x0", "P0", "c", "d", "T", "Z", "R", "H", "Q"}

// LongMatrixNames are the long names of the state-space matrices, in the order of MatrixNames.
var LongMatrixNames = []string{
	"initial_state",
	"initial_state_cov",
	"state_intercept",
	"obs_intercept",
	"transition",
	"design",
	"selection",
	"obs_cov",
	"state_cov",
}

// VectorValued lists the matrices that are vectors: one axis fewer than the others.
var VectorValued = []string{"x0", "c", "d", "initial_state", "state_intercept", "obs_intercept"}

// IsMatrixName reports whether name is a recognized short or long state-space matrix name.
func IsMatrixName(name string) bool {
	return slices.Contains(MatrixNames, name) || slices.Contains(LongMatrixNames, name)
}

// IsVectorValued reports whether the named matrix is a vector.
func IsVectorValued(name string) bool {
	return slices.Contains(VectorValued, name)
}
