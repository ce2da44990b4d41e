// Package statespace holds the bookkeeping shared by state-space model components: the
// registry of dimension and matrix names, default coordinates, time-axis conformance of
// component matrices and the lookup of exogenous dimensions in fitted results.
//
// # Coordinates
//
// Any model naming its states, observations and shocks gets labelled axes:
//
//	h, _ := sarima.NewHarvey(sarima.NewOrder(1, 1, 1, 0, 0, 0, 0))
//	coords := statespace.DefaultCoords(h)
//	coords[statespace.AllStateDim] // [data data_star state_star_1]
//
// # Conforming Matrices
//
// Before block-diagonalizing the matrices of two components, make their time axes agree:
//
//	a := statespace.NewTimeVaryingMatrix("T", T0)
//	b := statespace.NewTimeVaryingMatrix("T", T0, T1, T2)
//	a, b, err := statespace.Conform(a, b) // a now has three copies of T0
//
// Conform fails with ErrUnrecognizedMatrix when neither operand is named after a
// state-space matrix (see MatrixNames and LongMatrixNames).
package statespace
