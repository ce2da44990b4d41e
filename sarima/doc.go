// Package sarima builds the structural matrices of SARIMA models in the Harvey state-space
// representation.
//
// A SARIMA(p,d,q)(P,D,Q)[m] model is written as a linear Gaussian state-space model whose
// state carries the raw data, its differences and seasonal lags explicitly. The transition
// matrix then separates into a differencing block, which recovers the level from the
// stationary state, and a companion block, which rolls the ARMA dynamics forward.
//
// # Basic Usage
//
// Build the representation of the airline model:
//
//	order := sarima.NewOrder(0, 1, 1, 0, 1, 1, 12)
//	h, err := sarima.NewHarvey(order)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(h.Names)              // data, D1.data, L1D1.data, ..., data_star, state_star_1, ...
//	fmt.Println(mat.Formatted(h.T))   // transition matrix
//
// The building blocks are also available as plain functions of an Order:
//
//	names := sarima.StateNames(order)
//	T := sarima.TransitionMatrix(order)
//	Z := sarima.DesignVector(order)
//
// # State Sizes
//
// Every dimension derives from Order.Sizes:
//   - KLags = max(p + P*m, q + Q*m + 1), the ARMA dynamics block
//   - NDiffs = m*D + d, the differencing block
//   - KStates = KLags + NDiffs
//
// # Preconditions
//
// StateNames, TransitionMatrix and DesignVector do not validate their input. Orders must be
// non-negative and seasonal differencing needs m >= 1; use Order.Validate or NewHarvey to
// check this.
package sarima
