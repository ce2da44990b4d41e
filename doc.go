// Package gostatespace provides the structural building blocks of linear Gaussian
// state-space models for SARIMA time series.
//
// SARIMA dynamics are encoded in the Harvey representation, where the raw data, its
// differences and seasonal lags are carried as explicit states. This package family
// builds the state names and the transition matrix of that representation from the
// integer order (p, d, q) x (P, D, Q, s), together with the bookkeeping needed to combine
// it with other model components.
//
// # Quick Start
//
// Build the representation of a SARIMA(1,1,1)(0,1,1)[12] model:
//
//	order := sarima.NewOrder(1, 1, 1, 0, 1, 1, 12)
//	h, err := sarima.NewHarvey(order)
//
//	h.Names // state labels, index-aligned with the rows of h.T
//	h.T     // transition matrix
//	h.Z     // design vector
//
// Label the axes of the model's matrices:
//
//	coords := statespace.DefaultCoords(h)
//
// # Packages
//
//   - sarima: state names, transition matrix and design vector of the Harvey representation
//   - statespace: dimension and matrix name registry, coordinates, time-axis conformance
//   - timeseries: time series data structures, differencing and CSV loading
//
// # References
//
//   - Harvey, A. C. (1989). Forecasting, Structural Time Series Models and the Kalman Filter
//   - Durbin, J., & Koopman, S. J. (2012). Time Series Analysis by State Space Methods
package gostatespace
