// Package sarima builds the Harvey state-space representation of SARIMA models.
package sarima

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeOrder is returned when any component of an Order is negative.
	ErrNegativeOrder = errors.New("sarima: order components must be non-negative")

	// ErrSeasonalPeriod is returned when seasonal differencing is requested
	// without a seasonal period of at least one.
	ErrSeasonalPeriod = errors.New("sarima: seasonal differencing requires a seasonal period >= 1")

	// ErrInsufficientData is returned when a series is too short to hold
	// every lag a differencing state refers to.
	ErrInsufficientData = errors.New("sarima: insufficient data for the differencing states")

	// ErrStateDimension is returned when a state vector does not have
	// k_states entries.
	ErrStateDimension = errors.New("sarima: state vector has the wrong dimension")
)

// Order represents SARIMA model order (p, d, q) x (P, D, Q, m).
type Order struct {
	P int // Non-seasonal AR order
	D int // Non-seasonal differencing order
	Q int // Non-seasonal MA order
	// Seasonal components
	SP int // Seasonal AR order
	SD int // Seasonal differencing order
	SQ int // Seasonal MA order
	M  int // Seasonal period (e.g., 12 for monthly data with yearly seasonality)
}

// NewOrder creates an Order from the (p, d, q) x (P, D, Q, m) integers.
func NewOrder(p, d, q, sp, sd, sq, m int) Order {
	return Order{
		P: p, D: d, Q: q,
		SP: sp, SD: sd, SQ: sq, M: m,
	}
}

// String renders the order as SARIMA(p,d,q)(P,D,Q)[m].
func (o Order) String() string {
	return fmt.Sprintf("SARIMA(%d,%d,%d)(%d,%d,%d)[%d]", o.P, o.D, o.Q, o.SP, o.SD, o.SQ, o.M)
}

// Validate reports whether the order satisfies the preconditions of
// StateNames and TransitionMatrix.
func (o Order) Validate() error {
	for _, v := range []int{o.P, o.D, o.Q, o.SP, o.SD, o.SQ, o.M} {
		if v < 0 {
			return fmt.Errorf("%s: %w", o, ErrNegativeOrder)
		}
	}
	if o.SD > 0 && o.M < 1 {
		return fmt.Errorf("%s: %w", o, ErrSeasonalPeriod)
	}
	return nil
}

// Sizes holds the dimensions of the Harvey state vector derived from an Order.
type Sizes struct {
	KLags   int  // Size of the ARMA dynamics block, max(p + P*m, q + Q*m + 1)
	NDiffs  int  // Size of the differencing block, m*D + d
	KStates int  // KLags + NDiffs
	HasDiff bool // Whether a data_star state exists
}

// Sizes computes the state dimensions shared by StateNames and TransitionMatrix.
func (o Order) Sizes() Sizes {
	kLags := max(o.P+o.SP*o.M, o.Q+o.SQ*o.M+1)
	nDiffs := o.M*o.SD + o.D
	return Sizes{
		KLags:   kLags,
		NDiffs:  nDiffs,
		KStates: kLags + nDiffs,
		HasDiff: o.D+o.SD > 0,
	}
}
