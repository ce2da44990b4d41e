package sarima

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gostatespace/timeseries"
)

// Harvey is the structural part of a SARIMA model in the Harvey state-space representation.
// The names, T and Z are index-aligned: row/column i of T and entry i of Z belong to Names[i].
type Harvey struct {
	Order Order
	Sizes Sizes
	Names []string
	T     *mat.Dense    // Transition matrix, KStates x KStates
	Z     *mat.VecDense // Design vector, length KStates
}

// NewHarvey validates the order and builds its state names, transition matrix and design vector.
func NewHarvey(o Order) (*Harvey, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Harvey{
		Order: o,
		Sizes: o.Sizes(),
		Names: StateNames(o),
		T:     TransitionMatrix(o),
		Z:     DesignVector(o),
	}, nil
}

// StateNames returns the names of the hidden states.
func (h *Harvey) StateNames() []string {
	out := make([]string, len(h.Names))
	copy(out, h.Names)
	return out
}

// ObservedStates returns the names of the observed states.
func (h *Harvey) ObservedStates() []string {
	return []string{"data"}
}

// ShockNames returns the names of the innovations driving the states.
func (h *Harvey) ShockNames() []string {
	return []string{"innovation"}
}

// Step rolls a state vector one period forward without innovations, returning T·state.
func (h *Harvey) Step(state mat.Vector) (*mat.VecDense, error) {
	if state.Len() != h.Sizes.KStates {
		return nil, fmt.Errorf("got %d states, want %d: %w", state.Len(), h.Sizes.KStates, ErrStateDimension)
	}
	next := mat.NewVecDense(h.Sizes.KStates, nil)
	next.MulVec(h.T, state)
	return next, nil
}

// Observe returns Z·state, the observation implied by a state vector.
func (h *Harvey) Observe(state mat.Vector) (float64, error) {
	if state.Len() != h.Sizes.KStates {
		return 0, fmt.Errorf("got %d states, want %d: %w", state.Len(), h.Sizes.KStates, ErrStateDimension)
	}
	return mat.Dot(h.Z, state), nil
}

// DifferencingState returns the state vector at time t implied by the observed series.
//
// The differencing states are filled in the order of StateNames: Δ^i y_{t-1} for the d ARIMA
// differences, then for every seasonal round k the m lags Δ_m^k Δ^d y_{t-1-j}, and finally
// data_star = Δ_m^D Δ^d y_t. The ARMA dynamics states after data_star are left at zero.
// Without differencing, the first state is y_t itself.
//
// t must satisfy d + D*m <= t < series.Len().
func (h *Harvey) DifferencingState(series *timeseries.Series, t int) (*mat.VecDense, error) {
	d, sd, m := h.Order.D, h.Order.SD, h.Order.M
	first := d + sd*m
	if t < first || t >= series.Len() {
		return nil, fmt.Errorf("t=%d outside [%d, %d) for %s: %w", t, first, series.Len(), h.Order, ErrInsufficientData)
	}

	// levels[i] is Δ^i y, aligned so that levels[i].Values[0] belongs to y_i.
	levels := make([]*timeseries.Series, 0, d+1)
	levels = append(levels, series)
	for i := 1; i <= d; i++ {
		levels = append(levels, series.DiffN(i))
	}

	// seasonal[k] is Δ_m^k Δ^d y, aligned so that seasonal[k].Values[0] belongs to y_{d+k*m}.
	seasonal := make([]*timeseries.Series, 0, sd+1)
	seasonal = append(seasonal, levels[d])
	for k := 1; k <= sd; k++ {
		seasonal = append(seasonal, seasonal[k-1].SeasonalDiff(m))
	}

	state := mat.NewVecDense(h.Sizes.KStates, nil)
	idx := 0
	set := func(s *timeseries.Series, offset, at int) error {
		v, ok := s.At(at - offset)
		if !ok {
			return fmt.Errorf("no value for %s at t=%d: %w", h.Names[idx], at, ErrInsufficientData)
		}
		state.SetVec(idx, v)
		idx++
		return nil
	}

	for i := 0; i < d; i++ {
		if err := set(levels[i], i, t-1); err != nil {
			return nil, err
		}
	}
	for k := 0; k < sd; k++ {
		for j := 0; j < m; j++ {
			if err := set(seasonal[k], d+k*m, t-1-j); err != nil {
				return nil, err
			}
		}
	}
	if err := set(seasonal[sd], first, t); err != nil {
		return nil, err
	}

	return state, nil
}
