package sarima

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gostatespace/timeseries"
)

// seasonalSeries generates a trending seasonal series with noise.
func seasonalSeries(n, period int, seed int64) *timeseries.Series {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		trend := float64(i) * 0.3
		seasonal := 0.0
		if period > 0 {
			seasonal = 5 * math.Sin(2*math.Pi*float64(i)/float64(period))
		}
		values[i] = 50 + trend + seasonal + rng.NormFloat64()
	}
	return timeseries.New(values)
}

func TestNewHarvey(t *testing.T) {
	h, err := NewHarvey(NewOrder(1, 1, 1, 0, 0, 0, 0))
	require.NoError(t, err)

	assert.Equal(t, Sizes{KLags: 2, NDiffs: 1, KStates: 3, HasDiff: true}, h.Sizes)
	assert.Equal(t, []string{"data", "data_star", "state_star_1"}, h.StateNames())
	assert.Equal(t, []string{"data"}, h.ObservedStates())
	assert.Equal(t, []string{"innovation"}, h.ShockNames())

	r, c := h.T.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 3, h.Z.Len())
}

func TestNewHarveyRejectsInvalidOrder(t *testing.T) {
	_, err := NewHarvey(NewOrder(1, -1, 0, 0, 0, 0, 0))
	require.ErrorIs(t, err, ErrNegativeOrder)

	_, err = NewHarvey(NewOrder(0, 0, 0, 0, 1, 0, 0))
	require.ErrorIs(t, err, ErrSeasonalPeriod)
}

func TestHarveyStateNamesIsCopy(t *testing.T) {
	h, err := NewHarvey(NewOrder(0, 0, 0, 0, 1, 0, 4))
	require.NoError(t, err)

	names := h.StateNames()
	names[0] = "changed"
	assert.Equal(t, "data", h.Names[0])
}

func TestHarveyStepDimension(t *testing.T) {
	h, err := NewHarvey(NewOrder(1, 1, 0, 0, 0, 0, 0))
	require.NoError(t, err)

	_, err = h.Step(mat.NewVecDense(5, nil))
	require.ErrorIs(t, err, ErrStateDimension)

	_, err = h.Observe(mat.NewVecDense(1, nil))
	require.ErrorIs(t, err, ErrStateDimension)

	// The level absorbs data_star; with k_lags = 1 there is nothing to roll.
	next, err := h.Step(mat.NewVecDense(2, []float64{3, 4}))
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 0}, next.RawVector().Data)
}

func TestDifferencingStateRange(t *testing.T) {
	h, err := NewHarvey(NewOrder(0, 1, 0, 0, 1, 0, 4))
	require.NoError(t, err)

	series := seasonalSeries(20, 4, 1)

	_, err = h.DifferencingState(series, 4)
	require.ErrorIs(t, err, ErrInsufficientData)

	_, err = h.DifferencingState(series, 20)
	require.ErrorIs(t, err, ErrInsufficientData)

	state, err := h.DifferencingState(series, 5)
	require.NoError(t, err)
	assert.Equal(t, h.Sizes.KStates, state.Len())
}

func TestDifferencingStateSeasonal(t *testing.T) {
	// SARIMA(0,0,0)(0,1,0)[4]: x_{t-1}, ..., x_{t-4}, x_t - x_{t-4}.
	h, err := NewHarvey(NewOrder(0, 0, 0, 0, 1, 0, 4))
	require.NoError(t, err)

	series := timeseries.New([]float64{1, 2, 4, 8, 16, 32})
	state, err := h.DifferencingState(series, 5)
	require.NoError(t, err)

	assert.Equal(t, []float64{16, 8, 4, 2, 30}, state.RawVector().Data)
}

func TestDifferencingStateRepeatedDifferences(t *testing.T) {
	// ARIMA(0,2,0): y_{t-1}, Δy_{t-1}, Δ²y_t.
	h, err := NewHarvey(NewOrder(0, 2, 0, 0, 0, 0, 0))
	require.NoError(t, err)

	series := timeseries.New([]float64{1, 4, 9, 16, 25})
	state, err := h.DifferencingState(series, 4)
	require.NoError(t, err)

	assert.Equal(t, []float64{16, 7, 2}, state.RawVector().Data)
}

func TestDifferencingStateWithoutDifferencing(t *testing.T) {
	h, err := NewHarvey(NewOrder(2, 0, 1, 0, 0, 0, 0))
	require.NoError(t, err)

	series := timeseries.New([]float64{3, 1, 4, 1, 5})
	state, err := h.DifferencingState(series, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{4, 0}, state.RawVector().Data)
}

// The differencing rows of T map the state at t onto the state at t+1, and Z recovers y_t.
func TestTransitionRollsDifferencingStates(t *testing.T) {
	series := seasonalSeries(60, 5, 7)

	for _, order := range orderGrid() {
		h, err := NewHarvey(order)
		require.NoError(t, err)

		first := order.D + order.SD*order.M
		for _, at := range []int{first, first + 3, series.Len() - 2} {
			current, err := h.DifferencingState(series, at)
			require.NoError(t, err, order.String())
			following, err := h.DifferencingState(series, at+1)
			require.NoError(t, err, order.String())

			next, err := h.Step(current)
			require.NoError(t, err)
			for i := 0; i < h.Sizes.NDiffs; i++ {
				require.InDelta(t, following.AtVec(i), next.AtVec(i), 1e-8,
					"%s at t=%d: state %s", order, at, h.Names[i])
			}

			y, err := h.Observe(current)
			require.NoError(t, err)
			require.InDelta(t, series.Values[at], y, 1e-8, "%s at t=%d", order, at)
		}
	}
}
