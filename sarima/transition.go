package sarima

import "gonum.org/v1/gonum/mat"

// TransitionMatrix makes the transition matrix T of a SARIMA model in the Harvey representation.
//
// The matrix splits into a top part of m*D + d rows, responsible for differencing, and a bottom
// part of max(P*m + p, Q*m + q + 1) rows, responsible for the ARMA dynamics. The bottom part is a
// companion matrix: a shifted identity that rolls x_{t-3} into x_{t-2}, and so on.
//
// The top part recovers the level x_t from the stationary state x*_t. Sequential ARIMA differences
// form an upper-triangular block of ones. With d = 3 and state (x, Δx, Δ²x, x*):
//
//	x_t    | 1 1 1 1 |  x_{t-1}
//	Δx_t   | 0 1 1 1 |  Δx_{t-1}
//	Δ²x_t  | 0 0 1 1 |  Δ²x_{t-1}
//	x*_t   | 0 0 0 1 |  x*_{t-1}
//
// Each seasonal difference adds a block of m lagged states that rolls forward every step, and the
// level is recovered by adding the last state of every block to x*_t. For D = 1, m = 4 the states
// are x_{t-1}, x_{t-2}, x_{t-3}, x_{t-4}, x*_t, with x_t = x*_t + x_{t-4}:
//
//	| 0 0 0 1 1 |
//	| 1 0 0 0 0 |
//	| 0 1 0 0 0 |
//	| 0 0 1 0 0 |
//	| 0 0 0 0 0 |
//
// For D = 2, m = 4 there is a second block of seasonally differenced lags, and both x_t and
// Δ₄x_t are recovered from the block ends:
//
//	| 0 0 0 1 0 0 0 1 1 |
//	| 1 0 0 0 0 0 0 0 0 |
//	| 0 1 0 0 0 0 0 0 0 |
//	| 0 0 1 0 0 0 0 0 0 |
//	| 0 0 0 0 0 0 0 1 1 |
//	| 0 0 0 0 1 0 0 0 0 |
//	| 0 0 0 0 0 1 0 0 0 |
//	| 0 0 0 0 0 0 1 0 0 |
//	| 0 0 0 0 0 0 0 0 0 |
//
// When both kinds are mixed, the seasonal blocks are written in terms of the highest ARIMA
// difference, and every ARIMA difference row also adds the seasonal block ends. Rows and columns
// line up index for index with StateNames.
//
// The order must satisfy Validate; the result is undefined otherwise. Every entry is exactly 0 or 1.
func TransitionMatrix(o Order) *mat.Dense {
	sizes := o.Sizes()
	d, sd, m := o.D, o.SD, o.M

	T := mat.NewDense(sizes.KStates, sizes.KStates, nil)

	// ARIMA differences: upper triangle of ones, diagonal included.
	for row := 0; row < d; row++ {
		for col := row; col < d; col++ {
			T.Set(row, col, 1)
		}
	}

	// Recovery columns. Every seasonal block ends at column d + m*(i+1) - 1, and x*_t follows the
	// last block. The d ARIMA rows add all of them; the first row of seasonal block i adds the
	// ends of blocks i.. and x*_t.
	for _, idx := range recoveryIndices(o) {
		T.Set(idx[0], idx[1], 1)
	}

	// Seasonal rolling: a shifted diagonal of length m*D starting at (d+1, d). Every m-th entry
	// is a block boundary, where the row is recovered above instead of rolled.
	for i := 0; i < m*sd; i++ {
		if (i+1)%m == 0 {
			continue
		}
		T.Set(d+1+i, d+i, 1)
	}

	// ARMA dynamics: companion block rolling the states after x*_t.
	for i := 0; i < sizes.KLags-1; i++ {
		T.Set(sizes.NDiffs+i, sizes.NDiffs+1+i, 1)
	}

	return T
}

// recoveryIndices returns the (row, col) pairs of the differencing recovery columns.
func recoveryIndices(o Order) [][2]int {
	d, sd, m := o.D, o.SD, o.M

	if sd == 0 {
		// Only ARIMA differences: x*_t sits right after them.
		idx := make([][2]int, 0, d)
		for row := 0; row < d; row++ {
			idx = append(idx, [2]int{row, d})
		}
		return idx
	}

	baseCols := make([]int, 0, sd+1)
	for i := 0; i < sd; i++ {
		baseCols = append(baseCols, d+m+i*m-1)
	}
	baseCols = append(baseCols, baseCols[sd-1]+1)

	var idx [][2]int
	for row := 0; row < d; row++ {
		for _, col := range baseCols {
			idx = append(idx, [2]int{row, col})
		}
	}
	for i := 0; i < sd; i++ {
		for _, col := range baseCols[i:] {
			idx = append(idx, [2]int{d + m*i, col})
		}
	}
	return idx
}

// DesignVector returns the observation row Z of the Harvey representation, so that y_t = Z·x_t.
//
// With differencing, the level is the sum of the ARIMA difference states, the last state of
// every seasonal block and data_star, which is row 0 of TransitionMatrix. Without differencing
// the first state is the data itself.
func DesignVector(o Order) *mat.VecDense {
	sizes := o.Sizes()
	Z := mat.NewVecDense(sizes.KStates, nil)

	if !sizes.HasDiff {
		Z.SetVec(0, 1)
		return Z
	}

	for i := 0; i < o.D; i++ {
		Z.SetVec(i, 1)
	}
	for i := 0; i < o.SD; i++ {
		Z.SetVec(o.D+o.M*(i+1)-1, 1)
	}
	Z.SetVec(sizes.NDiffs, 1)

	return Z
}
