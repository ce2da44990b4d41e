package sarima

import (
	"fmt"
	"strings"
)

// meaninglessTokens are removed from state names in this order:
// Dk^1 is just Dk, L0 is a lag of zero, and ^0 / D0 mark an operator that was never applied.
// Only the tokens go; the separating dot stays, so "L0.data" becomes ".data".
var meaninglessTokens = []string{"^1", "^0", "L0", "D0"}

// CleanupStates removes meaningless symbols from state names generated by StateNames.
// The result has the same length as states; the input is not modified.
func CleanupStates(states []string) []string {
	out := make([]string, len(states))
	for i, state := range states {
		for _, token := range meaninglessTokens {
			state = strings.ReplaceAll(state, token, "")
		}
		out[i] = state
	}
	return out
}

// StateNames generates informative names for the SARIMA states in the Harvey representation.
//
// The first state is always "data". It is followed by the ARIMA-differenced states
// (D1.data, D1^2.data, ...), the lagged states of each seasonal differencing round
// (L1.data, ..., D4.data, L1D4.data, ...), "data_star" when any differencing is present,
// and finally the ARMA dynamics states state_1 ... state_{k_lags-1} (state_star_i after data_star).
//
// The order must satisfy Validate; the result is undefined otherwise.
func StateNames(o Order) []string {
	sizes := o.Sizes()
	states := make([]string, 0, sizes.KStates)

	states = append(states, "data")

	// Difference the data d-1 times on the way to data_star. With seasonal differencing the
	// d-th ARIMA difference is the first state of the first seasonal block, so it is named here too.
	dSize := o.D
	if o.SD > 0 {
		dSize++
	}
	for i := 0; i < dSize-1; i++ {
		states = append(states, fmt.Sprintf("D1^%d.data", i+1))
	}

	arimaOrder := 0
	if dSize > 1 {
		arimaOrder = 1
	}
	arimaCount := dSize - 1
	seasonCount := 0

	current := fmt.Sprintf("D%d^%d", arimaOrder, arimaCount)
	for i := 0; i < o.SD; i++ {
		for j := 0; j < o.M-1; j++ {
			states = append(states, fmt.Sprintf("L%d%s.data", j+1, current))
		}
		seasonCount++
		current = fmt.Sprintf("D%d^%dD%d^%d", arimaOrder, arimaCount, o.M, seasonCount)
		if i != o.SD-1 {
			states = append(states, current+".data")
		}
	}

	if sizes.HasDiff {
		states = append(states, "data_star")
	}

	suffix := ""
	if strings.Contains(states[len(states)-1], "star") {
		suffix = "_star"
	}
	for i := 0; i < sizes.KLags-1; i++ {
		states = append(states, fmt.Sprintf("state%s_%d", suffix, i+1))
	}

	return CleanupStates(states)
}
