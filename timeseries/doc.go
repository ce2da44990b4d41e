// Package timeseries provides the time series type read by the state-space builders.
//
// # Creating a Series
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.ValueColumn = "value"
//	opts.IDColumn, opts.IDFilter = "country", "Australia"
//	series, err := timeseries.LoadCSV("data.csv", opts)
//
// Rows whose value is empty, NA, NaN or null are skipped.
//
// # Differencing
//
// Differences are aligned to the end of the series: element i of a difference belongs
// to the observation it was computed at, which is i + lag in the original series.
//
//	diff := series.Diff()            // x_t - x_{t-1}
//	diff2 := series.DiffN(2)         // Δ²x_t
//	sdiff := series.SeasonalDiff(12) // x_t - x_{t-12}
package timeseries
