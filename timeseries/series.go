// Package timeseries provides the time series values the state-space builders read from.
package timeseries

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrLengthMismatch is returned when timestamps and values differ in length.
	ErrLengthMismatch = errors.New("timeseries: timestamps and values must have the same length")

	// ErrNoData is returned when a source holds no usable observations.
	ErrNoData = errors.New("timeseries: no valid data found")
)

// Series represents a time series with timestamps and values.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values, with hourly timestamps starting now.
func New(values []float64) *Series {
	timestamps := make([]time.Time, len(values))
	base := time.Now()
	for i := range timestamps {
		timestamps[i] = base.Add(time.Duration(i) * time.Hour)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}
}

// NewWithTimestamps creates a time series with explicit timestamps.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, fmt.Errorf("%d timestamps, %d values: %w", len(timestamps), len(values), ErrLengthMismatch)
	}
	return &Series{
		Timestamps: timestamps,
		Values:     values,
	}, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// At returns the value at index i and whether i is inside the series.
func (s *Series) At(i int) (float64, bool) {
	if i < 0 || i >= len(s.Values) {
		return 0, false
	}
	return s.Values[i], true
}

// Diff calculates the first difference of the series.
func (s *Series) Diff() *Series {
	return s.lagDiff(1, "_diff")
}

// DiffN applies the first difference n times, so DiffN(2) is Δ²x_t = x_t - 2x_{t-1} + x_{t-2}.
// The result is n observations shorter than s; DiffN(0) is a copy.
func (s *Series) DiffN(n int) *Series {
	out := s.Copy()
	for i := 0; i < n; i++ {
		out = out.Diff()
	}
	return out
}

// SeasonalDiff calculates the seasonal difference x_t - x_{t-m}.
func (s *Series) SeasonalDiff(m int) *Series {
	return s.lagDiff(m, "_seasonal_diff")
}

// lagDiff returns x_t - x_{t-lag}, aligned so that element i belongs to s.Values[i+lag].
func (s *Series) lagDiff(lag int, suffix string) *Series {
	if lag <= 0 || len(s.Values) <= lag {
		return &Series{Values: []float64{}, Name: s.Name + suffix}
	}

	result := make([]float64, len(s.Values)-lag)
	for i := lag; i < len(s.Values); i++ {
		result[i-lag] = s.Values[i] - s.Values[i-lag]
	}

	timestamps := make([]time.Time, len(result))
	if len(s.Timestamps) > lag {
		copy(timestamps, s.Timestamps[lag:])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + suffix,
	}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	timestamps := make([]time.Time, len(s.Timestamps))
	copy(timestamps, s.Timestamps)

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}
