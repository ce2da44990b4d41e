package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional, detected from ds/date/Month/Year)
	ValueColumn string // Column name for values (default: "y", falls back to the last column)
	IDColumn    string // Column name for series ID (optional, for filtering)
	IDFilter    string // Keep only rows whose ID column equals this value
	DateFormat  string // Preferred date layout (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip before the header
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

var (
	dateHeaders    = []string{"ds", "date", "Date", "Month", "Year"}
	idHeaders      = []string{"unique_id", "id", "ID"}
	missingMarkers = []string{"", "NA", "NaN", "null"}
	dateLayouts    = []string{"2006-01-02", "2006-01-02T15:04:05", "2006/01/02", "01/02/2006", "02-Jan-2006", "2006"}
)

// columns holds the resolved column positions; -1 means absent.
type columns struct {
	value, date, id int
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filename, err)
	}
	return series, nil
}

// LoadCSVFromReader loads a time series from an io.Reader.
//
// Rows with a missing or unparsable value are skipped. Timestamps are kept only if every kept
// row carries a parsable date; otherwise the series gets generated timestamps.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	cols := columns{value: 1, date: 0, id: -1}
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		cols = resolveColumns(header, opts)
	}

	var values []float64
	var timestamps []time.Time

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if opts.IDFilter != "" && cols.id >= 0 && field(record, cols.id) != opts.IDFilter {
			continue
		}

		raw := field(record, cols.value)
		if isMissing(raw) {
			continue
		}
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		values = append(values, val)

		if ts, ok := parseDate(field(record, cols.date), opts.DateFormat); ok {
			timestamps = append(timestamps, ts)
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	series, err := NewWithTimestamps(timestamps, values)
	if errors.Is(err, ErrLengthMismatch) {
		series = New(values)
	}
	series.Name = opts.ValueColumn
	return series, nil
}

func resolveColumns(header []string, opts *CSVOptions) columns {
	cols := columns{value: -1, date: -1, id: -1}
	for i, h := range header {
		h = strings.TrimSpace(strings.Trim(h, "\""))
		switch {
		case h == opts.ValueColumn:
			cols.value = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			cols.date = i
		case opts.DateColumn == "" && cols.date == -1 && slices.Contains(dateHeaders, h):
			cols.date = i
		case opts.IDColumn != "" && h == opts.IDColumn:
			cols.id = i
		case opts.IDColumn == "" && cols.id == -1 && slices.Contains(idHeaders, h):
			cols.id = i
		}
	}
	if cols.value == -1 {
		cols.value = len(header) - 1
	}
	return cols
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(strings.Trim(record[idx], "\""))
}

func isMissing(raw string) bool {
	return slices.Contains(missingMarkers, raw)
}

func parseDate(raw, preferred string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range append([]string{preferred}, dateLayouts...) {
		if layout == "" {
			continue
		}
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
