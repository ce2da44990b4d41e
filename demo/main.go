// Package main prints the Harvey state-space representation of a SARIMA order.
//
//	go run ./demo -p 1 -d 1 -q 1 -P 0 -D 1 -Q 1 -s 12
//	go run ./demo -d 1 -D 1 -s 4 -csv data/quarterly.csv -column y -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gostatespace/sarima"
	"github.com/sartorproj/gostatespace/statespace"
	"github.com/sartorproj/gostatespace/timeseries"
)

// config holds the command-line options.
type config struct {
	order    sarima.Order
	csvPath  string
	column   string
	idColumn string
	idFilter string
	asJSON   bool
	verbose  bool
}

// Output is the JSON form of a representation.
type Output struct {
	Order      string              `json:"order"`
	KStates    int                 `json:"k_states"`
	KLags      int                 `json:"k_lags"`
	NDiffs     int                 `json:"n_diffs"`
	StateNames []string            `json:"state_names"`
	Transition [][]float64         `json:"transition"`
	Design     []float64           `json:"design"`
	Coords     map[string][]string `json:"coords"`
	Data       *DataOutput         `json:"data,omitempty"`
}

// DataOutput holds the differencing state evaluated on a loaded series.
type DataOutput struct {
	NObs      int       `json:"n_obs"`
	T         int       `json:"t"`
	State     []float64 `json:"state"`
	Next      []float64 `json:"next"`
	Observed  float64   `json:"observed"`
	Recovered float64   `json:"recovered"`
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(cfg, os.Stdout, logger); err != nil {
		logger.Error("demo failed", slog.String("order", cfg.order.String()), slog.Any("err", err))
		os.Exit(1)
	}
}

func parseFlags(args []string) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.IntVar(&cfg.order.P, "p", 0, "AR order")
	fs.IntVar(&cfg.order.D, "d", 0, "number of ARIMA differences")
	fs.IntVar(&cfg.order.Q, "q", 0, "MA order")
	fs.IntVar(&cfg.order.SP, "P", 0, "seasonal AR order")
	fs.IntVar(&cfg.order.SD, "D", 0, "number of seasonal differences")
	fs.IntVar(&cfg.order.SQ, "Q", 0, "seasonal MA order")
	fs.IntVar(&cfg.order.M, "s", 0, "seasonal length")
	fs.StringVar(&cfg.csvPath, "csv", "", "optional CSV file to evaluate the differencing state on")
	fs.StringVar(&cfg.column, "column", "y", "CSV value column")
	fs.StringVar(&cfg.idColumn, "id", "", "CSV series ID column")
	fs.StringVar(&cfg.idFilter, "filter", "", "keep only rows with this series ID")
	fs.BoolVar(&cfg.asJSON, "json", false, "print JSON instead of text")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	err := fs.Parse(args)
	return cfg, err
}

func run(cfg config, w io.Writer, logger *slog.Logger) error {
	h, err := sarima.NewHarvey(cfg.order)
	if err != nil {
		return err
	}
	logger.Debug("built representation",
		slog.String("order", h.Order.String()),
		slog.Int("k_states", h.Sizes.KStates),
		slog.Int("k_lags", h.Sizes.KLags),
		slog.Int("n_diffs", h.Sizes.NDiffs))

	out := Output{
		Order:      h.Order.String(),
		KStates:    h.Sizes.KStates,
		KLags:      h.Sizes.KLags,
		NDiffs:     h.Sizes.NDiffs,
		StateNames: h.StateNames(),
		Transition: rows(h.T),
		Design:     vector(h.Z),
		Coords:     statespace.DefaultCoords(h),
	}

	if cfg.csvPath != "" {
		data, err := evaluate(h, cfg, logger)
		if err != nil {
			return err
		}
		out.Data = data
	}

	if cfg.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	return printText(w, h, out)
}

// evaluate loads the series and computes the differencing state at the last usable observation.
func evaluate(h *sarima.Harvey, cfg config, logger *slog.Logger) (*DataOutput, error) {
	opts := timeseries.DefaultCSVOptions()
	opts.ValueColumn = cfg.column
	opts.IDColumn = cfg.idColumn
	opts.IDFilter = cfg.idFilter

	series, err := timeseries.LoadCSV(cfg.csvPath, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded series", slog.String("path", cfg.csvPath), slog.Int("n_obs", series.Len()))

	// The last state whose successor is still observed, so the step can be checked.
	t := series.Len() - 2
	state, err := h.DifferencingState(series, t)
	if err != nil {
		return nil, err
	}
	next, err := h.Step(state)
	if err != nil {
		return nil, err
	}
	recovered, err := h.Observe(state)
	if err != nil {
		return nil, err
	}

	return &DataOutput{
		NObs:      series.Len(),
		T:         t,
		State:     vector(state),
		Next:      vector(next),
		Observed:  series.Values[t],
		Recovered: recovered,
	}, nil
}

func printText(w io.Writer, h *sarima.Harvey, out Output) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", out.Order)
	fmt.Fprintf(&b, "k_states=%d k_lags=%d n_diffs=%d\n\n", out.KStates, out.KLags, out.NDiffs)

	fmt.Fprintln(&b, "States:")
	for i, name := range out.StateNames {
		fmt.Fprintf(&b, "  %3d  %s\n", i, name)
	}

	fmt.Fprintf(&b, "\nT = %v\n", mat.Formatted(h.T, mat.Prefix("    "), mat.Squeeze()))
	fmt.Fprintf(&b, "\nZ = %v\n", out.Design)

	if out.Data != nil {
		fmt.Fprintf(&b, "\nData (%d observations), t = %d:\n", out.Data.NObs, out.Data.T)
		for i, name := range out.StateNames {
			fmt.Fprintf(&b, "  %-16s %12.4f -> %12.4f\n", name, out.Data.State[i], out.Data.Next[i])
		}
		fmt.Fprintf(&b, "  y_t = %.4f, Z·state = %.4f\n", out.Data.Observed, out.Data.Recovered)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func rows(m mat.Matrix) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, m)
	}
	return out
}

func vector(v mat.Vector) []float64 {
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}
	return out
}
