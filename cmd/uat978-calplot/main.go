// Command uat978-calplot is a calibration diagnostic: it reads a raw
// I/Q capture and renders a PNG histogram of the per-bit-period dφ
// values (in Hz of FM deviation), so an operator can visually confirm
// the two populations (nominal 0 and 1 bits) sit comfortably apart and
// within the 20kHz-1MHz sanity band the sync scanner and bit slicer
// rely on.
//
// Grounded on the pack's shared use of gonum.org/v1/plot (declared,
// previously unwired, in both montge-stratux's and ausocean-av's
// go.mod) for instrumentation plots.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/kb9hzx/uat978/uat"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("uat978-calplot", pflag.ContinueOnError)
	input := flags.StringP("input", "i", "-", `Input raw I/Q capture file, or "-" for stdin.`)
	output := flags.StringP("output", "o", "calplot.png", "Output PNG path.")
	bins := flags.Int("bins", 200, "Number of histogram bins.")

	if err := flags.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	var r io.Reader = os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer f.Close()
		r = f
	}

	samples, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	table := uat.NewPhaseTable()
	series := uat.DphiSeries(table, samples)

	if err := renderHistogram(series, *bins, *output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	fmt.Printf("wrote %s (%d dphi samples)\n", *output, len(series))
	return 0
}

func renderHistogram(series []float64, bins int, path string) error {
	values := make(plotter.Values, len(series))
	copy(values, series)

	p, err := plot.New()
	if err != nil {
		return fmt.Errorf("calplot: creating plot: %w", err)
	}
	p.Title.Text = "UAT978 dphi (Hz)"
	p.X.Label.Text = "deviation (Hz)"
	p.Y.Label.Text = "count"

	h, err := plotter.NewHist(values, bins)
	if err != nil {
		return fmt.Errorf("calplot: building histogram: %w", err)
	}
	p.Add(h)

	if err := p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("calplot: saving %s: %w", path, err)
	}
	return nil
}
