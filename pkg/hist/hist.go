// Package hist copies and divides 1-D histograms bin by bin.
package hist

import (
	"errors"
	"fmt"

	"github.com/acaird/rootplot/pkg/engine"
)

var ErrBinMismatch = errors.New("histograms have different binning")

// MismatchError reports two histograms that cannot be combined bin by
// bin.
type MismatchError struct {
	Numerator, Divisor string
	// Bin is the first bin whose centers differ; -1 when the bin counts
	// differ.
	Bin int
}

func (e *MismatchError) Error() string {
	if e.Bin < 0 {
		return fmt.Sprintf("number of bins differ: %s vs %s", e.Numerator, e.Divisor)
	}
	return fmt.Sprintf("bin %d centers differ: %s vs %s", e.Bin, e.Numerator, e.Divisor)
}

func (e *MismatchError) Unwrap() error { return ErrBinMismatch }

// Describe summarizes the binning of h.
func Describe(h engine.Histogram) string {
	return fmt.Sprintf("%s (nbins = %d xmin = %g xmax = %g)", h.Name(), h.NBins(), h.XMin(), h.XMax())
}

// Clone makes a histogram named name with the binning of h and copies
// every bin, underflow and overflow included.
func Clone(f engine.HistogramFactory, h engine.Histogram, name string) engine.Histogram {
	c := f.NewH1D(name, name, h.NBins(), h.XMin(), h.XMax())
	for i := 0; i <= h.NBins()+1; i++ {
		c.SetBinContent(i, h.BinContent(i))
	}
	return c
}

// DivideBinwise divides each bin of h by the matching bin of divisor.
// Bins where the divisor is zero keep their content. The histograms
// must have the same bin count and bin centers, otherwise h is left
// untouched and a *MismatchError is returned.
func DivideBinwise(h, divisor engine.Histogram) error {
	if h.NBins() != divisor.NBins() {
		return &MismatchError{Numerator: Describe(h), Divisor: Describe(divisor), Bin: -1}
	}
	for i := 0; i <= h.NBins(); i++ {
		if h.BinCenter(i) != divisor.BinCenter(i) {
			return &MismatchError{Numerator: Describe(h), Divisor: Describe(divisor), Bin: i}
		}
	}
	for i := 0; i <= h.NBins(); i++ {
		d := divisor.BinContent(i)
		if d == 0 {
			continue
		}
		h.SetBinContent(i, h.BinContent(i)/d)
	}
	return nil
}
