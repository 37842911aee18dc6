package hist

import (
	"errors"
	"strings"
	"testing"

	"github.com/acaird/rootplot/pkg/canvas"
	"github.com/acaird/rootplot/pkg/engine"
)

func filled(name string, nbins int, xmin, xmax float64, contents ...float64) engine.Histogram {
	h := canvas.NewH1D(name, name, nbins, xmin, xmax)
	for i, v := range contents {
		h.SetBinContent(i, v)
	}
	return h
}

func TestClone(t *testing.T) {
	src := filled("src", 4, 0, 4, 7, 1, 2, 0, 4, 9)
	c := Clone(canvas.New(), src, "copy")
	if c.Name() != "copy" {
		t.Errorf("name = %q", c.Name())
	}
	if c.NBins() != 4 || c.XMin() != 0 || c.XMax() != 4 {
		t.Errorf("binning = %s", Describe(c))
	}
	for i := 0; i <= 5; i++ {
		if c.BinContent(i) != src.BinContent(i) {
			t.Errorf("bin %d = %v, want %v", i, c.BinContent(i), src.BinContent(i))
		}
	}
	c.SetBinContent(1, 100)
	if src.BinContent(1) == 100 {
		t.Error("clone shares storage with the source")
	}
}

func TestDivideBySelf(t *testing.T) {
	h := filled("h", 5, 0, 10, 0, 3, 0, 8, 2, 1, 4)
	d := Clone(canvas.New(), h, "d")
	if err := DivideBinwise(h, d); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 0, 1, 1, 1}
	for i, w := range want {
		if got := h.BinContent(i); got != w {
			t.Errorf("bin %d = %v, want %v", i, got, w)
		}
	}
	// overflow is not divided
	if got := h.BinContent(6); got != 4 {
		t.Errorf("overflow = %v, want 4", got)
	}
}

func TestDivideZeroDivisor(t *testing.T) {
	h := filled("h", 3, 0, 3, 0, 6, 6, 6)
	d := filled("d", 3, 0, 3, 0, 2, 0, 3)
	if err := DivideBinwise(h, d); err != nil {
		t.Fatal(err)
	}
	for i, w := range []float64{0, 3, 6, 2} {
		if got := h.BinContent(i); got != w {
			t.Errorf("bin %d = %v, want %v", i, got, w)
		}
	}
}

func TestDivideMismatch(t *testing.T) {
	tests := []struct {
		name    string
		divisor engine.Histogram
		bin     int
	}{
		{"count", filled("d", 4, 0, 3), -1},
		{"range", filled("d", 3, 1, 4), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := filled("h", 3, 0, 3, 0, 1, 2, 3)
			err := DivideBinwise(h, tt.divisor)
			if !errors.Is(err, ErrBinMismatch) {
				t.Fatalf("err = %v, want ErrBinMismatch", err)
			}
			var me *MismatchError
			if !errors.As(err, &me) || me.Bin != tt.bin {
				t.Fatalf("err = %#v", err)
			}
			msg := err.Error()
			if !strings.Contains(msg, "nbins = 3") || !strings.Contains(msg, Describe(tt.divisor)) {
				t.Errorf("message lacks binning: %s", msg)
			}
			if h.BinContent(3) != 3 {
				t.Error("histogram modified on mismatch")
			}
		})
	}
}
