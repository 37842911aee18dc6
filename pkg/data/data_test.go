package data

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{" -2e3 ", -2000},
		{"12abc", 12},
		{".25", 0.25},
		{"abc", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := toFloat(tt.in); got != tt.want {
			t.Errorf("toFloat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLoadGraph(t *testing.T) {
	path := writeFile(t, "spectrum.dat", "# energy counts\n1 10 100\n\n2   20 200\n3\t30 n/a\n")
	g, err := LoadGraph(context.Background(), path, Columns{X: 0, Y: 2}, DefaultDelimiter)
	if err != nil {
		t.Fatal(err)
	}
	if g.Name() != "graph_spectrum" {
		t.Errorf("name = %q", g.Name())
	}
	if g.N() != 3 {
		t.Fatalf("%d points, want 3", g.N())
	}
	want := [][2]float64{{1, 100}, {2, 200}, {3, 0}}
	for i, w := range want {
		if x, y := g.Point(i); x != w[0] || y != w[1] {
			t.Errorf("point %d = (%v, %v), want %v", i, x, y, w)
		}
	}
}

func TestReadGraphDelimiter(t *testing.T) {
	g, err := ReadGraph(strings.NewReader("1,2\n3, 4\n"), "g", DefaultColumns, ",")
	if err != nil {
		t.Fatal(err)
	}
	if x, y := g.Point(1); x != 3 || y != 4 {
		t.Errorf("point 1 = (%v, %v)", x, y)
	}
}

func TestColumnRange(t *testing.T) {
	_, err := ReadGraph(strings.NewReader("1 2\n3\n"), "g", DefaultColumns, DefaultDelimiter)
	if !errors.Is(err, ErrColumnRange) {
		t.Errorf("err = %v, want ErrColumnRange", err)
	}
	if err != nil && !strings.Contains(err.Error(), "line 2") {
		t.Errorf("err = %v, want line number", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadGraph(context.Background(), filepath.Join(t.TempDir(), "nope.dat"), DefaultColumns, DefaultDelimiter)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v", err)
	}
}

func TestLoadHistogram(t *testing.T) {
	path := writeFile(t, "values.txt", "0.5\n1.5\n1.7\n9\n-1\n")
	h, err := LoadHistogram(context.Background(), path, 0, Binning{NBins: 4, XMin: 0, XMax: 4}, DefaultDelimiter)
	if err != nil {
		t.Fatal(err)
	}
	if h.Name() != "hist_values" {
		t.Errorf("name = %q", h.Name())
	}
	want := []float64{1, 1, 2, 0, 0, 1}
	for i, w := range want {
		if got := h.BinContent(i); got != w {
			t.Errorf("bin %d = %v, want %v", i, got, w)
		}
	}
}
