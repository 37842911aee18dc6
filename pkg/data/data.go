// Package data loads columns of numbers from text files into graphs and
// histograms.
package data

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/acaird/rootplot/pkg/canvas"
	"github.com/acaird/rootplot/pkg/logging"
	"go.uber.org/zap"
)

var ErrColumnRange = errors.New("column index out of range")

// Columns selects the x and y columns of a file, counting from 0.
type Columns struct {
	X, Y int
}

var DefaultColumns = Columns{X: 0, Y: 1}

// DefaultDelimiter splits on any run of whitespace.
const DefaultDelimiter = " "

// leading number of a cell; whatever follows it is ignored
var numberRe = regexp.MustCompile(`^[+-]?(?:\d+(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?`)

// toFloat reads the number at the start of s. Cells that do not start
// with a number count as 0.
func toFloat(s string) float64 {
	m := numberRe.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func split(line, delim string) []string {
	if delim == "" || delim == " " {
		return strings.Fields(line)
	}
	return strings.Split(line, delim)
}

// scanRows calls fn with the cells of every line of r that is neither
// blank nor a # comment.
func scanRows(r io.Reader, delim string, fn func(line int, cells []string) error) error {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue // skip empty lines and comments
		}
		if err := fn(n, split(line, delim)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func cell(cells []string, i, line int) (float64, error) {
	if i < 0 || i >= len(cells) {
		return 0, fmt.Errorf("line %d has %d columns, need column %d: %w", line, len(cells), i, ErrColumnRange)
	}
	return toFloat(cells[i]), nil
}

func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadGraph reads a graph named name from r.
func ReadGraph(r io.Reader, name string, cols Columns, delim string) (*canvas.Graph, error) {
	g := canvas.NewGraph(name, nil, nil)
	err := scanRows(r, delim, func(line int, cells []string) error {
		x, err := cell(cells, cols.X, line)
		if err != nil {
			return err
		}
		y, err := cell(cells, cols.Y, line)
		if err != nil {
			return err
		}
		g.AddPoint(x, y)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// LoadGraph reads two columns of the file at path into a graph named
// "graph_<file name without extension>".
func LoadGraph(ctx context.Context, path string, cols Columns, delim string) (*canvas.Graph, error) {
	logger := logging.From(ctx)
	name := "graph_" + baseName(path)
	logger.Info("creating graph",
		zap.String("file", path),
		zap.Int("xcolumn", cols.X),
		zap.Int("ycolumn", cols.Y))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading data: %w", err)
	}
	defer f.Close()

	g, err := ReadGraph(f, name, cols, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("data points added to graph", zap.Int("points", g.N()), zap.String("graph", name))
	return g, nil
}

// Binning is the fixed binning of a histogram.
type Binning struct {
	NBins      int
	XMin, XMax float64
}

// ReadHistogram fills a histogram named name with the values in column
// col of r.
func ReadHistogram(r io.Reader, name string, col int, b Binning, delim string) (*canvas.H1D, error) {
	h := canvas.NewH1D(name, name, b.NBins, b.XMin, b.XMax)
	err := scanRows(r, delim, func(line int, cells []string) error {
		v, err := cell(cells, col, line)
		if err != nil {
			return err
		}
		h.Fill(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

// LoadHistogram fills a histogram named "hist_<file name without
// extension>" from one column of the file at path.
func LoadHistogram(ctx context.Context, path string, col int, b Binning, delim string) (*canvas.H1D, error) {
	logger := logging.From(ctx)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading data: %w", err)
	}
	defer f.Close()

	h, err := ReadHistogram(f, "hist_"+baseName(path), col, b, delim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("filled histogram", zap.String("file", path), zap.String("hist", h.Name()), zap.Float64("mean", h.Mean()))
	return h, nil
}
