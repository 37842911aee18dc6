package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/acaird/rootplot/pkg/engine"
)

var (
	ErrUnknownFont   = errors.New("unknown font family")
	ErrUnknownMarker = errors.New("unknown marker")
	ErrInvalidAxis   = errors.New("axis should be one of x/y/z")
)

const (
	DefaultFont          = engine.FontHelvetica
	DefaultFontSize      = 16
	DefaultFontSizeTitle = 18
)

// FontFamily is one of the supported font families.
type FontFamily string

const (
	Helvetica FontFamily = "helvetica"
	Times     FontFamily = "times"
	Roman     FontFamily = "roman"
)

var fontCodes = map[FontFamily]engine.FontCode{
	Helvetica: engine.FontHelvetica,
	Times:     engine.FontTimes,
	Roman:     engine.FontTimes,
}

// Code returns the engine font number of the family.
func (f FontFamily) Code() engine.FontCode {
	return fontCodes[f]
}

// ParseFontFamily reads a family from a font name such as
// "Times New Roman": only the first word counts and case is ignored.
func ParseFontFamily(name string) (FontFamily, error) {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return "", fmt.Errorf("font %q: %w", name, ErrUnknownFont)
	}
	family := FontFamily(fields[0])
	if _, ok := fontCodes[family]; !ok {
		return "", fmt.Errorf("font %q: %w", name, ErrUnknownFont)
	}
	return family, nil
}

// FontSpec is a font family at a size in pixels.
type FontSpec struct {
	Family     FontFamily
	SizePixels int
}

// Shape is a marker outline.
type Shape string

const (
	Circle   Shape = "circle"
	Square   Shape = "square"
	Triangle Shape = "triangle"
)

// MarkerSpec is a marker shape, filled or open.
type MarkerSpec struct {
	Shape  Shape
	Filled bool
}

var markerCodes = map[MarkerSpec]engine.MarkerCode{
	{Circle, true}:    engine.MarkerFilledCircle,
	{Square, true}:    engine.MarkerFilledSquare,
	{Triangle, true}:  engine.MarkerFilledTriangle,
	{Circle, false}:   engine.MarkerOpenCircle,
	{Square, false}:   engine.MarkerOpenSquare,
	{Triangle, false}: engine.MarkerOpenTriangle,
}

// Code returns the engine marker number for m.
func (m MarkerSpec) Code() (engine.MarkerCode, error) {
	code, ok := markerCodes[m]
	if !ok {
		return 0, fmt.Errorf("marker %q: %w", m.Shape, ErrUnknownMarker)
	}
	return code, nil
}

// ParseMarker reads marker names like "circle", "open_square" or
// "filled triangle". Markers are filled unless the name says "open".
func ParseMarker(name string) (MarkerSpec, error) {
	n := strings.ToLower(name)
	m := MarkerSpec{Filled: true}
	if strings.Contains(n, "open") {
		m.Filled = false
		n = strings.ReplaceAll(n, "open", "")
	} else {
		n = strings.ReplaceAll(n, "filled", "")
	}
	m.Shape = Shape(strings.TrimSpace(strings.ReplaceAll(n, "_", " ")))
	if _, err := m.Code(); err != nil {
		return MarkerSpec{}, fmt.Errorf("marker %q: %w", name, ErrUnknownMarker)
	}
	return m, nil
}

// Axis names one axis of a drawable.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	return [...]string{"x", "y", "z"}[a]
}

// ParseAxis reads "x", "y" or "z" in either case.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	case "z":
		return Z, nil
	}
	return 0, fmt.Errorf("axis %q: %w", s, ErrInvalidAxis)
}

// ParseAxes reads a set of axes written as letters, as in "xy". Letters
// other than x, y and z are ignored.
func ParseAxes(s string) []Axis {
	var axes []Axis
	s = strings.ToLower(s)
	for _, a := range []Axis{X, Y, Z} {
		if strings.Contains(s, a.String()) {
			axes = append(axes, a)
		}
	}
	return axes
}
