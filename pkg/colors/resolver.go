package colors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/acaird/rootplot/pkg/engine"
	"github.com/lucasb-eyer/go-colorful"
)

// Value is a color given either by name or by engine color number.
type Value struct {
	name  string
	id    engine.ColorID
	named bool
}

// Named returns a color Value referring to name.
func Named(name string) Value {
	return Value{name: name, named: true}
}

// Index returns a color Value that is already an engine color.
func Index(id engine.ColorID) Value {
	return Value{id: id}
}

// Parse reads s as an engine color number if it is an integer and as a
// color name otherwise.
func Parse(s string) Value {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return Index(engine.ColorID(n))
	}
	return Named(s)
}

// Name returns the color name, if v was given by name.
func (v Value) Name() (string, bool) {
	return v.name, v.named
}

// ID returns the engine color, if v was given by number.
func (v Value) ID() (engine.ColorID, bool) {
	return v.id, !v.named
}

func (v Value) String() string {
	if v.named {
		return v.name
	}
	return strconv.Itoa(int(v.id))
}

// Descriptor is the outcome of resolving a color Value.
type Descriptor struct {
	// Value is the input exactly as given.
	Value Value
	// ID is the engine color to use; only meaningful if HasID.
	ID    engine.ColorID
	HasID bool
	// RGB is the normalized color that was allocated, for named colors.
	RGB   colorful.Color
	Alpha float64
}

// Opaque reports whether the plain (non alpha-blended) color setters
// should be used.
func (d Descriptor) Opaque() bool {
	return d.Alpha == 1.0
}

func (d Descriptor) String() string {
	if !d.HasID {
		return fmt.Sprintf("%s (unresolved)", d.Value)
	}
	return fmt.Sprintf("%s -> %d (alpha %g)", d.Value, d.ID, d.Alpha)
}

// handle `gray(0.3)` color names
var grayRe = regexp.MustCompile(`^gr[ae]y\(((?:\d+(?:\.\d*)?|\.\d+))\)$`)

// Resolver maps color Values to engine colors through an allocator.
type Resolver struct {
	Alloc engine.ColorAllocator
}

func NewResolver(alloc engine.ColorAllocator) *Resolver {
	return &Resolver{Alloc: alloc}
}

// Resolve turns v into a Descriptor. Table names (any case), "#rrggbb"
// and "gray(x)" are allocated through the engine; engine numbers and
// names nobody knows come back unchanged with the ID of a number kept.
func (r *Resolver) Resolve(v Value, alpha float64) Descriptor {
	d := Descriptor{Value: v, Alpha: alpha}
	name, ok := v.Name()
	if !ok {
		d.ID, d.HasID = v.id, true
		return d
	}
	c, ok := rgbFromName(name)
	if !ok {
		return d
	}
	d.RGB = c
	d.ID = r.Alloc.GetColor(c.R, c.G, c.B)
	d.HasID = true
	return d
}

func rgbFromName(name string) (colorful.Color, bool) {
	if c, ok := Lookup(name); ok {
		return c, true
	}
	n := normalize(name)
	if strings.HasPrefix(n, "#") {
		c, err := colorful.Hex(n)
		if err != nil {
			return colorful.Color{}, false
		}
		return c, true
	}
	matches := grayRe.FindStringSubmatch(n)
	if len(matches) == 2 {
		grayValue, err := strconv.ParseFloat(matches[1], 64)
		if err != nil || grayValue > 1 {
			return colorful.Color{}, false
		}
		return colorful.Color{R: grayValue, G: grayValue, B: grayValue}, true
	}
	return colorful.Color{}, false
}
