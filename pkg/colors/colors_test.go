package colors

import (
	"reflect"
	"strings"
	"testing"

	"github.com/acaird/rootplot/pkg/engine"
)

// fakeAlloc hands out ids from 1000 and records what it was asked for.
type fakeAlloc struct {
	ids   map[[3]float64]engine.ColorID
	calls int
}

func (f *fakeAlloc) GetColor(r, g, b float64) engine.ColorID {
	f.calls++
	if f.ids == nil {
		f.ids = map[[3]float64]engine.ColorID{}
	}
	key := [3]float64{r, g, b}
	if id, ok := f.ids[key]; ok {
		return id
	}
	id := engine.ColorID(1000 + len(f.ids))
	f.ids[key] = id
	return id
}

func TestTableSize(t *testing.T) {
	if len(Table) != 140 {
		t.Errorf("table has %d colors, want 140", len(Table))
	}
}

func TestEveryNameAnyCase(t *testing.T) {
	for name, want := range Table {
		for _, n := range []string{name, strings.ToUpper(name), " " + strings.ToUpper(name[:1]) + name[1:]} {
			got, ok := RGB255(n)
			if !ok || !reflect.DeepEqual(got, want) {
				t.Errorf("RGB255(%q) = %v, %v; want %v", n, got, ok, want)
			}
		}
		c, _ := Lookup(name)
		if c.R != float64(want[0])/255 || c.G != float64(want[1])/255 || c.B != float64(want[2])/255 {
			t.Errorf("Lookup(%q) = %v, not normalized from %v", name, c, want)
		}
	}
}

func TestNoColor(t *testing.T) {
	if _, ok := Lookup("not a color"); ok {
		t.Error("found a color that does not exist")
	}
}

func TestOrange(t *testing.T) {
	rgb, _ := RGB255("orange")
	if !reflect.DeepEqual(rgb, [3]uint8{255, 165, 0}) {
		t.Error(rgb)
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(Table) {
		t.Fatalf("%d names", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted at %d: %q %q", i, names[i-1], names[i])
		}
	}
}

func TestResolveNamed(t *testing.T) {
	a := &fakeAlloc{}
	r := NewResolver(a)
	d1 := r.Resolve(Named("SteelBlue"), 1)
	d2 := r.Resolve(Named("steelblue"), 0.3)
	if !d1.HasID || !d2.HasID {
		t.Fatal("steelblue did not resolve")
	}
	if d1.ID != d2.ID {
		t.Errorf("same color got ids %d and %d", d1.ID, d2.ID)
	}
	if !d1.Opaque() || d2.Opaque() {
		t.Errorf("opaque = %v/%v", d1.Opaque(), d2.Opaque())
	}
	if a.calls != 2 || len(a.ids) != 1 {
		t.Errorf("allocator calls=%d distinct=%d", a.calls, len(a.ids))
	}
}

func TestResolvePassThrough(t *testing.T) {
	a := &fakeAlloc{}
	r := NewResolver(a)

	v := Named("octarine")
	d := r.Resolve(v, 1)
	if d.HasID || d.Value != v {
		t.Errorf("unknown name: %+v", d)
	}

	d = r.Resolve(Index(engine.Blue), 2.5)
	if !d.HasID || d.ID != engine.Blue || d.Alpha != 2.5 {
		t.Errorf("index: %+v", d)
	}
	if a.calls != 0 {
		t.Errorf("allocator called %d times", a.calls)
	}
}

func TestResolveHexAndGray(t *testing.T) {
	a := &fakeAlloc{}
	r := NewResolver(a)

	if d := r.Resolve(Named("#FF0000"), 1); !d.HasID || d.RGB.R != 1 || d.RGB.G != 0 {
		t.Errorf("hex: %+v", d)
	}
	if d := r.Resolve(Named("gray(0.5)"), 1); !d.HasID || d.RGB.R != 0.5 || d.RGB.B != 0.5 {
		t.Errorf("gray: %+v", d)
	}
	if d := r.Resolve(Named("grey(2)"), 1); d.HasID {
		t.Errorf("grey(2) resolved: %+v", d)
	}
}

func TestParse(t *testing.T) {
	if id, ok := Parse("4").ID(); !ok || id != 4 {
		t.Errorf("Parse(4) = %d, %v", id, ok)
	}
	if name, ok := Parse("red").Name(); !ok || name != "red" {
		t.Errorf("Parse(red) = %q, %v", name, ok)
	}
}
