package route

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// Table is a symmetric distance table between named cities.
// Each city gets a dense index on first sight; paths track visits by index.
type Table struct {
	index map[string]uint32
	legs  map[string]map[string]int
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		index: make(map[string]uint32),
		legs:  make(map[string]map[string]int),
	}
}

// AddLeg records the distance between a and b in both directions.
// A later call for the same pair overwrites the earlier distance.
func (t *Table) AddLeg(a, b string, d int) error {
	if d < 0 {
		return fmt.Errorf("%w: %s to %s = %d", ErrNegativeDistance, a, b, d)
	}
	t.addCity(a)
	t.addCity(b)
	t.legs[a][b] = d
	t.legs[b][a] = d

	return nil
}

// AddCity registers a city without any legs.
func (t *Table) AddCity(name string) { t.addCity(name) }

func (t *Table) addCity(name string) {
	if _, ok := t.index[name]; ok {
		return
	}
	t.index[name] = uint32(len(t.index))
	t.legs[name] = make(map[string]int)
}

// Distance returns the leg length between a and b.
func (t *Table) Distance(a, b string) (int, bool) {
	d, ok := t.legs[a][b]
	return d, ok
}

// Cities returns every city name in sorted order.
func (t *Table) Cities() []string {
	names := maps.Keys(t.index)
	slices.Sort(names)

	return names
}

// Len returns the number of cities.
func (t *Table) Len() int { return len(t.index) }

func (t *Table) id(name string) (uint32, bool) {
	i, ok := t.index[name]
	return i, ok
}
