package route

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
)

// Path is a partial route: the cities visited so far, in order, without
// repeats. Paths are immutable once built; Extend returns fresh values.
type Path struct {
	Visits []string
	End    string
	Length int

	seen  *roaring.Bitmap // city indexes in Visits
	table *Table
}

// Start returns the zero-length path standing at city.
func Start(t *Table, city string) (Path, error) {
	id, ok := t.id(city)
	if !ok {
		return Path{}, fmt.Errorf("%w: %q", ErrUnknownCity, city)
	}

	return Path{
		Visits: []string{city},
		End:    city,
		seen:   roaring.BitmapOf(id),
		table:  t,
	}, nil
}

// Visited returns the number of distinct cities on the path.
func (p Path) Visited() int { return int(p.seen.GetCardinality()) }

// Has reports whether city is already on the path.
func (p Path) Has(city string) bool {
	id, ok := p.table.id(city)
	return ok && p.seen.Contains(id)
}

// PreferableTo orders paths for the frontier: shorter wins, and on equal
// length the path covering more cities wins. Full ties are not preferable
// either way, so the queue keeps the incumbent in place.
func (p Path) PreferableTo(o Path) bool {
	if p.Length != o.Length {
		return p.Length < o.Length
	}

	return p.Visited() > o.Visited()
}

// Extend returns one path per unvisited city, in city-name order.
// A missing leg fails with ErrMissingDistance unless skipMissing is set,
// in which case that city is simply unreachable from here.
func (p Path) Extend(skipMissing bool) ([]Path, error) {
	cities := p.table.Cities()
	out := make([]Path, 0, len(cities)-p.Visited())
	for _, next := range cities {
		if p.Has(next) {
			continue
		}
		leg, ok := p.table.Distance(p.End, next)
		if !ok {
			if skipMissing {
				continue
			}
			return nil, fmt.Errorf("%w: %s to %s", ErrMissingDistance, p.End, next)
		}

		id, _ := p.table.id(next)
		seen := p.seen.Clone()
		seen.Add(id)
		out = append(out, Path{
			Visits: append(slices.Clip(p.Visits), next),
			End:    next,
			Length: p.Length + leg,
			seen:   seen,
			table:  p.table,
		})
	}

	return out, nil
}

// String renders the path as "A -> B -> C = 42".
func (p Path) String() string {
	return fmt.Sprintf("%s = %d", strings.Join(p.Visits, " -> "), p.Length)
}
