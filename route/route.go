package route

import (
	"github.com/katalvlaran/frontier/pqueue"
	"github.com/katalvlaran/frontier/search"
)

// Shortest returns the shortest path that visits every city in t exactly
// once, starting anywhere and ending anywhere.
//
// One seed path is placed per city and paths are expanded best-first by
// PreferableTo. Leg lengths are non-negative, so path length never decreases
// along an extension and the first complete path extracted is optimal.
//
// Returns ErrEmptyTable for a table without cities, ErrMissingDistance when a
// leg is absent (unless WithSkipMissing), or search.ErrSearchExhausted when
// no complete path exists.
func Shortest(t *Table, opts ...Option) (*Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if t == nil || t.Len() == 0 {
		return nil, ErrEmptyTable
	}

	cities := t.Cities()
	seeds := make([]Path, 0, len(cities))
	for _, c := range cities {
		p, err := Start(t, c)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, p)
	}

	problem := search.Funcs[Path]{
		Goal: func(p Path) bool { return p.Visited() == len(cities) },
		Next: func(p Path) ([]Path, error) { return p.Extend(o.SkipMissing) },
	}
	res, err := search.Run(seeds, problem, pqueue.ByPreference[Path](), o.Search...)
	if err != nil {
		return nil, err
	}

	return &res.State, nil
}
