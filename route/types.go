package route

import (
	"errors"

	"github.com/katalvlaran/frontier/search"
)

// Sentinel errors for route planning.
var (
	// ErrMissingDistance is returned when a path tries to extend along a leg
	// the table does not know. It indicates malformed input.
	ErrMissingDistance = errors.New("route: no distance between cities")

	// ErrNegativeDistance is returned when a leg with a negative length is added.
	ErrNegativeDistance = errors.New("route: negative distance")

	// ErrEmptyTable is returned when planning over a table with no cities.
	ErrEmptyTable = errors.New("route: table has no cities")

	// ErrUnknownCity is returned when starting a path at a city not in the table.
	ErrUnknownCity = errors.New("route: unknown city")

	// ErrMalformedLine is returned by the parser for lines not shaped
	// like "A to B = 12".
	ErrMalformedLine = errors.New("route: malformed line")
)

// Option configures Shortest.
type Option func(*Options)

// Options holds route planning parameters.
type Options struct {
	// SkipMissing treats absent legs as "no road" instead of failing with
	// ErrMissingDistance. Disconnected tables then exhaust the search.
	SkipMissing bool

	// Search is forwarded to search.Run.
	Search []search.Option
}

// DefaultOptions returns strict options: every leg must exist.
func DefaultOptions() Options {
	return Options{SkipMissing: false}
}

// WithSkipMissing allows sparse tables.
func WithSkipMissing() Option {
	return func(o *Options) { o.SkipMissing = true }
}

// WithSearch forwards options to the underlying search driver.
func WithSearch(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}
