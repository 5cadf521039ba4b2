package search_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/frontier/pqueue"
	"github.com/katalvlaran/frontier/search"
)

// hop is a walk over a small directed weighted graph.
type hop struct {
	Node string
	Cost int
}

type edge struct {
	to string
	w  int
}

// walk is a Problem over an explicit adjacency map, reaching target.
type walk struct {
	adj    map[string][]edge
	target string
}

func (w walk) IsGoal(h hop) bool { return h.Node == w.target }

func (w walk) Expand(h hop) ([]hop, error) {
	out := make([]hop, 0, len(w.adj[h.Node]))
	for _, e := range w.adj[h.Node] {
		out = append(out, hop{Node: e.to, Cost: h.Cost + e.w})
	}
	return out, nil
}

var byCost = pqueue.Then(
	pqueue.By(func(h hop) int { return h.Cost }),
	pqueue.By(func(h hop) string { return h.Node }),
)

// diamond: A→B→D, A→C→D, D→E, all weight 1.
func diamond() walk {
	return walk{
		adj: map[string][]edge{
			"A": {{"B", 1}, {"C", 1}},
			"B": {{"D", 1}},
			"C": {{"D", 1}},
			"D": {{"E", 1}},
		},
		target: "E",
	}
}

// RunSuite groups tests for the best-first driver.
type RunSuite struct {
	suite.Suite
}

func (s *RunSuite) TestInvalidInput() {
	_, err := search.Run[hop](nil, nil, byCost)
	s.ErrorIs(err, search.ErrNilProblem)

	_, err = search.Run[hop](nil, diamond(), nil)
	s.ErrorIs(err, search.ErrNilLess)

	_, err = search.Run([]hop{{"A", 0}}, diamond(), byCost, search.WithInitialCapacity(-3))
	s.ErrorIs(err, search.ErrOptionViolation)
}

func (s *RunSuite) TestNoSeedsIsExhausted() {
	res, err := search.Run(nil, diamond(), byCost)
	s.Nil(res)
	s.ErrorIs(err, search.ErrSearchExhausted)
}

// TestCheapestRoute: two routes to T, the longer in hops is cheaper.
func (s *RunSuite) TestCheapestRoute() {
	w := walk{
		adj: map[string][]edge{
			"S": {{"T", 10}, {"X", 2}},
			"X": {{"Y", 2}},
			"Y": {{"T", 2}},
		},
		target: "T",
	}
	res, err := search.Run([]hop{{"S", 0}}, w, byCost)
	require.NoError(s.T(), err)
	s.Equal(hop{"T", 6}, res.State)
}

// TestDisconnectedExhausts: the target lives in another component.
func (s *RunSuite) TestDisconnectedExhausts() {
	w := walk{
		adj: map[string][]edge{
			"A": {{"B", 1}},
			"B": {{"A", 1}},
			"C": {{"D", 1}},
		},
		target: "D",
	}
	// The A↔B cycle never ends on its own; prune it after a few laps.
	p := search.Funcs[hop]{
		Goal:  w.IsGoal,
		Next:  w.Expand,
		Prune: func(h hop) bool { return h.Cost > 5 },
	}
	res, err := search.Run([]hop{{"A", 0}}, p, byCost)
	s.Nil(res)
	s.ErrorIs(err, search.ErrSearchExhausted)
}

func (s *RunSuite) TestExpandErrorPropagates() {
	errBoom := errors.New("missing edge")
	p := search.Funcs[int]{
		Goal: func(int) bool { return false },
		Next: func(n int) ([]int, error) {
			if n == 2 {
				return nil, errBoom
			}
			return []int{n + 1}, nil
		},
	}
	res, err := search.Run([]int{0}, p, pqueue.Ordered[int]())
	s.Nil(res)
	s.ErrorIs(err, errBoom)
}

// TestDeadStatesNeverWin: a dead state that also satisfies the goal test is
// still discarded, and the live goal behind it is returned.
func (s *RunSuite) TestDeadStatesNeverWin() {
	type st struct {
		cost  int
		dead  bool
		final bool
	}
	p := search.Funcs[st]{
		Goal: func(x st) bool { return x.final },
		Next: func(x st) ([]st, error) {
			return []st{{cost: 1, dead: true, final: true}, {cost: 2, final: true}}, nil
		},
		Prune: func(x st) bool { return x.dead },
	}
	res, err := search.Run([]st{{}}, p, pqueue.By(func(x st) int { return x.cost }))
	require.NoError(s.T(), err)
	s.Equal(2, res.State.cost)
	s.Equal(1, res.Discarded)
	s.Equal(3, res.Extracted)
}

func (s *RunSuite) TestTreeSearchExpandsDuplicates() {
	res, err := search.Run([]hop{{"A", 0}}, diamond(), byCost)
	require.NoError(s.T(), err)
	s.Equal(hop{"E", 3}, res.State)
	s.Equal(5, res.Expanded) // D reached twice, expanded twice
	s.Equal(6, res.Extracted)
	s.Equal(7, res.Inserted)
	s.Equal(0, res.Skipped)
}

func (s *RunSuite) TestClosedSetSkipsDuplicates() {
	res, err := search.Run([]hop{{"A", 0}}, diamond(), byCost, search.WithClosedSet())
	require.NoError(s.T(), err)
	s.Equal(hop{"E", 3}, res.State)
	s.Equal(4, res.Expanded)
	s.Equal(1, res.Skipped)
	s.Equal(6, res.Inserted)
}

func (s *RunSuite) TestHooksMatchCounters() {
	var inserted, extracted int
	res, err := search.Run([]hop{{"A", 0}}, diamond(), byCost,
		search.WithOnInsert(func(any) { inserted++ }),
		search.WithOnExtract(func(any) { extracted++ }),
		search.WithInitialCapacity(16),
	)
	require.NoError(s.T(), err)
	s.Equal(res.Inserted, inserted)
	s.Equal(res.Extracted, extracted)
	s.GreaterOrEqual(res.MaxFrontier, 2)
}

func (s *RunSuite) TestMultipleSeeds() {
	// Seeding from both A and C: C is closer to E.
	w := diamond()
	res, err := search.Run([]hop{{"A", 0}, {"C", 0}}, w, byCost)
	require.NoError(s.T(), err)
	s.Equal(hop{"E", 2}, res.State)
}

func (s *RunSuite) TestLogger() {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := search.Run([]hop{{"A", 0}}, diamond(), byCost, search.WithLogger(l))
	require.NoError(s.T(), err)
	s.Contains(buf.String(), "search started")
	s.Contains(buf.String(), "search reached goal")

	buf.Reset()
	_, err = search.Run[hop](nil, diamond(), byCost, search.WithLogger(l))
	s.ErrorIs(err, search.ErrSearchExhausted)
	s.Contains(buf.String(), "search failed")
}

func TestRunSuite(t *testing.T) {
	suite.Run(t, new(RunSuite))
}
