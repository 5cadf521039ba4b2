package combat

import (
	"github.com/katalvlaran/frontier/pqueue"
	"github.com/katalvlaran/frontier/search"
)

// LeastMana returns the cheapest winning fight, measured in mana spent,
// for player against boss.
//
// States are expanded cheapest first. Spending never goes down from one
// round to the next, so the first winning state extracted is optimal.
// States where the player has died stay in the frontier until extracted and
// are then dropped without expansion.
//
// Returns search.ErrSearchExhausted if no sequence of spells wins.
func LeastMana(boss Boss, player Player, opts ...Option) (*State, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	problem := search.Funcs[State]{
		Goal:  State.Won,
		Next:  func(s State) ([]State, error) { return s.Next(o.HardMode), nil },
		Prune: State.Lost,
	}
	seed := State{Player: player, Boss: boss}
	res, err := search.Run([]State{seed}, problem, pqueue.ByPreference[State](), o.Search...)
	if err != nil {
		return nil, err
	}

	return &res.State, nil
}
