package combat

import (
	"errors"

	"github.com/katalvlaran/frontier/search"
)

// ErrMalformedStats is returned when boss stats cannot be parsed.
var ErrMalformedStats = errors.New("combat: malformed stats")

// Spell identifies one of the five spells the player knows.
type Spell int

const (
	MagicMissile Spell = iota
	Drain
	Shield
	Poison
	Recharge
)

type spellInfo struct {
	name     string
	cost     int
	duration int // turns an effect lasts; 0 for instant spells
}

var spellbook = [...]spellInfo{
	MagicMissile: {"Magic Missile", 53, 0},
	Drain:        {"Drain", 73, 0},
	Shield:       {"Shield", 113, 6},
	Poison:       {"Poison", 173, 6},
	Recharge:     {"Recharge", 229, 5},
}

// Spells lists every spell in spellbook order.
func Spells() []Spell {
	return []Spell{MagicMissile, Drain, Shield, Poison, Recharge}
}

func (s Spell) String() string { return spellbook[s].name }

// Cost is the mana paid to cast s.
func (s Spell) Cost() int { return spellbook[s].cost }

// Duration is the number of turns the effect of s lasts, 0 if instant.
func (s Spell) Duration() int { return spellbook[s].duration }

// Player stats. Armor is recomputed every turn from active effects.
type Player struct {
	HP    int
	Mana  int
	Armor int
}

// Boss stats.
type Boss struct {
	HP     int
	Damage int
}

// Effect is an active spell effect with the turns it has left.
type Effect struct {
	Spell Spell
	Timer int
}

// Option configures LeastMana.
type Option func(*Options)

// Options holds combat rules and forwarded search options.
type Options struct {
	// HardMode costs the player 1 HP at the start of each of their turns.
	HardMode bool

	// Search is forwarded to search.Run.
	Search []search.Option
}

// DefaultOptions returns normal-difficulty rules.
func DefaultOptions() Options {
	return Options{HardMode: false}
}

// WithHardMode enables the 1 HP drain per player turn.
func WithHardMode() Option {
	return func(o *Options) { o.HardMode = true }
}

// WithSearch forwards options to the underlying search driver.
func WithSearch(opts ...search.Option) Option {
	return func(o *Options) { o.Search = append(o.Search, opts...) }
}

// DefaultPlayer is the wizard's starting stats.
func DefaultPlayer() Player {
	return Player{HP: 50, Mana: 500}
}
