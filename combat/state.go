package combat

import "slices"

// State is a snapshot of a fight between player turns.
// States are values: every transition copies the effect and history slices.
type State struct {
	Player  Player
	Boss    Boss
	Effects []Effect
	Spent   int     // cumulative mana paid for spells
	History []Spell // spells cast so far, in order
}

// Won reports whether the boss is dead.
func (s State) Won() bool { return s.Boss.HP <= 0 }

// Lost reports whether the player is dead.
func (s State) Lost() bool { return s.Player.HP <= 0 }

func (s State) over() bool { return s.Won() || s.Lost() }

// PreferableTo orders states by mana spent, cheapest first.
func (s State) PreferableTo(o State) bool { return s.Spent < o.Spent }

func (s State) clone() State {
	s.Effects = slices.Clone(s.Effects)
	s.History = slices.Clone(s.History)
	return s
}

// active reports whether spell has an effect that will still be running
// after the next start-of-turn tick.
func (s State) active(spell Spell) bool {
	for _, e := range s.Effects {
		if e.Spell == spell && e.Timer > 1 {
			return true
		}
	}

	return false
}

// Next returns one successor per spell that is not already active, each the
// result of a full round with that spell, plus one round where nothing is
// cast. Rounds with no spell, or with a spell the player cannot afford once
// effects have resolved, end with the player dead.
func (s State) Next(hard bool) []State {
	out := make([]State, 0, len(spellbook)+1)
	for _, sp := range Spells() {
		if s.active(sp) {
			continue
		}
		out = append(out, s.round(sp, true, hard))
	}

	return append(out, s.round(0, false, hard))
}

// round plays one player turn followed by one boss turn.
func (s State) round(spell Spell, cast, hard bool) State {
	st := s.clone()

	// Player turn.
	if hard {
		st.Player.HP--
		if st.over() {
			return st
		}
	}
	st.tick()
	if st.over() {
		return st
	}
	if !cast || spell.Cost() > st.Player.Mana {
		st.Player.HP = 0
		return st
	}
	st.Player.Mana -= spell.Cost()
	st.Spent += spell.Cost()
	st.History = append(st.History, spell)
	st.cast(spell)
	if st.over() {
		return st
	}

	// Boss turn.
	st.tick()
	if st.over() {
		return st
	}
	st.Player.HP -= max(st.Boss.Damage-st.Player.Armor, 1)

	return st
}

// tick applies every active effect once, then ages and expires them.
// Armor only lasts while Shield is applied, so it is reset first.
func (s *State) tick() {
	s.Player.Armor = 0
	kept := s.Effects[:0]
	for _, e := range s.Effects {
		switch e.Spell {
		case Shield:
			s.Player.Armor += 7
		case Poison:
			s.Boss.HP -= 3
		case Recharge:
			s.Player.Mana += 101
		}
		if e.Timer--; e.Timer > 0 {
			kept = append(kept, e)
		}
	}
	s.Effects = kept
}

// cast applies the immediate part of spell.
func (s *State) cast(spell Spell) {
	switch spell {
	case MagicMissile:
		s.Boss.HP -= 4
	case Drain:
		s.Boss.HP -= 2
		s.Player.HP += 2
	default:
		s.Effects = append(s.Effects, Effect{Spell: spell, Timer: spell.Duration()})
	}
}
