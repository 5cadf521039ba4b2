// Package combat finds the least mana a wizard must spend to defeat a boss
// in a turn-based duel.
//
// Each round the player casts exactly one spell, then the boss attacks for
// its damage minus the player's armor (at least 1). Before both the player's
// and the boss's turn, active effects apply and age:
//
//	Magic Missile  53 mana  4 damage
//	Drain          73 mana  2 damage, heals 2
//	Shield        113 mana  +7 armor for 6 turns
//	Poison        173 mana  3 damage per turn for 6 turns
//	Recharge      229 mana  +101 mana per turn for 5 turns
//
// A spell whose effect is still running cannot be cast again. Running out of
// mana, or declining to cast, loses the fight.
//
// LeastMana explores fights as a best-first search over State snapshots
// ordered by mana spent. Lost fights are pruned lazily when extracted.
// WithHardMode drains 1 HP from the player at the start of each of their turns.
package combat
