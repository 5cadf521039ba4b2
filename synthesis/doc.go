// Package synthesis counts the replacement steps that build a molecule from
// a base symbol, given string production rules such as "H => HO".
//
// Fewest searches backwards: starting at the target molecule it applies the
// rules in reverse, everywhere they match, until only the base symbol is
// left. Candidates are ordered by molecule length, shortest first.
//
// The length ordering is a heuristic. Reverse rules may grow or shrink a
// molecule by any amount, so shorter is not provably closer to the base, and
// the step count returned is the first derivation found under that ordering.
//
// Calibrate answers the simpler question of how many distinct molecules one
// forward replacement can produce.
package synthesis
