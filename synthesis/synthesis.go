package synthesis

import (
	"strings"

	"github.com/katalvlaran/frontier/pqueue"
	"github.com/katalvlaran/frontier/search"
)

// Replacements returns one molecule per occurrence of find in molecule,
// with that single occurrence replaced by place. Occurrences are the
// non-overlapping matches strings.Split finds, scanning left to right.
func Replacements(molecule, find, place string) []string {
	if find == "" {
		return nil
	}
	bits := strings.Split(molecule, find)
	if len(bits) == 1 {
		return nil
	}
	out := make([]string, 0, len(bits)-1)
	for i := 0; i < len(bits)-1; i++ {
		out = append(out,
			strings.Join(bits[:i+1], find)+place+strings.Join(bits[i+1:], find))
	}

	return out
}

// step applies every rule at every position, keeping each distinct result
// once, in first-seen order.
func step(molecule string, rules []Rule) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range rules {
		for _, m := range Replacements(molecule, r.From, r.To) {
			if _, dup := seen[m]; dup {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}

	return out
}

// Calibrate counts the distinct molecules reachable from molecule with
// exactly one forward replacement.
func Calibrate(rules []Rule, molecule string) int {
	distinct := make(map[string]bool)
	for _, r := range rules {
		for _, m := range Replacements(molecule, r.From, r.To) {
			distinct[m] = true
		}
	}

	return len(distinct)
}

// Fewest returns the number of replacements needed to build target from
// Base, found by searching backwards from target.
func Fewest(rules []Rule, target string, opts ...search.Option) (int, error) {
	return FewestFrom(rules, target, Base, opts...)
}

// FewestFrom is Fewest with an explicit base symbol.
//
// Candidates are expanded shortest-molecule first. Each expansion applies
// every reversed rule wherever it matches and yields one candidate per
// distinct molecule. The first candidate equal to base ends the search.
//
// Returns search.ErrSearchExhausted if no reverse derivation reaches base.
func FewestFrom(rules []Rule, target, base string, opts ...search.Option) (int, error) {
	reversed := make([]Rule, len(rules))
	for i, r := range rules {
		reversed[i] = r.Reverse()
	}

	problem := search.Funcs[Candidate]{
		Goal: func(c Candidate) bool { return c.Molecule == base },
		Next: func(c Candidate) ([]Candidate, error) {
			next := step(c.Molecule, reversed)
			out := make([]Candidate, len(next))
			for i, m := range next {
				out[i] = Candidate{Molecule: m, Steps: c.Steps + 1}
			}
			return out, nil
		},
	}
	seed := Candidate{Molecule: target}
	res, err := search.Run([]Candidate{seed}, problem, pqueue.ByPreference[Candidate](), opts...)
	if err != nil {
		return 0, err
	}

	return res.State.Steps, nil
}
