package synthesis

import "errors"

// Base is the symbol every molecule is synthesized from.
const Base = "e"

// Sentinel errors for rule parsing.
var (
	// ErrMalformedRule is returned for lines not shaped like "H => HO".
	ErrMalformedRule = errors.New("synthesis: malformed rule")

	// ErrNoMolecule is returned when the input has no target molecule line.
	ErrNoMolecule = errors.New("synthesis: missing molecule")
)

// Rule is one production: From may be replaced by To.
type Rule struct {
	From string
	To   string
}

// Reverse returns the rule run backwards, To => From.
func (r Rule) Reverse() Rule { return Rule{From: r.To, To: r.From} }

// Candidate is an intermediate molecule in a reverse derivation, with the
// number of replacements applied to reach it from the target.
type Candidate struct {
	Molecule string
	Steps    int
}

// PreferableTo orders candidates by molecule length alone: shorter is
// assumed closer to the base symbol. This is a heuristic, not an admissible
// bound, so the step count found is not guaranteed minimal for every rule set.
func (c Candidate) PreferableTo(o Candidate) bool {
	return len(c.Molecule) < len(o.Molecule)
}
