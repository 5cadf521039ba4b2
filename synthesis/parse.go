package synthesis

import (
	"fmt"
	"strings"
)

// ParseRule parses "H => HO".
func ParseRule(line string) (Rule, error) {
	from, to, ok := strings.Cut(line, " => ")
	if !ok || from == "" || to == "" || strings.Contains(to, " => ") {
		return Rule{}, fmt.Errorf("%w: %q", ErrMalformedRule, line)
	}

	return Rule{From: from, To: to}, nil
}

// Parse reads rules followed by the molecule on the last non-blank line.
func Parse(lines []string) ([]Rule, string, error) {
	var kept []string
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			kept = append(kept, strings.TrimSpace(l))
		}
	}
	if len(kept) == 0 || strings.Contains(kept[len(kept)-1], "=>") {
		return nil, "", ErrNoMolecule
	}

	molecule := kept[len(kept)-1]
	rules := make([]Rule, 0, len(kept)-1)
	for _, l := range kept[:len(kept)-1] {
		r, err := ParseRule(l)
		if err != nil {
			return nil, "", err
		}
		rules = append(rules, r)
	}

	return rules, molecule, nil
}
