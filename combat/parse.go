package combat

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBoss reads boss stats from lines such as:
//
//	Hit Points: 58
//	Damage: 9
//
// Blank lines are ignored; both stats are required.
func ParseBoss(lines []string) (Boss, error) {
	var b Boss
	var haveHP, haveDamage bool
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		key, val, ok := strings.Cut(line, ": ")
		if !ok {
			return Boss{}, fmt.Errorf("%w: %q", ErrMalformedStats, line)
		}
		n, err := strconv.Atoi(val)
		if err != nil {
			return Boss{}, fmt.Errorf("%w: %q: %v", ErrMalformedStats, line, err)
		}
		switch key {
		case "Hit Points":
			b.HP, haveHP = n, true
		case "Damage":
			b.Damage, haveDamage = n, true
		default:
			return Boss{}, fmt.Errorf("%w: unknown stat %q", ErrMalformedStats, key)
		}
	}
	if !haveHP || !haveDamage {
		return Boss{}, fmt.Errorf("%w: need both Hit Points and Damage", ErrMalformedStats)
	}

	return b, nil
}
