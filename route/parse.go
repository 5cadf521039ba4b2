package route

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine splits a line of the form "London to Dublin = 464".
func ParseLine(line string) (from, to string, dist int, err error) {
	cities, d, ok := strings.Cut(line, " = ")
	if !ok || strings.Contains(d, " = ") {
		return "", "", 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	from, to, ok = strings.Cut(cities, " to ")
	if !ok || from == "" || to == "" || strings.Contains(to, " to ") {
		return "", "", 0, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	dist, err = strconv.Atoi(strings.TrimSpace(d))
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: %q: %v", ErrMalformedLine, line, err)
	}

	return from, to, dist, nil
}

// Parse builds a table from distance lines. Blank lines are ignored.
func Parse(lines []string) (*Table, error) {
	t := NewTable()
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		from, to, d, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		if err = t.AddLeg(from, to, d); err != nil {
			return nil, err
		}
	}

	return t, nil
}
