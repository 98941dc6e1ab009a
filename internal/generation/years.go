package generation

import (
	"regexp"
	"strconv"
)

const (
	DefaultStartYear = 2030
	DefaultEndYear   = 2040
	MaxYear          = 9999
)

var leadingDigits = regexp.MustCompile(`^\s*(\d+)`)

// ParseYear extracts the leading integer from a year label such as
// "1939 AD" or "400 BC". The era suffix is ignored. ok is false when the
// label does not start with digits or names a year past MaxYear.
func ParseYear(label string) (year int, ok bool) {
	m := leadingDigits.FindStringSubmatch(label)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n > MaxYear {
		return 0, false
	}
	return n, true
}

// YearBounds resolves the numeric start and end years plus the range used
// for progression. The range is at least 1.
func YearBounds(startLabel, endLabel string) (start, end, yearRange int) {
	start, ok := ParseYear(startLabel)
	if !ok {
		start = DefaultStartYear
	}
	end, ok = ParseYear(endLabel)
	if !ok {
		end = DefaultEndYear
	}
	yearRange = end - start
	if yearRange < 1 {
		yearRange = 1
	}
	return start, end, yearRange
}
