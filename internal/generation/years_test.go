package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseYear(t *testing.T) {
	tests := []struct {
		label  string
		want   int
		wantOK bool
	}{
		{"1939 AD", 1939, true},
		{"400 BC", 400, true},
		{"  2077", 2077, true},
		{"1066", 1066, true},
		{"c. 1200", 0, false},
		{"", 0, false},
		{"Year Zero", 0, false},
		{"9999 AD", 9999, true},
		{"10000 AD", 0, false},
		{"9223372036854775807", 0, false},
		{"99999999999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := ParseYear(tt.label)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestYearBounds(t *testing.T) {
	tests := []struct {
		name               string
		start, end         string
		wantStart, wantEnd int
		wantRange          int
	}{
		{"both parse", "1900 AD", "1905 AD", 1900, 1905, 5},
		{"defaults", "dawn", "dusk", DefaultStartYear, DefaultEndYear, 10},
		{"start only", "2035", "later", 2035, DefaultEndYear, 5},
		{"inverted clamps range", "1950", "1940", 1950, 1940, 1},
		{"equal clamps range", "1950", "1950", 1950, 1950, 1},
		{"oversized start falls back", "9223372036854775807", "2045", DefaultStartYear, 2045, 15},
		{"oversized end falls back", "2000", "1000000", 2000, DefaultEndYear, 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, yearRange := YearBounds(tt.start, tt.end)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.Equal(t, tt.wantRange, yearRange)
		})
	}
}
