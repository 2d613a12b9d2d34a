package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOverlaps(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical", at(9), at(17), at(9), at(17), true},
		{"partial front", at(9), at(17), at(7), at(10), true},
		{"partial back", at(9), at(17), at(16), at(20), true},
		{"fully contained", at(9), at(17), at(11), at(13), true},
		{"fully containing", at(11), at(13), at(9), at(17), true},
		{"disjoint before", at(9), at(12), at(13), at(17), false},
		{"disjoint after", at(13), at(17), at(9), at(12), false},
		{"touching end to start", at(9), at(12), at(12), at(17), false},
		{"touching start to end", at(12), at(17), at(9), at(12), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Overlaps(tt.s1, tt.e1, tt.s2, tt.e2))
			require.Equal(t, tt.want, Overlaps(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
