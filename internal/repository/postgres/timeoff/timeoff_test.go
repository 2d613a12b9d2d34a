package timeoff

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRangesOverlap(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name           string
		s1, e1, s2, e2 time.Time
		want           bool
	}{
		{"identical", day(10), day(12), day(10), day(12), true},
		{"front edge shared", day(10), day(12), day(8), day(10), true},
		{"back edge shared", day(10), day(12), day(12), day(14), true},
		{"straddles start", day(10), day(12), day(9), day(11), true},
		{"straddles end", day(10), day(12), day(11), day(13), true},
		{"fully inside", day(10), day(15), day(11), day(13), true},
		{"fully containing", day(11), day(13), day(10), day(15), true},
		{"single day inside", day(10), day(15), day(12), day(12), true},
		{"disjoint before", day(10), day(12), day(7), day(9), false},
		{"disjoint after", day(10), day(12), day(13), day(15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, RangesOverlap(tt.s1, tt.e1, tt.s2, tt.e2))
			require.Equal(t, tt.want, RangesOverlap(tt.s2, tt.e2, tt.s1, tt.e1))
		})
	}
}
