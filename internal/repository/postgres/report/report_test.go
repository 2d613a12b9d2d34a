package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func sampleRows() []EntryRow {
	base := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	return []EntryRow{
		{UserID: 1, FirstName: strPtr("Ava"), LastName: strPtr("Reed"), EntryID: 10, ClockInTime: base, TotalHours: f64Ptr(8)},
		{UserID: 2, FirstName: strPtr("Ben"), LastName: strPtr("Cole"), EntryID: 11, ClockInTime: base.Add(time.Hour), TotalHours: f64Ptr(4)},
		{UserID: 1, FirstName: strPtr("Ava"), LastName: strPtr("Reed"), EntryID: 12, ClockInTime: base.Add(24 * time.Hour), TotalHours: f64Ptr(6.5)},
		{UserID: 3, FirstName: strPtr("Cam"), LastName: strPtr("Diaz"), EntryID: 13, ClockInTime: base.Add(2 * time.Hour), TotalHours: nil},
	}
}

func TestGroupHours(t *testing.T) {
	groups := GroupHours(sampleRows())

	require.Len(t, groups, 3)

	require.Equal(t, 1, groups[0].UserID)
	require.Equal(t, 14.5, groups[0].TotalHours)
	require.Len(t, groups[0].Entries, 2)

	require.Equal(t, 2, groups[1].UserID)
	require.Equal(t, 4.0, groups[1].TotalHours)

	// An entry still open counts as zero hours but is listed.
	require.Equal(t, 3, groups[2].UserID)
	require.Equal(t, 0.0, groups[2].TotalHours)
	require.Len(t, groups[2].Entries, 1)
}

func TestGroupHoursEmpty(t *testing.T) {
	require.Empty(t, GroupHours(nil))
}

func TestGroupCosts(t *testing.T) {
	groups := GroupCosts(sampleRows(), 20)

	require.Len(t, groups, 3)

	require.Equal(t, 1, groups[0].UserID)
	require.Equal(t, 14.5, groups[0].TotalHours)
	require.Equal(t, 290.0, groups[0].LaborCost)
	require.Equal(t, 2, groups[0].EntryCount)

	require.Equal(t, 2, groups[1].UserID)
	require.Equal(t, 80.0, groups[1].LaborCost)

	require.Equal(t, 3, groups[2].UserID)
	require.Equal(t, 0.0, groups[2].LaborCost)
	require.Equal(t, 1, groups[2].EntryCount)
}
