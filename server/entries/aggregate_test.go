package entries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries(t *testing.T) []ClassifiedEntry {
	t.Helper()

	return ClassifyAll([]Participant{
		{Name: "Nimal", Club: "Badulla Archery Club", PrimaryEvent: "Open Recurve"},
		{Name: "Amara", Club: "Badulla Archery Club", PrimaryEvent: "Open Recurve", ExtraEvent: "Compound Open"},
		{Name: "Sithum", Club: "Badulla Archery Club", PrimaryEvent: "U10 Recurve", ExtraEvent: "U10 Compound"},
		{Name: "Kasun", Club: "Kandy Archery Club", PrimaryEvent: "U14 Recurve"},
		{Name: "Dilki", Club: "", PrimaryEvent: "Open Recurve"},
	}, DefaultFees())
}

func TestAggregate(t *testing.T) {
	summary := Aggregate(testEntries(t), DefaultFees())

	require.Len(t, summary.Clubs, 3)
	assert.Equal(t, 3, summary.TotalClubs)
	assert.Equal(t, 5, summary.TotalParticipants)
	assert.Equal(t, 3, summary.SingleEventParticipants)
	assert.Equal(t, 1, summary.DoubleEventParticipants)
	assert.Equal(t, 1, summary.InvalidEntries)
	assert.Equal(t, 4000+5500+5500+4000+4000, summary.TotalFees)

	// Clubs ordered by total fees descending.
	badulla := summary.Clubs[0]
	assert.Equal(t, "Badulla Archery Club", badulla.ClubName)
	assert.Equal(t, 3, badulla.Participants)
	assert.Equal(t, 1, badulla.SingleEventParticipants)
	assert.Equal(t, 1, badulla.DoubleEventParticipants)
	assert.Equal(t, 1, badulla.InvalidEntries)
	assert.Equal(t, 15000, badulla.TotalFees)
	// Fee breakdown only covers valid entries; the invalid double entry still
	// contributes to TotalFees above.
	assert.Equal(t, 8000, badulla.SingleEventFees)
	assert.Equal(t, 1500, badulla.ExtraEventFees)

	// Members sorted by name ascending.
	require.Len(t, badulla.Members, 3)
	assert.Equal(t, "Amara", badulla.Members[0].Name)
	assert.Equal(t, "Nimal", badulla.Members[1].Name)
	assert.Equal(t, "Sithum", badulla.Members[2].Name)

	// Blank club grouped under the sentinel.
	names := []string{summary.Clubs[0].ClubName, summary.Clubs[1].ClubName, summary.Clubs[2].ClubName}
	assert.Contains(t, names, UnknownClub)
}

// Per-club numbers have to reconcile with the tournament-wide roll-up.
func TestAggregateTotalsReconcile(t *testing.T) {
	summary := Aggregate(testEntries(t), DefaultFees())

	var fees, participants, invalid int
	for _, club := range summary.Clubs {
		fees += club.TotalFees
		participants += club.Participants
		invalid += club.InvalidEntries
	}
	assert.Equal(t, summary.TotalFees, fees)
	assert.Equal(t, summary.TotalParticipants, participants)
	assert.Equal(t, summary.InvalidEntries, invalid)
}

func TestAggregateAverages(t *testing.T) {
	summary := Aggregate(testEntries(t), DefaultFees())
	assert.InDelta(t, float64(summary.TotalFees)/5, summary.AverageFeePerParticipant, 0.001)
	assert.InDelta(t, float64(summary.TotalFees)/3, summary.AverageFeePerClub, 0.001)
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil, DefaultFees())
	assert.Empty(t, summary.Clubs)
	assert.Zero(t, summary.TotalParticipants)
	assert.Zero(t, summary.AverageFeePerParticipant)
	assert.Zero(t, summary.AverageFeePerClub)
}

// Club grouping is exact string equality; a trailing-space variant is a
// different club. The sheet is taken literally here.
func TestAggregateExactClubGrouping(t *testing.T) {
	entries := ClassifyAll([]Participant{
		{Name: "A", Club: "Kandy", PrimaryEvent: "Open"},
		{Name: "B", Club: "kandy", PrimaryEvent: "Open"},
	}, DefaultFees())

	summary := Aggregate(entries, DefaultFees())
	assert.Len(t, summary.Clubs, 2)
}

func TestBuildValidityReport(t *testing.T) {
	report := BuildValidityReport(testEntries(t))

	assert.Equal(t, 5, report.TotalEntries)
	assert.Equal(t, 4, report.ValidCount)
	assert.Equal(t, 1, report.InvalidCount)
	require.Len(t, report.Invalid, 1)
	assert.Equal(t, "Sithum", report.Invalid[0].Name)

	// Valid entries ordered by club name ascending.
	require.Len(t, report.Valid, 4)
	assert.Equal(t, "Badulla Archery Club", report.Valid[0].Club)
	assert.Equal(t, "Badulla Archery Club", report.Valid[1].Club)
	assert.Equal(t, "Kandy Archery Club", report.Valid[2].Club)
	assert.Equal(t, UnknownClub, report.Valid[3].Club)
}

func TestGroupByClub(t *testing.T) {
	report := BuildValidityReport(testEntries(t))
	groups := GroupByClub(report.Valid)

	require.Len(t, groups, 3)
	assert.Equal(t, "Badulla Archery Club", groups[0].ClubName)
	assert.Len(t, groups[0].Entries, 2)
	assert.Equal(t, "Kandy Archery Club", groups[1].ClubName)
	assert.Equal(t, UnknownClub, groups[2].ClubName)
}
