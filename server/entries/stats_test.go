package entries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStatistics(t *testing.T) {
	now := date(2025, 6, 15)

	stats := CalculateStatistics([]Participant{
		{Name: "Nimal", Gender: GenderMale, Club: "Badulla", PrimaryEvent: "U12 Men", ExtraEvent: "Open Recurve", DateOfBirth: "01/01/2015"},
		{Name: "Amara", Gender: GenderFemale, Club: "Badulla", PrimaryEvent: "Open Recurve", DateOfBirth: "01/01/1990"},
		{Name: "Kasun", Gender: GenderMale, Club: "Kandy", PrimaryEvent: "Over 40 Recurve", DateOfBirth: "01/01/1980"},
		{Name: "Dilki", Gender: GenderFemale, Club: "", PrimaryEvent: "U14 Girls", DateOfBirth: "not-a-date"},
	}, now)

	assert.Equal(t, 4, stats.TotalParticipants)
	assert.Equal(t, 2, stats.MaleParticipants)
	assert.Equal(t, 2, stats.FemaleParticipants)

	// Both the primary and the extra event count once each.
	assert.Equal(t, map[string]int{
		"U12 Men":         1,
		"Open Recurve":    2,
		"Over 40 Recurve": 1,
		"U14 Girls":       1,
	}, stats.EventBreakdown)

	assert.Equal(t, GenderCount{Male: 1, Female: 1}, stats.EventGenderBreakdown["Open Recurve"])
	assert.Equal(t, GenderCount{Male: 1}, stats.EventGenderBreakdown["U12 Men"])

	// Clubs count primary membership only; blank clubs are skipped.
	assert.Equal(t, map[string]int{"Badulla": 2, "Kandy": 1}, stats.ClubBreakdown)

	assert.Equal(t, map[string]int{
		"U12":     1,
		"Open/Adult": 1,
		"Over 40": 1,
		"Unknown": 1,
	}, stats.AgeCategoryBreakdown)
}

func TestCalculateStatisticsEmpty(t *testing.T) {
	stats := CalculateStatistics(nil, date(2025, 6, 15))
	assert.Zero(t, stats.TotalParticipants)
	assert.Empty(t, stats.EventBreakdown)
	assert.Empty(t, stats.ClubBreakdown)
}

func TestCalculateStatisticsSingleEventCountsOnce(t *testing.T) {
	stats := CalculateStatistics([]Participant{
		{Name: "Solo", Gender: GenderMale, PrimaryEvent: "Open Recurve"},
	}, date(2025, 6, 15))

	require.Len(t, stats.EventBreakdown, 1)
	assert.Equal(t, 1, stats.EventBreakdown["Open Recurve"])
}

func TestAgeCategory(t *testing.T) {
	tests := []struct {
		age   int
		known bool
		want  string
	}{
		{age: 0, known: true, want: "U10"},
		{age: 9, known: true, want: "U10"},
		{age: 10, known: true, want: "U12"},
		{age: 11, known: true, want: "U12"},
		{age: 13, known: true, want: "U14"},
		{age: 16, known: true, want: "U17/Cadet"},
		{age: 20, known: true, want: "U21/Junior"},
		{age: 21, known: true, want: "Open/Adult"},
		{age: 39, known: true, want: "Open/Adult"},
		{age: 40, known: true, want: "Over 40"},
		{age: 75, known: true, want: "Over 40"},
		{age: 0, known: false, want: "Unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeCategory(tt.age, tt.known))
	}
}
