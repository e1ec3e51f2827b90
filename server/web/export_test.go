package web

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uvaheesara/archery-tools/server/entries"
)

func TestWriteEntriesCSV(t *testing.T) {
	classified := []entries.ClassifiedEntry{
		{
			Name:         "Amara Silva",
			Club:         "Kandy Archery Club",
			PrimaryEvent: "U14 Boys Recurve",
			DateOfBirth:  "12/05/2012",
			IsValid:      true,
			Fee:          4000,
		},
		{
			Name:         "Nuwan Perera",
			Club:         "Colombo Archers",
			PrimaryEvent: "U10 Boys",
			ExtraEvent:   "Open Recurve",
			DateOfBirth:  "01/01/2017",
			IsU10U12:     true,
			Violations:   []string{entries.SingleEventViolation},
			Fee:          5500,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, writeEntriesCSV(&buf, classified))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"name", "club", "event", "extra_event", "date_of_birth", "valid", "violations", "fee"}, records[0])
	assert.Equal(t, []string{"Amara Silva", "Kandy Archery Club", "U14 Boys Recurve", "", "12/05/2012", "true", "", "4000"}, records[1])
	assert.Equal(t, []string{"Nuwan Perera", "Colombo Archers", "U10 Boys", "Open Recurve", "01/01/2017", "false", entries.SingleEventViolation, "5500"}, records[2])
}

func TestWriteClubsCSV(t *testing.T) {
	classified := []entries.ClassifiedEntry{
		{Name: "A", Club: "Kandy", PrimaryEvent: "Open Recurve", IsValid: true, Fee: 4000},
		{Name: "B", Club: "Kandy", PrimaryEvent: "Open Recurve", ExtraEvent: "Open Barebow", IsValid: true, Fee: 5500},
		{Name: "C", Club: "Galle", PrimaryEvent: "Open Recurve", IsValid: true, Fee: 4000},
	}

	var buf bytes.Buffer
	require.NoError(t, writeClubsCSV(&buf, entries.Aggregate(classified, entries.DefaultFees())))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Clubs are ordered by total fees descending.
	assert.Equal(t, "Kandy", records[1][0])
	assert.Equal(t, "9500", records[1][7])
	assert.Equal(t, "Galle", records[2][0])
	assert.Equal(t, "4000", records[2][7])
}

func TestWriteStatisticsCSV(t *testing.T) {
	stats := entries.Statistics{
		TotalParticipants:    2,
		MaleParticipants:     1,
		FemaleParticipants:   1,
		EventBreakdown:       map[string]int{"Open Recurve": 2},
		ClubBreakdown:        map[string]int{"Kandy": 2},
		AgeCategoryBreakdown: map[string]int{"Open/Adult": 2},
	}

	var buf bytes.Buffer
	require.NoError(t, writeStatisticsCSV(&buf, stats))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	assert.Contains(t, records, []string{"total", "participants", "2"})
	assert.Contains(t, records, []string{"gender", "female", "1"})
	assert.Contains(t, records, []string{"event", "Open Recurve", "2"})
	assert.Contains(t, records, []string{"club", "Kandy", "2"})
	assert.Contains(t, records, []string{"age_category", "Open/Adult", "2"})
}
