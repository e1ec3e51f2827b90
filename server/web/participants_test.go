package web

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uvaheesara/archery-tools/server/entries"
)

func TestSortParticipantRows(t *testing.T) {
	rows := []ParticipantRow{
		{Participant: entries.Participant{Name: "Zara", Club: "Anuradhapura", PrimaryEvent: "Open Recurve"}},
		{Participant: entries.Participant{Name: "Amal", Club: "Badulla", PrimaryEvent: "U14 Boys"}},
	}

	sortParticipantRows(rows, "name")
	assert.Equal(t, "Amal", rows[0].Name)

	sortParticipantRows(rows, "club")
	assert.Equal(t, "Anuradhapura", rows[0].Club)

	sortParticipantRows(rows, "event")
	assert.Equal(t, "Open Recurve", rows[0].PrimaryEvent)
}

func TestMatchesSearch(t *testing.T) {
	p, ok := entries.New("Amara Silva", "12/05/2012", "Female", "", "Kandy Archery Club", "U14 Girls Recurve", "", "")
	require.True(t, ok)

	assert.True(t, matchesSearch(p, "amara"))
	assert.True(t, matchesSearch(p, "KANDY"))
	assert.True(t, matchesSearch(p, "u14"))
	assert.False(t, matchesSearch(p, "colombo"))
}

func TestNewParticipantRow(t *testing.T) {
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	p, ok := entries.New("Amara Silva", "12/05/2012", "Female", "", "Kandy", "U14 Girls Recurve", "", "")
	require.True(t, ok)

	row := newParticipantRow(p, now)
	assert.Equal(t, "13", row.Age)
	assert.Equal(t, "30m", row.Distance)

	unknown, ok := entries.New("No DOB", "", "Male", "", "Kandy", "Open Recurve", "", "")
	require.True(t, ok)

	row = newParticipantRow(unknown, now)
	assert.Equal(t, "-", row.Age)
}
