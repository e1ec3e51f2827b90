package entries

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCutoff(t *testing.T) {
	tests := []struct {
		event     string
		label     string
		cutoff    time.Time
		direction CutoffDirection
	}{
		{event: "U10 Recurve", label: "U10", cutoff: date(2015, 1, 1), direction: BornOnOrAfter},
		{event: "u12 compound", label: "U12", cutoff: date(2013, 1, 1), direction: BornOnOrAfter},
		{event: "U14 Recurve Girls", label: "U14", cutoff: date(2011, 1, 1), direction: BornOnOrAfter},
		{event: "U17 Recurve", label: "U17/Cadet", cutoff: date(2008, 1, 1), direction: BornOnOrAfter},
		{event: "Cadet Men", label: "U17/Cadet", cutoff: date(2008, 1, 1), direction: BornOnOrAfter},
		{event: "Junior Women Recurve", label: "U21/Junior", cutoff: date(2004, 1, 1), direction: BornOnOrAfter},
		{event: "U21 Compound", label: "U21/Junior", cutoff: date(2004, 1, 1), direction: BornOnOrAfter},
		{event: "Over 40 Recurve", label: "Over 40", cutoff: date(1984, 12, 31), direction: BornOnOrBefore},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			rule, ok := LookupCutoff(tt.event)
			require.True(t, ok)
			assert.Equal(t, tt.label, rule.Label)
			assert.Equal(t, tt.cutoff, rule.Cutoff)
			assert.Equal(t, tt.direction, rule.Direction)
		})
	}
}

func TestLookupCutoffUnrestricted(t *testing.T) {
	for _, event := range []string{"Open Recurve", "Compound Men", ""} {
		_, ok := LookupCutoff(event)
		assert.False(t, ok, event)
	}
}

// Category markers can overlap inside one event name; the first rule in table
// order has to win so that e.g. a name carrying both "u10" and "cadet" is
// treated as U10.
func TestLookupCutoffOrder(t *testing.T) {
	rule, ok := LookupCutoff("U10 Cadet Mixed")
	require.True(t, ok)
	assert.Equal(t, "U10", rule.Label)
}

func TestCutoffRuleCheck(t *testing.T) {
	u12, ok := LookupCutoff("U12 Recurve")
	require.True(t, ok)
	assert.True(t, u12.Check(date(2013, 1, 1)), "on the cutoff is valid")
	assert.True(t, u12.Check(date(2016, 1, 1)))
	assert.False(t, u12.Check(date(2012, 12, 31)))

	over40, ok := LookupCutoff("Over 40 Recurve")
	require.True(t, ok)
	assert.True(t, over40.Check(date(1984, 12, 31)), "on the cutoff is valid")
	assert.True(t, over40.Check(date(1980, 1, 1)))
	assert.False(t, over40.Check(date(1985, 1, 1)))
}

func TestIsU10U12Event(t *testing.T) {
	assert.True(t, IsU10U12Event("U10 Recurve"))
	assert.True(t, IsU10U12Event("u12 compound"))
	assert.False(t, IsU10U12Event("U14 Recurve"))
	assert.False(t, IsU10U12Event("Open Recurve"))
	assert.False(t, IsU10U12Event(""))
}
