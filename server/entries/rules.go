package entries

import (
	"strings"
	"time"
)

// CutoffDirection says which side of the cutoff date a valid date of birth
// falls on.
type CutoffDirection int

const (
	// BornOnOrAfter is used by the youth categories: the archer must be born on
	// or after the cutoff date.
	BornOnOrAfter CutoffDirection = iota
	// BornOnOrBefore is used by the veteran category: the archer must be born
	// on or before the cutoff date.
	BornOnOrBefore
)

// CutoffRule is one age-category eligibility rule.
type CutoffRule struct {
	// Label is the human-readable category name used in violation messages.
	Label     string
	Cutoff    time.Time
	Direction CutoffDirection

	match func(event string) bool
}

// Check reports whether a date of birth satisfies the rule.
func (r CutoffRule) Check(born time.Time) bool {
	if r.Direction == BornOnOrBefore {
		return !born.After(r.Cutoff)
	}
	return !born.Before(r.Cutoff)
}

// cutoffRules is evaluated in order, first match wins. The order matters
// because category markers can overlap inside an event name, so it must stay
// U10, U12, U14, U17/Cadet, U21/Junior, Over 40.
var cutoffRules = []CutoffRule{
	{Label: "U10", Cutoff: date(2015, 1, 1), Direction: BornOnOrAfter, match: containsAny("u10")},
	{Label: "U12", Cutoff: date(2013, 1, 1), Direction: BornOnOrAfter, match: containsAny("u12")},
	{Label: "U14", Cutoff: date(2011, 1, 1), Direction: BornOnOrAfter, match: containsAny("u14")},
	{Label: "U17/Cadet", Cutoff: date(2008, 1, 1), Direction: BornOnOrAfter, match: containsAny("u17", "cadet")},
	{Label: "U21/Junior", Cutoff: date(2004, 1, 1), Direction: BornOnOrAfter, match: containsAny("u21", "junior")},
	{Label: "Over 40", Cutoff: date(1984, 12, 31), Direction: BornOnOrBefore, match: containsAny("over 40")},
}

// LookupCutoff resolves an event name to its age cutoff rule. Event names that
// carry no age-restricted category marker return ok=false; that is a valid
// "no restriction" outcome, not a failure.
func LookupCutoff(eventName string) (CutoffRule, bool) {
	event := strings.ToLower(eventName)
	for _, rule := range cutoffRules {
		if rule.match(event) {
			return rule, true
		}
	}
	return CutoffRule{}, false
}

// IsU10U12Event reports whether an event name belongs to the U10 or U12
// category, which are limited to a single event per archer.
func IsU10U12Event(eventName string) bool {
	event := strings.ToLower(eventName)
	return strings.Contains(event, "u10") || strings.Contains(event, "u12")
}

func containsAny(markers ...string) func(string) bool {
	return func(event string) bool {
		for _, marker := range markers {
			if strings.Contains(event, marker) {
				return true
			}
		}
		return false
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
