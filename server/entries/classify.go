package entries

import (
	"fmt"
)

// UnknownClub is the grouping key for entries whose club cell is blank.
const UnknownClub = "Unknown Club"

// SingleEventViolation is the violation recorded for U10/U12 archers that
// registered for a second event.
const SingleEventViolation = "U10/U12 archers can only participate in one event"

const dateLayout = "02/01/2006"

// FeeConfig holds the registration fee constants. Amounts are plain integers;
// currency formatting is a presentation concern.
type FeeConfig struct {
	SingleEvent int `toml:"single_event"`
	ExtraEvent  int `toml:"extra_event"`
}

func DefaultFees() FeeConfig {
	return FeeConfig{
		SingleEvent: 4000,
		ExtraEvent:  1500,
	}
}

func (c FeeConfig) String() string {
	return fmt.Sprintf("\n SingleEvent: %d\n ExtraEvent: %d",
		c.SingleEvent,
		c.ExtraEvent,
	)
}

// ClassifiedEntry is the result of running one participant through the
// eligibility rules. It is derived state, recomputed on every pass and never
// stored.
type ClassifiedEntry struct {
	Name         string
	Club         string
	PrimaryEvent string
	ExtraEvent   string
	DateOfBirth  string

	IsU10U12   bool
	IsValid    bool
	Violations []string

	// Fee reflects the number of registered events only. Invalid entries are
	// billed the same as valid ones and flagged for manual review instead of
	// being rejected.
	Fee int
}

// Events returns the registered event names, primary first.
func (e ClassifiedEntry) Events() []string {
	events := []string{e.PrimaryEvent}
	if e.ExtraEvent != "" {
		events = append(events, e.ExtraEvent)
	}
	return events
}

// HasExtraEvent reports whether the entry covers two events.
func (e ClassifiedEntry) HasExtraEvent() bool {
	return e.ExtraEvent != ""
}

// Classify runs one participant through the registration rules. It is total
// over any participant shape: missing optional fields degrade to
// "no restriction" or "unknown", never to an error.
func Classify(p Participant, fees FeeConfig) ClassifiedEntry {
	hasExtra := p.HasExtraEvent()
	isU10U12 := IsU10U12Event(p.PrimaryEvent)

	var violations []string
	if isU10U12 && hasExtra {
		violations = append(violations, SingleEventViolation)
	}

	if p.DateOfBirth != "" {
		if p.PrimaryEvent != "" {
			if violation := checkEventAge(p.PrimaryEvent, p.DateOfBirth); violation != "" {
				violations = append(violations, violation)
			}
		}
		if p.ExtraEvent != "" {
			if violation := checkEventAge(p.ExtraEvent, p.DateOfBirth); violation != "" {
				violations = append(violations, violation)
			}
		}
	}

	fee := fees.SingleEvent
	if hasExtra {
		fee += fees.ExtraEvent
	}

	club := p.Club
	if club == "" {
		club = UnknownClub
	}

	return ClassifiedEntry{
		Name:         p.Name,
		Club:         club,
		PrimaryEvent: p.PrimaryEvent,
		ExtraEvent:   p.ExtraEvent,
		DateOfBirth:  p.DateOfBirth,
		IsU10U12:     isU10U12,
		IsValid:      len(violations) == 0,
		Violations:   violations,
		Fee:          fee,
	}
}

// ClassifyAll classifies every participant, preserving input order.
func ClassifyAll(participants []Participant, fees FeeConfig) []ClassifiedEntry {
	classified := make([]ClassifiedEntry, len(participants))
	for i, p := range participants {
		classified[i] = Classify(p, fees)
	}
	return classified
}

// checkEventAge validates a date of birth against the cutoff rule for an
// event. It returns a violation message, or "" when the entry is fine. A date
// of birth that cannot be parsed cannot be validated and is assumed valid.
func checkEventAge(eventName, dob string) string {
	rule, ok := LookupCutoff(eventName)
	if !ok {
		return ""
	}

	born, ok := ParseDOB(dob)
	if !ok {
		return ""
	}

	if rule.Check(born) {
		return ""
	}

	if rule.Direction == BornOnOrBefore {
		return fmt.Sprintf("%s event requires DOB on or before %s, but participant was born %s",
			rule.Label, rule.Cutoff.Format(dateLayout), born.Format(dateLayout))
	}
	return fmt.Sprintf("%s event requires DOB on or after %s, but participant was born %s",
		rule.Label, rule.Cutoff.Format(dateLayout), born.Format(dateLayout))
}
