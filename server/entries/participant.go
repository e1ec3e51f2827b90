package entries

import (
	"strconv"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Participant is one registration row after trimming and defaulting. Optional
// fields are kept as strings; an empty (or blank-after-trim) string means the
// field is absent, which is exactly the predicate the registration sheet uses.
type Participant struct {
	Name         string
	DateOfBirth  string
	Gender       Gender
	Contact      string
	Club         string
	PrimaryEvent string
	ExtraEvent   string
	BowSharing   string
}

// New builds a Participant from raw sheet cells. Rows without a name are
// dropped, which is the only hard requirement on the input; everything else
// degrades to a default. Gender falls back to Male for any unrecognized value.
func New(name, dob, gender, contact, club, event, extraEvent, bowSharing string) (Participant, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Participant{}, false
	}

	g := GenderMale
	if strings.TrimSpace(gender) == string(GenderFemale) {
		g = GenderFemale
	}

	return Participant{
		Name:         name,
		DateOfBirth:  strings.TrimSpace(dob),
		Gender:       g,
		Contact:      strings.TrimSpace(contact),
		Club:         strings.TrimSpace(club),
		PrimaryEvent: strings.TrimSpace(event),
		ExtraEvent:   strings.TrimSpace(extraEvent),
		BowSharing:   strings.TrimSpace(bowSharing),
	}, true
}

// HasExtraEvent reports whether the participant registered for a second event.
func (p Participant) HasExtraEvent() bool {
	return strings.TrimSpace(p.ExtraEvent) != ""
}

// Age returns the participant's age in whole years at now, or false when the
// date of birth is missing, unparseable or yields an age outside [0, 100].
func (p Participant) Age(now time.Time) (int, bool) {
	return Age(p.DateOfBirth, now)
}

// Distance returns the shooting distance for the participant: 30m for archers
// aged 18 or under, 70m otherwise and when the age is unknown.
func (p Participant) Distance(now time.Time) string {
	if age, ok := p.Age(now); ok && age <= 18 {
		return "30m"
	}
	return "70m"
}

// ParseDOB normalizes a date of birth to a calendar date (midnight UTC). The
// sheet delivers three encodings: ISO-8601 with a time component, DD/MM/YYYY
// and DD.MM.YYYY. Anything else yields ok=false, never an error.
func ParseDOB(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	if strings.Contains(s, "T") {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return time.Time{}, false
		}
		t = t.UTC()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}

	if strings.Contains(s, "/") {
		return parseSeparatedDate(s, "/")
	}
	if strings.Contains(s, ".") {
		return parseSeparatedDate(s, ".")
	}

	return time.Time{}, false
}

func parseSeparatedDate(s string, sep string) (time.Time, bool) {
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return time.Time{}, false
	}

	day, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return time.Time{}, false
	}

	// Two-digit years: 00-50 are 2000s, 51-99 are 1900s.
	if year < 100 {
		if year <= 50 {
			year += 2000
		} else {
			year += 1900
		}
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}

// Age computes whole years between a date of birth and now. Unknown or
// unrealistic (outside [0, 100]) ages report ok=false.
func Age(dob string, now time.Time) (int, bool) {
	born, ok := ParseDOB(dob)
	if !ok {
		return 0, false
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}

	if age < 0 || age > 100 {
		return 0, false
	}
	return age, true
}
