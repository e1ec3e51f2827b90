package entries

import (
	"time"
)

// GenderCount is a per-gender tally.
type GenderCount struct {
	Male   int
	Female int
}

// Statistics holds the raw participation counts shown on the dashboard. These
// are descriptive numbers only; they are independent of the fee and
// eligibility rules and may disagree with them (age categories here come from
// the computed age, not from the event name).
type Statistics struct {
	TotalParticipants  int
	MaleParticipants   int
	FemaleParticipants int

	// EventBreakdown counts both the primary and the extra event of each
	// participant, so an archer with two events contributes to two totals.
	EventBreakdown       map[string]int
	EventGenderBreakdown map[string]GenderCount

	// ClubBreakdown counts primary membership only.
	ClubBreakdown map[string]int

	AgeCategoryBreakdown map[string]int
}

// CalculateStatistics computes participation counts over all input records.
// now anchors the age calculation.
func CalculateStatistics(participants []Participant, now time.Time) Statistics {
	stats := Statistics{
		TotalParticipants:    len(participants),
		EventBreakdown:       map[string]int{},
		EventGenderBreakdown: map[string]GenderCount{},
		ClubBreakdown:        map[string]int{},
		AgeCategoryBreakdown: map[string]int{},
	}

	for _, p := range participants {
		switch p.Gender {
		case GenderFemale:
			stats.FemaleParticipants++
		default:
			stats.MaleParticipants++
		}

		if p.PrimaryEvent != "" {
			stats.countEvent(p.PrimaryEvent, p.Gender)
		}
		if p.HasExtraEvent() {
			stats.countEvent(p.ExtraEvent, p.Gender)
		}

		if p.Club != "" {
			stats.ClubBreakdown[p.Club]++
		}

		age, ok := p.Age(now)
		stats.AgeCategoryBreakdown[AgeCategory(age, ok)]++
	}

	return stats
}

func (s *Statistics) countEvent(event string, gender Gender) {
	s.EventBreakdown[event]++

	count := s.EventGenderBreakdown[event]
	if gender == GenderFemale {
		count.Female++
	} else {
		count.Male++
	}
	s.EventGenderBreakdown[event] = count
}

// AgeCategory buckets a computed age into the dashboard's coarse categories.
// This bucketing is deliberately separate from the event-name cutoff rules;
// one is descriptive, the other is an enrollment-eligibility check.
func AgeCategory(age int, known bool) string {
	if !known {
		return "Unknown"
	}

	switch {
	case age <= 9:
		return "U10"
	case age <= 11:
		return "U12"
	case age <= 13:
		return "U14"
	case age <= 16:
		return "U17/Cadet"
	case age <= 20:
		return "U21/Junior"
	case age >= 40:
		return "Over 40"
	default:
		return "Open/Adult"
	}
}
