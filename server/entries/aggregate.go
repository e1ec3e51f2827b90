package entries

import (
	"cmp"
	"slices"
)

// ClubSummary aggregates all entries sharing one club name. Grouping is exact
// string equality on the defaulted club name; near-duplicate names split into
// separate groups on purpose.
type ClubSummary struct {
	ClubName string

	Participants            int
	SingleEventParticipants int
	DoubleEventParticipants int
	InvalidEntries          int

	// TotalFees sums the fee of every entry in the club, valid and invalid
	// alike. SingleEventFees and ExtraEventFees only cover valid entries.
	TotalFees       int
	SingleEventFees int
	ExtraEventFees  int

	// Members is sorted by name ascending.
	Members []ClassifiedEntry
}

// TournamentSummary is the tournament-wide roll-up of all club summaries.
type TournamentSummary struct {
	// Clubs is sorted by total fees descending.
	Clubs []ClubSummary

	TotalParticipants       int
	TotalClubs              int
	SingleEventParticipants int
	DoubleEventParticipants int
	InvalidEntries          int
	TotalFees               int

	AverageFeePerParticipant float64
	AverageFeePerClub        float64
}

// Aggregate folds classified entries into per-club and tournament-wide
// summaries. It is a pure transformation, recomputed in full on every call.
func Aggregate(entries []ClassifiedEntry, fees FeeConfig) TournamentSummary {
	byClub := make(map[string]*ClubSummary)
	var order []string

	for _, entry := range entries {
		club, ok := byClub[entry.Club]
		if !ok {
			club = &ClubSummary{ClubName: entry.Club}
			byClub[entry.Club] = club
			order = append(order, entry.Club)
		}

		club.Participants++
		club.TotalFees += entry.Fee
		club.Members = append(club.Members, entry)

		switch {
		case !entry.IsValid:
			club.InvalidEntries++
		case entry.HasExtraEvent():
			club.DoubleEventParticipants++
			club.SingleEventFees += fees.SingleEvent
			club.ExtraEventFees += fees.ExtraEvent
		default:
			club.SingleEventParticipants++
			club.SingleEventFees += fees.SingleEvent
		}
	}

	summary := TournamentSummary{
		Clubs:      make([]ClubSummary, 0, len(order)),
		TotalClubs: len(order),
	}
	for _, name := range order {
		club := *byClub[name]
		slices.SortStableFunc(club.Members, func(a, b ClassifiedEntry) int {
			return cmp.Compare(a.Name, b.Name)
		})

		summary.Clubs = append(summary.Clubs, club)
		summary.TotalParticipants += club.Participants
		summary.SingleEventParticipants += club.SingleEventParticipants
		summary.DoubleEventParticipants += club.DoubleEventParticipants
		summary.InvalidEntries += club.InvalidEntries
		summary.TotalFees += club.TotalFees
	}

	slices.SortStableFunc(summary.Clubs, func(a, b ClubSummary) int {
		if c := cmp.Compare(b.TotalFees, a.TotalFees); c != 0 {
			return c
		}
		return cmp.Compare(a.ClubName, b.ClubName)
	})

	if summary.TotalParticipants > 0 {
		summary.AverageFeePerParticipant = float64(summary.TotalFees) / float64(summary.TotalParticipants)
	}
	if summary.TotalClubs > 0 {
		summary.AverageFeePerClub = float64(summary.TotalFees) / float64(summary.TotalClubs)
	}

	return summary
}

// ClubEntries is one club's slice of a cross-club validity report.
type ClubEntries struct {
	ClubName string
	Entries  []ClassifiedEntry
}

// ValidityReport splits entries into valid and invalid lists for the entries
// management view. Both lists are ordered by club name ascending, keeping the
// input order within a club.
type ValidityReport struct {
	Valid   []ClassifiedEntry
	Invalid []ClassifiedEntry

	TotalEntries int
	ValidCount   int
	InvalidCount int
}

// BuildValidityReport categorizes classified entries by validity.
func BuildValidityReport(entries []ClassifiedEntry) ValidityReport {
	report := ValidityReport{
		TotalEntries: len(entries),
	}

	for _, entry := range entries {
		if entry.IsValid {
			report.Valid = append(report.Valid, entry)
		} else {
			report.Invalid = append(report.Invalid, entry)
		}
	}
	report.ValidCount = len(report.Valid)
	report.InvalidCount = len(report.Invalid)

	byClub := func(a, b ClassifiedEntry) int {
		return cmp.Compare(a.Club, b.Club)
	}
	slices.SortStableFunc(report.Valid, byClub)
	slices.SortStableFunc(report.Invalid, byClub)

	return report
}

// GroupByClub groups already-sorted report entries per club, preserving their
// order within each group.
func GroupByClub(entries []ClassifiedEntry) []ClubEntries {
	byClub := make(map[string]int)
	var groups []ClubEntries

	for _, entry := range entries {
		i, ok := byClub[entry.Club]
		if !ok {
			i = len(groups)
			byClub[entry.Club] = i
			groups = append(groups, ClubEntries{ClubName: entry.Club})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}

	slices.SortStableFunc(groups, func(a, b ClubEntries) int {
		return cmp.Compare(a.ClubName, b.ClubName)
	})

	return groups
}
