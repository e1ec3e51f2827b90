package web

import (
	"cmp"
	"log/slog"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/uvaheesara/archery-tools/internal/xquery"
	"github.com/uvaheesara/archery-tools/server/entries"
)

type ParticipantRow struct {
	entries.Participant
	Age      string
	Distance string
}

type ParticipantsVars struct {
	Participants []ParticipantRow
	Search       string
	Sort         string
	Total        int
}

func (h *handler) Participants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	participants, err := h.Server.Participants(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load participants", slog.Any("err", err))
		http.Error(w, "Failed to load participants", http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	search := strings.TrimSpace(query.Get("q"))
	sortBy := xquery.ParseString(query, "sort", "name")

	now := time.Now()
	rows := make([]ParticipantRow, 0, len(participants))
	for _, p := range participants {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		rows = append(rows, newParticipantRow(p, now))
	}
	sortParticipantRows(rows, sortBy)

	if err = h.Templates().ExecuteTemplate(w, "participants.gohtml", ParticipantsVars{
		Participants: rows,
		Search:       search,
		Sort:         sortBy,
		Total:        len(participants),
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render participants template", slog.Any("err", err))
	}
}

func newParticipantRow(p entries.Participant, now time.Time) ParticipantRow {
	row := ParticipantRow{
		Participant: p,
		Age:         "-",
		Distance:    p.Distance(now),
	}
	if age, ok := p.Age(now); ok {
		row.Age = strconv.Itoa(age)
	}
	return row
}

func sortParticipantRows(rows []ParticipantRow, sortBy string) {
	key := func(row ParticipantRow) string {
		switch sortBy {
		case "club":
			return row.Club
		case "event":
			return row.PrimaryEvent
		default:
			return row.Name
		}
	}
	slices.SortStableFunc(rows, func(a, b ParticipantRow) int {
		return cmp.Compare(key(a), key(b))
	})
}

func matchesSearch(p entries.Participant, search string) bool {
	search = strings.ToLower(search)
	for _, field := range []string{p.Name, p.Club, p.PrimaryEvent, p.ExtraEvent} {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
