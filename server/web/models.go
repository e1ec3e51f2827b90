package web

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/uvaheesara/archery-tools/server/auth"
	"github.com/uvaheesara/archery-tools/server/database"
	"github.com/uvaheesara/archery-tools/server/entries"
)

// loadEntries loads the stored participant snapshot and runs it through the
// registration rules with the configured fees. Classification is recomputed on
// every request; the snapshot is the only persisted state.
func (h *handler) loadEntries(ctx context.Context) ([]entries.ClassifiedEntry, error) {
	participants, err := h.Server.Participants(ctx)
	if err != nil {
		return nil, err
	}

	return entries.ClassifyAll(participants, h.Cfg.Fees), nil
}

func (h *handler) lastImport(ctx context.Context) *database.Import {
	imp, err := h.DB.GetLastImport(ctx)
	if err != nil {
		return nil
	}
	return imp
}

func sessionUser(r *http.Request) (string, bool) {
	session := auth.GetSession(r)
	return session.UserName, session.ID != ""
}

func clubURL(club string) string {
	return "/fees/club/" + url.PathEscape(club)
}

func newClubRow(club entries.ClubSummary) ClubRow {
	return ClubRow{
		ClubSummary: club,
		URL:         clubURL(club.ClubName),
	}
}

type ClubRow struct {
	entries.ClubSummary
	URL string
}

type Import struct {
	Source       string
	Participants int
	CreatedAt    time.Time
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

func newImport(imp *database.Import) *Import {
	if imp == nil {
		return nil
	}
	return &Import{
		Source:       imp.Source,
		Participants: imp.Participants,
		CreatedAt:    imp.CreatedAt,
	}
}
