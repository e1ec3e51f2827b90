package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/uvaheesara/archery-tools/server/entries"
)

type IndexVars struct {
	Summary    entries.TournamentSummary
	Stats      entries.Statistics
	LastImport *Import
	User       string
	LoggedIn   bool
}

func (h *handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	classified, err := h.loadEntries(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load entries", slog.Any("err", err))
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	participants, err := h.Server.Participants(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load participants", slog.Any("err", err))
		http.Error(w, "Failed to load participants", http.StatusInternalServerError)
		return
	}

	user, loggedIn := sessionUser(r)
	vars := IndexVars{
		Summary:    entries.Aggregate(classified, h.Cfg.Fees),
		Stats:      entries.CalculateStatistics(participants, time.Now()),
		LastImport: newImport(h.lastImport(ctx)),
		User:       user,
		LoggedIn:   loggedIn,
	}

	if err = h.Templates().ExecuteTemplate(w, "index.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render index template", slog.Any("err", err))
	}
}
