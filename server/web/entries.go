package web

import (
	"log/slog"
	"net/http"

	"github.com/uvaheesara/archery-tools/internal/xquery"
	"github.com/uvaheesara/archery-tools/server/entries"
)

type EntriesVars struct {
	Report       entries.ValidityReport
	ValidByClub  []entries.ClubEntries
	InvalidFirst []entries.ClassifiedEntry
	InvalidOnly  bool
}

// Entries renders the eligibility review. Invalid entries are listed first so
// organizers can chase up clubs before the draw is published.
func (h *handler) Entries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	classified, err := h.loadEntries(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load entries", slog.Any("err", err))
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	report := entries.BuildValidityReport(classified)

	vars := EntriesVars{
		Report:       report,
		InvalidFirst: report.Invalid,
		InvalidOnly:  xquery.ParseBool(r.URL.Query(), "invalid_only", false),
	}
	if !vars.InvalidOnly {
		vars.ValidByClub = entries.GroupByClub(report.Valid)
	}

	if err = h.Templates().ExecuteTemplate(w, "entries.gohtml", vars); err != nil {
		slog.ErrorContext(ctx, "Failed to render entries template", slog.Any("err", err))
	}
}
