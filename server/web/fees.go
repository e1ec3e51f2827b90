package web

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/uvaheesara/archery-tools/server/entries"
)

type FeesVars struct {
	Summary entries.TournamentSummary
	Clubs   []ClubRow
	Fees    entries.FeeConfig
}

func (h *handler) Fees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	classified, err := h.loadEntries(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load entries", slog.Any("err", err))
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	summary := entries.Aggregate(classified, h.Cfg.Fees)

	clubs := make([]ClubRow, len(summary.Clubs))
	for i, club := range summary.Clubs {
		clubs[i] = newClubRow(club)
	}

	if err = h.Templates().ExecuteTemplate(w, "fees.gohtml", FeesVars{
		Summary: summary,
		Clubs:   clubs,
		Fees:    h.Cfg.Fees,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render fees template", slog.Any("err", err))
	}
}

type FeesClubVars struct {
	Club entries.ClubSummary
	Fees entries.FeeConfig
}

func (h *handler) FeesClub(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	clubName, err := url.PathUnescape(r.PathValue("club"))
	if err != nil {
		http.Error(w, "Invalid club name", http.StatusBadRequest)
		return
	}

	classified, err := h.loadEntries(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load entries", slog.Any("err", err))
		http.Error(w, "Failed to load entries", http.StatusInternalServerError)
		return
	}

	summary := entries.Aggregate(classified, h.Cfg.Fees)
	for _, club := range summary.Clubs {
		if club.ClubName != clubName {
			continue
		}

		if err = h.Templates().ExecuteTemplate(w, "fees_club.gohtml", FeesClubVars{
			Club: club,
			Fees: h.Cfg.Fees,
		}); err != nil {
			slog.ErrorContext(ctx, "Failed to render club fees template", slog.Any("err", err))
		}
		return
	}

	h.NotFound(w, r)
}
