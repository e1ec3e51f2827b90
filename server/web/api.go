package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/uvaheesara/archery-tools/server/entries"
)

// APIParticipants returns the raw stored snapshot.
func (h *handler) APIParticipants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	participants, err := h.Server.Participants(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load participants", slog.Any("err", err))
		apiError(w, http.StatusInternalServerError, "failed to load participants")
		return
	}

	apiJSON(w, r, participants)
}

// APIStatistics returns participation counts over the stored snapshot.
func (h *handler) APIStatistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	participants, err := h.Server.Participants(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load participants", slog.Any("err", err))
		apiError(w, http.StatusInternalServerError, "failed to load participants")
		return
	}

	apiJSON(w, r, entries.CalculateStatistics(participants, time.Now()))
}

// APIFees returns the per-club fee roll-up.
func (h *handler) APIFees(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	classified, err := h.loadEntries(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load entries", slog.Any("err", err))
		apiError(w, http.StatusInternalServerError, "failed to load entries")
		return
	}

	apiJSON(w, r, entries.Aggregate(classified, h.Cfg.Fees))
}

// APIEntries returns every entry with its eligibility verdict.
func (h *handler) APIEntries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	classified, err := h.loadEntries(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load entries", slog.Any("err", err))
		apiError(w, http.StatusInternalServerError, "failed to load entries")
		return
	}

	apiJSON(w, r, entries.BuildValidityReport(classified))
}

func apiJSON(w http.ResponseWriter, r *http.Request, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode response", slog.Any("err", err))
	}
}

func apiError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
