package web

import (
	"log/slog"
	"net/http"

	"github.com/uvaheesara/archery-tools/internal/xquery"
	"github.com/uvaheesara/archery-tools/server/auth"
	"github.com/uvaheesara/archery-tools/server/database"
	"github.com/uvaheesara/archery-tools/server/source"
)

type AdminVars struct {
	User    string
	IsAdmin bool
	Imports []database.Import
	Source  string
	Message string
}

func (h *handler) Admin(w http.ResponseWriter, r *http.Request) {
	h.renderAdmin(w, r, "")
}

func (h *handler) renderAdmin(w http.ResponseWriter, r *http.Request, message string) {
	ctx := r.Context()

	limit := xquery.ParseInt(r.URL.Query(), "limit", 20)
	imports, err := h.DB.GetImports(ctx, limit)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load imports", slog.Any("err", err))
		http.Error(w, "Failed to load imports", http.StatusInternalServerError)
		return
	}

	session := auth.GetSession(r)
	if err = h.Templates().ExecuteTemplate(w, "admin.gohtml", AdminVars{
		User:    session.UserName,
		IsAdmin: h.Auth.IsAdmin(session.UserID),
		Imports: imports,
		Source:  string(h.Cfg.Source.Type),
		Message: message,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render admin template", slog.Any("err", err))
	}
}

// AdminRefresh triggers an immediate snapshot refresh from the configured
// source, outside the periodic schedule.
func (h *handler) AdminRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.Auth.IsAdmin(auth.GetSession(r).UserID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	count, err := h.RefreshParticipants(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to refresh participants", slog.Any("err", err))
		h.renderAdmin(w, r, "Refresh failed: "+err.Error())
		return
	}

	slog.InfoContext(ctx, "Manual refresh complete", slog.Int("participants", count))
	http.Redirect(w, r, "/admin", http.StatusFound)
}

type AdminUploadVars struct {
	Error string
}

func (h *handler) AdminUpload(w http.ResponseWriter, r *http.Request) {
	h.renderAdminUpload(w, r, "")
}

func (h *handler) renderAdminUpload(w http.ResponseWriter, r *http.Request, errorMessage string) {
	ctx := r.Context()

	if err := h.Templates().ExecuteTemplate(w, "admin_upload.gohtml", AdminUploadVars{
		Error: errorMessage,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render upload template", slog.Any("err", err))
	}
}

// AdminDoUpload replaces the stored snapshot with an uploaded registration
// CSV. The upload becomes the snapshot until the next source refresh.
func (h *handler) AdminDoUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.Auth.IsAdmin(auth.GetSession(r).UserID) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.renderAdminUpload(w, r, "Failed to read uploaded file: "+err.Error())
		return
	}
	defer file.Close()

	participants, err := source.ParseCSV(file)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to parse uploaded CSV", slog.Any("err", err))
		h.renderAdminUpload(w, r, "Failed to parse CSV: "+err.Error())
		return
	}
	if len(participants) == 0 {
		h.renderAdminUpload(w, r, "Uploaded CSV contains no participants")
		return
	}

	if err = h.StoreParticipants(ctx, participants, "csv-upload"); err != nil {
		slog.ErrorContext(ctx, "Failed to store uploaded participants", slog.Any("err", err))
		h.renderAdminUpload(w, r, "Failed to store participants: "+err.Error())
		return
	}

	slog.InfoContext(ctx, "Imported participants from CSV upload", slog.Int("participants", len(participants)))
	http.Redirect(w, r, "/admin", http.StatusFound)
}
