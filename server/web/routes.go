package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/uvaheesara/archery-tools/internal/middlewares"
	"github.com/uvaheesara/archery-tools/server"
)

type handler struct {
	*server.Server
}

func Routes(srv *server.Server) http.Handler {
	h := &handler{
		Server: srv,
	}

	fileServer := http.FileServer(h.StaticFS)
	var fs http.Handler
	if srv.Cfg.Dev {
		fs = fileServer
	} else {
		fs = middlewares.Cache(fileServer)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.Index)

	mux.HandleFunc("GET /login", h.Login)
	mux.HandleFunc("GET /login/callback", h.LoginCallback)
	mux.HandleFunc("GET /logout", h.Logout)

	mux.HandleFunc("GET /participants", h.Participants)
	mux.HandleFunc("GET /entries", h.Entries)
	mux.HandleFunc("GET /fees", h.Fees)
	mux.HandleFunc("GET /fees/club/{club}", h.FeesClub)
	mux.HandleFunc("GET /targets", h.Targets)

	mux.HandleFunc("GET  /export", h.Export)
	mux.HandleFunc("POST /export", h.DoExport)

	mux.HandleFunc("GET  /admin", h.Admin)
	mux.HandleFunc("POST /admin/refresh", h.AdminRefresh)
	mux.HandleFunc("GET  /admin/upload", h.AdminUpload)
	mux.HandleFunc("POST /admin/upload", h.AdminDoUpload)

	mux.HandleFunc("GET /share", h.Share)
	mux.HandleFunc("GET /share/qr", h.ShareQRCode)

	mux.HandleFunc("GET /api/participants", h.APIParticipants)
	mux.HandleFunc("GET /api/statistics", h.APIStatistics)
	mux.HandleFunc("GET /api/fees", h.APIFees)
	mux.HandleFunc("GET /api/entries", h.APIEntries)

	mux.Handle("GET /metrics", promhttp.Handler())

	mux.Handle("GET  /static/", fs)
	mux.Handle("HEAD /static/", fs)

	if srv.Cfg.Dev {
		mux.HandleFunc("GET /dev/reload", h.DevReload)
	}

	mux.HandleFunc("/", h.NotFound)

	return h.auth(mux)
}

func (h *handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.WriteHeader(http.StatusNotFound)
	if err := h.Templates().ExecuteTemplate(w, "not_found.gohtml", nil); err != nil {
		slog.ErrorContext(ctx, "Failed to render not found template", slog.Any("err", err))
		return
	}
}

// DevReload streams server-sent events that instruct the browser to refresh
// whenever the dev watcher picks up a change on disk. The SSE connection stays
// open until the client disconnects or the server shuts down.
func (h *handler) DevReload(w http.ResponseWriter, r *http.Request) {
	if h.ReloadNotifier == nil {
		http.NotFound(w, r)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	id, ch := h.ReloadNotifier.Subscribe()
	if id == -1 {
		w.WriteHeader(http.StatusGone)
		return
	}
	defer h.ReloadNotifier.Unsubscribe(id)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if _, err := fmt.Fprint(w, "data: reload\n\n"); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
