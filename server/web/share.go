package web

import (
	"log/slog"
	"net/http"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"

	"github.com/uvaheesara/archery-tools/internal/xio"
)

type ShareVars struct {
	PublicURL string
}

func (h *handler) Share(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.Templates().ExecuteTemplate(w, "share.gohtml", ShareVars{
		PublicURL: h.Cfg.Server.PublicURL,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to render share template", slog.Any("err", err))
	}
}

// ShareQRCode renders the dashboard URL as a PNG QR code for printing on
// notice boards at the venue.
func (h *handler) ShareQRCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	qr, err := qrcode.New(h.Cfg.Server.PublicURL)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create qrcode", slog.Any("err", err))
		http.Error(w, "Failed to create qrcode", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")

	qrW := standard.NewWithWriter(xio.NewResponseWriteCloser(w),
		standard.WithBgTransparent(),
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
	)

	defer func() {
		_ = qrW.Close()
	}()
	if err = qr.Save(qrW); err != nil {
		slog.ErrorContext(ctx, "Failed to save qrcode", slog.Any("err", err))
	}
}
