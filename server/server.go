package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"maps"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disgoorg/disgo/webhook"

	"github.com/uvaheesara/archery-tools/server/auth"
	"github.com/uvaheesara/archery-tools/server/database"
	"github.com/uvaheesara/archery-tools/server/source"
)

var (
	//go:embed static
	static embed.FS

	//go:embed templates/*.gohtml
	templates embed.FS
)

var templateFuncs = template.FuncMap{
	"formatAmount": formatAmount,
	"formatTime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05")
	},
	"join": strings.Join,
}

func New(cfg Config) (*Server, error) {
	funcs := maps.Clone(templateFuncs)
	funcs["dev"] = func() bool {
		return cfg.Dev
	}

	var staticFS http.FileSystem
	var t func() *template.Template
	var notifier *reloadNotifier
	if cfg.Dev {
		root, err := os.OpenRoot("server/")
		if err != nil {
			return nil, fmt.Errorf("failed to open static directory: %w", err)
		}
		staticFS = http.FS(root.FS())
		t = func() *template.Template {
			return template.Must(template.New("templates").
				Funcs(funcs).
				ParseFS(root.FS(), "templates/*.gohtml"))
		}

		notifier = newReloadNotifier()
		startDevWatcher("server/", notifier)
	} else {
		staticFS = http.FS(static)

		st := template.Must(template.New("templates").
			Funcs(funcs).
			ParseFS(templates, "templates/*.gohtml"),
		)

		t = func() *template.Template {
			return st
		}
	}

	db, err := database.New(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	httpClient := &http.Client{}

	client, err := source.New(cfg.Source, httpClient)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize source client: %w", err)
	}

	var webhookClient *webhook.Client
	if cfg.Notifications.Enabled {
		webhookClient, err = webhook.NewWithURL(cfg.Notifications.WebhookURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize webhook client: %w", err)
		}
	}

	s := &Server{
		Cfg:            cfg,
		HTTPClient:     httpClient,
		Client:         client,
		DB:             db,
		Auth:           auth.New(cfg.Auth),
		Metrics:        newMetrics(),
		StaticFS:       staticFS,
		ReloadNotifier: notifier,
		templates:      t,
		webhookClient:  webhookClient,
	}

	s.server = &http.Server{
		Addr: cfg.Server.Addr,
	}

	return s, nil
}

type Server struct {
	Cfg            Config
	HTTPClient     *http.Client
	Client         *source.Client
	DB             *database.Database
	Auth           *auth.Auth
	Metrics        *metrics
	StaticFS       http.FileSystem
	ReloadNotifier *reloadNotifier

	server        *http.Server
	templates     func() *template.Template
	webhookClient *webhook.Client
}

func (s *Server) Templates() *template.Template {
	return s.templates()
}

func (s *Server) Start(handler http.Handler) {
	s.server.Handler = handler

	go s.refreshParticipants()

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", slog.Any("err", err))
		}
	}()
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if s.ReloadNotifier != nil {
		s.ReloadNotifier.Close()
	}

	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", slog.Any("err", err))
	}

	if err := s.DB.Close(); err != nil {
		slog.Error("Database close failed", slog.Any("err", err))
	}
}

// formatAmount renders a fee amount with thousands separators. Amounts are
// currency-agnostic integers.
func formatAmount(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := fmt.Sprintf("%d", amount)
	var out []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, d)
	}
	return sign + string(out)
}
