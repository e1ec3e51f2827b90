package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"github.com/uvaheesara/archery-tools/server/entries"
)

// ErrTooManyRequests is returned when the source keeps throttling us past the
// configured retry budget.
var ErrTooManyRequests = errors.New("too many requests")

func New(cfg Config, httpClient *http.Client) (*Client, error) {
	c := &Client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Every(time.Duration(cfg.Every)), cfg.Burst),
	}

	if cfg.Type == TypeSheets {
		srv, err := sheetsv4.NewService(context.Background(),
			option.WithCredentialsFile(cfg.CredentialsFile),
			option.WithScopes(sheetsv4.SpreadsheetsReadonlyScope),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create sheets service: %w", err)
		}
		c.sheets = srv
	}

	return c, nil
}

type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	sheets     *sheetsv4.Service
}

// FetchParticipants pulls the current registration sheet and converts it into
// participant records. Rows with an unusable shape or a blank name are dropped
// and logged, never surfaced as errors.
func (c *Client) FetchParticipants(ctx context.Context) ([]entries.Participant, error) {
	var (
		records []Record
		err     error
	)
	switch c.cfg.Type {
	case TypeSheets:
		records, err = c.fetchSheetRecords(ctx)
	default:
		records, err = c.fetchScriptRecords(ctx)
	}
	if err != nil {
		return nil, err
	}

	return Participants(ctx, records), nil
}

// Participants converts raw rows, dropping the unusable ones.
func Participants(ctx context.Context, records []Record) []entries.Participant {
	participants := make([]entries.Participant, 0, len(records))
	var dropped int
	for i, record := range records {
		if !record.Valid() {
			dropped++
			slog.WarnContext(ctx, "Dropping registration row with invalid shape", slog.Int("row", i), slog.String("name", record.Name))
			continue
		}

		p, ok := record.Participant()
		if !ok {
			dropped++
			continue
		}
		participants = append(participants, p)
	}

	if dropped > 0 {
		slog.InfoContext(ctx, "Dropped registration rows", slog.Int("dropped", dropped), slog.Int("kept", len(participants)))
	}

	return participants
}
