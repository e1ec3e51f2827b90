package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/uvaheesara/archery-tools/server/database"
	"github.com/uvaheesara/archery-tools/server/entries"
)

// refreshParticipants periodically replaces the participant snapshot from the
// configured source. Each cycle is a full re-import; derived data is always
// recomputed from the stored snapshot, so nothing else needs invalidating.
func (s *Server) refreshParticipants() {
	interval := time.Duration(s.Cfg.Source.Refresh)
	if interval <= 0 {
		slog.Info("Participant refresh disabled")
		return
	}

	for {
		s.doRefreshParticipants()
		time.Sleep(interval)
	}
}

func (s *Server) doRefreshParticipants() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.RefreshParticipants(ctx); err != nil {
		slog.ErrorContext(ctx, "Failed to refresh participants", slog.Any("err", err))
		s.SendNotification(ctx, fmt.Sprintf("Participant refresh failed: %s", err))
	}
}

// RefreshParticipants fetches the registration sheet and replaces the stored
// snapshot. It returns the number of imported participants.
func (s *Server) RefreshParticipants(ctx context.Context) (int, error) {
	s.Metrics.RefreshesTotal.Inc()

	participants, err := s.Client.FetchParticipants(ctx)
	if err != nil {
		s.Metrics.RefreshFailures.Inc()
		return 0, fmt.Errorf("failed to fetch participants: %w", err)
	}

	if err = s.StoreParticipants(ctx, participants, string(s.Cfg.Source.Type)); err != nil {
		s.Metrics.RefreshFailures.Inc()
		return 0, err
	}

	slog.InfoContext(ctx, "Refreshed participants", slog.Int("participants", len(participants)))
	return len(participants), nil
}

// StoreParticipants replaces the stored snapshot with the given participants.
func (s *Server) StoreParticipants(ctx context.Context, participants []entries.Participant, sourceName string) error {
	rows := make([]database.Participant, len(participants))
	for i, p := range participants {
		rows[i] = database.Participant{
			Name:         p.Name,
			DateOfBirth:  p.DateOfBirth,
			Gender:       string(p.Gender),
			Contact:      p.Contact,
			Club:         p.Club,
			PrimaryEvent: p.PrimaryEvent,
			ExtraEvent:   p.ExtraEvent,
			BowSharing:   p.BowSharing,
		}
	}

	if err := s.DB.ReplaceParticipants(ctx, rows, sourceName); err != nil {
		return fmt.Errorf("failed to store participants: %w", err)
	}

	s.Metrics.LastRefreshTime.SetToCurrentTime()
	s.Metrics.ParticipantCount.Set(float64(len(participants)))

	return nil
}

// Participants loads the stored snapshot as domain participants.
func (s *Server) Participants(ctx context.Context) ([]entries.Participant, error) {
	rows, err := s.DB.GetParticipants(ctx)
	if err != nil {
		return nil, err
	}

	participants := make([]entries.Participant, 0, len(rows))
	for _, row := range rows {
		p, ok := entries.New(row.Name, row.DateOfBirth, row.Gender, row.Contact, row.Club, row.PrimaryEvent, row.ExtraEvent, row.BowSharing)
		if !ok {
			continue
		}
		participants = append(participants, p)
	}

	return participants, nil
}
