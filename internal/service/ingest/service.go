package ingest

import (
	"context"
	"log/slog"
	"time"

	"github.com/burningpaper/workfromhome/internal/domain/checkin"
)

type IngestServiceImpl struct {
	store checkin.Store
}

func NewIngestService(store checkin.Store) checkin.Ingest {
	return &IngestServiceImpl{store: store}
}

// ProcessWebhook implements checkin.Ingest.
//
// Messages are handled one at a time so the tally and per-message logging
// stay consistent; each write is independent, so a storage failure on one
// message only skips that message. The first storage error is carried out
// of the loop and returned with the partial tally.
func (s *IngestServiceImpl) ProcessWebhook(ctx context.Context, body []byte) (checkin.IngestResult, error) {
	messages, err := checkin.NormalizeMessages(body, time.Now())
	if err != nil {
		return checkin.IngestResult{}, err
	}

	var result checkin.IngestResult
	var firstErr error

	for _, msg := range messages {
		result.Seen = append(result.Seen, msg.Text)

		status, ok := checkin.Classify(msg.Text)
		if !ok {
			continue
		}

		outcome, err := s.store.Record(ctx, checkin.Checkin{
			UserID:    msg.UserID,
			UserName:  msg.UserName,
			UserEmail: msg.Email,
			Status:    status,
			MessageID: msg.MessageID,
			Timestamp: msg.Timestamp,
		})
		if err != nil {
			slog.Error("failed to record checkin",
				"message_id", msg.MessageID,
				"user_id", msg.UserID,
				"error", err,
			)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		if outcome == checkin.OutcomeRecorded {
			slog.Info("recorded checkin",
				"user_name", msg.UserName,
				"status", status,
				"message_id", msg.MessageID,
			)
			result.Processed++
		} else {
			slog.Info("suppressed duplicate checkin",
				"user_id", msg.UserID,
				"message_id", msg.MessageID,
			)
		}
	}

	return result, firstErr
}
