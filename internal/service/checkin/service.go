package checkin

import (
	"context"
	"fmt"
	"time"

	"github.com/burningpaper/workfromhome/internal/domain/checkin"
)

type StoreImpl struct {
	repo checkin.Repository
	loc  *time.Location
}

func NewStore(repo checkin.Repository, loc *time.Location) checkin.Store {
	return &StoreImpl{repo: repo, loc: loc}
}

// dayRange returns the half-open calendar-day range containing t, in the
// configured zone.
func (s *StoreImpl) dayRange(t time.Time) (time.Time, time.Time) {
	local := t.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// Record implements checkin.Store.
//
// The per-day cap is anchored on the message's own timestamp, so a
// late-arriving webhook for a past date is compared against that past date.
// The cap check excludes rows carrying this message's own id: a redelivery
// of the exact same message must reach the upsert and replace its earlier
// row, while a second distinct message on the same day stays suppressed.
// The cap check and the subsequent upsert are not atomic with each other:
// two concurrent deliveries for the same user and day can both pass the
// check and then insert under their distinct message ids. The duplicate row
// that leaves behind was judged acceptable over a (userid, day) unique
// constraint, which would also swallow redeliveries with changed ids.
func (s *StoreImpl) Record(ctx context.Context, c checkin.Checkin) (checkin.Outcome, error) {
	if c.UserID != "" && c.UserID != checkin.UnknownUserID {
		dayStart, dayEnd := s.dayRange(c.Timestamp)
		exists, err := s.repo.ExistsForUserOnDay(ctx, c.UserID, c.MessageID, dayStart, dayEnd)
		if err != nil {
			return "", fmt.Errorf("failed to apply per-day cap: %w", err)
		}
		if exists {
			return checkin.OutcomeSuppressed, nil
		}
	}

	if err := s.repo.Upsert(ctx, c); err != nil {
		return "", fmt.Errorf("failed to record checkin: %w", err)
	}

	return checkin.OutcomeRecorded, nil
}

// ListToday implements checkin.Store.
func (s *StoreImpl) ListToday(ctx context.Context) ([]checkin.Checkin, error) {
	dayStart, dayEnd := s.dayRange(time.Now())
	checkins, err := s.repo.ListByDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list today's checkins: %w", err)
	}
	return checkins, nil
}
