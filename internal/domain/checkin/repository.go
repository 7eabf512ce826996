package checkin

import (
	"context"
	"time"
)

// Repository defines data access for check-in rows. Day parameters are
// half-open ranges computed by the caller in the configured time zone.
type Repository interface {
	// ExistsForUserOnDay reports whether the user already has a check-in
	// with a timestamp inside [dayStart, dayEnd), ignoring the row with
	// excludeMessageID. The exclusion lets a redelivered message reach its
	// own row's overwrite instead of being capped by it.
	ExistsForUserOnDay(ctx context.Context, userID, excludeMessageID string, dayStart, dayEnd time.Time) (bool, error)

	// Upsert inserts the check-in, or on a messageid collision replaces
	// every field of the existing row. Atomic: a single
	// INSERT ... ON CONFLICT statement.
	Upsert(ctx context.Context, c Checkin) error

	// ListByDay returns check-ins with a timestamp inside
	// [dayStart, dayEnd), newest first.
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]Checkin, error)
}
