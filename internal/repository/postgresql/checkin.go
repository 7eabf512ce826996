package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/burningpaper/workfromhome/internal/domain/checkin"
	"github.com/burningpaper/workfromhome/internal/pkg/database"
)

type checkinRepository struct {
	db *database.DB
}

func NewCheckinRepository(db *database.DB) checkin.Repository {
	return &checkinRepository{db: db}
}

// ExistsForUserOnDay implements checkin.Repository.
func (r *checkinRepository) ExistsForUserOnDay(ctx context.Context, userID, excludeMessageID string, dayStart, dayEnd time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM checkins
			WHERE userid = $1
			  AND messageid <> $2
			  AND timestamp >= $3
			  AND timestamp < $4
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, userID, excludeMessageID, dayStart, dayEnd).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check existing checkin for user and day: %w", err)
	}

	return exists, nil
}

// Upsert implements checkin.Repository. The messageid conflict path replaces
// every field, so redelivery of the same message is idempotent in content.
func (r *checkinRepository) Upsert(ctx context.Context, c checkin.Checkin) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO checkins (userid, username, useremail, status, messageid, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (messageid) DO UPDATE SET
			userid = EXCLUDED.userid,
			username = EXCLUDED.username,
			useremail = EXCLUDED.useremail,
			status = EXCLUDED.status,
			timestamp = EXCLUDED.timestamp
	`

	_, err := q.Exec(ctx, query,
		c.UserID,
		c.UserName,
		c.UserEmail,
		c.Status,
		c.MessageID,
		c.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert checkin: %w", err)
	}

	return nil
}

// ListByDay implements checkin.Repository.
func (r *checkinRepository) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]checkin.Checkin, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, userid, username, useremail, status, timestamp, messageid
		FROM checkins
		WHERE timestamp >= $1
		  AND timestamp < $2
		ORDER BY timestamp DESC
	`

	rows, err := q.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query checkins by day: %w", err)
	}
	defer rows.Close()

	var checkins []checkin.Checkin
	for rows.Next() {
		var c checkin.Checkin
		err := rows.Scan(&c.ID, &c.UserID, &c.UserName, &c.UserEmail, &c.Status, &c.Timestamp, &c.MessageID)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkin: %w", err)
		}
		checkins = append(checkins, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read checkins: %w", err)
	}

	return checkins, nil
}
