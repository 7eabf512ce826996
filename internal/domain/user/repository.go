package user

import "context"

// Repository defines data access for user profiles.
type Repository interface {
	// Upsert inserts the profile, or on an email collision overwrites all
	// other fields.
	Upsert(ctx context.Context, p Profile) error

	// Count returns the total number of stored profiles.
	Count(ctx context.Context) (int64, error)

	// Clear empties the profile table unconditionally.
	Clear(ctx context.Context) error
}
