package user

import "context"

// Importer handles bulk profile loads.
type Importer interface {
	// Import upserts one profile per input record, keyed by email.
	// Field values are resolved from several key-name variants (case and
	// spacing variants of the same logical field). Records without a
	// usable email are skipped and logged, not failed. Returns the number
	// of profiles upserted.
	Import(ctx context.Context, records []map[string]any) (int, error)

	// Clear empties the profile table.
	Clear(ctx context.Context) error
}
