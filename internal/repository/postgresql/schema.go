package postgresql

import (
	"context"
	"fmt"

	"github.com/burningpaper/workfromhome/internal/pkg/database"
)

// InitSchema creates or upgrades the two tables idempotently. Earlier
// deployments created the tables with fewer columns, so upgrades are
// additive column checks, not a migration framework.
func InitSchema(ctx context.Context, db *database.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS checkins (
			id SERIAL PRIMARY KEY,
			userid TEXT,
			username TEXT,
			status TEXT,
			timestamp TIMESTAMPTZ DEFAULT NOW(),
			messageid TEXT UNIQUE
		)`,
		`ALTER TABLE checkins ADD COLUMN IF NOT EXISTS useremail TEXT`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name TEXT,
			email TEXT UNIQUE
		)`,
		`ALTER TABLE users ADD COLUMN IF NOT EXISTS city TEXT`,
		`ALTER TABLE users ADD COLUMN IF NOT EXISTS jobtitle TEXT`,
		`ALTER TABLE users ADD COLUMN IF NOT EXISTS companyname TEXT`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return nil
}
