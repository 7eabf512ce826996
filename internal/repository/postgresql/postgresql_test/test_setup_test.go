package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/burningpaper/workfromhome/internal/pkg/database"
	"github.com/burningpaper/workfromhome/internal/repository/postgresql"
)

// testDatabase connects to the database named by TEST_DATABASE_URL and
// ensures the schema exists. Tests are skipped when the variable is unset.
func testDatabase(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping repository integration tests")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	t.Cleanup(db.Close)

	if err := postgresql.InitSchema(context.Background(), db); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}

	return db
}

// truncateTables clears all data between tests.
func truncateTables(t *testing.T, db *database.DB) {
	t.Helper()
	ctx := context.Background()

	for _, table := range []string{"checkins", "users"} {
		if _, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}
