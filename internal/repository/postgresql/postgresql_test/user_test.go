package postgresql_test

import (
	"context"
	"testing"

	"github.com/burningpaper/workfromhome/internal/domain/user"
	"github.com/burningpaper/workfromhome/internal/repository/postgresql"
	userService "github.com/burningpaper/workfromhome/internal/service/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UpsertByEmail(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(db)

	require.NoError(t, repo.Upsert(ctx, user.Profile{
		Name: "Alice", Email: "alice@example.com", City: "Cape Town",
		JobTitle: "Engineer", CompanyName: "Acme",
	}))

	// Re-import with the same email replaces the profile.
	require.NoError(t, repo.Upsert(ctx, user.Profile{
		Name: "Alice B", Email: "alice@example.com", City: "Johannesburg",
		JobTitle: "Senior Engineer", CompanyName: "Acme",
	}))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	var name, city, jobTitle string
	err = db.QueryRow(ctx, "SELECT name, city, jobtitle FROM users WHERE email = $1", "alice@example.com").
		Scan(&name, &city, &jobTitle)
	require.NoError(t, err)
	assert.Equal(t, "Alice B", name)
	assert.Equal(t, "Johannesburg", city)
	assert.Equal(t, "Senior Engineer", jobTitle)
}

func TestUserRepository_Clear(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(db)

	require.NoError(t, repo.Upsert(ctx, user.Profile{Name: "Alice", Email: "alice@example.com"}))
	require.NoError(t, repo.Upsert(ctx, user.Profile{Name: "Bob", Email: "bob@example.com"}))

	require.NoError(t, repo.Clear(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestImporter_ImportAgainstRealDatabase(t *testing.T) {
	db := testDatabase(t)
	truncateTables(t, db)
	ctx := context.Background()

	repo := postgresql.NewUserRepository(db)
	importer := userService.NewImporter(db, repo)

	records := []map[string]any{
		{"Full Name": "Alice", "E-mail": "alice@example.com", "City": "Cape Town", "Job Title": "Engineer"},
		{"name": "Bob", "email": "bob@example.com", "company_name": "Acme"},
		{"name": "No Email"}, // skipped
	}

	imported, err := importer.Import(ctx, records)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	var city string
	err = db.QueryRow(ctx, "SELECT city FROM users WHERE email = $1", "alice@example.com").Scan(&city)
	require.NoError(t, err)
	assert.Equal(t, "Cape Town", city)
}
