package postgresql

import (
	"context"
	"fmt"

	"github.com/burningpaper/workfromhome/internal/domain/user"
	"github.com/burningpaper/workfromhome/internal/pkg/database"
)

type userRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.Repository {
	return &userRepository{db: db}
}

// Upsert implements user.Repository. Email is the natural key; a re-import
// overwrites all other fields.
func (r *userRepository) Upsert(ctx context.Context, p user.Profile) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (name, email, city, jobtitle, companyname)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO UPDATE SET
			name = EXCLUDED.name,
			city = EXCLUDED.city,
			jobtitle = EXCLUDED.jobtitle,
			companyname = EXCLUDED.companyname
	`

	_, err := q.Exec(ctx, query, p.Name, p.Email, p.City, p.JobTitle, p.CompanyName)
	if err != nil {
		return fmt.Errorf("failed to upsert user profile: %w", err)
	}

	return nil
}

// Count implements user.Repository.
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count user profiles: %w", err)
	}

	return count, nil
}

// Clear implements user.Repository.
func (r *userRepository) Clear(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `TRUNCATE TABLE users`); err != nil {
		return fmt.Errorf("failed to clear user profiles: %w", err)
	}

	return nil
}
