package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/burningpaper/workfromhome/internal/domain/user"
	"github.com/burningpaper/workfromhome/internal/pkg/database"
	"github.com/burningpaper/workfromhome/internal/pkg/validator"
	"github.com/burningpaper/workfromhome/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
)

type ImporterImpl struct {
	db   *database.DB
	repo user.Repository
}

func NewImporter(db *database.DB, repo user.Repository) user.Importer {
	return &ImporterImpl{db: db, repo: repo}
}

// Field key variants seen across export tools. Keys are compared after
// normalizeKey, so "jobTitle", "job_title" and "Job Title" all collapse to
// "jobtitle".
var fieldVariants = map[string][]string{
	"name":    {"name", "fullname", "username", "displayname"},
	"email":   {"email", "emailaddress", "useremail", "mail"},
	"city":    {"city"},
	"title":   {"jobtitle", "title", "position"},
	"company": {"companyname", "company"},
}

func normalizeKey(key string) string {
	key = strings.ToLower(key)
	for _, cut := range []string{" ", "_", "-"} {
		key = strings.ReplaceAll(key, cut, "")
	}
	return key
}

// resolveField returns the first non-empty string value among the logical
// field's key variants.
func resolveField(record map[string]any, logical string) string {
	normalized := make(map[string]string, len(record))
	for k, v := range record {
		if s, ok := v.(string); ok {
			nk := normalizeKey(k)
			if _, taken := normalized[nk]; !taken {
				normalized[nk] = s
			}
		}
	}
	for _, variant := range fieldVariants[logical] {
		if s := strings.TrimSpace(normalized[variant]); s != "" {
			return s
		}
	}
	return ""
}

// Import implements user.Importer. The whole batch runs in one transaction
// so a re-import never leaves a half-replaced profile set.
func (s *ImporterImpl) Import(ctx context.Context, records []map[string]any) (int, error) {
	imported := 0

	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx) //nolint:staticcheck // key shared with GetQuerier

		for i, record := range records {
			email := resolveField(record, "email")
			if email == "" || !validator.IsValidEmail(email) {
				slog.Warn("skipping user record without usable email", "index", i)
				continue
			}

			profile := user.Profile{
				Name:        resolveField(record, "name"),
				Email:       email,
				City:        resolveField(record, "city"),
				JobTitle:    resolveField(record, "title"),
				CompanyName: resolveField(record, "company"),
			}

			if err := s.repo.Upsert(txCtx, profile); err != nil {
				return fmt.Errorf("failed to import user %s: %w", email, err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.Info("imported user profiles", "count", imported, "received", len(records))
	return imported, nil
}

// Clear implements user.Importer.
func (s *ImporterImpl) Clear(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return err
	}
	slog.Info("cleared user profiles")
	return nil
}
