package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/burningpaper/workfromhome/internal/domain/dashboard"
	"github.com/burningpaper/workfromhome/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.Repository {
	return &dashboardRepositoryImpl{db: db}
}

// CountDistinctWFHUsers implements dashboard.Repository.
func (r *dashboardRepositoryImpl) CountDistinctWFHUsers(ctx context.Context, dayStart, dayEnd time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(DISTINCT userid)
		FROM checkins
		WHERE status = 'WFH'
		  AND timestamp >= $1
		  AND timestamp < $2
	`

	var count int64
	err := q.QueryRow(ctx, query, dayStart, dayEnd).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count WFH users: %w", err)
	}

	return count, nil
}

// WFHBreakdown implements dashboard.Repository. The grouping column comes
// from a fixed whitelist, never from user input.
func (r *dashboardRepositoryImpl) WFHBreakdown(ctx context.Context, dayStart, dayEnd time.Time, dim dashboard.GroupDimension) ([]dashboard.BreakdownItem, error) {
	q := GetQuerier(ctx, r.db)

	column := "u.city"
	if dim == dashboard.GroupByJobTitle {
		column = "u.jobtitle"
	}

	// Soft join by email: unmatched check-ins land in the "Unknown" bucket,
	// never fail the query.
	query := fmt.Sprintf(`
		SELECT COALESCE(NULLIF(TRIM(%s), ''), 'Unknown') AS label,
		       COUNT(DISTINCT c.userid) AS user_count
		FROM checkins c
		LEFT JOIN users u ON LOWER(u.email) = LOWER(c.useremail)
		WHERE c.status = 'WFH'
		  AND c.timestamp >= $1
		  AND c.timestamp < $2
		GROUP BY label
		ORDER BY user_count DESC, label ASC
	`, column)

	rows, err := q.Query(ctx, query, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to query WFH breakdown: %w", err)
	}
	defer rows.Close()

	var items []dashboard.BreakdownItem
	for rows.Next() {
		var item dashboard.BreakdownItem
		if err := rows.Scan(&item.Label, &item.Count); err != nil {
			return nil, fmt.Errorf("failed to scan WFH breakdown row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read WFH breakdown: %w", err)
	}

	return items, nil
}
