package dashboard

import (
	"context"
	"time"
)

// GroupDimension selects which profile attribute the WFH breakdown groups by.
type GroupDimension string

const (
	GroupByCity     GroupDimension = "city"
	GroupByJobTitle GroupDimension = "job_title"
)

// Repository defines the aggregate queries behind the dashboard. Day
// parameters are half-open ranges computed by the caller in the configured
// time zone.
type Repository interface {
	// CountDistinctWFHUsers counts distinct userids with status WFH inside
	// [dayStart, dayEnd).
	CountDistinctWFHUsers(ctx context.Context, dayStart, dayEnd time.Time) (int64, error)

	// WFHBreakdown groups distinct WFH users inside [dayStart, dayEnd) by
	// the joined profile attribute; unmatched or empty values bucket under
	// "Unknown". Ordered by count descending, then label.
	WFHBreakdown(ctx context.Context, dayStart, dayEnd time.Time, dim GroupDimension) ([]BreakdownItem, error)
}

// Service computes the dashboard aggregate.
type Service interface {
	Stats(ctx context.Context) (*StatsResponse, error)
}
