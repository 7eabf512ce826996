package dashboard

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/burningpaper/workfromhome/internal/domain/checkin"
	"github.com/burningpaper/workfromhome/internal/domain/dashboard"
	"github.com/burningpaper/workfromhome/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboardRepo dashboard.Repository
	checkinRepo   checkin.Repository
	userRepo      user.Repository
	groupBy       dashboard.GroupDimension
	loc           *time.Location
}

func NewDashboardService(
	dashboardRepo dashboard.Repository,
	checkinRepo checkin.Repository,
	userRepo user.Repository,
	groupBy dashboard.GroupDimension,
	loc *time.Location,
) dashboard.Service {
	return &DashboardServiceImpl{
		dashboardRepo: dashboardRepo,
		checkinRepo:   checkinRepo,
		userRepo:      userRepo,
		groupBy:       groupBy,
		loc:           loc,
	}
}

// Stats implements dashboard.Service. The four independent queries run in
// parallel goroutines.
func (s *DashboardServiceImpl) Stats(ctx context.Context) (*dashboard.StatsResponse, error) {
	now := time.Now().In(s.loc)
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	var (
		wfhCount   int64
		totalUsers int64
		breakdown  []dashboard.BreakdownItem
		todayRows  []checkin.Checkin
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		wfhCount, err = s.dashboardRepo.CountDistinctWFHUsers(gCtx, dayStart, dayEnd)
		return err
	})

	g.Go(func() error {
		var err error
		totalUsers, err = s.userRepo.Count(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		breakdown, err = s.dashboardRepo.WFHBreakdown(gCtx, dayStart, dayEnd, s.groupBy)
		return err
	})

	g.Go(func() error {
		var err error
		todayRows, err = s.checkinRepo.ListByDay(gCtx, dayStart, dayEnd)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute dashboard stats: %w", err)
	}

	if breakdown == nil {
		breakdown = []dashboard.BreakdownItem{}
	}

	return &dashboard.StatsResponse{
		WFHCount:      wfhCount,
		TotalUsers:    totalUsers,
		WFHPercentage: percentage(wfhCount, totalUsers),
		GroupBy:       string(s.groupBy),
		Breakdown:     breakdown,
		TimeBuckets:   bucketQuarterHour(todayRows, s.loc),
	}, nil
}

// percentage returns round(100 * part / total), 0 when total is 0.
func percentage(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// bucketQuarterHour groups check-ins (any status) into 15-minute buckets
// labelled by bucket start time, ascending.
func bucketQuarterHour(checkins []checkin.Checkin, loc *time.Location) []dashboard.TimeBucketCount {
	counts := make(map[string]int64)
	for _, c := range checkins {
		local := c.Timestamp.In(loc)
		minute := local.Minute() / 15 * 15
		label := fmt.Sprintf("%02d:%02d", local.Hour(), minute)
		counts[label]++
	}

	buckets := make([]dashboard.TimeBucketCount, 0, len(counts))
	for label, count := range counts {
		buckets = append(buckets, dashboard.TimeBucketCount{Bucket: label, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Bucket < buckets[j].Bucket
	})

	return buckets
}
