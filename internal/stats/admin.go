package stats

import (
	"fmt"

	"github.com/bragboard/bragboard-service/internal/types"
)

// AdminStats is the sitewide dashboard summary.
type AdminStats struct {
	types.SitewideCounts
	TopContributor *types.NamedCount  `json:"top_contributor,omitempty"`
	Departments    []types.NamedCount `json:"departments"`
}

// TrendPoint is one day of the activity trend.
type TrendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

const departmentBreakdownSize = 5

// SiteSummary aggregates the admin dashboard counters, the single top
// contributor by shoutouts sent, and the department breakdown.
func (s *Service) SiteSummary() (*AdminStats, error) {
	counts, err := s.store.SitewideCounts()
	if err != nil {
		return nil, err
	}

	top, err := s.store.TopContributors(1)
	if err != nil {
		return nil, err
	}

	departments, err := s.store.DepartmentShoutoutCounts(departmentBreakdownSize)
	if err != nil {
		return nil, err
	}

	result := &AdminStats{SitewideCounts: counts, Departments: departments}
	if len(top) > 0 {
		result.TopContributor = &top[0]
	}

	return result, nil
}

// ActivityTrend returns one point per UTC calendar day for the last `days`
// days inclusive of today, oldest first. Days without activity are explicit
// zeroes, so the series always has exactly `days` entries.
func (s *Service) ActivityTrend(days int) ([]TrendPoint, error) {
	if days <= 0 || days > MaxTrendDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidArgument, MaxTrendDays)
	}

	end := s.today()
	start := end.AddDate(0, 0, -(days - 1))

	counts, err := s.store.DailyShoutoutCounts(start, end)
	if err != nil {
		return nil, err
	}

	series := make([]TrendPoint, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		series = append(series, TrendPoint{Date: key, Count: counts[key]})
	}

	return series, nil
}

// RankedContributors returns the top-N users by shoutouts sent.
func (s *Service) RankedContributors(topN int) ([]types.NamedCount, error) {
	if topN == 0 {
		topN = s.topN
	}
	if topN <= 0 {
		return nil, fmt.Errorf("%w: top_n must be positive", ErrInvalidArgument)
	}
	return s.store.TopContributors(topN)
}

// RankedTagged returns the top-N users by times tagged.
func (s *Service) RankedTagged(topN int) ([]types.NamedCount, error) {
	if topN == 0 {
		topN = s.topN
	}
	if topN <= 0 {
		return nil, fmt.Errorf("%w: top_n must be positive", ErrInvalidArgument)
	}
	return s.store.MostTagged(topN)
}
