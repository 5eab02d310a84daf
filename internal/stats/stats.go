// Package stats computes the gamification and dashboard aggregates: per-user
// achievements, the consecutive-day activity streak, leaderboard rankings and
// the admin summaries. Everything here is a stateless pure function over the
// Store; nothing is cached and recomputation is always correct for the current
// snapshot.
package stats

import (
	"errors"
	"time"

	"github.com/bragboard/bragboard-service/internal/config"
	"github.com/bragboard/bragboard-service/internal/types"
)

// ErrInvalidArgument is returned for bad caller input (top_n <= 0, day windows
// outside the supported range). Handlers translate it to a 400.
var ErrInvalidArgument = errors.New("invalid argument")

// MaxTrendDays bounds the activity trend window.
const MaxTrendDays = 90

// Store is the data-access collaborator the calculators read from. It is the
// analytics subset of storage.Storage; tests supply a fake.
type Store interface {
	CountShoutouts(f types.ShoutOutCountFilter) (int, error)
	CountReactions(f types.ReactionCountFilter) (int, error)
	CountComments(f types.CommentCountFilter) (int, error)
	CountTags(taggedUserID string) (int, error)
	DistinctActivityDates(userID string) ([]time.Time, error)
	PerUserAggregates(department string) ([]types.UserAggregate, error)
	DailyShoutoutCounts(start, end time.Time) (map[string]int, error)
	SitewideCounts() (types.SitewideCounts, error)
	TopContributors(limit int) ([]types.NamedCount, error)
	MostTagged(limit int) ([]types.NamedCount, error)
	DepartmentShoutoutCounts(limit int) ([]types.NamedCount, error)
}

// Weights are the leaderboard scoring factors, loaded from config.
type Weights struct {
	Sent     int
	Received int
	Tagged   int
	Comments int
}

// Service wires the calculators to a Store.
type Service struct {
	store   Store
	weights Weights
	topN    int

	// now is a hook for tests; production uses time.Now.
	now func() time.Time
}

func NewService(store Store, cfg config.Leaderboard) *Service {
	return &Service{
		store: store,
		weights: Weights{
			Sent:     cfg.SentWeight,
			Received: cfg.ReceivedWeight,
			Tagged:   cfg.TaggedWeight,
			Comments: cfg.CommentWeight,
		},
		topN: cfg.DefaultTopN,
		now:  time.Now,
	}
}

// today returns the current UTC calendar date (midnight).
func (s *Service) today() time.Time {
	return dateOnly(s.now().UTC())
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
