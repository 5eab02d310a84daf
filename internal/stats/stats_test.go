package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bragboard/bragboard-service/internal/config"
	"github.com/bragboard/bragboard-service/internal/types"
)

// fakeStore returns canned analytics results; it stands in for the postgres
// activity reader.
type fakeStore struct {
	sent              int
	received          int
	reactionsGiven    int
	reactionsReceived int
	commentsGiven     int
	commentsReceived  int
	tagged            int
	monthlySent       int
	activityDates     []time.Time
	aggregates        []types.UserAggregate
	dailyCounts       map[string]int
	sitewide          types.SitewideCounts
	topContributors   []types.NamedCount
	mostTagged        []types.NamedCount
	departments       []types.NamedCount
}

func (f *fakeStore) CountShoutouts(flt types.ShoutOutCountFilter) (int, error) {
	switch {
	case flt.GiverID != "" && flt.Since != nil:
		return f.monthlySent, nil
	case flt.GiverID != "":
		return f.sent, nil
	case flt.ReceiverID != "":
		return f.received, nil
	}
	return 0, nil
}

func (f *fakeStore) CountReactions(flt types.ReactionCountFilter) (int, error) {
	if flt.UserID != "" {
		return f.reactionsGiven, nil
	}
	return f.reactionsReceived, nil
}

func (f *fakeStore) CountComments(flt types.CommentCountFilter) (int, error) {
	if flt.UserID != "" {
		return f.commentsGiven, nil
	}
	return f.commentsReceived, nil
}

func (f *fakeStore) CountTags(string) (int, error) { return f.tagged, nil }

func (f *fakeStore) DistinctActivityDates(string) ([]time.Time, error) {
	return f.activityDates, nil
}

func (f *fakeStore) PerUserAggregates(string) ([]types.UserAggregate, error) {
	return f.aggregates, nil
}

func (f *fakeStore) DailyShoutoutCounts(start, end time.Time) (map[string]int, error) {
	return f.dailyCounts, nil
}

func (f *fakeStore) SitewideCounts() (types.SitewideCounts, error) { return f.sitewide, nil }

func (f *fakeStore) TopContributors(limit int) ([]types.NamedCount, error) {
	if len(f.topContributors) > limit {
		return f.topContributors[:limit], nil
	}
	return f.topContributors, nil
}

func (f *fakeStore) MostTagged(limit int) ([]types.NamedCount, error) {
	return f.mostTagged, nil
}

func (f *fakeStore) DepartmentShoutoutCounts(limit int) ([]types.NamedCount, error) {
	return f.departments, nil
}

var testNow = time.Date(2025, time.March, 15, 10, 30, 0, 0, time.UTC)

func newTestService(store Store) *Service {
	svc := NewService(store, config.Leaderboard{
		SentWeight:     10,
		ReceivedWeight: 15,
		TaggedWeight:   5,
		CommentWeight:  2,
		DefaultTopN:    5,
	})
	svc.now = func() time.Time { return testNow }
	return svc
}

func day(offset int) time.Time {
	return time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestTier(t *testing.T) {
	assert.Equal(t, "", Tier(0, 5))
	assert.Equal(t, "", Tier(4, 5))
	assert.Equal(t, BadgeBronze, Tier(5, 5))
	assert.Equal(t, BadgeBronze, Tier(9, 5))
	assert.Equal(t, BadgeSilver, Tier(10, 5))
	assert.Equal(t, BadgeSilver, Tier(19, 5))
	assert.Equal(t, BadgeGold, Tier(20, 5))
	assert.Equal(t, BadgeGold, Tier(1000, 5))
}

func TestUserStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []time.Time
		want  int
	}{
		{"no activity ever", nil, 0},
		{"active today only", []time.Time{day(0)}, 1},
		{"three day run ending today", []time.Time{day(0), day(-1), day(-2)}, 3},
		{"run ending yesterday", []time.Time{day(-1), day(-2), day(-3), day(-4)}, 4},
		{"only two days ago", []time.Time{day(-2)}, 1},
		{"stale history", []time.Time{day(-10), day(-11)}, 1},
		{"gap breaks the run", []time.Time{day(0), day(-1), day(-3), day(-4)}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(&fakeStore{activityDates: tc.dates})
			streak, err := svc.UserStreak("7")
			require.NoError(t, err)
			assert.Equal(t, tc.want, streak)
		})
	}
}

func TestUserAchievements(t *testing.T) {
	store := &fakeStore{
		sent:              5,
		received:          20,
		reactionsGiven:    3,
		reactionsReceived: 40,
		commentsGiven:     10,
		commentsReceived:  0,
		tagged:            9,
		monthlySent:       2,
		activityDates:     []time.Time{day(0), day(-1)},
	}
	svc := newTestService(store)

	achievements, err := svc.UserAchievements("7")
	require.NoError(t, err)
	require.Len(t, achievements, 9)

	titles := make([]string, len(achievements))
	for i, a := range achievements {
		titles[i] = a.Title
	}
	assert.Equal(t, []string{
		"Consistency Streak",
		"Shoutouts Sent",
		"Shoutouts Received",
		"Reactions Given",
		"Reactions Received",
		"Comments Given",
		"Comments Received",
		"Tagged in Shoutouts",
		"Monthly Contributor",
	}, titles)

	// The streak entry never carries a badge.
	assert.Equal(t, 2, achievements[0].Count)
	assert.Empty(t, achievements[0].Badge)
	assert.Equal(t, 7, achievements[0].Milestone)

	assert.Equal(t, BadgeBronze, achievements[1].Badge) // sent 5, milestone 5
	assert.Equal(t, BadgeGold, achievements[2].Badge)   // received 20 = 4x5
	assert.Empty(t, achievements[3].Badge)              // reactions given 3 < 10
	assert.Equal(t, BadgeGold, achievements[4].Badge)   // reactions received 40 = 4x10
	assert.Equal(t, BadgeBronze, achievements[5].Badge) // comments given 10
	assert.Empty(t, achievements[6].Badge)              // comments received 0, no error
	assert.Equal(t, BadgeBronze, achievements[7].Badge) // tagged 9, milestone 5
	assert.Empty(t, achievements[8].Badge)              // monthly 2 < 5

	// Read-only aggregates are idempotent with no intervening writes.
	again, err := svc.UserAchievements("7")
	require.NoError(t, err)
	assert.Equal(t, achievements, again)
}

func TestScore(t *testing.T) {
	svc := newTestService(&fakeStore{})
	score := svc.Score(types.UserAggregate{Sent: 2, Received: 1, Tagged: 0, Comments: 3})
	assert.Equal(t, 41, score)
}

func TestUserLeaderboard(t *testing.T) {
	store := &fakeStore{
		aggregates: []types.UserAggregate{
			{UserID: "1", Username: "ana", Department: "Engineering", Sent: 2, Received: 1, Comments: 3},  // 41
			{UserID: "2", Username: "bo", Department: "Sales", Sent: 10},                                  // 100
			{UserID: "3", Username: "cy", Department: "Engineering"},                                      // 0, excluded
			{UserID: "10", Username: "dee", Department: "Engineering", Sent: 10},                          // 100, tie with bo
		},
		departments: []types.NamedCount{
			{Name: "Engineering", Count: 12},
			{Name: "Sales", Count: 10},
		},
	}
	svc := newTestService(store)

	lb, err := svc.UserLeaderboard("Engineering", 3)
	require.NoError(t, err)

	require.Len(t, lb.Global, 3)
	// Tie between "2" and "10" breaks on numeric user id ascending.
	assert.Equal(t, "bo", lb.Global[0].Username)
	assert.Equal(t, "dee", lb.Global[1].Username)
	assert.Equal(t, "ana", lb.Global[2].Username)
	assert.Equal(t, 100, lb.Global[0].Score)

	// Department view keeps global scores, filtered to the caller's department.
	require.Len(t, lb.Department, 2)
	assert.Equal(t, "dee", lb.Department[0].Username)
	assert.Equal(t, "ana", lb.Department[1].Username)

	require.Len(t, lb.TopDepartments, 2)
	assert.Equal(t, "Engineering", lb.TopDepartments[0].Name)

	// Zero-score users never appear.
	for _, e := range lb.Global {
		assert.NotEqual(t, "cy", e.Username)
	}
}

func TestUserLeaderboardRejectsNegativeTopN(t *testing.T) {
	svc := newTestService(&fakeStore{})
	_, err := svc.UserLeaderboard("Engineering", -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUserLeaderboardDefaultTopN(t *testing.T) {
	aggregates := make([]types.UserAggregate, 8)
	for i := range aggregates {
		aggregates[i] = types.UserAggregate{
			UserID:   string(rune('1' + i)),
			Username: "u",
			Sent:     i + 1,
		}
	}
	svc := newTestService(&fakeStore{aggregates: aggregates})

	lb, err := svc.UserLeaderboard("", 0)
	require.NoError(t, err)
	assert.Len(t, lb.Global, 5)
}

func TestActivityTrend(t *testing.T) {
	twoDaysAgo := day(-2).Format("2006-01-02")
	svc := newTestService(&fakeStore{dailyCounts: map[string]int{twoDaysAgo: 3}})

	series, err := svc.ActivityTrend(5)
	require.NoError(t, err)
	require.Len(t, series, 5)

	// Chronological, starting at today-4, zero-filled.
	assert.Equal(t, day(-4).Format("2006-01-02"), series[0].Date)
	assert.Equal(t, day(0).Format("2006-01-02"), series[4].Date)

	nonzero := 0
	for _, pt := range series {
		if pt.Count > 0 {
			nonzero++
			assert.Equal(t, twoDaysAgo, pt.Date)
			assert.Equal(t, 3, pt.Count)
		}
	}
	assert.Equal(t, 1, nonzero)
}

func TestActivityTrendWindowValidation(t *testing.T) {
	svc := newTestService(&fakeStore{})

	_, err := svc.ActivityTrend(0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.ActivityTrend(MaxTrendDays + 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSiteSummary(t *testing.T) {
	store := &fakeStore{
		sitewide: types.SitewideCounts{
			TotalUsers:      12,
			TotalShoutouts:  40,
			TotalReactions:  77,
			TotalReports:    4,
			PendingReports:  1,
			ResolvedReports: 3,
		},
		topContributors: []types.NamedCount{{Name: "ana", Count: 9}, {Name: "bo", Count: 5}},
		departments:     []types.NamedCount{{Name: "Engineering", Count: 20}},
	}
	svc := newTestService(store)

	summary, err := svc.SiteSummary()
	require.NoError(t, err)
	assert.Equal(t, 12, summary.TotalUsers)
	require.NotNil(t, summary.TopContributor)
	assert.Equal(t, "ana", summary.TopContributor.Name)
	require.Len(t, summary.Departments, 1)
}

func TestSiteSummaryEmptySite(t *testing.T) {
	svc := newTestService(&fakeStore{})

	summary, err := svc.SiteSummary()
	require.NoError(t, err)
	assert.Nil(t, summary.TopContributor)
	assert.Zero(t, summary.TotalShoutouts)
}
