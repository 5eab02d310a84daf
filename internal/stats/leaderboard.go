package stats

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/bragboard/bragboard-service/internal/types"
)

// Entry is one ranked leaderboard row.
type Entry struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Department string `json:"department"`
	Score      int    `json:"score"`
	Sent       int    `json:"sent"`
	Received   int    `json:"received"`
	Tagged     int    `json:"tagged"`
	Comments   int    `json:"comments"`
}

// Leaderboard is the full response: global top-N, the requesting user's
// department top-N, and the top departments by shoutouts given.
type Leaderboard struct {
	Global         []Entry            `json:"global"`
	Department     []Entry            `json:"department"`
	TopDepartments []types.NamedCount `json:"top_departments"`
}

// Score applies the configured weights to one user's aggregate counts.
func (s *Service) Score(ua types.UserAggregate) int {
	return ua.Sent*s.weights.Sent +
		ua.Received*s.weights.Received +
		ua.Tagged*s.weights.Tagged +
		ua.Comments*s.weights.Comments
}

// UserLeaderboard ranks every active user by weighted score. Users scoring 0
// are excluded. Ties are broken by user id ascending so the ordering is
// deterministic across calls. topN <= 0 falls back to the configured default
// when zero, and is rejected when negative.
func (s *Service) UserLeaderboard(department string, topN int) (*Leaderboard, error) {
	if topN == 0 {
		topN = s.topN
	}
	if topN <= 0 {
		return nil, fmt.Errorf("%w: top_n must be positive", ErrInvalidArgument)
	}

	aggregates, err := s.store.PerUserAggregates("")
	if err != nil {
		return nil, err
	}

	ranked := s.rank(aggregates)

	var deptRanked []Entry
	for _, e := range ranked {
		if e.Department == department {
			deptRanked = append(deptRanked, e)
		}
	}

	topDepartments, err := s.store.DepartmentShoutoutCounts(topN)
	if err != nil {
		return nil, err
	}

	return &Leaderboard{
		Global:         head(ranked, topN),
		Department:     head(deptRanked, topN),
		TopDepartments: topDepartments,
	}, nil
}

// rank scores and sorts aggregates descending, dropping zero scores.
func (s *Service) rank(aggregates []types.UserAggregate) []Entry {
	entries := make([]Entry, 0, len(aggregates))
	for _, ua := range aggregates {
		score := s.Score(ua)
		if score == 0 {
			continue
		}
		entries = append(entries, Entry{
			UserID:     ua.UserID,
			Username:   ua.Username,
			Department: ua.Department,
			Score:      score,
			Sent:       ua.Sent,
			Received:   ua.Received,
			Tagged:     ua.Tagged,
			Comments:   ua.Comments,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return numericLess(entries[i].UserID, entries[j].UserID)
	})

	return entries
}

func head(entries []Entry, n int) []Entry {
	if len(entries) > n {
		return entries[:n]
	}
	return entries
}

// numericLess orders ids numerically when both parse, lexically otherwise.
func numericLess(a, b string) bool {
	ai, aerr := strconv.Atoi(a)
	bi, berr := strconv.Atoi(b)
	if aerr == nil && berr == nil {
		return ai < bi
	}
	return a < b
}
