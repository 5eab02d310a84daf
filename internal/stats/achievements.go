package stats

import (
	"time"

	"github.com/bragboard/bragboard-service/internal/types"
)

// Badge tiers. A count below its milestone earns no badge at all.
const (
	BadgeBronze = "Bronze"
	BadgeSilver = "Silver"
	BadgeGold   = "Gold"
)

// Milestones per achievement category. Crossing 1x earns Bronze, 2x Silver,
// 4x Gold.
const (
	milestoneShoutouts = 5
	milestoneReactions = 10
	milestoneComments  = 10
	milestoneTagged    = 5
	milestoneMonthly   = 5
	milestoneStreak    = 7
)

// Achievement is one row of a user's achievement list.
type Achievement struct {
	Title     string `json:"title"`
	Label     string `json:"label"`
	Count     int    `json:"count"`
	Milestone int    `json:"milestone"`
	Badge     string `json:"badge,omitempty"`
}

// Tier maps a count onto a badge via a step function: Gold at 4x the
// milestone, Silver at 2x, Bronze at 1x, otherwise no badge.
func Tier(count, milestone int) string {
	switch {
	case count >= 4*milestone:
		return BadgeGold
	case count >= 2*milestone:
		return BadgeSilver
	case count >= milestone:
		return BadgeBronze
	default:
		return ""
	}
}

// UserAchievements computes the full achievement list for one user. The order
// is fixed: streak first, then sent, received, reactions given/received,
// comments given/received, tagged, monthly contributor. The streak entry never
// carries a badge.
func (s *Service) UserAchievements(userID string) ([]Achievement, error) {
	sent, err := s.store.CountShoutouts(types.ShoutOutCountFilter{GiverID: userID})
	if err != nil {
		return nil, err
	}
	received, err := s.store.CountShoutouts(types.ShoutOutCountFilter{ReceiverID: userID})
	if err != nil {
		return nil, err
	}
	reactionsGiven, err := s.store.CountReactions(types.ReactionCountFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	reactionsReceived, err := s.store.CountReactions(types.ReactionCountFilter{ShoutOutReceiverID: userID})
	if err != nil {
		return nil, err
	}
	commentsGiven, err := s.store.CountComments(types.CommentCountFilter{UserID: userID})
	if err != nil {
		return nil, err
	}
	commentsReceived, err := s.store.CountComments(types.CommentCountFilter{ShoutOutReceiverID: userID})
	if err != nil {
		return nil, err
	}
	tagged, err := s.store.CountTags(userID)
	if err != nil {
		return nil, err
	}

	monthStart := s.monthStart()
	monthlySent, err := s.store.CountShoutouts(types.ShoutOutCountFilter{GiverID: userID, Since: &monthStart})
	if err != nil {
		return nil, err
	}

	streak, err := s.UserStreak(userID)
	if err != nil {
		return nil, err
	}

	achievements := []Achievement{
		{Title: "Consistency Streak", Label: "day", Count: streak, Milestone: milestoneStreak},
		s.achievement("Shoutouts Sent", "shoutout", sent, milestoneShoutouts),
		s.achievement("Shoutouts Received", "shoutout", received, milestoneShoutouts),
		s.achievement("Reactions Given", "reaction", reactionsGiven, milestoneReactions),
		s.achievement("Reactions Received", "reaction", reactionsReceived, milestoneReactions),
		s.achievement("Comments Given", "comment", commentsGiven, milestoneComments),
		s.achievement("Comments Received", "comment", commentsReceived, milestoneComments),
		s.achievement("Tagged in Shoutouts", "tagged shoutout", tagged, milestoneTagged),
		s.achievement("Monthly Contributor", "shoutout", monthlySent, milestoneMonthly),
	}

	return achievements, nil
}

func (s *Service) achievement(title, label string, count, milestone int) Achievement {
	return Achievement{
		Title:     title,
		Label:     label,
		Count:     count,
		Milestone: milestone,
		Badge:     Tier(count, milestone),
	}
}

// monthStart is the first instant of the current month, UTC.
func (s *Service) monthStart() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
