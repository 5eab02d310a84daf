package stats

import "time"

// UserStreak returns the number of consecutive UTC calendar days of shoutout
// activity (giving or receiving) ending at today or yesterday.
//
// The anchor is today when today saw activity, otherwise yesterday. When
// neither anchor day saw activity but the user has any history at all, the
// streak is 1: the walk measures backward contiguity from the most recent
// activity date and does not require that date to be current. No history at
// all is 0.
func (s *Service) UserStreak(userID string) (int, error) {
	dates, err := s.store.DistinctActivityDates(userID)
	if err != nil {
		return 0, err
	}
	if len(dates) == 0 {
		return 0, nil
	}

	// Membership set keyed by calendar date; the walk below is O(run length).
	active := make(map[time.Time]bool, len(dates))
	for _, d := range dates {
		active[dateOnly(d.UTC())] = true
	}

	today := s.today()
	cursor := today
	if !active[cursor] {
		cursor = today.AddDate(0, 0, -1)
		if !active[cursor] {
			return 1, nil
		}
	}

	streak := 1
	for active[cursor.AddDate(0, 0, -1)] {
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}

	return streak, nil
}
