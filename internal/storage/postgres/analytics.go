package postgres

import (
	"fmt"
	"time"

	"github.com/bragboard/bragboard-service/internal/types"
)

// Activity reader: counting and ranking queries feeding the stats package.
// Every query here filters soft-deleted shoutouts/comments in SQL, so callers
// never have to re-derive the "visible row" rule.

func (p *Postgres) CountShoutouts(f types.ShoutOutCountFilter) (int, error) {
	query := `SELECT COUNT(*) FROM shoutouts s WHERE s.is_deleted = FALSE`
	args := []interface{}{}

	if f.GiverID != "" {
		args = append(args, f.GiverID)
		query += fmt.Sprintf(" AND s.giver_id = $%d", len(args))
	}
	if f.ReceiverID != "" {
		args = append(args, f.ReceiverID)
		query += fmt.Sprintf(" AND s.receiver_id = $%d", len(args))
	}
	if f.Department != "" {
		args = append(args, f.Department)
		query += fmt.Sprintf(" AND s.giver_department = $%d", len(args))
	}
	if f.Since != nil {
		args = append(args, *f.Since)
		query += fmt.Sprintf(" AND s.created_at >= $%d", len(args))
	}

	var count int
	err := p.Db.QueryRow(query, args...).Scan(&count)
	return count, err
}

func (p *Postgres) CountReactions(f types.ReactionCountFilter) (int, error) {
	query := `
	SELECT COUNT(*)
	FROM reactions rx
	JOIN shoutouts s ON s.id = rx.shoutout_id
	WHERE s.is_deleted = FALSE
	`
	args := []interface{}{}

	if f.UserID != "" {
		args = append(args, f.UserID)
		query += fmt.Sprintf(" AND rx.user_id = $%d", len(args))
	}
	if f.ShoutOutReceiverID != "" {
		args = append(args, f.ShoutOutReceiverID)
		query += fmt.Sprintf(" AND s.receiver_id = $%d", len(args))
	}

	var count int
	err := p.Db.QueryRow(query, args...).Scan(&count)
	return count, err
}

func (p *Postgres) CountComments(f types.CommentCountFilter) (int, error) {
	query := `
	SELECT COUNT(*)
	FROM comments c
	JOIN shoutouts s ON s.id = c.shoutout_id
	WHERE c.is_deleted = FALSE AND s.is_deleted = FALSE
	`
	args := []interface{}{}

	if f.UserID != "" {
		args = append(args, f.UserID)
		query += fmt.Sprintf(" AND c.user_id = $%d", len(args))
	}
	if f.ShoutOutReceiverID != "" {
		args = append(args, f.ShoutOutReceiverID)
		query += fmt.Sprintf(" AND s.receiver_id = $%d", len(args))
	}

	var count int
	err := p.Db.QueryRow(query, args...).Scan(&count)
	return count, err
}

func (p *Postgres) CountTags(taggedUserID string) (int, error) {
	var count int
	err := p.Db.QueryRow(`
	SELECT COUNT(*)
	FROM shoutout_tags t
	JOIN shoutouts s ON s.id = t.shoutout_id
	WHERE t.tagged_user_id = $1 AND s.is_deleted = FALSE
	`, taggedUserID).Scan(&count)
	return count, err
}

// DistinctActivityDates returns the distinct UTC calendar dates on which the
// user gave or received a non-deleted shoutout. Input to the streak calculator.
func (p *Postgres) DistinctActivityDates(userID string) ([]time.Time, error) {
	rows, err := p.Db.Query(`
	SELECT DISTINCT (s.created_at AT TIME ZONE 'UTC')::date AS activity_date
	FROM shoutouts s
	WHERE s.is_deleted = FALSE AND (s.giver_id = $1 OR s.receiver_id = $1)
	ORDER BY activity_date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return dates, rows.Err()
}

// PerUserAggregates returns, for every user with at least one nonzero metric,
// the counts the leaderboard scores on. One grouped query instead of four
// counts per user.
func (p *Postgres) PerUserAggregates(department string) ([]types.UserAggregate, error) {
	query := `
	SELECT
		u.id,
		u.username,
		u.department,
		COALESCE(sent.n, 0)     AS sent,
		COALESCE(received.n, 0) AS received,
		COALESCE(tagged.n, 0)   AS tagged,
		COALESCE(cmts.n, 0)     AS comments
	FROM users u
	LEFT JOIN (
		SELECT giver_id AS uid, COUNT(*) AS n
		FROM shoutouts WHERE is_deleted = FALSE GROUP BY giver_id
	) sent ON sent.uid = u.id
	LEFT JOIN (
		SELECT receiver_id AS uid, COUNT(*) AS n
		FROM shoutouts WHERE is_deleted = FALSE GROUP BY receiver_id
	) received ON received.uid = u.id
	LEFT JOIN (
		SELECT t.tagged_user_id AS uid, COUNT(*) AS n
		FROM shoutout_tags t
		JOIN shoutouts s ON s.id = t.shoutout_id
		WHERE s.is_deleted = FALSE
		GROUP BY t.tagged_user_id
	) tagged ON tagged.uid = u.id
	LEFT JOIN (
		SELECT c.user_id AS uid, COUNT(*) AS n
		FROM comments c
		JOIN shoutouts s ON s.id = c.shoutout_id
		WHERE c.is_deleted = FALSE AND s.is_deleted = FALSE
		GROUP BY c.user_id
	) cmts ON cmts.uid = u.id
	WHERE COALESCE(sent.n, 0) + COALESCE(received.n, 0) + COALESCE(tagged.n, 0) + COALESCE(cmts.n, 0) > 0
	`
	args := []interface{}{}

	if department != "" {
		args = append(args, department)
		query += fmt.Sprintf(" AND u.department = $%d", len(args))
	}

	query += " ORDER BY u.id ASC"

	rows, err := p.Db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []types.UserAggregate
	for rows.Next() {
		var ua types.UserAggregate
		if err := rows.Scan(&ua.UserID, &ua.Username, &ua.Department, &ua.Sent, &ua.Received, &ua.Tagged, &ua.Comments); err != nil {
			return nil, err
		}
		result = append(result, ua)
	}

	return result, rows.Err()
}

// DailyShoutoutCounts returns a sparse date→count map of non-deleted shoutouts
// created on each UTC calendar date in [start, end]. The stats package
// zero-fills missing days.
func (p *Postgres) DailyShoutoutCounts(start, end time.Time) (map[string]int, error) {
	rows, err := p.Db.Query(`
	SELECT (s.created_at AT TIME ZONE 'UTC')::date AS day, COUNT(*)
	FROM shoutouts s
	WHERE s.is_deleted = FALSE
	  AND (s.created_at AT TIME ZONE 'UTC')::date BETWEEN $1::date AND $2::date
	GROUP BY day
	`, start.UTC().Format("2006-01-02"), end.UTC().Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day time.Time
		var n int
		if err := rows.Scan(&day, &n); err != nil {
			return nil, err
		}
		counts[day.Format("2006-01-02")] = n
	}

	return counts, rows.Err()
}

func (p *Postgres) SitewideCounts() (types.SitewideCounts, error) {
	var sc types.SitewideCounts
	err := p.Db.QueryRow(`
	SELECT
		(SELECT COUNT(*) FROM users),
		(SELECT COUNT(*) FROM shoutouts WHERE is_deleted = FALSE),
		(SELECT COUNT(*) FROM reactions rx JOIN shoutouts s ON s.id = rx.shoutout_id WHERE s.is_deleted = FALSE),
		(SELECT COUNT(*) FROM reports),
		(SELECT COUNT(*) FROM reports WHERE status = 'pending'),
		(SELECT COUNT(*) FROM reports WHERE status = 'resolved')
	`).Scan(&sc.TotalUsers, &sc.TotalShoutouts, &sc.TotalReactions,
		&sc.TotalReports, &sc.PendingReports, &sc.ResolvedReports)
	return sc, err
}

func (p *Postgres) TopContributors(limit int) ([]types.NamedCount, error) {
	return p.namedCounts(`
	SELECT u.username, COUNT(s.id) AS n
	FROM users u
	JOIN shoutouts s ON s.giver_id = u.id
	WHERE s.is_deleted = FALSE
	GROUP BY u.id
	ORDER BY n DESC, u.id ASC
	LIMIT $1
	`, limit)
}

func (p *Postgres) MostTagged(limit int) ([]types.NamedCount, error) {
	return p.namedCounts(`
	SELECT u.username, COUNT(t.id) AS n
	FROM users u
	JOIN shoutout_tags t ON t.tagged_user_id = u.id
	JOIN shoutouts s ON s.id = t.shoutout_id
	WHERE s.is_deleted = FALSE
	GROUP BY u.id
	ORDER BY n DESC, u.id ASC
	LIMIT $1
	`, limit)
}

// DepartmentShoutoutCounts credits each shoutout to the giver's department.
// Empty department strings are excluded.
func (p *Postgres) DepartmentShoutoutCounts(limit int) ([]types.NamedCount, error) {
	return p.namedCounts(`
	SELECT s.giver_department, COUNT(*) AS n
	FROM shoutouts s
	WHERE s.is_deleted = FALSE AND s.giver_department <> ''
	GROUP BY s.giver_department
	ORDER BY n DESC, s.giver_department ASC
	LIMIT $1
	`, limit)
}

func (p *Postgres) namedCounts(query string, limit int) ([]types.NamedCount, error) {
	rows, err := p.Db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []types.NamedCount
	for rows.Next() {
		var nc types.NamedCount
		if err := rows.Scan(&nc.Name, &nc.Count); err != nil {
			return nil, err
		}
		result = append(result, nc)
	}

	return result, rows.Err()
}
