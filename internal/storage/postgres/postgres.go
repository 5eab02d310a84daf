package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/bragboard/bragboard-service/internal/config"
	"github.com/bragboard/bragboard-service/internal/storage"
	"github.com/bragboard/bragboard-service/internal/types"
	"github.com/bragboard/bragboard-service/internal/types/users"
)

type Postgres struct {
	Db *sql.DB
}

func NewPostgres(cfg *config.Config) (*Postgres, error) {
	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.PGSQL.Host, cfg.PGSQL.Port, cfg.PGSQL.User, cfg.PGSQL.Password, cfg.PGSQL.DBName, cfg.PGSQL.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	pg := &Postgres{Db: db}
	if err := pg.CreateTables(); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return pg, nil
}

func (p *Postgres) CreateTables() error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(64) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password TEXT NOT NULL,
			department VARCHAR(128) NOT NULL DEFAULT '',
			role VARCHAR(16) NOT NULL DEFAULT 'employee' CHECK (role IN ('employee', 'admin')),
			joined_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS shoutouts (
			id SERIAL PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			message TEXT NOT NULL,
			giver_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			receiver_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			giver_department VARCHAR(128) NOT NULL DEFAULT '',
			receiver_department VARCHAR(128) NOT NULL DEFAULT '',
			category VARCHAR(32) NOT NULL CHECK (category IN ('teamwork', 'innovation', 'leadership', 'customer_service', 'problem_solving', 'mentorship')),
			visibility VARCHAR(32) NOT NULL DEFAULT 'public' CHECK (visibility IN ('public', 'department_only', 'private')),
			image_key VARCHAR(255),
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			edited_at TIMESTAMPTZ,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS shoutout_tags (
			id SERIAL PRIMARY KEY,
			shoutout_id INTEGER NOT NULL REFERENCES shoutouts(id) ON DELETE CASCADE,
			tagged_user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			UNIQUE (shoutout_id, tagged_user_id)
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS reactions (
			id SERIAL PRIMARY KEY,
			shoutout_id INTEGER NOT NULL REFERENCES shoutouts(id) ON DELETE CASCADE,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			reaction_type VARCHAR(32) NOT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			UNIQUE (shoutout_id, user_id)
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS comments (
			id SERIAL PRIMARY KEY,
			shoutout_id INTEGER NOT NULL REFERENCES shoutouts(id) ON DELETE CASCADE,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP,
			edited_at TIMESTAMPTZ,
			is_deleted BOOLEAN NOT NULL DEFAULT FALSE
		);
		`,
		`
		CREATE TABLE IF NOT EXISTS reports (
			id SERIAL PRIMARY KEY,
			shoutout_id INTEGER NOT NULL REFERENCES shoutouts(id) ON DELETE CASCADE,
			reporter_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			reason VARCHAR(500) NOT NULL,
			status VARCHAR(16) NOT NULL DEFAULT 'pending' CHECK (status IN ('pending', 'resolved')),
			action_taken_by INTEGER REFERENCES users(id),
			created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
		);
		`,
	}

	for _, q := range queries {
		if _, err := p.Db.Exec(q); err != nil {
			return err
		}
	}

	return nil
}

func fmtTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func fmtNullTime(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return fmtTime(t.Time)
}

// isUniqueViolation reports whether err is a postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

// ---------- Users ----------

func (p *Postgres) CreateUser(username, email, hashedPassword, department, role string) (string, error) {
	var userID int
	query := `
	INSERT INTO users (username, email, password, department, role)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id
	`

	err := p.Db.QueryRow(query, username, email, hashedPassword, department, role).Scan(&userID)
	if err != nil {
		if isUniqueViolation(err) {
			return "", storage.ErrConflict
		}
		return "", err
	}

	return fmt.Sprintf("%d", userID), nil
}

func (p *Postgres) GetUserByEmail(email string) (users.User, error) {
	var u users.User
	var joined time.Time
	query := `
	SELECT id, username, email, password, department, role, joined_at
	FROM users WHERE email = $1
	`

	err := p.Db.QueryRow(query, email).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Department, &u.Role, &joined)
	if errors.Is(err, sql.ErrNoRows) {
		return u, storage.ErrNotFound
	}
	if err != nil {
		return u, err
	}
	u.JoinedAt = fmtTime(joined)

	return u, nil
}

func (p *Postgres) GetUserByID(id string) (users.User, error) {
	var u users.User
	var joined time.Time
	query := `
	SELECT id, username, email, password, department, role, joined_at
	FROM users WHERE id = $1
	`

	err := p.Db.QueryRow(query, id).Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Department, &u.Role, &joined)
	if errors.Is(err, sql.ErrNoRows) {
		return u, storage.ErrNotFound
	}
	if err != nil {
		return u, err
	}
	u.JoinedAt = fmtTime(joined)

	return u, nil
}

func (p *Postgres) ListUsers(department, search string, limit int) ([]users.User, error) {
	query := `
	SELECT id, username, email, department, role
	FROM users WHERE 1=1
	`
	args := []interface{}{}

	if department != "" && department != "all" {
		args = append(args, department)
		query += fmt.Sprintf(" AND department = $%d", len(args))
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		query += fmt.Sprintf(" AND username ILIKE $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY username ASC LIMIT $%d", len(args))

	rows, err := p.Db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []users.User
	for rows.Next() {
		var u users.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.Department, &u.Role); err != nil {
			return nil, err
		}
		result = append(result, u)
	}

	return result, rows.Err()
}

func (p *Postgres) DeleteUser(id string) error {
	res, err := p.Db.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (p *Postgres) CountUsersInDepartment(department string) (int, error) {
	var count int
	err := p.Db.QueryRow(`SELECT COUNT(*) FROM users WHERE department = $1`, department).Scan(&count)
	return count, err
}

// ---------- ShoutOuts ----------

func (p *Postgres) CreateShoutOut(so types.ShoutOut, taggedUserIDs []string) (string, error) {
	tx, err := p.Db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var shoutoutID int
	query := `
	INSERT INTO shoutouts (title, message, giver_id, receiver_id, giver_department, receiver_department, category, visibility, image_key)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
	RETURNING id
	`

	err = tx.QueryRow(query, so.Title, so.Message, so.GiverID, so.ReceiverID,
		so.GiverDepartment, so.ReceiverDepartment, so.Category, so.Visibility, so.ImageKey).Scan(&shoutoutID)
	if err != nil {
		return "", err
	}

	for _, uid := range taggedUserIDs {
		_, err = tx.Exec(`
		INSERT INTO shoutout_tags (shoutout_id, tagged_user_id)
		VALUES ($1, $2)
		ON CONFLICT (shoutout_id, tagged_user_id) DO NOTHING
		`, shoutoutID, uid)
		if err != nil {
			return "", err
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%d", shoutoutID), nil
}

const shoutoutColumns = `
	s.id, s.title, s.message, s.giver_id, g.username, s.receiver_id, r.username,
	s.giver_department, s.receiver_department, s.category, s.visibility,
	COALESCE(s.image_key, ''), s.created_at, s.edited_at, s.is_deleted
`

func (p *Postgres) scanShoutOut(scanner interface{ Scan(...interface{}) error }) (types.ShoutOut, error) {
	var so types.ShoutOut
	var created time.Time
	var edited sql.NullTime

	err := scanner.Scan(&so.ID, &so.Title, &so.Message, &so.GiverID, &so.GiverName,
		&so.ReceiverID, &so.ReceiverName, &so.GiverDepartment, &so.ReceiverDepartment,
		&so.Category, &so.Visibility, &so.ImageKey, &created, &edited, &so.IsDeleted)
	if err != nil {
		return so, err
	}

	so.CreatedAt = fmtTime(created)
	so.EditedAt = fmtNullTime(edited)

	return so, nil
}

func (p *Postgres) GetShoutOutByID(id string) (types.ShoutOut, error) {
	query := `
	SELECT ` + shoutoutColumns + `
	FROM shoutouts s
	JOIN users g ON g.id = s.giver_id
	JOIN users r ON r.id = s.receiver_id
	WHERE s.id = $1
	`

	so, err := p.scanShoutOut(p.Db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return so, storage.ErrNotFound
	}
	if err != nil {
		return so, err
	}

	tagged, err := p.taggedUsers(so.ID)
	if err != nil {
		return so, err
	}
	so.TaggedUsers = tagged

	return so, nil
}

func (p *Postgres) taggedUsers(shoutoutID string) ([]types.TaggedUser, error) {
	rows, err := p.Db.Query(`
	SELECT u.id, u.username, u.department
	FROM shoutout_tags t
	JOIN users u ON u.id = t.tagged_user_id
	WHERE t.shoutout_id = $1
	ORDER BY u.username ASC
	`, shoutoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []types.TaggedUser
	for rows.Next() {
		var tu types.TaggedUser
		if err := rows.Scan(&tu.ID, &tu.Username, &tu.Department); err != nil {
			return nil, err
		}
		result = append(result, tu)
	}

	return result, rows.Err()
}

func (p *Postgres) UpdateShoutOut(so types.ShoutOut, taggedUserIDs *[]string) error {
	tx, err := p.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
	UPDATE shoutouts
	SET title = $1, message = $2, category = $3, visibility = $4,
	    image_key = NULLIF($5, ''), edited_at = CURRENT_TIMESTAMP
	WHERE id = $6
	`, so.Title, so.Message, so.Category, so.Visibility, so.ImageKey, so.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	if taggedUserIDs != nil {
		if _, err := tx.Exec(`DELETE FROM shoutout_tags WHERE shoutout_id = $1`, so.ID); err != nil {
			return err
		}
		for _, uid := range *taggedUserIDs {
			_, err = tx.Exec(`
			INSERT INTO shoutout_tags (shoutout_id, tagged_user_id)
			VALUES ($1, $2)
			ON CONFLICT (shoutout_id, tagged_user_id) DO NOTHING
			`, so.ID, uid)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (p *Postgres) SoftDeleteShoutOut(id string) error {
	res, err := p.Db.Exec(`
	UPDATE shoutouts
	SET is_deleted = TRUE, image_key = NULL, edited_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND is_deleted = FALSE
	`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (p *Postgres) FeedShoutOuts(f types.FeedFilter) ([]types.ShoutOut, error) {
	query := `
	SELECT ` + shoutoutColumns + `
	FROM shoutouts s
	JOIN users g ON g.id = s.giver_id
	JOIN users r ON r.id = s.receiver_id
	WHERE s.is_deleted = FALSE
	`
	args := []interface{}{}

	if f.Department != "" && f.Department != "all" {
		args = append(args, f.Department)
		query += fmt.Sprintf(" AND (s.giver_department = $%d OR s.receiver_department = $%d)", len(args), len(args))
	}
	if f.SenderID != "" {
		args = append(args, f.SenderID)
		query += fmt.Sprintf(" AND s.giver_id = $%d", len(args))
	}
	if f.DateFrom != nil {
		args = append(args, *f.DateFrom)
		query += fmt.Sprintf(" AND s.created_at >= $%d", len(args))
	}
	if f.DateTo != nil {
		args = append(args, *f.DateTo)
		query += fmt.Sprintf(" AND s.created_at <= $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		query += fmt.Sprintf(" AND s.message ILIKE $%d", len(args))
	}

	args = append(args, f.Limit)
	query += fmt.Sprintf(" ORDER BY s.created_at DESC LIMIT $%d", len(args))
	args = append(args, f.Offset)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return p.queryShoutOuts(query, args...)
}

func (p *Postgres) UserShoutOuts(userID, receiverDepartment string, sinceDays int) ([]types.ShoutOut, error) {
	query := `
	SELECT ` + shoutoutColumns + `
	FROM shoutouts s
	JOIN users g ON g.id = s.giver_id
	JOIN users r ON r.id = s.receiver_id
	WHERE s.is_deleted = FALSE AND (s.giver_id = $1 OR s.receiver_id = $1)
	`
	args := []interface{}{userID}

	if receiverDepartment != "" && receiverDepartment != "all" {
		args = append(args, receiverDepartment)
		query += fmt.Sprintf(" AND s.receiver_department = $%d", len(args))
	}
	if sinceDays > 0 {
		args = append(args, time.Now().UTC().AddDate(0, 0, -sinceDays))
		query += fmt.Sprintf(" AND s.created_at >= $%d", len(args))
	}

	query += " ORDER BY s.created_at DESC"

	return p.queryShoutOuts(query, args...)
}

func (p *Postgres) AllShoutOuts() ([]types.ShoutOut, error) {
	query := `
	SELECT ` + shoutoutColumns + `
	FROM shoutouts s
	JOIN users g ON g.id = s.giver_id
	JOIN users r ON r.id = s.receiver_id
	WHERE s.is_deleted = FALSE
	ORDER BY s.created_at ASC
	`
	return p.queryShoutOuts(query)
}

func (p *Postgres) queryShoutOuts(query string, args ...interface{}) ([]types.ShoutOut, error) {
	rows, err := p.Db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []types.ShoutOut
	for rows.Next() {
		so, err := p.scanShoutOut(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, so)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// One extra query per shoutout for tags; feed pages are small (<=100 rows).
	for i := range result {
		tagged, err := p.taggedUsers(result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].TaggedUsers = tagged
	}

	return result, nil
}

func (p *Postgres) PurgeDeletedShoutOuts(olderThan time.Time) (int, error) {
	res, err := p.Db.Exec(`
	DELETE FROM shoutouts
	WHERE is_deleted = TRUE AND edited_at IS NOT NULL AND edited_at < $1
	`, olderThan)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	return int(affected), err
}

// ---------- Reactions ----------

// ToggleReaction adds, switches or removes the caller's reaction on a shoutout.
// The existence check and the write run in one transaction with the existing
// row locked (FOR UPDATE), so two concurrent toggles from the same user cannot
// both observe "no reaction" and double-insert; the (shoutout_id, user_id)
// unique constraint backstops the insert path.
func (p *Postgres) ToggleReaction(shoutoutID, userID string, rt types.ReactionType) (types.ToggleOutcome, error) {
	tx, err := p.Db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var reactionID int
	var current string
	err = tx.QueryRow(`
	SELECT id, reaction_type FROM reactions
	WHERE shoutout_id = $1 AND user_id = $2
	FOR UPDATE
	`, shoutoutID, userID).Scan(&reactionID, &current)

	var outcome types.ToggleOutcome
	switch {
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.Exec(`
		INSERT INTO reactions (shoutout_id, user_id, reaction_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (shoutout_id, user_id) DO UPDATE SET reaction_type = EXCLUDED.reaction_type, created_at = CURRENT_TIMESTAMP
		`, shoutoutID, userID, rt)
		outcome = types.ToggleAdded
	case err != nil:
		return "", err
	case current == string(rt):
		_, err = tx.Exec(`DELETE FROM reactions WHERE id = $1`, reactionID)
		outcome = types.ToggleRemoved
	default:
		_, err = tx.Exec(`
		UPDATE reactions SET reaction_type = $1, created_at = CURRENT_TIMESTAMP WHERE id = $2
		`, rt, reactionID)
		outcome = types.ToggleUpdated
	}
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}

	return outcome, nil
}

func (p *Postgres) ReactionCounts(shoutoutID, userID string) (types.ReactionCounts, error) {
	result := types.ReactionCounts{Counts: make(map[types.ReactionType]int)}
	for _, rt := range types.AllReactionTypes {
		result.Counts[rt] = 0
	}

	rows, err := p.Db.Query(`
	SELECT reaction_type, COUNT(*)
	FROM reactions
	WHERE shoutout_id = $1
	GROUP BY reaction_type
	`, shoutoutID)
	if err != nil {
		return result, err
	}
	defer rows.Close()

	for rows.Next() {
		var rt string
		var count int
		if err := rows.Scan(&rt, &count); err != nil {
			return result, err
		}
		result.Counts[types.ReactionType(rt)] = count
	}
	if err := rows.Err(); err != nil {
		return result, err
	}

	var mine string
	err = p.Db.QueryRow(`
	SELECT reaction_type FROM reactions WHERE shoutout_id = $1 AND user_id = $2
	`, shoutoutID, userID).Scan(&mine)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return result, err
	}
	result.MyReaction = types.ReactionType(mine)

	return result, nil
}

// ---------- Comments ----------

func (p *Postgres) CreateComment(shoutoutID, userID, content string) (string, error) {
	var commentID int
	query := `
	INSERT INTO comments (shoutout_id, user_id, content)
	VALUES ($1, $2, $3)
	RETURNING id
	`

	err := p.Db.QueryRow(query, shoutoutID, userID, content).Scan(&commentID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d", commentID), nil
}

func (p *Postgres) GetCommentByID(id string) (types.Comment, error) {
	var c types.Comment
	var created time.Time
	var edited sql.NullTime

	err := p.Db.QueryRow(`
	SELECT c.id, c.shoutout_id, c.user_id, u.username, u.department, c.content, c.created_at, c.edited_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
	WHERE c.id = $1 AND c.is_deleted = FALSE
	`, id).Scan(&c.ID, &c.ShoutOutID, &c.UserID, &c.Username, &c.Department, &c.Content, &created, &edited)
	if errors.Is(err, sql.ErrNoRows) {
		return c, storage.ErrNotFound
	}
	if err != nil {
		return c, err
	}

	c.CreatedAt = fmtTime(created)
	c.EditedAt = fmtNullTime(edited)

	return c, nil
}

func (p *Postgres) ListComments(shoutoutID string) ([]types.Comment, error) {
	rows, err := p.Db.Query(`
	SELECT c.id, c.shoutout_id, c.user_id, u.username, u.department, c.content, c.created_at, c.edited_at
	FROM comments c
	JOIN users u ON u.id = c.user_id
	WHERE c.shoutout_id = $1 AND c.is_deleted = FALSE
	ORDER BY c.created_at ASC
	`, shoutoutID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []types.Comment
	for rows.Next() {
		var c types.Comment
		var created time.Time
		var edited sql.NullTime
		if err := rows.Scan(&c.ID, &c.ShoutOutID, &c.UserID, &c.Username, &c.Department, &c.Content, &created, &edited); err != nil {
			return nil, err
		}
		c.CreatedAt = fmtTime(created)
		c.EditedAt = fmtNullTime(edited)
		result = append(result, c)
	}

	return result, rows.Err()
}

func (p *Postgres) UpdateComment(id, content string) error {
	res, err := p.Db.Exec(`
	UPDATE comments SET content = $1, edited_at = CURRENT_TIMESTAMP
	WHERE id = $2 AND is_deleted = FALSE
	`, content, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (p *Postgres) SoftDeleteComment(id string) error {
	res, err := p.Db.Exec(`
	UPDATE comments SET is_deleted = TRUE, edited_at = CURRENT_TIMESTAMP
	WHERE id = $1 AND is_deleted = FALSE
	`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ---------- Reports ----------

func (p *Postgres) CreateReport(shoutoutID, reporterID, reason string) (string, error) {
	var exists bool
	err := p.Db.QueryRow(`
	SELECT EXISTS (
		SELECT 1 FROM reports
		WHERE shoutout_id = $1 AND reporter_id = $2 AND status = 'pending'
	)
	`, shoutoutID, reporterID).Scan(&exists)
	if err != nil {
		return "", err
	}
	if exists {
		return "", storage.ErrConflict
	}

	var reportID int
	err = p.Db.QueryRow(`
	INSERT INTO reports (shoutout_id, reporter_id, reason)
	VALUES ($1, $2, $3)
	RETURNING id
	`, shoutoutID, reporterID, reason).Scan(&reportID)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%d", reportID), nil
}

func (p *Postgres) PendingReports() ([]types.ReportDetail, error) {
	rows, err := p.Db.Query(`
	SELECT rp.id, rp.shoutout_id, rp.reporter_id, rp.reason, rp.status, rp.created_at,
	       s.title, s.message, g.username
	FROM reports rp
	JOIN shoutouts s ON s.id = rp.shoutout_id
	JOIN users g ON g.id = s.giver_id
	WHERE rp.status = 'pending'
	ORDER BY rp.created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []types.ReportDetail
	for rows.Next() {
		var rd types.ReportDetail
		var created time.Time
		if err := rows.Scan(&rd.Report.ID, &rd.Report.ShoutOutID, &rd.Report.ReporterID,
			&rd.Report.Reason, &rd.Report.Status, &created, &rd.Title, &rd.Message, &rd.GiverName); err != nil {
			return nil, err
		}
		rd.Report.CreatedAt = fmtTime(created)
		result = append(result, rd)
	}

	return result, rows.Err()
}

func (p *Postgres) ResolveReport(reportID, adminID string) error {
	res, err := p.Db.Exec(`
	UPDATE reports SET status = 'resolved', action_taken_by = $1
	WHERE id = $2 AND status = 'pending'
	`, adminID, reportID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

var _ storage.Storage = (*Postgres)(nil)
