package types

import "time"

// Filters for the counting queries. Zero-valued fields are not applied, so the
// same query serves "sent", "received" and "monthly sent" style metrics.
// Soft-deleted shoutouts and comments are always excluded by the storage layer;
// visibility of a row is decided in exactly one place.

type ShoutOutCountFilter struct {
	GiverID    string
	ReceiverID string
	Department string
	Since      *time.Time
}

type ReactionCountFilter struct {
	UserID             string
	ShoutOutReceiverID string
}

type CommentCountFilter struct {
	UserID             string
	ShoutOutReceiverID string
}

// UserAggregate is one row of the leaderboard input: per-user counts across the
// whole store, produced in a single grouped query.
type UserAggregate struct {
	UserID     string `json:"user_id"`
	Username   string `json:"username"`
	Department string `json:"department"`
	Sent       int    `json:"sent"`
	Received   int    `json:"received"`
	Tagged     int    `json:"tagged"`
	Comments   int    `json:"comments"`
}

// NamedCount is a generic ranked row (user or department plus a count).
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// SitewideCounts are the admin dashboard headline numbers.
type SitewideCounts struct {
	TotalUsers      int `json:"total_users"`
	TotalShoutouts  int `json:"total_shoutouts"`
	TotalReactions  int `json:"total_reactions"`
	TotalReports    int `json:"total_reports"`
	PendingReports  int `json:"pending_reports"`
	ResolvedReports int `json:"resolved_reports"`
}

// FeedFilter narrows the shoutout feed. Department matches either side of the
// shoutout; Search does a case-insensitive match on the message.
type FeedFilter struct {
	Department string
	SenderID   string
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string
	Offset     int
	Limit      int
}

// ReportDetail joins a pending report with the shoutout it targets and the
// username of the shoutout's giver, for the moderation queue.
type ReportDetail struct {
	Report
	Title     string `json:"title"`
	Message   string `json:"message"`
	GiverName string `json:"giver_name"`
}
