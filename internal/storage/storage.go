package storage

import (
	"errors"
	"time"

	"github.com/bragboard/bragboard-service/internal/types"
	"github.com/bragboard/bragboard-service/internal/types/users"
)

// ErrNotFound is returned when a referenced user, shoutout, comment or report
// does not exist. Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

// ErrConflict is returned on unique-constraint violations (duplicate email,
// duplicate pending report).
var ErrConflict = errors.New("already exists")

type Storage interface {
	// Users
	CreateUser(username, email, hashedPassword, department, role string) (string, error)
	GetUserByEmail(email string) (users.User, error)
	GetUserByID(id string) (users.User, error)
	ListUsers(department, search string, limit int) ([]users.User, error)
	DeleteUser(id string) error
	CountUsersInDepartment(department string) (int, error)

	// ShoutOuts
	CreateShoutOut(so types.ShoutOut, taggedUserIDs []string) (string, error)
	GetShoutOutByID(id string) (types.ShoutOut, error)
	UpdateShoutOut(so types.ShoutOut, taggedUserIDs *[]string) error
	SoftDeleteShoutOut(id string) error
	FeedShoutOuts(f types.FeedFilter) ([]types.ShoutOut, error)
	UserShoutOuts(userID, receiverDepartment string, sinceDays int) ([]types.ShoutOut, error)
	AllShoutOuts() ([]types.ShoutOut, error)
	PurgeDeletedShoutOuts(olderThan time.Time) (int, error)

	// Reactions. ToggleReaction performs the lookup-then-mutate inside a single
	// transaction with the existing row locked; see the postgres implementation.
	ToggleReaction(shoutoutID, userID string, rt types.ReactionType) (types.ToggleOutcome, error)
	ReactionCounts(shoutoutID, userID string) (types.ReactionCounts, error)

	// Comments
	CreateComment(shoutoutID, userID, content string) (string, error)
	GetCommentByID(id string) (types.Comment, error)
	ListComments(shoutoutID string) ([]types.Comment, error)
	UpdateComment(id, content string) error
	SoftDeleteComment(id string) error

	// Reports
	CreateReport(shoutoutID, reporterID, reason string) (string, error)
	PendingReports() ([]types.ReportDetail, error)
	ResolveReport(reportID, adminID string) error

	// Analytics reads consumed by the stats package. All of these exclude
	// soft-deleted rows and are pure derived reads.
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
