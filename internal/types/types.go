package types

type Visibility string

const (
	VisibilityPublic     Visibility = "public"
	VisibilityDepartment Visibility = "department_only"
	VisibilityPrivate    Visibility = "private"
)

type Category string

const (
	CategoryTeamwork       Category = "teamwork"
	CategoryInnovation     Category = "innovation"
	CategoryLeadership     Category = "leadership"
	CategoryCustomer       Category = "customer_service"
	CategoryProblemSolving Category = "problem_solving"
	CategoryMentorship     Category = "mentorship"
)

type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

type ReactionType string

const (
	ReactionLike       ReactionType = "like"
	ReactionLove       ReactionType = "love"
	ReactionClap       ReactionType = "clap"
	ReactionCelebrate  ReactionType = "celebrate"
	ReactionInsightful ReactionType = "insightful"
	ReactionSupport    ReactionType = "support"
	ReactionStar       ReactionType = "star"
)

// AllReactionTypes is the fixed set the UI renders; reaction count responses are
// zero-filled over this list.
var AllReactionTypes = []ReactionType{
	ReactionLike, ReactionLove, ReactionClap, ReactionCelebrate,
	ReactionInsightful, ReactionSupport, ReactionStar,
}

type ShoutOut struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Message            string     `json:"message"`
	GiverID            string     `json:"giver_id"`
	GiverName          string     `json:"giver_name,omitempty"`
	ReceiverID         string     `json:"receiver_id"`
	ReceiverName       string     `json:"receiver_name,omitempty"`
	GiverDepartment    string     `json:"giver_department"`
	ReceiverDepartment string     `json:"receiver_department"`
	Category           Category   `json:"category"`
	Visibility         Visibility `json:"visibility"`
	ImageKey           string     `json:"image_key,omitempty"`
	CreatedAt          string     `json:"created_at"`
	EditedAt           string     `json:"edited_at,omitempty"`
	IsDeleted          bool       `json:"is_deleted,omitempty"`
	TaggedUsers        []TaggedUser `json:"tagged_users,omitempty"`
}

type TaggedUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	Department string `json:"department"`
}

type Comment struct {
	ID         string `json:"id"`
	ShoutOutID string `json:"shoutout_id"`
	UserID     string `json:"user_id"`
	Username   string `json:"username,omitempty"`
	Department string `json:"department,omitempty"`
	Content    string `json:"content"`
	CreatedAt  string `json:"created_at"`
	EditedAt   string `json:"edited_at,omitempty"`
}

type Report struct {
	ID            string `json:"id"`
	ShoutOutID    string `json:"shoutout_id"`
	ReporterID    string `json:"reporter_id"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	ActionTakenBy string `json:"action_taken_by,omitempty"`
	CreatedAt     string `json:"created_at"`
}

const (
	ReportStatusPending  = "pending"
	ReportStatusResolved = "resolved"
)

type ShoutOutPostRequest struct {
	Title         string     `json:"title"`
	Message       string     `json:"message" validate:"required"`
	ReceiverID    string     `json:"receiver_id" validate:"required"`
	TaggedUserIDs []string   `json:"tagged_user_ids"`
	Category      Category   `json:"category" validate:"required,oneof=teamwork innovation leadership customer_service problem_solving mentorship"`
	Visibility    Visibility `json:"visibility" validate:"required,oneof=public department_only private"`
	ImageKey      string     `json:"image_key"`
}

type ShoutOutUpdateRequest struct {
	Title         *string     `json:"title"`
	Message       *string     `json:"message"`
	TaggedUserIDs *[]string   `json:"tagged_user_ids"`
	Category      *Category   `json:"category"`
	Visibility    *Visibility `json:"visibility"`
	ImageKey      *string     `json:"image_key"`
}

type ReactionRequest struct {
	ReactionType ReactionType `json:"reaction_type" validate:"required,oneof=like love clap celebrate insightful support star"`
}

type CommentRequest struct {
	Content string `json:"content" validate:"required,max=2000"`
}

type ReportRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// ReactionCounts is the per-shoutout breakdown returned by GET /reactions/{id}.
// Counts carries every reaction type, including zeroes.
type ReactionCounts struct {
	Counts     map[ReactionType]int `json:"counts"`
	MyReaction ReactionType         `json:"my_reaction,omitempty"`
}

// ToggleOutcome describes what a reaction toggle ended up doing.
type ToggleOutcome string

const (
	ToggleAdded   ToggleOutcome = "added"
	ToggleUpdated ToggleOutcome = "updated"
	ToggleRemoved ToggleOutcome = "removed"
)
