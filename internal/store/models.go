package store

import "time"

type User struct {
	ID           int64
	Email        string
	FirstName    string
	LastName     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Project struct {
	ID          int64
	Title       string
	Code        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	ReleaseStatusUnreleased = "unreleased"
	ReleaseStatusReleased   = "released"
)

type Release struct {
	ID          int64
	ProjectID   int64
	Version     string
	Description string
	ReleaseDate *time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const (
	IssueStatusOpen       = "open"
	IssueStatusInProgress = "in_progress"
	IssueStatusClosed     = "closed"
	IssueStatusReopened   = "reopened"
	IssueStatusResolved   = "resolved"
)

type Issue struct {
	ID            int64
	Title         string
	Description   string
	Code          string
	EstimatedTime time.Duration
	LoggedTime    time.Duration
	Status        string
	AuthorID      int64
	AssigneeID    int64
	ProjectID     int64
	ReleaseID     *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	// Joined fields, populated by read queries
	ProjectCode    string
	ReleaseVersion *string
	AuthorEmail    string
	AssigneeEmail  string
}

// RemainingTime is the estimate minus the accumulated logged time, floored
// at zero.
func (i Issue) RemainingTime() time.Duration {
	if i.EstimatedTime < i.LoggedTime {
		return 0
	}
	return i.EstimatedTime - i.LoggedTime
}

type Comment struct {
	ID        int64
	Text      string
	AuthorID  int64
	IssueID   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Patch types carry partial updates. A nil field is untouched.

type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type ProjectPatch struct {
	Title       *string
	Code        *string
	Description *string
}

type ReleasePatch struct {
	Version     *string
	Description *string
	ReleaseDate *time.Time
	Status      *string
}

// IssuePatch distinguishes "release untouched" (ReleaseID nil, ClearRelease
// false) from "release cleared" (ClearRelease true). LoggedTime is added to
// the stored value, never replaced.
type IssuePatch struct {
	Title         *string
	Description   *string
	EstimatedTime *time.Duration
	LoggedTime    *time.Duration
	Status        *string
	AssigneeID    *int64
	ReleaseID     *int64
	ClearRelease  bool
}
