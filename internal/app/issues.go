package app

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"tracker/api/internal/store"
)

type CreateIssueInput struct {
	ProjectID     int64
	Title         string
	Description   string
	EstimatedTime time.Duration
	AssigneeID    int64
	ReleaseID     *int64
}

// IssueUpdate is the partial update for an issue. Nil fields are untouched.
// ClearRelease detaches the issue from its release; it is distinct from
// leaving ReleaseID nil. LoggedTime is added to the stored value.
type IssueUpdate struct {
	Title         *string
	Description   *string
	EstimatedTime *time.Duration
	LoggedTime    *time.Duration
	Status        *string
	AssigneeID    *int64
	ReleaseID     *int64
	ClearRelease  bool
}

func (u IssueUpdate) isEmpty() bool {
	return u.Title == nil && u.Description == nil && u.EstimatedTime == nil &&
		u.LoggedTime == nil && u.Status == nil && u.AssigneeID == nil &&
		u.ReleaseID == nil && !u.ClearRelease
}

// CreateIssue creates an issue in a project. The project, the assignee and
// the release (when given) must all resolve before anything is written. The
// issue code is "{project code}-{n}" where n counts existing issues in the
// project; the count is read without locking, so concurrent creations in one
// project can race to the same n and the unique index on the code rejects
// the second write with an unclassified conflict.
func (s *Service) CreateIssue(ctx context.Context, author store.User, input CreateIssueInput) (store.Issue, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return store.Issue{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"title is required", nil)
	}
	if input.EstimatedTime < 0 {
		return store.Issue{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"estimated_time must not be negative", nil)
	}

	project, err := s.store.GetProject(ctx, input.ProjectID)
	if err != nil {
		return store.Issue{}, translateLookup(err, CodeProjectNotFound, "project")
	}
	assignee, err := s.store.GetUserByID(ctx, input.AssigneeID)
	if err != nil {
		return store.Issue{}, translateLookup(err, CodeUserNotFound, "user")
	}
	if input.ReleaseID != nil {
		if _, err := s.store.GetRelease(ctx, *input.ReleaseID); err != nil {
			return store.Issue{}, translateLookup(err, CodeReleaseNotFound, "release")
		}
	}

	count, err := s.store.CountProjectIssues(ctx, project.ID)
	if err != nil {
		return store.Issue{}, err
	}

	issue, err := s.store.CreateIssue(ctx, store.Issue{
		Title:         title,
		Description:   input.Description,
		Code:          fmt.Sprintf("%s-%d", project.Code, count+1),
		EstimatedTime: input.EstimatedTime,
		LoggedTime:    0,
		Status:        store.IssueStatusOpen,
		AuthorID:      author.ID,
		AssigneeID:    assignee.ID,
		ProjectID:     project.ID,
		ReleaseID:     input.ReleaseID,
	})
	if err != nil {
		return store.Issue{}, err
	}

	if author.ID != assignee.ID {
		s.notify.Enqueue(ctx, []string{assignee.Email}, "New issue",
			fmt.Sprintf("Issue %s %s created", issue.Code, issue.Title))
	}
	return issue, nil
}

func (s *Service) GetIssue(ctx context.Context, issueID int64) (store.Issue, error) {
	issue, err := s.store.GetIssue(ctx, issueID)
	if err != nil {
		return store.Issue{}, translateLookup(err, CodeIssueNotFound, "issue")
	}
	return issue, nil
}

// ListIssues returns all issues with project and release loaded. No ordering
// is guaranteed.
func (s *Service) ListIssues(ctx context.Context) ([]store.Issue, error) {
	return s.store.ListIssues(ctx)
}

// UpdateIssue applies a partial update and notifies the author and the
// previous and current assignees, minus the acting user.
func (s *Service) UpdateIssue(ctx context.Context, issueID int64, actor store.User, update IssueUpdate) (store.Issue, error) {
	if update.isEmpty() {
		return store.Issue{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"no fields were passed", nil)
	}
	if update.EstimatedTime != nil && *update.EstimatedTime < 0 {
		return store.Issue{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"estimated_time must not be negative", nil)
	}
	if update.LoggedTime != nil && *update.LoggedTime < 0 {
		return store.Issue{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"logged_time must not be negative", nil)
	}

	issue, err := s.store.GetIssue(ctx, issueID)
	if err != nil {
		return store.Issue{}, translateLookup(err, CodeIssueNotFound, "issue")
	}
	if update.ReleaseID != nil {
		if _, err := s.store.GetRelease(ctx, *update.ReleaseID); err != nil {
			return store.Issue{}, translateLookup(err, CodeReleaseNotFound, "release")
		}
	}

	recipients := map[string]struct{}{
		issue.AuthorEmail: {},
	}
	currentAssignee := issue.AssigneeEmail
	if update.AssigneeID != nil {
		assignee, err := s.store.GetUserByID(ctx, *update.AssigneeID)
		if err != nil {
			return store.Issue{}, translateLookup(err, CodeUserNotFound, "user")
		}
		// The outgoing assignee is told about the reassignment too.
		recipients[issue.AssigneeEmail] = struct{}{}
		currentAssignee = assignee.Email
	}
	recipients[currentAssignee] = struct{}{}
	delete(recipients, actor.Email)

	err = s.store.UpdateIssue(ctx, issueID, store.IssuePatch{
		Title:         update.Title,
		Description:   update.Description,
		EstimatedTime: update.EstimatedTime,
		LoggedTime:    update.LoggedTime,
		Status:        update.Status,
		AssigneeID:    update.AssigneeID,
		ReleaseID:     update.ReleaseID,
		ClearRelease:  update.ClearRelease,
	})
	if err != nil {
		return store.Issue{}, err
	}

	updated, err := s.store.GetIssue(ctx, issueID)
	if err != nil {
		return store.Issue{}, translateLookup(err, CodeIssueNotFound, "issue")
	}

	if len(recipients) > 0 {
		emails := make([]string, 0, len(recipients))
		for email := range recipients {
			emails = append(emails, email)
		}
		sort.Strings(emails)
		s.notify.Enqueue(ctx, emails, "Issue "+issue.Code, updateSummary(update))
	}
	return updated, nil
}

// updateSummary lists every field carried by the update, one per line.
func updateSummary(update IssueUpdate) string {
	var lines []string
	add := func(field, value string) {
		lines = append(lines, field+": "+value)
	}
	if update.Title != nil {
		add("title", *update.Title)
	}
	if update.Description != nil {
		add("description", *update.Description)
	}
	if update.EstimatedTime != nil {
		add("estimated_time", update.EstimatedTime.String())
	}
	if update.LoggedTime != nil {
		add("logged_time", update.LoggedTime.String())
	}
	if update.Status != nil {
		add("status", *update.Status)
	}
	if update.AssigneeID != nil {
		add("assignee_id", fmt.Sprintf("%d", *update.AssigneeID))
	}
	if update.ClearRelease {
		add("release_id", "None")
	} else if update.ReleaseID != nil {
		add("release_id", fmt.Sprintf("%d", *update.ReleaseID))
	}
	return strings.Join(lines, "\n")
}
