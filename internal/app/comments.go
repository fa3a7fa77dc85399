package app

import (
	"context"
	"net/http"
	"strings"

	"tracker/api/internal/store"
)

// CreateComment attaches a comment to an issue and notifies the issue's
// author and assignee, minus the comment's author.
func (s *Service) CreateComment(ctx context.Context, issueID int64, author store.User, text string) (store.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return store.Comment{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"text is required", nil)
	}

	issue, err := s.store.GetIssue(ctx, issueID)
	if err != nil {
		return store.Comment{}, translateLookup(err, CodeIssueNotFound, "issue")
	}

	comment, err := s.store.CreateComment(ctx, store.Comment{
		Text:     text,
		AuthorID: author.ID,
		IssueID:  issue.ID,
	})
	if err != nil {
		return store.Comment{}, err
	}

	recipients := make([]string, 0, 2)
	for _, email := range []string{issue.AssigneeEmail, issue.AuthorEmail} {
		if email == author.Email || contains(recipients, email) {
			continue
		}
		recipients = append(recipients, email)
	}
	if len(recipients) > 0 {
		message := "Issue " + issue.Code + " was commented"
		s.notify.Enqueue(ctx, recipients, message, message)
	}
	return comment, nil
}

func (s *Service) GetComment(ctx context.Context, issueID, commentID int64) (store.Comment, error) {
	if _, err := s.store.GetIssue(ctx, issueID); err != nil {
		return store.Comment{}, translateLookup(err, CodeIssueNotFound, "issue")
	}
	comment, err := s.store.GetComment(ctx, issueID, commentID)
	if err != nil {
		return store.Comment{}, translateLookup(err, CodeCommentNotFound, "comment")
	}
	return comment, nil
}

// UpdateComment replaces the comment text. The issue linkage is immutable.
func (s *Service) UpdateComment(ctx context.Context, issueID, commentID int64, text string) error {
	if strings.TrimSpace(text) == "" {
		return domainError(http.StatusUnprocessableEntity, CodeValidation,
			"text is required", nil)
	}
	if _, err := s.store.GetIssue(ctx, issueID); err != nil {
		return translateLookup(err, CodeIssueNotFound, "issue")
	}
	if err := s.store.UpdateCommentText(ctx, issueID, commentID, text); err != nil {
		return translateLookup(err, CodeCommentNotFound, "comment")
	}
	return nil
}

func (s *Service) ListComments(ctx context.Context, issueID int64) ([]store.Comment, error) {
	if _, err := s.store.GetIssue(ctx, issueID); err != nil {
		return nil, translateLookup(err, CodeIssueNotFound, "issue")
	}
	return s.store.ListComments(ctx, issueID)
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
