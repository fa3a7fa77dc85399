package app

import (
	"context"

	"tracker/api/internal/store"
)

// UserProfile is the user detail view: identity plus assigned issues with
// their releases.
type UserProfile struct {
	User   store.User
	Issues []store.Issue
}

func (s *Service) GetUser(ctx context.Context, userID int64) (UserProfile, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return UserProfile{}, translateLookup(err, CodeUserNotFound, "user")
	}
	issues, err := s.store.ListAssignedIssues(ctx, user.ID)
	if err != nil {
		return UserProfile{}, err
	}
	return UserProfile{User: user, Issues: issues}, nil
}

func (s *Service) GetUserByEmail(ctx context.Context, email string) (store.User, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return store.User{}, translateLookup(err, CodeUserNotFound, "user")
	}
	return user, nil
}

// UpdateUser applies a partial identity update (email and names only).
func (s *Service) UpdateUser(ctx context.Context, userID int64, patch store.UserPatch) error {
	if _, err := s.store.GetUserByID(ctx, userID); err != nil {
		return translateLookup(err, CodeUserNotFound, "user")
	}
	if err := s.store.UpdateUser(ctx, userID, patch); err != nil {
		return translateWrite(err, CodeUserAlreadyExists,
			"user with provided email already exists")
	}
	return nil
}

// AssignedIssues returns the issues assigned to the user, releases included.
func (s *Service) AssignedIssues(ctx context.Context, user store.User) ([]store.Issue, error) {
	return s.store.ListAssignedIssues(ctx, user.ID)
}
