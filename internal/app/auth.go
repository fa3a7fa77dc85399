package app

import (
	"context"
	"net/http"
	"strings"

	"tracker/api/internal/auth"
	"tracker/api/internal/store"
)

type SignUpInput struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password"`
	// Secret elevates the new account to admin when it matches the
	// configured auth secret.
	Secret string `json:"secret,omitempty"`
}

// SignUp registers a new user.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (store.User, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" || input.FirstName == "" || input.LastName == "" {
		return store.User{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"email, first_name, last_name and password are required", nil)
	}

	isAdmin := false
	if input.Secret != "" {
		if input.Secret != s.cfg.AuthSecret {
			return store.User{}, domainError(http.StatusForbidden, CodeInvalidAuthSecret,
				"invalid auth secret", nil)
		}
		isAdmin = true
	}

	user, err := s.store.CreateUser(ctx, store.User{
		Email:        email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: auth.HashPassword(s.cfg.AuthSecret, input.Password, email),
		IsAdmin:      isAdmin,
	})
	if err != nil {
		return store.User{}, translateWrite(err, CodeUserAlreadyExists,
			"user with provided email already exists")
	}
	return user, nil
}

// Login checks credentials and issues an access/refresh token pair.
func (s *Service) Login(ctx context.Context, email, password string) (auth.TokenPair, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return auth.TokenPair{}, translateLookup(err, CodeUserNotFound, "user")
	}
	if auth.HashPassword(s.cfg.AuthSecret, password, user.Email) != user.PasswordHash {
		return auth.TokenPair{}, domainError(http.StatusUnauthorized, CodeInvalidPassword,
			"invalid password", nil)
	}
	return s.tokens.Issue(user.Email)
}

// Refresh exchanges a valid refresh token for a new pair.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (auth.TokenPair, error) {
	email, err := s.tokens.Validate(refreshToken, auth.TokenRefresh)
	if err != nil {
		return auth.TokenPair{}, domainError(http.StatusUnauthorized, CodeInvalidRefreshToken,
			"invalid refresh token", nil)
	}
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return auth.TokenPair{}, translateLookup(err, CodeUserNotFound, "user")
	}
	return s.tokens.Issue(user.Email)
}

// UserFromToken resolves the acting user from a bearer access token.
func (s *Service) UserFromToken(ctx context.Context, accessToken string) (store.User, error) {
	email, err := s.tokens.Validate(accessToken, auth.TokenAccess)
	if err != nil {
		return store.User{}, domainError(http.StatusUnauthorized, CodeUnauthorized,
			"invalid access token", nil)
	}
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return store.User{}, translateLookup(err, CodeUserNotFound, "user")
	}
	return user, nil
}
