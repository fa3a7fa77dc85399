package app

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"tracker/api/internal/store"
)

type DomainError struct {
	Status  int
	Code    string
	Message string
	Details any
}

func (e *DomainError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func domainError(status int, code, message string, details any) *DomainError {
	return &DomainError{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	}
}

// ErrorCode extracts the domain error code, or empty for unclassified errors.
func ErrorCode(err error) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr.Code
	}
	return ""
}

const (
	CodeUserNotFound        = "USER_NOT_FOUND"
	CodeProjectNotFound     = "PROJECT_NOT_FOUND"
	CodeReleaseNotFound     = "RELEASE_NOT_FOUND"
	CodeIssueNotFound       = "ISSUE_NOT_FOUND"
	CodeCommentNotFound     = "COMMENT_NOT_FOUND"
	CodeUserAlreadyExists   = "USER_ALREADY_EXISTS"
	CodeProjectAlreadyExist = "PROJECT_ALREADY_EXISTS"
	CodeReleaseAlreadyExist = "RELEASE_ALREADY_EXISTS"
	CodeInvalidPassword     = "INVALID_PASSWORD"
	CodeInvalidRefreshToken = "INVALID_REFRESH_TOKEN"
	CodeInvalidAuthSecret   = "INVALID_AUTH_SECRET"
	CodePermissionDenied    = "PERMISSION_DENIED"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeValidation          = "VALIDATION_ERROR"
)

func errNotFound(code, entity string) *DomainError {
	return domainError(http.StatusNotFound, code, entity+" does not exist", nil)
}

func errConflict(code, message string) *DomainError {
	return domainError(http.StatusConflict, code, message, nil)
}

// translateLookup maps a store lookup failure to the entity's not-found kind;
// anything else propagates unclassified.
func translateLookup(err error, code, entity string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return errNotFound(code, entity)
	}
	return err
}

// translateWrite maps a unique-constraint violation to the entity's conflict
// kind; anything else propagates unclassified.
func translateWrite(err error, code, message string) error {
	if errors.Is(err, store.ErrConflict) {
		return errConflict(code, message)
	}
	return err
}
