package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"tracker/api/internal/perm"
	"tracker/api/internal/store"
)

type HTTPServer struct {
	service    *Service
	corsOrigin string
}

func NewHTTPServer(service *Service, corsOrigin string) *HTTPServer {
	return &HTTPServer{service: service, corsOrigin: corsOrigin}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/api/ready" {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()
		if err := s.service.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"ok": false, "error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	// Auth routes (no token required)
	if r.Method == http.MethodPost && r.URL.Path == "/api/auth/signup" {
		s.handleSignUp(w, r)
		return
	}
	if r.Method == http.MethodPost && r.URL.Path == "/api/auth/login" {
		s.handleLogin(w, r)
		return
	}
	if r.Method == http.MethodPost && r.URL.Path == "/api/auth/refresh" {
		s.handleRefresh(w, r)
		return
	}

	// Everything below requires a valid access token.
	token := bearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, CodeUnauthorized, "Unauthorized", nil)
		return
	}
	actor, err := s.service.UserFromToken(r.Context(), token)
	if err != nil {
		writeError(w, http.StatusUnauthorized, CodeUnauthorized, "Unauthorized", nil)
		return
	}

	parts := splitPath(r.URL.Path)
	if len(parts) < 2 || parts[0] != "api" {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}
	parts = parts[1:]

	switch parts[0] {
	case "users":
		s.routeUsers(w, r, actor, parts[1:])
	case "projects":
		s.routeProjects(w, r, actor, parts[1:])
	case "releases":
		s.routeReleases(w, r, actor, parts[1:])
	case "issues":
		s.routeIssues(w, r, actor, parts[1:])
	default:
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
	}
}

// ---- auth ----

func (s *HTTPServer) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var body SignUpInput
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	user, err := s.service.SignUp(r.Context(), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"email": user.Email})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	pair, err := s.service.Login(r.Context(), body.Email, body.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

func (s *HTTPServer) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	pair, err := s.service.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"access_token":  pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// ---- users ----

func (s *HTTPServer) routeUsers(w http.ResponseWriter, r *http.Request, actor store.User, parts []string) {
	if len(parts) == 2 && parts[0] == "me" && parts[1] == "issues" && r.Method == http.MethodGet {
		issues, err := s.service.AssignedIssues(r.Context(), actor)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"issues": issuesPayload(issues)})
		return
	}

	if len(parts) != 1 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}

	userID := actor.ID
	if parts[0] != "me" {
		parsed, err := strconv.ParseInt(parts[0], 10, 64)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, CodeValidation, "user id must be an integer", nil)
			return
		}
		userID = parsed
	}

	switch r.Method {
	case http.MethodGet:
		profile, err := s.service.GetUser(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"email":      profile.User.Email,
			"first_name": profile.User.FirstName,
			"last_name":  profile.User.LastName,
			"issues":     issuesPayload(profile.Issues),
		})
	case http.MethodPatch:
		if !perm.IsProfileOwner(actor, userID) && !perm.IsAdmin(actor) {
			s.forbid(w)
			return
		}
		var body struct {
			Email     *string `json:"email"`
			FirstName *string `json:"first_name"`
			LastName  *string `json:"last_name"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		err := s.service.UpdateUser(r.Context(), userID, store.UserPatch{
			Email:     body.Email,
			FirstName: body.FirstName,
			LastName:  body.LastName,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	}
}

// ---- projects and releases ----

func (s *HTTPServer) routeProjects(w http.ResponseWriter, r *http.Request, actor store.User, parts []string) {
	if len(parts) == 0 && r.Method == http.MethodPost {
		var body CreateProjectInput
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		project, err := s.service.CreateProject(r.Context(), body)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": project.ID})
		return
	}

	if len(parts) == 0 {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	projectID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, CodeValidation, "project id must be an integer", nil)
		return
	}

	if len(parts) == 2 && parts[1] == "releases" && r.Method == http.MethodPost {
		var body struct {
			Version     string `json:"version"`
			Description string `json:"description"`
			ReleaseDate string `json:"release_date"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		input := CreateReleaseInput{Version: body.Version, Description: body.Description}
		if body.ReleaseDate != "" {
			date, err := time.Parse("2006-01-02", body.ReleaseDate)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, CodeValidation, "release_date must be YYYY-MM-DD", nil)
				return
			}
			input.ReleaseDate = &date
		}
		release, err := s.service.CreateRelease(r.Context(), projectID, input)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": release.ID})
		return
	}

	if len(parts) != 1 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}

	switch r.Method {
	case http.MethodGet:
		detail, err := s.service.GetProject(r.Context(), projectID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"title":       detail.Project.Title,
			"code":        detail.Project.Code,
			"description": detail.Project.Description,
			"issues":      issuesPayload(detail.Issues),
		})
	case http.MethodPatch:
		if !perm.IsAdmin(actor) {
			s.forbid(w)
			return
		}
		var body struct {
			Title       *string `json:"title"`
			Code        *string `json:"code"`
			Description *string `json:"description"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		err := s.service.UpdateProject(r.Context(), projectID, store.ProjectPatch{
			Title:       body.Title,
			Code:        body.Code,
			Description: body.Description,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	}
}

func (s *HTTPServer) routeReleases(w http.ResponseWriter, r *http.Request, actor store.User, parts []string) {
	if len(parts) != 1 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}
	releaseID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, CodeValidation, "release id must be an integer", nil)
		return
	}

	switch r.Method {
	case http.MethodGet:
		release, err := s.service.GetRelease(r.Context(), releaseID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		payload := map[string]any{
			"version":     release.Version,
			"description": release.Description,
			"status":      release.Status,
		}
		if release.ReleaseDate != nil {
			payload["release_date"] = release.ReleaseDate.Format("2006-01-02")
		} else {
			payload["release_date"] = nil
		}
		writeJSON(w, http.StatusOK, payload)
	case http.MethodPatch:
		if !perm.IsAdmin(actor) {
			s.forbid(w)
			return
		}
		var body struct {
			Version     *string `json:"version"`
			Description *string `json:"description"`
			ReleaseDate *string `json:"release_date"`
			Status      *string `json:"status"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		if body.Status != nil && !validReleaseStatus(*body.Status) {
			writeError(w, http.StatusUnprocessableEntity, CodeValidation, "invalid release status", nil)
			return
		}
		patch := store.ReleasePatch{
			Version:     body.Version,
			Description: body.Description,
			Status:      body.Status,
		}
		if body.ReleaseDate != nil {
			date, err := time.Parse("2006-01-02", *body.ReleaseDate)
			if err != nil {
				writeError(w, http.StatusUnprocessableEntity, CodeValidation, "release_date must be YYYY-MM-DD", nil)
				return
			}
			patch.ReleaseDate = &date
		}
		if err := s.service.UpdateRelease(r.Context(), releaseID, patch); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	}
}

// ---- issues and comments ----

func (s *HTTPServer) routeIssues(w http.ResponseWriter, r *http.Request, actor store.User, parts []string) {
	if len(parts) == 0 {
		switch r.Method {
		case http.MethodGet:
			issues, err := s.service.ListIssues(r.Context())
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"issues": issuesPayload(issues)})
		case http.MethodPost:
			s.handleIssueCreate(w, r, actor)
		default:
			writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		}
		return
	}

	issueID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, CodeValidation, "issue id must be an integer", nil)
		return
	}

	if len(parts) >= 2 && parts[1] == "comments" {
		s.routeComments(w, r, actor, issueID, parts[2:])
		return
	}

	if len(parts) != 1 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}

	switch r.Method {
	case http.MethodGet:
		issue, err := s.service.GetIssue(r.Context(), issueID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, issuePayload(issue))
	case http.MethodPatch:
		s.handleIssueUpdate(w, r, actor, issueID)
	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	}
}

func (s *HTTPServer) handleIssueCreate(w http.ResponseWriter, r *http.Request, actor store.User) {
	var body struct {
		ProjectID            int64  `json:"project_id"`
		Title                string `json:"title"`
		Description          string `json:"description"`
		EstimatedTimeSeconds int64  `json:"estimated_time_seconds"`
		AssigneeID           int64  `json:"assignee_id"`
		ReleaseID            *int64 `json:"release_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	issue, err := s.service.CreateIssue(r.Context(), actor, CreateIssueInput{
		ProjectID:     body.ProjectID,
		Title:         body.Title,
		Description:   body.Description,
		EstimatedTime: time.Duration(body.EstimatedTimeSeconds) * time.Second,
		AssigneeID:    body.AssigneeID,
		ReleaseID:     body.ReleaseID,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": issue.ID, "code": issue.Code})
}

func (s *HTTPServer) handleIssueUpdate(w http.ResponseWriter, r *http.Request, actor store.User, issueID int64) {
	issue, err := s.service.GetIssue(r.Context(), issueID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !perm.IsAuthor(actor, issue.AuthorID) && !perm.IsAssignee(actor, issue) && !perm.IsAdmin(actor) {
		s.forbid(w)
		return
	}

	var body struct {
		Title                *string         `json:"title"`
		Description          *string         `json:"description"`
		EstimatedTimeSeconds *int64          `json:"estimated_time_seconds"`
		LoggedTimeSeconds    *int64          `json:"logged_time_seconds"`
		Status               *string         `json:"status"`
		AssigneeID           *int64          `json:"assignee_id"`
		ReleaseID            json.RawMessage `json:"release_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
		return
	}
	if body.Status != nil && !validIssueStatus(*body.Status) {
		writeError(w, http.StatusUnprocessableEntity, CodeValidation, "invalid issue status", nil)
		return
	}

	update := IssueUpdate{
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		AssigneeID:  body.AssigneeID,
	}
	if body.EstimatedTimeSeconds != nil {
		estimated := time.Duration(*body.EstimatedTimeSeconds) * time.Second
		update.EstimatedTime = &estimated
	}
	if body.LoggedTimeSeconds != nil {
		logged := time.Duration(*body.LoggedTimeSeconds) * time.Second
		update.LoggedTime = &logged
	}
	// release_id distinguishes absent (untouched), null (clear) and a value.
	if len(body.ReleaseID) > 0 {
		if string(body.ReleaseID) == "null" {
			update.ClearRelease = true
		} else {
			var releaseID int64
			if err := json.Unmarshal(body.ReleaseID, &releaseID); err != nil {
				writeError(w, http.StatusUnprocessableEntity, CodeValidation, "release_id must be an integer or null", nil)
				return
			}
			update.ReleaseID = &releaseID
		}
	}

	updated, err := s.service.UpdateIssue(r.Context(), issueID, actor, update)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, issuePayload(updated))
}

func (s *HTTPServer) routeComments(w http.ResponseWriter, r *http.Request, actor store.User, issueID int64, parts []string) {
	if len(parts) == 0 {
		switch r.Method {
		case http.MethodGet:
			comments, err := s.service.ListComments(r.Context(), issueID)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			items := make([]map[string]any, 0, len(comments))
			for _, comment := range comments {
				items = append(items, commentPayload(comment))
			}
			writeJSON(w, http.StatusOK, map[string]any{"comments": items})
		case http.MethodPost:
			var body struct {
				Text string `json:"text"`
			}
			if err := decodeBody(r, &body); err != nil {
				writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
				return
			}
			comment, err := s.service.CreateComment(r.Context(), issueID, actor, body.Text)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, map[string]any{"id": comment.ID})
		default:
			writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		}
		return
	}

	if len(parts) != 1 {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
		return
	}
	commentID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, CodeValidation, "comment id must be an integer", nil)
		return
	}

	switch r.Method {
	case http.MethodGet:
		comment, err := s.service.GetComment(r.Context(), issueID, commentID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, commentPayload(comment))
	case http.MethodPatch:
		comment, err := s.service.GetComment(r.Context(), issueID, commentID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if !perm.IsAuthor(actor, comment.AuthorID) && !perm.IsAdmin(actor) {
			s.forbid(w)
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := decodeBody(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error(), nil)
			return
		}
		if err := s.service.UpdateComment(r.Context(), issueID, commentID, body.Text); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{})
	default:
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
	}
}

// ---- payloads ----

func issuePayload(issue store.Issue) map[string]any {
	payload := map[string]any{
		"id":                     issue.ID,
		"title":                  issue.Title,
		"code":                   issue.Code,
		"description":            issue.Description,
		"estimated_time_seconds": int64(issue.EstimatedTime.Seconds()),
		"logged_time_seconds":    int64(issue.LoggedTime.Seconds()),
		"remaining_time_seconds": int64(issue.RemainingTime().Seconds()),
		"author":                 issue.AuthorID,
		"assignee":               issue.AssigneeID,
		"project":                issue.ProjectCode,
		"status":                 issue.Status,
	}
	if issue.ReleaseVersion != nil {
		payload["release"] = *issue.ReleaseVersion
	} else {
		payload["release"] = nil
	}
	return payload
}

func issuesPayload(issues []store.Issue) []map[string]any {
	items := make([]map[string]any, 0, len(issues))
	for _, issue := range issues {
		items = append(items, issuePayload(issue))
	}
	return items
}

func commentPayload(comment store.Comment) map[string]any {
	return map[string]any{
		"id":         comment.ID,
		"text":       comment.Text,
		"author":     comment.AuthorID,
		"created_at": comment.CreatedAt.Format(time.RFC3339),
	}
}

// ---- helpers ----

func validIssueStatus(status string) bool {
	switch status {
	case store.IssueStatusOpen, store.IssueStatusInProgress, store.IssueStatusClosed,
		store.IssueStatusReopened, store.IssueStatusResolved:
		return true
	}
	return false
}

func validReleaseStatus(status string) bool {
	return status == store.ReleaseStatusUnreleased || status == store.ReleaseStatusReleased
}

func (s *HTTPServer) forbid(w http.ResponseWriter) {
	writeError(w, http.StatusForbidden, CodePermissionDenied, "Forbidden", nil)
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("Content-Type", "application/json")

		next.ServeHTTP(writer, r)

		log.Printf("%s %s -> %d (%s)", r.Method, r.URL.Path, writer.status, time.Since(started).Round(time.Millisecond))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func setCORSHeaders(header http.Header, origin string) {
	if origin == "" {
		return
	}
	header.Set("Access-Control-Allow-Origin", origin)
	header.Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
	header.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	response := map[string]any{
		"code":  code,
		"error": message,
	}
	if details != nil {
		response["details"] = details
	}
	writeJSON(w, status, response)
}

// writeServiceError maps domain errors to their status; anything else is an
// unclassified internal error.
func writeServiceError(w http.ResponseWriter, err error) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		writeError(w, domainErr.Status, domainErr.Code, domainErr.Message, domainErr.Details)
		return
	}
	log.Printf("internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "INTERNAL", "Internal error", nil)
}

func decodeBody(r *http.Request, target any) error {
	if r.Body == nil {
		return nil
	}
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return fmt.Errorf("invalid JSON body")
	}
	return nil
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
