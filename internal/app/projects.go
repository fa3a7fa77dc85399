package app

import (
	"context"
	"net/http"
	"strings"

	"tracker/api/internal/store"
)

type CreateProjectInput struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// ProjectDetail is the project view including its issues.
type ProjectDetail struct {
	Project store.Project
	Issues  []store.Issue
}

func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (store.Project, error) {
	title := strings.TrimSpace(input.Title)
	code := strings.TrimSpace(input.Code)
	if title == "" || code == "" {
		return store.Project{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"title and code are required", nil)
	}
	project, err := s.store.CreateProject(ctx, store.Project{
		Title:       title,
		Code:        code,
		Description: input.Description,
	})
	if err != nil {
		return store.Project{}, translateWrite(err, CodeProjectAlreadyExist,
			"project with provided title or code already exists")
	}
	return project, nil
}

func (s *Service) GetProject(ctx context.Context, projectID int64) (ProjectDetail, error) {
	project, err := s.store.GetProject(ctx, projectID)
	if err != nil {
		return ProjectDetail{}, translateLookup(err, CodeProjectNotFound, "project")
	}
	issues, err := s.store.ListProjectIssues(ctx, project.ID)
	if err != nil {
		return ProjectDetail{}, err
	}
	return ProjectDetail{Project: project, Issues: issues}, nil
}

func (s *Service) UpdateProject(ctx context.Context, projectID int64, patch store.ProjectPatch) error {
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return translateLookup(err, CodeProjectNotFound, "project")
	}
	if err := s.store.UpdateProject(ctx, projectID, patch); err != nil {
		return translateWrite(err, CodeProjectAlreadyExist,
			"project with provided title or code already exists")
	}
	return nil
}
