package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"tracker/api/internal/store"
)

type CreateReleaseInput struct {
	Version     string     `json:"version"`
	Description string     `json:"description"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
}

func (s *Service) CreateRelease(ctx context.Context, projectID int64, input CreateReleaseInput) (store.Release, error) {
	version := strings.TrimSpace(input.Version)
	if version == "" {
		return store.Release{}, domainError(http.StatusUnprocessableEntity, CodeValidation,
			"version is required", nil)
	}
	if _, err := s.store.GetProject(ctx, projectID); err != nil {
		return store.Release{}, translateLookup(err, CodeProjectNotFound, "project")
	}
	release, err := s.store.CreateRelease(ctx, store.Release{
		ProjectID:   projectID,
		Version:     version,
		Description: input.Description,
		ReleaseDate: input.ReleaseDate,
		Status:      store.ReleaseStatusUnreleased,
	})
	if err != nil {
		return store.Release{}, translateWrite(err, CodeReleaseAlreadyExist,
			"project already has a release with provided version")
	}
	return release, nil
}

func (s *Service) GetRelease(ctx context.Context, releaseID int64) (store.Release, error) {
	release, err := s.store.GetRelease(ctx, releaseID)
	if err != nil {
		return store.Release{}, translateLookup(err, CodeReleaseNotFound, "release")
	}
	return release, nil
}

func (s *Service) UpdateRelease(ctx context.Context, releaseID int64, patch store.ReleasePatch) error {
	if _, err := s.store.GetRelease(ctx, releaseID); err != nil {
		return translateLookup(err, CodeReleaseNotFound, "release")
	}
	if err := s.store.UpdateRelease(ctx, releaseID, patch); err != nil {
		return translateWrite(err, CodeReleaseAlreadyExist,
			"project already has a release with provided version")
	}
	return nil
}
