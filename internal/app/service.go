package app

import (
	"context"

	"tracker/api/internal/auth"
	"tracker/api/internal/config"
	"tracker/api/internal/notify"
	"tracker/api/internal/store"
)

type dataStore interface {
	CreateUser(context.Context, store.User) (store.User, error)
	GetUserByEmail(context.Context, string) (store.User, error)
	GetUserByID(context.Context, int64) (store.User, error)
	UpdateUser(context.Context, int64, store.UserPatch) error
	ListAssignedIssues(context.Context, int64) ([]store.Issue, error)
	CreateProject(context.Context, store.Project) (store.Project, error)
	GetProject(context.Context, int64) (store.Project, error)
	UpdateProject(context.Context, int64, store.ProjectPatch) error
	CountProjectIssues(context.Context, int64) (int, error)
	ListProjectIssues(context.Context, int64) ([]store.Issue, error)
	CreateRelease(context.Context, store.Release) (store.Release, error)
	GetRelease(context.Context, int64) (store.Release, error)
	UpdateRelease(context.Context, int64, store.ReleasePatch) error
	CreateIssue(context.Context, store.Issue) (store.Issue, error)
	GetIssue(context.Context, int64) (store.Issue, error)
	ListIssues(context.Context) ([]store.Issue, error)
	UpdateIssue(context.Context, int64, store.IssuePatch) error
	CreateComment(context.Context, store.Comment) (store.Comment, error)
	GetComment(context.Context, int64, int64) (store.Comment, error)
	UpdateCommentText(context.Context, int64, int64, string) error
	ListComments(context.Context, int64) ([]store.Comment, error)
	Ping(ctx context.Context) error
}

// dispatcher hands notifications off for asynchronous delivery. Callers never
// observe the outcome.
type dispatcher interface {
	Enqueue(ctx context.Context, emails []string, subject, message string)
}

type Service struct {
	cfg    config.Config
	store  dataStore
	tokens *auth.Tokens
	notify dispatcher
}

func New(cfg config.Config, dataStore *store.PostgresStore, queue *notify.Queue) *Service {
	return &Service{
		cfg:    cfg,
		store:  dataStore,
		tokens: auth.NewTokens(cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL),
		notify: queue,
	}
}

func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
