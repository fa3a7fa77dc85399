package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ---- users ----

func (s *PostgresStore) CreateUser(ctx context.Context, user User) (User, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, first_name, last_name, password_hash, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, user.Email, user.FirstName, user.LastName, user.PasswordHash, user.IsAdmin).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return User{}, translateConflict(err)
	}
	return user, nil
}

const userColumns = `id, email, first_name, last_name, password_hash, is_admin, created_at, updated_at`

func (s *PostgresStore) scanUser(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.PasswordHash, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *PostgresStore) GetUserByEmail(ctx context.Context, email string) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

func (s *PostgresStore) GetUserByID(ctx context.Context, userID int64) (User, error) {
	return s.scanUser(s.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id=$1`, userID))
}

func (s *PostgresStore) UpdateUser(ctx context.Context, userID int64, patch UserPatch) error {
	var sets []string
	args := []any{userID}
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.FirstName != nil {
		set("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		set("last_name", *patch.LastName)
	}
	if len(sets) == 0 {
		return nil
	}
	return s.execPatch(ctx, "users", sets, args)
}

// ---- projects ----

func (s *PostgresStore) CreateProject(ctx context.Context, project Project) (Project, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO projects (title, code, description)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, project.Title, project.Code, project.Description).
		Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return Project{}, translateConflict(err)
	}
	return project, nil
}

func (s *PostgresStore) GetProject(ctx context.Context, projectID int64) (Project, error) {
	var project Project
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, code, description, created_at, updated_at
		FROM projects WHERE id=$1
	`, projectID).Scan(&project.ID, &project.Title, &project.Code,
		&project.Description, &project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return Project{}, err
	}
	return project, nil
}

func (s *PostgresStore) UpdateProject(ctx context.Context, projectID int64, patch ProjectPatch) error {
	var sets []string
	args := []any{projectID}
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Code != nil {
		set("code", *patch.Code)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if len(sets) == 0 {
		return nil
	}
	return s.execPatch(ctx, "projects", sets, args)
}

// CountProjectIssues feeds issue code generation. The read is not isolated
// against concurrent creations; the unique index on issues.code rejects the
// loser of that race.
func (s *PostgresStore) CountProjectIssues(ctx context.Context, projectID int64) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM issues WHERE project_id=$1`, projectID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count project issues: %w", err)
	}
	return count, nil
}

// ---- releases ----

func (s *PostgresStore) CreateRelease(ctx context.Context, release Release) (Release, error) {
	if release.Status == "" {
		release.Status = ReleaseStatusUnreleased
	}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO releases (project_id, version, description, release_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, release.ProjectID, release.Version, release.Description, release.ReleaseDate, release.Status).
		Scan(&release.ID, &release.CreatedAt, &release.UpdatedAt)
	if err != nil {
		return Release{}, translateConflict(err)
	}
	return release, nil
}

func (s *PostgresStore) GetRelease(ctx context.Context, releaseID int64) (Release, error) {
	var release Release
	err := s.db.QueryRowContext(ctx, `
		SELECT id, project_id, version, description, release_date, status, created_at, updated_at
		FROM releases WHERE id=$1
	`, releaseID).Scan(&release.ID, &release.ProjectID, &release.Version,
		&release.Description, &release.ReleaseDate, &release.Status,
		&release.CreatedAt, &release.UpdatedAt)
	if err != nil {
		return Release{}, err
	}
	return release, nil
}

func (s *PostgresStore) UpdateRelease(ctx context.Context, releaseID int64, patch ReleasePatch) error {
	var sets []string
	args := []any{releaseID}
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s=$%d", column, len(args)))
	}
	if patch.Version != nil {
		set("version", *patch.Version)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.ReleaseDate != nil {
		set("release_date", *patch.ReleaseDate)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if len(sets) == 0 {
		return nil
	}
	return s.execPatch(ctx, "releases", sets, args)
}

// ---- issues ----

func (s *PostgresStore) CreateIssue(ctx context.Context, issue Issue) (Issue, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO issues (title, description, code, estimated_seconds, logged_seconds,
			status, author_id, assignee_id, project_id, release_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`, issue.Title, issue.Description, issue.Code,
		int64(issue.EstimatedTime.Seconds()), int64(issue.LoggedTime.Seconds()),
		issue.Status, issue.AuthorID, issue.AssigneeID, issue.ProjectID, issue.ReleaseID).
		Scan(&issue.ID, &issue.CreatedAt, &issue.UpdatedAt)
	if err != nil {
		return Issue{}, translateConflict(err)
	}
	return issue, nil
}

const issueSelect = `
	SELECT i.id, i.title, i.description, i.code, i.estimated_seconds, i.logged_seconds,
		i.status, i.author_id, i.assignee_id, i.project_id, i.release_id,
		i.created_at, i.updated_at,
		p.code, r.version, author.email, assignee.email
	FROM issues i
	JOIN projects p ON p.id = i.project_id
	LEFT JOIN releases r ON r.id = i.release_id
	JOIN users author ON author.id = i.author_id
	JOIN users assignee ON assignee.id = i.assignee_id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIssue(row rowScanner) (Issue, error) {
	var (
		issue            Issue
		estimatedSeconds int64
		loggedSeconds    int64
		releaseID        sql.NullInt64
		releaseVersion   sql.NullString
	)
	err := row.Scan(&issue.ID, &issue.Title, &issue.Description, &issue.Code,
		&estimatedSeconds, &loggedSeconds, &issue.Status,
		&issue.AuthorID, &issue.AssigneeID, &issue.ProjectID, &releaseID,
		&issue.CreatedAt, &issue.UpdatedAt,
		&issue.ProjectCode, &releaseVersion, &issue.AuthorEmail, &issue.AssigneeEmail)
	if err != nil {
		return Issue{}, err
	}
	issue.EstimatedTime = time.Duration(estimatedSeconds) * time.Second
	issue.LoggedTime = time.Duration(loggedSeconds) * time.Second
	if releaseID.Valid {
		issue.ReleaseID = &releaseID.Int64
	}
	if releaseVersion.Valid {
		issue.ReleaseVersion = &releaseVersion.String
	}
	return issue, nil
}

func (s *PostgresStore) GetIssue(ctx context.Context, issueID int64) (Issue, error) {
	return scanIssue(s.db.QueryRowContext(ctx, issueSelect+` WHERE i.id=$1`, issueID))
}

func (s *PostgresStore) queryIssues(ctx context.Context, query string, args ...any) ([]Issue, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	items := make([]Issue, 0)
	for rows.Next() {
		item, err := scanIssue(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate issues: %w", err)
	}
	return items, nil
}

func (s *PostgresStore) ListIssues(ctx context.Context) ([]Issue, error) {
	return s.queryIssues(ctx, issueSelect)
}

func (s *PostgresStore) ListProjectIssues(ctx context.Context, projectID int64) ([]Issue, error) {
	return s.queryIssues(ctx, issueSelect+` WHERE i.project_id=$1 ORDER BY i.id`, projectID)
}

func (s *PostgresStore) ListAssignedIssues(ctx context.Context, userID int64) ([]Issue, error) {
	return s.queryIssues(ctx, issueSelect+` WHERE i.assignee_id=$1 ORDER BY i.id`, userID)
}

func (s *PostgresStore) UpdateIssue(ctx context.Context, issueID int64, patch IssuePatch) error {
	var sets []string
	args := []any{issueID}
	set := func(expr string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf(expr, len(args)))
	}
	if patch.Title != nil {
		set("title=$%d", *patch.Title)
	}
	if patch.Description != nil {
		set("description=$%d", *patch.Description)
	}
	if patch.EstimatedTime != nil {
		set("estimated_seconds=$%d", int64(patch.EstimatedTime.Seconds()))
	}
	if patch.LoggedTime != nil {
		// Logged time accumulates.
		set("logged_seconds=logged_seconds+$%d", int64(patch.LoggedTime.Seconds()))
	}
	if patch.Status != nil {
		set("status=$%d", *patch.Status)
	}
	if patch.AssigneeID != nil {
		set("assignee_id=$%d", *patch.AssigneeID)
	}
	if patch.ClearRelease {
		sets = append(sets, "release_id=NULL")
	} else if patch.ReleaseID != nil {
		set("release_id=$%d", *patch.ReleaseID)
	}
	if len(sets) == 0 {
		return nil
	}
	return s.execPatch(ctx, "issues", sets, args)
}

// ---- comments ----

func (s *PostgresStore) CreateComment(ctx context.Context, comment Comment) (Comment, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (text, author_id, issue_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, comment.Text, comment.AuthorID, comment.IssueID).
		Scan(&comment.ID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return Comment{}, err
	}
	return comment, nil
}

func (s *PostgresStore) GetComment(ctx context.Context, issueID, commentID int64) (Comment, error) {
	var comment Comment
	err := s.db.QueryRowContext(ctx, `
		SELECT id, text, author_id, issue_id, created_at, updated_at
		FROM comments WHERE id=$1 AND issue_id=$2
	`, commentID, issueID).Scan(&comment.ID, &comment.Text, &comment.AuthorID,
		&comment.IssueID, &comment.CreatedAt, &comment.UpdatedAt)
	if err != nil {
		return Comment{}, err
	}
	return comment, nil
}

func (s *PostgresStore) UpdateCommentText(ctx context.Context, issueID, commentID int64, text string) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE comments SET text=$3, updated_at=NOW() WHERE id=$1 AND issue_id=$2
	`, commentID, issueID, text)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *PostgresStore) ListComments(ctx context.Context, issueID int64) ([]Comment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, text, author_id, issue_id, created_at, updated_at
		FROM comments WHERE issue_id=$1 ORDER BY id
	`, issueID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	items := make([]Comment, 0)
	for rows.Next() {
		var item Comment
		if err := rows.Scan(&item.ID, &item.Text, &item.AuthorID, &item.IssueID,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return items, nil
}

// ---- shared ----

func (s *PostgresStore) execPatch(ctx context.Context, table string, sets []string, args []any) error {
	sets = append(sets, "updated_at=NOW()")
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id=$1`, table, strings.Join(sets, ", "))
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return translateConflict(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", table, err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
