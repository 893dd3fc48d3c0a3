package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.IssueDetail, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.IssueDetail, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.IssueDetail, error)
	CountAll(ctx context.Context) (int64, error)
	AddRemark(ctx context.Context, id uuid.UUID, remark string, at time.Time) error
}

type issueRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewIssueRepository(db database.PgxIface, log *zap.Logger) IssueRepository {
	return &issueRepository{
		db:  db,
		log: log.With(zap.String("repository", "issue")),
	}
}

const issueDetailSelect = `
	SELECT i.id, i.user_id, i.issue, i.description, i.admin_remark, i.admin_remark_date,
	       i.created_at, u.full_name, u.email
	FROM issues i
	JOIN users u ON u.id = i.user_id
`

func scanIssueDetail(row rowScanner) (*entity.IssueDetail, error) {
	var d entity.IssueDetail
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.Issue.Issue,
		&d.Description,
		&d.AdminRemark,
		&d.AdminRemarkDate,
		&d.CreatedAt,
		&d.UserName,
		&d.UserEmail,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *issueRepository) Create(ctx context.Context, issue *entity.Issue) error {
	query := `
		INSERT INTO issues (id, user_id, issue, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, issue.ID, issue.UserID, issue.Issue, issue.Description, issue.CreatedAt)
	if err != nil {
		r.log.Error("Failed to create issue", zap.Error(err), zap.String("user_id", issue.UserID.String()))
		return fmt.Errorf("create issue: %w", err)
	}

	return nil
}

func (r *issueRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.IssueDetail, error) {
	issue, err := scanIssueDetail(r.db.QueryRow(ctx, issueDetailSelect+` WHERE i.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find issue by ID", zap.Error(err), zap.String("issue_id", id.String()))
		return nil, fmt.Errorf("find issue by ID %s: %w", id, err)
	}

	return issue, nil
}

func (r *issueRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.IssueDetail, error) {
	rows, err := r.db.Query(ctx, issueDetailSelect+` WHERE i.user_id = $1 ORDER BY i.created_at DESC, i.id`, userID)
	if err != nil {
		r.log.Error("Failed to find issues by user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find issues by user %s: %w", userID, err)
	}
	defer rows.Close()

	return collectIssues(rows)
}

func (r *issueRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.IssueDetail, error) {
	rows, err := r.db.Query(ctx, issueDetailSelect+` ORDER BY i.created_at DESC, i.id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to list issues", zap.Error(err))
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer rows.Close()

	return collectIssues(rows)
}

func (r *issueRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM issues`).Scan(&count); err != nil {
		r.log.Error("Failed to count issues", zap.Error(err))
		return 0, fmt.Errorf("count issues: %w", err)
	}
	return count, nil
}

func (r *issueRepository) AddRemark(ctx context.Context, id uuid.UUID, remark string, at time.Time) error {
	result, err := r.db.Exec(ctx,
		`UPDATE issues SET admin_remark = $2, admin_remark_date = $3 WHERE id = $1`,
		id, remark, at,
	)
	if err != nil {
		r.log.Error("Failed to add issue remark", zap.Error(err), zap.String("issue_id", id.String()))
		return fmt.Errorf("add remark to issue %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return utils.Wrap(utils.ErrNotFound, "Issue not found")
	}

	return nil
}

func collectIssues(rows pgx.Rows) ([]*entity.IssueDetail, error) {
	issues := make([]*entity.IssueDetail, 0)
	for rows.Next() {
		issue, err := scanIssueDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan issue row: %w", err)
		}
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}
