package repository

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type NewsletterRepository interface {
	Create(ctx context.Context, sub *entity.NewsletterSubscriber) error
	FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.NewsletterSubscriber, error)
	CountAll(ctx context.Context) (int64, error)
}

type newsletterRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewNewsletterRepository(db database.PgxIface, log *zap.Logger) NewsletterRepository {
	return &newsletterRepository{
		db:  db,
		log: log.With(zap.String("repository", "newsletter")),
	}
}

func (r *newsletterRepository) Create(ctx context.Context, sub *entity.NewsletterSubscriber) error {
	query := `
		INSERT INTO newsletter_subscribers (id, email, is_active, subscribed_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query, sub.ID, sub.Email, sub.IsActive, sub.SubscribedAt, sub.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "") {
			return utils.Wrap(utils.ErrConflict, "Email already subscribed")
		}
		r.log.Error("Failed to create subscriber", zap.Error(err), zap.String("email", sub.Email))
		return fmt.Errorf("create subscriber %s: %w", sub.Email, err)
	}

	return nil
}

func (r *newsletterRepository) FindByEmail(ctx context.Context, email string) (*entity.NewsletterSubscriber, error) {
	var sub entity.NewsletterSubscriber
	err := r.db.QueryRow(ctx, `
		SELECT id, email, is_active, subscribed_at, updated_at
		FROM newsletter_subscribers
		WHERE LOWER(email) = LOWER($1)`, email,
	).Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find subscriber", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find subscriber %s: %w", email, err)
	}

	return &sub, nil
}

func (r *newsletterRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result, err := r.db.Exec(ctx,
		`UPDATE newsletter_subscribers SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active,
	)
	if err != nil {
		r.log.Error("Failed to update subscriber", zap.Error(err), zap.String("subscriber_id", id.String()))
		return fmt.Errorf("update subscriber %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return utils.Wrap(utils.ErrNotFound, "Subscriber not found")
	}

	return nil
}

func (r *newsletterRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.NewsletterSubscriber, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, email, is_active, subscribed_at, updated_at
		FROM newsletter_subscribers
		ORDER BY subscribed_at DESC, id
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		r.log.Error("Failed to list subscribers", zap.Error(err))
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	defer rows.Close()

	subs := make([]*entity.NewsletterSubscriber, 0)
	for rows.Next() {
		var sub entity.NewsletterSubscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.IsActive, &sub.SubscribedAt, &sub.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subscriber row: %w", err)
		}
		subs = append(subs, &sub)
	}

	return subs, rows.Err()
}

func (r *newsletterRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&count); err != nil {
		r.log.Error("Failed to count subscribers", zap.Error(err))
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return count, nil
}
