package repository

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PageRepository interface {
	FindByType(ctx context.Context, pageType entity.PageType) (*entity.Page, error)
	Upsert(ctx context.Context, page *entity.Page) error
}

type pageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPageRepository(db database.PgxIface, log *zap.Logger) PageRepository {
	return &pageRepository{
		db:  db,
		log: log.With(zap.String("repository", "page")),
	}
}

func (r *pageRepository) FindByType(ctx context.Context, pageType entity.PageType) (*entity.Page, error) {
	var page entity.Page
	err := r.db.QueryRow(ctx,
		`SELECT type, detail, updated_at FROM pages WHERE type = $1`, pageType,
	).Scan(&page.Type, &page.Detail, &page.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find page", zap.Error(err), zap.String("type", string(pageType)))
		return nil, fmt.Errorf("find page %s: %w", pageType, err)
	}

	return &page, nil
}

func (r *pageRepository) Upsert(ctx context.Context, page *entity.Page) error {
	query := `
		INSERT INTO pages (type, detail, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (type) DO UPDATE SET detail = EXCLUDED.detail, updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.Exec(ctx, query, page.Type, page.Detail, page.UpdatedAt); err != nil {
		r.log.Error("Failed to upsert page", zap.Error(err), zap.String("type", string(page.Type)))
		return fmt.Errorf("upsert page %s: %w", page.Type, err)
	}

	return nil
}
