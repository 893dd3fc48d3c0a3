package repository

import (
	"context"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EnquiryRepository interface {
	Create(ctx context.Context, enquiry *entity.Enquiry) error
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Enquiry, error)
	CountAll(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type enquiryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEnquiryRepository(db database.PgxIface, log *zap.Logger) EnquiryRepository {
	return &enquiryRepository{
		db:  db,
		log: log.With(zap.String("repository", "enquiry")),
	}
}

func (r *enquiryRepository) Create(ctx context.Context, e *entity.Enquiry) error {
	query := `
		INSERT INTO enquiries (id, full_name, email, mobile_number, subject, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		e.ID, e.FullName, e.Email, e.MobileNumber, e.Subject, e.Description, e.Status, e.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create enquiry", zap.Error(err), zap.String("email", e.Email))
		return fmt.Errorf("create enquiry: %w", err)
	}

	return nil
}

func (r *enquiryRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Enquiry, error) {
	query := `
		SELECT id, full_name, email, mobile_number, subject, description, status, created_at
		FROM enquiries
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list enquiries", zap.Error(err))
		return nil, fmt.Errorf("list enquiries: %w", err)
	}
	defer rows.Close()

	enquiries := make([]*entity.Enquiry, 0)
	for rows.Next() {
		var e entity.Enquiry
		if err := rows.Scan(&e.ID, &e.FullName, &e.Email, &e.MobileNumber, &e.Subject, &e.Description, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan enquiry row: %w", err)
		}
		enquiries = append(enquiries, &e)
	}

	return enquiries, rows.Err()
}

func (r *enquiryRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM enquiries`).Scan(&count); err != nil {
		r.log.Error("Failed to count enquiries", zap.Error(err))
		return 0, fmt.Errorf("count enquiries: %w", err)
	}
	return count, nil
}

func (r *enquiryRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `UPDATE enquiries SET status = 1 WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to mark enquiry read", zap.Error(err), zap.String("enquiry_id", id.String()))
		return fmt.Errorf("mark enquiry %s read: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return utils.Wrap(utils.ErrNotFound, "Enquiry not found")
	}

	return nil
}
