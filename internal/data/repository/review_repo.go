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

// nama constraint UNIQUE(user_id, package_id) di migration
const reviewUserPackageKey = "reviews_user_package_key"

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByUserAndPackage(ctx context.Context, userID, packageID uuid.UUID) (*entity.Review, error)
	FindApprovedByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.ReviewDetail, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ReviewDetail, error)
	FindAll(ctx context.Context, approved *bool, limit, offset int) ([]*entity.ReviewDetail, error)
	CountAll(ctx context.Context, approved *bool) (int64, error)
	Approve(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	GetPackageReviewStats(ctx context.Context, packageID uuid.UUID) (float64, int64, error) // rating, count
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

const reviewColumns = `r.id, r.user_id, r.package_id, r.rating, r.title, r.comment, r.is_approved, r.created_at, r.updated_at`

const reviewDetailSelect = `
	SELECT ` + reviewColumns + `, u.full_name, p.name
	FROM reviews r
	JOIN users u ON u.id = r.user_id
	JOIN tour_packages p ON p.id = r.package_id
`

func reviewScanTargets(review *entity.Review) []any {
	return []any{
		&review.ID,
		&review.UserID,
		&review.PackageID,
		&review.Rating,
		&review.Title,
		&review.Comment,
		&review.IsApproved,
		&review.CreatedAt,
		&review.UpdatedAt,
	}
}

func scanReview(row rowScanner) (*entity.Review, error) {
	var review entity.Review
	if err := row.Scan(reviewScanTargets(&review)...); err != nil {
		return nil, err
	}
	return &review, nil
}

func scanReviewDetail(row rowScanner) (*entity.ReviewDetail, error) {
	var d entity.ReviewDetail
	targets := append(reviewScanTargets(&d.Review), &d.UserName, &d.PackageName)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create - duplicate (user, package) -> utils.ErrConflict
func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, package_id, rating, title, comment, is_approved, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.PackageID,
		review.Rating,
		review.Title,
		review.Comment,
		review.IsApproved,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, reviewUserPackageKey) {
			return utils.Wrap(utils.ErrConflict, "You have already reviewed this package")
		}
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("package_id", review.PackageID.String()),
		)
		return fmt.Errorf("create review for package %s by user %s: %w", review.PackageID, review.UserID, err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	review, err := scanReview(r.db.QueryRow(ctx, `SELECT `+reviewColumns+` FROM reviews r WHERE r.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID", zap.Error(err), zap.String("review_id", id.String()))
		return nil, fmt.Errorf("find review by ID %s: %w", id, err)
	}

	return review, nil
}

func (r *reviewRepository) FindByUserAndPackage(ctx context.Context, userID, packageID uuid.UUID) (*entity.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews r WHERE r.user_id = $1 AND r.package_id = $2 LIMIT 1`

	review, err := scanReview(r.db.QueryRow(ctx, query, userID, packageID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by user and package",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("package_id", packageID.String()),
		)
		return nil, fmt.Errorf("find review by user %s and package %s: %w", userID, packageID, err)
	}

	return review, nil
}

func (r *reviewRepository) FindApprovedByPackageID(ctx context.Context, packageID uuid.UUID) ([]*entity.ReviewDetail, error) {
	query := reviewDetailSelect + `
		WHERE r.package_id = $1 AND r.is_approved
		ORDER BY r.created_at DESC, r.id
	`

	rows, err := r.db.Query(ctx, query, packageID)
	if err != nil {
		r.log.Error("Failed to find approved reviews", zap.Error(err), zap.String("package_id", packageID.String()))
		return nil, fmt.Errorf("find approved reviews for package %s: %w", packageID, err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func (r *reviewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ReviewDetail, error) {
	query := reviewDetailSelect + `
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC, r.id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID, err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

// FindAll - approved nil berarti semua review
func (r *reviewRepository) FindAll(ctx context.Context, approved *bool, limit, offset int) ([]*entity.ReviewDetail, error) {
	query := reviewDetailSelect + `
		WHERE ($1::boolean IS NULL OR r.is_approved = $1)
		ORDER BY r.created_at DESC, r.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, approved, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reviews", zap.Error(err))
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	return collectReviews(rows)
}

func (r *reviewRepository) CountAll(ctx context.Context, approved *bool) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE ($1::boolean IS NULL OR is_approved = $1)`, approved,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) Approve(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `UPDATE reviews SET is_approved = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to approve review", zap.Error(err), zap.String("review_id", id.String()))
		return fmt.Errorf("approve review %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return utils.Wrap(utils.ErrNotFound, "Review not found")
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", id.String()))
		return fmt.Errorf("delete review %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return utils.Wrap(utils.ErrNotFound, "Review not found")
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *reviewRepository) GetPackageReviewStats(ctx context.Context, packageID uuid.UUID) (float64, int64, error) {
	query := `
		SELECT
			COALESCE(AVG(rating), 0)::float8 AS avg_rating,
			COUNT(*) AS review_count
		FROM reviews
		WHERE package_id = $1 AND is_approved
	`

	var avgRating float64
	var reviewCount int64
	if err := r.db.QueryRow(ctx, query, packageID).Scan(&avgRating, &reviewCount); err != nil {
		r.log.Error("Failed to get package review stats", zap.Error(err), zap.String("package_id", packageID.String()))
		return 0, 0, fmt.Errorf("get package review stats for %s: %w", packageID, err)
	}

	return avgRating, reviewCount, nil
}

func collectReviews(rows pgx.Rows) ([]*entity.ReviewDetail, error) {
	reviews := make([]*entity.ReviewDetail, 0)
	for rows.Next() {
		review, err := scanReviewDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
