package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	// User
	CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetUserReviews(ctx context.Context, userID uuid.UUID) ([]response.ReviewResponse, error)

	// Public
	GetPackageReviews(ctx context.Context, packageID string) (*response.PackageReviewsResponse, error)

	// Admin
	GetAllReviews(ctx context.Context, req *request.ReviewListRequest) (*response.PaginatedResponse[response.ReviewResponse], error)
	ApproveReview(ctx context.Context, reviewID string) error
	DeleteReview(ctx context.Context, reviewID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

// CreateReview - wajib punya booking confirmed, satu review per (user, paket).
// Unique constraint reviews_user_package_key menangani double submit.
func (s *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Error(err))
		return nil, err
	}

	packageID, err := parseID("package_id", req.PackageID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, utils.Wrap(utils.ErrNotFound, "Package not found")
	}

	existing, err := s.repo.Review.FindByUserAndPackage(ctx, userID, packageID)
	if err != nil {
		return nil, fmt.Errorf("check existing review: %w", err)
	}
	if existing != nil {
		return nil, utils.Wrap(utils.ErrConflict, "You have already reviewed this package")
	}

	booked, err := s.repo.Booking.HasConfirmedBooking(ctx, userID, packageID)
	if err != nil {
		return nil, fmt.Errorf("check confirmed booking: %w", err)
	}
	if !booked {
		return nil, utils.Wrap(utils.ErrForbidden, "You can only review packages you have booked")
	}

	review := &entity.Review{
		Base:       entity.NewBase(time.Now()),
		UserID:     userID,
		PackageID:  packageID,
		Rating:     req.Rating,
		Title:      strings.TrimSpace(req.Title),
		Comment:    strings.TrimSpace(req.Comment),
		IsApproved: false,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, err
	}

	s.log.Info("Review submitted",
		zap.String("review_id", review.ID.String()),
		zap.String("package_id", packageID.String()),
	)

	resp := response.ReviewToResponse(review, "", pkg.Name)
	return &resp, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID uuid.UUID) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}

	return response.MapSlice(reviews, func(r *entity.ReviewDetail) response.ReviewResponse {
		return response.ReviewDetailToResponse(r)
	}), nil
}

// GetPackageReviews - hanya review yang sudah di-approve
func (s *reviewService) GetPackageReviews(ctx context.Context, packageID string) (*response.PackageReviewsResponse, error) {
	id, err := parseID("id", packageID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, utils.Wrap(utils.ErrNotFound, "Package not found")
	}

	reviews, err := s.repo.Review.FindApprovedByPackageID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list package reviews: %w", err)
	}

	avg, total, err := s.repo.Review.GetPackageReviewStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("review stats: %w", err)
	}

	return &response.PackageReviewsResponse{
		Reviews: response.MapSlice(reviews, func(r *entity.ReviewDetail) response.ReviewResponse {
			return response.ReviewDetailToResponse(r)
		}),
		AverageRating: avg,
		TotalReviews:  total,
	}, nil
}

func (s *reviewService) GetAllReviews(ctx context.Context, req *request.ReviewListRequest) (*response.PaginatedResponse[response.ReviewResponse], error) {
	reviews, err := s.repo.Review.FindAll(ctx, req.Approved, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	total, err := s.repo.Review.CountAll(ctx, req.Approved)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}

	data := response.MapSlice(reviews, func(r *entity.ReviewDetail) response.ReviewResponse {
		return response.ReviewDetailToResponse(r)
	})

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

// ApproveReview - flip satu arah, approve ulang tidak error
func (s *reviewService) ApproveReview(ctx context.Context, reviewID string) error {
	id, err := parseID("id", reviewID)
	if err != nil {
		return err
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return utils.Wrap(utils.ErrNotFound, "Review not found")
	}
	if review.IsApproved {
		return nil
	}

	if err := s.repo.Review.Approve(ctx, id); err != nil {
		return err
	}

	s.log.Info("Review approved", zap.String("review_id", id.String()))
	return nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID string) error {
	id, err := parseID("id", reviewID)
	if err != nil {
		return err
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}
