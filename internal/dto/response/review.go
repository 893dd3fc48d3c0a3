package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type ReviewResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name,omitempty"`
	PackageID   string    `json:"package_id"`
	PackageName string    `json:"package_name,omitempty"`
	Rating      int       `json:"rating"`
	Title       string    `json:"title"`
	Comment     string    `json:"comment"`
	IsApproved  bool      `json:"is_approved"`
	CreatedAt   time.Time `json:"created_at"`
}

// PackageReviewsResponse - review publik (approved) + statistik
type PackageReviewsResponse struct {
	Reviews       []ReviewResponse `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
	TotalReviews  int64            `json:"total_reviews"`
}

func ReviewToResponse(review *entity.Review, userName, packageName string) ReviewResponse {
	return ReviewResponse{
		ID:          review.ID.String(),
		UserID:      review.UserID.String(),
		UserName:    userName,
		PackageID:   review.PackageID.String(),
		PackageName: packageName,
		Rating:      review.Rating,
		Title:       review.Title,
		Comment:     review.Comment,
		IsApproved:  review.IsApproved,
		CreatedAt:   review.CreatedAt,
	}
}

func ReviewDetailToResponse(d *entity.ReviewDetail) ReviewResponse {
	return ReviewToResponse(&d.Review, d.UserName, d.PackageName)
}
