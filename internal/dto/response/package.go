package response

import (
	"strings"
	"time"

	"tourism-booking/internal/data/entity"
)

type PackageResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Location      string    `json:"location"`
	Price         float64   `json:"price"`
	Features      []string  `json:"features"`
	Details       string    `json:"details"`
	Image         string    `json:"image"`
	ViewCount     int       `json:"view_count"`
	AverageRating float64   `json:"average_rating"`
	TotalReviews  int64     `json:"total_reviews"`
	TotalBookings int64     `json:"total_bookings"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PackageListResponse - halaman katalog dengan page size tetap
type PackageListResponse struct {
	Packages    []PackageResponse `json:"packages"`
	Total       int64             `json:"total"`
	Pages       int               `json:"pages"`
	CurrentPage int               `json:"current_page"`
}

type FilterOptionsResponse struct {
	Types     []string `json:"types"`
	Locations []string `json:"locations"`
	MinPrice  float64  `json:"min_price"`
	MaxPrice  float64  `json:"max_price"`
}

func PackageToResponse(p *entity.TourPackage) PackageResponse {
	features := make([]string, 0)
	for _, f := range strings.Split(p.Features, ",") {
		if f = strings.TrimSpace(f); f != "" {
			features = append(features, f)
		}
	}

	return PackageResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		Type:      p.Type,
		Location:  p.Location,
		Price:     p.Price,
		Features:  features,
		Details:   p.Details,
		Image:     p.Image,
		ViewCount: p.ViewCount,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func PackageWithStatsToResponse(p *entity.PackageWithStats) PackageResponse {
	resp := PackageToResponse(&p.TourPackage)
	resp.AverageRating = roundTo(p.AverageRating, 1)
	resp.TotalReviews = p.TotalReviews
	resp.TotalBookings = p.TotalBookings
	return resp
}
