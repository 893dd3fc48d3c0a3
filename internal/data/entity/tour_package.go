package entity

type TourPackage struct {
	Base
	Name      string  `db:"name"`
	Type      string  `db:"type"`
	Location  string  `db:"location"`
	Price     float64 `db:"price"`
	Features  string  `db:"features"` // comma separated
	Details   string  `db:"details"`
	Image     string  `db:"image"`
	ViewCount int     `db:"view_count"`
}

// PackageWithStats adds review and booking aggregates for catalog pages
type PackageWithStats struct {
	TourPackage
	AverageRating float64
	TotalReviews  int64
	TotalBookings int64
}
