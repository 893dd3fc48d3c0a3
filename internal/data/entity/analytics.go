package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingFact satu baris booking untuk agregasi analytics
type BookingFact struct {
	CreatedAt      time.Time
	Status         BookingStatus
	TotalAmount    *float64
	NumberOfPeople int
	PackagePrice   float64
}

// Revenue uses TotalAmount, or price x people for rows that lack it
func (f BookingFact) Revenue() float64 {
	if f.TotalAmount != nil && *f.TotalAmount > 0 {
		return *f.TotalAmount
	}
	people := f.NumberOfPeople
	if people < 1 {
		people = 1
	}
	return f.PackagePrice * float64(people)
}

type PackagePopularity struct {
	PackageID     uuid.UUID
	Name          string
	Type          string
	Location      string
	Price         float64
	ViewCount     int
	Bookings      int64
	AverageRating float64
}

type DashboardCounts struct {
	TotalBookings     int64
	PendingBookings   int64
	ConfirmedBookings int64
	CancelledBookings int64
	TotalUsers        int64
	TotalPackages     int64
	PendingReviews    int64
	UnreadEnquiries   int64
	OpenIssues        int64
}
