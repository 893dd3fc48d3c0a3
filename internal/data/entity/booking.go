package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus int16

const (
	BookingStatusPending   BookingStatus = 0
	BookingStatusConfirmed BookingStatus = 1
	BookingStatusCancelled BookingStatus = 2
)

func (s BookingStatus) String() string {
	switch s {
	case BookingStatusPending:
		return "pending"
	case BookingStatusConfirmed:
		return "confirmed"
	case BookingStatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

func (s BookingStatus) Valid() bool {
	return s >= BookingStatusPending && s <= BookingStatusCancelled
}

type CancelledBy string

const (
	CancelledByUser  CancelledBy = "u"
	CancelledByAdmin CancelledBy = "a"
)

// Booking.CreatedAt adalah regDate, dipakai untuk analytics per bulan
type Booking struct {
	Base
	UserID         uuid.UUID     `db:"user_id"`
	UserEmail      string        `db:"user_email"`
	PackageID      uuid.UUID     `db:"package_id"`
	FromDate       time.Time     `db:"from_date"`
	ToDate         time.Time     `db:"to_date"`
	Comment        string        `db:"comment"`
	NumberOfPeople int           `db:"number_of_people"`
	TotalAmount    *float64      `db:"total_amount"`
	Status         BookingStatus `db:"status"`
	CancelledBy    *CancelledBy  `db:"cancelled_by"`
}

// BookingDetail is a booking joined with its package name and price
type BookingDetail struct {
	Booking
	PackageName  string
	PackagePrice float64
}
