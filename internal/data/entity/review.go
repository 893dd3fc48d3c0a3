package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	UserID     uuid.UUID `db:"user_id"`
	PackageID  uuid.UUID `db:"package_id"`
	Rating     int       `db:"rating"` // 1-5
	Title      string    `db:"title"`
	Comment    string    `db:"comment"`
	IsApproved bool      `db:"is_approved"`
}

type ReviewDetail struct {
	Review
	UserName    string
	PackageName string
}
