package entity

import (
	"time"

	"github.com/google/uuid"
)

type NewsletterSubscriber struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	IsActive     bool      `db:"is_active"`
	SubscribedAt time.Time `db:"subscribed_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
