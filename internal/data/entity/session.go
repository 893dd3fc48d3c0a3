package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session = satu login. Token adalah jti di JWT.
type Session struct {
	BaseSimple
	SubjectID uuid.UUID  `db:"subject_id"`
	Role      Role       `db:"role"`
	Token     uuid.UUID  `db:"token"`
	UserAgent *string    `db:"user_agent"`
	IPAddress *string    `db:"ip_address"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
