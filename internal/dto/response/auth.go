package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type AuthResponse struct {
	ID        string      `json:"id"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Role      entity.Role `json:"role"`
	Email     string      `json:"email,omitempty"`
	Username  string      `json:"username,omitempty"`
	FullName  string      `json:"full_name,omitempty"`
}

type UserResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	MobileNumber string    `json:"mobile_number"`
	Email        string    `json:"email"`
	RegDate      time.Time `json:"reg_date"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Helper converters
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:           user.ID.String(),
		FullName:     user.FullName,
		MobileNumber: user.MobileNumber,
		Email:        user.Email,
		RegDate:      user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func UserAuthResponse(user *entity.User, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		ID:        user.ID.String(),
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      entity.RoleUser,
		Email:     user.Email,
		FullName:  user.FullName,
	}
}

func AdminAuthResponse(admin *entity.Admin, token string, expiresAt time.Time) AuthResponse {
	return AuthResponse{
		ID:        admin.ID.String(),
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      entity.RoleAdmin,
		Email:     admin.Email,
		Username:  admin.Username,
		FullName:  admin.FullName,
	}
}
