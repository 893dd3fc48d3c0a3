package request

type RegisterRequest struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=120"`
	MobileNumber string `json:"mobile_number" validate:"required,numeric,len=10"`
	Email        string `json:"email" validate:"required,email,max=160"`
	Password     string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required,email"`
	MobileNumber    string `json:"mobile_number" validate:"required,numeric,len=10"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// SessionMeta info client yang disimpan di tabel sessions
type SessionMeta struct {
	UserAgent string
	IPAddress string
}
