package request

type UpdateProfileRequest struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=120"`
	MobileNumber string `json:"mobile_number" validate:"required,numeric,len=10"`
}
