package request

type CreateEnquiryRequest struct {
	FullName     string `json:"full_name" validate:"required,min=2,max=120"`
	Email        string `json:"email" validate:"required,email"`
	MobileNumber string `json:"mobile_number" validate:"required,numeric,len=10"`
	Subject      string `json:"subject" validate:"required,min=3,max=200"`
	Description  string `json:"description" validate:"required,min=10"`
}

type CreateIssueRequest struct {
	Issue       string `json:"issue" validate:"required,min=3,max=200"`
	Description string `json:"description" validate:"required,min=10"`
}

type IssueRemarkRequest struct {
	Remark string `json:"remark" validate:"required,min=2"`
}

type UpsertPageRequest struct {
	Detail string `json:"detail" validate:"required"`
}

type NewsletterRequest struct {
	Email string `json:"email" validate:"required,email"`
}
