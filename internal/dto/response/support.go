package response

import (
	"time"

	"tourism-booking/internal/data/entity"
)

type EnquiryResponse struct {
	ID           string    `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	MobileNumber string    `json:"mobile_number"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description"`
	Status       int       `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

type IssueResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	UserName        string     `json:"user_name,omitempty"`
	UserEmail       string     `json:"user_email,omitempty"`
	Issue           string     `json:"issue"`
	Description     string     `json:"description"`
	AdminRemark     *string    `json:"admin_remark"`
	AdminRemarkDate *time.Time `json:"admin_remark_date"`
	Answered        bool       `json:"answered"`
	CreatedAt       time.Time  `json:"created_at"`
}

type PageResponse struct {
	Type      string    `json:"type"`
	Detail    string    `json:"detail"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SubscriberResponse struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

func EnquiryToResponse(e *entity.Enquiry) EnquiryResponse {
	return EnquiryResponse{
		ID:           e.ID.String(),
		FullName:     e.FullName,
		Email:        e.Email,
		MobileNumber: e.MobileNumber,
		Subject:      e.Subject,
		Description:  e.Description,
		Status:       int(e.Status),
		CreatedAt:    e.CreatedAt,
	}
}

func IssueToResponse(i *entity.Issue, userName, userEmail string) IssueResponse {
	return IssueResponse{
		ID:              i.ID.String(),
		UserID:          i.UserID.String(),
		UserName:        userName,
		UserEmail:       userEmail,
		Issue:           i.Issue,
		Description:     i.Description,
		AdminRemark:     i.AdminRemark,
		AdminRemarkDate: i.AdminRemarkDate,
		Answered:        i.Answered(),
		CreatedAt:       i.CreatedAt,
	}
}

func IssueDetailToResponse(d *entity.IssueDetail) IssueResponse {
	return IssueToResponse(&d.Issue, d.UserName, d.UserEmail)
}

func PageToResponse(p *entity.Page) PageResponse {
	return PageResponse{Type: string(p.Type), Detail: p.Detail, UpdatedAt: p.UpdatedAt}
}

func SubscriberToResponse(s *entity.NewsletterSubscriber) SubscriberResponse {
	return SubscriberResponse{
		ID:           s.ID.String(),
		Email:        s.Email,
		IsActive:     s.IsActive,
		SubscribedAt: s.SubscribedAt,
	}
}
