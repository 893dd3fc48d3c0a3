package response

import (
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"
)

type BookingResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	UserEmail      string    `json:"user_email"`
	PackageID      string    `json:"package_id"`
	PackageName    string    `json:"package_name,omitempty"`
	FromDate       string    `json:"from_date"`
	ToDate         string    `json:"to_date"`
	Comment        string    `json:"comment"`
	NumberOfPeople int       `json:"number_of_people"`
	TotalAmount    float64   `json:"total_amount"`
	Status         int       `json:"status"`
	StatusLabel    string    `json:"status_label"`
	CancelledBy    string    `json:"cancelled_by,omitempty"`
	RegDate        time.Time `json:"reg_date"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func BookingToResponse(b *entity.Booking, packageName string, packagePrice float64) BookingResponse {
	fact := entity.BookingFact{TotalAmount: b.TotalAmount, NumberOfPeople: b.NumberOfPeople, PackagePrice: packagePrice}

	resp := BookingResponse{
		ID:             b.ID.String(),
		UserID:         b.UserID.String(),
		UserEmail:      b.UserEmail,
		PackageID:      b.PackageID.String(),
		PackageName:    packageName,
		FromDate:       b.FromDate.Format(utils.DateLayout),
		ToDate:         b.ToDate.Format(utils.DateLayout),
		Comment:        b.Comment,
		NumberOfPeople: b.NumberOfPeople,
		TotalAmount:    fact.Revenue(),
		Status:         int(b.Status),
		StatusLabel:    b.Status.String(),
		RegDate:        b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	if b.CancelledBy != nil {
		switch *b.CancelledBy {
		case entity.CancelledByUser:
			resp.CancelledBy = "user"
		case entity.CancelledByAdmin:
			resp.CancelledBy = "admin"
		}
	}

	return resp
}

func BookingDetailToResponse(b *entity.BookingDetail) BookingResponse {
	return BookingToResponse(&b.Booking, b.PackageName, b.PackagePrice)
}
