package entity

type EnquiryStatus int16

const (
	EnquiryStatusUnread EnquiryStatus = 0
	EnquiryStatusRead   EnquiryStatus = 1
)

type Enquiry struct {
	BaseSimple
	FullName     string        `db:"full_name"`
	Email        string        `db:"email"`
	MobileNumber string        `db:"mobile_number"`
	Subject      string        `db:"subject"`
	Description  string        `db:"description"`
	Status       EnquiryStatus `db:"status"`
}
