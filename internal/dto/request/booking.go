package request

type CreateBookingRequest struct {
	PackageID      string `json:"package_id" validate:"required,uuid"`
	FromDate       string `json:"from_date" validate:"required,datetime=2006-01-02"`
	ToDate         string `json:"to_date" validate:"required,datetime=2006-01-02"`
	Comment        string `json:"comment" validate:"max=1000"`
	NumberOfPeople int    `json:"number_of_people" validate:"omitempty,gte=1,lte=100"`
}

type BookingListRequest struct {
	PaginatedRequest
	Status *int
}
