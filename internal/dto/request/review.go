package request

type CreateReviewRequest struct {
	PackageID string `json:"package_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Title     string `json:"title" validate:"required,min=3,max=200"`
	Comment   string `json:"comment" validate:"required,min=10,max=2000"`
}

type ReviewListRequest struct {
	PaginatedRequest
	Approved *bool
}
