package request

type PackageRequest struct {
	Name     string   `json:"name" validate:"required,min=3,max=200"`
	Type     string   `json:"type" validate:"required,max=120"`
	Location string   `json:"location" validate:"required,max=160"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Features string   `json:"features" validate:"max=2000"`
	Details  string   `json:"details" validate:"required,min=10"`
	Image    string   `json:"image" validate:"omitempty,max=500"`
}

// PackageListRequest dari query string GET /api/packages
type PackageListRequest struct {
	Search    string
	MinPrice  *float64
	MaxPrice  *float64
	Types     []string
	Locations []string
	Sort      string
	Page      int
}
