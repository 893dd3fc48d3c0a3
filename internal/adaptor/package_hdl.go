package adaptor

import (
	"net/http"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PackageHandler struct {
	service usecase.PackageService
	log     *zap.Logger
}

func NewPackageHandler(service usecase.PackageService, log *zap.Logger) *PackageHandler {
	return &PackageHandler{
		service: service,
		log:     log.With(zap.String("handler", "package")),
	}
}

// ListPackages handles GET /api/packages
// ?search=&minPrice=&maxPrice=&types=a,b&locations=x,y&sort=&page=
func (h *PackageHandler) ListPackages(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	fields := map[string]string{}
	minPrice, err := utils.ParseFloatPtr(query.Get("minPrice"))
	if err != nil {
		fields["min_price"] = "Minimum price must be a valid number"
	}
	maxPrice, err := utils.ParseFloatPtr(query.Get("maxPrice"))
	if err != nil {
		fields["max_price"] = "Maximum price must be a valid number"
	}
	if len(fields) > 0 {
		handleServiceError(w, h.log, utils.NewValidationError(fields), "list packages")
		return
	}

	req := &request.PackageListRequest{
		Search:    query.Get("search"),
		MinPrice:  minPrice,
		MaxPrice:  maxPrice,
		Types:     utils.SplitCSV(query.Get("types")),
		Locations: utils.SplitCSV(query.Get("locations")),
		Sort:      query.Get("sort"),
		Page:      utils.ParseInt(query.Get("page"), 1),
	}

	packages, err := h.service.ListPackages(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list packages")
		return
	}

	utils.ResponseSuccess(w, "success", packages)
}

// GetFilterOptions handles GET /api/packages/filters
func (h *PackageHandler) GetFilterOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := h.service.GetFilterOptions(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get filter options")
		return
	}

	utils.ResponseSuccess(w, "success", opts)
}

// GetPackage handles GET /api/packages/{id}
func (h *PackageHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	pkg, err := h.service.GetPackage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get package")
		return
	}

	utils.ResponseSuccess(w, "success", pkg)
}

// ==================== ADMIN METHODS ====================

// CreatePackage handles POST /api/admin/packages
func (h *PackageHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pkg, err := h.service.CreatePackage(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create package")
		return
	}

	utils.ResponseCreated(w, "Package created", pkg)
}

// UpdatePackage handles PUT /api/admin/packages/{id}
func (h *PackageHandler) UpdatePackage(w http.ResponseWriter, r *http.Request) {
	var req request.PackageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	pkg, err := h.service.UpdatePackage(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update package")
		return
	}

	utils.ResponseSuccess(w, "Package updated", pkg)
}

// DeletePackage handles DELETE /api/admin/packages/{id}
func (h *PackageHandler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePackage(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete package")
		return
	}

	utils.ResponseSuccess(w, "Package deleted", nil)
}
