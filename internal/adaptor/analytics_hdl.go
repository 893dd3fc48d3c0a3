package adaptor

import (
	"fmt"
	"net/http"
	"strconv"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type AnalyticsHandler struct {
	service usecase.AnalyticsService
	log     *zap.Logger
}

func NewAnalyticsHandler(service usecase.AnalyticsService, log *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
		log:     log.With(zap.String("handler", "analytics")),
	}
}

func dateRangeFromQuery(r *http.Request) *request.DateRangeRequest {
	query := r.URL.Query()
	return &request.DateRangeRequest{From: query.Get("from"), To: query.Get("to")}
}

// GetDashboard handles GET /api/admin/dashboard
func (h *AnalyticsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetDashboard(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, "success", stats)
}

// GetRevenue handles GET /api/admin/analytics/revenue?from=&to=
func (h *AnalyticsHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.GetRevenue(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get revenue")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// GetBookingTrends handles GET /api/admin/analytics/bookings?from=&to=
func (h *AnalyticsHandler) GetBookingTrends(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.GetBookingTrends(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get booking trends")
		return
	}

	utils.ResponseSuccess(w, "success", series)
}

// GetUserGrowth handles GET /api/admin/analytics/users?from=&to=
func (h *AnalyticsHandler) GetUserGrowth(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.GetUserGrowth(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get user growth")
		return
	}

	utils.ResponseSuccess(w, "success", series)
}

// GetPopularPackages handles GET /api/admin/analytics/popular?from=&to=
func (h *AnalyticsHandler) GetPopularPackages(w http.ResponseWriter, r *http.Request) {
	series, err := h.service.GetPopularPackages(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get popular packages")
		return
	}

	utils.ResponseSuccess(w, "success", series)
}

// Export handles GET /api/admin/analytics/export?from=&to= (text/csv)
func (h *AnalyticsHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.service.ExportCSV(r.Context(), dateRangeFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "export analytics")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.log.Warn("Failed to write export", zap.Error(err))
	}
}
