package adaptor

import (
	"net/http"

	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SupportHandler - enquiry, issue, halaman statis, newsletter
type SupportHandler struct {
	enquiry    usecase.EnquiryService
	issue      usecase.IssueService
	page       usecase.PageService
	newsletter usecase.NewsletterService
	log        *zap.Logger
}

func NewSupportHandler(
	enquiry usecase.EnquiryService,
	issue usecase.IssueService,
	page usecase.PageService,
	newsletter usecase.NewsletterService,
	log *zap.Logger,
) *SupportHandler {
	return &SupportHandler{
		enquiry:    enquiry,
		issue:      issue,
		page:       page,
		newsletter: newsletter,
		log:        log.With(zap.String("handler", "support")),
	}
}

// ==================== ENQUIRY ====================

// CreateEnquiry handles POST /api/enquiries (public)
func (h *SupportHandler) CreateEnquiry(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEnquiryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	enquiry, err := h.enquiry.CreateEnquiry(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create enquiry")
		return
	}

	utils.ResponseCreated(w, "Enquiry submitted", enquiry)
}

// GetAllEnquiries handles GET /api/admin/enquiries
func (h *SupportHandler) GetAllEnquiries(w http.ResponseWriter, r *http.Request) {
	enquiries, err := h.enquiry.GetAllEnquiries(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get enquiries")
		return
	}

	utils.ResponseSuccess(w, "success", enquiries)
}

// MarkEnquiryRead handles PUT /api/admin/enquiries/{id}/read
func (h *SupportHandler) MarkEnquiryRead(w http.ResponseWriter, r *http.Request) {
	if err := h.enquiry.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "mark enquiry read")
		return
	}

	utils.ResponseSuccess(w, "Enquiry marked as read", nil)
}

// ==================== ISSUE ====================

// CreateIssue handles POST /api/issues (user)
func (h *SupportHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateIssueRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	issue, err := h.issue.CreateIssue(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create issue")
		return
	}

	utils.ResponseCreated(w, "Issue submitted", issue)
}

// GetUserIssues handles GET /api/user/issues (user)
func (h *SupportHandler) GetUserIssues(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	issues, err := h.issue.GetUserIssues(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get user issues")
		return
	}

	utils.ResponseSuccess(w, "success", issues)
}

// GetAllIssues handles GET /api/admin/issues
func (h *SupportHandler) GetAllIssues(w http.ResponseWriter, r *http.Request) {
	issues, err := h.issue.GetAllIssues(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get issues")
		return
	}

	utils.ResponseSuccess(w, "success", issues)
}

// AddIssueRemark handles PUT /api/admin/issues/{id}/remark
func (h *SupportHandler) AddIssueRemark(w http.ResponseWriter, r *http.Request) {
	var req request.IssueRemarkRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	issue, err := h.issue.AddRemark(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "add issue remark")
		return
	}

	utils.ResponseSuccess(w, "Remark saved", issue)
}

// ==================== PAGES ====================

// GetPage handles GET /api/pages/{type} (public)
func (h *SupportHandler) GetPage(w http.ResponseWriter, r *http.Request) {
	page, err := h.page.GetPage(r.Context(), chi.URLParam(r, "type"))
	if err != nil {
		handleServiceError(w, h.log, err, "get page")
		return
	}

	utils.ResponseSuccess(w, "success", page)
}

// UpsertPage handles PUT /api/admin/pages/{type}
func (h *SupportHandler) UpsertPage(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertPageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	page, err := h.page.UpsertPage(r.Context(), chi.URLParam(r, "type"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "upsert page")
		return
	}

	utils.ResponseSuccess(w, "Page updated", page)
}

// ==================== NEWSLETTER ====================

// Subscribe handles POST /api/newsletter/subscribe (public)
func (h *SupportHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req request.NewsletterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sub, err := h.newsletter.Subscribe(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "subscribe")
		return
	}

	utils.ResponseCreated(w, "Subscribed to newsletter", sub)
}

// Unsubscribe handles POST /api/newsletter/unsubscribe (public)
func (h *SupportHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	var req request.NewsletterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.newsletter.Unsubscribe(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "unsubscribe")
		return
	}

	utils.ResponseSuccess(w, "Unsubscribed from newsletter", nil)
}

// GetSubscribers handles GET /api/admin/newsletter
func (h *SupportHandler) GetSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := h.newsletter.GetSubscribers(r.Context(), paginationFromQuery(r))
	if err != nil {
		handleServiceError(w, h.log, err, "get subscribers")
		return
	}

	utils.ResponseSuccess(w, "success", subs)
}
