package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSupport(r chi.Router, supportHandler *adaptor.SupportHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/enquiries", supportHandler.CreateEnquiry)
	r.Get("/api/pages/{type}", supportHandler.GetPage)
	r.Post("/api/newsletter/subscribe", supportHandler.Subscribe)
	r.Post("/api/newsletter/unsubscribe", supportHandler.Unsubscribe)

	// ==================== USER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth, g.user)

		r.Post("/api/issues", supportHandler.CreateIssue)
		r.Get("/api/user/issues", supportHandler.GetUserIssues)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth, g.admin)

		r.Get("/api/admin/enquiries", supportHandler.GetAllEnquiries)
		r.Put("/api/admin/enquiries/{id}/read", supportHandler.MarkEnquiryRead)

		r.Get("/api/admin/issues", supportHandler.GetAllIssues)
		r.Put("/api/admin/issues/{id}/remark", supportHandler.AddIssueRemark)

		r.Put("/api/admin/pages/{type}", supportHandler.UpsertPage)

		r.Get("/api/admin/newsletter", supportHandler.GetSubscribers)
	})
}
