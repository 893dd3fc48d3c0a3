package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, reviewHandler *adaptor.ReviewHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/packages/{id}/reviews - hanya review approved
	r.Get("/api/packages/{id}/reviews", reviewHandler.GetPackageReviews)

	// ==================== USER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth, g.user)

		r.Post("/api/reviews", reviewHandler.CreateReview)
		r.Get("/api/user/reviews", reviewHandler.GetUserReviews)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reviews", func(r chi.Router) {
		r.Use(g.auth, g.admin)

		r.Get("/", reviewHandler.GetAllReviews)
		r.Put("/{id}/approve", reviewHandler.ApproveReview)
		r.Delete("/{id}", reviewHandler.DeleteReview)
	})
}
