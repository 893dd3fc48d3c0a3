package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler, g guards) {
	// ==================== USER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth, g.user)

		r.Get("/api/user/profile", userHandler.GetProfile)
		r.Put("/api/user/profile", userHandler.UpdateProfile)
	})

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth, g.admin)

		// GET /api/admin/users - list semua user (search + paginasi)
		r.Get("/api/admin/users", userHandler.GetAllUsers)
	})
}
