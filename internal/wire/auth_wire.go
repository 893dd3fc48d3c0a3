package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/register", authHandler.Register)
	r.Post("/api/login", authHandler.Login)
	r.Post("/api/admin/login", authHandler.AdminLogin)
	r.Post("/api/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth)

		// POST /api/logout - revoke session (user maupun admin)
		r.Post("/api/logout", authHandler.Logout)

		r.With(g.user).Put("/api/user/password", authHandler.ChangePassword)
		r.With(g.admin).Put("/api/admin/password", authHandler.ChangePassword)
	})
}
