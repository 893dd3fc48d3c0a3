package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAnalytics(r chi.Router, analyticsHandler *adaptor.AnalyticsHandler, g guards) {
	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(g.auth, g.admin)

		r.Get("/api/admin/dashboard", analyticsHandler.GetDashboard)
	})

	r.Route("/api/admin/analytics", func(r chi.Router) {
		r.Use(g.auth, g.admin)

		// semua endpoint terima ?from=YYYY-MM-DD&to=YYYY-MM-DD
		r.Get("/revenue", analyticsHandler.GetRevenue)
		r.Get("/bookings", analyticsHandler.GetBookingTrends)
		r.Get("/users", analyticsHandler.GetUserGrowth)
		r.Get("/popular", analyticsHandler.GetPopularPackages)
		r.Get("/export", analyticsHandler.Export)
	})
}
