package wire

import (
	"tourism-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wirePackage(r chi.Router, packageHandler *adaptor.PackageHandler, g guards) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/packages", packageHandler.ListPackages)
	r.Get("/api/packages/filters", packageHandler.GetFilterOptions)
	r.Get("/api/packages/{id}", packageHandler.GetPackage)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/packages", func(r chi.Router) {
		r.Use(g.auth, g.admin)

		r.Get("/", packageHandler.ListPackages)
		r.Post("/", packageHandler.CreatePackage)
		r.Put("/{id}", packageHandler.UpdatePackage)
		r.Delete("/{id}", packageHandler.DeletePackage)
	})
}
