// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"tourism-booking/internal/adaptor"
	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/usecase"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/middleware"
	"tourism-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// guards - middleware auth yang dipakai ulang di semua wire*
type guards struct {
	auth  func(http.Handler) http.Handler
	user  func(http.Handler) http.Handler
	admin func(http.Handler) http.Handler
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	repo *repository.Repository,
	db database.PgxIface,
	tokens *utils.JWTManager,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, repo, db, tokens, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	db database.PgxIface,
	tokens *utils.JWTManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	g := guards{
		auth:  middleware.AuthSession(tokens, repo.Session, logger),
		user:  middleware.RequireRole(string(entity.RoleUser), logger),
		admin: middleware.RequireRole(string(entity.RoleAdmin), logger),
	}

	// Apply routes
	wireAuth(r, handler.Auth, g)
	wireUser(r, handler.User, g)
	wirePackage(r, handler.Package, g)
	wireBooking(r, handler.Booking, g)
	wireReview(r, handler.Review, g)
	wireSupport(r, handler.Support, g)
	wireAnalytics(r, handler.Analytics, g)

	// Health check endpoint
	r.Get("/health", healthHandler(db, logger))

	return r
}

func healthHandler(db database.PgxIface, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check: database unreachable", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, false, "database unavailable", nil, nil)
			return
		}

		utils.ResponseSuccess(w, "OK", nil)
	}
}
