package adaptor

import (
	"tourism-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Package   *PackageHandler
	Booking   *BookingHandler
	Review    *ReviewHandler
	Analytics *AnalyticsHandler
	Support   *SupportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Package:   NewPackageHandler(service.Package, log),
		Booking:   NewBookingHandler(service.Booking, log),
		Review:    NewReviewHandler(service.Review, log),
		Analytics: NewAnalyticsHandler(service.Analytics, log),
		Support:   NewSupportHandler(service.Enquiry, service.Issue, service.Page, service.Newsletter, log),
	}
}
