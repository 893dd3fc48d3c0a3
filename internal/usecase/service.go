package usecase

import (
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Package    PackageService
	Booking    BookingService
	Review     ReviewService
	Analytics  AnalyticsService
	Enquiry    EnquiryService
	Issue      IssueService
	Page       PageService
	Newsletter NewsletterService
}

func NewService(repo *repository.Repository, tokens *utils.JWTManager, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo, tokens, log),
		User:       NewUserService(repo.User, log),
		Package:    NewPackageService(repo, config.Catalog, log),
		Booking:    NewBookingService(repo, log),
		Review:     NewReviewService(repo, log),
		Analytics:  NewAnalyticsService(repo.Analytics, log),
		Enquiry:    NewEnquiryService(repo.Enquiry, log),
		Issue:      NewIssueService(repo.Issue, log),
		Page:       NewPageService(repo.Page, log),
		Newsletter: NewNewsletterService(repo.Newsletter, log),
	}
}
