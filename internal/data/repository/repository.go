package repository

import (
	"tourism-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Admin      AdminRepository
	Session    SessionRepository
	Package    PackageRepository
	Booking    BookingRepository
	Review     ReviewRepository
	Enquiry    EnquiryRepository
	Issue      IssueRepository
	Page       PageRepository
	Newsletter NewsletterRepository
	Analytics  AnalyticsRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Admin:      NewAdminRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Package:    NewPackageRepository(db, log),
		Booking:    NewBookingRepository(db, log),
		Review:     NewReviewRepository(db, log),
		Enquiry:    NewEnquiryRepository(db, log),
		Issue:      NewIssueRepository(db, log),
		Page:       NewPageRepository(db, log),
		Newsletter: NewNewsletterRepository(db, log),
		Analytics:  NewAnalyticsRepository(db, log),
	}
}
