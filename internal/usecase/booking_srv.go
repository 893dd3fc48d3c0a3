package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// User endpoints
	CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBooking(ctx context.Context, principal utils.Principal, bookingID string) (*response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	AdminCancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository // grouping semua booking-related repos
	log  *zap.Logger
	now  func() time.Time
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
		now:  time.Now,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if err := validate(req); err != nil {
		s.log.Warn("Create booking validation failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	fromDate, toDate, err := checkBookingDates(req.FromDate, req.ToDate, now)
	if err != nil {
		return nil, err
	}

	packageID, err := parseID("package_id", req.PackageID)
	if err != nil {
		return nil, err
	}

	// Validate package exists
	pkg, err := s.repo.Package.FindByID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, utils.Wrap(utils.ErrNotFound, "Package not found")
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, utils.Wrap(utils.ErrUnauthorized, "User not found")
	}

	people := req.NumberOfPeople
	if people < 1 {
		people = 1
	}

	booking := &entity.Booking{
		Base:           entity.NewBase(now),
		UserID:         user.ID,
		UserEmail:      user.Email,
		PackageID:      pkg.ID,
		FromDate:       fromDate,
		ToDate:         toDate,
		Comment:        strings.TrimSpace(req.Comment),
		NumberOfPeople: people,
		Status:         entity.BookingStatusPending,
	}

	// lock paket + cek overlap + insert dalam satu transaksi
	if err := s.repo.Booking.CreateIfAvailable(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("package_id", pkg.ID.String()),
	)

	resp := response.BookingToResponse(booking, pkg.Name, pkg.Price)
	return &resp, nil
}

// CancelBooking - user hanya bisa membatalkan booking miliknya yang masih pending
func (s *bookingService) CancelBooking(ctx context.Context, userID uuid.UUID, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID("id", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil || booking.UserID != userID {
		return nil, utils.Wrap(utils.ErrNotFound, "Booking not found or unauthorized")
	}

	switch booking.Status {
	case entity.BookingStatusConfirmed:
		return nil, utils.Wrap(utils.ErrInvalidState, "Cannot cancel confirmed booking")
	case entity.BookingStatusCancelled:
		return nil, utils.Wrap(utils.ErrInvalidState, "Booking already cancelled")
	}

	by := entity.CancelledByUser
	return s.transition(ctx, booking,
		[]entity.BookingStatus{entity.BookingStatusPending},
		entity.BookingStatusCancelled, &by,
	)
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	data := response.MapSlice(bookings, func(b *entity.BookingDetail) response.BookingResponse {
		return response.BookingDetailToResponse(b)
	})

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

// GetBooking - admin bisa lihat semua, user hanya miliknya
func (s *bookingService) GetBooking(ctx context.Context, principal utils.Principal, bookingID string) (*response.BookingResponse, error) {
	id, err := parseID("id", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, utils.Wrap(utils.ErrNotFound, "Booking not found")
	}
	if principal.Role != string(entity.RoleAdmin) && booking.UserID != principal.ID {
		return nil, utils.Wrap(utils.ErrNotFound, "Booking not found or unauthorized")
	}

	resp := response.BookingDetailToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, req *request.BookingListRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	var status *entity.BookingStatus
	if req.Status != nil {
		st := entity.BookingStatus(*req.Status)
		if !st.Valid() {
			return nil, utils.NewFieldError("status", "Must be one of: 0, 1, 2")
		}
		status = &st
	}

	bookings, err := s.repo.Booking.FindAll(ctx, status, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.CountAll(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	data := response.MapSlice(bookings, func(b *entity.BookingDetail) response.BookingResponse {
		return response.BookingDetailToResponse(b)
	})

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

// ConfirmBooking - hanya pending -> confirmed
func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findForAdmin(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != entity.BookingStatusPending {
		return nil, utils.Wrap(utils.ErrInvalidState,
			fmt.Sprintf("Only pending bookings can be confirmed (current status: %s)", booking.Status))
	}

	return s.transition(ctx, booking,
		[]entity.BookingStatus{entity.BookingStatusPending},
		entity.BookingStatusConfirmed, nil,
	)
}

// AdminCancelBooking - pending atau confirmed -> cancelled, cancelled_by = admin
func (s *bookingService) AdminCancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.findForAdmin(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status == entity.BookingStatusCancelled {
		return nil, utils.Wrap(utils.ErrInvalidState, "Booking already cancelled")
	}

	by := entity.CancelledByAdmin
	return s.transition(ctx, booking,
		[]entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed},
		entity.BookingStatusCancelled, &by,
	)
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findForAdmin(ctx context.Context, bookingID string) (*entity.BookingDetail, error) {
	id, err := parseID("id", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find booking: %w", err)
	}
	if booking == nil {
		return nil, utils.Wrap(utils.ErrNotFound, "Booking not found")
	}
	return booking, nil
}

// transition menjalankan UPDATE bersyarat; false berarti status sudah diubah request lain
func (s *bookingService) transition(
	ctx context.Context,
	booking *entity.BookingDetail,
	from []entity.BookingStatus,
	to entity.BookingStatus,
	by *entity.CancelledBy,
) (*response.BookingResponse, error) {
	ok, err := s.repo.Booking.TransitionStatus(ctx, booking.ID, from, to, by)
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}
	if !ok {
		s.log.Warn("Booking status changed concurrently", zap.String("booking_id", booking.ID.String()))
		return nil, utils.Wrap(utils.ErrInvalidState, "Booking status has changed, please refresh")
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("from", booking.Status.String()),
		zap.String("to", to.String()),
	)

	booking.Status = to
	booking.CancelledBy = by
	booking.UpdatedAt = s.now()

	resp := response.BookingDetailToResponse(booking)
	return &resp, nil
}

// checkBookingDates: from >= hari ini, to > from (tanggal kalender di zona waktu now)
func checkBookingDates(from, to string, now time.Time) (time.Time, time.Time, error) {
	loc := now.Location()

	fromDate, err := utils.ParseDate(from, loc)
	if err != nil {
		return time.Time{}, time.Time{}, utils.NewFieldError("from_date", "Must be a date in YYYY-MM-DD format")
	}
	toDate, err := utils.ParseDate(to, loc)
	if err != nil {
		return time.Time{}, time.Time{}, utils.NewFieldError("to_date", "Must be a date in YYYY-MM-DD format")
	}

	if fromDate.Before(utils.StartOfDay(now)) {
		return time.Time{}, time.Time{}, utils.NewFieldError("from_date", "From date cannot be in the past")
	}
	if !toDate.After(fromDate) {
		return time.Time{}, time.Time{}, utils.NewFieldError("to_date", "To date must be after from date")
	}

	return fromDate, toDate, nil
}
