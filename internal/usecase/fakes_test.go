package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
)

// memStore - repository in-memory untuk test usecase
type memStore struct {
	mu          sync.Mutex
	users       map[uuid.UUID]*entity.User
	admins      map[uuid.UUID]*entity.Admin
	sessions    map[uuid.UUID]*entity.Session
	packages    map[uuid.UUID]*entity.TourPackage
	bookings    map[uuid.UUID]*entity.Booking
	reviews     map[uuid.UUID]*entity.Review
	subscribers map[uuid.UUID]*entity.NewsletterSubscriber

	lastFilter repository.PackageFilter
	lastOffset int
}

func newMemStore() *memStore {
	return &memStore{
		users:       map[uuid.UUID]*entity.User{},
		admins:      map[uuid.UUID]*entity.Admin{},
		sessions:    map[uuid.UUID]*entity.Session{},
		packages:    map[uuid.UUID]*entity.TourPackage{},
		bookings:    map[uuid.UUID]*entity.Booking{},
		reviews:     map[uuid.UUID]*entity.Review{},
		subscribers: map[uuid.UUID]*entity.NewsletterSubscriber{},
	}
}

func (m *memStore) repository() *repository.Repository {
	return &repository.Repository{
		User:       &fakeUserRepo{m},
		Admin:      &fakeAdminRepo{m},
		Session:    &fakeSessionRepo{m},
		Package:    &fakePackageRepo{m},
		Booking:    &fakeBookingRepo{m},
		Review:     &fakeReviewRepo{m},
		Newsletter: &fakeNewsletterRepo{m},
	}
}

func (m *memStore) addPackage(name string, price float64) *entity.TourPackage {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := &entity.TourPackage{
		Base:     entity.NewBase(time.Now()),
		Name:     name,
		Type:     "Adventure",
		Location: "Bali",
		Price:    price,
		Details:  "A long enough description",
	}
	m.packages[p.ID] = p
	return p
}

func (m *memStore) addUser(email string) *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	u := &entity.User{
		Base:         entity.NewBase(time.Now()),
		FullName:     "Test User",
		MobileNumber: "0812345678",
		Email:        email,
	}
	m.users[u.ID] = u
	return u
}

func (m *memStore) addBooking(userID, packageID uuid.UUID, status entity.BookingStatus) *entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	b := &entity.Booking{
		Base:           entity.NewBase(now),
		UserID:         userID,
		PackageID:      packageID,
		FromDate:       now.AddDate(0, 0, 1),
		ToDate:         now.AddDate(0, 0, 3),
		NumberOfPeople: 1,
		Status:         status,
	}
	m.bookings[b.ID] = b
	return b
}

func (m *memStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

func (m *memStore) detail(b *entity.Booking) *entity.BookingDetail {
	cp := *b
	d := &entity.BookingDetail{Booking: cp}
	if p, ok := m.packages[b.PackageID]; ok {
		d.PackageName = p.Name
		d.PackagePrice = p.Price
	}
	return d
}

// ==================== USER ====================

type fakeUserRepo struct{ m *memStore }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if strings.EqualFold(u.Email, user.Email) {
			return utils.Wrap(utils.ErrConflict, "Email already registered")
		}
	}
	cp := *user
	r.m.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if u, ok := r.m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmailAndMobile(ctx context.Context, email, mobile string) (*entity.User, error) {
	u, err := r.FindByEmail(ctx, email)
	if u == nil || err != nil || u.MobileNumber != mobile {
		return nil, err
	}
	return u, nil
}

func (r *fakeUserRepo) FindAll(_ context.Context, search string, limit, offset int) ([]*entity.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.User
	for _, u := range r.m.users {
		if search == "" || strings.Contains(strings.ToLower(u.FullName+u.Email), strings.ToLower(search)) {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return paginate(out, limit, offset), nil
}

func (r *fakeUserRepo) CountAll(ctx context.Context, search string) (int64, error) {
	all, _ := r.FindAll(ctx, search, 1<<30, 0)
	return int64(len(all)), nil
}

func (r *fakeUserRepo) UpdateProfile(_ context.Context, user *entity.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[user.ID]
	if !ok {
		return utils.Wrap(utils.ErrNotFound, "User not found")
	}
	u.FullName, u.MobileNumber, u.UpdatedAt = user.FullName, user.MobileNumber, user.UpdatedAt
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	u, ok := r.m.users[id]
	if !ok {
		return utils.Wrap(utils.ErrNotFound, "User not found")
	}
	u.PasswordHash = hash
	return nil
}

// ==================== ADMIN ====================

type fakeAdminRepo struct{ m *memStore }

func (r *fakeAdminRepo) Create(_ context.Context, admin *entity.Admin) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	cp := *admin
	r.m.admins[admin.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Admin, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if a, ok := r.m.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAdminRepo) FindByUsername(_ context.Context, username string) (*entity.Admin, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, a := range r.m.admins {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Count(_ context.Context) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return int64(len(r.m.admins)), nil
}

func (r *fakeAdminRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	a, ok := r.m.admins[id]
	if !ok {
		return utils.Wrap(utils.ErrNotFound, "Admin not found")
	}
	a.PasswordHash = hash
	return nil
}

// ==================== SESSION ====================

type fakeSessionRepo struct{ m *memStore }

func (r *fakeSessionRepo) Create(_ context.Context, s *entity.Session) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	cp := *s
	r.m.sessions[s.Token] = &cp
	return nil
}

func (r *fakeSessionRepo) FindValidSession(_ context.Context, token uuid.UUID) (*entity.Session, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.sessions[token]
	if !ok || s.RevokedAt != nil || time.Now().After(s.ExpiresAt) {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) Revoke(_ context.Context, token uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if s, ok := r.m.sessions[token]; ok {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

func (r *fakeSessionRepo) RevokeAllForSubject(_ context.Context, subjectID uuid.UUID, role entity.Role) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	now := time.Now()
	for _, s := range r.m.sessions {
		if s.SubjectID == subjectID && s.Role == role && s.RevokedAt == nil {
			s.RevokedAt = &now
		}
	}
	return nil
}

func (r *fakeSessionRepo) CleanExpiredSessions(_ context.Context) (int64, error) {
	return 0, nil
}

// ==================== PACKAGE ====================

type fakePackageRepo struct{ m *memStore }

func (r *fakePackageRepo) Create(_ context.Context, p *entity.TourPackage) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	cp := *p
	r.m.packages[p.ID] = &cp
	return nil
}

func (r *fakePackageRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.TourPackage, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if p, ok := r.m.packages[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePackageRepo) FindWithStats(ctx context.Context, id uuid.UUID) (*entity.PackageWithStats, error) {
	p, err := r.FindByID(ctx, id)
	if p == nil || err != nil {
		return nil, err
	}
	return &entity.PackageWithStats{TourPackage: *p}, nil
}

func (r *fakePackageRepo) Update(_ context.Context, p *entity.TourPackage) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.packages[p.ID]; !ok {
		return utils.Wrap(utils.ErrNotFound, "Package not found")
	}
	cp := *p
	r.m.packages[p.ID] = &cp
	return nil
}

func (r *fakePackageRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.packages[id]; !ok {
		return utils.Wrap(utils.ErrNotFound, "Package not found")
	}
	delete(r.m.packages, id)
	return nil
}

func (r *fakePackageRepo) List(_ context.Context, f repository.PackageFilter, limit, offset int) ([]*entity.PackageWithStats, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.lastFilter = f
	r.m.lastOffset = offset
	var out []*entity.PackageWithStats
	for _, p := range r.m.packages {
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, &entity.PackageWithStats{TourPackage: *p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return paginate(out, limit, offset), nil
}

func (r *fakePackageRepo) Count(ctx context.Context, f repository.PackageFilter) (int64, error) {
	all, _ := r.List(ctx, f, 1<<30, 0)
	return int64(len(all)), nil
}

func (r *fakePackageRepo) IncrementViewCount(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.packages[id]
	if !ok {
		return utils.Wrap(utils.ErrNotFound, "Package not found")
	}
	p.ViewCount++
	return nil
}

func (r *fakePackageRepo) GetFilterOptions(_ context.Context) (*repository.FilterOptions, error) {
	return &repository.FilterOptions{Types: []string{}, Locations: []string{}, MaxPrice: 10000}, nil
}

// ==================== BOOKING ====================

type fakeBookingRepo struct{ m *memStore }

func (r *fakeBookingRepo) CreateIfAvailable(_ context.Context, b *entity.Booking) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.packages[b.PackageID]
	if !ok {
		return utils.Wrap(utils.ErrNotFound, "Package not found")
	}
	for _, other := range r.m.bookings {
		if other.UserID == b.UserID && other.PackageID == b.PackageID &&
			other.Status != entity.BookingStatusCancelled &&
			other.FromDate.Before(b.ToDate) && other.ToDate.After(b.FromDate) {
			return utils.Wrap(utils.ErrConflict, "You already have a booking for these dates")
		}
	}
	if b.TotalAmount == nil {
		total := p.Price * float64(b.NumberOfPeople)
		b.TotalAmount = &total
	}
	cp := *b
	r.m.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.BookingDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if b, ok := r.m.bookings[id]; ok {
		return r.m.detail(b), nil
	}
	return nil, nil
}

func (r *fakeBookingRepo) FindByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.BookingDetail
	for _, b := range r.m.bookings {
		if b.UserID == userID {
			out = append(out, r.m.detail(b))
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	all, _ := r.FindByUserID(ctx, userID, 1<<30, 0)
	return int64(len(all)), nil
}

func (r *fakeBookingRepo) FindAll(_ context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.BookingDetail, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.BookingDetail
	for _, b := range r.m.bookings {
		if status == nil || b.Status == *status {
			out = append(out, r.m.detail(b))
		}
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeBookingRepo) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	all, _ := r.FindAll(ctx, status, 1<<30, 0)
	return int64(len(all)), nil
}

func (r *fakeBookingRepo) TransitionStatus(_ context.Context, id uuid.UUID, from []entity.BookingStatus, to entity.BookingStatus, by *entity.CancelledBy) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	b, ok := r.m.bookings[id]
	if !ok {
		return false, nil
	}
	for _, st := range from {
		if b.Status == st {
			b.Status = to
			b.CancelledBy = by
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) HasConfirmedBooking(_ context.Context, userID, packageID uuid.UUID) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, b := range r.m.bookings {
		if b.UserID == userID && b.PackageID == packageID && b.Status == entity.BookingStatusConfirmed {
			return true, nil
		}
	}
	return false, nil
}

// ==================== REVIEW ====================

type fakeReviewRepo struct{ m *memStore }

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, other := range r.m.reviews {
		if other.UserID == review.UserID && other.PackageID == review.PackageID {
			return utils.Wrap(utils.ErrConflict, "You have already reviewed this package")
		}
	}
	cp := *review
	r.m.reviews[review.ID] = &cp
	return nil
}

func (r *fakeReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if rv, ok := r.m.reviews[id]; ok {
		cp := *rv
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeReviewRepo) FindByUserAndPackage(_ context.Context, userID, packageID uuid.UUID) (*entity.Review, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, rv := range r.m.reviews {
		if rv.UserID == userID && rv.PackageID == packageID {
			cp := *rv
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeReviewRepo) list(match func(*entity.Review) bool) []*entity.ReviewDetail {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.ReviewDetail
	for _, rv := range r.m.reviews {
		if match(rv) {
			out = append(out, &entity.ReviewDetail{Review: *rv})
		}
	}
	return out
}

func (r *fakeReviewRepo) FindApprovedByPackageID(_ context.Context, packageID uuid.UUID) ([]*entity.ReviewDetail, error) {
	return r.list(func(rv *entity.Review) bool { return rv.PackageID == packageID && rv.IsApproved }), nil
}

func (r *fakeReviewRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.ReviewDetail, error) {
	return r.list(func(rv *entity.Review) bool { return rv.UserID == userID }), nil
}

func (r *fakeReviewRepo) FindAll(_ context.Context, approved *bool, limit, offset int) ([]*entity.ReviewDetail, error) {
	out := r.list(func(rv *entity.Review) bool { return approved == nil || rv.IsApproved == *approved })
	return paginate(out, limit, offset), nil
}

func (r *fakeReviewRepo) CountAll(ctx context.Context, approved *bool) (int64, error) {
	all, _ := r.FindAll(ctx, approved, 1<<30, 0)
	return int64(len(all)), nil
}

func (r *fakeReviewRepo) Approve(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	rv, ok := r.m.reviews[id]
	if !ok {
		return utils.Wrap(utils.ErrNotFound, "Review not found")
	}
	rv.IsApproved = true
	return nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.reviews[id]; !ok {
		return utils.Wrap(utils.ErrNotFound, "Review not found")
	}
	delete(r.m.reviews, id)
	return nil
}

func (r *fakeReviewRepo) GetPackageReviewStats(ctx context.Context, packageID uuid.UUID) (float64, int64, error) {
	approved, _ := r.FindApprovedByPackageID(ctx, packageID)
	if len(approved) == 0 {
		return 0, 0, nil
	}
	var sum int
	for _, rv := range approved {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(approved)), int64(len(approved)), nil
}

// ==================== NEWSLETTER ====================

type fakeNewsletterRepo struct{ m *memStore }

func (r *fakeNewsletterRepo) Create(_ context.Context, s *entity.NewsletterSubscriber) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	cp := *s
	r.m.subscribers[s.ID] = &cp
	return nil
}

func (r *fakeNewsletterRepo) FindByEmail(_ context.Context, email string) (*entity.NewsletterSubscriber, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, s := range r.m.subscribers {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeNewsletterRepo) SetActive(_ context.Context, id uuid.UUID, active bool) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	s, ok := r.m.subscribers[id]
	if !ok {
		return utils.Wrap(utils.ErrNotFound, "Subscriber not found")
	}
	s.IsActive = active
	return nil
}

func (r *fakeNewsletterRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.NewsletterSubscriber, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var out []*entity.NewsletterSubscriber
	for _, s := range r.m.subscribers {
		out = append(out, s)
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeNewsletterRepo) CountAll(_ context.Context) (int64, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	return int64(len(r.m.subscribers)), nil
}

// ==================== ANALYTICS ====================

type fakeAnalyticsRepo struct {
	facts         []entity.BookingFact
	registrations []time.Time
	usersBefore   int64
	popular       []entity.PackagePopularity
	counts        entity.DashboardCounts
	revenue       float64

	gotFrom, gotTo time.Time
}

func (r *fakeAnalyticsRepo) BookingFacts(_ context.Context, from, to time.Time, status *entity.BookingStatus) ([]entity.BookingFact, error) {
	r.gotFrom, r.gotTo = from, to
	var out []entity.BookingFact
	for _, f := range r.facts {
		if f.CreatedAt.Before(from) || f.CreatedAt.After(to) {
			continue
		}
		if status != nil && f.Status != *status {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

func (r *fakeAnalyticsRepo) UserRegistrations(_ context.Context, from, to time.Time) ([]time.Time, error) {
	var out []time.Time
	for _, t := range r.registrations {
		if !t.Before(from) && !t.After(to) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeAnalyticsRepo) CountUsersBefore(_ context.Context, _ time.Time) (int64, error) {
	return r.usersBefore, nil
}

func (r *fakeAnalyticsRepo) PopularPackages(_ context.Context, _, _ time.Time, limit int) ([]entity.PackagePopularity, error) {
	if len(r.popular) > limit {
		return r.popular[:limit], nil
	}
	return r.popular, nil
}

func (r *fakeAnalyticsRepo) DashboardCounts(_ context.Context) (*entity.DashboardCounts, error) {
	c := r.counts
	return &c, nil
}

func (r *fakeAnalyticsRepo) ConfirmedRevenue(_ context.Context) (float64, error) {
	return r.revenue, nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
