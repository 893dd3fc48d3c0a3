package usecase

import (
	"context"
	"errors"
	"testing"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/dto/request"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func newTestTokens() *utils.JWTManager {
	return utils.NewJWTManager(utils.JWTConfig{Secret: "test-secret", ExpiryHours: 1}, "tourism-booking-test")
}

func registerRequest(email, password string) *request.RegisterRequest {
	return &request.RegisterRequest{
		FullName:     "Ayu Lestari",
		MobileNumber: "0812345678",
		Email:        email,
		Password:     password,
	}
}

func sessionToken(t *testing.T, tokens *utils.JWTManager, signed string) uuid.UUID {
	t.Helper()
	claims, err := tokens.Parse(signed)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	id, err := uuid.Parse(claims.ID)
	if err != nil {
		t.Fatalf("jti is not a uuid: %v", err)
	}
	return id
}

func TestAuthService_RegisterLoginThenBook(t *testing.T) {
	store := newMemStore()
	repo := store.repository()
	tokens := newTestTokens()
	auth := NewAuthService(repo, tokens, zap.NewNop())
	ctx := context.Background()

	reg, err := auth.Register(ctx, registerRequest("a@x.com", "secret1"), request.SessionMeta{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Role != entity.RoleUser || reg.Token == "" {
		t.Fatalf("unexpected register response %+v", reg)
	}

	login, err := auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"}, request.SessionMeta{UserAgent: "test"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	session, _ := repo.Session.FindValidSession(ctx, sessionToken(t, tokens, login.Token))
	if session == nil || session.Role != entity.RoleUser {
		t.Fatalf("expected live user session, got %+v", session)
	}

	userID := uuid.MustParse(login.ID)
	pkg := store.addPackage("Bali Adventure", 150)
	bookings := newTestBookingService(store)

	// kemarin ditolak
	_, err = bookings.CreateBooking(ctx, userID, &request.CreateBookingRequest{PackageID: pkg.ID.String(), FromDate: day(-1), ToDate: day(2)})
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("past from date: expected validation error, got %v", err)
	}

	// from == to ditolak
	_, err = bookings.CreateBooking(ctx, userID, &request.CreateBookingRequest{PackageID: pkg.ID.String(), FromDate: day(0), ToDate: day(0)})
	if !errors.Is(err, utils.ErrValidation) {
		t.Fatalf("same day: expected validation error, got %v", err)
	}

	resp, err := bookings.CreateBooking(ctx, userID, &request.CreateBookingRequest{PackageID: pkg.ID.String(), FromDate: day(0), ToDate: day(3)})
	if err != nil {
		t.Fatalf("valid booking: %v", err)
	}
	if resp.Status != int(entity.BookingStatusPending) {
		t.Fatalf("expected pending booking, got %d", resp.Status)
	}
	if store.bookingCount() != 1 {
		t.Fatalf("expected exactly one stored booking, got %d", store.bookingCount())
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store.repository(), newTestTokens(), zap.NewNop())
	ctx := context.Background()

	if _, err := auth.Register(ctx, registerRequest("a@x.com", "secret1"), request.SessionMeta{}); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := auth.Register(ctx, registerRequest("A@X.com", "secret2"), request.SessionMeta{})
	if !errors.Is(err, utils.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	auth := NewAuthService(newMemStore().repository(), newTestTokens(), zap.NewNop())

	req := registerRequest("not-an-email", "123")
	req.MobileNumber = "12ab"

	_, err := auth.Register(context.Background(), req, request.SessionMeta{})
	var vErr *utils.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	for _, field := range []string{"Email", "Password", "MobileNumber"} {
		if vErr.Fields[field] == "" {
			t.Errorf("expected error for %s, got %v", field, vErr.Fields)
		}
	}
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store.repository(), newTestTokens(), zap.NewNop())
	ctx := context.Background()

	if _, err := auth.Register(ctx, registerRequest("a@x.com", "secret1"), request.SessionMeta{}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPass := auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "nope"}, request.SessionMeta{})
	_, unknown := auth.Login(ctx, &request.LoginRequest{Email: "b@x.com", Password: "secret1"}, request.SessionMeta{})

	for _, err := range []error{wrongPass, unknown} {
		if !errors.Is(err, utils.ErrUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	}
	if wrongPass.Error() != unknown.Error() {
		t.Errorf("messages must not reveal which part failed: %q vs %q", wrongPass, unknown)
	}
}

func TestAuthService_Logout_RevokesSession(t *testing.T) {
	store := newMemStore()
	repo := store.repository()
	tokens := newTestTokens()
	auth := NewAuthService(repo, tokens, zap.NewNop())
	ctx := context.Background()

	reg, err := auth.Register(ctx, registerRequest("a@x.com", "secret1"), request.SessionMeta{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	jti := sessionToken(t, tokens, reg.Token)

	if err := auth.Logout(ctx, jti.String()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if s, _ := repo.Session.FindValidSession(ctx, jti); s != nil {
		t.Fatal("session must be revoked after logout")
	}

	if err := auth.Logout(ctx, "garbage"); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for malformed token, got %v", err)
	}
}

func TestAuthService_ResetPassword(t *testing.T) {
	store := newMemStore()
	repo := store.repository()
	tokens := newTestTokens()
	auth := NewAuthService(repo, tokens, zap.NewNop())
	ctx := context.Background()

	reg, err := auth.Register(ctx, registerRequest("a@x.com", "secret1"), request.SessionMeta{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = auth.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email: "a@x.com", MobileNumber: "0899999999", NewPassword: "newpass", ConfirmPassword: "newpass",
	})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("wrong mobile: expected not found, got %v", err)
	}

	err = auth.ResetPassword(ctx, &request.ResetPasswordRequest{
		Email: "a@x.com", MobileNumber: "0812345678", NewPassword: "newpass", ConfirmPassword: "newpass",
	})
	if err != nil {
		t.Fatalf("reset: %v", err)
	}

	if s, _ := repo.Session.FindValidSession(ctx, sessionToken(t, tokens, reg.Token)); s != nil {
		t.Error("existing sessions must be revoked after reset")
	}
	if _, err := auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "secret1"}, request.SessionMeta{}); !errors.Is(err, utils.ErrUnauthorized) {
		t.Errorf("old password must stop working, got %v", err)
	}
	if _, err := auth.Login(ctx, &request.LoginRequest{Email: "a@x.com", Password: "newpass"}, request.SessionMeta{}); err != nil {
		t.Errorf("new password login: %v", err)
	}
}

func TestAuthService_ChangeUserPassword_WrongCurrent(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store.repository(), newTestTokens(), zap.NewNop())
	ctx := context.Background()

	reg, err := auth.Register(ctx, registerRequest("a@x.com", "secret1"), request.SessionMeta{})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	err = auth.ChangeUserPassword(ctx, uuid.MustParse(reg.ID), &request.ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "another", ConfirmPassword: "another",
	})
	var vErr *utils.ValidationError
	if !errors.As(err, &vErr) || vErr.Fields["current_password"] == "" {
		t.Fatalf("expected current_password field error, got %v", err)
	}
}

func TestAuthService_EnsureAdminAndLogin(t *testing.T) {
	store := newMemStore()
	auth := NewAuthService(store.repository(), newTestTokens(), zap.NewNop())
	ctx := context.Background()
	cfg := utils.AdminConfig{Username: "admin", Password: "admin123", Email: "admin@x.com"}

	if err := auth.EnsureAdmin(ctx, cfg); err != nil {
		t.Fatalf("ensure admin: %v", err)
	}
	// kedua kali tidak menambah admin
	if err := auth.EnsureAdmin(ctx, cfg); err != nil {
		t.Fatalf("ensure admin twice: %v", err)
	}
	if len(store.admins) != 1 {
		t.Fatalf("expected one admin, got %d", len(store.admins))
	}

	resp, err := auth.AdminLogin(ctx, &request.AdminLoginRequest{Username: "admin", Password: "admin123"}, request.SessionMeta{})
	if err != nil {
		t.Fatalf("admin login: %v", err)
	}
	if resp.Role != entity.RoleAdmin || resp.Username != "admin" {
		t.Fatalf("unexpected admin response %+v", resp)
	}

	_, err = auth.AdminLogin(ctx, &request.AdminLoginRequest{Username: "admin", Password: "wrong"}, request.SessionMeta{})
	if !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
