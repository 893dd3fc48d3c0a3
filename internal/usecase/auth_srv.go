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

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, meta request.SessionMeta) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, meta request.SessionMeta) (*response.AuthResponse, error)
	AdminLogin(ctx context.Context, req *request.AdminLoginRequest, meta request.SessionMeta) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
	ChangeUserPassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error
	ChangeAdminPassword(ctx context.Context, adminID uuid.UUID, req *request.ChangePasswordRequest) error
	EnsureAdmin(ctx context.Context, cfg utils.AdminConfig) error
}

type authService struct {
	repo   *repository.Repository // grouping userRepo, adminRepo & sessionRepo
	tokens *utils.JWTManager
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(
	repo *repository.Repository,
	tokens *utils.JWTManager,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
		now:    time.Now,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, meta request.SessionMeta) (*response.AuthResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, utils.NewValidationError(errs)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// 2. Cek email sudah terdaftar
	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return nil, utils.Wrap(utils.ErrConflict, "Email already registered")
	}

	// 3. Hash password
	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 4. Simpan user (unique constraint tetap jadi penjaga terakhir)
	user := &entity.User{
		Base:         entity.NewBase(s.now()),
		FullName:     strings.TrimSpace(req.FullName),
		MobileNumber: req.MobileNumber,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, err
	}

	// 5. Auto login setelah register
	token, expiresAt, err := s.createSession(ctx, user.ID, entity.RoleUser, meta)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered", zap.String("user_id", user.ID.String()), zap.String("email", user.Email))

	resp := response.UserAuthResponse(user, token, expiresAt)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta request.SessionMeta) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	// pesan sama untuk email tidak ada / password salah
	if user == nil {
		s.log.Warn("Login for unknown email")
		return nil, utils.Wrap(utils.ErrUnauthorized, "Invalid email or password")
	}
	if user.PasswordHash == "" {
		return nil, utils.Wrap(utils.ErrUnauthorized, "Please reset your password")
	}
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, utils.Wrap(utils.ErrUnauthorized, "Invalid email or password")
	}

	token, expiresAt, err := s.createSession(ctx, user.ID, entity.RoleUser, meta)
	if err != nil {
		return nil, err
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID.String()))

	resp := response.UserAuthResponse(user, token, expiresAt)
	return &resp, nil
}

func (s *authService) AdminLogin(ctx context.Context, req *request.AdminLoginRequest, meta request.SessionMeta) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, utils.NewValidationError(errs)
	}

	admin, err := s.repo.Admin.FindByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	if admin == nil {
		s.log.Warn("Admin login for unknown username")
		return nil, utils.Wrap(utils.ErrUnauthorized, "Invalid username or password")
	}
	if admin.PasswordHash == "" {
		return nil, utils.Wrap(utils.ErrUnauthorized, "Please reset your password")
	}
	if !utils.CheckPasswordHash(req.Password, admin.PasswordHash) {
		s.log.Warn("Invalid admin password", zap.String("admin_id", admin.ID.String()))
		return nil, utils.Wrap(utils.ErrUnauthorized, "Invalid username or password")
	}

	token, expiresAt, err := s.createSession(ctx, admin.ID, entity.RoleAdmin, meta)
	if err != nil {
		return nil, err
	}

	s.log.Info("Admin logged in", zap.String("admin_id", admin.ID.String()))

	resp := response.AdminAuthResponse(admin, token, expiresAt)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	tokenUUID, err := uuid.Parse(token)
	if err != nil {
		return utils.Wrap(utils.ErrUnauthorized, "Invalid session token")
	}

	if err := s.repo.Session.Revoke(ctx, tokenUUID); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err))
		return fmt.Errorf("logout: %w", err)
	}

	s.log.Info("Session revoked", zap.String("session", tokenUUID.String()))
	return nil
}

// ResetPassword - cocokkan email + nomor hp, tanpa OTP
func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewValidationError(errs)
	}

	user, err := s.repo.User.FindByEmailAndMobile(ctx, strings.TrimSpace(req.Email), req.MobileNumber)
	if err != nil {
		return fmt.Errorf("find user for reset: %w", err)
	}
	if user == nil {
		return utils.Wrap(utils.ErrNotFound, "Invalid email or mobile number")
	}

	if err := s.setUserPassword(ctx, user.ID, req.NewPassword); err != nil {
		return err
	}

	s.log.Info("User password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ChangeUserPassword(ctx context.Context, userID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewValidationError(errs)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return utils.Wrap(utils.ErrNotFound, "User not found")
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return utils.NewFieldError("current_password", "Current password is incorrect")
	}

	if err := s.setUserPassword(ctx, user.ID, req.NewPassword); err != nil {
		return err
	}

	s.log.Info("User password changed", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) ChangeAdminPassword(ctx context.Context, adminID uuid.UUID, req *request.ChangePasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return utils.NewValidationError(errs)
	}

	admin, err := s.repo.Admin.FindByID(ctx, adminID)
	if err != nil {
		return fmt.Errorf("find admin: %w", err)
	}
	if admin == nil {
		return utils.Wrap(utils.ErrNotFound, "Admin not found")
	}
	if !utils.CheckPasswordHash(req.CurrentPassword, admin.PasswordHash) {
		return utils.NewFieldError("current_password", "Current password is incorrect")
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.Admin.UpdatePassword(ctx, admin.ID, hashed); err != nil {
		return err
	}
	if err := s.repo.Session.RevokeAllForSubject(ctx, admin.ID, entity.RoleAdmin); err != nil {
		s.log.Warn("Failed to revoke admin sessions after password change", zap.Error(err))
	}

	s.log.Info("Admin password changed", zap.String("admin_id", admin.ID.String()))
	return nil
}

// EnsureAdmin membuat admin pertama dari config kalau tabel admins masih kosong
func (s *authService) EnsureAdmin(ctx context.Context, cfg utils.AdminConfig) error {
	if cfg.Username == "" || cfg.Password == "" {
		return nil
	}

	count, err := s.repo.Admin.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &entity.Admin{
		Base:         entity.NewBase(s.now()),
		Username:     cfg.Username,
		Email:        cfg.Email,
		FullName:     "Administrator",
		PasswordHash: hashed,
	}
	if err := s.repo.Admin.Create(ctx, admin); err != nil {
		return err
	}

	s.log.Info("Bootstrap admin created", zap.String("username", admin.Username))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) setUserPassword(ctx context.Context, userID uuid.UUID, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.repo.User.UpdatePassword(ctx, userID, hashed); err != nil {
		return err
	}
	// login lama tidak berlaku lagi
	if err := s.repo.Session.RevokeAllForSubject(ctx, userID, entity.RoleUser); err != nil {
		s.log.Warn("Failed to revoke sessions after password change", zap.Error(err), zap.String("user_id", userID.String()))
	}
	return nil
}

func (s *authService) createSession(ctx context.Context, subjectID uuid.UUID, role entity.Role, meta request.SessionMeta) (string, time.Time, error) {
	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.NewBaseSimple(now),
		SubjectID:  subjectID,
		Role:       role,
		Token:      uuid.New(),
		UserAgent:  optionalString(meta.UserAgent),
		IPAddress:  optionalString(meta.IPAddress),
		ExpiresAt:  now.Add(s.tokens.TTL()),
	}

	signed, expiresAt, err := s.tokens.Generate(subjectID, string(role), session.Token, now)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err))
		return "", time.Time{}, err
	}
	session.ExpiresAt = expiresAt

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
