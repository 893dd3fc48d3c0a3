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

type NewsletterService interface {
	Subscribe(ctx context.Context, req *request.NewsletterRequest) (*response.SubscriberResponse, error)
	Unsubscribe(ctx context.Context, req *request.NewsletterRequest) error
	GetSubscribers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SubscriberResponse], error)
}

type newsletterService struct {
	newsletterRepo repository.NewsletterRepository
	log            *zap.Logger
}

func NewNewsletterService(newsletterRepo repository.NewsletterRepository, log *zap.Logger) NewsletterService {
	return &newsletterService{
		newsletterRepo: newsletterRepo,
		log:            log.With(zap.String("service", "newsletter")),
	}
}

// Subscribe - email yang pernah unsubscribe diaktifkan lagi
func (s *newsletterService) Subscribe(ctx context.Context, req *request.NewsletterRequest) (*response.SubscriberResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.newsletterRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find subscriber: %w", err)
	}

	if existing != nil {
		if existing.IsActive {
			return nil, utils.Wrap(utils.ErrConflict, "Email already subscribed")
		}
		if err := s.newsletterRepo.SetActive(ctx, existing.ID, true); err != nil {
			return nil, err
		}
		existing.IsActive = true
		s.log.Info("Subscriber reactivated", zap.String("subscriber_id", existing.ID.String()))

		resp := response.SubscriberToResponse(existing)
		return &resp, nil
	}

	now := time.Now()
	sub := &entity.NewsletterSubscriber{
		ID:           uuid.New(),
		Email:        email,
		IsActive:     true,
		SubscribedAt: now,
		UpdatedAt:    now,
	}
	if err := s.newsletterRepo.Create(ctx, sub); err != nil {
		return nil, err
	}

	s.log.Info("New subscriber", zap.String("subscriber_id", sub.ID.String()))

	resp := response.SubscriberToResponse(sub)
	return &resp, nil
}

func (s *newsletterService) Unsubscribe(ctx context.Context, req *request.NewsletterRequest) error {
	if err := validate(req); err != nil {
		return err
	}

	existing, err := s.newsletterRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return fmt.Errorf("find subscriber: %w", err)
	}
	if existing == nil || !existing.IsActive {
		return utils.Wrap(utils.ErrNotFound, "Email is not subscribed")
	}

	return s.newsletterRepo.SetActive(ctx, existing.ID, false)
}

func (s *newsletterService) GetSubscribers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.SubscriberResponse], error) {
	subs, err := s.newsletterRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}

	total, err := s.newsletterRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count subscribers: %w", err)
	}

	data := response.MapSlice(subs, func(sub *entity.NewsletterSubscriber) response.SubscriberResponse {
		return response.SubscriberToResponse(sub)
	})

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}
