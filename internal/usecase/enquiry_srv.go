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

	"go.uber.org/zap"
)

type EnquiryService interface {
	CreateEnquiry(ctx context.Context, req *request.CreateEnquiryRequest) (*response.EnquiryResponse, error)
	GetAllEnquiries(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.EnquiryResponse], error)
	MarkRead(ctx context.Context, enquiryID string) error
}

type enquiryService struct {
	enquiryRepo repository.EnquiryRepository
	log         *zap.Logger
}

func NewEnquiryService(enquiryRepo repository.EnquiryRepository, log *zap.Logger) EnquiryService {
	return &enquiryService{
		enquiryRepo: enquiryRepo,
		log:         log.With(zap.String("service", "enquiry")),
	}
}

func (s *enquiryService) CreateEnquiry(ctx context.Context, req *request.CreateEnquiryRequest) (*response.EnquiryResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	enquiry := &entity.Enquiry{
		BaseSimple:   entity.NewBaseSimple(time.Now()),
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		MobileNumber: req.MobileNumber,
		Subject:      strings.TrimSpace(req.Subject),
		Description:  strings.TrimSpace(req.Description),
		Status:       entity.EnquiryStatusUnread,
	}

	if err := s.enquiryRepo.Create(ctx, enquiry); err != nil {
		return nil, err
	}

	s.log.Info("Enquiry received", zap.String("enquiry_id", enquiry.ID.String()))

	resp := response.EnquiryToResponse(enquiry)
	return &resp, nil
}

func (s *enquiryService) GetAllEnquiries(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.EnquiryResponse], error) {
	enquiries, err := s.enquiryRepo.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list enquiries: %w", err)
	}

	total, err := s.enquiryRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count enquiries: %w", err)
	}

	data := response.MapSlice(enquiries, func(e *entity.Enquiry) response.EnquiryResponse {
		return response.EnquiryToResponse(e)
	})

	return response.NewPaginatedResponse(data, req.Page, req.Limit(), total), nil
}

func (s *enquiryService) MarkRead(ctx context.Context, enquiryID string) error {
	id, err := parseID("id", enquiryID)
	if err != nil {
		return err
	}
	return s.enquiryRepo.MarkRead(ctx, id)
}
