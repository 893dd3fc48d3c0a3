package usecase

import (
	"context"
	"fmt"
	"time"

	"tourism-booking/internal/data/entity"
	"tourism-booking/internal/data/repository"
	"tourism-booking/internal/dto/request"
	"tourism-booking/internal/dto/response"
	"tourism-booking/pkg/utils"

	"go.uber.org/zap"
)

type PageService interface {
	GetPage(ctx context.Context, pageType string) (*response.PageResponse, error)
	UpsertPage(ctx context.Context, pageType string, req *request.UpsertPageRequest) (*response.PageResponse, error)
}

type pageService struct {
	pageRepo repository.PageRepository
	log      *zap.Logger
}

func NewPageService(pageRepo repository.PageRepository, log *zap.Logger) PageService {
	return &pageService{
		pageRepo: pageRepo,
		log:      log.With(zap.String("service", "page")),
	}
}

// GetPage - tipe valid yang belum diisi admin dikembalikan kosong
func (s *pageService) GetPage(ctx context.Context, pageType string) (*response.PageResponse, error) {
	pt := entity.PageType(pageType)
	if !pt.Valid() {
		return nil, utils.Wrap(utils.ErrNotFound, "Page not found")
	}

	page, err := s.pageRepo.FindByType(ctx, pt)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	if page == nil {
		page = &entity.Page{Type: pt}
	}

	resp := response.PageToResponse(page)
	return &resp, nil
}

func (s *pageService) UpsertPage(ctx context.Context, pageType string, req *request.UpsertPageRequest) (*response.PageResponse, error) {
	pt := entity.PageType(pageType)
	if !pt.Valid() {
		return nil, utils.NewFieldError("type", "Must be one of: about, contact, terms, privacy")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	page := &entity.Page{Type: pt, Detail: req.Detail, UpdatedAt: time.Now()}
	if err := s.pageRepo.Upsert(ctx, page); err != nil {
		return nil, err
	}

	s.log.Info("Page updated", zap.String("type", pageType))

	resp := response.PageToResponse(page)
	return &resp, nil
}
