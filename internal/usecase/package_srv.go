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

	"go.uber.org/zap"
)

const defaultCatalogPageSize = 9

type PackageService interface {
	// Public
	ListPackages(ctx context.Context, req *request.PackageListRequest) (*response.PackageListResponse, error)
	GetPackage(ctx context.Context, packageID string) (*response.PackageResponse, error)
	GetFilterOptions(ctx context.Context) (*response.FilterOptionsResponse, error)

	// Admin
	CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error)
	UpdatePackage(ctx context.Context, packageID string, req *request.PackageRequest) (*response.PackageResponse, error)
	DeletePackage(ctx context.Context, packageID string) error
}

type packageService struct {
	repo     *repository.Repository
	pageSize int
	log      *zap.Logger
	now      func() time.Time
}

func NewPackageService(repo *repository.Repository, cfg utils.CatalogConfig, log *zap.Logger) PackageService {
	pageSize := cfg.PageSize
	if pageSize < 1 {
		pageSize = defaultCatalogPageSize
	}

	return &packageService{
		repo:     repo,
		pageSize: pageSize,
		log:      log.With(zap.String("service", "package")),
		now:      time.Now,
	}
}

// ListPackages - search, harga, tipe, lokasi, sort, paginasi offset dengan page size tetap
func (s *packageService) ListPackages(ctx context.Context, req *request.PackageListRequest) (*response.PackageListResponse, error) {
	filter, err := toPackageFilter(req)
	if err != nil {
		return nil, err
	}

	page := utils.ClampPage(req.Page, s.pageSize)

	total, err := s.repo.Package.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count packages: %w", err)
	}

	packages, err := s.repo.Package.List(ctx, filter, s.pageSize, utils.CalculateOffset(page, s.pageSize))
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	data := make([]response.PackageResponse, 0, len(packages))
	for _, p := range packages {
		data = append(data, response.PackageWithStatsToResponse(p))
	}

	return &response.PackageListResponse{
		Packages:    data,
		Total:       total,
		Pages:       utils.CalculateTotalPages(total, s.pageSize),
		CurrentPage: page,
	}, nil
}

func (s *packageService) GetPackage(ctx context.Context, packageID string) (*response.PackageResponse, error) {
	id, err := parseID("id", packageID)
	if err != nil {
		return nil, err
	}

	pkg, err := s.repo.Package.FindWithStats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get package: %w", err)
	}
	if pkg == nil {
		return nil, utils.Wrap(utils.ErrNotFound, "Package not found")
	}

	// view counter bukan bagian penting, gagal cukup di-log
	if err := s.repo.Package.IncrementViewCount(ctx, id); err != nil {
		s.log.Warn("Failed to increment view count", zap.Error(err), zap.String("package_id", id.String()))
	} else {
		pkg.ViewCount++
	}

	resp := response.PackageWithStatsToResponse(pkg)
	return &resp, nil
}

func (s *packageService) GetFilterOptions(ctx context.Context) (*response.FilterOptionsResponse, error) {
	opts, err := s.repo.Package.GetFilterOptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("get filter options: %w", err)
	}

	return &response.FilterOptionsResponse{
		Types:     opts.Types,
		Locations: opts.Locations,
		MinPrice:  opts.MinPrice,
		MaxPrice:  opts.MaxPrice,
	}, nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.PackageRequest) (*response.PackageResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create package validation failed", zap.Error(err))
		return nil, err
	}

	pkg := &entity.TourPackage{Base: entity.NewBase(s.now())}
	applyPackageRequest(pkg, req)

	if err := s.repo.Package.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.log.Info("Package created", zap.String("package_id", pkg.ID.String()), zap.String("name", pkg.Name))

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, packageID string, req *request.PackageRequest) (*response.PackageResponse, error) {
	id, err := parseID("id", packageID)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	pkg, err := s.repo.Package.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, utils.Wrap(utils.ErrNotFound, "Package not found")
	}

	applyPackageRequest(pkg, req)
	pkg.UpdatedAt = s.now()

	if err := s.repo.Package.Update(ctx, pkg); err != nil {
		return nil, err
	}

	s.log.Info("Package updated", zap.String("package_id", pkg.ID.String()))

	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) DeletePackage(ctx context.Context, packageID string) error {
	id, err := parseID("id", packageID)
	if err != nil {
		return err
	}
	return s.repo.Package.Delete(ctx, id)
}

// ==================== HELPER METHODS ====================

func toPackageFilter(req *request.PackageListRequest) (repository.PackageFilter, error) {
	filter := repository.PackageFilter{
		Search:    strings.TrimSpace(req.Search),
		MinPrice:  req.MinPrice,
		MaxPrice:  req.MaxPrice,
		Types:     req.Types,
		Locations: req.Locations,
		Sort:      req.Sort,
	}

	// sort tidak dikenal -> newest
	if !repository.ValidSort(filter.Sort) {
		filter.Sort = repository.SortNewest
	}
	if filter.MinPrice != nil && filter.MaxPrice != nil && *filter.MinPrice > *filter.MaxPrice {
		return filter, utils.NewFieldError("max_price", "Must be greater than or equal to min_price")
	}

	return filter, nil
}

func applyPackageRequest(pkg *entity.TourPackage, req *request.PackageRequest) {
	pkg.Name = strings.TrimSpace(req.Name)
	pkg.Type = strings.TrimSpace(req.Type)
	pkg.Location = strings.TrimSpace(req.Location)
	pkg.Price = *req.Price
	pkg.Features = strings.Join(utils.SplitCSV(req.Features), ", ")
	pkg.Details = req.Details
	pkg.Image = req.Image
}
