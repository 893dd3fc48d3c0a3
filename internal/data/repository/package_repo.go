package repository

import (
	"context"
	"errors"
	"fmt"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/database"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.TourPackage) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TourPackage, error)
	FindWithStats(ctx context.Context, id uuid.UUID) (*entity.PackageWithStats, error)
	Update(ctx context.Context, pkg *entity.TourPackage) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Catalog
	List(ctx context.Context, filter PackageFilter, limit, offset int) ([]*entity.PackageWithStats, error)
	Count(ctx context.Context, filter PackageFilter) (int64, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	GetFilterOptions(ctx context.Context) (*FilterOptions, error)
}

type packageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPackageRepository(db database.PgxIface, log *zap.Logger) PackageRepository {
	return &packageRepository{
		db:  db,
		log: log.With(zap.String("repository", "package")),
	}
}

const packageColumns = `p.id, p.name, p.type, p.location, p.price, p.features, p.details, p.image,
	p.view_count, p.created_at, p.updated_at`

// rating hanya dari review yang sudah di-approve
const packageStatsJoin = `
	LEFT JOIN (
		SELECT package_id, AVG(rating)::float8 AS avg_rating, COUNT(*) AS total_reviews
		FROM reviews
		WHERE is_approved
		GROUP BY package_id
	) rs ON rs.package_id = p.id
	LEFT JOIN (
		SELECT package_id, COUNT(*) AS total_bookings
		FROM bookings
		GROUP BY package_id
	) bs ON bs.package_id = p.id
`

const packageStatsColumns = `COALESCE(rs.avg_rating, 0), COALESCE(rs.total_reviews, 0), COALESCE(bs.total_bookings, 0)`

func packageScanTargets(pkg *entity.TourPackage) []any {
	return []any{
		&pkg.ID,
		&pkg.Name,
		&pkg.Type,
		&pkg.Location,
		&pkg.Price,
		&pkg.Features,
		&pkg.Details,
		&pkg.Image,
		&pkg.ViewCount,
		&pkg.CreatedAt,
		&pkg.UpdatedAt,
	}
}

func scanPackageWithStats(row rowScanner) (*entity.PackageWithStats, error) {
	var p entity.PackageWithStats
	targets := append(packageScanTargets(&p.TourPackage), &p.AverageRating, &p.TotalReviews, &p.TotalBookings)
	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.TourPackage) error {
	query := `
		INSERT INTO tour_packages (id, name, type, location, price, features, details, image,
		                           view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Type,
		pkg.Location,
		pkg.Price,
		pkg.Features,
		pkg.Details,
		pkg.Image,
		pkg.ViewCount,
		pkg.CreatedAt,
		pkg.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create package", zap.Error(err), zap.String("name", pkg.Name))
		return fmt.Errorf("create package %s: %w", pkg.Name, err)
	}

	return nil
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TourPackage, error) {
	query := `SELECT ` + packageColumns + ` FROM tour_packages p WHERE p.id = $1`

	var pkg entity.TourPackage
	err := r.db.QueryRow(ctx, query, id).Scan(packageScanTargets(&pkg)...)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package by ID", zap.Error(err), zap.String("package_id", id.String()))
		return nil, fmt.Errorf("find package by ID %s: %w", id, err)
	}

	return &pkg, nil
}

func (r *packageRepository) FindWithStats(ctx context.Context, id uuid.UUID) (*entity.PackageWithStats, error) {
	query := `SELECT ` + packageColumns + `, ` + packageStatsColumns + `
		FROM tour_packages p ` + packageStatsJoin + `
		WHERE p.id = $1`

	pkg, err := scanPackageWithStats(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find package with stats", zap.Error(err), zap.String("package_id", id.String()))
		return nil, fmt.Errorf("find package with stats %s: %w", id, err)
	}

	return pkg, nil
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.TourPackage) error {
	query := `
		UPDATE tour_packages
		SET name = $2, type = $3, location = $4, price = $5, features = $6,
		    details = $7, image = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		pkg.ID,
		pkg.Name,
		pkg.Type,
		pkg.Location,
		pkg.Price,
		pkg.Features,
		pkg.Details,
		pkg.Image,
		pkg.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update package", zap.Error(err), zap.String("package_id", pkg.ID.String()))
		return fmt.Errorf("update package %s: %w", pkg.ID, err)
	}

	if result.RowsAffected() == 0 {
		return utils.Wrap(utils.ErrNotFound, "Package not found")
	}

	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM tour_packages WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete package", zap.Error(err), zap.String("package_id", id.String()))
		return fmt.Errorf("delete package %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return utils.Wrap(utils.ErrNotFound, "Package not found")
	}

	r.log.Info("Package deleted", zap.String("package_id", id.String()))
	return nil
}

func (r *packageRepository) List(ctx context.Context, filter PackageFilter, limit, offset int) ([]*entity.PackageWithStats, error) {
	where, args := buildPackageWhere(filter)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM tour_packages p %s
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		packageColumns, packageStatsColumns, packageStatsJoin,
		where, buildPackageOrder(filter.Sort), len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list packages", zap.Error(err), zap.Any("filter", filter))
		return nil, fmt.Errorf("list packages: %w", err)
	}
	defer rows.Close()

	packages := make([]*entity.PackageWithStats, 0)
	for rows.Next() {
		pkg, err := scanPackageWithStats(rows)
		if err != nil {
			return nil, fmt.Errorf("scan package row: %w", err)
		}
		packages = append(packages, pkg)
	}

	return packages, rows.Err()
}

func (r *packageRepository) Count(ctx context.Context, filter PackageFilter) (int64, error) {
	where, args := buildPackageWhere(filter)
	query := `SELECT COUNT(*) FROM tour_packages p WHERE ` + where

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count packages", zap.Error(err), zap.Any("filter", filter))
		return 0, fmt.Errorf("count packages: %w", err)
	}

	return count, nil
}

func (r *packageRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `UPDATE tour_packages SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to increment view count", zap.Error(err), zap.String("package_id", id.String()))
		return fmt.Errorf("increment view count %s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return utils.Wrap(utils.ErrNotFound, "Package not found")
	}

	return nil
}

// GetFilterOptions - default harga 0..10000 kalau katalog kosong
func (r *packageRepository) GetFilterOptions(ctx context.Context) (*FilterOptions, error) {
	opts := &FilterOptions{Types: []string{}, Locations: []string{}}

	var minPrice, maxPrice *float64
	err := r.db.QueryRow(ctx, `SELECT MIN(price)::float8, MAX(price)::float8 FROM tour_packages`).Scan(&minPrice, &maxPrice)
	if err != nil {
		r.log.Error("Failed to get price range", zap.Error(err))
		return nil, fmt.Errorf("get price range: %w", err)
	}
	opts.MinPrice, opts.MaxPrice = 0, 10000
	if minPrice != nil {
		opts.MinPrice = *minPrice
	}
	if maxPrice != nil {
		opts.MaxPrice = *maxPrice
	}

	if opts.Types, err = r.distinct(ctx, "type"); err != nil {
		return nil, err
	}
	if opts.Locations, err = r.distinct(ctx, "location"); err != nil {
		return nil, err
	}

	return opts, nil
}

// column selalu konstanta dari GetFilterOptions
func (r *packageRepository) distinct(ctx context.Context, column string) ([]string, error) {
	query := fmt.Sprintf(`SELECT DISTINCT %[1]s FROM tour_packages ORDER BY %[1]s`, column)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list distinct values", zap.Error(err), zap.String("column", column))
		return nil, fmt.Errorf("distinct %s: %w", column, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan distinct %s: %w", column, err)
		}
		values = append(values, v)
	}

	return values, rows.Err()
}
