package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository reads the two catalog stores. Both lookups are read-only; neither
// catalog is owned or mutated by this subsystem.
type Repository interface {
	// FindPlatform looks the id up in the platform table for the category and
	// returns the normalized view, or ErrNotFound.
	FindPlatform(ctx context.Context, category Category, id string) (*ResolvedService, error)
	// FindPartner looks the id up in the shared partner catalog filtered by the
	// category's product-type tag, or ErrNotFound.
	FindPartner(ctx context.Context, category Category, id string) (*ResolvedService, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new catalog repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) FindPlatform(ctx context.Context, category Category, id string) (*ResolvedService, error) {
	table, ok := platformTables[category]
	if !ok {
		return nil, ErrUnknownCategory
	}

	// Each platform table keeps its own column vocabulary, so the select list
	// and scan differ per category. The result is normalized here and nowhere else.
	switch category {
	case CategoryVehicle:
		return r.findPlatformVehicle(ctx, table, id)
	case CategoryTour:
		return r.findPlatformTour(ctx, table, id)
	default:
		return r.findPlatformAccommodation(ctx, category, table, id)
	}
}

func (r *pgxRepository) findPlatformAccommodation(ctx context.Context, category Category, table, id string) (*ResolvedService, error) {
	// Hotels and villas name the title column "name"; apartments use "title".
	titleCol := "name"
	if category == CategoryApartment {
		titleCol = "title"
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(titleCol, "description", "images", "price_per_night").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build platform accommodation query failed: %w", err)
	}

	svc := &ResolvedService{
		ID:       id,
		Category: category,
		FareUnit: FarePerNight,
		Source:   SourcePlatform,
	}
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&svc.Title, &svc.Description, &svc.Images, &svc.UnitPrice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("platform accommodation lookup failed: %w", err)
	}
	return svc, nil
}

func (r *pgxRepository) findPlatformVehicle(ctx context.Context, table, id string) (*ResolvedService, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("brand", "model", "year", "description", "images", "price_per_day").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build platform vehicle query failed: %w", err)
	}

	svc := &ResolvedService{
		ID:       id,
		Category: CategoryVehicle,
		FareUnit: FarePerDay,
		Source:   SourcePlatform,
	}
	var brand, model string
	var year int
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&brand, &model, &year, &svc.Description, &svc.Images, &svc.UnitPrice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("platform vehicle lookup failed: %w", err)
	}

	// Vehicles have no stored title; assemble one from brand, model and year.
	svc.Title = fmt.Sprintf("%s %s %d", brand, model, year)
	return svc, nil
}

func (r *pgxRepository) findPlatformTour(ctx context.Context, table, id string) (*ResolvedService, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("title", "description", "images", "price_per_person").
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build platform tour query failed: %w", err)
	}

	svc := &ResolvedService{
		ID:       id,
		Category: CategoryTour,
		FareUnit: FarePerPerson,
		Source:   SourcePlatform,
	}
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&svc.Title, &svc.Description, &svc.Images, &svc.UnitPrice); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("platform tour lookup failed: %w", err)
	}
	return svc, nil
}

func (r *pgxRepository) FindPartner(ctx context.Context, category Category, id string) (*ResolvedService, error) {
	productType, ok := partnerProductTypes[category]
	if !ok {
		return nil, ErrUnknownCategory
	}

	// Partner records share one table with a uniform schema; the only
	// category-specific part is the product-type tag.
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select("title", "description", "images", "price", "partner_id").
		From("public.partner_services").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"product_type": productType}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build partner service query failed: %w", err)
	}

	svc := &ResolvedService{
		ID:       id,
		Category: category,
		FareUnit: category.FareUnit(),
		Source:   SourcePartner,
	}
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&svc.Title, &svc.Description, &svc.Images, &svc.UnitPrice, &svc.PartnerRef); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("partner service lookup failed: %w", err)
	}
	return svc, nil
}
