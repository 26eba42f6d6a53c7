package partner

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing partner data.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*Partner, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new partner repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var partnerColumns = []string{"id", "user_id", "company_name", "phone", "created_at", "is_active"}

func (r *pgxRepository) GetByUserID(ctx context.Context, userID string) (*Partner, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(partnerColumns...).
		From("public.partners").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get partner query failed: %w", err)
	}

	var p Partner
	row := r.pool.QueryRow(ctx, query, args...)
	if err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &p.Phone, &p.CreatedAt, &p.IsActive); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get partner failed: %w", err)
	}
	return &p, nil
}
