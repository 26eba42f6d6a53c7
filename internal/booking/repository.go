package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// Repository defines storage access for bookings.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	// ListAllByPartner returns every booking attributed to the partner,
	// without pagination. Aggregation must see the full set; a paged read
	// would silently undercount totals.
	ListAllByPartner(ctx context.Context, partnerID string) ([]*Booking, error)
	// UpdateStatus moves both lifecycle axes in one statement.
	UpdateStatus(ctx context.Context, id string, status Status, paymentStatus PaymentStatus) error
	// MarkPartnerPaid flips the settlement flag once the partner payout clears.
	MarkPartnerPaid(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a new booking repository.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var bookingColumns = []string{
	"id", "client_id", "service_id", "category", "partner_id",
	"start_date", "end_date", "guest_count", "add_ons",
	"contact_full_name", "contact_email", "contact_phone", "notes",
	"total_price", "status", "payment_status",
	"partner_amount", "commission_amount", "partner_paid",
	"created_at", "updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, b *Booking) error {
	addOnsJSON, err := json.Marshal(b.AddOns)
	if err != nil {
		return fmt.Errorf("marshal add-ons failed: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.bookings").
		Columns(
			"client_id", "service_id", "category", "partner_id",
			"start_date", "end_date", "guest_count", "add_ons",
			"contact_full_name", "contact_email", "contact_phone", "notes",
			"total_price", "status", "payment_status",
			"partner_amount", "commission_amount",
		).
		Values(
			b.ClientID, b.ServiceID, b.Category, b.PartnerID,
			b.StartDate, b.EndDate, b.GuestCount, addOnsJSON,
			b.Contact.FullName, b.Contact.Email, b.Contact.Phone, b.Notes,
			b.TotalPrice, b.Status, b.PaymentStatus,
			b.PartnerAmount, b.CommissionAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create booking query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func scanBooking(row pgx.Row, extra ...any) (*Booking, error) {
	var b Booking
	var addOnsJSON []byte

	dest := []any{
		&b.ID, &b.ClientID, &b.ServiceID, &b.Category, &b.PartnerID,
		&b.StartDate, &b.EndDate, &b.GuestCount, &addOnsJSON,
		&b.Contact.FullName, &b.Contact.Email, &b.Contact.Phone, &b.Notes,
		&b.TotalPrice, &b.Status, &b.PaymentStatus,
		&b.PartnerAmount, &b.CommissionAmount, &b.PartnerPaid,
		&b.CreatedAt, &b.UpdatedAt,
	}
	dest = append(dest, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if len(addOnsJSON) > 0 {
		if err := json.Unmarshal(addOnsJSON, &b.AddOns); err != nil {
			// One bad add-on blob should not fail the read.
			log.Warn().Err(err).Str("booking_id", b.ID).Msg("failed to unmarshal booking add-ons")
		}
	}

	return &b, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(bookingColumns...).
		From("public.bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get booking query failed: %w", err)
	}

	b, err := scanBooking(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get booking failed: %w", err)
	}
	return b, nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	cols := append([]string{}, bookingColumns...)
	cols = append(cols, "count(*) OVER() AS total_count")
	query := psql.Select(cols...).From("public.bookings")

	if filter.ClientID != "" {
		query = query.Where(squirrel.Eq{"client_id": filter.ClientID})
	}
	if filter.PartnerID != "" {
		query = query.Where(squirrel.Eq{"partner_id": filter.PartnerID})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.PaymentStatus != "" {
		query = query.Where(squirrel.Eq{"payment_status": filter.PaymentStatus})
	}

	// Sorting
	orderBy := "created_at"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
	}
	orderDir := "DESC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	// Pagination
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	var total int

	for rows.Next() {
		b, err := scanBooking(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *pgxRepository) ListAllByPartner(ctx context.Context, partnerID string) ([]*Booking, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(bookingColumns...).
		From("public.bookings").
		Where(squirrel.Eq{"partner_id": partnerID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list partner bookings query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list partner bookings failed: %w", err)
	}
	defer rows.Close()

	var bookings []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking failed: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status, paymentStatus PaymentStatus) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("status", status).
		Set("payment_status", paymentStatus).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update booking status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update booking status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) MarkPartnerPaid(ctx context.Context, id string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.bookings").
		Set("partner_paid", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"partner_id": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build mark partner paid query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("mark partner paid failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
