package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ahmadsal1998/omari-studio/internal/apperrors"
	"github.com/ahmadsal1998/omari-studio/internal/core/domain"
	portsrepo "github.com/ahmadsal1998/omari-studio/internal/core/ports/repositories"
)

var bookingColumns = []string{
	"booking_id", "customer_id", "shooting_date", "shooting_time",
	"discount", "notes", "status", "source",
	"total_selling_price", "total_cost", "profit", "created_at", "updated_at",
}

type PgxBookingRepository struct {
	BaseRepository
	productRepo portsrepo.ProductWriter
}

func newPgxBookingRepository(pool *pgxpool.Pool, productRepo portsrepo.ProductWriter) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
		productRepo:    productRepo,
	}
}

var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build booking query: %w", err)
	}

	var booking domain.Booking
	if err := pgxscan.Get(ctx, r.Pool, &booking, query, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: booking %s", apperrors.ErrNotFound, bookingID)
		}
		return nil, fmt.Errorf("failed to find booking %s: %w", bookingID, err)
	}

	if err := r.loadLines(ctx, []*domain.Booking{&booking}); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *PgxBookingRepository) ListBookings(ctx context.Context, filter portsrepo.ListBookingsFilter) ([]domain.Booking, int64, error) {
	base := qb.Select().From("bookings")
	if filter.CustomerID != "" {
		base = base.Where(squirrel.Eq{"customer_id": filter.CustomerID})
	}
	if filter.Status != "" {
		base = base.Where(squirrel.Eq{"status": filter.Status})
	}
	if filter.StartDate != nil {
		base = base.Where(squirrel.GtOrEq{"shooting_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		base = base.Where(squirrel.LtOrEq{"shooting_date": *filter.EndDate})
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build booking count query: %w", err)
	}
	var total int64
	if err := r.Pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	listBuilder := base.Columns(bookingColumns...).OrderBy("created_at DESC")
	if filter.Limit > 0 {
		listBuilder = listBuilder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	query, args, err := listBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build booking list query: %w", err)
	}

	var bookings []domain.Booking
	if err := pgxscan.Select(ctx, r.Pool, &bookings, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	refs := make([]*domain.Booking, len(bookings))
	for i := range bookings {
		refs[i] = &bookings[i]
	}
	if err := r.loadLines(ctx, refs); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// FindBookingsByCustomer returns the customer's non-cancelled bookings
// ordered by business date. Lines are not loaded; the statement builder
// only reads totals and dates.
func (r *PgxBookingRepository) FindBookingsByCustomer(ctx context.Context, customerID string) ([]domain.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_id": customerID}).
		Where(squirrel.NotEq{"status": domain.BookingCancelled}).
		OrderBy("COALESCE(shooting_date, created_at) ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build customer bookings query: %w", err)
	}

	var bookings []domain.Booking
	if err := pgxscan.Select(ctx, r.Pool, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to find bookings for customer %s: %w", customerID, err)
	}
	return bookings, nil
}

// SlotTaken reports whether a non-cancelled booking already occupies the
// given day and time slot. Stored shooting dates carry a time component,
// so the day is matched as a half-open range rather than by equality.
func (r *PgxBookingRepository) SlotTaken(ctx context.Context, day time.Time, shootingTime string, excludeBookingID string) (bool, error) {
	dayEnd := day.Add(24 * time.Hour)
	builder := qb.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.GtOrEq{"shooting_date": day}).
		Where(squirrel.Lt{"shooting_date": dayEnd}).
		Where(squirrel.Eq{"shooting_time": shootingTime}).
		Where(squirrel.NotEq{"status": domain.BookingCancelled})
	if excludeBookingID != "" {
		builder = builder.Where(squirrel.NotEq{"booking_id": excludeBookingID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build slot query: %w", err)
	}

	var count int64
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check slot: %w", err)
	}
	return count > 0, nil
}

func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	insertQuery := `
		INSERT INTO bookings (booking_id, customer_id, shooting_date, shooting_time, discount, notes, status, source, total_selling_price, total_cost, profit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertQuery,
		booking.BookingID,
		booking.CustomerID,
		booking.ShootingDate,
		booking.ShootingTime,
		booking.Discount,
		booking.Notes,
		booking.Status,
		booking.Source,
		booking.TotalSellingPrice,
		booking.TotalCost,
		booking.Profit,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("booking %s", booking.BookingID))
	}

	if err := r.insertLines(ctx, tx, booking); err != nil {
		return err
	}
	for _, line := range booking.Products {
		if err := r.productRepo.AdjustStockInTx(ctx, tx, line.ProductID, -line.Quantity); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Return the stock the old product lines consumed before the new
	// lines take theirs.
	oldLines, err := r.productLinesInTx(ctx, tx, booking.BookingID)
	if err != nil {
		return err
	}
	for _, line := range oldLines {
		if err := r.productRepo.AdjustStockInTx(ctx, tx, line.ProductID, line.Quantity); err != nil {
			return err
		}
	}

	updateQuery := `
		UPDATE bookings
		SET customer_id = $2, shooting_date = $3, shooting_time = $4, discount = $5, notes = $6, status = $7, total_selling_price = $8, total_cost = $9, profit = $10, updated_at = $11
		WHERE booking_id = $1;
	`
	tag, err := tx.Exec(ctx, updateQuery,
		booking.BookingID,
		booking.CustomerID,
		booking.ShootingDate,
		booking.ShootingTime,
		booking.Discount,
		booking.Notes,
		booking.Status,
		booking.TotalSellingPrice,
		booking.TotalCost,
		booking.Profit,
		booking.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, fmt.Sprintf("booking %s", booking.BookingID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: booking %s", apperrors.ErrNotFound, booking.BookingID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM booking_services WHERE booking_id = $1;`, booking.BookingID); err != nil {
		return fmt.Errorf("failed to clear booking services: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM booking_products WHERE booking_id = $1;`, booking.BookingID); err != nil {
		return fmt.Errorf("failed to clear booking products: %w", err)
	}
	if err := r.insertLines(ctx, tx, booking); err != nil {
		return err
	}
	for _, line := range booking.Products {
		if err := r.productRepo.AdjustStockInTx(ctx, tx, line.ProductID, -line.Quantity); err != nil {
			return err
		}
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBookingRepository) DeleteBooking(ctx context.Context, bookingID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	lines, err := r.productLinesInTx(ctx, tx, bookingID)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := r.productRepo.AdjustStockInTx(ctx, tx, line.ProductID, line.Quantity); err != nil {
			return err
		}
	}

	// Line rows go with the booking via ON DELETE CASCADE.
	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1;`, bookingID)
	if err != nil {
		return fmt.Errorf("failed to delete booking %s: %w", bookingID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: booking %s", apperrors.ErrNotFound, bookingID)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxBookingRepository) insertLines(ctx context.Context, tx pgx.Tx, booking domain.Booking) error {
	for _, line := range booking.Services {
		_, err := tx.Exec(ctx,
			`INSERT INTO booking_services (booking_id, service_id, quantity) VALUES ($1, $2, $3);`,
			booking.BookingID, line.ServiceID, line.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert booking service line: %w", err)
		}
	}
	for _, line := range booking.Products {
		_, err := tx.Exec(ctx,
			`INSERT INTO booking_products (booking_id, product_id, quantity) VALUES ($1, $2, $3);`,
			booking.BookingID, line.ProductID, line.Quantity)
		if err != nil {
			return fmt.Errorf("failed to insert booking product line: %w", err)
		}
	}
	return nil
}

func (r *PgxBookingRepository) productLinesInTx(ctx context.Context, tx pgx.Tx, bookingID string) ([]domain.BookingProductLine, error) {
	var lines []domain.BookingProductLine
	err := pgxscan.Select(ctx, tx, &lines,
		`SELECT product_id, quantity FROM booking_products WHERE booking_id = $1;`, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking product lines: %w", err)
	}
	return lines, nil
}

// loadLines attaches service and product lines to the given bookings.
func (r *PgxBookingRepository) loadLines(ctx context.Context, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	ids := make([]string, len(bookings))
	byID := make(map[string]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.BookingID
		byID[b.BookingID] = b
		b.Services = []domain.BookingServiceLine{}
		b.Products = []domain.BookingProductLine{}
	}

	type serviceLineRow struct {
		BookingID string `db:"booking_id"`
		ServiceID string `db:"service_id"`
		Quantity  int    `db:"quantity"`
	}
	query, args, err := qb.Select("booking_id", "service_id", "quantity").
		From("booking_services").
		Where(squirrel.Eq{"booking_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build service lines query: %w", err)
	}
	var serviceRows []serviceLineRow
	if err := pgxscan.Select(ctx, r.Pool, &serviceRows, query, args...); err != nil {
		return fmt.Errorf("failed to load service lines: %w", err)
	}
	for _, row := range serviceRows {
		b := byID[row.BookingID]
		b.Services = append(b.Services, domain.BookingServiceLine{ServiceID: row.ServiceID, Quantity: row.Quantity})
	}

	type productLineRow struct {
		BookingID string `db:"booking_id"`
		ProductID string `db:"product_id"`
		Quantity  int    `db:"quantity"`
	}
	query, args, err = qb.Select("booking_id", "product_id", "quantity").
		From("booking_products").
		Where(squirrel.Eq{"booking_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build product lines query: %w", err)
	}
	var productRows []productLineRow
	if err := pgxscan.Select(ctx, r.Pool, &productRows, query, args...); err != nil {
		return fmt.Errorf("failed to load product lines: %w", err)
	}
	for _, row := range productRows {
		b := byID[row.BookingID]
		b.Products = append(b.Products, domain.BookingProductLine{ProductID: row.ProductID, Quantity: row.Quantity})
	}
	return nil
}
