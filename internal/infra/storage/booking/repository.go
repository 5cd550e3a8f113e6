package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/glowdesk/booking-service/internal/domain"
	"github.com/glowdesk/booking-service/pkg/dbmetrics"
	"github.com/glowdesk/booking-service/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"id",
	"number",
	"customer_name",
	"professional_id",
	"professional_name",
	"booking_date",
	"start_time",
	"duration_minutes",
	"total_price",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование вместе со снапшотом его услуг.
// Если в контексте есть активная транзакция (txmanager), использует её —
// подтверждение бронирования всегда выполняется в сериализуемой
// транзакции вместе с повторной проверкой доступности слота.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"number",
			"customer_name",
			"professional_id",
			"professional_name",
			"booking_date",
			"start_time",
			"duration_minutes",
			"total_price",
			"status",
			"notes",
		).
		Values(
			b.Number,
			b.CustomerName,
			b.ProfessionalID,
			b.ProfessionalName,
			b.BookingDate,
			b.StartTime,
			b.DurationMinutes,
			b.TotalPrice,
			b.Status,
			b.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	if len(b.Services) > 0 {
		insert := psqlbuilder.Insert("booking_services").
			Columns("booking_id", "service_id", "name", "duration_minutes", "price", "position")
		for i, svc := range b.Services {
			insert = insert.Values(b.ID, svc.ServiceID, svc.Name, svc.DurationMinutes, svc.Price, i)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build services insert: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert services: %v", ErrExecQuery, err)
		}
	}

	return b, nil
}

// GetByID получает бронирование по ID вместе с его услугами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	booking, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	if err := r.loadServices(ctx, executor, []*domain.Booking{booking}); err != nil {
		return nil, err
	}

	return booking, nil
}

// GetByCustomer получает бронирования клиента, опционально по статусу
func (r *Repository) GetByCustomer(ctx context.Context, customerName string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"customer_name": customerName}).
		OrderBy("booking_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCustomer - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadServices(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// GetForRange получает бронирования за календарный период.
// Это снапшот для движка доступности: по умолчанию возвращаются только
// бронирования, занимающие слот (см. domain.InactiveStatuses).
func (r *Repository) GetForRange(ctx context.Context, filter domain.DayBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": filter.StartDate}).
		Where(squirrel.LtOrEq{"booking_date": filter.EndDate}).
		OrderBy("booking_date ASC, start_time ASC")

	if filter.ProfessionalID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"professional_id": *filter.ProfessionalID})
	}

	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.InactiveStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadServices(ctx, executor, bookings); err != nil {
		return nil, err
	}

	return bookings, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", time.Now()).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.Number,
		&b.CustomerName,
		&b.ProfessionalID,
		&b.ProfessionalName,
		&b.BookingDate,
		&b.StartTime,
		&b.DurationMinutes,
		&b.TotalPrice,
		&b.Status,
		&b.Notes,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan bookings: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate bookings: %v", ErrScanRow, err)
	}
	return bookings, nil
}

// loadServices подгружает снапшоты услуг для набора бронирований
// одним запросом
func (r *Repository) loadServices(ctx context.Context, executor DBExecutor, bookings []*domain.Booking) error {
	if len(bookings) == 0 {
		return nil
	}

	ids := make([]int64, len(bookings))
	byID := make(map[int64]*domain.Booking, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
		byID[b.ID] = b
	}

	query, args, err := psqlbuilder.Select(
		"booking_id",
		"service_id",
		"name",
		"duration_minutes",
		"price",
	).
		From("booking_services").
		Where(squirrel.Eq{"booking_id": ids}).
		OrderBy("booking_id ASC, position ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID int64
		var svc domain.BookedService

		if err := rows.Scan(&bookingID, &svc.ServiceID, &svc.Name, &svc.DurationMinutes, &svc.Price); err != nil {
			return fmt.Errorf("%w: loadServices - scan service: %v", ErrScanRow, err)
		}

		if b, ok := byID[bookingID]; ok {
			b.Services = append(b.Services, svc)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadServices - iterate services: %v", ErrScanRow, err)
	}

	return nil
}
