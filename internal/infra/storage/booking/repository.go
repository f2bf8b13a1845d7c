package booking

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	"github.com/m04kA/WVG-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WVG-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var bookingColumns = []string{
	"id",
	"client_id",
	"package_id",
	"event_date",
	"status",
	"package_name",
	"total_price",
	"final_price",
	"deposit_amount",
	"discount_code",
	"selection_summary",
	"contact_name",
	"contact_email",
	"contact_phone",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её -
// оформление заявки идет вместе с инкрементом промокода в одной транзакции
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"client_id",
			"package_id",
			"event_date",
			"status",
			"package_name",
			"total_price",
			"final_price",
			"deposit_amount",
			"discount_code",
			"selection_summary",
			"contact_name",
			"contact_email",
			"contact_phone",
			"notes",
		).
		Values(
			b.ClientID,
			b.PackageID,
			b.EventDate,
			b.Status,
			b.PackageName,
			b.TotalPrice,
			b.FinalPrice,
			b.DepositAmount,
			b.DiscountCode,
			pq.Array(b.SelectionSummary),
			b.ContactName,
			b.ContactEmail,
			b.ContactPhone,
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

	return b, nil
}

// GetByID получает бронирование по ID
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
	b, err := scanBookingRow(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// GetByClientWithFilter получает бронирования клиента
// По умолчанию отмененные не включаются; конкретный статус имеет приоритет
func (r *Repository) GetByClientWithFilter(ctx context.Context, filter domain.ClientBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"client_id": filter.ClientID}).
		OrderBy("event_date DESC, id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClientWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByClientWithFilter - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByClientWithFilter - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.BookingStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBookingRow сканирует одну строку результата в доменную модель
func scanBookingRow(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		summary   pq.StringArray
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.ClientID,
		&b.PackageID,
		&b.EventDate,
		&b.Status,
		&b.PackageName,
		&b.TotalPrice,
		&b.FinalPrice,
		&b.DepositAmount,
		&b.DiscountCode,
		&summary,
		&b.ContactName,
		&b.ContactEmail,
		&b.ContactPhone,
		&b.Notes,
		&b.CancellationReason,
		&b.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.SelectionSummary = []string(summary)
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
