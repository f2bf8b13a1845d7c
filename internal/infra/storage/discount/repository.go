package discount

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	"github.com/m04kA/WVG-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WVG-BookingService/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов (см. pkg/dbmetrics)
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий промокодов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCode получает промокод
// Код нормализуется: пробелы по краям убираются, регистр не учитывается
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Discount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"code",
		"kind",
		"value",
		"active",
		"expires_at",
		"max_uses",
		"used_count",
		"created_at",
		"updated_at",
	).
		From("discounts").
		Where(squirrel.Eq{"code": normalizeCode(code)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var (
		d         domain.Discount
		kind      string
		expiresAt sql.NullTime
		maxUses   sql.NullInt64
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.Code,
		&kind,
		&d.Value,
		&d.Active,
		&expiresAt,
		&maxUses,
		&d.UsedCount,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrDiscountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan discount: %v", ErrScanRow, err)
	}

	d.Kind = domain.DiscountKind(kind)
	if expiresAt.Valid {
		d.ExpiresAt = &expiresAt.Time
	}
	if maxUses.Valid {
		d.MaxUses = &maxUses.Int64
	}
	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}

// IncrementUsage увеличивает счетчик использований промокода
// Лимит проверяется в самом запросе: конкурентные оформления не смогут
// израсходовать промокод сверх max_uses
func (r *Repository) IncrementUsage(ctx context.Context, code string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("discounts").
		Set("used_count", squirrel.Expr("used_count + 1")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"code": normalizeCode(code)}).
		Where(squirrel.Or{
			squirrel.Eq{"max_uses": nil},
			squirrel.Expr("used_count < max_uses"),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUsageLimitReached
	}

	return nil
}

// normalizeCode приводит промокод к каноническому виду
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
