package quote_price

import (
	"context"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
}

// DiscountValidator интерфейс сервиса валидации промокодов
type DiscountValidator interface {
	Validate(ctx context.Context, code string) (*domain.Discount, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
