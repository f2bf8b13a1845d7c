package catalog

import (
	"context"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
