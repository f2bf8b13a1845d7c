package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	"github.com/m04kA/WVG-BookingService/internal/integrations/clientservice"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetCatalog(ctx context.Context) (*domain.Catalog, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// DiscountValidator интерфейс сервиса валидации промокодов
type DiscountValidator interface {
	Validate(ctx context.Context, code string) (*domain.Discount, error)
}

// DiscountRepository интерфейс репозитория промокодов
// Инкремент использований идет в одной транзакции с созданием бронирования
type DiscountRepository interface {
	IncrementUsage(ctx context.Context, code string) error
}

// ClientServiceClient интерфейс клиента сервиса клиентов
type ClientServiceClient interface {
	RegisterClientWithGracefulDegradation(ctx context.Context, req *clientservice.RegisterClientRequest) (*clientservice.Client, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
