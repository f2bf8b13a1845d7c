package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BookingStatus статус бронирования съемки
type BookingStatus string

const (
	StatusPending           BookingStatus = "pending"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusCompleted         BookingStatus = "completed"
	StatusCancelledByClient BookingStatus = "cancelled_by_client"
	StatusCancelledByStudio BookingStatus = "cancelled_by_studio"
)

// Booking бронирование пакета видеосъемки
// Итоговая цена и список выбранных позиций денормализуются на момент
// оформления: каталог и цены со временем меняются, история должна оставаться
type Booking struct {
	ID        int64
	ClientID  string // идентификатор клиента, выдается при оформлении
	PackageID int64
	EventDate time.Time
	Status    BookingStatus

	// Денормализованный расчет
	PackageName      string
	TotalPrice       decimal.Decimal // до скидки
	FinalPrice       decimal.Decimal // после скидки
	DepositAmount    decimal.Decimal
	DiscountCode     *string
	SelectionSummary []string // человекочитаемые строки выбора

	// Контакт клиента
	ContactName  string
	ContactEmail string
	ContactPhone string
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true для неотмененных бронирований
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByClient && b.Status != StatusCancelledByStudio
}

// CanBeCancelled возвращает true, если бронирование можно отменить
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled возвращает true для отмененных бронирований
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByClient || b.Status == StatusCancelledByStudio
}

// ClientBookingsFilter фильтр для выборки бронирований клиента
type ClientBookingsFilter struct {
	ClientID        string         // Обязательный параметр
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные бронирования
}
