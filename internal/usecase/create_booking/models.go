package create_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на оформление бронирования
// Итоговая цена клиентом не присылается: сервер пересчитывает её
// от авторитетного снапшота каталога
type Request struct {
	PackageID      int64           // ID пакета
	StaticAddonIDs []int64         // Включенные static-дополнения
	DynamicValues  map[int64]int64 // Значения quantity/range дополнений
	DiscountCode   *string         // Промокод (опционально)
	EventDate      time.Time       // Дата события (без времени)
	ContactName    string          // Имя клиента
	ContactEmail   string          // Email клиента
	ContactPhone   string          // Телефон клиента
	Notes          *string         // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64     // ID созданного бронирования
	ClientID  string    // Идентификатор клиента
	PackageID int64     // ID пакета
	EventDate time.Time // Дата события
	Status    string    // Статус бронирования

	// Денормализованный расчет
	PackageName      string
	TotalPrice       decimal.Decimal // до скидки
	FinalPrice       decimal.Decimal // после скидки
	DepositAmount    decimal.Decimal
	DiscountCode     *string
	SelectionSummary []string // человекочитаемые строки выбора

	CreatedAt time.Time
	UpdatedAt time.Time
}
