package domain

// Бизнес-ограничения
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxContactNameLength        = 120
	MaxDiscountCodeLength       = 64
)

// Формат дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// CurrencyScale количество знаков минорной единицы валюты
const CurrencyScale = 2

// InactiveStatuses список статусов неактивных бронирований
// Используется при фильтрации выборок по умолчанию
var InactiveStatuses = []BookingStatus{
	StatusCancelledByClient,
	StatusCancelledByStudio,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
