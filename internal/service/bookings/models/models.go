package models

import (
	"errors"
	"time"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	ClientID           string `json:"clientId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetClientBookingsRequest запрос на получение бронирований клиента
type GetClientBookingsRequest struct {
	ClientID        string  `json:"clientId"`
	Status          *string `json:"status,omitempty"`
	IncludeInactive bool    `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetClientBookingsRequest) ToDomainFilter() (domain.ClientBookingsFilter, error) {
	filter := domain.ClientBookingsFilter{
		ClientID:        r.ClientID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	ClientID  string `json:"clientId"`
	PackageID int64  `json:"packageId"`
	EventDate string `json:"eventDate"` // "2026-09-12"
	Status    string `json:"status"`

	// Денормализованный расчет на момент оформления
	PackageName      string   `json:"packageName"`
	TotalPrice       string   `json:"totalPrice"`
	FinalPrice       string   `json:"finalPrice"`
	DepositAmount    string   `json:"depositAmount"`
	DiscountCode     *string  `json:"discountCode,omitempty"`
	SelectionSummary []string `json:"selectionSummary"`

	ContactName  string  `json:"contactName"`
	ContactEmail string  `json:"contactEmail"`
	ContactPhone string  `json:"contactPhone"`
	Notes        *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:               b.ID,
		ClientID:         b.ClientID,
		PackageID:        b.PackageID,
		EventDate:        b.EventDate.Format(domain.DateFormat),
		Status:           string(b.Status),
		PackageName:      b.PackageName,
		TotalPrice:       b.TotalPrice.StringFixed(domain.CurrencyScale),
		FinalPrice:       b.FinalPrice.StringFixed(domain.CurrencyScale),
		DepositAmount:    b.DepositAmount.StringFixed(domain.CurrencyScale),
		DiscountCode:     b.DiscountCode,
		SelectionSummary: b.SelectionSummary,
		ContactName:      b.ContactName,
		ContactEmail:     b.ContactEmail,
		ContactPhone:     b.ContactPhone,
		Notes:            b.Notes,

		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if resp.SelectionSummary == nil {
		resp.SelectionSummary = []string{}
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByClient,
		domain.StatusCancelledByStudio,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
