package create_booking

import (
	"time"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	createBooking "github.com/m04kA/WVG-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PackageID      int64           `json:"packageId"`
	StaticAddonIDs []int64         `json:"staticAddonIds,omitempty"`
	DynamicValues  map[int64]int64 `json:"dynamicValues,omitempty"`
	DiscountCode   *string         `json:"discountCode,omitempty"`
	EventDate      string          `json:"eventDate"` // "2026-09-12"
	ContactName    string          `json:"contactName"`
	ContactEmail   string          `json:"contactEmail"`
	ContactPhone   string          `json:"contactPhone"`
	Notes          *string         `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID               int64    `json:"id"`
	ClientID         string   `json:"clientId"`
	PackageID        int64    `json:"packageId"`
	EventDate        string   `json:"eventDate"`
	Status           string   `json:"status"`
	PackageName      string   `json:"packageName"`
	TotalPrice       string   `json:"totalPrice"`
	FinalPrice       string   `json:"finalPrice"`
	DepositAmount    string   `json:"depositAmount"`
	DiscountCode     *string  `json:"discountCode,omitempty"`
	SelectionSummary []string `json:"selectionSummary"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты)
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	eventDate, err := time.Parse(domain.DateFormat, r.EventDate)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		PackageID:      r.PackageID,
		StaticAddonIDs: r.StaticAddonIDs,
		DynamicValues:  r.DynamicValues,
		DiscountCode:   r.DiscountCode,
		EventDate:      eventDate,
		ContactName:    r.ContactName,
		ContactEmail:   r.ContactEmail,
		ContactPhone:   r.ContactPhone,
		Notes:          r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	summary := resp.SelectionSummary
	if summary == nil {
		summary = []string{}
	}

	return &BookingResponse{
		ID:               resp.ID,
		ClientID:         resp.ClientID,
		PackageID:        resp.PackageID,
		EventDate:        resp.EventDate.Format(domain.DateFormat),
		Status:           resp.Status,
		PackageName:      resp.PackageName,
		TotalPrice:       resp.TotalPrice.StringFixed(domain.CurrencyScale),
		FinalPrice:       resp.FinalPrice.StringFixed(domain.CurrencyScale),
		DepositAmount:    resp.DepositAmount.StringFixed(domain.CurrencyScale),
		DiscountCode:     resp.DiscountCode,
		SelectionSummary: summary,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
