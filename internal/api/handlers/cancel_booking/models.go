package cancel_booking

import (
	"github.com/m04kA/WVG-BookingService/internal/service/bookings/models"
)

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(clientID string) *models.CancelBookingRequest {
	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelBookingRequest{
		ClientID:           clientID,
		CancellationReason: reason,
	}
}
