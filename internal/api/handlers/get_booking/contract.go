package get_booking

import (
	"context"

	"github.com/m04kA/WVG-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id int64, clientID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
