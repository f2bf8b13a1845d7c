package validate_discount

import (
	"context"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

type DiscountService interface {
	Validate(ctx context.Context, code string) (*domain.Discount, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
