package discounts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	discountRepo "github.com/m04kA/WVG-BookingService/internal/infra/storage/discount"
)

// Service сервис валидации промокодов
// Движок цен валидностью не занимается: он получает только подтвержденный
// Kind/Value из этого сервиса
type Service struct {
	discountRepo DiscountRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса промокодов
func NewService(discountRepo DiscountRepository, logger Logger) *Service {
	return &Service{
		discountRepo: discountRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Validate проверяет промокод и возвращает подтвержденную скидку
// Ошибки различают причину отказа: не найден / отключен / истек / исчерпан
func (s *Service) Validate(ctx context.Context, code string) (*domain.Discount, error) {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > domain.MaxDiscountCodeLength {
		return nil, fmt.Errorf("%w: invalid discount code", ErrInvalidInput)
	}

	d, err := s.discountRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, discountRepo.ErrDiscountNotFound) {
			s.logger.Warn("Validate: discount code=%s not found", code)
			return nil, ErrDiscountNotFound
		}
		s.logger.Error("Validate: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: Validate - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()

	switch {
	case !d.Active:
		s.logger.Warn("Validate: discount code=%s is inactive", code)
		return nil, ErrDiscountInactive
	case d.IsExpired(now):
		s.logger.Warn("Validate: discount code=%s expired at %s", code, d.ExpiresAt)
		return nil, ErrDiscountExpired
	case d.IsExhausted():
		s.logger.Warn("Validate: discount code=%s exhausted (%d uses)", code, d.UsedCount)
		return nil, ErrDiscountExhausted
	}

	s.logger.Info("Validate: discount code=%s is valid (kind=%s, value=%s)", d.Code, d.Kind, d.Value)
	return d, nil
}
