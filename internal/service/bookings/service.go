package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/WVG-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/WVG-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит только собственные бронирования
func (s *Service) GetByID(ctx context.Context, id int64, clientID string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for client=%s", id, clientID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.ClientID != clientID {
		s.logger.Warn("GetByID: access denied for client=%s to booking id=%d", clientID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetClientBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetClientBookings(ctx context.Context, req *models.GetClientBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClientBookings: fetching bookings for client=%s, status=%v", req.ClientID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetClientBookings: invalid status filter for client=%s", req.ClientID)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByClientWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClientBookings: repository error for client=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: GetClientBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClientBookings: successfully fetched %d bookings for client=%s", len(bookings), req.ClientID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Клиент может отменить только собственное бронирование в статусе
// pending/confirmed
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by client=%s", bookingID, req.ClientID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.ClientID != req.ClientID {
		s.logger.Warn("Cancel: access denied for client=%s to cancel booking id=%d", req.ClientID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, domain.StatusCancelledByClient, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}
