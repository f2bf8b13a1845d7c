package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/WVG-BookingService/internal/domain"
)

// validateRequest проверяет входные данные запроса на оформление
func (uc *UseCase) validateRequest(req *Request) error {
	if req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	if err := uc.validateEventDate(req.EventDate); err != nil {
		return err
	}

	name := strings.TrimSpace(req.ContactName)
	if name == "" {
		return fmt.Errorf("%w: contact name is required", ErrInvalidInput)
	}
	if len(name) > domain.MaxContactNameLength {
		return fmt.Errorf("%w: contact name exceeds %d characters", ErrInvalidInput, domain.MaxContactNameLength)
	}

	email := strings.TrimSpace(req.ContactEmail)
	if email == "" {
		return fmt.Errorf("%w: contact email is required", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: contact email is malformed", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ContactPhone) == "" {
		return fmt.Errorf("%w: contact phone is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.DiscountCode != nil && len(*req.DiscountCode) > domain.MaxDiscountCodeLength {
		return fmt.Errorf("%w: discount code exceeds %d characters", ErrInvalidInput, domain.MaxDiscountCodeLength)
	}

	return nil
}

// validateEventDate проверяет, что дата события задана и не в прошлом.
// Сравнение идет по календарным дням: бронь на сегодня допустима
func (uc *UseCase) validateEventDate(eventDate time.Time) error {
	if eventDate.IsZero() {
		return fmt.Errorf("%w: event date is required", ErrInvalidDate)
	}

	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	event := time.Date(eventDate.Year(), eventDate.Month(), eventDate.Day(), 0, 0, 0, 0, time.UTC)

	if event.Before(today) {
		return fmt.Errorf("%w: event date %s is in the past", ErrInvalidDate, event.Format(domain.DateFormat))
	}

	return nil
}
