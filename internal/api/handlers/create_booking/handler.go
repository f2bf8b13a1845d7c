package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/WVG-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/WVG-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты события, ожидается YYYY-MM-DD"
	msgInvalidEventDate   = "некорректная дата события"
	msgInvalidInput       = "некорректные данные заявки"
	msgPackageNotFound    = "пакет не найден"
	msgDiscountNotFound   = "промокод не найден"
	msgDiscountNotUsable  = "промокод не может быть применен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse event date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid event date: package_id=%d, error=%v", req.PackageID, err)
			handlers.RespondBadRequest(w, msgInvalidEventDate)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: package_id=%d, error=%v", req.PackageID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrDiscountNotFound):
			h.logger.Warn("POST /bookings - Discount not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, createBooking.ErrDiscountNotUsable):
			h.logger.Warn("POST /bookings - Discount not usable: package_id=%d, error=%v", req.PackageID, err)
			handlers.RespondError(w, http.StatusConflict, msgDiscountNotUsable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: package_id=%d, error=%v", req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, client_id=%s, package_id=%d",
		result.ID, result.ClientID, result.PackageID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
