package get_client_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/WVG-BookingService/internal/api/handlers"
	"github.com/m04kA/WVG-BookingService/internal/api/middleware"
	"github.com/m04kA/WVG-BookingService/internal/service/bookings"
	"github.com/m04kA/WVG-BookingService/internal/service/bookings/models"
)

const (
	msgMissingClientID = "отсутствует идентификатор клиента"
	msgForbidden       = "доступ запрещен"
	msgInvalidStatus   = "некорректный статус бронирования"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	pathClientID := vars["clientId"]

	clientID, ok := middleware.GetClientID(r.Context())
	if !ok {
		h.logger.Warn("GET /clients/{clientId}/bookings - Missing client ID")
		handlers.RespondUnauthorized(w, msgMissingClientID)
		return
	}

	// Клиент видит только собственную историю
	if pathClientID != clientID {
		h.logger.Warn("GET /clients/{clientId}/bookings - Access denied: path_client_id=%s, client_id=%s",
			pathClientID, clientID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	status := r.URL.Query().Get("status")
	var statusPtr *string
	if status != "" {
		statusPtr = &status
	}

	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	serviceReq := &models.GetClientBookingsRequest{
		ClientID:        clientID,
		Status:          statusPtr,
		IncludeInactive: includeInactive,
	}

	result, err := h.service.GetClientBookings(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /clients/{clientId}/bookings - Invalid status filter: client_id=%s, status=%s",
				clientID, status)
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /clients/{clientId}/bookings - Failed to get bookings: client_id=%s, error=%v",
			clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /clients/{clientId}/bookings - Bookings retrieved successfully: client_id=%s, count=%d",
		clientID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
