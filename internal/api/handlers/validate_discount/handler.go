package validate_discount

import (
	"errors"
	"net/http"

	"github.com/m04kA/WVG-BookingService/internal/api/handlers"
	"github.com/m04kA/WVG-BookingService/internal/service/discounts"
	"github.com/m04kA/WVG-BookingService/internal/service/discounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCode        = "некорректный промокод"
	msgNotFound           = "промокод не найден"
	msgInactive           = "промокод отключен"
	msgExpired            = "срок действия промокода истек"
	msgExhausted          = "лимит использований промокода исчерпан"
)

type Handler struct {
	service DiscountService
	logger  Logger
}

func NewHandler(service DiscountService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/discounts/validate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ValidateDiscountRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /discounts/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	discount, err := h.service.Validate(r.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, discounts.ErrInvalidInput):
			h.logger.Warn("POST /discounts/validate - Invalid code: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCode)

		case errors.Is(err, discounts.ErrDiscountNotFound):
			h.logger.Warn("POST /discounts/validate - Discount not found: code=%s", req.Code)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, discounts.ErrDiscountInactive):
			h.logger.Warn("POST /discounts/validate - Discount inactive: code=%s", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgInactive)

		case errors.Is(err, discounts.ErrDiscountExpired):
			h.logger.Warn("POST /discounts/validate - Discount expired: code=%s", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgExpired)

		case errors.Is(err, discounts.ErrDiscountExhausted):
			h.logger.Warn("POST /discounts/validate - Discount exhausted: code=%s", req.Code)
			handlers.RespondError(w, http.StatusConflict, msgExhausted)

		default:
			h.logger.Error("POST /discounts/validate - Failed to validate discount: code=%s, error=%v", req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /discounts/validate - Discount validated successfully: code=%s", discount.Code)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainDiscount(discount))
}
