package quote_price

import (
	"errors"
	"net/http"

	"github.com/m04kA/WVG-BookingService/internal/api/handlers"
	quotePrice "github.com/m04kA/WVG-BookingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры расчета"
	msgPackageNotFound    = "пакет не найден"
	msgDiscountNotFound   = "промокод не найден"
	msgDiscountNotUsable  = "промокод не может быть применен"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quote - Invalid input: package_id=%d, error=%v", req.PackageID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePrice.ErrPackageNotFound):
			h.logger.Warn("POST /quote - Package not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, quotePrice.ErrDiscountNotFound):
			h.logger.Warn("POST /quote - Discount not found: package_id=%d", req.PackageID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, quotePrice.ErrDiscountNotUsable):
			h.logger.Warn("POST /quote - Discount not usable: package_id=%d, error=%v", req.PackageID, err)
			handlers.RespondError(w, http.StatusConflict, msgDiscountNotUsable)

		default:
			h.logger.Error("POST /quote - Failed to compute quote: package_id=%d, error=%v", req.PackageID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quote - Quote computed successfully: package_id=%d, total=%s, final=%s",
		result.PackageID, result.TotalPrice, result.FinalPrice)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
