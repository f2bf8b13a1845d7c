package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	discountstore "github.com/m04kA/WVG-BookingService/internal/infra/storage/discount"
	"github.com/m04kA/WVG-BookingService/internal/integrations/clientservice"
	"github.com/m04kA/WVG-BookingService/internal/pricing"
	discountsSvc "github.com/m04kA/WVG-BookingService/internal/service/discounts"
	"github.com/m04kA/WVG-BookingService/pkg/ptr"
)

// UseCase use case оформления бронирования
// Цена никогда не берется из запроса: итог пересчитывается на сервере
// от снапшота каталога, промокод перепроверяется, а инкремент его
// использований и создание записи идут в одной serializable-транзакции
type UseCase struct {
	catalogRepo       CatalogRepository
	bookingRepo       BookingRepository
	discountValidator DiscountValidator
	discountRepo      DiscountRepository
	clientService     ClientServiceClient
	txManager         TransactionManager
	timeProvider      TimeProvider
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	bookingRepo BookingRepository,
	discountValidator DiscountValidator,
	discountRepo DiscountRepository,
	clientService ClientServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:       catalogRepo,
		bookingRepo:       bookingRepo,
		discountValidator: discountValidator,
		discountRepo:      discountRepo,
		clientService:     clientService,
		txManager:         txManager,
		timeProvider:      timeProvider,
		logger:            logger,
	}
}

// Execute оформляет бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validateRequest(req); err != nil {
		return nil, err
	}

	catalog, err := uc.catalogRepo.GetCatalog(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	pkg, ok := catalog.PackageByID(req.PackageID)
	if !ok {
		uc.logger.Warn("CreateBooking: package id=%d not found", req.PackageID)
		return nil, ErrPackageNotFound
	}

	index := catalog.AddonIndex()
	sel := pricing.NewSelectionFromRaw(pkg, req.StaticAddonIDs, req.DynamicValues, index)

	total := pricing.ComputeTotal(pkg, sel, index)
	final := total

	var discount *domain.Discount
	if req.DiscountCode != nil && strings.TrimSpace(*req.DiscountCode) != "" {
		discount, err = uc.validateDiscount(ctx, *req.DiscountCode)
		if err != nil {
			return nil, err
		}
		final = pricing.ApplyDiscount(total, discount)
	}

	clientID, err := uc.resolveClientID(ctx, req)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ClientID:         clientID,
		PackageID:        pkg.ID,
		EventDate:        req.EventDate,
		Status:           domain.StatusPending,
		PackageName:      pkg.Name,
		TotalPrice:       total,
		FinalPrice:       final,
		DepositAmount:    pkg.DepositAmount,
		SelectionSummary: pricing.SummaryStrings(pricing.BuildLineItems(pkg, sel, index)),
		ContactName:      strings.TrimSpace(req.ContactName),
		ContactEmail:     strings.TrimSpace(req.ContactEmail),
		ContactPhone:     strings.TrimSpace(req.ContactPhone),
		Notes:            req.Notes,
	}
	if discount != nil {
		booking.DiscountCode = ptr.Ptr(discount.Code)
	}

	var created *domain.Booking
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if discount != nil {
			if err := uc.discountRepo.IncrementUsage(txCtx, discount.Code); err != nil {
				if errors.Is(err, discountstore.ErrUsageLimitReached) {
					return fmt.Errorf("%w: usage limit reached", ErrDiscountNotUsable)
				}
				return fmt.Errorf("%w: failed to increment discount usage: %v", ErrInternal, err)
			}
		}

		var createErr error
		created, createErr = uc.bookingRepo.Create(txCtx, booking)
		if createErr != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, createErr)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrDiscountNotUsable) {
			uc.logger.Warn("CreateBooking: discount exhausted during checkout: %v", err)
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d client=%s package=%d final=%s",
		created.ID, created.ClientID, created.PackageID, created.FinalPrice)

	return buildResponse(created), nil
}

// resolveClientID регистрирует клиента во внешнем сервисе клиентов.
// При недоступности сервиса идентификатор генерируется локально,
// оформление не блокируется
func (uc *UseCase) resolveClientID(ctx context.Context, req *Request) (string, error) {
	client, err := uc.clientService.RegisterClientWithGracefulDegradation(ctx, &clientservice.RegisterClientRequest{
		Name:  strings.TrimSpace(req.ContactName),
		Email: strings.TrimSpace(req.ContactEmail),
		Phone: strings.TrimSpace(req.ContactPhone),
	})
	if err != nil {
		if errors.Is(err, clientservice.ErrServiceDegraded) {
			localID := uuid.NewString()
			uc.logger.Warn("CreateBooking: clientservice unavailable, generated local client id=%s", localID)
			return localID, nil
		}
		uc.logger.Error("CreateBooking: client registration failed: %v", err)
		return "", fmt.Errorf("%w: client registration failed: %v", ErrInternal, err)
	}
	return client.ID, nil
}

// validateDiscount проверяет промокод через сервис скидок и мапит
// ошибки сервиса в ошибки usecase
func (uc *UseCase) validateDiscount(ctx context.Context, code string) (*domain.Discount, error) {
	discount, err := uc.discountValidator.Validate(ctx, code)
	if err != nil {
		switch {
		case errors.Is(err, discountsSvc.ErrDiscountNotFound):
			uc.logger.Warn("CreateBooking: discount code=%s not found", code)
			return nil, ErrDiscountNotFound
		case errors.Is(err, discountsSvc.ErrDiscountInactive),
			errors.Is(err, discountsSvc.ErrDiscountExpired),
			errors.Is(err, discountsSvc.ErrDiscountExhausted),
			errors.Is(err, discountsSvc.ErrInvalidInput):
			uc.logger.Warn("CreateBooking: discount code=%s not usable: %v", code, err)
			return nil, fmt.Errorf("%w: %v", ErrDiscountNotUsable, err)
		default:
			uc.logger.Error("CreateBooking: discount validation failed for code=%s: %v", code, err)
			return nil, fmt.Errorf("%w: discount validation failed: %v", ErrInternal, err)
		}
	}
	return discount, nil
}

func buildResponse(booking *domain.Booking) *Response {
	return &Response{
		ID:               booking.ID,
		ClientID:         booking.ClientID,
		PackageID:        booking.PackageID,
		EventDate:        booking.EventDate,
		Status:           string(booking.Status),
		PackageName:      booking.PackageName,
		TotalPrice:       booking.TotalPrice,
		FinalPrice:       booking.FinalPrice,
		DepositAmount:    booking.DepositAmount,
		DiscountCode:     booking.DiscountCode,
		SelectionSummary: booking.SelectionSummary,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}
