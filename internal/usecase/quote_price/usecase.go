package quote_price

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	"github.com/m04kA/WVG-BookingService/internal/pricing"
	discountsSvc "github.com/m04kA/WVG-BookingService/internal/service/discounts"
)

// UseCase use case расчета цены пакета
// Вызывается калькулятором на каждое изменение выбора: итог всегда
// пересчитывается целиком от снапшота каталога, без инкрементальных правок
type UseCase struct {
	catalogRepo       CatalogRepository
	discountValidator DiscountValidator
	logger            Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	discountValidator DiscountValidator,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:       catalogRepo,
		discountValidator: discountValidator,
		logger:            logger,
	}
}

// Execute выполняет расчет цены
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.PackageID <= 0 {
		return nil, fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	catalog, err := uc.catalogRepo.GetCatalog(ctx)
	if err != nil {
		uc.logger.Error("QuotePrice: failed to load catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load catalog: %v", ErrInternal, err)
	}

	pkg, ok := catalog.PackageByID(req.PackageID)
	if !ok {
		uc.logger.Warn("QuotePrice: package id=%d not found", req.PackageID)
		return nil, ErrPackageNotFound
	}

	index := catalog.AddonIndex()
	sel := pricing.NewSelectionFromRaw(pkg, req.StaticAddonIDs, req.DynamicValues, index)

	total := pricing.ComputeTotal(pkg, sel, index)
	final := total

	var discount *domain.Discount
	if req.DiscountCode != nil && *req.DiscountCode != "" {
		discount, err = uc.validateDiscount(ctx, *req.DiscountCode)
		if err != nil {
			return nil, err
		}
		final = pricing.ApplyDiscount(total, discount)
	}

	uc.logger.Info("QuotePrice: package=%d total=%s final=%s", pkg.ID, total, final)

	return &Response{
		PackageID:     pkg.ID,
		PackageName:   pkg.Name,
		TotalPrice:    total,
		FinalPrice:    final,
		DepositAmount: pkg.DepositAmount,
		Discount:      discount,
		LineItems:     pricing.BuildLineItems(pkg, sel, index),
	}, nil
}

// validateDiscount проверяет промокод через сервис скидок и мапит
// ошибки сервиса в ошибки usecase
func (uc *UseCase) validateDiscount(ctx context.Context, code string) (*domain.Discount, error) {
	discount, err := uc.discountValidator.Validate(ctx, code)
	if err != nil {
		switch {
		case errors.Is(err, discountsSvc.ErrDiscountNotFound):
			uc.logger.Warn("QuotePrice: discount code=%s not found", code)
			return nil, ErrDiscountNotFound
		case errors.Is(err, discountsSvc.ErrDiscountInactive),
			errors.Is(err, discountsSvc.ErrDiscountExpired),
			errors.Is(err, discountsSvc.ErrDiscountExhausted),
			errors.Is(err, discountsSvc.ErrInvalidInput):
			uc.logger.Warn("QuotePrice: discount code=%s not usable: %v", code, err)
			return nil, fmt.Errorf("%w: %v", ErrDiscountNotUsable, err)
		default:
			uc.logger.Error("QuotePrice: discount validation failed for code=%s: %v", code, err)
			return nil, fmt.Errorf("%w: discount validation failed: %v", ErrInternal, err)
		}
	}
	return discount, nil
}
