package quote_price

import (
	"github.com/m04kA/WVG-BookingService/internal/domain"
	"github.com/m04kA/WVG-BookingService/internal/pricing"
	discountModels "github.com/m04kA/WVG-BookingService/internal/service/discounts/models"
	quotePrice "github.com/m04kA/WVG-BookingService/internal/usecase/quote_price"
)

// QuoteRequest HTTP request model
// Сырое состояние калькулятора: сервер сам клампит значения и отбрасывает
// неизвестные ID
type QuoteRequest struct {
	PackageID      int64           `json:"packageId"`
	StaticAddonIDs []int64         `json:"staticAddonIds,omitempty"`
	DynamicValues  map[int64]int64 `json:"dynamicValues,omitempty"`
	DiscountCode   *string         `json:"discountCode,omitempty"`
}

// LineItemResponse строка расшифровки расчета
type LineItemResponse struct {
	AddonID  int64  `json:"addonId,omitempty"`
	Name     string `json:"name"`
	Value    *int64 `json:"value,omitempty"`
	UnitName string `json:"unitName,omitempty"`
	Locked   bool   `json:"locked,omitempty"`
	Amount   string `json:"amount"`
	Label    string `json:"label"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	PackageID     int64                            `json:"packageId"`
	PackageName   string                           `json:"packageName"`
	TotalPrice    string                           `json:"totalPrice"`
	FinalPrice    string                           `json:"finalPrice"`
	DepositAmount string                           `json:"depositAmount"`
	Discount      *discountModels.DiscountResponse `json:"discount,omitempty"`
	LineItems     []LineItemResponse               `json:"lineItems"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() *quotePrice.Request {
	return &quotePrice.Request{
		PackageID:      r.PackageID,
		StaticAddonIDs: r.StaticAddonIDs,
		DynamicValues:  r.DynamicValues,
		DiscountCode:   r.DiscountCode,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quotePrice.Response) *QuoteResponse {
	out := &QuoteResponse{
		PackageID:     resp.PackageID,
		PackageName:   resp.PackageName,
		TotalPrice:    resp.TotalPrice.StringFixed(domain.CurrencyScale),
		FinalPrice:    resp.FinalPrice.StringFixed(domain.CurrencyScale),
		DepositAmount: resp.DepositAmount.StringFixed(domain.CurrencyScale),
		LineItems:     fromLineItems(resp.LineItems),
	}

	if resp.Discount != nil {
		out.Discount = discountModels.FromDomainDiscount(resp.Discount)
	}

	return out
}

func fromLineItems(items []pricing.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, len(items))
	for i, item := range items {
		out[i] = LineItemResponse{
			AddonID:  item.AddonID,
			Name:     item.Name,
			Value:    item.Value,
			UnitName: item.UnitName,
			Locked:   item.Locked,
			Amount:   item.Amount.StringFixed(domain.CurrencyScale),
			Label:    item.String(),
		}
	}
	return out
}
