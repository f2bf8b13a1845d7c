package models

import "github.com/m04kA/WVG-BookingService/internal/domain"

// DiscountResponse подтвержденная скидка: ровно то, что нужно движку цен
type DiscountResponse struct {
	Code  string `json:"code"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// FromDomainDiscount конвертирует domain модель в DTO
func FromDomainDiscount(d *domain.Discount) *DiscountResponse {
	return &DiscountResponse{
		Code:  d.Code,
		Kind:  string(d.Kind),
		Value: d.Value.StringFixed(domain.CurrencyScale),
	}
}
