package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountKind вид скидки
type DiscountKind string

const (
	// DiscountPercentage процент от итоговой цены
	DiscountPercentage DiscountKind = "percentage"
	// DiscountFixed фиксированная сумма
	DiscountFixed DiscountKind = "fixed"
)

// IsValid проверяет, что вид скидки известен
func (k DiscountKind) IsValid() bool {
	return k == DiscountPercentage || k == DiscountFixed
}

// Discount промокод
// Валидность (активность, срок, лимит использований) проверяет сервис скидок;
// движок цен применяет только числовой эффект Kind/Value
type Discount struct {
	Code      string
	Kind      DiscountKind
	Value     decimal.Decimal
	Active    bool
	ExpiresAt *time.Time // nil = бессрочный
	MaxUses   *int64     // nil = без лимита
	UsedCount int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsExpired проверяет срок действия промокода
func (d *Discount) IsExpired(now time.Time) bool {
	return d.ExpiresAt != nil && now.After(*d.ExpiresAt)
}

// IsExhausted проверяет лимит использований
func (d *Discount) IsExhausted() bool {
	return d.MaxUses != nil && d.UsedCount >= *d.MaxUses
}

// IsUsable проверяет, что промокод можно применить прямо сейчас
func (d *Discount) IsUsable(now time.Time) bool {
	return d.Active && !d.IsExpired(now) && !d.IsExhausted()
}
