package models

import (
	"github.com/m04kA/WVG-BookingService/internal/domain"
)

// CategoryResponse категория каталога
type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// AddonConfigResponse параметры динамического дополнения
type AddonConfigResponse struct {
	UnitName       string  `json:"unitName"`
	PricePerUnit   *string `json:"pricePerUnit,omitempty"`
	IncludedAmount *int64  `json:"includedAmount,omitempty"`
	BlockSize      *int64  `json:"blockSize,omitempty"`
	PricePerBlock  *string `json:"pricePerBlock,omitempty"`
	MaxAmount      *int64  `json:"maxAmount,omitempty"`
}

// AddonResponse дополнение каталога
type AddonResponse struct {
	ID        int64                `json:"id"`
	Name      string               `json:"name"`
	BasePrice string               `json:"basePrice"`
	Kind      string               `json:"kind"`
	Config    *AddonConfigResponse `json:"config,omitempty"`
}

// PackageAddonResponse позиция базового состава пакета
type PackageAddonResponse struct {
	AddonID int64 `json:"addonId"`
	Locked  bool  `json:"locked"`
}

// PackageResponse пакет каталога
type PackageResponse struct {
	ID            int64                  `json:"id"`
	CategoryID    int64                  `json:"categoryId"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	BasePrice     string                 `json:"basePrice"`
	DepositAmount string                 `json:"depositAmount"`
	Included      []PackageAddonResponse `json:"included"`
}

// CatalogResponse полное предложение студии
type CatalogResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Packages   []PackageResponse  `json:"packages"`
	AllAddons  []AddonResponse    `json:"allAddons"`
}

// FromDomainCatalog конвертирует domain модель в DTO
func FromDomainCatalog(c *domain.Catalog) *CatalogResponse {
	resp := &CatalogResponse{
		Categories: make([]CategoryResponse, 0, len(c.Categories)),
		Packages:   make([]PackageResponse, 0, len(c.Packages)),
		AllAddons:  make([]AddonResponse, 0, len(c.Addons)),
	}

	for _, category := range c.Categories {
		resp.Categories = append(resp.Categories, CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
		})
	}

	for _, pkg := range c.Packages {
		resp.Packages = append(resp.Packages, fromDomainPackage(pkg))
	}

	for _, addon := range c.Addons {
		resp.AllAddons = append(resp.AllAddons, fromDomainAddon(addon))
	}

	return resp
}

func fromDomainPackage(p *domain.Package) PackageResponse {
	included := make([]PackageAddonResponse, 0, len(p.Included))
	for _, pa := range p.Included {
		included = append(included, PackageAddonResponse{
			AddonID: pa.AddonID,
			Locked:  pa.Locked,
		})
	}

	return PackageResponse{
		ID:            p.ID,
		CategoryID:    p.CategoryID,
		Name:          p.Name,
		Description:   p.Description,
		BasePrice:     p.BasePrice.StringFixed(domain.CurrencyScale),
		DepositAmount: p.DepositAmount.StringFixed(domain.CurrencyScale),
		Included:      included,
	}
}

func fromDomainAddon(a *domain.Addon) AddonResponse {
	resp := AddonResponse{
		ID:        a.ID,
		Name:      a.Name,
		BasePrice: a.BasePrice.StringFixed(domain.CurrencyScale),
		Kind:      string(a.Kind),
	}

	if a.Config == nil {
		return resp
	}

	cfg := &AddonConfigResponse{UnitName: a.Config.UnitName}
	switch a.Kind {
	case domain.AddonQuantity:
		pricePerUnit := a.Config.PricePerUnit.StringFixed(domain.CurrencyScale)
		cfg.PricePerUnit = &pricePerUnit
	case domain.AddonRange:
		includedAmount := a.Config.IncludedAmount
		blockSize := a.Config.BlockSize
		pricePerBlock := a.Config.PricePerBlock.StringFixed(domain.CurrencyScale)
		maxAmount := a.Config.MaxAmount
		cfg.IncludedAmount = &includedAmount
		cfg.BlockSize = &blockSize
		cfg.PricePerBlock = &pricePerBlock
		cfg.MaxAmount = &maxAmount
	}
	resp.Config = cfg

	return resp
}
