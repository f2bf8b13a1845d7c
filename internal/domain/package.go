package domain

import "github.com/shopspring/decimal"

// PackageAddon дополнение в составе пакета
// Locked: обязательная позиция, входит в базовую цену и не может быть убрана
type PackageAddon struct {
	AddonID int64
	Locked  bool
}

// Package пакет услуг видеосъемки
type Package struct {
	ID            int64
	CategoryID    int64
	Name          string
	Description   string
	BasePrice     decimal.Decimal
	DepositAmount decimal.Decimal // информационно, в итоговую цену не входит
	Included      []PackageAddon  // базовый состав пакета, в порядке отображения
	SortOrder     int
}

// IncludedAddon возвращает позицию состава пакета по ID дополнения
func (p *Package) IncludedAddon(addonID int64) (PackageAddon, bool) {
	for _, pa := range p.Included {
		if pa.AddonID == addonID {
			return pa, true
		}
	}
	return PackageAddon{}, false
}

// Includes проверяет, входит ли дополнение в базовый состав пакета
func (p *Package) Includes(addonID int64) bool {
	_, ok := p.IncludedAddon(addonID)
	return ok
}

// IsLocked проверяет, является ли дополнение обязательным для пакета
func (p *Package) IsLocked(addonID int64) bool {
	pa, ok := p.IncludedAddon(addonID)
	return ok && pa.Locked
}

// Category группа пакетов в каталоге (например, "Film ślubny", "Teledysk")
type Category struct {
	ID        int64
	Name      string
	SortOrder int
}

// Catalog полное предложение студии: категории, пакеты и все дополнения
type Catalog struct {
	Categories []*Category
	Packages   []*Package
	Addons     []*Addon
}

// AddonIndex строит lookup дополнений по ID
func (c *Catalog) AddonIndex() map[int64]*Addon {
	index := make(map[int64]*Addon, len(c.Addons))
	for _, a := range c.Addons {
		index[a.ID] = a
	}
	return index
}

// PackageByID возвращает пакет каталога по ID
func (c *Catalog) PackageByID(id int64) (*Package, bool) {
	for _, p := range c.Packages {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}
