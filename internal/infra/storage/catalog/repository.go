package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"

	"github.com/m04kA/WVG-BookingService/internal/domain"
	"github.com/m04kA/WVG-BookingService/pkg/dbmetrics"
	"github.com/m04kA/WVG-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий каталога: категории, пакеты, дополнения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetCatalog загружает полное предложение студии
func (r *Repository) GetCatalog(ctx context.Context) (*domain.Catalog, error) {
	categories, err := r.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	addons, err := r.ListAddons(ctx)
	if err != nil {
		return nil, err
	}

	packages, err := r.listPackages(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &domain.Catalog{
		Categories: categories,
		Packages:   packages,
		Addons:     addons,
	}, nil
}

// GetPackageByID получает пакет вместе с базовым составом
func (r *Repository) GetPackageByID(ctx context.Context, id int64) (*domain.Package, error) {
	packages, err := r.listPackages(ctx, &id)
	if err != nil {
		return nil, err
	}
	if len(packages) == 0 {
		return nil, ErrPackageNotFound
	}
	return packages[0], nil
}

// ListCategories получает категории каталога в порядке отображения
func (r *Repository) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "sort_order").
		From("categories").
		OrderBy("sort_order ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListCategories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: ListCategories - scan row: %v", ErrScanRow, err)
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListCategories - rows error: %v", ErrScanRow, err)
	}

	return categories, nil
}

// ListAddons получает все дополнения каталога
func (r *Repository) ListAddons(ctx context.Context) ([]*domain.Addon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"kind",
		"base_price",
		"unit_name",
		"price_per_unit",
		"included_amount",
		"block_size",
		"price_per_block",
		"max_amount",
		"sort_order",
	).
		From("addons").
		OrderBy("sort_order ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddons - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAddons - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons := make([]*domain.Addon, 0)
	for rows.Next() {
		addon, err := scanAddon(rows)
		if err != nil {
			return nil, err
		}
		addons = append(addons, addon)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListAddons - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}

// listPackages получает пакеты с их базовым составом
// Если id != nil, возвращает только указанный пакет
func (r *Repository) listPackages(ctx context.Context, id *int64) ([]*domain.Package, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"category_id",
		"name",
		"description",
		"base_price",
		"deposit_amount",
		"sort_order",
	).
		From("packages").
		OrderBy("sort_order ASC, id ASC")

	if id != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"id": *id})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listPackages - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listPackages - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	packages := make([]*domain.Package, 0)
	byID := make(map[int64]*domain.Package)

	for rows.Next() {
		var pkg domain.Package
		err := rows.Scan(
			&pkg.ID,
			&pkg.CategoryID,
			&pkg.Name,
			&pkg.Description,
			&pkg.BasePrice,
			&pkg.DepositAmount,
			&pkg.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: listPackages - scan row: %v", ErrScanRow, err)
		}
		pkg.Included = make([]domain.PackageAddon, 0)
		packages = append(packages, &pkg)
		byID[pkg.ID] = &pkg
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: listPackages - rows error: %v", ErrScanRow, err)
	}

	if len(packages) == 0 {
		return packages, nil
	}

	if err := r.loadIncluded(ctx, byID); err != nil {
		return nil, err
	}

	return packages, nil
}

// loadIncluded подтягивает базовый состав для набора пакетов
func (r *Repository) loadIncluded(ctx context.Context, byID map[int64]*domain.Package) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	packageIDs := make([]int64, 0, len(byID))
	for id := range byID {
		packageIDs = append(packageIDs, id)
	}

	query, args, err := psqlbuilder.Select("package_id", "addon_id", "locked").
		From("package_addons").
		Where(squirrel.Eq{"package_id": packageIDs}).
		OrderBy("package_id ASC, sort_order ASC, addon_id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadIncluded - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadIncluded - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var packageID int64
		var pa domain.PackageAddon
		if err := rows.Scan(&packageID, &pa.AddonID, &pa.Locked); err != nil {
			return fmt.Errorf("%w: loadIncluded - scan row: %v", ErrScanRow, err)
		}
		if pkg, ok := byID[packageID]; ok {
			pkg.Included = append(pkg.Included, pa)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadIncluded - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanAddon собирает дополнение из строки результата
// Конфигурация строится только для динамических видов; для static
// конфигурационные колонки NULL и Config остается nil
func scanAddon(rows *sql.Rows) (*domain.Addon, error) {
	var (
		addon          domain.Addon
		kind           string
		unitName       sql.NullString
		pricePerUnit   decimal.NullDecimal
		includedAmount sql.NullInt64
		blockSize      sql.NullInt64
		pricePerBlock  decimal.NullDecimal
		maxAmount      sql.NullInt64
	)

	err := rows.Scan(
		&addon.ID,
		&addon.Name,
		&kind,
		&addon.BasePrice,
		&unitName,
		&pricePerUnit,
		&includedAmount,
		&blockSize,
		&pricePerBlock,
		&maxAmount,
		&addon.SortOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanAddon - scan row: %v", ErrScanRow, err)
	}

	addon.Kind = domain.AddonKind(kind)

	if addon.IsDynamic() && unitName.Valid {
		addon.Config = &domain.AddonConfig{
			UnitName:       unitName.String,
			PricePerUnit:   pricePerUnit.Decimal,
			IncludedAmount: includedAmount.Int64,
			BlockSize:      blockSize.Int64,
			PricePerBlock:  pricePerBlock.Decimal,
			MaxAmount:      maxAmount.Int64,
		}
	}

	return &addon, nil
}
