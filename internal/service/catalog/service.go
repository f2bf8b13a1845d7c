package catalog

import (
	"context"
	"fmt"

	"github.com/m04kA/WVG-BookingService/internal/service/catalog/models"
)

// Service сервис каталога предложения студии
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetCatalog возвращает полное предложение: категории, пакеты и все дополнения
// Состав пакетов ссылается на дополнения из allAddons
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	catalog, err := s.catalogRepo.GetCatalog(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCatalog: fetched %d categories, %d packages, %d addons",
		len(catalog.Categories), len(catalog.Packages), len(catalog.Addons))
	return models.FromDomainCatalog(catalog), nil
}
