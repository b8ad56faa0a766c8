package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"esale/internal/repositories"
	"esale/internal/services"
)

var Module = fx.Provide(
	provideServiceRepo, provideCatalogService)

func provideServiceRepo(db *gorm.DB) repositories.ServiceRepositoryInterface {
	return repositories.NewServiceRepository(db)
}

func provideCatalogService(serviceRepo repositories.ServiceRepositoryInterface) services.CatalogServiceInterface {
	return services.NewCatalogService(serviceRepo)
}
