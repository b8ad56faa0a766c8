package profile_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"esale/internal/repositories"
	"esale/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepositoryInterface {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepositoryInterface) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo)
}
