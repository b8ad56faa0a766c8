package controllers_fx

import (
	"go.uber.org/fx"

	"esale/internal/api/controllers"
)

var Module = fx.Provide(
	controllers.NewServicesController,
	controllers.NewBasketsController,
	controllers.NewTransactionsController,
	controllers.NewProfilesController,
)
