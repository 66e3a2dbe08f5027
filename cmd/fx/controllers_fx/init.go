package controllers_fx

import (
	"go.uber.org/fx"

	"clausemap/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewProvincesController),
	fx.Provide(controllers.NewMapLayersController),
	fx.Provide(controllers.NewPageController))
