package controllers_fx

import (
	"go.uber.org/fx"

	"weekplan/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewPlanController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewProfileController),
)
