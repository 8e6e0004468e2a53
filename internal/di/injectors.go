//go:build wireinject
// +build wireinject

package di

import (
	"admgate/internal"
	"admgate/internal/charts"
	"admgate/internal/controllers"
	"admgate/internal/gateway"
	"admgate/internal/providers"
	"admgate/internal/render"
	"admgate/internal/sections"
	"admgate/internal/structures"
	"admgate/internal/upstream"

	wire "github.com/google/wire"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		charts.NewRegistry,
		wire.Bind(new(providers.ChartSlotCounter), new(*charts.Registry)),

		upstream.NewClient,
		sections.NewService,
		render.NewRenderer,
		gateway.NewScheduler,
		controllers.NewDashboardController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
