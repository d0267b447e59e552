//go:build wireinject
// +build wireinject

package di

import (
	"hoteladmin/config"
	"hoteladmin/infras/backend"
	"hoteladmin/infras/otel"
	"hoteladmin/infras/redis"
	"hoteladmin/internal/domains"
	consoleHandler "hoteladmin/internal/handlers/console"
	panelHandler "hoteladmin/internal/handlers/panel"
	"hoteladmin/internal/panel"
	"hoteladmin/shared/cache"
	"hoteladmin/transport/http"
	"hoteladmin/transport/http/middleware"
	"hoteladmin/transport/http/router"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	backend.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var panelDomain = wire.NewSet(
	domains.NewRegistry,
	panel.NewStore,
	panel.NewService,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	consoleHandler.New,
	panelHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		panelDomain,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}
