package server

import (
	"github.com/google/wire"

	"github.com/iWorld-y/place_radar/app/display/internal/service"
	"github.com/iWorld-y/place_radar/app/display/internal/usecase"
	"github.com/iWorld-y/place_radar/app/place_radar/pkg/search/factory"
)

// ProviderSet 是展示服务的依赖注入 Provider 集合
var ProviderSet = wire.NewSet(
	// Server providers
	NewHTTPServer,

	// Radar providers
	NewRadarConfig,
	NewLimiter,
	factory.NewSearcher,

	// UseCase providers
	usecase.NewSearchUseCase,

	// Service providers
	service.NewDisplayService,
)
