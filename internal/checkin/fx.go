package checkin

import (
	"github.com/wellbeamhq/pulse/internal/checkin/repository"
	"github.com/wellbeamhq/pulse/internal/checkin/service"
	"go.uber.org/fx"
)

var Module = fx.Module("checkin.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
