package twin

import (
	"github.com/wellbeamhq/pulse/internal/twin/service"
	"go.uber.org/fx"
)

var Module = fx.Module("twin.service",
	fx.Provide(service.New),
)
