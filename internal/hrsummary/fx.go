package hrsummary

import (
	"github.com/wellbeamhq/pulse/internal/hrsummary/service"
	"go.uber.org/fx"
)

var Module = fx.Module("hrsummary.service",
	fx.Provide(service.New),
)
