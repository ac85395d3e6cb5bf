package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/wellbeamhq/pulse/internal/clock"
	"github.com/wellbeamhq/pulse/internal/config"
	"github.com/wellbeamhq/pulse/internal/migration"
	"github.com/wellbeamhq/pulse/internal/observability"
	"github.com/wellbeamhq/pulse/internal/server"
	"github.com/wellbeamhq/pulse/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core infrastructure
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,
		migration.Module,

		// HTTP surface; pulls in the domain modules.
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
