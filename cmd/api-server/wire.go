//go:build wireinject
// +build wireinject

package main

import (
	"Tube/config"
	"Tube/dao"
	"Tube/handler"
	"Tube/pkg/client"
	"Tube/pkg/database"
	"Tube/pkg/server"
	"Tube/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		server.NewGinEngine,
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Subscription), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Video), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
