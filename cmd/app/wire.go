//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/anvitha/outfit-advisor/internal/bootstrap"
	"github.com/anvitha/outfit-advisor/internal/domain/auth"
	"github.com/anvitha/outfit-advisor/internal/domain/recommender"
	"github.com/anvitha/outfit-advisor/internal/infra/config"
	httpiface "github.com/anvitha/outfit-advisor/internal/interface/http"
	"github.com/anvitha/outfit-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAuthConfig,
		provideRecommenderConfig,
		provideUserRepository,
		provideCatalogRepository,
		provideTrendStore,
		provideImageStore,
		auth.NewService,
		recommender.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
