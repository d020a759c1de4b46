// Copyright (c) 2026, CCS Gateway Operations.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

//go:build wireinject
// +build wireinject

package wiring

import (
	"gorm.io/gorm"

	"github.com/google/wire"

	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/controllers"
	"github.com/ccsops/gateway-console-service/repositories"
	"github.com/ccsops/gateway-console-service/services"
)

var configProviderSet = wire.NewSet(
	ProvideConfigFromPtr,
	ProvideAdminConfig,
	ProvideGatewayHostsConfig,
	ProvideHealthCheckConfig,
	ProvideTrackerConfig,
	ProvideDefaultCountry,
)

var clientProviderSet = wire.NewSet(
	ProvideGatewayClient,
	ProvideTrackerClient,
)

var repositoryProviderSet = wire.NewSet(
	repositories.NewDefinitionRepo,
	repositories.NewTicketRepo,
	repositories.NewCertRepo,
)

var serviceProviderSet = wire.NewSet(
	services.NewCatalogService,
	services.NewRouteService,
	services.NewHealthService,
	services.NewTicketService,
	services.NewSessionManager,
	services.NewTokenIssuer,
	services.NewCertService,
)

var controllerProviderSet = wire.NewSet(
	controllers.NewDefinitionController,
	controllers.NewRouteController,
	controllers.NewHealthController,
	controllers.NewTicketController,
	controllers.NewSessionController,
	controllers.NewTokenController,
	controllers.NewCertController,
)

var loggerProviderSet = wire.NewSet(
	ProvideLogger,
)

func InitializeAppParams(cfg *config.Config, db *gorm.DB, hostMap config.GatewayHostMap) (*AppParams, error) {
	wire.Build(
		configProviderSet,
		clientProviderSet,
		repositoryProviderSet,
		serviceProviderSet,
		controllerProviderSet,
		loggerProviderSet,
		wire.Struct(new(AppParams), "*"),
	)
	return &AppParams{}, nil
}
