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

package wiring

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/ccsops/gateway-console-service/clients/scggateway"
	"github.com/ccsops/gateway-console-service/clients/tracker"
	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/controllers"
	"github.com/ccsops/gateway-console-service/services"
)

// AppParams contains all wired application dependencies
type AppParams struct {
	Logger *slog.Logger

	// Controllers
	DefinitionController controllers.DefinitionController
	RouteController      controllers.RouteController
	HealthController     controllers.HealthController
	TicketController     controllers.TicketController
	SessionController    controllers.SessionController
	TokenController      controllers.TokenController
	CertController       controllers.CertController

	// SessionManager backs the admin auth middleware in addition to the
	// session controller
	SessionManager services.SessionManager

	// Database
	DB *gorm.DB
}

func ProvideConfigFromPtr(config *config.Config) config.Config {
	return *config
}

func ProvideAdminConfig(config config.Config) *config.AdminConfig {
	return &config.Admin
}

func ProvideGatewayHostsConfig(config config.Config) *config.GatewayHostsConfig {
	return &config.GatewayHosts
}

func ProvideHealthCheckConfig(config config.Config) *config.HealthCheckConfig {
	return &config.HealthCheck
}

func ProvideTrackerConfig(config config.Config) *config.TrackerConfig {
	return &config.Tracker
}

func ProvideDefaultCountry(config config.Config) string {
	return config.GatewayHosts.DefaultCountry
}

// ProvideGatewayClient creates the actuator client with its built-in
// retry policy
func ProvideGatewayClient() scggateway.Client {
	return scggateway.NewClient()
}

// ProvideTrackerClient creates the issue tracker client with the default
// HTTP client
func ProvideTrackerClient(config config.Config) tracker.Client {
	return tracker.NewClient(config.Tracker.BaseURL, nil)
}

// ProvideLogger provides the configured slog.Logger instance
func ProvideLogger() *slog.Logger {
	return slog.Default()
}
