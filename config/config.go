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

package config

// Config holds all configuration for the application
type Config struct {
	PackageVersion      string
	ServerHost          string
	ServerPort          int
	AutoMaxProcsEnabled bool
	LogLevel            string
	POSTGRESQL          POSTGRESQL

	// HTTP Server timeout configurations
	ReadTimeoutSeconds  int
	WriteTimeoutSeconds int
	IdleTimeoutSeconds  int
	MaxHeaderBytes      int

	// Database operation timeout configuration
	DbOperationTimeoutSeconds int

	// CORSAllowedOrigin is the single allowed origin for CORS; use "*" to allow all
	CORSAllowedOrigin string

	// Catalog holds definition catalog seeding configuration
	Catalog CatalogConfig

	// GatewayHosts holds the per-country MSA gateway host configuration
	GatewayHosts GatewayHostsConfig

	// HealthCheck holds upstream probe configuration
	HealthCheck HealthCheckConfig

	// Tracker holds issue tracker submission configuration
	Tracker TrackerConfig

	// Admin holds the console administrator credential pair
	Admin AdminConfig
}

// CatalogConfig holds definition catalog configuration
type CatalogConfig struct {
	// DefinitionsPath is the path to the static definitions JSON file.
	// A missing or malformed file degrades to an empty catalog, it never
	// prevents startup.
	DefinitionsPath string
}

// GatewayHostsConfig holds the MSA gateway host map configuration
type GatewayHostsConfig struct {
	// HostsFilePath is the path to the YAML file mapping countries to
	// gateway hosts (igw/eigw/ogw)
	HostsFilePath string
	// DefaultCountry is used when a request carries no country parameter
	DefaultCountry string
	// UseMockRoutes serves the built-in route batch instead of calling
	// the gateway actuator endpoints
	UseMockRoutes bool
}

// HealthCheckConfig holds upstream health probe configuration
type HealthCheckConfig struct {
	TimeoutSeconds      int
	MaxConcurrentProbes int
}

// TrackerConfig holds issue tracker client configuration
type TrackerConfig struct {
	// BaseURL is the issue tracker base URL; empty means live submission
	// fails gracefully
	BaseURL string
	// ProjectKey is the default project key for submitted tickets
	ProjectKey string
	// Mode is either "live" (POST to the tracker) or "simulated" (no
	// network call, mock confirmation)
	Mode string
}

// AdminConfig holds the single hard-configured administrator credential pair
type AdminConfig struct {
	ID       string
	Password string `json:"-"`
}

// Tracker submission modes
const (
	TrackerModeLive      = "live"
	TrackerModeSimulated = "simulated"
)

type POSTGRESQL struct {
	Host     string
	Port     int
	User     string
	DBName   string
	Password string `json:"-"`
	DbConfigs
}

type DbConfigs struct {
	// gorm configs
	SlowThresholdMilliseconds int64
	SkipDefaultTransaction    bool

	// go sql configs
	MaxIdleCount       *int64 // zero means defaultMaxIdleConns (2); negative means 0
	MaxOpenCount       *int64 // <= 0 means unlimited
	MaxLifetimeSeconds *int64 // maximum amount of time a connection may be reused
	MaxIdleTimeSeconds *int64
}
