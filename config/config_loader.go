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

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

var config *Config

func GetConfig() *Config {
	return config
}

func init() {
	loadEnvs()
}

func loadEnvs() {
	config = &Config{}

	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath != "" {
		err := godotenv.Load(envFilePath)
		if err != nil {
			panic(err)
		}
	}

	r := &configReader{}
	config.ServerHost = r.readOptionalString("SERVER_HOST", "")
	config.ServerPort = int(r.readOptionalInt64("SERVER_PORT", 8080))
	config.AutoMaxProcsEnabled = r.readOptionalBool("AUTO_MAX_PROCS_ENABLED", true)
	config.CORSAllowedOrigin = r.readOptionalString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")

	// Logging configuration
	config.LogLevel = r.readOptionalString("LOG_LEVEL", "INFO")

	// read database configs. Connection failures surface when the pool is
	// first opened, so local defaults are enough here.
	config.POSTGRESQL = POSTGRESQL{
		Host:     r.readOptionalString("DB_HOST", "localhost"),
		Port:     int(r.readOptionalInt64("DB_PORT", 5432)),
		User:     r.readOptionalString("DB_USER", "postgres"),
		Password: r.readOptionalString("DB_PASSWORD", "postgres"),
		DBName:   r.readOptionalString("DB_NAME", "gateway_console"),
	}
	config.POSTGRESQL.DbConfigs = DbConfigs{
		// gorm configs
		SkipDefaultTransaction:    r.readOptionalBool("GORM_SKIP_DEFAULT_TRANSACTION", true),
		SlowThresholdMilliseconds: r.readOptionalInt64("GORM_SLOW_THRESHOLD_MILLISECONDS", 200),

		// sql.DB configs
		MaxIdleCount:       r.readNullableInt64("DB_MAX_IDLE_COUNT"),
		MaxOpenCount:       r.readNullableInt64("DB_MAX_OPEN_COUNT"),
		MaxIdleTimeSeconds: r.readNullableInt64("DB_MAX_IDLE_TIME_SECONDS"),
		MaxLifetimeSeconds: r.readNullableInt64("DB_MAX_LIFETIME_SECONDS"),
	}

	// HTTP Server timeout configurations
	config.ReadTimeoutSeconds = int(r.readOptionalInt64("HTTP_READ_TIMEOUT_SECONDS", 10))
	config.WriteTimeoutSeconds = int(r.readOptionalInt64("HTTP_WRITE_TIMEOUT_SECONDS", 90))
	config.IdleTimeoutSeconds = int(r.readOptionalInt64("HTTP_IDLE_TIMEOUT_SECONDS", 60))
	config.MaxHeaderBytes = int(r.readOptionalInt64("HTTP_MAX_HEADER_BYTES", 65536)) // 1024 * 64

	// Database operation timeout configuration
	config.DbOperationTimeoutSeconds = int(r.readOptionalInt64("DB_OPERATION_TIMEOUT_SECONDS", 10))

	// Use Version from ldflags or environment variable override
	config.PackageVersion = r.readOptionalString("GCS_VERSION", Version)

	// Definition catalog configuration
	config.Catalog = CatalogConfig{
		DefinitionsPath: r.readOptionalString("CATALOG_DEFINITIONS_PATH", "data/definitions.json"),
	}

	// MSA gateway host configuration
	config.GatewayHosts = GatewayHostsConfig{
		HostsFilePath:  r.readOptionalString("GATEWAY_HOSTS_FILE", "data/gateway-hosts.yaml"),
		DefaultCountry: r.readOptionalString("GATEWAY_DEFAULT_COUNTRY", "KR"),
		UseMockRoutes:  r.readOptionalBool("GATEWAY_USE_MOCK_ROUTES", true),
	}

	// Upstream health probe configuration
	config.HealthCheck = HealthCheckConfig{
		TimeoutSeconds:      int(r.readOptionalInt64("HEALTH_CHECK_TIMEOUT_SECONDS", 5)),
		MaxConcurrentProbes: int(r.readOptionalInt64("HEALTH_CHECK_MAX_CONCURRENT_PROBES", 8)),
	}

	// Issue tracker configuration
	config.Tracker = TrackerConfig{
		BaseURL:    r.readOptionalString("TRACKER_BASE_URL", ""),
		ProjectKey: r.readOptionalString("TRACKER_PROJECT_KEY", "PROJ"),
		Mode:       r.readOptionalString("TRACKER_MODE", TrackerModeSimulated),
	}

	// Administrator credential pair
	config.Admin = AdminConfig{
		ID:       r.readOptionalString("ADMIN_ID", "ccsgateway"),
		Password: r.readOptionalString("ADMIN_PASSWORD", "GWAdmin!1"),
	}

	validateHTTPServerConfigs(config, r)
	validateTrackerConfigs(config, r)

	r.logAndExitIfErrorsFound()

	slog.Info("configReader: configs loaded")
}

func validateHTTPServerConfigs(cfg *Config, r *configReader) {
	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		r.errors = append(r.errors, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort))
	}
	if cfg.ReadTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.ReadTimeoutSeconds))
	}
	if cfg.WriteTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_WRITE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.WriteTimeoutSeconds))
	}
	if cfg.ReadTimeoutSeconds >= cfg.WriteTimeoutSeconds {
		r.errors = append(r.errors, fmt.Errorf("HTTP_READ_TIMEOUT_SECONDS (%d) must be < HTTP_WRITE_TIMEOUT_SECONDS (%d)",
			cfg.ReadTimeoutSeconds, cfg.WriteTimeoutSeconds))
	}
	if cfg.IdleTimeoutSeconds <= 0 {
		r.errors = append(r.errors, fmt.Errorf("HTTP_IDLE_TIMEOUT_SECONDS must be greater than 0, got %d", cfg.IdleTimeoutSeconds))
	}
	if cfg.MaxHeaderBytes < 1024 || cfg.MaxHeaderBytes > 1048576 { // 1KB to 1MB
		r.errors = append(r.errors, fmt.Errorf("HTTP_MAX_HEADER_BYTES must be between 1024 and 1048576, got %d", cfg.MaxHeaderBytes))
	}
}

func validateTrackerConfigs(cfg *Config, r *configReader) {
	if cfg.Tracker.Mode != TrackerModeLive && cfg.Tracker.Mode != TrackerModeSimulated {
		r.errors = append(r.errors, fmt.Errorf("TRACKER_MODE must be %q or %q, got %q",
			TrackerModeLive, TrackerModeSimulated, cfg.Tracker.Mode))
	}
	if cfg.Tracker.Mode == TrackerModeLive && cfg.Tracker.BaseURL == "" {
		slog.Warn("TRACKER_MODE is live but TRACKER_BASE_URL is empty - submissions will fail gracefully")
	}
}
