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

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/ccsops/gateway-console-service/api"
	"github.com/ccsops/gateway-console-service/catalog"
	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/db"
	dbmigrations "github.com/ccsops/gateway-console-service/db_migrations"
	"github.com/ccsops/gateway-console-service/repositories"
	"github.com/ccsops/gateway-console-service/signals"
	"github.com/ccsops/gateway-console-service/wiring"
)

func setupLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo // default to INFO
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Logger configured",
		"level", level.String())
}

func main() {
	cfg := config.GetConfig()

	setupLogger(cfg)

	if cfg.AutoMaxProcsEnabled {
		if _, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			// Convert printf-style format string to plain message for structured logging
			slog.Info(fmt.Sprintf(format, args...))
		})); err != nil {
			slog.Error("Failed to set maxprocs", "error", err)
			os.Exit(1)
		}
	}

	serverFlag := flag.Bool("server", true, "start the http server")
	migrateFlag := flag.Bool("migrate", false, "migrate the database")

	flag.Parse()

	if *migrateFlag {
		if err := dbmigrations.Migrate(); err != nil {
			slog.Error("error occurred while migrating", "error", err)
			os.Exit(1)
		}
	}

	if !*serverFlag {
		return
	}

	// Get the raw DB instance without context - repositories will add context per-operation
	database := db.GetDB()

	// Seed the definition catalog. A missing or malformed file degrades to
	// an empty catalog and never prevents startup.
	if err := catalog.Seed(repositories.NewDefinitionRepo(database), cfg.Catalog.DefinitionsPath); err != nil {
		slog.Error("failed to seed definition catalog", "error", err)
		os.Exit(1)
	}

	hostMap, err := config.LoadGatewayHostMap(cfg.GatewayHosts.HostsFilePath)
	if err != nil {
		slog.Warn("failed to load gateway host map, continuing with an empty map",
			"path", cfg.GatewayHosts.HostsFilePath, "error", err)
		hostMap = config.GatewayHostMap{}
	}

	dependencies, err := wiring.InitializeAppParams(cfg, database, hostMap)
	if err != nil {
		slog.Error("failed to initialize app dependencies", "error", err)
		os.Exit(1)
	}

	handler := api.MakeHTTPHandler(dependencies)
	server := &http.Server{
		Addr:           fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:        handler,
		ReadTimeout:    time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:   time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:    time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	stopCh := signals.SetupSignalHandler()

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		<-stopCh
		slog.Info("Shutdown signal received, stopping server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server forced shutdown after timeout", "error", err)
		}
		wg.Done()
	}()

	slog.Info("Gateway console API server is running", "address", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}

	wg.Wait()
	slog.Info("Server shut down successfully")
}
