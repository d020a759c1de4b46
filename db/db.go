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

// Package db owns the process-wide GORM connection to PostgreSQL.
package db

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ccsops/gateway-console-service/config"
)

var (
	dbInstance *gorm.DB
	once       sync.Once
)

// GetDB returns the shared database handle, opening it on first use.
// Repositories scope operations with their own contexts; the handle
// itself is context-free.
func GetDB() *gorm.DB {
	once.Do(func() {
		cfg := config.GetConfig()
		database, err := open(cfg)
		if err != nil {
			slog.Error("db: failed to connect to database", "error", err)
			os.Exit(1)
		}
		dbInstance = database
	})
	return dbInstance
}

func open(cfg *config.Config) (*gorm.DB, error) {
	pg := cfg.POSTGRESQL
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		pg.Host, pg.Port, pg.User, pg.Password, pg.DBName)

	gormLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Duration(pg.DbConfigs.SlowThresholdMilliseconds) * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	database, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: pg.DbConfigs.SkipDefaultTransaction,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	if v := pg.DbConfigs.MaxIdleCount; v != nil {
		sqlDB.SetMaxIdleConns(int(*v))
	}
	if v := pg.DbConfigs.MaxOpenCount; v != nil {
		sqlDB.SetMaxOpenConns(int(*v))
	}
	if v := pg.DbConfigs.MaxIdleTimeSeconds; v != nil {
		sqlDB.SetConnMaxIdleTime(time.Duration(*v) * time.Second)
	}
	if v := pg.DbConfigs.MaxLifetimeSeconds; v != nil {
		sqlDB.SetConnMaxLifetime(time.Duration(*v) * time.Second)
	}

	slog.Info("db: connected to database", "host", pg.Host, "dbName", pg.DBName)
	return database, nil
}
