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

// Package dbmigrations holds the ordered schema migrations, applied
// through gormigrate. Each migration lives in its own numbered file.
package dbmigrations

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"

	"github.com/ccsops/gateway-console-service/db"
)

type migration struct {
	ID      int
	Migrate func(db *gorm.DB) error
}

// registry of all migrations; order is derived from IDs, not file order.
var migrations = []migration{
	migration001,
	migration002,
	migration003,
}

func runSQL(tx *gorm.DB, sql string) error {
	return tx.Exec(sql).Error
}

// Migrate applies all pending migrations in ID order.
func Migrate() error {
	return migrateWithDB(db.GetDB())
}

func migrateWithDB(database *gorm.DB) error {
	sorted := make([]migration, len(migrations))
	copy(sorted, migrations)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	gormMigrations := make([]*gormigrate.Migration, 0, len(sorted))
	for _, m := range sorted {
		m := m
		gormMigrations = append(gormMigrations, &gormigrate.Migration{
			ID:      fmt.Sprintf("%03d", m.ID),
			Migrate: m.Migrate,
		})
	}

	if err := gormigrate.New(database, gormigrate.DefaultOptions, gormMigrations).Migrate(); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	slog.Info("dbmigrations: all migrations applied", "count", len(sorted))
	return nil
}
