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

package dbmigrations

import (
	"gorm.io/gorm"
)

// Create the definitions table holding the gateway API catalog. Rows are
// seeded from the definitions file at startup and never mutated through
// the API.
var migration001 = migration{
	ID: 1,
	Migrate: func(db *gorm.DB) error {
		createDefinitionsSQL := `
			CREATE TABLE definitions (
				api_id VARCHAR(100) PRIMARY KEY NOT NULL,
				name VARCHAR(255) NOT NULL,
				slug VARCHAR(255) NOT NULL DEFAULT '',
				domain VARCHAR(255) NOT NULL DEFAULT '',
				use_keyless BOOLEAN NOT NULL DEFAULT FALSE,
				listen_path VARCHAR(255) NOT NULL DEFAULT '',
				target_url VARCHAR(1024) NOT NULL DEFAULT '',
				rate_limit_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
				rate_limit_per DOUBLE PRECISION NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX idx_definitions_slug ON definitions(slug);
		`
		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createDefinitionsSQL)
		})
	},
}
