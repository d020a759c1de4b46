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

// Create the certificates table backing the admin certificate view.
// Expiry is stored as the submitted date string, not a timestamp.
var migration003 = migration{
	ID: 3,
	Migrate: func(db *gorm.DB) error {
		createCertificatesSQL := `
			CREATE TABLE certificates (
				uuid UUID PRIMARY KEY NOT NULL,
				common_name VARCHAR(255) NOT NULL,
				expires_at VARCHAR(20) NOT NULL,
				issuer VARCHAR(255) NOT NULL DEFAULT 'Custom',
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);
		`
		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createCertificatesSQL)
		})
	},
}
