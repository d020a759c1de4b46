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

// Create the ticket_submissions audit table. Every submission attempt is
// recorded regardless of outcome so the admin view can list them.
var migration002 = migration{
	ID: 2,
	Migrate: func(db *gorm.DB) error {
		createTicketSubmissionsSQL := `
			CREATE TABLE ticket_submissions (
				uuid UUID PRIMARY KEY NOT NULL,
				project_key VARCHAR(100) NOT NULL,
				issue_type VARCHAR(100) NOT NULL,
				assignee VARCHAR(255) NOT NULL,
				reporter VARCHAR(255) NOT NULL,
				summary VARCHAR(512) NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				mode VARCHAR(20) NOT NULL,
				status VARCHAR(20) NOT NULL,
				tracker_key VARCHAR(100) NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT NOW()
			);

			CREATE INDEX idx_ticket_submissions_created_at ON ticket_submissions(created_at);
		`
		return db.Transaction(func(tx *gorm.DB) error {
			return runSQL(tx, createTicketSubmissionsSQL)
		})
	},
}
