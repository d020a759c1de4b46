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

package models

import "time"

// Ticket submission outcomes.
const (
	SubmissionStatusSubmitted = "submitted"
	SubmissionStatusSimulated = "simulated"
	SubmissionStatusFailed    = "failed"
)

// TicketRequest is the change-request payload accepted by POST /tickets.
type TicketRequest struct {
	ProjectKey  string `json:"projectKey"`
	IssueType   string `json:"issueType"`
	Assignee    string `json:"assignee"`
	Reporter    string `json:"reporter"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// TicketSubmission is the audit record of one submission attempt.
type TicketSubmission struct {
	UUID        string    `gorm:"column:uuid;primaryKey" json:"uuid"`
	ProjectKey  string    `gorm:"column:project_key" json:"projectKey"`
	IssueType   string    `gorm:"column:issue_type" json:"issueType"`
	Assignee    string    `gorm:"column:assignee" json:"assignee"`
	Reporter    string    `gorm:"column:reporter" json:"reporter"`
	Summary     string    `gorm:"column:summary" json:"summary"`
	Description string    `gorm:"column:description" json:"description"`
	Mode        string    `gorm:"column:mode" json:"mode"`
	Status      string    `gorm:"column:status" json:"status"`
	TrackerKey  string    `gorm:"column:tracker_key" json:"trackerKey,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName returns the table name for the TicketSubmission model
func (TicketSubmission) TableName() string {
	return "ticket_submissions"
}

// TicketSubmissionResponse is returned to the caller after a submission
// attempt. Simulated confirmations are flagged so the dashboard can tell
// them apart from live tracker issues.
type TicketSubmissionResponse struct {
	UUID       string `json:"uuid"`
	Status     string `json:"status"`
	TrackerKey string `json:"trackerKey,omitempty"`
	Simulated  bool   `json:"simulated"`
}
