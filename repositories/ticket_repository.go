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

package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/ccsops/gateway-console-service/models"
)

// TicketRepository defines the interface for ticket submission audit records
type TicketRepository interface {
	CreateSubmission(submission *models.TicketSubmission) error
	ListSubmissions(limit int) ([]models.TicketSubmission, error)
}

// TicketRepo implements TicketRepository using GORM
type TicketRepo struct {
	db *gorm.DB
}

// NewTicketRepo creates a new ticket repository
func NewTicketRepo(db *gorm.DB) TicketRepository {
	return &TicketRepo{db: db}
}

// CreateSubmission records one submission attempt
func (r *TicketRepo) CreateSubmission(submission *models.TicketSubmission) error {
	submission.CreatedAt = time.Now()
	return r.db.Create(submission).Error
}

// ListSubmissions retrieves the most recent submissions, newest first
func (r *TicketRepo) ListSubmissions(limit int) ([]models.TicketSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	var submissions []models.TicketSubmission
	err := r.db.Order("created_at DESC").Limit(limit).Find(&submissions).Error
	if err != nil {
		return nil, err
	}
	return submissions, nil
}
