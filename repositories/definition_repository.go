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
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ccsops/gateway-console-service/models"
)

// DefinitionRepository defines the interface for catalog data access
type DefinitionRepository interface {
	UpsertDefinitions(defs []models.Definition) error
	ListDefinitions() ([]models.Definition, error)
	GetDefinitionByID(apiID string) (*models.Definition, error)
	GetDefinitionBySlug(slug string) (*models.Definition, error)
}

// DefinitionRepo implements DefinitionRepository using GORM
type DefinitionRepo struct {
	db *gorm.DB
}

// NewDefinitionRepo creates a new definition repository
func NewDefinitionRepo(db *gorm.DB) DefinitionRepository {
	return &DefinitionRepo{db: db}
}

// UpsertDefinitions inserts or replaces catalog rows keyed by api_id.
// Seeding is idempotent: re-running with the same file is a no-op.
func (r *DefinitionRepo) UpsertDefinitions(defs []models.Definition) error {
	if len(defs) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "api_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "slug", "domain", "use_keyless",
			"listen_path", "target_url", "rate_limit_rate", "rate_limit_per",
		}),
	}).Create(&defs).Error
}

// ListDefinitions retrieves the whole catalog in a stable order
func (r *DefinitionRepo) ListDefinitions() ([]models.Definition, error) {
	var defs []models.Definition
	err := r.db.Order("api_id ASC").Find(&defs).Error
	if err != nil {
		return nil, err
	}
	return defs, nil
}

// GetDefinitionByID retrieves one definition by its api_id
func (r *DefinitionRepo) GetDefinitionByID(apiID string) (*models.Definition, error) {
	var def models.Definition
	err := r.db.Where("api_id = ?", apiID).First(&def).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}

// GetDefinitionBySlug retrieves one definition by its slug
func (r *DefinitionRepo) GetDefinitionBySlug(slug string) (*models.Definition, error) {
	if slug == "" {
		return nil, nil
	}
	var def models.Definition
	err := r.db.Where("slug = ?", slug).First(&def).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &def, nil
}
