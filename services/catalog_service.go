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

package services

import (
	"context"

	"github.com/ccsops/gateway-console-service/mapping"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/repositories"
	"github.com/ccsops/gateway-console-service/utils"
)

// CatalogService defines the read operations over the definition catalog
type CatalogService interface {
	ListDefinitions(ctx context.Context) ([]models.RawDefinition, error)
	ListDefinitionViews(ctx context.Context) ([]models.DefinitionView, error)
	GetDefinitionByID(ctx context.Context, apiID string) (*models.RawDefinition, error)
	GetDefinitionBySlug(ctx context.Context, slug string) (*models.RawDefinition, error)
}

type catalogService struct {
	definitionRepo repositories.DefinitionRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(definitionRepo repositories.DefinitionRepository) CatalogService {
	return &catalogService{definitionRepo: definitionRepo}
}

// ListDefinitions returns all catalog records in their wire shape.
func (s *catalogService) ListDefinitions(ctx context.Context) ([]models.RawDefinition, error) {
	defs, err := s.definitionRepo.ListDefinitions()
	if err != nil {
		return nil, err
	}
	raws := make([]models.RawDefinition, 0, len(defs))
	for i := range defs {
		raws = append(raws, defs[i].ToRaw())
	}
	return raws, nil
}

// ListDefinitionViews returns the catalog mapped to dashboard rows.
func (s *catalogService) ListDefinitionViews(ctx context.Context) ([]models.DefinitionView, error) {
	defs, err := s.definitionRepo.ListDefinitions()
	if err != nil {
		return nil, err
	}
	views := make([]models.DefinitionView, 0, len(defs))
	for _, def := range defs {
		views = append(views, mapping.DefinitionView(def))
	}
	return views, nil
}

// GetDefinitionByID returns one record by api_id.
func (s *catalogService) GetDefinitionByID(ctx context.Context, apiID string) (*models.RawDefinition, error) {
	def, err := s.definitionRepo.GetDefinitionByID(apiID)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, utils.ErrDefinitionNotFound
	}
	raw := def.ToRaw()
	return &raw, nil
}

// GetDefinitionBySlug returns one record by slug.
func (s *catalogService) GetDefinitionBySlug(ctx context.Context, slug string) (*models.RawDefinition, error) {
	def, err := s.definitionRepo.GetDefinitionBySlug(slug)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return nil, utils.ErrDefinitionNotFound
	}
	raw := def.ToRaw()
	return &raw, nil
}
