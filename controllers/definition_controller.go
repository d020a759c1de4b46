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

package controllers

import (
	"errors"
	"net/http"

	"github.com/ccsops/gateway-console-service/middleware/logger"
	"github.com/ccsops/gateway-console-service/services"
	"github.com/ccsops/gateway-console-service/utils"
)

// DefinitionController defines the interface for gateway definition operations
type DefinitionController interface {
	// ListDefinitions handles the raw definition listing request
	ListDefinitions(w http.ResponseWriter, r *http.Request)
	// ListDefinitionViews handles the presentation-row listing request
	ListDefinitionViews(w http.ResponseWriter, r *http.Request)
	// GetDefinition handles a single definition lookup by api id
	GetDefinition(w http.ResponseWriter, r *http.Request)
	// GetDefinitionBySlug handles a single definition lookup by slug
	GetDefinitionBySlug(w http.ResponseWriter, r *http.Request)
}

type definitionController struct {
	catalogService services.CatalogService
}

// NewDefinitionController creates a new DefinitionController instance
func NewDefinitionController(catalogService services.CatalogService) DefinitionController {
	return &definitionController{
		catalogService: catalogService,
	}
}

// ListDefinitions handles GET /definitions
func (c *definitionController) ListDefinitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	definitions, err := c.catalogService.ListDefinitions(ctx)
	if err != nil {
		log.Error("ListDefinitions: failed to list definitions", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list definitions")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, definitions)
}

// ListDefinitionViews handles GET /definitions/views
func (c *definitionController) ListDefinitionViews(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	views, err := c.catalogService.ListDefinitionViews(ctx)
	if err != nil {
		log.Error("ListDefinitionViews: failed to build definition views", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list definitions")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, views)
}

// GetDefinition handles GET /definitions/{id}
func (c *definitionController) GetDefinition(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	apiID := r.PathValue("id")

	definition, err := c.catalogService.GetDefinitionByID(ctx, apiID)
	if err != nil {
		c.handleDefinitionErrors(w, err, "Failed to get definition")
		return
	}

	log.Info("GetDefinition: definition found", "apiId", apiID)
	utils.WriteSuccessResponse(w, http.StatusOK, definition)
}

// GetDefinitionBySlug handles GET /definitions/by-slug/{slug}
func (c *definitionController) GetDefinitionBySlug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := r.PathValue("slug")

	definition, err := c.catalogService.GetDefinitionBySlug(ctx, slug)
	if err != nil {
		c.handleDefinitionErrors(w, err, "Failed to get definition")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, definition)
}

func (c *definitionController) handleDefinitionErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrDefinitionNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found")
	case errors.Is(err, utils.ErrBadRequest):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}
