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

// HealthController defines the interface for gateway health probe operations
type HealthController interface {
	// CheckTarget handles a single upstream reachability probe
	CheckTarget(w http.ResponseWriter, r *http.Request)
	// CheckHostHealth handles the per-country gateway host health request
	CheckHostHealth(w http.ResponseWriter, r *http.Request)
	// CheckDefinitions handles the catalog-wide target probe request
	CheckDefinitions(w http.ResponseWriter, r *http.Request)
}

type healthController struct {
	healthService services.HealthService
}

// NewHealthController creates a new HealthController instance
func NewHealthController(healthService services.HealthService) HealthController {
	return &healthController{
		healthService: healthService,
	}
}

// CheckTarget handles GET /check/target?url=...
func (c *healthController) CheckTarget(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	targetURL := r.URL.Query().Get("url")

	result, err := c.healthService.CheckTarget(ctx, targetURL)
	if err != nil {
		log.Error("CheckTarget: probe rejected", "error", err)
		c.handleHealthErrors(w, err, "Failed to check target")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, result)
}

// CheckHostHealth handles GET /check/hostHealth?country=...
func (c *healthController) CheckHostHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	country := r.URL.Query().Get("country")

	resp, err := c.healthService.CheckHostHealth(ctx, country)
	if err != nil {
		log.Error("CheckHostHealth: probe failed", "country", country, "error", err)
		c.handleHealthErrors(w, err, "Failed to check host health")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

// CheckDefinitions handles GET /check/definitions
func (c *healthController) CheckDefinitions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	resp, err := c.healthService.CheckDefinitionTargets(ctx)
	if err != nil {
		log.Error("CheckDefinitions: probe failed", "error", err)
		c.handleHealthErrors(w, err, "Failed to check definition targets")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *healthController) handleHealthErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrBadRequest):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing target url")
	case errors.Is(err, utils.ErrCountryNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Unknown country")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}
