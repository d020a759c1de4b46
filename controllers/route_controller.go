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

// RouteController defines the interface for gateway route operations
type RouteController interface {
	// GetRoutes handles the route listing request
	GetRoutes(w http.ResponseWriter, r *http.Request)
	// GetGlobalFilters handles the global filter listing request
	GetGlobalFilters(w http.ResponseWriter, r *http.Request)
}

type routeController struct {
	routeService services.RouteService
}

// NewRouteController creates a new RouteController instance
func NewRouteController(routeService services.RouteService) RouteController {
	return &routeController{
		routeService: routeService,
	}
}

// GetRoutes handles GET /routes
func (c *routeController) GetRoutes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	query := r.URL.Query()
	country := query.Get("country")
	target := query.Get("target")
	search := query.Get("query")

	resp, err := c.routeService.GetRoutes(ctx, country, target, search)
	if err != nil {
		log.Error("GetRoutes: failed to fetch routes", "country", country, "error", err)
		c.handleRouteErrors(w, err, "Failed to fetch routes")
		return
	}

	log.Info("GetRoutes: routes fetched", "country", resp.Country, "total", resp.Total)
	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

// GetGlobalFilters handles GET /routes/globalfilters
func (c *routeController) GetGlobalFilters(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	country := r.URL.Query().Get("country")

	resp, err := c.routeService.GetGlobalFilters(ctx, country)
	if err != nil {
		log.Error("GetGlobalFilters: failed to fetch global filters", "country", country, "error", err)
		c.handleRouteErrors(w, err, "Failed to fetch global filters")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *routeController) handleRouteErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrCountryNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Unknown country")
	case errors.Is(err, utils.ErrGatewayUnreachable):
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Gateway unreachable")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}
