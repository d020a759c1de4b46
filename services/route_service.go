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
	"fmt"
	"strings"

	"github.com/ccsops/gateway-console-service/clients/scggateway"
	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/mapping"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/resources"
	"github.com/ccsops/gateway-console-service/utils"
)

// gateway role whose actuator serves the route batch
const routeSourceRole = "igw"

// RouteService defines the route and global filter queries
type RouteService interface {
	GetRoutes(ctx context.Context, country, target, query string) (*models.RouteBatchResponse, error)
	GetGlobalFilters(ctx context.Context, country string) (*models.GlobalFilterResponse, error)
}

type routeService struct {
	gatewayClient scggateway.Client
	hostMap       config.GatewayHostMap
	cfg           *config.GatewayHostsConfig
}

// NewRouteService creates a new route service
func NewRouteService(gatewayClient scggateway.Client, hostMap config.GatewayHostMap, cfg *config.GatewayHostsConfig) RouteService {
	return &routeService{
		gatewayClient: gatewayClient,
		hostMap:       hostMap,
		cfg:           cfg,
	}
}

// GetRoutes returns the parsed route batch for a country, with global
// filters merged into each route's filter list. target narrows to one
// logical service; query matches route id, uri, or predicates.
func (s *routeService) GetRoutes(ctx context.Context, country, target, query string) (*models.RouteBatchResponse, error) {
	country = s.resolveCountry(country)

	rawRoutes, rawFilters, err := s.fetchBatch(ctx, country)
	if err != nil {
		return nil, err
	}

	globals := mapping.GlobalFilterViews(rawFilters)
	views := make([]models.RouteView, 0, len(rawRoutes))
	for _, raw := range rawRoutes {
		view := mapping.RouteView(raw, globals)
		if !matchesTarget(view, target) || !matchesQuery(view, query) {
			continue
		}
		views = append(views, view)
	}

	return &models.RouteBatchResponse{
		Country: country,
		Total:   len(views),
		Routes:  views,
	}, nil
}

// GetGlobalFilters returns the parsed global filters for a country,
// sorted ascending by execution order.
func (s *routeService) GetGlobalFilters(ctx context.Context, country string) (*models.GlobalFilterResponse, error) {
	country = s.resolveCountry(country)

	_, rawFilters, err := s.fetchBatch(ctx, country)
	if err != nil {
		return nil, err
	}

	return &models.GlobalFilterResponse{
		Country: country,
		Filters: mapping.GlobalFilterViews(rawFilters),
	}, nil
}

func (s *routeService) resolveCountry(country string) string {
	if country == "" {
		return strings.ToUpper(s.cfg.DefaultCountry)
	}
	return strings.ToUpper(country)
}

// fetchBatch returns the raw routes and global filters, either from the
// built-in mock batch or from the country's gateway actuator.
func (s *routeService) fetchBatch(ctx context.Context, country string) ([]models.RawRoute, models.RawGlobalFilters, error) {
	if s.cfg.UseMockRoutes {
		return resources.MockRoutes, resources.MockGlobalFilters, nil
	}

	hosts, ok := s.hostMap.Lookup(country)
	if !ok {
		return nil, nil, utils.ErrCountryNotFound
	}
	baseURL, ok := hosts[routeSourceRole]
	if !ok || baseURL == "" {
		return nil, nil, utils.ErrCountryNotFound
	}

	routes, err := s.gatewayClient.FetchRoutes(ctx, baseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", utils.ErrGatewayUnreachable, err)
	}
	filters, err := s.gatewayClient.FetchGlobalFilters(ctx, baseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", utils.ErrGatewayUnreachable, err)
	}
	return routes, filters, nil
}

func matchesTarget(view models.RouteView, target string) bool {
	if target == "" {
		return true
	}
	return strings.EqualFold(view.URI, target)
}

func matchesQuery(view models.RouteView, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(view.RouteID), q) ||
		strings.Contains(strings.ToLower(view.URI), q) {
		return true
	}
	for _, p := range view.Predicates {
		if strings.Contains(strings.ToLower(p.Name), q) {
			return true
		}
	}
	return false
}
