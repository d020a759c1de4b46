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
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ccsops/gateway-console-service/clients/scggateway"
	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/repositories"
	"github.com/ccsops/gateway-console-service/utils"
)

// HealthService defines upstream and gateway health probes
type HealthService interface {
	CheckTarget(ctx context.Context, targetURL string) (*models.TargetCheckResult, error)
	CheckHostHealth(ctx context.Context, country string) (*models.HostHealthResponse, error)
	CheckDefinitionTargets(ctx context.Context) (*models.DefinitionProbeResponse, error)
	ProbeTargets(ctx context.Context, targets map[string]string) map[string]models.TargetCheckResult
}

type healthService struct {
	gatewayClient  scggateway.Client
	definitionRepo repositories.DefinitionRepository
	hostMap        config.GatewayHostMap
	cfg            *config.HealthCheckConfig
	defaultCountry string
}

// NewHealthService creates a new health service
func NewHealthService(gatewayClient scggateway.Client, definitionRepo repositories.DefinitionRepository, hostMap config.GatewayHostMap, cfg *config.HealthCheckConfig, defaultCountry string) HealthService {
	return &healthService{
		gatewayClient:  gatewayClient,
		definitionRepo: definitionRepo,
		hostMap:        hostMap,
		cfg:            cfg,
		defaultCountry: defaultCountry,
	}
}

// CheckTarget probes one upstream target URL. Unreachable targets are
// reported in the result payload, never as an error.
func (s *healthService) CheckTarget(ctx context.Context, targetURL string) (*models.TargetCheckResult, error) {
	if targetURL == "" {
		return nil, utils.ErrBadRequest
	}
	probeCtx, cancel := s.probeContext(ctx)
	defer cancel()

	result := s.gatewayClient.ProbeTarget(probeCtx, targetURL)
	return &result, nil
}

// CheckHostHealth fans out to every gateway role configured for the
// country and collects per-role results into a keyed map. Probe
// completion order does not affect the payload; cancelling the request
// context aborts the in-flight probes.
func (s *healthService) CheckHostHealth(ctx context.Context, country string) (*models.HostHealthResponse, error) {
	if country == "" {
		country = s.defaultCountry
	}
	country = strings.ToUpper(country)
	hosts, ok := s.hostMap.Lookup(country)
	if !ok {
		return nil, utils.ErrCountryNotFound
	}

	response := &models.HostHealthResponse{
		Country: country,
		Results: make(map[string]models.HostHealthResult, len(hosts)),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for role, baseURL := range hosts {
		wg.Add(1)
		go func(role, baseURL string) {
			defer wg.Done()
			result := s.probeGateway(ctx, role, baseURL)
			mu.Lock()
			response.Results[role] = result
			mu.Unlock()
		}(role, baseURL)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return response, nil
}

func (s *healthService) probeGateway(ctx context.Context, role, baseURL string) models.HostHealthResult {
	if baseURL == "" {
		return models.HostHealthResult{
			Role:    role,
			Status:  models.ProbeStatusMissing,
			Hosts:   []models.HostStatus{},
			Message: "no host configured",
		}
	}

	probeCtx, cancel := s.probeContext(ctx)
	defer cancel()

	hostStatuses, err := s.gatewayClient.FetchHostHealth(probeCtx, baseURL)
	if err != nil {
		return models.HostHealthResult{
			Role:    role,
			Status:  models.ProbeStatusError,
			Hosts:   []models.HostStatus{},
			Message: err.Error(),
		}
	}
	return models.HostHealthResult{
		Role:   role,
		Status: models.ProbeStatusSuccess,
		Hosts:  hostStatuses,
	}
}

// CheckDefinitionTargets probes the target URL of every catalog
// definition. Definitions without a target URL are skipped.
func (s *healthService) CheckDefinitionTargets(ctx context.Context) (*models.DefinitionProbeResponse, error) {
	defs, err := s.definitionRepo.ListDefinitions()
	if err != nil {
		return nil, err
	}

	targets := make(map[string]string, len(defs))
	for _, def := range defs {
		if def.TargetURL == "" {
			continue
		}
		targets[def.APIID] = def.TargetURL
	}

	results := s.ProbeTargets(ctx, targets)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &models.DefinitionProbeResponse{
		Total:   len(results),
		Results: results,
	}, nil
}

// ProbeTargets probes a batch of target URLs keyed by definition id with
// a bounded fan-out. Results are keyed by the same ids, so a late probe
// for an id no longer displayed is simply not matched by the caller.
func (s *healthService) ProbeTargets(ctx context.Context, targets map[string]string) map[string]models.TargetCheckResult {
	results := make(map[string]models.TargetCheckResult, len(targets))
	if len(targets) == 0 {
		return results
	}

	maxProbes := s.cfg.MaxConcurrentProbes
	if maxProbes <= 0 {
		maxProbes = 1
	}
	sem := make(chan struct{}, maxProbes)

	// stable iteration keeps probe dispatch order deterministic
	ids := make([]string, 0, len(targets))
	for id := range targets {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, id := range ids {
		targetURL := targets[id]

		if ctx.Err() != nil {
			break
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return results
		}

		wg.Add(1)
		go func(id, targetURL string) {
			defer wg.Done()
			defer func() { <-sem }()

			probeCtx, cancel := s.probeContext(ctx)
			defer cancel()

			result := s.gatewayClient.ProbeTarget(probeCtx, targetURL)
			mu.Lock()
			results[id] = result
			mu.Unlock()
		}(id, targetURL)
	}
	wg.Wait()
	return results
}

func (s *healthService) probeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(s.cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(ctx, timeout)
}
