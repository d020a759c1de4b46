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

// Package scggateway talks to the microservice gateway's actuator and
// health endpoints. All calls are idempotent GETs and go through a
// retrying client.
package scggateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ccsops/gateway-console-service/clients/requests"
	"github.com/ccsops/gateway-console-service/models"
)

const (
	routesPath        = "/actuator/gateway/routes"
	globalFiltersPath = "/actuator/gateway/globalfilters"
	hostHealthPath    = "/check/hostHealth"
)

// Client fetches route and health data from one gateway instance.
type Client interface {
	FetchRoutes(ctx context.Context, baseURL string) ([]models.RawRoute, error)
	FetchGlobalFilters(ctx context.Context, baseURL string) (models.RawGlobalFilters, error)
	FetchHostHealth(ctx context.Context, baseURL string) ([]models.HostStatus, error)
	ProbeTarget(ctx context.Context, targetURL string) models.TargetCheckResult
}

type client struct {
	httpClient requests.HttpClient
}

// NewClient creates a gateway client backed by a retrying HTTP client.
func NewClient() Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.Logger = nil
	return &client{httpClient: retryClient.StandardClient()}
}

// NewClientWithHTTPClient creates a gateway client with a caller-owned
// HTTP client, used by tests.
func NewClientWithHTTPClient(httpClient requests.HttpClient) Client {
	return &client{httpClient: httpClient}
}

// FetchRoutes retrieves the gateway's route batch.
func (c *client) FetchRoutes(ctx context.Context, baseURL string) ([]models.RawRoute, error) {
	req := &requests.HttpRequest{
		Name:   "scggateway.FetchRoutes",
		URL:    baseURL + routesPath,
		Method: http.MethodGet,
	}
	req.SetHeader("Accept", "application/json")

	var routes []models.RawRoute
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&routes, http.StatusOK); err != nil {
		return nil, fmt.Errorf("scggateway.FetchRoutes: %w", err)
	}
	return routes, nil
}

// FetchGlobalFilters retrieves the gateway's global filter map. The
// actuator wraps the map in a single-element array on some versions;
// both shapes are accepted.
func (c *client) FetchGlobalFilters(ctx context.Context, baseURL string) (models.RawGlobalFilters, error) {
	req := &requests.HttpRequest{
		Name:   "scggateway.FetchGlobalFilters",
		URL:    baseURL + globalFiltersPath,
		Method: http.MethodGet,
	}
	req.SetHeader("Accept", "application/json")

	var raw json.RawMessage
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&raw, http.StatusOK); err != nil {
		return nil, fmt.Errorf("scggateway.FetchGlobalFilters: %w", err)
	}

	var filters models.RawGlobalFilters
	if err := json.Unmarshal(raw, &filters); err == nil {
		return filters, nil
	}
	var wrapped []models.RawGlobalFilters
	if err := json.Unmarshal(raw, &wrapped); err == nil && len(wrapped) > 0 {
		return wrapped[0], nil
	}
	return nil, fmt.Errorf("scggateway.FetchGlobalFilters: unrecognized payload shape")
}

// FetchHostHealth retrieves the downstream host states of one gateway.
// Rows arrive either as [label, state] pairs or as {name, status}
// objects; unrecognized states normalize to unknown.
func (c *client) FetchHostHealth(ctx context.Context, baseURL string) ([]models.HostStatus, error) {
	req := &requests.HttpRequest{
		Name:   "scggateway.FetchHostHealth",
		URL:    baseURL + hostHealthPath,
		Method: http.MethodGet,
	}
	req.SetHeader("Accept", "application/json")

	var rows []json.RawMessage
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&rows, http.StatusOK); err != nil {
		return nil, fmt.Errorf("scggateway.FetchHostHealth: %w", err)
	}

	hosts := make([]models.HostStatus, 0, len(rows))
	for i, row := range rows {
		hosts = append(hosts, normalizeHostRow(row, i))
	}
	return hosts, nil
}

func normalizeHostRow(row json.RawMessage, index int) models.HostStatus {
	var pair []string
	if err := json.Unmarshal(row, &pair); err == nil {
		status := models.HostStatus{Name: fmt.Sprintf("host-%d", index), Status: models.ConnectionStateUnknown}
		if len(pair) > 0 {
			status.Name = pair[0]
		}
		if len(pair) > 1 {
			status.Status = models.NormalizeConnectionState(pair[1])
		}
		return status
	}

	var obj struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(row, &obj); err == nil && obj.Name != "" {
		return models.HostStatus{Name: obj.Name, Status: models.NormalizeConnectionState(obj.Status)}
	}
	return models.HostStatus{Name: fmt.Sprintf("host-%d", index), Status: models.ConnectionStateUnknown}
}

// ProbeTarget checks whether a single upstream target URL is reachable.
// Failures are reported in the result, never as an error.
func (c *client) ProbeTarget(ctx context.Context, targetURL string) models.TargetCheckResult {
	req := &requests.HttpRequest{
		Name:   "scggateway.ProbeTarget",
		URL:    targetURL,
		Method: http.MethodGet,
	}

	result := requests.SendRequest(ctx, c.httpClient, req)
	if err := result.Err(); err != nil {
		return models.TargetCheckResult{OK: false, Reason: err.Error()}
	}
	status := result.StatusCode()
	return models.TargetCheckResult{
		OK:     status > 0 && status < http.StatusInternalServerError,
		Status: status,
	}
}
