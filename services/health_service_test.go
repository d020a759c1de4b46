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
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/utils"
)

type fakeHealthDefinitionRepo struct {
	defs    []models.Definition
	listErr error
}

func (f *fakeHealthDefinitionRepo) UpsertDefinitions([]models.Definition) error { return nil }
func (f *fakeHealthDefinitionRepo) ListDefinitions() ([]models.Definition, error) {
	return f.defs, f.listErr
}
func (f *fakeHealthDefinitionRepo) GetDefinitionByID(string) (*models.Definition, error) {
	return nil, nil
}
func (f *fakeHealthDefinitionRepo) GetDefinitionBySlug(string) (*models.Definition, error) {
	return nil, nil
}

func newTestHealthService(client *mockGatewayClient, hostMap config.GatewayHostMap) HealthService {
	return newTestHealthServiceWithRepo(client, hostMap, &fakeHealthDefinitionRepo{})
}

func newTestHealthServiceWithRepo(client *mockGatewayClient, hostMap config.GatewayHostMap, repo *fakeHealthDefinitionRepo) HealthService {
	return NewHealthService(client, repo, hostMap, &config.HealthCheckConfig{
		TimeoutSeconds:      2,
		MaxConcurrentProbes: 2,
	}, "KR")
}

func TestCheckTarget(t *testing.T) {
	client := &mockGatewayClient{
		probeTargetFunc: func(ctx context.Context, targetURL string) models.TargetCheckResult {
			return models.TargetCheckResult{OK: true, Status: 200}
		},
	}
	svc := newTestHealthService(client, config.GatewayHostMap{})

	result, err := svc.CheckTarget(context.Background(), "https://vehicle.internal/")
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestCheckTargetEmptyURL(t *testing.T) {
	svc := newTestHealthService(&mockGatewayClient{}, config.GatewayHostMap{})

	_, err := svc.CheckTarget(context.Background(), "")
	assert.True(t, errors.Is(err, utils.ErrBadRequest))
}

func TestCheckTargetUnreachableIsNotAnError(t *testing.T) {
	client := &mockGatewayClient{
		probeTargetFunc: func(ctx context.Context, targetURL string) models.TargetCheckResult {
			return models.TargetCheckResult{OK: false, Reason: "connection refused"}
		},
	}
	svc := newTestHealthService(client, config.GatewayHostMap{})

	result, err := svc.CheckTarget(context.Background(), "http://127.0.0.1:1")
	require.NoError(t, err)
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Reason)
}

func TestCheckHostHealthCollectsAllRoles(t *testing.T) {
	client := &mockGatewayClient{
		fetchHostHealthFunc: func(ctx context.Context, baseURL string) ([]models.HostStatus, error) {
			switch baseURL {
			case "http://igw.kr.internal":
				return []models.HostStatus{{Name: "igw-1", Status: models.ConnectionStateConnected}}, nil
			case "http://eigw.kr.internal":
				return nil, errors.New("connection refused")
			}
			return nil, errors.New("unexpected host")
		},
	}
	hostMap := config.GatewayHostMap{
		"KR": config.CountryHosts{
			"igw":  "http://igw.kr.internal",
			"eigw": "http://eigw.kr.internal",
			"ogw":  "",
		},
	}
	svc := newTestHealthService(client, hostMap)

	resp, err := svc.CheckHostHealth(context.Background(), "kr")
	require.NoError(t, err)
	assert.Equal(t, "KR", resp.Country)
	require.Len(t, resp.Results, 3)

	assert.Equal(t, models.ProbeStatusSuccess, resp.Results["igw"].Status)
	require.Len(t, resp.Results["igw"].Hosts, 1)
	assert.Equal(t, "igw-1", resp.Results["igw"].Hosts[0].Name)

	assert.Equal(t, models.ProbeStatusError, resp.Results["eigw"].Status)
	assert.NotEmpty(t, resp.Results["eigw"].Message)

	assert.Equal(t, models.ProbeStatusMissing, resp.Results["ogw"].Status)
}

func TestCheckHostHealthUnknownCountry(t *testing.T) {
	svc := newTestHealthService(&mockGatewayClient{}, config.GatewayHostMap{})

	_, err := svc.CheckHostHealth(context.Background(), "ZZ")
	assert.True(t, errors.Is(err, utils.ErrCountryNotFound))
}

func TestCheckHostHealthDefaultsCountry(t *testing.T) {
	hostMap := config.GatewayHostMap{
		"KR": config.CountryHosts{"igw": "http://igw.kr.internal"},
	}
	client := &mockGatewayClient{
		fetchHostHealthFunc: func(ctx context.Context, baseURL string) ([]models.HostStatus, error) {
			return []models.HostStatus{}, nil
		},
	}
	svc := newTestHealthService(client, hostMap)

	resp, err := svc.CheckHostHealth(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "KR", resp.Country)
}

func TestCheckHostHealthNormalizesCountryCase(t *testing.T) {
	hostMap := config.GatewayHostMap{
		"KR": config.CountryHosts{"igw": ""},
	}
	svc := newTestHealthService(&mockGatewayClient{}, hostMap)

	resp, err := svc.CheckHostHealth(context.Background(), "kr")
	require.NoError(t, err)
	assert.Equal(t, "KR", resp.Country)
}

func TestCheckDefinitionTargets(t *testing.T) {
	repo := &fakeHealthDefinitionRepo{
		defs: []models.Definition{
			{APIID: "api-1", TargetURL: "http://up.internal"},
			{APIID: "api-2", TargetURL: "http://down.internal"},
			{APIID: "api-3"},
		},
	}
	client := &mockGatewayClient{
		probeTargetFunc: func(ctx context.Context, targetURL string) models.TargetCheckResult {
			return models.TargetCheckResult{OK: targetURL == "http://up.internal", Status: 200}
		},
	}
	svc := newTestHealthServiceWithRepo(client, config.GatewayHostMap{}, repo)

	resp, err := svc.CheckDefinitionTargets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.True(t, resp.Results["api-1"].OK)
	assert.False(t, resp.Results["api-2"].OK)

	// api-3 has no target url and is skipped
	_, probed := resp.Results["api-3"]
	assert.False(t, probed)
}

func TestCheckDefinitionTargetsRepoError(t *testing.T) {
	repo := &fakeHealthDefinitionRepo{listErr: errors.New("db down")}
	svc := newTestHealthServiceWithRepo(&mockGatewayClient{}, config.GatewayHostMap{}, repo)

	_, err := svc.CheckDefinitionTargets(context.Background())
	assert.Error(t, err)
}

func TestProbeTargetsKeysResultsByID(t *testing.T) {
	client := &mockGatewayClient{
		probeTargetFunc: func(ctx context.Context, targetURL string) models.TargetCheckResult {
			return models.TargetCheckResult{OK: targetURL == "http://up.internal", Status: 200}
		},
	}
	svc := newTestHealthService(client, config.GatewayHostMap{})

	results := svc.ProbeTargets(context.Background(), map[string]string{
		"api-1": "http://up.internal",
		"api-2": "http://down.internal",
	})
	require.Len(t, results, 2)
	assert.True(t, results["api-1"].OK)
	assert.False(t, results["api-2"].OK)
}

func TestProbeTargetsBoundedConcurrency(t *testing.T) {
	var inFlight, peak int64
	var mu sync.Mutex
	client := &mockGatewayClient{
		probeTargetFunc: func(ctx context.Context, targetURL string) models.TargetCheckResult {
			current := atomic.AddInt64(&inFlight, 1)
			mu.Lock()
			if current > peak {
				peak = current
			}
			mu.Unlock()
			defer atomic.AddInt64(&inFlight, -1)
			return models.TargetCheckResult{OK: true, Status: 200}
		},
	}
	svc := newTestHealthService(client, config.GatewayHostMap{})

	targets := make(map[string]string, 20)
	for i := 0; i < 20; i++ {
		targets[string(rune('a'+i))] = "http://target.internal"
	}
	results := svc.ProbeTargets(context.Background(), targets)
	assert.Len(t, results, 20)

	mu.Lock()
	defer mu.Unlock()
	assert.LessOrEqual(t, peak, int64(2))
}

func TestProbeTargetsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestHealthService(&mockGatewayClient{}, config.GatewayHostMap{})
	results := svc.ProbeTargets(ctx, map[string]string{"api-1": "http://target.internal"})

	// cancelled before dispatch: no probes complete
	assert.Empty(t, results)
}
