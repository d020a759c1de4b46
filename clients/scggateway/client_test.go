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

package scggateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccsops/gateway-console-service/models"
)

func TestFetchRoutes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/actuator/gateway/routes", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"route_id": "route1", "predicate": "Paths: [/service1/api]", "filters": ["[[StripPrefix parts = 1], order = 1]"], "uri": "lb://target1", "order": 0}
		]`))
	}))
	defer server.Close()

	c := NewClientWithHTTPClient(server.Client())
	routes, err := c.FetchRoutes(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, "route1", routes[0].RouteID)
	assert.Equal(t, "lb://target1", routes[0].URI)
}

func TestFetchRoutesUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClientWithHTTPClient(server.Client())
	_, err := c.FetchRoutes(context.Background(), server.URL)
	assert.Error(t, err)
}

func TestFetchGlobalFiltersPlainMap(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/actuator/gateway/globalfilters", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"com.abc.gateway.filter.LogFilter@674512dd8": -120}`))
	}))
	defer server.Close()

	c := NewClientWithHTTPClient(server.Client())
	filters, err := c.FetchGlobalFilters(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, -120, filters["com.abc.gateway.filter.LogFilter@674512dd8"])
}

func TestFetchGlobalFiltersWrappedInArray(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"com.abc.gateway.filter.AFilter@654825dd8": -60}]`))
	}))
	defer server.Close()

	c := NewClientWithHTTPClient(server.Client())
	filters, err := c.FetchGlobalFilters(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, -60, filters["com.abc.gateway.filter.AFilter@654825dd8"])
}

func TestFetchHostHealthPairRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/check/hostHealth", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[["host-a", "connected"], ["host-b", "disconnected"], ["host-c", "booting"]]`))
	}))
	defer server.Close()

	c := NewClientWithHTTPClient(server.Client())
	hosts, err := c.FetchHostHealth(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, hosts, 3)
	assert.Equal(t, models.HostStatus{Name: "host-a", Status: models.ConnectionStateConnected}, hosts[0])
	assert.Equal(t, models.HostStatus{Name: "host-b", Status: models.ConnectionStateDisconnected}, hosts[1])

	// unrecognized states normalize to unknown
	assert.Equal(t, models.ConnectionStateUnknown, hosts[2].Status)
}

func TestFetchHostHealthObjectRows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "host-a", "status": "connecting"}]`))
	}))
	defer server.Close()

	c := NewClientWithHTTPClient(server.Client())
	hosts, err := c.FetchHostHealth(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, hosts, 1)
	assert.Equal(t, models.HostStatus{Name: "host-a", Status: models.ConnectionStateConnecting}, hosts[0])
}

func TestProbeTarget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := NewClientWithHTTPClient(server.Client())
	result := c.ProbeTarget(context.Background(), server.URL)
	assert.True(t, result.OK)
	assert.Equal(t, http.StatusNoContent, result.Status)
}

func TestProbeTargetUnreachable(t *testing.T) {
	c := NewClientWithHTTPClient(&http.Client{})
	result := c.ProbeTarget(context.Background(), "http://127.0.0.1:1")
	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Reason)
}

func TestProbeTargetServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewClientWithHTTPClient(server.Client())
	result := c.ProbeTarget(context.Background(), server.URL)
	assert.False(t, result.OK)
	assert.Equal(t, http.StatusInternalServerError, result.Status)
}
