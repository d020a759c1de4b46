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

package sessionauth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/services"
)

func newTestManager(t *testing.T) (services.SessionManager, string) {
	t.Helper()
	manager := services.NewSessionManager(&config.AdminConfig{
		ID:       "ccsgateway",
		Password: "GWAdmin!1",
	})
	session, err := manager.Login("ccsgateway", "GWAdmin!1")
	require.NoError(t, err)
	return manager, session.Token
}

func TestAdminOnlyAllowsValidSession(t *testing.T) {
	manager, token := newTestManager(t)

	var sawSession bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawSession = GetSession(r.Context()) != nil
		w.WriteHeader(http.StatusOK)
	})
	handler := AdminOnly(manager)(next)

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, sawSession)
}

func TestAdminOnlyRejectsMissingToken(t *testing.T) {
	manager, _ := newTestManager(t)
	handler := AdminOnly(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnlyRejectsUnknownToken(t *testing.T) {
	manager, _ := newTestManager(t)
	handler := AdminOnly(manager)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	req := httptest.NewRequest(http.MethodGet, "/tickets", nil)
	req.Header.Set(SessionTokenHeader, "not-a-session")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractTokenPrefersAuthorizationHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer abc")
	req.Header.Set(SessionTokenHeader, "def")
	assert.Equal(t, "abc", ExtractToken(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionTokenHeader, "def")
	assert.Equal(t, "def", ExtractToken(req))
}
