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

package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/utils"
)

func TestCreateIssue(t *testing.T) {
	var received map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/api/2/issue", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": "10001", "key": "PROJ-42"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, server.Client())
	key, err := c.CreateIssue(context.Background(), &models.TicketRequest{
		ProjectKey:  "PROJ",
		IssueType:   "Task",
		Assignee:    "gw-admin",
		Reporter:    "gw-admin",
		Summary:     "register new route",
		Description: "listen path /vehicle/",
	})
	require.NoError(t, err)
	assert.Equal(t, "PROJ-42", key)

	fields, ok := received["fields"].(map[string]any)
	require.True(t, ok)
	project, ok := fields["project"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "PROJ", project["key"])
	issueType, ok := fields["issuetype"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Task", issueType["name"])
	assert.NotEmpty(t, received["submittedAt"])
}

func TestCreateIssueNon2xxSurfacesFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errorMessages": ["assignee does not exist"]}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, server.Client())
	_, err := c.CreateIssue(context.Background(), &models.TicketRequest{ProjectKey: "PROJ"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrTrackerUnavailable))
}

func TestCreateIssueWithoutBaseURL(t *testing.T) {
	c := NewClient("", nil)
	_, err := c.CreateIssue(context.Background(), &models.TicketRequest{ProjectKey: "PROJ"})
	assert.True(t, errors.Is(err, utils.ErrTrackerNotConfigured))
}
