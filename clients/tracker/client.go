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

// Package tracker submits change-request issues to the external issue
// tracker. Submissions are not retried; the caller records the outcome.
package tracker

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ccsops/gateway-console-service/clients/requests"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/utils"
)

const issuePath = "/rest/api/2/issue"

// Client creates issues on the tracker.
type Client interface {
	CreateIssue(ctx context.Context, ticket *models.TicketRequest) (string, error)
}

type client struct {
	baseURL    string
	httpClient requests.HttpClient
}

// NewClient creates a tracker client. An empty base URL yields a client
// whose submissions fail with ErrTrackerNotConfigured.
func NewClient(baseURL string, httpClient requests.HttpClient) Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &client{baseURL: baseURL, httpClient: httpClient}
}

// issueFields is the tracker's issue creation payload.
type issueFields struct {
	Project     namedKey  `json:"project"`
	IssueType   namedName `json:"issuetype"`
	Assignee    namedName `json:"assignee"`
	Reporter    namedName `json:"reporter"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
}

type namedKey struct {
	Key string `json:"key"`
}

type namedName struct {
	Name string `json:"name"`
}

type createIssueRequest struct {
	Fields      issueFields `json:"fields"`
	SubmittedAt string      `json:"submittedAt"`
}

type createIssueResponse struct {
	Key string `json:"key"`
}

// CreateIssue posts the ticket and returns the created issue key. A
// non-2xx response or transport failure surfaces as an error wrapping
// ErrTrackerUnavailable so callers can record a failed submission.
func (c *client) CreateIssue(ctx context.Context, ticket *models.TicketRequest) (string, error) {
	if c.baseURL == "" {
		return "", utils.ErrTrackerNotConfigured
	}

	req := &requests.HttpRequest{
		Name:   "tracker.CreateIssue",
		URL:    c.baseURL + issuePath,
		Method: http.MethodPost,
	}
	req.SetHeader("Accept", "application/json")
	req.SetJson(createIssueRequest{
		Fields: issueFields{
			Project:     namedKey{Key: ticket.ProjectKey},
			IssueType:   namedName{Name: ticket.IssueType},
			Assignee:    namedName{Name: ticket.Assignee},
			Reporter:    namedName{Name: ticket.Reporter},
			Summary:     ticket.Summary,
			Description: ticket.Description,
		},
		SubmittedAt: time.Now().Format(time.RFC3339),
	})

	var resp createIssueResponse
	if err := requests.SendRequest(ctx, c.httpClient, req).ScanResponse(&resp, http.StatusCreated); err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrTrackerUnavailable, err)
	}
	return resp.Key, nil
}
