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
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ccsops/gateway-console-service/middleware/logger"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/services"
	"github.com/ccsops/gateway-console-service/utils"
)

// TicketController defines the interface for route request ticket operations
type TicketController interface {
	// SubmitTicket handles a new route request ticket submission
	SubmitTicket(w http.ResponseWriter, r *http.Request)
	// ListSubmissions handles the submission audit log request
	ListSubmissions(w http.ResponseWriter, r *http.Request)
}

type ticketController struct {
	ticketService services.TicketService
}

// NewTicketController creates a new TicketController instance
func NewTicketController(ticketService services.TicketService) TicketController {
	return &ticketController{
		ticketService: ticketService,
	}
}

// SubmitTicket handles POST /tickets
func (c *ticketController) SubmitTicket(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req models.TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("SubmitTicket: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := c.ticketService.SubmitTicket(ctx, &req)
	if err != nil {
		log.Error("SubmitTicket: submission failed", "error", err)
		c.handleTicketErrors(w, err, "Failed to submit ticket")
		return
	}

	log.Info("SubmitTicket: ticket recorded", "uuid", resp.UUID, "status", resp.Status)
	utils.WriteSuccessResponse(w, http.StatusCreated, resp)
}

// ListSubmissions handles GET /tickets?limit=...
func (c *ticketController) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	submissions, err := c.ticketService.ListSubmissions(ctx, limit)
	if err != nil {
		log.Error("ListSubmissions: failed to list submissions", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list submissions")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, submissions)
}

func (c *ticketController) handleTicketErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, utils.ErrTrackerNotConfigured):
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Tracker not configured")
	case errors.Is(err, utils.ErrTrackerUnavailable):
		utils.WriteErrorResponse(w, http.StatusBadGateway, "Tracker unavailable")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}
