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

	"github.com/ccsops/gateway-console-service/middleware/logger"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/services"
	"github.com/ccsops/gateway-console-service/utils"
)

// TokenController defines the interface for the CCS token issuer
type TokenController interface {
	// IssueToken handles a token signing request
	IssueToken(w http.ResponseWriter, r *http.Request)
}

type tokenController struct {
	tokenIssuer services.TokenIssuer
}

// NewTokenController creates a new TokenController instance
func NewTokenController(tokenIssuer services.TokenIssuer) TokenController {
	return &tokenController{
		tokenIssuer: tokenIssuer,
	}
}

// IssueToken handles POST /tokens. The private key is taken from the
// request body and never persisted or logged.
func (c *tokenController) IssueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("IssueToken: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := c.tokenIssuer.IssueToken(ctx, &req)
	if err != nil {
		log.Error("IssueToken: signing failed", "iss", req.Issuer, "error", err)
		c.handleTokenErrors(w, err, "Failed to issue token")
		return
	}

	log.Info("IssueToken: token issued", "iss", req.Issuer, "aud", req.Audience)
	utils.WriteSuccessResponse(w, http.StatusOK, resp)
}

func (c *tokenController) handleTokenErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrInvalidSigningKey):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid signing key")
	case errors.Is(err, utils.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}
