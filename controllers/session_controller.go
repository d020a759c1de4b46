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
	"github.com/ccsops/gateway-console-service/middleware/sessionauth"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/services"
	"github.com/ccsops/gateway-console-service/utils"
)

// SessionController defines the interface for admin session operations
type SessionController interface {
	// Login handles the admin credential check
	Login(w http.ResponseWriter, r *http.Request)
	// Logout handles the session teardown request
	Logout(w http.ResponseWriter, r *http.Request)
	// GetSession reports the session state for the presented token
	GetSession(w http.ResponseWriter, r *http.Request)
}

type sessionController struct {
	sessionManager services.SessionManager
}

// NewSessionController creates a new SessionController instance
func NewSessionController(sessionManager services.SessionManager) SessionController {
	return &sessionController{
		sessionManager: sessionManager,
	}
}

// Login handles POST /auth/login
func (c *sessionController) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Login: failed to decode request", "error", err)
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := c.sessionManager.Login(req.ID, req.Password)
	if err != nil {
		// the message never reveals which credential was wrong
		log.Info("Login: rejected credential pair")
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	log.Info("Login: admin session created", "userId", session.UserID)
	utils.WriteSuccessResponse(w, http.StatusOK, models.LoginResponse{
		Token:       session.Token,
		UserID:      session.UserID,
		LastLoginAt: session.LastLoginAt,
	})
}

// Logout handles POST /auth/logout
func (c *sessionController) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	token := sessionauth.ExtractToken(r)
	if err := c.sessionManager.Logout(token); err != nil {
		if errors.Is(err, utils.ErrSessionNotFound) {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "No active session")
			return
		}
		log.Error("Logout: failed to tear down session", "error", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusNoContent, nil)
}

// GetSession handles GET /auth/session. Unknown or absent tokens are an
// anonymous session, not an error.
func (c *sessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	token := sessionauth.ExtractToken(r)

	session, err := c.sessionManager.GetSession(token)
	if err != nil {
		utils.WriteSuccessResponse(w, http.StatusOK, models.SessionView{IsAdmin: false})
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, models.SessionView{
		IsAdmin:     session.IsAdmin,
		UserID:      session.UserID,
		LastLoginAt: &session.LastLoginAt,
	})
}
