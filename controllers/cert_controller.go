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

// CertController defines the interface for certificate management operations
type CertController interface {
	// ListCerts handles the certificate listing request
	ListCerts(w http.ResponseWriter, r *http.Request)
	// AddCert handles the certificate registration request
	AddCert(w http.ResponseWriter, r *http.Request)
	// RemoveCert handles the certificate removal request
	RemoveCert(w http.ResponseWriter, r *http.Request)
}

type certController struct {
	certService services.CertService
}

// NewCertController creates a new CertController instance
func NewCertController(certService services.CertService) CertController {
	return &certController{
		certService: certService,
	}
}

// ListCerts handles GET /certs
func (c *certController) ListCerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	certs, err := c.certService.ListCerts(ctx)
	if err != nil {
		log.Error("ListCerts: failed to list certificates", "error", err)
		c.handleCertErrors(w, err, "Failed to list certificates")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusOK, certs)
}

// AddCert handles POST /certs
func (c *certController) AddCert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)

	var req models.CertificateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cert, err := c.certService.AddCert(ctx, &req)
	if err != nil {
		log.Error("AddCert: failed to register certificate", "error", err)
		c.handleCertErrors(w, err, "Failed to register certificate")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusCreated, cert)
}

// RemoveCert handles DELETE /certs/{id}
func (c *certController) RemoveCert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.GetLogger(ctx)
	certUUID := r.PathValue("id")

	if err := c.certService.RemoveCert(ctx, certUUID); err != nil {
		log.Error("RemoveCert: failed to remove certificate", "id", certUUID, "error", err)
		c.handleCertErrors(w, err, "Failed to remove certificate")
		return
	}

	utils.WriteSuccessResponse(w, http.StatusNoContent, nil)
}

func (c *certController) handleCertErrors(w http.ResponseWriter, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, utils.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Common name and expiry are required")
	case errors.Is(err, utils.ErrCertNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, "Not Found")
	default:
		utils.WriteErrorResponse(w, http.StatusInternalServerError, fallbackMsg)
	}
}
