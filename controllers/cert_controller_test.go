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
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/utils"
)

type mockCertService struct {
	listFunc   func(ctx context.Context) ([]models.Certificate, error)
	addFunc    func(ctx context.Context, req *models.CertificateRequest) (*models.Certificate, error)
	removeFunc func(ctx context.Context, certUUID string) error
}

func (m *mockCertService) ListCerts(ctx context.Context) ([]models.Certificate, error) {
	return m.listFunc(ctx)
}

func (m *mockCertService) AddCert(ctx context.Context, req *models.CertificateRequest) (*models.Certificate, error) {
	return m.addFunc(ctx, req)
}

func (m *mockCertService) RemoveCert(ctx context.Context, certUUID string) error {
	return m.removeFunc(ctx, certUUID)
}

func TestListCertsEndpoint(t *testing.T) {
	svc := &mockCertService{
		listFunc: func(ctx context.Context) ([]models.Certificate, error) {
			return []models.Certificate{
				{UUID: "c1", CommonName: "*.ccs.internal", ExpiresAt: "2027-05-01", Issuer: "DigiCert"},
			}, nil
		},
	}
	ctrl := NewCertController(svc)

	req := httptest.NewRequest(http.MethodGet, "/certs", nil)
	rec := httptest.NewRecorder()
	ctrl.ListCerts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var certs []models.Certificate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&certs))
	require.Len(t, certs, 1)
	assert.Equal(t, "*.ccs.internal", certs[0].CommonName)
}

func TestAddCertEndpoint(t *testing.T) {
	svc := &mockCertService{
		addFunc: func(ctx context.Context, req *models.CertificateRequest) (*models.Certificate, error) {
			assert.Equal(t, "api.ccs.internal", req.CommonName)
			return &models.Certificate{UUID: "c1", CommonName: req.CommonName, ExpiresAt: req.ExpiresAt, Issuer: models.DefaultCertIssuer}, nil
		},
	}
	ctrl := NewCertController(svc)

	body := strings.NewReader(`{"commonName":"api.ccs.internal","expiresAt":"2026-12-15"}`)
	req := httptest.NewRequest(http.MethodPost, "/certs", body)
	rec := httptest.NewRecorder()
	ctrl.AddCert(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var cert models.Certificate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&cert))
	assert.Equal(t, models.DefaultCertIssuer, cert.Issuer)
}

func TestAddCertEndpointErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation failure", err: utils.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unexpected", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockCertService{
				addFunc: func(ctx context.Context, req *models.CertificateRequest) (*models.Certificate, error) {
					return nil, tt.err
				},
			}
			ctrl := NewCertController(svc)

			req := httptest.NewRequest(http.MethodPost, "/certs", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()
			ctrl.AddCert(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRemoveCertEndpoint(t *testing.T) {
	svc := &mockCertService{
		removeFunc: func(ctx context.Context, certUUID string) error {
			assert.Equal(t, "c1", certUUID)
			return nil
		},
	}
	ctrl := NewCertController(svc)

	req := httptest.NewRequest(http.MethodDelete, "/certs/c1", nil)
	req.SetPathValue("id", "c1")
	rec := httptest.NewRecorder()
	ctrl.RemoveCert(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRemoveCertEndpointNotFound(t *testing.T) {
	svc := &mockCertService{
		removeFunc: func(ctx context.Context, certUUID string) error {
			return utils.ErrCertNotFound
		},
	}
	ctrl := NewCertController(svc)

	req := httptest.NewRequest(http.MethodDelete, "/certs/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	ctrl.RemoveCert(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
