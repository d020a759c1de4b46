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
	"strings"

	"github.com/google/uuid"

	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/repositories"
	"github.com/ccsops/gateway-console-service/utils"
)

// CertService defines admin management of gateway certificates
type CertService interface {
	ListCerts(ctx context.Context) ([]models.Certificate, error)
	AddCert(ctx context.Context, req *models.CertificateRequest) (*models.Certificate, error)
	RemoveCert(ctx context.Context, certUUID string) error
}

type certService struct {
	certRepo repositories.CertRepository
}

// NewCertService creates a new certificate service
func NewCertService(certRepo repositories.CertRepository) CertService {
	return &certService{certRepo: certRepo}
}

// ListCerts returns all registered certificates, newest first.
func (s *certService) ListCerts(ctx context.Context) ([]models.Certificate, error) {
	return s.certRepo.ListCerts()
}

// AddCert validates and stores one certificate record. Common name and
// expiry are required; a missing issuer falls back to the default label.
func (s *certService) AddCert(ctx context.Context, req *models.CertificateRequest) (*models.Certificate, error) {
	if req == nil {
		return nil, utils.ErrInvalidInput
	}
	if strings.TrimSpace(req.CommonName) == "" || strings.TrimSpace(req.ExpiresAt) == "" {
		return nil, utils.ErrInvalidInput
	}

	issuer := strings.TrimSpace(req.Issuer)
	if issuer == "" {
		issuer = models.DefaultCertIssuer
	}

	cert := &models.Certificate{
		UUID:       uuid.NewString(),
		CommonName: strings.TrimSpace(req.CommonName),
		ExpiresAt:  strings.TrimSpace(req.ExpiresAt),
		Issuer:     issuer,
	}
	if err := s.certRepo.CreateCert(cert); err != nil {
		return nil, err
	}
	return cert, nil
}

// RemoveCert deletes one certificate by id.
func (s *certService) RemoveCert(ctx context.Context, certUUID string) error {
	if certUUID == "" {
		return utils.ErrInvalidInput
	}
	deleted, err := s.certRepo.DeleteCert(certUUID)
	if err != nil {
		return err
	}
	if !deleted {
		return utils.ErrCertNotFound
	}
	return nil
}
