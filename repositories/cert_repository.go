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

package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/ccsops/gateway-console-service/models"
)

// CertRepository defines the interface for certificate data access
type CertRepository interface {
	CreateCert(cert *models.Certificate) error
	ListCerts() ([]models.Certificate, error)
	DeleteCert(certUUID string) (bool, error)
}

// CertRepo implements CertRepository using GORM
type CertRepo struct {
	db *gorm.DB
}

// NewCertRepo creates a new certificate repository
func NewCertRepo(db *gorm.DB) CertRepository {
	return &CertRepo{db: db}
}

// CreateCert stores one certificate record
func (r *CertRepo) CreateCert(cert *models.Certificate) error {
	cert.CreatedAt = time.Now()
	return r.db.Create(cert).Error
}

// ListCerts retrieves all certificates, newest first
func (r *CertRepo) ListCerts() ([]models.Certificate, error) {
	var certs []models.Certificate
	err := r.db.Order("created_at DESC").Find(&certs).Error
	if err != nil {
		return nil, err
	}
	return certs, nil
}

// DeleteCert removes one certificate and reports whether a row matched
func (r *CertRepo) DeleteCert(certUUID string) (bool, error) {
	res := r.db.Where("uuid = ?", certUUID).Delete(&models.Certificate{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
