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

package models

import "time"

// DefaultCertIssuer is used when a certificate is registered without an
// issuer.
const DefaultCertIssuer = "Custom"

// Certificate is a gateway TLS certificate record managed by admins.
// ExpiresAt is kept as the submitted date string.
type Certificate struct {
	UUID       string    `gorm:"column:uuid;primaryKey" json:"id"`
	CommonName string    `gorm:"column:common_name" json:"commonName"`
	ExpiresAt  string    `gorm:"column:expires_at" json:"expiresAt"`
	Issuer     string    `gorm:"column:issuer" json:"issuer"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"-"`
}

// TableName returns the table name for the Certificate model
func (Certificate) TableName() string {
	return "certificates"
}

// CertificateRequest is the payload accepted by POST /certs. CommonName
// and ExpiresAt are required; Issuer defaults when empty.
type CertificateRequest struct {
	CommonName string `json:"commonName"`
	ExpiresAt  string `json:"expiresAt"`
	Issuer     string `json:"issuer,omitempty"`
}
