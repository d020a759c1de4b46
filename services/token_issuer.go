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
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/utils"
)

// tokenTTL is the fixed lifetime of issued tokens.
const tokenTTL = 2 * time.Hour

// TokenIssuer signs short-lived RS256 JWTs with a caller-supplied key.
type TokenIssuer interface {
	IssueToken(ctx context.Context, req *models.TokenRequest) (*models.TokenResponse, error)
}

type tokenIssuer struct{}

// NewTokenIssuer creates a new token issuer
func NewTokenIssuer() TokenIssuer {
	return &tokenIssuer{}
}

// IssueToken signs a JWT carrying iss, aud, iat, a 2h exp, and an
// optional country claim. The private key is used for this one
// signature and never retained.
func (t *tokenIssuer) IssueToken(ctx context.Context, req *models.TokenRequest) (*models.TokenResponse, error) {
	if req == nil || strings.TrimSpace(req.Issuer) == "" || strings.TrimSpace(req.Audience) == "" {
		return nil, utils.ErrInvalidInput
	}

	privateKey, err := parsePrivateKey(req.PrivateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrInvalidSigningKey, err)
	}

	now := time.Now()
	expiresAt := now.Add(tokenTTL)
	claims := jwt.MapClaims{
		"iss": req.Issuer,
		"aud": req.Audience,
		"iat": now.Unix(),
		"exp": expiresAt.Unix(),
	}
	if req.Country != "" {
		claims["country"] = req.Country
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &models.TokenResponse{
		Token:     signed,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// parsePrivateKey accepts an RSA private key in PKCS#8 or PKCS#1 PEM
// form.
func parsePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("not an RSA private key")
		}
		return rsaKey, nil
	}
	return x509.ParsePKCS1PrivateKey(block.Bytes)
}
