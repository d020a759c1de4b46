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
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/utils"
)

func generateTestKeyPEM(t *testing.T) (string, *rsa.PublicKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)
	pemData := pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der})
	return string(pemData), &key.PublicKey
}

func TestIssueToken(t *testing.T) {
	privatePEM, publicKey := generateTestKeyPEM(t)
	issuer := NewTokenIssuer()

	resp, err := issuer.IssueToken(context.Background(), &models.TokenRequest{
		PrivateKeyPEM: privatePEM,
		Issuer:        "gateway-console",
		Audience:      "ccs-api",
		Country:       "KR",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (any, error) {
		return publicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "gateway-console", claims["iss"])
	assert.Equal(t, "ccs-api", claims["aud"])
	assert.Equal(t, "KR", claims["country"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(2*time.Hour).Unix(), int64(exp), 10)
	assert.Equal(t, int64(exp), resp.ExpiresAt)
}

func TestIssueTokenPKCS1Key(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	pemData := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	resp, err := NewTokenIssuer().IssueToken(context.Background(), &models.TokenRequest{
		PrivateKeyPEM: string(pemData),
		Issuer:        "gateway-console",
		Audience:      "ccs-api",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestIssueTokenOmitsEmptyCountry(t *testing.T) {
	privatePEM, publicKey := generateTestKeyPEM(t)

	resp, err := NewTokenIssuer().IssueToken(context.Background(), &models.TokenRequest{
		PrivateKeyPEM: privatePEM,
		Issuer:        "gateway-console",
		Audience:      "ccs-api",
	})
	require.NoError(t, err)

	parsed, err := jwt.Parse(resp.Token, func(token *jwt.Token) (any, error) {
		return publicKey, nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)
	_, hasCountry := claims["country"]
	assert.False(t, hasCountry)
}

func TestIssueTokenMalformedKey(t *testing.T) {
	_, err := NewTokenIssuer().IssueToken(context.Background(), &models.TokenRequest{
		PrivateKeyPEM: "not a pem",
		Issuer:        "gateway-console",
		Audience:      "ccs-api",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, utils.ErrInvalidSigningKey))
}

func TestIssueTokenMissingIssuerOrAudience(t *testing.T) {
	privatePEM, _ := generateTestKeyPEM(t)

	_, err := NewTokenIssuer().IssueToken(context.Background(), &models.TokenRequest{
		PrivateKeyPEM: privatePEM,
		Audience:      "ccs-api",
	})
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))

	_, err = NewTokenIssuer().IssueToken(context.Background(), &models.TokenRequest{
		PrivateKeyPEM: privatePEM,
		Issuer:        "gateway-console",
	})
	assert.True(t, errors.Is(err, utils.ErrInvalidInput))
}
