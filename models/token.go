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

// TokenRequest is the payload accepted by POST /tokens. PrivateKeyPEM is
// an RS256 private key in PKCS#8 or PKCS#1 PEM form; it is used for
// signing only and never stored.
type TokenRequest struct {
	PrivateKeyPEM string `json:"privateKey"`
	Issuer        string `json:"iss"`
	Audience      string `json:"aud"`
	Country       string `json:"country,omitempty"`
}

// TokenResponse carries the signed JWT and its expiry in unix seconds.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
