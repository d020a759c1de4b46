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

package utils

import "errors"

var (
	// Resource not found errors
	ErrDefinitionNotFound = errors.New("definition not found")
	ErrCountryNotFound    = errors.New("country not configured")
	ErrSessionNotFound    = errors.New("session not found")
	ErrCertNotFound       = errors.New("certificate not found")

	// Request errors
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidInput = errors.New("invalid input")

	// Authorization errors
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Upstream errors
	ErrGatewayUnreachable   = errors.New("gateway unreachable")
	ErrTrackerUnavailable   = errors.New("tracker unavailable")
	ErrTrackerNotConfigured = errors.New("tracker base URL not configured")

	// Token issuing errors
	ErrInvalidSigningKey = errors.New("invalid signing key")
)
