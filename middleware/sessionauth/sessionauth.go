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

package sessionauth

import (
	"context"
	"net/http"
	"strings"

	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/services"
	"github.com/ccsops/gateway-console-service/utils"
)

// SessionTokenHeader is the fallback header for clients that do not use
// the Authorization header.
const SessionTokenHeader = "X-Session-Token"

type sessionCtxKey struct{}

var sessionKey sessionCtxKey

// ExtractToken pulls the opaque session token from the Authorization
// header (Bearer scheme) or the X-Session-Token header.
func ExtractToken(r *http.Request) string {
	if auth := r.Header.Get("Authorization"); auth != "" {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return r.Header.Get(SessionTokenHeader)
}

// AdminOnly rejects requests that do not carry a valid admin session.
func AdminOnly(sessionManager services.SessionManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ExtractToken(r)
			if token == "" {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "missing session token")
				return
			}
			session, err := sessionManager.GetSession(token)
			if err != nil {
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "invalid session")
				return
			}
			if !session.IsAdmin {
				utils.WriteErrorResponse(w, http.StatusForbidden, "admin session required")
				return
			}
			ctx := context.WithValue(r.Context(), sessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the authenticated session stored by AdminOnly, or
// nil when the request was not authenticated.
func GetSession(ctx context.Context) *models.Session {
	session, ok := ctx.Value(sessionKey).(*models.Session)
	if !ok {
		return nil
	}
	return session
}
