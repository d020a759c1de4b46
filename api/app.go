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

package api

import (
	"net/http"

	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/middleware"
	"github.com/ccsops/gateway-console-service/middleware/logger"
	"github.com/ccsops/gateway-console-service/middleware/sessionauth"
	"github.com/ccsops/gateway-console-service/services"
	"github.com/ccsops/gateway-console-service/wiring"
)

// MakeHTTPHandler creates a new HTTP handler with middleware and routes
func MakeHTTPHandler(params *wiring.AppParams) http.Handler {
	mux := http.NewServeMux()

	// Register health check
	registerHealthCheck(mux)

	// Create a sub-mux for API v1 routes
	apiMux := http.NewServeMux()
	registerDefinitionRoutes(apiMux, params.DefinitionController)
	registerRouteRoutes(apiMux, params.RouteController)
	registerProbeRoutes(apiMux, params.HealthController)
	registerAuthRoutes(apiMux, params.SessionController)
	registerTicketRoutes(apiMux, params.TicketController, params.SessionManager)
	registerTokenRoutes(apiMux, params.TokenController, params.SessionManager)
	registerCertRoutes(apiMux, params.CertController, params.SessionManager)

	// Apply middleware in reverse order (last middleware is applied first).
	// The correlation id must be in the context before the request logger
	// builds its scoped logger.
	apiHandler := http.Handler(apiMux)
	apiHandler = logger.RequestLogger()(apiHandler)
	apiHandler = middleware.AddCorrelationID()(apiHandler)
	apiHandler = middleware.CORS(config.GetConfig().CORSAllowedOrigin)(apiHandler)
	apiHandler = middleware.RecovererOnPanic()(apiHandler)

	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiHandler))

	return mux
}

// adminOnly gates a single handler behind an authenticated admin session
func adminOnly(sessionManager services.SessionManager, handler http.HandlerFunc) http.HandlerFunc {
	return sessionauth.AdminOnly(sessionManager)(handler).ServeHTTP
}
