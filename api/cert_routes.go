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

	"github.com/ccsops/gateway-console-service/controllers"
	"github.com/ccsops/gateway-console-service/middleware"
	"github.com/ccsops/gateway-console-service/services"
)

// registerCertRoutes registers the admin certificate management routes
func registerCertRoutes(mux *http.ServeMux, ctrl controllers.CertController, sessionManager services.SessionManager) {
	middleware.HandleFuncWithValidation(mux, "GET /certs", adminOnly(sessionManager, ctrl.ListCerts))
	middleware.HandleFuncWithValidation(mux, "POST /certs", adminOnly(sessionManager, ctrl.AddCert))
	middleware.HandleFuncWithValidation(mux, "DELETE /certs/{id}", adminOnly(sessionManager, ctrl.RemoveCert))
}
