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
	"time"

	"github.com/ccsops/gateway-console-service/utils"
)

type healthCheckResponse struct {
	OK bool   `json:"ok"`
	Ts string `json:"ts"`
}

// registerHealthCheck registers the liveness endpoint on the root mux,
// outside the API middleware chain
func registerHealthCheck(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteSuccessResponse(w, http.StatusOK, healthCheckResponse{
			OK: true,
			Ts: time.Now().UTC().Format(time.RFC3339),
		})
	})
}
