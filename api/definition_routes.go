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
)

// registerDefinitionRoutes registers the gateway definition catalog routes
func registerDefinitionRoutes(mux *http.ServeMux, ctrl controllers.DefinitionController) {
	middleware.HandleFuncWithValidation(mux, "GET /definitions", ctrl.ListDefinitions)
	middleware.HandleFuncWithValidation(mux, "GET /definitions/views", ctrl.ListDefinitionViews)
	middleware.HandleFuncWithValidation(mux, "GET /definitions/by-slug/{slug}", ctrl.GetDefinitionBySlug)
	middleware.HandleFuncWithValidation(mux, "GET /definitions/{id}", ctrl.GetDefinition)
}
