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

// RawRoute is a route entry as served by the gateway's
// /actuator/gateway/routes endpoint.
type RawRoute struct {
	RouteID   string   `json:"route_id"`
	Predicate string   `json:"predicate"`
	Filters   []string `json:"filters"`
	URI       string   `json:"uri"`
	Order     int      `json:"order"`
}

// RawGlobalFilters is the /actuator/gateway/globalfilters payload:
// fully-qualified filter class (with @instance suffix) to execution order.
type RawGlobalFilters map[string]int

// PredicateView is a parsed predicate entry of a route.
type PredicateView struct {
	Name string            `json:"name"`
	Args map[string]string `json:"args"`
}

// FilterView is a parsed filter entry of a route. Order is nil when the
// filter string carried no order clause; such filters sort last.
type FilterView struct {
	Name     string `json:"name"`
	Order    *int   `json:"order"`
	IsGlobal bool   `json:"isGlobal"`
}

// RouteView is the parsed display model of a route. Filters holds the
// route's own filters merged with the global filters, sorted ascending
// by order.
type RouteView struct {
	RouteID    string          `json:"routeId"`
	URI        string          `json:"uri"`
	Order      int             `json:"order"`
	Predicates []PredicateView `json:"predicates"`
	Filters    []FilterView    `json:"filters"`
}

// GlobalFilterView is a parsed global filter. Phase is "Pre-filter" for
// negative orders and "Post-filter" otherwise.
type GlobalFilterView struct {
	Name  string `json:"name"`
	Order int    `json:"order"`
	Phase string `json:"phase"`
}

// RouteBatchResponse wraps a routes query result.
type RouteBatchResponse struct {
	Country string      `json:"country"`
	Total   int         `json:"total"`
	Routes  []RouteView `json:"routes"`
}

// GlobalFilterResponse wraps a global filters query result.
type GlobalFilterResponse struct {
	Country string             `json:"country"`
	Filters []GlobalFilterView `json:"filters"`
}
