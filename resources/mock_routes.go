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

// Package resources holds built-in data sets used when no live gateway
// is configured.
package resources

import "github.com/ccsops/gateway-console-service/models"

// MockRoutes mirrors a representative /actuator/gateway/routes batch.
// Served in mock mode so the dashboard works without a reachable
// gateway.
var MockRoutes = []models.RawRoute{
	{
		RouteID:   "route1",
		Predicate: "Paths: [/service1/api], match trailing slash: true",
		Filters: []string{
			"[[StripPrefix parts = 1], order = 1]",
			"[[AddRequestHeader X-Service service1], order = 2]",
		},
		URI:   "lb://target1",
		Order: 0,
	},
	{
		RouteID:   "route2",
		Predicate: "Paths: [/service2/api], match trailing slash: true && Header: auth regexp=Auth2",
		Filters: []string{
			"[[RewritePath /service2/(?<segment>.*) = /${segment}], order = 1]",
			"[[Retry retries = 3, statuses = [500]], order = 2]",
		},
		URI:   "lb://target2",
		Order: 1,
	},
	{
		RouteID:   "route3",
		Predicate: "Paths: [/service3/api], match trailing slash: true && Methods: [POST]",
		Filters: []string{
			"[[PrefixPath /v1], order = 1]",
			"[[RemoveRequestHeader Cookie], order = 2]",
		},
		URI:   "lb://target3",
		Order: 1,
	},
	{
		RouteID:   "route4",
		Predicate: "Paths: [/service4/api], match trailing slash: true && Header: x-client regexp=ClientA",
		Filters: []string{
			"[[RewritePath /service4/(?<segment>.*) = /v2/${segment}], order = 1]",
			"[[AddRequestHeader X-Trace true], order = 2]",
		},
		URI:   "lb://target4",
		Order: 1,
	},
	{
		RouteID:   "route5",
		Predicate: "Paths: [/service5/api], match trailing slash: true && Methods: [PUT]",
		Filters: []string{
			"[[StripPrefix parts = 2], order = 1]",
			"[[Retry retries = 2, statuses = [502]], order = 2]",
		},
		URI:   "lb://target5",
		Order: 2,
	},
	{
		RouteID:   "route6",
		Predicate: "Paths: [/service6/api], match trailing slash: true && Header: auth regexp=Auth6",
		Filters: []string{
			"[[RewritePath /service6/(?<segment>.*) = /${segment}], order = 1]",
			"[[Hystrix name = fallbackCmd, fallbackUri = forward:/fallback], order = 2]",
		},
		URI:   "lb://target6",
		Order: 2,
	},
	{
		RouteID:   "route7",
		Predicate: "Paths: [/service7/api], match trailing slash: true && Methods: [DELETE]",
		Filters: []string{
			"[[PrefixPath /delete], order = 1]",
			"[[AddRequestHeader X-Deleted true], order = 2]",
		},
		URI:   "lb://target7",
		Order: 2,
	},
	{
		RouteID:   "route8",
		Predicate: "Paths: [/service8/api], match trailing slash: true",
		Filters: []string{
			"[[StripPrefix parts = 1], order = 1]",
			"[ChangeResponseBodyType New content type = [application/json], In class = string, Out class = string]",
		},
		URI:   "lb://target8",
		Order: 3,
	},
	{
		RouteID:   "route9",
		Predicate: "Paths: [/service9/api], match trailing slash: true && Methods: [GET]",
		Filters: []string{
			"[[RewritePath /service9/(?<segment>.*) = /${segment}], order = 1]",
			"[[RemoveRequestHeader Authorization], order = 2]",
		},
		URI:   "lb://target9",
		Order: 3,
	},
	{
		RouteID:   "route10",
		Predicate: "Paths: [/service10/api], match trailing slash: true && Header: auth regexp=Auth10",
		Filters: []string{
			"[[PrefixPath /auth], order = 1]",
			"[[AddRequestHeader X-SecurityLevel high], order = 2]",
		},
		URI:   "lb://target10",
		Order: 3,
	},
	{
		RouteID:   "route11",
		Predicate: "Paths: [/service11/api], match trailing slash: true && Methods: [PATCH]",
		Filters: []string{
			"[[StripPrefix parts = 1], order = 1]",
			"[[Retry retries = 1, statuses = [503]], order = 2]",
		},
		URI:   "lb://target11",
		Order: 4,
	},
	{
		RouteID:   "route12",
		Predicate: "Paths: [/service12/api], match trailing slash: true && Header: x-env regexp=prod",
		Filters: []string{
			"[[RewritePath /service12/(?<segment>.*) = /${segment}], order = 1]",
			"[[AddRequestHeader X-Env prod], order = 2]",
		},
		URI:   "lb://target12",
		Order: 4,
	},
	{
		RouteID:   "route13",
		Predicate: "Paths: [/service13/api], match trailing slash: true && Methods: [OPTIONS]",
		Filters: []string{
			"[[PrefixPath /preflight], order = 1]",
			"[[AddRequestHeader X-Cors true], order = 2]",
		},
		URI:   "lb://target13",
		Order: 5,
	},
	{
		RouteID:   "route14",
		Predicate: "Paths: [/service14/api], match trailing slash: true && Header: x-feature regexp=beta",
		Filters: []string{
			"[[RewritePath /service14/(?<segment>.*) = /beta/${segment}], order = 1]",
			"[[AddRequestHeader X-Feature beta], order = 2]",
		},
		URI:   "lb://target14",
		Order: 5,
	},
	{
		RouteID:   "route15",
		Predicate: "Paths: [/service15/api], match trailing slash: true && Methods: [HEAD]",
		Filters: []string{
			"[[StripPrefix parts = 2], order = 1]",
			"[[RemoveRequestHeader Cache-Control], order = 2]",
		},
		URI:   "lb://target15",
		Order: 6,
	},
	{
		RouteID:   "route16",
		Predicate: "Paths: [/service16/api], match trailing slash: true && Header: auth regexp=Auth16",
		Filters: []string{
			"[[PrefixPath /secure], order = 1]",
			"[[Hystrix name = secureFallback, fallbackUri = forward:/secure-fallback], order = 2]",
		},
		URI:   "lb://target16",
		Order: 6,
	},
	{
		RouteID:   "route17",
		Predicate: "Paths: [/service17/api], match trailing slash: true && Methods: [GET, POST]",
		Filters: []string{
			"[[RewritePath /service17/(?<segment>.*) = /api/${segment}], order = 1]",
			"[[AddRequestHeader X-MultiMethod true], order = 2]",
		},
		URI:   "lb://target17",
		Order: 7,
	},
	{
		RouteID:   "route18",
		Predicate: "Paths: [/service18/api], match trailing slash: true && Header: auth regexp=Auth18 && Methods: [PUT]",
		Filters: []string{
			"[[StripPrefix parts = 1], order = 1]",
			"[[Retry retries = 4, statuses = [500, 502, 504]], order = 2]",
			"[[AddRequestHeader X-ComplexRule true], order = 3]",
		},
		URI:   "lb://target18",
		Order: 8,
	},
}

// MockGlobalFilters mirrors a representative
// /actuator/gateway/globalfilters payload.
var MockGlobalFilters = models.RawGlobalFilters{
	"com.abc.gateway.filter.LogFilter@674512dd8":                                  -120,
	"org.springframework.cloud.gateway.filter.RemoveCachedBodyFilter@5f47wee7r":   -100,
	"com.abc.gateway.filter.AFilter@654825dd8":                                    -60,
	"com.abc.gateway.filter.CFilter@784525aa8":                                    -20,
	"org.springframework.cloud.gateway.filter.NettyWriteResponseFilter@5f57fde7":  -1,
	"org.springframework.cloud.gateway.filter.ForwardRoutingFilter@5f67poi7":      0,
	"org.springframework.cloud.gateway.filter.WebsocketRoutingFilter@9xw7fde7":    1,
	"org.springframework.cloud.gateway.filter.RouteToRequestUrlFilter@5f78fde7":   10000,
	"org.springframework.cloud.gateway.filter.NettyRoutingFilter@5f57oce7":        10000,
}
