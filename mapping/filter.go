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

package mapping

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ccsops/gateway-console-service/models"
)

// Pre/post filter phase labels. Negative execution order runs before
// the routing filter by gateway convention.
const (
	PhasePre  = "Pre-filter"
	PhasePost = "Post-filter"
)

const orderToken = "order = "

// rewriteTarget captures the destination path of a RewritePath filter.
var rewriteTarget = regexp.MustCompile(`=\s*(/[^\],]+)`)

// ParseFilterName extracts the display name from a filter descriptor or
// a fully-qualified global filter class. RewritePath filters surface
// the rewrite destination instead of the class name. Synthetic lambda
// and instance suffixes ($$..., @...) are stripped.
func ParseFilterName(full string) string {
	if full == "" {
		return ""
	}
	if strings.Contains(full, "RewritePath") {
		if m := rewriteTarget.FindStringSubmatch(full); m != nil {
			return "Out Path = " + m[1]
		}
		return ""
	}

	// Token after the last dot, e.g. "filter.AFilter@654825dd8" -> "AFilter@654825dd8".
	last := full
	if idx := strings.LastIndex(full, "."); idx >= 0 {
		last = full[idx+1:]
	}
	if strings.Contains(last, "[") {
		last = strings.ReplaceAll(last, "[", "")
		name, _, _ := strings.Cut(last, " ")
		return name
	}
	name, _, _ := strings.Cut(last, "$$")
	name, _, _ = strings.Cut(name, "@")
	return name
}

// ParseFilterOrder reads the integer after the literal "order = " up to
// the closing bracket. A missing or unparsable order returns nil; such
// filters sort last when merged.
func ParseFilterOrder(full string) *int {
	_, rest, found := strings.Cut(full, orderToken)
	if !found {
		return nil
	}
	if idx := strings.Index(rest, "]"); idx >= 0 {
		rest = rest[:idx]
	}
	order, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return nil
	}
	return &order
}

// ParseTargetURI strips the load-balancer scheme from a logical target,
// leaving the service name. Direct URLs pass through unchanged.
func ParseTargetURI(uri string) string {
	return strings.TrimPrefix(uri, "lb://")
}

// GlobalFilterViews parses the raw class-to-order map into display
// entries sorted ascending by order.
func GlobalFilterViews(raw models.RawGlobalFilters) []models.GlobalFilterView {
	views := make([]models.GlobalFilterView, 0, len(raw))
	for class, order := range raw {
		phase := PhasePost
		if order < 0 {
			phase = PhasePre
		}
		views = append(views, models.GlobalFilterView{
			Name:  ParseFilterName(class),
			Order: order,
			Phase: phase,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Order != views[j].Order {
			return views[i].Order < views[j].Order
		}
		return views[i].Name < views[j].Name
	})
	return views
}

// RouteView parses one raw route and merges the global filters into its
// filter list.
func RouteView(raw models.RawRoute, globals []models.GlobalFilterView) models.RouteView {
	routeFilters := make([]models.FilterView, 0, len(raw.Filters))
	for _, f := range raw.Filters {
		routeFilters = append(routeFilters, models.FilterView{
			Name:  ParseFilterName(f),
			Order: ParseFilterOrder(f),
		})
	}

	return models.RouteView{
		RouteID: raw.RouteID,
		URI:     ParseTargetURI(raw.URI),
		Order:   raw.Order,
		Predicates: []models.PredicateView{
			{Name: ParsePredicate(raw.Predicate), Args: map[string]string{}},
		},
		Filters: MergeFilters(routeFilters, globals),
	}
}

// MergeFilters concatenates global filters (tagged as such) with the
// route's own filters and sorts ascending by order. Filters without an
// order sort last; ties keep global-before-route input order.
func MergeFilters(routeFilters []models.FilterView, globals []models.GlobalFilterView) []models.FilterView {
	merged := make([]models.FilterView, 0, len(globals)+len(routeFilters))
	for _, g := range globals {
		order := g.Order
		merged = append(merged, models.FilterView{
			Name:     g.Name,
			Order:    &order,
			IsGlobal: true,
		})
	}
	merged = append(merged, routeFilters...)

	sort.SliceStable(merged, func(i, j int) bool {
		oi, oj := merged[i].Order, merged[j].Order
		if oi == nil {
			return false
		}
		if oj == nil {
			return true
		}
		return *oi < *oj
	})
	return merged
}
