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

// Package mapping holds the pure normalization functions that turn raw
// gateway records into presentation view models. All mappers degrade to
// sentinel values on malformed or missing input and never panic.
package mapping

import (
	"strconv"
	"strings"

	"github.com/ccsops/gateway-console-service/models"
)

// Sentinels returned when a field cannot be derived.
const (
	BrandUnknown  = "-"
	RateLimitNone = "—"
)

// Token-check flags rendered by the dashboard.
const (
	AuthRequired    = "O"
	AuthNotRequired = "X"
)

// brandTable maps domain substrings to tenant labels. First match wins,
// so keep more specific substrings first if they ever overlap.
var brandTable = []struct {
	substr string
	label  string
}{
	{"genesis.domain.com", "Genesis"},
	{"kia.domain.com", "Kia"},
	{"bluelink.domain.com", "Hyundai"},
}

// Brand infers the tenant label from a definition's domain by
// case-insensitive substring match. No match or empty domain returns
// the unknown sentinel.
func Brand(domain string) string {
	if domain == "" {
		return BrandUnknown
	}
	d := strings.ToLower(domain)
	for _, entry := range brandTable {
		if strings.Contains(d, entry.substr) {
			return entry.label
		}
	}
	return BrandUnknown
}

// AuthMode inverts the keyless flag into the O/X token-check flag.
func AuthMode(useKeyless bool) string {
	if useKeyless {
		return AuthNotRequired
	}
	return AuthRequired
}

// FormatRateLimit renders "<rate> / <per>s" when both values are
// non-zero. Zero is treated the same as absent.
func FormatRateLimit(rate, per float64) string {
	if rate == 0 || per == 0 {
		return RateLimitNone
	}
	return formatNumber(rate) + " / " + formatNumber(per) + "s"
}

// formatNumber renders a float without a trailing ".0" for whole values.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// DefinitionView assembles the catalog table row for one definition.
func DefinitionView(d models.Definition) models.DefinitionView {
	return models.DefinitionView{
		ID:         d.APIID,
		Name:       d.Name,
		Brand:      Brand(d.Domain),
		ListenPath: d.ListenPath,
		TargetURL:  d.TargetURL,
		TokenCheck: AuthMode(d.UseKeyless),
		RateLimit:  FormatRateLimit(d.RateLimitRate, d.RateLimitPer),
		Slug:       d.Slug,
	}
}
