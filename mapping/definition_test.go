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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ccsops/gateway-console-service/models"
)

func TestBrand(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		expected string
	}{
		{
			name:     "kia domain",
			domain:   "api.kia.domain.com",
			expected: "Kia",
		},
		{
			name:     "kia domain upper case",
			domain:   "API.KIA.DOMAIN.COM",
			expected: "Kia",
		},
		{
			name:     "genesis domain",
			domain:   "genesis.domain.com",
			expected: "Genesis",
		},
		{
			name:     "bluelink domain maps to Hyundai",
			domain:   "eu.bluelink.domain.com",
			expected: "Hyundai",
		},
		{
			name:     "unknown domain",
			domain:   "api.example.com",
			expected: BrandUnknown,
		},
		{
			name:     "empty domain",
			domain:   "",
			expected: BrandUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Brand(tt.domain))
		})
	}
}

func TestAuthMode(t *testing.T) {
	assert.Equal(t, AuthNotRequired, AuthMode(true))
	assert.Equal(t, AuthRequired, AuthMode(false))
}

func TestFormatRateLimit(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		per      float64
		expected string
	}{
		{
			name:     "both present",
			rate:     100,
			per:      60,
			expected: "100 / 60s",
		},
		{
			name:     "fractional rate",
			rate:     0.5,
			per:      1,
			expected: "0.5 / 1s",
		},
		{
			name:     "zero rate treated as absent",
			rate:     0,
			per:      60,
			expected: RateLimitNone,
		},
		{
			name:     "zero per treated as absent",
			rate:     100,
			per:      0,
			expected: RateLimitNone,
		},
		{
			name:     "both zero",
			rate:     0,
			per:      0,
			expected: RateLimitNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRateLimit(tt.rate, tt.per))
		})
	}
}

func TestDefinitionView(t *testing.T) {
	def := models.Definition{
		APIID:         "api-1",
		Name:          "Vehicle Status",
		Slug:          "vehicle-status",
		Domain:        "kr.kia.domain.com",
		UseKeyless:    false,
		ListenPath:    "/vehicle/",
		TargetURL:     "https://vehicle.internal:8443/",
		RateLimitRate: 100,
		RateLimitPer:  60,
	}

	view := DefinitionView(def)

	assert.Equal(t, "api-1", view.ID)
	assert.Equal(t, "Vehicle Status", view.Name)
	assert.Equal(t, "Kia", view.Brand)
	assert.Equal(t, "/vehicle/", view.ListenPath)
	assert.Equal(t, "https://vehicle.internal:8443/", view.TargetURL)
	assert.Equal(t, AuthRequired, view.TokenCheck)
	assert.Equal(t, "100 / 60s", view.RateLimit)
	assert.Equal(t, "vehicle-status", view.Slug)
}

func TestDefinitionViewDegradesOnEmptyRecord(t *testing.T) {
	view := DefinitionView(models.Definition{APIID: "bare"})

	assert.Equal(t, "bare", view.ID)
	assert.Equal(t, BrandUnknown, view.Brand)
	assert.Equal(t, AuthRequired, view.TokenCheck)
	assert.Equal(t, RateLimitNone, view.RateLimit)
}
