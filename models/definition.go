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

import "time"

// RawDefinition is the wire shape of a catalog entry as exported by the
// gateway admin API. All fields are optional; mapping degrades to
// sentinels rather than failing.
type RawDefinition struct {
	APIID           string        `json:"api_id"`
	Name            string        `json:"name"`
	Slug            string        `json:"slug,omitempty"`
	Domain          string        `json:"domain,omitempty"`
	UseKeyless      bool          `json:"use_keyless,omitempty"`
	Proxy           *RawProxy     `json:"proxy,omitempty"`
	GlobalRateLimit *RawRateLimit `json:"global_rate_limit,omitempty"`
}

// RawProxy holds the routed path pair of a definition.
type RawProxy struct {
	ListenPath string `json:"listen_path"`
	TargetURL  string `json:"target_url"`
}

// RawRateLimit holds the gateway-enforced rate limit. Zero values are
// displayed as "no limit".
type RawRateLimit struct {
	Rate float64 `json:"rate"`
	Per  float64 `json:"per"`
}

// Definition is the persisted catalog record, seeded once at startup and
// immutable afterwards.
type Definition struct {
	APIID         string    `gorm:"column:api_id;primaryKey" json:"api_id"`
	Name          string    `gorm:"column:name" json:"name"`
	Slug          string    `gorm:"column:slug" json:"slug,omitempty"`
	Domain        string    `gorm:"column:domain" json:"domain,omitempty"`
	UseKeyless    bool      `gorm:"column:use_keyless" json:"use_keyless"`
	ListenPath    string    `gorm:"column:listen_path" json:"listen_path"`
	TargetURL     string    `gorm:"column:target_url" json:"target_url"`
	RateLimitRate float64   `gorm:"column:rate_limit_rate" json:"rate_limit_rate"`
	RateLimitPer  float64   `gorm:"column:rate_limit_per" json:"rate_limit_per"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"-"`
}

// TableName returns the table name for the Definition model
func (Definition) TableName() string {
	return "definitions"
}

// ToRaw converts the persisted record back to the wire shape served by
// the /definitions endpoints.
func (d *Definition) ToRaw() RawDefinition {
	raw := RawDefinition{
		APIID:      d.APIID,
		Name:       d.Name,
		Slug:       d.Slug,
		Domain:     d.Domain,
		UseKeyless: d.UseKeyless,
	}
	if d.ListenPath != "" || d.TargetURL != "" {
		raw.Proxy = &RawProxy{ListenPath: d.ListenPath, TargetURL: d.TargetURL}
	}
	if d.RateLimitRate != 0 || d.RateLimitPer != 0 {
		raw.GlobalRateLimit = &RawRateLimit{Rate: d.RateLimitRate, Per: d.RateLimitPer}
	}
	return raw
}

// DefinitionView is the presentation row derived from a Definition.
type DefinitionView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	ListenPath string `json:"listenPath"`
	TargetURL  string `json:"targetUrl"`
	TokenCheck string `json:"tokenCheck"` // "O" = auth required, "X" = keyless
	RateLimit  string `json:"rateLimit"`
	Slug       string `json:"slug,omitempty"`
}
