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

// Package catalog seeds the definition store from the static
// definitions file at startup.
package catalog

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/repositories"
)

// Seed loads the definitions file and upserts its records into the
// catalog. A missing or malformed file is logged and leaves the catalog
// as-is; the service keeps running with whatever is already stored.
func Seed(repo repositories.DefinitionRepository, path string) error {
	raws, err := loadDefinitionsFile(path)
	if err != nil {
		slog.Error("catalog: failed to load definitions file, continuing with existing catalog",
			"path", path, "error", err)
		return nil
	}

	defs := make([]models.Definition, 0, len(raws))
	for _, raw := range raws {
		if raw.APIID == "" {
			slog.Warn("catalog: skipping definition without api_id", "name", raw.Name)
			continue
		}
		defs = append(defs, fromRaw(raw))
	}

	if err := repo.UpsertDefinitions(defs); err != nil {
		return err
	}
	slog.Info("catalog: definitions seeded", "path", path, "count", len(defs))
	return nil
}

func loadDefinitionsFile(path string) ([]models.RawDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raws []models.RawDefinition
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	return raws, nil
}

func fromRaw(raw models.RawDefinition) models.Definition {
	def := models.Definition{
		APIID:      raw.APIID,
		Name:       raw.Name,
		Slug:       raw.Slug,
		Domain:     raw.Domain,
		UseKeyless: raw.UseKeyless,
	}
	if raw.Proxy != nil {
		def.ListenPath = raw.Proxy.ListenPath
		def.TargetURL = raw.Proxy.TargetURL
	}
	if raw.GlobalRateLimit != nil {
		def.RateLimitRate = raw.GlobalRateLimit.Rate
		def.RateLimitPer = raw.GlobalRateLimit.Per
	}
	return def
}
