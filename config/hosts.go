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

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
)

// CountryHosts maps a gateway role (igw, eigw, ogw) to its base URL for
// one country.
type CountryHosts map[string]string

// GatewayHostMap maps an upper-cased country code to its gateway hosts.
type GatewayHostMap map[string]CountryHosts

type hostsFile struct {
	Countries map[string]map[string]string `yaml:"countries"`
}

// LoadGatewayHostMap reads the per-country gateway host map from a YAML
// file. Country codes are normalized to upper case.
func LoadGatewayHostMap(path string) (GatewayHostMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway hosts file: %w", err)
	}

	var parsed hostsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse gateway hosts file: %w", err)
	}

	hostMap := make(GatewayHostMap, len(parsed.Countries))
	for country, hosts := range parsed.Countries {
		entry := make(CountryHosts, len(hosts))
		for role, baseURL := range hosts {
			entry[strings.ToLower(role)] = strings.TrimRight(baseURL, "/")
		}
		hostMap[strings.ToUpper(country)] = entry
	}
	return hostMap, nil
}

// Lookup returns the hosts configured for a country code (case-insensitive).
func (m GatewayHostMap) Lookup(country string) (CountryHosts, bool) {
	hosts, ok := m[strings.ToUpper(country)]
	return hosts, ok
}
