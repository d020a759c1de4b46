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

import "strings"

// Connection states reported by gateway host health endpoints.
const (
	ConnectionStateConnected    = "connected"
	ConnectionStateDisconnected = "disconnected"
	ConnectionStateConnecting   = "connecting"
	ConnectionStateUnknown      = "unknown"
)

// Probe outcome per gateway role.
const (
	ProbeStatusSuccess = "success"
	ProbeStatusError   = "error"
	ProbeStatusMissing = "missing"
)

// NormalizeConnectionState maps a raw state string to one of the known
// connection states, falling back to unknown.
func NormalizeConnectionState(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case ConnectionStateConnected:
		return ConnectionStateConnected
	case ConnectionStateDisconnected:
		return ConnectionStateDisconnected
	case ConnectionStateConnecting:
		return ConnectionStateConnecting
	default:
		return ConnectionStateUnknown
	}
}

// HostStatus is a single downstream host row from a gateway health
// payload.
type HostStatus struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// HostHealthResult is the probe outcome for one gateway role (igw, eigw,
// ogw) of a country.
type HostHealthResult struct {
	Role    string       `json:"role"`
	Status  string       `json:"status"`
	Hosts   []HostStatus `json:"hosts"`
	Message string       `json:"message,omitempty"`
}

// HostHealthResponse keys probe results by gateway role. Completion
// order of the underlying probes does not affect the payload.
type HostHealthResponse struct {
	Country string                      `json:"country"`
	Results map[string]HostHealthResult `json:"results"`
}

// DefinitionProbeResponse keys per-definition target probe results by
// api id.
type DefinitionProbeResponse struct {
	Total   int                          `json:"total"`
	Results map[string]TargetCheckResult `json:"results"`
}

// TargetCheckResult is the outcome of a single upstream target probe.
// Unreachable targets are reported here, never as a server error.
type TargetCheckResult struct {
	OK     bool   `json:"ok"`
	Status int    `json:"status,omitempty"`
	Reason string `json:"reason,omitempty"`
}
