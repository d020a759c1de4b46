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

// Session is an authenticated admin session. Anonymous callers simply
// have no session.
type Session struct {
	Token       string    `json:"token"`
	UserID      string    `json:"userId"`
	IsAdmin     bool      `json:"isAdmin"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}

// LoginRequest is the credential pair accepted by POST /auth/login.
type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
}

// SessionView is the session state returned to the dashboard. Anonymous
// sessions carry IsAdmin=false and no timestamps.
type SessionView struct {
	IsAdmin     bool       `json:"isAdmin"`
	UserID      string     `json:"userId,omitempty"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token       string    `json:"token"`
	UserID      string    `json:"userId"`
	LastLoginAt time.Time `json:"lastLoginAt"`
}
