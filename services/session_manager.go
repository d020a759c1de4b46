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

package services

import (
	"crypto/subtle"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/utils"
)

// SessionManager holds admin sessions. Two states exist per caller:
// anonymous (no session) and admin. Sessions never expire on their own;
// only an explicit logout removes them.
type SessionManager interface {
	Login(id, password string) (*models.Session, error)
	Logout(token string) error
	GetSession(token string) (*models.Session, error)
	IsAdmin(token string) bool
}

type sessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	cfg      *config.AdminConfig
}

// NewSessionManager creates a new in-memory session manager
func NewSessionManager(cfg *config.AdminConfig) SessionManager {
	return &sessionManager{
		sessions: make(map[string]*models.Session),
		cfg:      cfg,
	}
}

// Login validates the credential pair and creates an admin session. The
// error never reveals which of the two fields was wrong.
func (m *sessionManager) Login(id, password string) (*models.Session, error) {
	idOK := subtle.ConstantTimeCompare([]byte(id), []byte(m.cfg.ID)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.cfg.Password)) == 1
	if !idOK || !passwordOK {
		return nil, utils.ErrInvalidCredentials
	}

	session := &models.Session{
		Token:       uuid.NewString(),
		UserID:      id,
		IsAdmin:     true,
		LastLoginAt: time.Now(),
	}

	m.mu.Lock()
	m.sessions[session.Token] = session
	m.mu.Unlock()
	return session, nil
}

// Logout removes the session, returning the caller to anonymous.
func (m *sessionManager) Logout(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[token]; !ok {
		return utils.ErrSessionNotFound
	}
	delete(m.sessions, token)
	return nil
}

// GetSession returns the session for a token.
func (m *sessionManager) GetSession(token string) (*models.Session, error) {
	if token == "" {
		return nil, utils.ErrSessionNotFound
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[token]
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return session, nil
}

// IsAdmin reports whether the token belongs to an admin session.
func (m *sessionManager) IsAdmin(token string) bool {
	session, err := m.GetSession(token)
	return err == nil && session.IsAdmin
}
