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

package repositories

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ccsops/gateway-console-service/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Definition{}, &models.TicketSubmission{}, &models.Certificate{}))
	return db
}

func TestDefinitionRepoUpsertIsIdempotent(t *testing.T) {
	repo := NewDefinitionRepo(newTestDB(t))

	defs := []models.Definition{
		{APIID: "api-1", Name: "Vehicle Status", Slug: "vehicle-status", Domain: "kr.kia.domain.com"},
		{APIID: "api-2", Name: "Remote Start", UseKeyless: true},
	}
	require.NoError(t, repo.UpsertDefinitions(defs))
	require.NoError(t, repo.UpsertDefinitions(defs))

	listed, err := repo.ListDefinitions()
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestDefinitionRepoUpsertReplacesChangedRows(t *testing.T) {
	repo := NewDefinitionRepo(newTestDB(t))

	require.NoError(t, repo.UpsertDefinitions([]models.Definition{
		{APIID: "api-1", Name: "Old Name"},
	}))
	require.NoError(t, repo.UpsertDefinitions([]models.Definition{
		{APIID: "api-1", Name: "New Name", ListenPath: "/vehicle/"},
	}))

	def, err := repo.GetDefinitionByID("api-1")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "New Name", def.Name)
	assert.Equal(t, "/vehicle/", def.ListenPath)
}

func TestDefinitionRepoGetByIDNotFound(t *testing.T) {
	repo := NewDefinitionRepo(newTestDB(t))

	def, err := repo.GetDefinitionByID("missing")
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestDefinitionRepoGetBySlug(t *testing.T) {
	repo := NewDefinitionRepo(newTestDB(t))

	require.NoError(t, repo.UpsertDefinitions([]models.Definition{
		{APIID: "api-1", Name: "Vehicle Status", Slug: "vehicle-status"},
	}))

	def, err := repo.GetDefinitionBySlug("vehicle-status")
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, "api-1", def.APIID)

	def, err = repo.GetDefinitionBySlug("missing")
	require.NoError(t, err)
	assert.Nil(t, def)

	// empty slug never matches rows with empty slug columns
	def, err = repo.GetDefinitionBySlug("")
	require.NoError(t, err)
	assert.Nil(t, def)
}

func TestTicketRepoCreateAndList(t *testing.T) {
	repo := NewTicketRepo(newTestDB(t))

	for _, status := range []string{models.SubmissionStatusSimulated, models.SubmissionStatusFailed} {
		require.NoError(t, repo.CreateSubmission(&models.TicketSubmission{
			UUID:       uuid.NewString(),
			ProjectKey: "PROJ",
			IssueType:  "Task",
			Assignee:   "gw-admin",
			Reporter:   "gw-admin",
			Summary:    "register new route",
			Mode:       "simulated",
			Status:     status,
		}))
	}

	listed, err := repo.ListSubmissions(10)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestCertRepoCreateListDelete(t *testing.T) {
	repo := NewCertRepo(newTestDB(t))

	cert := &models.Certificate{
		UUID:       uuid.NewString(),
		CommonName: "*.ccs.internal",
		ExpiresAt:  "2027-05-01",
		Issuer:     "DigiCert",
	}
	require.NoError(t, repo.CreateCert(cert))

	listed, err := repo.ListCerts()
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "*.ccs.internal", listed[0].CommonName)

	deleted, err := repo.DeleteCert(cert.UUID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteCert(cert.UUID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
