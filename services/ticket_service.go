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
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ccsops/gateway-console-service/clients/tracker"
	"github.com/ccsops/gateway-console-service/config"
	"github.com/ccsops/gateway-console-service/middleware/logger"
	"github.com/ccsops/gateway-console-service/models"
	"github.com/ccsops/gateway-console-service/repositories"
	"github.com/ccsops/gateway-console-service/utils"
)

// TicketService defines change-request submission and the admin listing
type TicketService interface {
	SubmitTicket(ctx context.Context, req *models.TicketRequest) (*models.TicketSubmissionResponse, error)
	ListSubmissions(ctx context.Context, limit int) ([]models.TicketSubmission, error)
}

type ticketService struct {
	trackerClient tracker.Client
	ticketRepo    repositories.TicketRepository
	cfg           *config.TrackerConfig
}

// NewTicketService creates a new ticket service
func NewTicketService(trackerClient tracker.Client, ticketRepo repositories.TicketRepository, cfg *config.TrackerConfig) TicketService {
	return &ticketService{
		trackerClient: trackerClient,
		ticketRepo:    ticketRepo,
		cfg:           cfg,
	}
}

// SubmitTicket validates and submits a change request. In live mode the
// ticket goes to the tracker and a failed submission surfaces as an
// error after being recorded; in simulated mode a deterministic
// confirmation is returned without any network call.
func (s *ticketService) SubmitTicket(ctx context.Context, req *models.TicketRequest) (*models.TicketSubmissionResponse, error) {
	log := logger.GetLogger(ctx)

	if err := validateTicket(req); err != nil {
		return nil, err
	}
	if req.ProjectKey == "" {
		req.ProjectKey = s.cfg.ProjectKey
	}

	submission := &models.TicketSubmission{
		UUID:        uuid.NewString(),
		ProjectKey:  req.ProjectKey,
		IssueType:   req.IssueType,
		Assignee:    req.Assignee,
		Reporter:    req.Reporter,
		Summary:     req.Summary,
		Description: req.Description,
		Mode:        s.cfg.Mode,
	}

	if s.cfg.Mode == config.TrackerModeSimulated {
		submission.Status = models.SubmissionStatusSimulated
		submission.TrackerKey = simulatedKey(req.ProjectKey, submission.UUID)
		s.record(ctx, submission)
		return &models.TicketSubmissionResponse{
			UUID:       submission.UUID,
			Status:     submission.Status,
			TrackerKey: submission.TrackerKey,
			Simulated:  true,
		}, nil
	}

	trackerKey, err := s.trackerClient.CreateIssue(ctx, req)
	if err != nil {
		submission.Status = models.SubmissionStatusFailed
		s.record(ctx, submission)
		log.Error("SubmitTicket: tracker submission failed", "error", err)
		return nil, err
	}

	submission.Status = models.SubmissionStatusSubmitted
	submission.TrackerKey = trackerKey
	s.record(ctx, submission)
	return &models.TicketSubmissionResponse{
		UUID:       submission.UUID,
		Status:     submission.Status,
		TrackerKey: trackerKey,
	}, nil
}

// ListSubmissions returns the most recent submission attempts.
func (s *ticketService) ListSubmissions(ctx context.Context, limit int) ([]models.TicketSubmission, error) {
	return s.ticketRepo.ListSubmissions(limit)
}

// record writes the audit row; auditing must not mask the submission
// outcome, so failures are only logged.
func (s *ticketService) record(ctx context.Context, submission *models.TicketSubmission) {
	if err := s.ticketRepo.CreateSubmission(submission); err != nil {
		logger.GetLogger(ctx).Error("SubmitTicket: failed to record submission",
			"uuid", submission.UUID, "error", err)
	}
}

func validateTicket(req *models.TicketRequest) error {
	if req == nil {
		return utils.ErrInvalidInput
	}
	for _, field := range []string{req.IssueType, req.Assignee, req.Reporter, req.Summary} {
		if strings.TrimSpace(field) == "" {
			return utils.ErrInvalidInput
		}
	}
	return nil
}

func simulatedKey(projectKey, submissionUUID string) string {
	short := strings.ToUpper(strings.ReplaceAll(submissionUUID, "-", ""))
	if len(short) > 8 {
		short = short[:8]
	}
	if projectKey == "" {
		projectKey = "SIM"
	}
	return fmt.Sprintf("%s-%s", projectKey, short)
}
