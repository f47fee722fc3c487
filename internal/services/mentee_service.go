package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mentormatch/mentormatch-api/internal/emails"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	"github.com/mentormatch/mentormatch-api/pkg/email"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"go.uber.org/zap"
)

// MenteeService manages an organization's mentees
type MenteeService struct {
	mentees repository.MenteeStore
	orgs    repository.OrganizationRepositoryInterface
	sender  email.Sender
	now     func() time.Time
}

// NewMenteeService creates a new MenteeService
func NewMenteeService(mentees repository.MenteeStore, orgs repository.OrganizationRepositoryInterface, sender email.Sender) *MenteeService {
	return &MenteeService{
		mentees: mentees,
		orgs:    orgs,
		sender:  sender,
		now:     time.Now,
	}
}

func (s *MenteeService) ListMentees(ctx context.Context, organizationID string) ([]*models.Mentee, error) {
	return s.mentees.ListMentees(ctx, organizationID)
}

// GetMentee returns a mentee of the organization
func (s *MenteeService) GetMentee(ctx context.Context, organizationID, menteeID string) (*models.Mentee, error) {
	mentee, err := s.mentees.GetMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if mentee.OrganizationID != organizationID {
		return nil, apperrors.NotFoundError("mentee")
	}
	return mentee, nil
}

func (s *MenteeService) CreateMentee(ctx context.Context, organizationID string, req *models.CreateMenteeRequest) (*models.Mentee, error) {
	if _, err := s.orgs.Get(ctx, organizationID); err != nil {
		return nil, err
	}

	mentee, err := s.mentees.CreateMentee(ctx, req.ToMentee(organizationID))
	if err != nil {
		return nil, err
	}

	logger.Info("Mentee created",
		zap.String("organization_id", organizationID),
		zap.String("mentee_id", mentee.ID))
	return mentee, nil
}

func (s *MenteeService) UpdateMentee(ctx context.Context, organizationID, menteeID string, req *models.UpdateMenteeRequest) (*models.Mentee, error) {
	mentee, err := s.GetMentee(ctx, organizationID, menteeID)
	if err != nil {
		return nil, err
	}

	req.Apply(mentee)
	return s.mentees.UpdateMentee(ctx, mentee)
}

// ApproveMentee works like MentorService.ApproveMentor
func (s *MenteeService) ApproveMentee(ctx context.Context, organizationID, menteeID string) (*models.ApprovalResponse, error) {
	if _, err := s.GetMentee(ctx, organizationID, menteeID); err != nil {
		return nil, err
	}

	mentee, err := s.mentees.ApproveMentee(ctx, menteeID)
	if err != nil {
		return nil, fmt.Errorf("failed to approve mentee: %w", err)
	}
	metrics.Approvals.WithLabelValues(string(models.ParticipantMentee)).Inc()

	if mentee.WelcomeEmailSent {
		return &models.ApprovalResponse{Success: true, WelcomeEmailSent: true}, nil
	}

	org, err := s.orgs.Get(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	sent := sendEmail(ctx, s.sender, mentee.Email, mentee.Name, emails.MenteeWelcome(mentee, org, s.now()),
		zap.String("mentee_id", mentee.ID))
	if sent {
		if _, err := s.mentees.MarkMenteeWelcomeEmailSent(ctx, mentee.ID); err != nil {
			logger.Error("Failed to record mentee welcome email", zap.String("mentee_id", mentee.ID), zap.Error(err))
		}
	}

	logger.Info("Mentee approved",
		zap.String("organization_id", organizationID),
		zap.String("mentee_id", mentee.ID),
		zap.Bool("welcome_email_sent", sent))

	return &models.ApprovalResponse{Success: true, WelcomeEmailSent: sent}, nil
}
