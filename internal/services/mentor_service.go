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

// MentorService manages an organization's mentors
type MentorService struct {
	mentors repository.MentorStore
	orgs    repository.OrganizationRepositoryInterface
	sender  email.Sender
	now     func() time.Time
}

// NewMentorService creates a new MentorService
func NewMentorService(mentors repository.MentorStore, orgs repository.OrganizationRepositoryInterface, sender email.Sender) *MentorService {
	return &MentorService{
		mentors: mentors,
		orgs:    orgs,
		sender:  sender,
		now:     time.Now,
	}
}

func (s *MentorService) ListMentors(ctx context.Context, organizationID string) ([]*models.Mentor, error) {
	return s.mentors.ListMentors(ctx, organizationID)
}

// GetMentor returns a mentor of the organization
func (s *MentorService) GetMentor(ctx context.Context, organizationID, mentorID string) (*models.Mentor, error) {
	mentor, err := s.mentors.GetMentor(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if mentor.OrganizationID != organizationID {
		return nil, apperrors.NotFoundError("mentor")
	}
	return mentor, nil
}

func (s *MentorService) CreateMentor(ctx context.Context, organizationID string, req *models.CreateMentorRequest) (*models.Mentor, error) {
	if _, err := s.orgs.Get(ctx, organizationID); err != nil {
		return nil, err
	}

	mentor, err := s.mentors.CreateMentor(ctx, req.ToMentor(organizationID))
	if err != nil {
		return nil, err
	}

	logger.Info("Mentor created",
		zap.String("organization_id", organizationID),
		zap.String("mentor_id", mentor.ID))
	return mentor, nil
}

func (s *MentorService) UpdateMentor(ctx context.Context, organizationID, mentorID string, req *models.UpdateMentorRequest) (*models.Mentor, error) {
	mentor, err := s.GetMentor(ctx, organizationID, mentorID)
	if err != nil {
		return nil, err
	}

	req.Apply(mentor)
	return s.mentors.UpdateMentor(ctx, mentor)
}

// ApproveMentor approves the mentor and sends the welcome e-mail if it has not
// been sent before. A failed send is logged and leaves welcomeEmailSent unset.
func (s *MentorService) ApproveMentor(ctx context.Context, organizationID, mentorID string) (*models.ApprovalResponse, error) {
	if _, err := s.GetMentor(ctx, organizationID, mentorID); err != nil {
		return nil, err
	}

	mentor, err := s.mentors.ApproveMentor(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to approve mentor: %w", err)
	}
	metrics.Approvals.WithLabelValues(string(models.ParticipantMentor)).Inc()

	if mentor.WelcomeEmailSent {
		return &models.ApprovalResponse{Success: true, WelcomeEmailSent: true}, nil
	}

	org, err := s.orgs.Get(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	sent := sendEmail(ctx, s.sender, mentor.Email, mentor.Name, emails.MentorWelcome(mentor, org, s.now()),
		zap.String("mentor_id", mentor.ID))
	if sent {
		if _, err := s.mentors.MarkMentorWelcomeEmailSent(ctx, mentor.ID); err != nil {
			logger.Error("Failed to record mentor welcome email", zap.String("mentor_id", mentor.ID), zap.Error(err))
		}
	}

	logger.Info("Mentor approved",
		zap.String("organization_id", organizationID),
		zap.String("mentor_id", mentor.ID),
		zap.Bool("welcome_email_sent", sent))

	return &models.ApprovalResponse{Success: true, WelcomeEmailSent: sent}, nil
}
