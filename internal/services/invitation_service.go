package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mentormatch/mentormatch-api/internal/emails"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	"github.com/mentormatch/mentormatch-api/pkg/email"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"go.uber.org/zap"
)

// InvitationService e-mails invitations to join an organization's program
type InvitationService struct {
	orgs      repository.OrganizationRepositoryInterface
	templates repository.FormTemplateStore
	sender    email.Sender
	baseURL   string
}

// NewInvitationService creates a new InvitationService. baseURL is the public
// web address used to build intake form links.
func NewInvitationService(orgs repository.OrganizationRepositoryInterface, templates repository.FormTemplateStore, sender email.Sender, baseURL string) *InvitationService {
	return &InvitationService{
		orgs:      orgs,
		templates: templates,
		sender:    sender,
		baseURL:   strings.TrimRight(baseURL, "/"),
	}
}

// SendInvitations sends one invitation per address and reports each outcome.
// Delivery failures are reported per address, not as an error.
func (s *InvitationService) SendInvitations(ctx context.Context, organizationID string, req *models.InvitationRequest) (*models.InvitationResponse, error) {
	org, err := s.orgs.Get(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	profileLink := ""
	if req.FormTemplateID != "" {
		template, err := s.templates.GetFormTemplate(ctx, req.FormTemplateID)
		if err != nil || template.OrganizationID != organizationID {
			return nil, apperrors.InvalidInputError("formTemplateId", "form template not found")
		}
		if template.Type != req.UserType {
			return nil, apperrors.InvalidInputError("formTemplateId", fmt.Sprintf("form template is for %ss", template.Type))
		}
		profileLink = fmt.Sprintf("%s/forms/%s/%s", s.baseURL, organizationID, template.ID)
	}

	invitation := emails.Invitation(emails.InvitationParams{
		Organization:  org,
		UserType:      req.UserType,
		CustomMessage: req.CustomMessage,
		ProfileLink:   profileLink,
	})

	response := &models.InvitationResponse{Results: make([]models.InvitationResult, 0, len(req.Emails))}
	for _, address := range req.Emails {
		result := models.InvitationResult{
			Email:        address,
			InvitationID: uuid.NewString(),
		}

		ok, err := s.sender.SendEmail(ctx, email.Message{
			To:       address,
			Subject:  invitation.Subject,
			HTML:     invitation.HTML,
			Text:     invitation.Text,
			Template: invitation.Template,
		})
		switch {
		case err != nil:
			result.Error = err.Error()
		case !ok:
			result.Error = "email was not accepted"
		default:
			result.Sent = true
		}

		if result.Sent {
			response.Sent++
			metrics.InvitationsSent.WithLabelValues(string(req.UserType), "success").Inc()
		} else {
			response.Failed++
			metrics.InvitationsSent.WithLabelValues(string(req.UserType), "error").Inc()
			logger.Warn("Invitation not sent",
				zap.String("invitation_id", result.InvitationID),
				zap.String("error", result.Error))
		}
		response.Results = append(response.Results, result)
	}

	logger.Info("Invitations processed",
		zap.String("organization_id", organizationID),
		zap.String("user_type", string(req.UserType)),
		zap.Int("sent", response.Sent),
		zap.Int("failed", response.Failed))

	return response, nil
}
