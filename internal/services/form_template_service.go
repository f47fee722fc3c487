package services

import (
	"context"
	"fmt"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"go.uber.org/zap"
)

// FormTemplateService manages intake form templates
type FormTemplateService struct {
	templates repository.FormTemplateStore
	orgs      repository.OrganizationRepositoryInterface
}

// NewFormTemplateService creates a new FormTemplateService
func NewFormTemplateService(templates repository.FormTemplateStore, orgs repository.OrganizationRepositoryInterface) *FormTemplateService {
	return &FormTemplateService{
		templates: templates,
		orgs:      orgs,
	}
}

func (s *FormTemplateService) ListTemplates(ctx context.Context, organizationID string, filter models.FormTemplateFilter) ([]*models.FormTemplate, error) {
	return s.templates.ListFormTemplates(ctx, organizationID, filter.Type)
}

// GetTemplate returns a template of the organization. Templates of other
// organizations are reported as not found.
func (s *FormTemplateService) GetTemplate(ctx context.Context, organizationID, templateID string) (*models.FormTemplate, error) {
	template, err := s.templates.GetFormTemplate(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template.OrganizationID != organizationID {
		return nil, apperrors.NotFoundError("form template")
	}
	return template, nil
}

func (s *FormTemplateService) CreateTemplate(ctx context.Context, organizationID string, req *models.CreateFormTemplateRequest) (*models.FormTemplate, error) {
	if _, err := s.orgs.Get(ctx, organizationID); err != nil {
		return nil, err
	}

	template := &models.FormTemplate{
		OrganizationID: organizationID,
		Name:           req.Name,
		Type:           req.Type,
		Fields:         req.Fields,
	}
	if err := template.ValidateFields(); err != nil {
		return nil, apperrors.InvalidInputError("fields", err.Error())
	}

	created, err := s.templates.CreateFormTemplate(ctx, template)
	if err != nil {
		return nil, fmt.Errorf("failed to create form template: %w", err)
	}

	logger.Info("Form template created",
		zap.String("organization_id", organizationID),
		zap.String("form_template_id", created.ID),
		zap.String("type", string(created.Type)),
		zap.Int("fields", len(created.Fields)))
	return created, nil
}

func (s *FormTemplateService) UpdateTemplate(ctx context.Context, organizationID, templateID string, req *models.UpdateFormTemplateRequest) (*models.FormTemplate, error) {
	template, err := s.GetTemplate(ctx, organizationID, templateID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Fields != nil {
		template.Fields = req.Fields
	}
	if err := template.ValidateFields(); err != nil {
		return nil, apperrors.InvalidInputError("fields", err.Error())
	}

	return s.templates.UpdateFormTemplate(ctx, template)
}

func (s *FormTemplateService) DeleteTemplate(ctx context.Context, organizationID, templateID string) error {
	if _, err := s.GetTemplate(ctx, organizationID, templateID); err != nil {
		return err
	}
	if err := s.templates.DeleteFormTemplate(ctx, templateID); err != nil {
		return err
	}

	logger.Info("Form template deleted",
		zap.String("organization_id", organizationID),
		zap.String("form_template_id", templateID))
	return nil
}
