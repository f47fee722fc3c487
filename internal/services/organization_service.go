package services

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/storage"
	"go.uber.org/zap"
)

// ErrStorageNotConfigured is returned for logo uploads when no bucket is configured
var ErrStorageNotConfigured = errors.New("logo storage is not configured")

// ImageUploader stores an image and returns its public URL
type ImageUploader interface {
	UploadImage(ctx context.Context, data []byte, key, contentType string) (string, error)
}

// OrganizationService manages organization profile, branding and match settings
type OrganizationService struct {
	orgs     repository.OrganizationRepositoryInterface
	uploader ImageUploader
}

// NewOrganizationService creates a new OrganizationService. uploader may be nil.
func NewOrganizationService(orgs repository.OrganizationRepositoryInterface, uploader ImageUploader) *OrganizationService {
	return &OrganizationService{
		orgs:     orgs,
		uploader: uploader,
	}
}

func (s *OrganizationService) GetOrganization(ctx context.Context, organizationID string) (*models.Organization, error) {
	return s.orgs.Get(ctx, organizationID)
}

// UpdateOrganization applies the set profile and branding fields
func (s *OrganizationService) UpdateOrganization(ctx context.Context, organizationID string, req *models.UpdateOrganizationRequest) (*models.Organization, error) {
	org, err := s.orgs.Get(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	req.Apply(org)
	if strings.TrimSpace(org.Name) == "" {
		return nil, apperrors.InvalidInputError("name", "must not be empty")
	}

	updated, err := s.orgs.Update(ctx, org)
	if err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	logger.Info("Organization updated", zap.String("organization_id", organizationID))
	return updated, nil
}

// UploadLogo validates and stores a base64 image and records its URL on the organization
func (s *OrganizationService) UploadLogo(ctx context.Context, organizationID string, req *models.UploadLogoRequest) (*models.UploadLogoResponse, error) {
	if s.uploader == nil {
		return nil, ErrStorageNotConfigured
	}

	if _, err := s.orgs.Get(ctx, organizationID); err != nil {
		return nil, err
	}

	data, ext, err := storage.DecodeImage(req.Image, req.ContentType)
	if err != nil {
		return nil, apperrors.InvalidInputError("image", err.Error())
	}

	// Each upload gets a new key; old logos are left in the bucket
	key := path.Join("organizations", organizationID, fmt.Sprintf("logo-%s.%s", uuid.NewString(), ext))

	url, err := s.uploader.UploadImage(ctx, data, key, strings.ToLower(req.ContentType))
	if err != nil {
		logger.Error("Failed to upload organization logo",
			zap.String("organization_id", organizationID),
			zap.String("file_name", req.FileName),
			zap.Error(err))
		return nil, err
	}

	if err := s.orgs.UpdateLogo(ctx, organizationID, url); err != nil {
		return nil, fmt.Errorf("failed to save logo url: %w", err)
	}

	return &models.UploadLogoResponse{Success: true, LogoURL: url}, nil
}

// UpdateMatchSettings validates and stores the organization's scoring override
func (s *OrganizationService) UpdateMatchSettings(ctx context.Context, organizationID string, req *models.UpdateMatchSettingsRequest) (*models.Organization, error) {
	settings := &models.MatchSettings{
		Weights:             req.Weights,
		Threshold:           req.Threshold,
		MaxMatchesPerMentee: req.MaxMatchesPerMentee,
	}
	if err := settings.Validate(); err != nil {
		return nil, apperrors.InvalidInputError("matchSettings", err.Error())
	}

	org, err := s.orgs.UpdateMatchSettings(ctx, organizationID, settings)
	if err != nil {
		return nil, err
	}

	logger.Info("Match settings updated",
		zap.String("organization_id", organizationID),
		zap.Int("threshold", settings.Threshold),
		zap.Int("max_matches_per_mentee", settings.MaxMatchesPerMentee))
	return org, nil
}
