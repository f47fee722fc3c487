package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mentormatch/mentormatch-api/internal/models"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"go.uber.org/zap"
)

const organizationColumns = `id, name, location, about, logo_url, primary_color, secondary_color,
	accent_color, match_settings, created_at, updated_at`

// GetOrganization fetches an organization by id
func (c *Client) GetOrganization(ctx context.Context, id string) (*models.Organization, error) {
	start := time.Now()
	operation := "getOrganization"

	query := `SELECT ` + organizationColumns + ` FROM organizations WHERE id = $1`
	org, err := models.ScanOrganization(c.pool.QueryRow(ctx, query, id))
	observe(operation, queryStatus(err), start, zap.String("organization_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("organization")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

// UpdateOrganization persists profile and branding fields
func (c *Client) UpdateOrganization(ctx context.Context, org *models.Organization) (*models.Organization, error) {
	start := time.Now()
	operation := "updateOrganization"

	query := `
		UPDATE organizations
		SET name = $2, location = $3, about = $4,
		    primary_color = $5, secondary_color = $6, accent_color = $7,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + organizationColumns

	updated, err := models.ScanOrganization(c.pool.QueryRow(ctx, query,
		org.ID, org.Name, org.Location, org.About,
		org.PrimaryColor, org.SecondaryColor, org.AccentColor,
	))
	observe(operation, queryStatus(err), start, zap.String("organization_id", org.ID))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("organization")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return updated, nil
}

// UpdateOrganizationLogo stores the public URL of a newly uploaded logo
func (c *Client) UpdateOrganizationLogo(ctx context.Context, id, logoURL string) error {
	start := time.Now()
	operation := "updateOrganizationLogo"

	result, err := c.pool.Exec(ctx,
		`UPDATE organizations SET logo_url = $2, updated_at = NOW() WHERE id = $1`,
		id, logoURL)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return fmt.Errorf("failed to update organization logo: %w", err)
	}
	if result.RowsAffected() == 0 {
		observe(operation, "not_found", start, zap.String("organization_id", id))
		return apperrors.NotFoundError("organization")
	}

	observe(operation, "success", start, zap.String("organization_id", id))
	return nil
}

// UpdateMatchSettings replaces the organization's scoring override. Nil clears it.
func (c *Client) UpdateMatchSettings(ctx context.Context, id string, settings *models.MatchSettings) (*models.Organization, error) {
	start := time.Now()
	operation := "updateMatchSettings"

	query := `
		UPDATE organizations
		SET match_settings = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + organizationColumns

	org, err := models.ScanOrganization(c.pool.QueryRow(ctx, query, id, settings))
	observe(operation, queryStatus(err), start, zap.String("organization_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("organization")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update match settings: %w", err)
	}
	return org, nil
}
