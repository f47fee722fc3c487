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

// ListFormTemplates returns an organization's templates, optionally of one type
func (c *Client) ListFormTemplates(ctx context.Context, organizationID string, templateType models.ParticipantType) ([]*models.FormTemplate, error) {
	start := time.Now()
	operation := "listFormTemplates"

	query := `SELECT ` + models.FormTemplateColumns + `
		FROM form_templates
		WHERE organization_id = $1 AND ($2 = '' OR type::text = $2)
		ORDER BY created_at`

	rows, err := c.pool.Query(ctx, query, organizationID, string(templateType))
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to query form templates: %w", err)
	}

	templates, err := models.ScanFormTemplates(rows)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to scan form templates: %w", err)
	}

	observe(operation, "success", start, zap.Int("count", len(templates)))
	return templates, nil
}

// GetFormTemplate fetches a template by id
func (c *Client) GetFormTemplate(ctx context.Context, id string) (*models.FormTemplate, error) {
	start := time.Now()
	operation := "getFormTemplate"

	query := `SELECT ` + models.FormTemplateColumns + ` FROM form_templates WHERE id = $1`
	template, err := models.ScanFormTemplate(c.pool.QueryRow(ctx, query, id))
	observe(operation, queryStatus(err), start, zap.String("form_template_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("form template")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get form template: %w", err)
	}
	return template, nil
}

// CreateFormTemplate inserts a template and returns the stored row
func (c *Client) CreateFormTemplate(ctx context.Context, t *models.FormTemplate) (*models.FormTemplate, error) {
	start := time.Now()
	operation := "createFormTemplate"

	query := `
		INSERT INTO form_templates (organization_id, name, type, fields)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + models.FormTemplateColumns

	created, err := models.ScanFormTemplate(c.pool.QueryRow(ctx, query,
		t.OrganizationID, t.Name, string(t.Type), t.Fields))
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to create form template: %w", err)
	}

	observe(operation, "success", start, zap.String("form_template_id", created.ID))
	return created, nil
}

// UpdateFormTemplate replaces name and fields
func (c *Client) UpdateFormTemplate(ctx context.Context, t *models.FormTemplate) (*models.FormTemplate, error) {
	start := time.Now()
	operation := "updateFormTemplate"

	query := `
		UPDATE form_templates
		SET name = $2, fields = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + models.FormTemplateColumns

	updated, err := models.ScanFormTemplate(c.pool.QueryRow(ctx, query, t.ID, t.Name, t.Fields))
	observe(operation, queryStatus(err), start, zap.String("form_template_id", t.ID))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("form template")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update form template: %w", err)
	}
	return updated, nil
}

// DeleteFormTemplate removes a template
func (c *Client) DeleteFormTemplate(ctx context.Context, id string) error {
	start := time.Now()
	operation := "deleteFormTemplate"

	result, err := c.pool.Exec(ctx, `DELETE FROM form_templates WHERE id = $1`, id)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return fmt.Errorf("failed to delete form template: %w", err)
	}
	if result.RowsAffected() == 0 {
		observe(operation, "not_found", start, zap.String("form_template_id", id))
		return apperrors.NotFoundError("form template")
	}

	observe(operation, "success", start, zap.String("form_template_id", id))
	return nil
}
