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

// ListMentees returns all mentees of an organization, newest first
func (c *Client) ListMentees(ctx context.Context, organizationID string) ([]*models.Mentee, error) {
	return c.queryMentees(ctx, "listMentees", `
		SELECT `+models.MenteeColumns+`
		FROM mentees
		WHERE organization_id = $1
		ORDER BY created_at DESC`, organizationID)
}

// ListMatchableMentees returns approved, active mentees in creation order
func (c *Client) ListMatchableMentees(ctx context.Context, organizationID string) ([]*models.Mentee, error) {
	return c.queryMentees(ctx, "listMatchableMentees", `
		SELECT `+models.MenteeColumns+`
		FROM mentees
		WHERE organization_id = $1 AND approved AND active
		ORDER BY created_at, id`, organizationID)
}

func (c *Client) queryMentees(ctx context.Context, operation, query string, args ...any) ([]*models.Mentee, error) {
	start := time.Now()

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to query mentees: %w", err)
	}

	mentees, err := models.ScanMentees(rows)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to scan mentees: %w", err)
	}

	observe(operation, "success", start, zap.Int("count", len(mentees)))
	return mentees, nil
}

// GetMentee fetches a mentee by id
func (c *Client) GetMentee(ctx context.Context, id string) (*models.Mentee, error) {
	start := time.Now()
	operation := "getMentee"

	query := `SELECT ` + models.MenteeColumns + ` FROM mentees WHERE id = $1`
	mentee, err := models.ScanMentee(c.pool.QueryRow(ctx, query, id))
	observe(operation, queryStatus(err), start, zap.String("mentee_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("mentee")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mentee: %w", err)
	}
	return mentee, nil
}

// CreateMentee inserts a mentee
func (c *Client) CreateMentee(ctx context.Context, m *models.Mentee) (*models.Mentee, error) {
	start := time.Now()
	operation := "createMentee"

	query := `
		INSERT INTO mentees (
			organization_id, name, email, background, goals, industry,
			interests, availability, preferred_meeting_format,
			active, approved, profile_completed
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + models.MenteeColumns

	created, err := models.ScanMentee(c.pool.QueryRow(ctx, query,
		m.OrganizationID, m.Name, m.Email, m.Background, m.Goals, m.Industry,
		m.Interests, m.Availability, string(m.PreferredMeetingFormat),
		m.Active, m.Approved, m.ProfileCompleted,
	))
	if isUniqueViolation(err) {
		observe(operation, "conflict", start, zap.String("organization_id", m.OrganizationID))
		return nil, apperrors.ConflictError("a mentee with this email already exists")
	}
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to create mentee: %w", err)
	}

	observe(operation, "success", start, zap.String("mentee_id", created.ID))
	return created, nil
}

func (c *Client) UpdateMentee(ctx context.Context, m *models.Mentee) (*models.Mentee, error) {
	start := time.Now()
	operation := "updateMentee"

	query := `
		UPDATE mentees
		SET name = $2, background = $3, goals = $4, industry = $5,
		    interests = $6, availability = $7, preferred_meeting_format = $8,
		    active = $9,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + models.MenteeColumns

	updated, err := models.ScanMentee(c.pool.QueryRow(ctx, query,
		m.ID, m.Name, m.Background, m.Goals, m.Industry,
		m.Interests, m.Availability, string(m.PreferredMeetingFormat), m.Active,
	))
	observe(operation, queryStatus(err), start, zap.String("mentee_id", m.ID))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("mentee")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update mentee: %w", err)
	}
	return updated, nil
}

// ApproveMentee sets the approved flag and returns the updated mentee
func (c *Client) ApproveMentee(ctx context.Context, id string) (*models.Mentee, error) {
	start := time.Now()
	operation := "approveMentee"

	query := `
		UPDATE mentees SET approved = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + models.MenteeColumns

	mentee, err := models.ScanMentee(c.pool.QueryRow(ctx, query, id))
	observe(operation, queryStatus(err), start, zap.String("mentee_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("mentee")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to approve mentee: %w", err)
	}
	return mentee, nil
}

// MarkMenteeWelcomeEmailSent reports false when the flag was already set
func (c *Client) MarkMenteeWelcomeEmailSent(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	operation := "markMenteeWelcomeEmailSent"

	result, err := c.pool.Exec(ctx, `
		UPDATE mentees SET welcome_email_sent = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT welcome_email_sent`, id)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return false, fmt.Errorf("failed to mark mentee welcome email: %w", err)
	}

	observe(operation, "success", start, zap.String("mentee_id", id))
	return result.RowsAffected() == 1, nil
}
