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

// ListMentors returns all mentors of an organization, newest first
func (c *Client) ListMentors(ctx context.Context, organizationID string) ([]*models.Mentor, error) {
	return c.queryMentors(ctx, "listMentors", `
		SELECT `+models.MentorColumns+`
		FROM mentors
		WHERE organization_id = $1
		ORDER BY created_at DESC`, organizationID)
}

// ListMatchableMentors returns approved, active mentors in creation order
func (c *Client) ListMatchableMentors(ctx context.Context, organizationID string) ([]*models.Mentor, error) {
	return c.queryMentors(ctx, "listMatchableMentors", `
		SELECT `+models.MentorColumns+`
		FROM mentors
		WHERE organization_id = $1 AND approved AND active
		ORDER BY created_at, id`, organizationID)
}

func (c *Client) queryMentors(ctx context.Context, operation, query string, args ...any) ([]*models.Mentor, error) {
	start := time.Now()

	rows, err := c.pool.Query(ctx, query, args...)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to query mentors: %w", err)
	}

	mentors, err := models.ScanMentors(rows)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to scan mentors: %w", err)
	}

	observe(operation, "success", start, zap.Int("count", len(mentors)))
	return mentors, nil
}

// GetMentor fetches a mentor by id
func (c *Client) GetMentor(ctx context.Context, id string) (*models.Mentor, error) {
	start := time.Now()
	operation := "getMentor"

	query := `SELECT ` + models.MentorColumns + ` FROM mentors WHERE id = $1`
	mentor, err := models.ScanMentor(c.pool.QueryRow(ctx, query, id))
	observe(operation, queryStatus(err), start, zap.String("mentor_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("mentor")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mentor: %w", err)
	}
	return mentor, nil
}

// CreateMentor inserts a mentor. A second mentor with the same e-mail in the
// organization is a conflict.
func (c *Client) CreateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error) {
	start := time.Now()
	operation := "createMentor"

	query := `
		INSERT INTO mentors (
			organization_id, name, email, title, company, bio, industry,
			expertise, availability, preferred_meeting_format, years_of_experience,
			booking_link, active, approved, profile_completed
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + models.MentorColumns

	created, err := models.ScanMentor(c.pool.QueryRow(ctx, query,
		m.OrganizationID, m.Name, m.Email, m.Title, m.Company, m.Bio, m.Industry,
		m.Expertise, m.Availability, string(m.PreferredMeetingFormat), m.YearsOfExperience,
		m.BookingLink, m.Active, m.Approved, m.ProfileCompleted,
	))
	if isUniqueViolation(err) {
		observe(operation, "conflict", start, zap.String("organization_id", m.OrganizationID))
		return nil, apperrors.ConflictError("a mentor with this email already exists")
	}
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to create mentor: %w", err)
	}

	observe(operation, "success", start, zap.String("mentor_id", created.ID))
	return created, nil
}

// UpdateMentor persists the editable profile fields
func (c *Client) UpdateMentor(ctx context.Context, m *models.Mentor) (*models.Mentor, error) {
	start := time.Now()
	operation := "updateMentor"

	query := `
		UPDATE mentors
		SET name = $2, title = $3, company = $4, bio = $5, industry = $6,
		    expertise = $7, availability = $8, preferred_meeting_format = $9,
		    years_of_experience = $10, booking_link = $11, active = $12,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + models.MentorColumns

	updated, err := models.ScanMentor(c.pool.QueryRow(ctx, query,
		m.ID, m.Name, m.Title, m.Company, m.Bio, m.Industry,
		m.Expertise, m.Availability, string(m.PreferredMeetingFormat),
		m.YearsOfExperience, m.BookingLink, m.Active,
	))
	observe(operation, queryStatus(err), start, zap.String("mentor_id", m.ID))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("mentor")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update mentor: %w", err)
	}
	return updated, nil
}

// ApproveMentor sets the approved flag and returns the updated mentor
func (c *Client) ApproveMentor(ctx context.Context, id string) (*models.Mentor, error) {
	start := time.Now()
	operation := "approveMentor"

	query := `
		UPDATE mentors SET approved = TRUE, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + models.MentorColumns

	mentor, err := models.ScanMentor(c.pool.QueryRow(ctx, query, id))
	observe(operation, queryStatus(err), start, zap.String("mentor_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("mentor")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to approve mentor: %w", err)
	}
	return mentor, nil
}

// MarkMentorWelcomeEmailSent sets welcome_email_sent once.
// Returns false when the flag was already set.
func (c *Client) MarkMentorWelcomeEmailSent(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	operation := "markMentorWelcomeEmailSent"

	result, err := c.pool.Exec(ctx, `
		UPDATE mentors SET welcome_email_sent = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT welcome_email_sent`, id)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return false, fmt.Errorf("failed to mark mentor welcome email: %w", err)
	}

	observe(operation, "success", start, zap.String("mentor_id", id))
	return result.RowsAffected() == 1, nil
}
