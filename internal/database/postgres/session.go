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

// ListSessions returns the sessions of a match in schedule order
func (c *Client) ListSessions(ctx context.Context, matchID string) ([]*models.MentoringSession, error) {
	start := time.Now()
	operation := "listSessions"

	query := `SELECT ` + models.SessionColumns + `
		FROM mentoring_sessions
		WHERE match_id = $1
		ORDER BY scheduled_date NULLS LAST, created_at`

	rows, err := c.pool.Query(ctx, query, matchID)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}

	sessions, err := models.ScanSessions(rows)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to scan sessions: %w", err)
	}

	observe(operation, "success", start, zap.String("match_id", matchID), zap.Int("count", len(sessions)))
	return sessions, nil
}

// GetSession fetches a session by id
func (c *Client) GetSession(ctx context.Context, id string) (*models.MentoringSession, error) {
	start := time.Now()
	operation := "getSession"

	query := `SELECT ` + models.SessionColumns + ` FROM mentoring_sessions WHERE id = $1`
	session, err := models.ScanSession(c.pool.QueryRow(ctx, query, id))
	observe(operation, queryStatus(err), start, zap.String("session_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("session")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return session, nil
}

func (c *Client) CreateSession(ctx context.Context, s *models.MentoringSession) (*models.MentoringSession, error) {
	start := time.Now()
	operation := "createSession"

	query := `
		INSERT INTO mentoring_sessions (match_id, scheduled_date, status)
		VALUES ($1, $2, $3)
		RETURNING ` + models.SessionColumns

	created, err := models.ScanSession(c.pool.QueryRow(ctx, query, s.MatchID, s.ScheduledDate, string(s.Status)))
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	observe(operation, "success", start, zap.String("session_id", created.ID), zap.String("match_id", s.MatchID))
	return created, nil
}

func (c *Client) UpdateSession(ctx context.Context, s *models.MentoringSession) (*models.MentoringSession, error) {
	start := time.Now()
	operation := "updateSession"

	query := `
		UPDATE mentoring_sessions
		SET scheduled_date = $2, status = $3,
		    mentor_feedback = $4, mentee_feedback = $5,
		    mentor_rating = $6, mentee_rating = $7,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + models.SessionColumns

	updated, err := models.ScanSession(c.pool.QueryRow(ctx, query,
		s.ID, s.ScheduledDate, string(s.Status),
		s.MentorFeedback, s.MenteeFeedback,
		s.MentorRating, s.MenteeRating,
	))
	observe(operation, queryStatus(err), start, zap.String("session_id", s.ID))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("session")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return updated, nil
}

// MarkFeedbackRequested sets feedback_email_sent once. A second call is a conflict.
func (c *Client) MarkFeedbackRequested(ctx context.Context, id string) (*models.MentoringSession, error) {
	start := time.Now()
	operation := "markFeedbackRequested"

	query := `
		UPDATE mentoring_sessions
		SET feedback_email_sent = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT feedback_email_sent
		RETURNING ` + models.SessionColumns

	session, err := models.ScanSession(c.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		observe(operation, "conflict", start, zap.String("session_id", id))
		return nil, apperrors.ConflictError("feedback already requested")
	}
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to mark feedback requested: %w", err)
	}

	observe(operation, "success", start, zap.String("session_id", id))
	return session, nil
}
