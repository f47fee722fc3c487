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

const insertMatchQuery = `
	INSERT INTO matches (organization_id, mentor_id, mentee_id, match_score, match_reasons, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + models.MatchColumns

// ListMatches returns an organization's matches, optionally filtered by status
func (c *Client) ListMatches(ctx context.Context, organizationID string, status models.MatchStatus) ([]*models.Match, error) {
	start := time.Now()
	operation := "listMatches"

	query := `SELECT ` + models.MatchColumns + `
		FROM matches
		WHERE organization_id = $1 AND ($2 = '' OR status::text = $2)
		ORDER BY match_score DESC, created_at DESC`

	rows, err := c.pool.Query(ctx, query, organizationID, string(status))
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}

	matches, err := models.ScanMatches(rows)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to scan matches: %w", err)
	}

	observe(operation, "success", start,
		zap.String("status", string(status)),
		zap.Int("count", len(matches)))
	return matches, nil
}

// GetMatch fetches a match by id
func (c *Client) GetMatch(ctx context.Context, id string) (*models.Match, error) {
	start := time.Now()
	operation := "getMatch"

	query := `SELECT ` + models.MatchColumns + ` FROM matches WHERE id = $1`
	match, err := models.ScanMatch(c.pool.QueryRow(ctx, query, id))
	observe(operation, queryStatus(err), start, zap.String("match_id", id))

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.NotFoundError("match")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// CreateMatch inserts a single match
func (c *Client) CreateMatch(ctx context.Context, m *models.Match) (*models.Match, error) {
	start := time.Now()
	operation := "createMatch"

	created, err := models.ScanMatch(c.pool.QueryRow(ctx, insertMatchQuery,
		m.OrganizationID, m.MentorID, m.MenteeID, m.MatchScore, m.MatchReasons, string(m.Status)))
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	observe(operation, "success", start, zap.String("match_id", created.ID))
	return created, nil
}

// CreateMatches inserts all matches in one transaction and returns them in input order
func (c *Client) CreateMatches(ctx context.Context, matches []*models.Match) ([]*models.Match, error) {
	start := time.Now()
	operation := "createMatches"

	if len(matches) == 0 {
		return []*models.Match{}, nil
	}

	created := make([]*models.Match, 0, len(matches))
	err := pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, m := range matches {
			batch.Queue(insertMatchQuery,
				m.OrganizationID, m.MentorID, m.MenteeID, m.MatchScore, m.MatchReasons, string(m.Status))
		}

		results := tx.SendBatch(ctx, batch)
		for range matches {
			match, err := models.ScanMatch(results.QueryRow())
			if err != nil {
				_ = results.Close()
				return err
			}
			created = append(created, match)
		}
		return results.Close()
	})
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to create matches: %w", err)
	}

	observe(operation, "success", start, zap.Int("count", len(created)))
	return created, nil
}

// ActiveMatchPairs returns mentorID/menteeID pairs that already have a
// non-rejected match in the organization
func (c *Client) ActiveMatchPairs(ctx context.Context, organizationID string) (map[models.MatchPair]bool, error) {
	start := time.Now()
	operation := "activeMatchPairs"

	rows, err := c.pool.Query(ctx, `
		SELECT mentor_id, mentee_id
		FROM matches
		WHERE organization_id = $1 AND status <> 'rejected'`, organizationID)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to query match pairs: %w", err)
	}
	defer rows.Close()

	pairs := make(map[models.MatchPair]bool)
	for rows.Next() {
		var pair models.MatchPair
		if err := rows.Scan(&pair.MentorID, &pair.MenteeID); err != nil {
			observe(operation, "error", start, zap.Error(err))
			return nil, fmt.Errorf("failed to scan match pair: %w", err)
		}
		pairs[pair] = true
	}
	if err := rows.Err(); err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to iterate match pairs: %w", err)
	}

	observe(operation, "success", start, zap.Int("count", len(pairs)))
	return pairs, nil
}

// TransitionMatch applies t only if the match is still in t.From.
// Zero affected rows is reported as a conflict; callers check existence first.
func (c *Client) TransitionMatch(ctx context.Context, id string, t models.MatchTransition) (*models.Match, error) {
	start := time.Now()
	operation := "transitionMatch"

	query := `
		UPDATE matches
		SET status = $3,
		    admin_id = CASE WHEN $4 = '' THEN admin_id ELSE $4 END,
		    intro_email_sent = intro_email_sent OR $5,
		    updated_at = NOW()
		WHERE id = $1 AND status = $2
		RETURNING ` + models.MatchColumns

	match, err := models.ScanMatch(c.pool.QueryRow(ctx, query,
		id, string(t.From), string(t.To), t.AdminID, t.IntroEmailSent))

	fields := []zap.Field{
		zap.String("match_id", id),
		zap.String("from", string(t.From)),
		zap.String("to", string(t.To)),
	}
	if errors.Is(err, pgx.ErrNoRows) {
		observe(operation, "conflict", start, fields...)
		return nil, apperrors.ConflictError(fmt.Sprintf("match is no longer %s", t.From))
	}
	if err != nil {
		observe(operation, "error", start, append(fields, zap.Error(err))...)
		return nil, fmt.Errorf("failed to update match status: %w", err)
	}

	observe(operation, "success", start, fields...)
	return match, nil
}

// MarkFollowUpSent sets follow_up_email_sent on an approved match that has not had one
func (c *Client) MarkFollowUpSent(ctx context.Context, id string) (*models.Match, error) {
	start := time.Now()
	operation := "markFollowUpSent"

	query := `
		UPDATE matches
		SET follow_up_email_sent = TRUE, updated_at = NOW()
		WHERE id = $1 AND status = 'approved' AND NOT follow_up_email_sent
		RETURNING ` + models.MatchColumns

	match, err := models.ScanMatch(c.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		observe(operation, "conflict", start, zap.String("match_id", id))
		return nil, apperrors.ConflictError("follow-up already sent or match not approved")
	}
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to mark follow-up sent: %w", err)
	}

	observe(operation, "success", start, zap.String("match_id", id))
	return match, nil
}

// SetSessionScheduled flags that a session exists for the match
func (c *Client) SetSessionScheduled(ctx context.Context, id string) error {
	start := time.Now()
	operation := "setSessionScheduled"

	result, err := c.pool.Exec(ctx, `
		UPDATE matches SET session_scheduled = TRUE, updated_at = NOW()
		WHERE id = $1`, id)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return fmt.Errorf("failed to flag session scheduled: %w", err)
	}
	if result.RowsAffected() == 0 {
		observe(operation, "not_found", start, zap.String("match_id", id))
		return apperrors.NotFoundError("match")
	}

	observe(operation, "success", start, zap.String("match_id", id))
	return nil
}
