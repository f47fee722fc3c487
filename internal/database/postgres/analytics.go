package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"go.uber.org/zap"
)

// GetAnalytics aggregates program counters for an organization.
// The average rating covers every mentor and mentee rating given so far.
func (c *Client) GetAnalytics(ctx context.Context, organizationID string) (*models.Analytics, error) {
	start := time.Now()
	operation := "getAnalytics"

	query := `
		WITH org_matches AS (
			SELECT id, status FROM matches WHERE organization_id = $1
		),
		org_sessions AS (
			SELECT s.status, s.mentor_rating, s.mentee_rating
			FROM mentoring_sessions s
			JOIN org_matches m ON m.id = s.match_id
		),
		ratings AS (
			SELECT mentor_rating AS rating FROM org_sessions WHERE mentor_rating IS NOT NULL
			UNION ALL
			SELECT mentee_rating FROM org_sessions WHERE mentee_rating IS NOT NULL
		)
		SELECT
			(SELECT COUNT(*) FROM org_matches),
			(SELECT COUNT(*) FROM mentors WHERE organization_id = $1 AND active AND approved),
			(SELECT COUNT(*) FROM org_sessions WHERE status = 'completed'),
			(SELECT COALESCE(AVG(rating), 0)::float8 FROM ratings),
			(SELECT COUNT(*) FROM org_matches WHERE status = 'pending')`

	var a models.Analytics
	var totalMatches, activeMentors, sessionsCompleted, pendingMatches int64
	err := c.pool.QueryRow(ctx, query, organizationID).Scan(
		&totalMatches,
		&activeMentors,
		&sessionsCompleted,
		&a.AverageRating,
		&pendingMatches,
	)
	if err != nil {
		observe(operation, "error", start, zap.Error(err))
		return nil, fmt.Errorf("failed to compute analytics: %w", err)
	}

	a.TotalMatches = int(totalMatches)
	a.ActiveMentors = int(activeMentors)
	a.SessionsCompleted = int(sessionsCompleted)
	a.PendingMatches = int(pendingMatches)

	observe(operation, "success", start, zap.String("organization_id", organizationID))
	return &a, nil
}
