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

// MatchCompleter completes a match from a finished session
type MatchCompleter interface {
	CompleteMatch(ctx context.Context, matchID string, session *models.MentoringSession) (*models.Match, error)
}

// SessionService manages mentoring sessions of matches
type SessionService struct {
	sessions  repository.SessionStore
	matches   repository.MatchStore
	completer MatchCompleter
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions repository.SessionStore, matches repository.MatchStore, completer MatchCompleter) *SessionService {
	return &SessionService{
		sessions:  sessions,
		matches:   matches,
		completer: completer,
	}
}

func (s *SessionService) ListSessions(ctx context.Context, organizationID, matchID string) ([]*models.MentoringSession, error) {
	if _, err := getScopedMatch(ctx, s.matches, organizationID, matchID); err != nil {
		return nil, err
	}
	return s.sessions.ListSessions(ctx, matchID)
}

// GetSession returns a session whose match belongs to the organization
func (s *SessionService) GetSession(ctx context.Context, organizationID, sessionID string) (*models.MentoringSession, error) {
	session, _, err := s.scopedSession(ctx, organizationID, sessionID)
	return session, err
}

// CreateSession schedules a session and flags the match as having one.
// Rejected and completed matches take no new sessions.
func (s *SessionService) CreateSession(ctx context.Context, organizationID, matchID string, req *models.CreateSessionRequest) (*models.MentoringSession, error) {
	match, err := getScopedMatch(ctx, s.matches, organizationID, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status.IsTerminalStatus() {
		return nil, apperrors.ConflictError(fmt.Sprintf("cannot schedule a session for a %s match", match.Status))
	}

	status := req.Status
	if status == "" {
		status = models.SessionPending
		if req.ScheduledDate != nil {
			status = models.SessionScheduled
		}
	}

	session, err := s.sessions.CreateSession(ctx, &models.MentoringSession{
		MatchID:       match.ID,
		ScheduledDate: req.ScheduledDate,
		Status:        status,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if !match.SessionScheduled {
		if err := s.matches.SetSessionScheduled(ctx, match.ID); err != nil {
			return nil, err
		}
	}

	logger.Info("Session created",
		zap.String("match_id", match.ID),
		zap.String("session_id", session.ID),
		zap.String("status", string(session.Status)))
	return session, nil
}

// UpdateSession applies the update. A session that ends up completed with both
// ratings completes its approved match.
func (s *SessionService) UpdateSession(ctx context.Context, organizationID, sessionID string, req *models.UpdateSessionRequest) (*models.MentoringSession, error) {
	session, match, err := s.scopedSession(ctx, organizationID, sessionID)
	if err != nil {
		return nil, err
	}

	req.Apply(session)
	updated, err := s.sessions.UpdateSession(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	if updated.Status == models.SessionCompleted && updated.HasBothRatings() && match.Status == models.MatchApproved {
		if _, err := s.completer.CompleteMatch(ctx, match.ID, updated); err != nil {
			if !apperrors.Is(err, apperrors.ErrConflict) {
				return nil, err
			}
			logger.Warn("Match was not completed",
				zap.String("match_id", match.ID),
				zap.String("session_id", updated.ID),
				zap.Error(err))
		}
	}

	return updated, nil
}

func (s *SessionService) scopedSession(ctx context.Context, organizationID, sessionID string) (*models.MentoringSession, *models.Match, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	match, err := getScopedMatch(ctx, s.matches, organizationID, session.MatchID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, apperrors.NotFoundError("session")
		}
		return nil, nil, err
	}
	return session, match, nil
}
