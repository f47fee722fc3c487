package services

import (
	"context"
	"fmt"

	"github.com/mentormatch/mentormatch-api/internal/emails"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	"github.com/mentormatch/mentormatch-api/pkg/email"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"github.com/mentormatch/mentormatch-api/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// MatchLifecycleService moves matches through
//
//	pending -> approved -> completed
//	pending | approved -> rejected
//
// and sends the e-mails tied to each step. Every status change is a
// conditional update, so of two concurrent approvals only one succeeds.
// E-mail failures never undo a transition.
type MatchLifecycleService struct {
	matches  repository.MatchStore
	mentors  repository.MentorStore
	mentees  repository.MenteeStore
	sessions repository.SessionStore
	orgs     repository.OrganizationRepositoryInterface
	sender   email.Sender
}

// NewMatchLifecycleService creates a new MatchLifecycleService
func NewMatchLifecycleService(
	matches repository.MatchStore,
	mentors repository.MentorStore,
	mentees repository.MenteeStore,
	sessions repository.SessionStore,
	orgs repository.OrganizationRepositoryInterface,
	sender email.Sender,
) *MatchLifecycleService {
	return &MatchLifecycleService{
		matches:  matches,
		mentors:  mentors,
		mentees:  mentees,
		sessions: sessions,
		orgs:     orgs,
		sender:   sender,
	}
}

// participants bundles what every lifecycle e-mail needs
type participants struct {
	mentor *models.Mentor
	mentee *models.Mentee
	org    *models.Organization
}

func (s *MatchLifecycleService) loadParticipants(ctx context.Context, match *models.Match) (*participants, error) {
	mentor, err := s.mentors.GetMentor(ctx, match.MentorID)
	if err != nil {
		return nil, err
	}
	mentee, err := s.mentees.GetMentee(ctx, match.MenteeID)
	if err != nil {
		return nil, err
	}
	org, err := s.orgs.Get(ctx, match.OrganizationID)
	if err != nil {
		return nil, err
	}
	return &participants{mentor: mentor, mentee: mentee, org: org}, nil
}

// ApproveMatch approves a pending match on behalf of adminID and sends the
// introduction to the mentee with a copy to the mentor. Only pending matches
// can be approved.
func (s *MatchLifecycleService) ApproveMatch(ctx context.Context, organizationID, matchID, adminID string) (*models.Match, error) {
	ctx, span := tracing.StartSpan(ctx, "MatchLifecycle.Approve", attribute.String("match.id", matchID))
	defer span.End()

	match, err := getScopedMatch(ctx, s.matches, organizationID, matchID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if match.Status != models.MatchPending {
		err := invalidTransition(match.Status, models.MatchApproved)
		tracing.RecordError(span, err)
		return nil, err
	}

	p, err := s.loadParticipants(ctx, match)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	approved, err := s.transition(ctx, match.ID, models.MatchTransition{
		From:           models.MatchPending,
		To:             models.MatchApproved,
		AdminID:        adminID,
		IntroEmailSent: true,
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	intro := emails.Introduction(p.mentor, p.mentee, p.org)
	fields := []zap.Field{zap.String("match_id", approved.ID)}
	sendEmail(ctx, s.sender, p.mentee.Email, p.mentee.Name, intro, fields...)
	sendEmail(ctx, s.sender, p.mentor.Email, p.mentor.Name, intro, fields...)

	logger.Info("Match approved",
		zap.String("match_id", approved.ID),
		zap.String("admin_id", adminID))
	return approved, nil
}

// RejectMatch rejects a pending or approved match
func (s *MatchLifecycleService) RejectMatch(ctx context.Context, organizationID, matchID, adminID string) (*models.Match, error) {
	ctx, span := tracing.StartSpan(ctx, "MatchLifecycle.Reject", attribute.String("match.id", matchID))
	defer span.End()

	match, err := getScopedMatch(ctx, s.matches, organizationID, matchID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if !match.Status.CanTransitionTo(models.MatchRejected) {
		err := invalidTransition(match.Status, models.MatchRejected)
		tracing.RecordError(span, err)
		return nil, err
	}

	rejected, err := s.transition(ctx, match.ID, models.MatchTransition{
		From:    match.Status,
		To:      models.MatchRejected,
		AdminID: adminID,
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	logger.Info("Match rejected",
		zap.String("match_id", rejected.ID),
		zap.String("previous_status", string(match.Status)),
		zap.String("admin_id", adminID))
	return rejected, nil
}

// SendFollowUp sends the one-time follow-up reminder for an approved match
func (s *MatchLifecycleService) SendFollowUp(ctx context.Context, organizationID, matchID string) (*models.Match, error) {
	match, err := getScopedMatch(ctx, s.matches, organizationID, matchID)
	if err != nil {
		return nil, err
	}
	if match.Status != models.MatchApproved {
		return nil, apperrors.ConflictError(fmt.Sprintf("follow-up requires an approved match, match is %s", match.Status))
	}
	if match.FollowUpEmailSent {
		return nil, apperrors.ConflictError("follow-up email already sent")
	}

	p, err := s.loadParticipants(ctx, match)
	if err != nil {
		return nil, err
	}

	updated, err := s.matches.MarkFollowUpSent(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	sendEmail(ctx, s.sender, p.mentee.Email, p.mentee.Name,
		emails.FollowUp(p.mentor, p.mentee, p.org),
		zap.String("match_id", match.ID))

	return updated, nil
}

// CompleteMatch completes an approved match once one of its sessions has been
// completed and rated by both sides
func (s *MatchLifecycleService) CompleteMatch(ctx context.Context, matchID string, session *models.MentoringSession) (*models.Match, error) {
	ctx, span := tracing.StartSpan(ctx, "MatchLifecycle.Complete", attribute.String("match.id", matchID))
	defer span.End()

	if session.MatchID != matchID {
		return nil, apperrors.InvalidInputError("session", "does not belong to this match")
	}
	if session.Status != models.SessionCompleted || !session.HasBothRatings() {
		return nil, apperrors.InvalidInputError("session", "must be completed and rated by mentor and mentee")
	}

	match, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	if match.Status != models.MatchApproved {
		err := invalidTransition(match.Status, models.MatchCompleted)
		tracing.RecordError(span, err)
		return nil, err
	}

	completed, err := s.transition(ctx, match.ID, models.MatchTransition{
		From: models.MatchApproved,
		To:   models.MatchCompleted,
	})
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	logger.Info("Match completed",
		zap.String("match_id", completed.ID),
		zap.String("session_id", session.ID))
	return completed, nil
}

// RequestFeedback sends the feedback request to both participants of the
// session's match. It can be requested once per session.
func (s *MatchLifecycleService) RequestFeedback(ctx context.Context, organizationID, sessionID string) (*models.MentoringSession, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	match, err := getScopedMatch(ctx, s.matches, organizationID, session.MatchID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NotFoundError("session")
		}
		return nil, err
	}
	if session.FeedbackEmailSent {
		return nil, apperrors.ConflictError("feedback already requested")
	}

	p, err := s.loadParticipants(ctx, match)
	if err != nil {
		return nil, err
	}

	updated, err := s.sessions.MarkFeedbackRequested(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	fields := []zap.Field{zap.String("session_id", session.ID), zap.String("match_id", match.ID)}
	sendEmail(ctx, s.sender, p.mentor.Email, p.mentor.Name,
		emails.Feedback(emails.RoleMentor, p.mentor, p.mentee, p.org), fields...)
	sendEmail(ctx, s.sender, p.mentee.Email, p.mentee.Name,
		emails.Feedback(emails.RoleMentee, p.mentor, p.mentee, p.org), fields...)

	return updated, nil
}

func (s *MatchLifecycleService) transition(ctx context.Context, matchID string, t models.MatchTransition) (*models.Match, error) {
	match, err := s.matches.TransitionMatch(ctx, matchID, t)
	result := "success"
	switch {
	case apperrors.Is(err, apperrors.ErrConflict):
		result = "conflict"
	case err != nil:
		result = "error"
	}
	metrics.MatchTransitions.WithLabelValues(string(t.From), string(t.To), result).Inc()

	if err != nil {
		logger.Warn("Match transition failed",
			zap.String("match_id", matchID),
			zap.String("from", string(t.From)),
			zap.String("to", string(t.To)),
			zap.Error(err))
		return nil, err
	}
	return match, nil
}

func invalidTransition(from, to models.MatchStatus) error {
	metrics.MatchTransitions.WithLabelValues(string(from), string(to), "refused").Inc()
	return apperrors.TransitionError("match", string(from), string(to))
}
