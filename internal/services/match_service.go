package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mentormatch/mentormatch-api/internal/matching"
	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/mentormatch/mentormatch-api/internal/repository"
	apperrors "github.com/mentormatch/mentormatch-api/pkg/errors"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"github.com/mentormatch/mentormatch-api/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// MatchService lists, creates and generates matches
type MatchService struct {
	matches  repository.MatchStore
	mentors  repository.MentorStore
	mentees  repository.MenteeStore
	sessions repository.SessionStore
	orgs     repository.OrganizationRepositoryInterface
	defaults matching.Settings
}

// NewMatchService creates a new MatchService. defaults apply to organizations
// without their own match settings.
func NewMatchService(
	matches repository.MatchStore,
	mentors repository.MentorStore,
	mentees repository.MenteeStore,
	sessions repository.SessionStore,
	orgs repository.OrganizationRepositoryInterface,
	defaults matching.Settings,
) *MatchService {
	return &MatchService{
		matches:  matches,
		mentors:  mentors,
		mentees:  mentees,
		sessions: sessions,
		orgs:     orgs,
		defaults: defaults,
	}
}

func (s *MatchService) ListMatches(ctx context.Context, organizationID string, filter models.MatchListFilter) (*models.MatchesResponse, error) {
	matches, err := s.matches.ListMatches(ctx, organizationID, filter.Status)
	if err != nil {
		return nil, err
	}
	return &models.MatchesResponse{Matches: matches, Total: len(matches)}, nil
}

// GetMatch returns a match of the organization
func (s *MatchService) GetMatch(ctx context.Context, organizationID, matchID string) (*models.Match, error) {
	return getScopedMatch(ctx, s.matches, organizationID, matchID)
}

// GetMatchDetails returns the match with both participants and its sessions
func (s *MatchService) GetMatchDetails(ctx context.Context, organizationID, matchID string) (*models.MatchDetails, error) {
	match, err := s.GetMatch(ctx, organizationID, matchID)
	if err != nil {
		return nil, err
	}

	mentor, err := s.mentors.GetMentor(ctx, match.MentorID)
	if err != nil {
		return nil, err
	}
	mentee, err := s.mentees.GetMentee(ctx, match.MenteeID)
	if err != nil {
		return nil, err
	}
	sessions, err := s.sessions.ListSessions(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	return &models.MatchDetails{
		Match:    match,
		Mentor:   mentor,
		Mentee:   mentee,
		Sessions: sessions,
	}, nil
}

// CreateMatch scores and stores a manually chosen pair as a pending match.
// A pair that already has a non-rejected match is a conflict.
func (s *MatchService) CreateMatch(ctx context.Context, organizationID string, req *models.CreateMatchRequest) (*models.Match, error) {
	mentor, err := s.mentors.GetMentor(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}
	if mentor.OrganizationID != organizationID {
		return nil, apperrors.NotFoundError("mentor")
	}

	mentee, err := s.mentees.GetMentee(ctx, req.MenteeID)
	if err != nil {
		return nil, err
	}
	if mentee.OrganizationID != organizationID {
		return nil, apperrors.NotFoundError("mentee")
	}

	pairs, err := s.matches.ActiveMatchPairs(ctx, organizationID)
	if err != nil {
		return nil, err
	}
	if pairs[models.MatchPair{MentorID: mentor.ID, MenteeID: mentee.ID}] {
		return nil, apperrors.ConflictError("an active match already exists for this mentor and mentee")
	}

	settings, err := s.settingsFor(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	result := matching.Score(mentor, mentee, settings.Weights)
	created, err := s.matches.CreateMatch(ctx, &models.Match{
		OrganizationID: organizationID,
		MentorID:       mentor.ID,
		MenteeID:       mentee.ID,
		MatchScore:     result.Score,
		MatchReasons:   result.Reasons,
		Status:         models.MatchPending,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	metrics.MatchesGenerated.WithLabelValues("manual").Inc()
	metrics.MatchScores.Observe(float64(created.MatchScore))
	logger.Info("Match created manually",
		zap.String("organization_id", organizationID),
		zap.String("match_id", created.ID),
		zap.Int("score", created.MatchScore))

	return created, nil
}

// GenerateMatches scores every approved, active mentee against every approved,
// active mentor and stores the pairs at or above the threshold. Pairs with an
// existing non-rejected match are skipped.
func (s *MatchService) GenerateMatches(ctx context.Context, organizationID string) (*models.GenerateMatchesResponse, error) {
	start := time.Now()
	ctx, span := tracing.StartSpan(ctx, "MatchService.GenerateMatches",
		attribute.String("organization.id", organizationID))
	defer span.End()

	settings, err := s.settingsFor(ctx, organizationID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	mentors, err := s.mentors.ListMatchableMentors(ctx, organizationID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}
	mentees, err := s.mentees.ListMatchableMentees(ctx, organizationID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	candidates := matching.GenerateMatches(mentees, mentors, settings.Threshold, settings.Weights)

	existing, err := s.matches.ActiveMatchPairs(ctx, organizationID)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, err
	}

	fresh := make([]*models.Match, 0, len(candidates))
	for _, m := range candidates {
		if existing[models.MatchPair{MentorID: m.MentorID, MenteeID: m.MenteeID}] {
			continue
		}
		fresh = append(fresh, m)
	}

	created, err := s.matches.CreateMatches(ctx, fresh)
	if err != nil {
		tracing.RecordError(span, err)
		return nil, fmt.Errorf("failed to store generated matches: %w", err)
	}

	for _, m := range created {
		metrics.MatchScores.Observe(float64(m.MatchScore))
	}
	metrics.MatchesGenerated.WithLabelValues("organization").Add(float64(len(created)))
	metrics.MatchGenerationDuration.Observe(metrics.MeasureDuration(start))

	span.SetAttributes(
		attribute.Int("matches.candidates", len(candidates)),
		attribute.Int("matches.created", len(created)),
	)
	logger.Info("Matches generated",
		zap.String("organization_id", organizationID),
		zap.Int("mentors", len(mentors)),
		zap.Int("mentees", len(mentees)),
		zap.Int("candidates", len(candidates)),
		zap.Int("created", len(created)),
		zap.Duration("duration", time.Since(start)))

	return &models.GenerateMatchesResponse{
		Matches:   created,
		Generated: len(created),
		Skipped:   len(candidates) - len(fresh),
		Threshold: settings.Threshold,
	}, nil
}

// GetSuggestions returns the best unsaved matches for one mentee
func (s *MatchService) GetSuggestions(ctx context.Context, organizationID, menteeID string) ([]*models.MatchSuggestion, error) {
	mentee, err := s.mentees.GetMentee(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	if mentee.OrganizationID != organizationID {
		return nil, apperrors.NotFoundError("mentee")
	}

	settings, err := s.settingsFor(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	mentors, err := s.mentors.ListMatchableMentors(ctx, organizationID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*models.Mentor, len(mentors))
	for _, m := range mentors {
		byID[m.ID] = m
	}

	top := matching.FindTopMatchesForMentee(mentee, mentors, settings.MaxPerMentee, settings.Weights)
	suggestions := make([]*models.MatchSuggestion, 0, len(top))
	for _, m := range top {
		suggestions = append(suggestions, &models.MatchSuggestion{Match: m, Mentor: byID[m.MentorID]})
	}

	metrics.MatchesGenerated.WithLabelValues("suggestion").Add(float64(len(suggestions)))
	return suggestions, nil
}

func (s *MatchService) settingsFor(ctx context.Context, organizationID string) (matching.Settings, error) {
	org, err := s.orgs.Get(ctx, organizationID)
	if err != nil {
		return matching.Settings{}, err
	}
	return s.defaults.WithOverride(org.MatchSettings), nil
}

// getScopedMatch loads a match and hides matches of other organizations
func getScopedMatch(ctx context.Context, matches repository.MatchStore, organizationID, matchID string) (*models.Match, error) {
	match, err := matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.OrganizationID != organizationID {
		return nil, apperrors.NotFoundError("match")
	}
	return match, nil
}
