package matching

import (
	"slices"

	"github.com/mentormatch/mentormatch-api/internal/models"
)

// Defaults used when neither configuration nor organization settings say otherwise
const (
	DefaultThreshold    = 70
	DefaultMaxPerMentee = 3
)

// Settings bundles everything the generator needs besides the participants
type Settings struct {
	Weights      models.MatchWeights
	Threshold    int
	MaxPerMentee int
}

// DefaultSettings returns the built-in scoring settings
func DefaultSettings() Settings {
	return Settings{
		Weights:      DefaultWeights(),
		Threshold:    DefaultThreshold,
		MaxPerMentee: DefaultMaxPerMentee,
	}
}

// WithOverride applies an organization's stored settings on top of s.
// A nil override returns s unchanged.
func (s Settings) WithOverride(override *models.MatchSettings) Settings {
	if override == nil {
		return s
	}
	return Settings{
		Weights:      override.Weights,
		Threshold:    override.Threshold,
		MaxPerMentee: override.MaxMatchesPerMentee,
	}
}

// FindTopMatchesForMentee scores mentee against every mentor and returns the
// best maxMatches as new pending matches, highest score first. Ties keep input order.
func FindTopMatchesForMentee(mentee *models.Mentee, mentors []*models.Mentor, maxMatches int, weights models.MatchWeights) []*models.Match {
	if len(mentors) == 0 || maxMatches <= 0 {
		return []*models.Match{}
	}

	matches := make([]*models.Match, 0, len(mentors))
	for _, mentor := range mentors {
		matches = append(matches, newMatch(mentor, mentee, Score(mentor, mentee, weights)))
	}

	sortByScore(matches)

	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	return matches
}

// GenerateMatches scores every mentee against every mentor and keeps pairs
// scoring at least threshold, highest score first. There is no per-mentee cap.
func GenerateMatches(mentees []*models.Mentee, mentors []*models.Mentor, threshold int, weights models.MatchWeights) []*models.Match {
	matches := []*models.Match{}
	if len(mentees) == 0 || len(mentors) == 0 {
		return matches
	}

	for _, mentee := range mentees {
		for _, mentor := range mentors {
			result := Score(mentor, mentee, weights)
			if result.Score >= threshold {
				matches = append(matches, newMatch(mentor, mentee, result))
			}
		}
	}

	sortByScore(matches)
	return matches
}

func newMatch(mentor *models.Mentor, mentee *models.Mentee, result Result) *models.Match {
	return &models.Match{
		OrganizationID: mentee.OrganizationID,
		MentorID:       mentor.ID,
		MenteeID:       mentee.ID,
		MatchScore:     result.Score,
		MatchReasons:   result.Reasons,
		Status:         models.MatchPending,
	}
}

func sortByScore(matches []*models.Match) {
	slices.SortStableFunc(matches, func(a, b *models.Match) int {
		return b.MatchScore - a.MatchScore
	})
}
