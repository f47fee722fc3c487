package matching

import (
	"testing"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpertiseScore(t *testing.T) {
	tests := []struct {
		name      string
		expertise []string
		interests []string
		want      int
	}{
		{"empty expertise", nil, []string{"go"}, 0},
		{"empty interests", []string{"go"}, []string{}, 0},
		{"full coverage", []string{"go", "sql", "k8s"}, []string{"go", "sql"}, 100},
		{"half coverage", []string{"go"}, []string{"go", "sql"}, 50},
		{"one of three rounds", []string{"go"}, []string{"go", "sql", "k8s"}, 33},
		{"two of three rounds up", []string{"go", "sql"}, []string{"go", "sql", "k8s"}, 67},
		{"duplicates counted once", []string{"go", "go"}, []string{"go", "sql"}, 50},
		{"no overlap", []string{"design"}, []string{"go"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpertiseScore(tt.expertise, tt.interests))
		})
	}
}

func TestIndustryScore(t *testing.T) {
	assert.Equal(t, 100, IndustryScore("tech", "tech"))
	assert.Equal(t, 0, IndustryScore("tech", "finance"))
	assert.Equal(t, 0, IndustryScore("", ""))
	assert.Equal(t, 0, IndustryScore("tech", ""))
}

func TestAvailabilityScore(t *testing.T) {
	tests := []struct {
		name   string
		mentor []string
		mentee []string
		want   int
	}{
		{"either empty", []string{"weekday-evenings"}, nil, 0},
		{"subset of smaller side", []string{"weekday-evenings", "weekend-mornings", "weekday-mornings"}, []string{"weekday-evenings"}, 100},
		{"half of smaller side", []string{"weekday-evenings", "weekend-mornings"}, []string{"weekday-evenings", "weekday-afternoons", "weekend-evenings"}, 50},
		{"disjoint", []string{"weekday-evenings"}, []string{"weekend-mornings"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AvailabilityScore(tt.mentor, tt.mentee))
		})
	}
}

func TestMeetingFormatScore(t *testing.T) {
	assert.Equal(t, 100, MeetingFormatScore(models.MeetingBoth, models.MeetingVirtual))
	assert.Equal(t, 100, MeetingFormatScore(models.MeetingInPerson, models.MeetingBoth))
	assert.Equal(t, 100, MeetingFormatScore(models.MeetingVirtual, models.MeetingVirtual))
	assert.Equal(t, 0, MeetingFormatScore(models.MeetingVirtual, models.MeetingInPerson))
	assert.Equal(t, 0, MeetingFormatScore("", models.MeetingBoth))
}

func TestWeightedTotal(t *testing.T) {
	w := DefaultWeights()
	values := []int{0, 13, 25, 50, 67, 100}

	for _, e := range values {
		for _, i := range []int{0, 100} {
			for _, a := range values {
				for _, m := range []int{0, 100} {
					got := WeightedTotal(SubScores{e, i, a, m}, w)
					assert.GreaterOrEqual(t, got, 0)
					assert.LessOrEqual(t, got, 100)
				}
			}
		}
	}

	assert.Equal(t, 100, WeightedTotal(SubScores{100, 100, 100, 100}, w))
	assert.Equal(t, 0, WeightedTotal(SubScores{}, w))
	// 0.4*50 + 0.3*50 = 35
	assert.Equal(t, 35, WeightedTotal(SubScores{Expertise: 50, Availability: 50}, w))
	// 0.4*67 + 0.2*100 = 46.8
	assert.Equal(t, 47, WeightedTotal(SubScores{Expertise: 67, Industry: 100}, w))
}

func TestWeightedTotal_CustomWeights(t *testing.T) {
	w := models.MatchWeights{Expertise: 1}
	assert.Equal(t, 67, WeightedTotal(SubScores{Expertise: 67, Industry: 100, Availability: 100, MeetingFormat: 100}, w))
}

func TestScore_PerfectMatchScenario(t *testing.T) {
	mentor := &models.Mentor{
		Name:                   "Grace",
		Industry:               "tech",
		Expertise:              []string{"marketing", "sales"},
		Availability:           []string{"weekday-evenings"},
		PreferredMeetingFormat: models.MeetingVirtual,
		YearsOfExperience:      "10+",
	}
	mentee := &models.Mentee{
		Name:                   "Sam",
		Industry:               "tech",
		Interests:              []string{"marketing"},
		Availability:           []string{"weekday-evenings"},
		PreferredMeetingFormat: models.MeetingVirtual,
	}

	result := Score(mentor, mentee, DefaultWeights())

	assert.Equal(t, SubScores{Expertise: 100, Industry: 100, Availability: 100, MeetingFormat: 100}, result.Breakdown)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, []string{
		"Grace has expertise in all areas that Sam is interested in",
		"Both work in the tech industry",
		"Grace has 10+ years experience in areas Sam wants to learn",
		"Both indicated availability on weekday evenings",
		"Both prefer virtual meeting format",
	}, result.Reasons)
}

func TestScore_NoOverlapScenario(t *testing.T) {
	mentor := &models.Mentor{
		Name:                   "Grace",
		Industry:               "finance",
		Expertise:              []string{"accounting"},
		Availability:           []string{"weekday-mornings"},
		PreferredMeetingFormat: models.MeetingInPerson,
	}
	mentee := &models.Mentee{
		Name:                   "Sam",
		Industry:               "tech",
		Interests:              []string{"marketing"},
		Availability:           []string{"weekend-evenings"},
		PreferredMeetingFormat: models.MeetingVirtual,
	}

	result := Score(mentor, mentee, DefaultWeights())

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, []string{FallbackReason}, result.Reasons)
	assert.Equal(t, "this could be a good match.", FallbackReason)
}

func TestScore_MissingDataNeverFails(t *testing.T) {
	result := Score(&models.Mentor{}, &models.Mentee{}, DefaultWeights())

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, SubScores{}, result.Breakdown)
	assert.Equal(t, []string{FallbackReason}, result.Reasons)
}

func TestScore_Reasons(t *testing.T) {
	base := func() (*models.Mentor, *models.Mentee) {
		return &models.Mentor{Name: "Grace"}, &models.Mentee{Name: "Sam"}
	}

	t.Run("partial expertise names two tags", func(t *testing.T) {
		mentor, mentee := base()
		mentor.Expertise = []string{"go", "sql", "k8s", "design"}
		mentee.Interests = []string{"go", "sql", "k8s", "rust"}

		result := Score(mentor, mentee, DefaultWeights())

		require.Equal(t, 75, result.Breakdown.Expertise)
		assert.Contains(t, result.Reasons, "Both share interests in go, sql and more")
	})

	t.Run("partial expertise without more", func(t *testing.T) {
		mentor, mentee := base()
		mentor.Expertise = []string{"go", "sql"}
		mentee.Interests = []string{"go", "sql", "rust"}

		result := Score(mentor, mentee, DefaultWeights())

		assert.Contains(t, result.Reasons, "Both share interests in go, sql")
	})

	t.Run("expertise at 50 gives no reason", func(t *testing.T) {
		mentor, mentee := base()
		mentor.Expertise = []string{"go"}
		mentee.Interests = []string{"go", "sql"}

		result := Score(mentor, mentee, DefaultWeights())

		assert.Equal(t, []string{FallbackReason}, result.Reasons)
	})

	t.Run("weekend mornings", func(t *testing.T) {
		mentor, mentee := base()
		mentor.Availability = []string{"weekend-mornings"}
		mentee.Availability = []string{"weekend-mornings", "weekday-afternoons"}

		result := Score(mentor, mentee, DefaultWeights())

		assert.Equal(t, []string{"Both have weekend morning availability"}, result.Reasons)
	})

	t.Run("generic availability", func(t *testing.T) {
		mentor, mentee := base()
		mentor.Availability = []string{"weekday-afternoons"}
		mentee.Availability = []string{"weekday-afternoons"}

		result := Score(mentor, mentee, DefaultWeights())

		assert.Equal(t, []string{"Both have overlapping availability"}, result.Reasons)
	})

	t.Run("flexible when either side is both", func(t *testing.T) {
		mentor, mentee := base()
		mentor.PreferredMeetingFormat = models.MeetingVirtual
		mentee.PreferredMeetingFormat = models.MeetingBoth

		result := Score(mentor, mentee, DefaultWeights())

		assert.Equal(t, []string{"Both prefer flexible meeting format"}, result.Reasons)
	})

	t.Run("booking link", func(t *testing.T) {
		mentor, mentee := base()
		mentor.BookingLink = "https://cal.example/grace"

		result := Score(mentor, mentee, DefaultWeights())

		assert.Equal(t, []string{"Grace has a booking link for easy scheduling"}, result.Reasons)
	})

	t.Run("experience reason fires without other overlap", func(t *testing.T) {
		mentor, mentee := base()
		mentor.YearsOfExperience = "10+"

		result := Score(mentor, mentee, DefaultWeights())

		assert.Equal(t, 0, result.Score)
		assert.Equal(t, []string{"Grace has 10+ years experience in areas Sam wants to learn"}, result.Reasons)
	})
}

func TestReasonList_SuppressesDuplicates(t *testing.T) {
	var l reasonList
	l.add("a")
	l.add("b")
	l.add("a")
	assert.Equal(t, reasonList{"a", "b"}, l)
}
