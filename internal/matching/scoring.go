// Package matching scores mentor/mentee pairs and ranks candidate matches.
// Everything here is pure: no I/O, no package-level mutable state.
package matching

import (
	"fmt"
	"math"
	"strings"

	"github.com/mentormatch/mentormatch-api/internal/models"
)

// FallbackReason is emitted when no other reason applies
const FallbackReason = "this could be a good match."

// Availability slots that get a dedicated reason
const (
	SlotWeekdayEvenings = "weekday-evenings"
	SlotWeekendMornings = "weekend-mornings"
)

// DefaultWeights returns the standard weight set
func DefaultWeights() models.MatchWeights {
	return models.MatchWeights{
		Expertise:     0.4,
		Industry:      0.2,
		Availability:  0.3,
		MeetingFormat: 0.1,
	}
}

// SubScores holds the four independent 0..100 compatibility measures
type SubScores struct {
	Expertise     int `json:"expertise"`
	Industry      int `json:"industry"`
	Availability  int `json:"availability"`
	MeetingFormat int `json:"meetingFormat"`
}

// Result is the outcome of scoring one pair
type Result struct {
	Score     int       `json:"score"`
	Reasons   []string  `json:"reasons"`
	Breakdown SubScores `json:"breakdown"`
}

// Score computes the weighted compatibility of mentor and mentee.
// Missing data contributes zero; Score never fails.
func Score(mentor *models.Mentor, mentee *models.Mentee, weights models.MatchWeights) Result {
	sub := SubScores{
		Expertise:     ExpertiseScore(mentor.Expertise, mentee.Interests),
		Industry:      IndustryScore(mentor.Industry, mentee.Industry),
		Availability:  AvailabilityScore(mentor.Availability, mentee.Availability),
		MeetingFormat: MeetingFormatScore(mentor.PreferredMeetingFormat, mentee.PreferredMeetingFormat),
	}

	return Result{
		Score:     WeightedTotal(sub, weights),
		Reasons:   reasons(mentor, mentee, sub),
		Breakdown: sub,
	}
}

// WeightedTotal combines sub-scores into a rounded total clamped to [0,100]
func WeightedTotal(sub SubScores, w models.MatchWeights) int {
	total := math.Round(
		w.Expertise*float64(sub.Expertise) +
			w.Industry*float64(sub.Industry) +
			w.Availability*float64(sub.Availability) +
			w.MeetingFormat*float64(sub.MeetingFormat),
	)
	return clamp(int(total))
}

// ExpertiseScore is the share of the mentee's interests covered by the mentor's expertise
func ExpertiseScore(expertise, interests []string) int {
	interestSet := toSet(interests)
	if len(interestSet) == 0 || len(toSet(expertise)) == 0 {
		return 0
	}
	overlap := intersect(expertise, interestSet)
	return percent(len(overlap), len(interestSet))
}

// IndustryScore is 100 for an exact match of two non-empty industries
func IndustryScore(mentorIndustry, menteeIndustry string) int {
	if mentorIndustry == "" || menteeIndustry == "" {
		return 0
	}
	if mentorIndustry == menteeIndustry {
		return 100
	}
	return 0
}

// AvailabilityScore is the overlap relative to the smaller of the two slot sets
func AvailabilityScore(mentorSlots, menteeSlots []string) int {
	mentorSet := toSet(mentorSlots)
	menteeSet := toSet(menteeSlots)
	if len(mentorSet) == 0 || len(menteeSet) == 0 {
		return 0
	}
	overlap := intersect(mentorSlots, menteeSet)
	return percent(len(overlap), min(len(mentorSet), len(menteeSet)))
}

// MeetingFormatScore is 100 when either side is flexible or both agree
func MeetingFormatScore(mentorFormat, menteeFormat models.MeetingFormat) int {
	if mentorFormat == "" || menteeFormat == "" {
		return 0
	}
	if mentorFormat == models.MeetingBoth || menteeFormat == models.MeetingBoth {
		return 100
	}
	if mentorFormat == menteeFormat {
		return 100
	}
	return 0
}

func reasons(mentor *models.Mentor, mentee *models.Mentee, sub SubScores) []string {
	var out reasonList

	if sub.Expertise > 50 {
		interestSet := toSet(mentee.Interests)
		overlap := intersect(mentor.Expertise, interestSet)
		switch {
		case len(overlap) == 0:
		case len(overlap) == len(interestSet):
			out.add(fmt.Sprintf("%s has expertise in all areas that %s is interested in", mentor.Name, mentee.Name))
		default:
			named := overlap
			if len(named) > 2 {
				named = named[:2]
			}
			reason := "Both share interests in " + strings.Join(named, ", ")
			if len(overlap) > 2 {
				reason += " and more"
			}
			out.add(reason)
		}
	}

	if sub.Industry == 100 {
		out.add(fmt.Sprintf("Both work in the %s industry", mentor.Industry))
	}

	if mentor.YearsOfExperience == models.TopExperienceBucket {
		out.add(fmt.Sprintf("%s has 10+ years experience in areas %s wants to learn", mentor.Name, mentee.Name))
	}

	if sub.Availability > 50 {
		common := toSet(intersect(mentor.Availability, toSet(mentee.Availability)))
		switch {
		case common[SlotWeekdayEvenings]:
			out.add("Both indicated availability on weekday evenings")
		case common[SlotWeekendMornings]:
			out.add("Both have weekend morning availability")
		case len(common) > 0:
			out.add("Both have overlapping availability")
		}
	}

	if sub.MeetingFormat == 100 {
		format := string(mentor.PreferredMeetingFormat)
		if mentor.PreferredMeetingFormat == models.MeetingBoth || mentee.PreferredMeetingFormat == models.MeetingBoth {
			format = "flexible"
		}
		out.add(fmt.Sprintf("Both prefer %s meeting format", format))
	}

	if strings.TrimSpace(mentor.BookingLink) != "" {
		out.add(fmt.Sprintf("%s has a booking link for easy scheduling", mentor.Name))
	}

	if len(out) == 0 {
		return []string{FallbackReason}
	}
	return out
}

// reasonList drops exact duplicates while keeping order
type reasonList []string

func (l *reasonList) add(reason string) {
	for _, r := range *l {
		if r == reason {
			return
		}
	}
	*l = append(*l, reason)
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		if v != "" {
			set[v] = true
		}
	}
	return set
}

// intersect returns the distinct values of ordered found in set, in input order
func intersect(ordered []string, set map[string]bool) []string {
	seen := make(map[string]bool, len(ordered))
	out := []string{}
	for _, v := range ordered {
		if set[v] && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return clamp(int(math.Round(100 * float64(part) / float64(whole))))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
