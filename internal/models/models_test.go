package models_test

import (
	"testing"

	"github.com/mentormatch/mentormatch-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMatchStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to models.MatchStatus
		allowed  bool
	}{
		{models.MatchPending, models.MatchApproved, true},
		{models.MatchPending, models.MatchRejected, true},
		{models.MatchPending, models.MatchCompleted, false},
		{models.MatchApproved, models.MatchCompleted, true},
		{models.MatchApproved, models.MatchRejected, true},
		{models.MatchApproved, models.MatchApproved, false},
		{models.MatchRejected, models.MatchApproved, false},
		{models.MatchCompleted, models.MatchRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestMatchWeights_Validate(t *testing.T) {
	assert.NoError(t, models.MatchWeights{Expertise: 0.4, Industry: 0.2, Availability: 0.3, MeetingFormat: 0.1}.Validate())
	assert.NoError(t, models.MatchWeights{Expertise: 1}.Validate())
	assert.Error(t, models.MatchWeights{Expertise: 0.5, Industry: 0.2, Availability: 0.3, MeetingFormat: 0.1}.Validate())
	assert.Error(t, models.MatchWeights{Expertise: 1.2, MeetingFormat: -0.2}.Validate())
	assert.Error(t, models.MatchWeights{}.Validate())
}

func TestMatchWeights_Validate_NamesFirstNegativeWeight(t *testing.T) {
	weights := models.MatchWeights{Expertise: -0.1, Industry: -0.2, Availability: -0.3, MeetingFormat: 1.6}

	for i := 0; i < 20; i++ {
		assert.EqualError(t, weights.Validate(), "weight expertise must be non-negative")
	}

	weights.Expertise = 0.5
	assert.EqualError(t, weights.Validate(), "weight industry must be non-negative")
}

func TestMatchSettings_Validate(t *testing.T) {
	valid := models.MatchSettings{
		Weights:             models.MatchWeights{Expertise: 0.4, Industry: 0.2, Availability: 0.3, MeetingFormat: 0.1},
		Threshold:           70,
		MaxMatchesPerMentee: 3,
	}
	assert.NoError(t, valid.Validate())

	bad := valid
	bad.Threshold = 120
	assert.Error(t, bad.Validate())

	bad = valid
	bad.MaxMatchesPerMentee = 0
	assert.Error(t, bad.Validate())
}

func TestFormField_Validate(t *testing.T) {
	opts := []models.FieldOption{{Value: "a", Label: "A"}, {Value: "b", Label: "B"}}

	tests := []struct {
		name    string
		field   models.FormField
		wantErr bool
	}{
		{"text without options", models.FormField{ID: "name", Label: "Name", Type: models.FieldText}, false},
		{"select with options", models.FormField{ID: "industry", Label: "Industry", Type: models.FieldSelect, Options: opts}, false},
		{"text with options", models.FormField{ID: "name", Label: "Name", Type: models.FieldText, Options: opts}, true},
		{"multiselect without options", models.FormField{ID: "expertise", Label: "Expertise", Type: models.FieldMultiselect}, true},
		{"unknown type", models.FormField{ID: "x", Label: "X", Type: "slider"}, true},
		{"missing id", models.FormField{Label: "X", Type: models.FieldText}, true},
		{"duplicate option", models.FormField{ID: "r", Label: "R", Type: models.FieldRadio,
			Options: []models.FieldOption{{Value: "a"}, {Value: "a"}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.field.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormTemplate_ValidateFields_DuplicateIDs(t *testing.T) {
	tmpl := &models.FormTemplate{Fields: []models.FormField{
		{ID: "name", Label: "Name", Type: models.FieldText},
		{ID: "name", Label: "Full name", Type: models.FieldText},
	}}
	assert.Error(t, tmpl.ValidateFields())
}

func TestUpdateMentorRequest_Apply(t *testing.T) {
	mentor := &models.Mentor{Name: "Ada", Title: "Engineer", Expertise: []string{"go"}}
	title := "Principal Engineer"
	req := &models.UpdateMentorRequest{Title: &title, Expertise: []string{"go", "sql"}}

	req.Apply(mentor)

	assert.Equal(t, "Ada", mentor.Name)
	assert.Equal(t, "Principal Engineer", mentor.Title)
	assert.Equal(t, []string{"go", "sql"}, mentor.Expertise)
}

func TestMentoringSession_HasBothRatings(t *testing.T) {
	five := 5
	s := &models.MentoringSession{MentorRating: &five}
	assert.False(t, s.HasBothRatings())
	s.MenteeRating = &five
	assert.True(t, s.HasBothRatings())
}
